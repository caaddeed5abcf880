package main

import (
	"flag"
	"io"
)

type AppFlags struct {
	GlobalConfigFile  string
	Mode              string
	InputFile         string
	MaxLength         int
	MaxLengthSet      bool
	OutputFormat      string
	ParquetPath       string
	SQLitePath        string
	SlashesDenoteHost bool
	SlashesSet        bool
	Args              []string
}

// ParseFlags parses args (without the program name). Errors are already
// reported to output when they are returned.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("mdurl", flag.ContinueOnError)
	fs.SetOutput(output)

	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	modeFlag := fs.String("mode", "", "What to do with each input: human, computer, parse, check or links (overrides config file if set)")
	modeFlagAlias := fs.String("m", "", "Alias for -mode")

	inputFile := fs.String("file", "", "Path to a text file with one URL per line, or an HTML file in links mode. Use - for stdin.")
	inputFileAlias := fs.String("f", "", "Alias for -file")

	maxLength := fs.Int("max-length", 0, "Character budget for human output (overrides config file if set)")
	maxLengthAlias := fs.Int("l", 0, "Alias for -max-length")

	outputFormat := fs.String("output", "", "Output format: text, json or yaml (overrides config file if set)")
	outputFormatAlias := fs.String("o", "", "Alias for -output")

	parquetPath := fs.String("parquet", "", "Also write results to this Parquet file")
	sqlitePath := fs.String("sqlite", "", "Also append results to this SQLite database")
	slashesDenoteHost := fs.Bool("slashes-denote-host", false, "Treat a leading // as the start of a host in parse and check modes")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	flags := AppFlags{
		ParquetPath:       *parquetPath,
		SQLitePath:        *sqlitePath,
		SlashesDenoteHost: *slashesDenoteHost,
		SlashesSet:        set["slashes-denote-host"],
		Args:              fs.Args(),
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if set["max-length"] {
		flags.MaxLength, flags.MaxLengthSet = *maxLength, true
	} else if set["l"] {
		flags.MaxLength, flags.MaxLengthSet = *maxLengthAlias, true
	}

	if *outputFormat != "" {
		flags.OutputFormat = *outputFormat
	} else if *outputFormatAlias != "" {
		flags.OutputFormat = *outputFormatAlias
	}

	return flags, nil
}
