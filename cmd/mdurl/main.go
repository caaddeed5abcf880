package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aleister1102/mdurl/internal/config"
	"github.com/aleister1102/mdurl/internal/logger"

	"github.com/rs/zerolog"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitMismatch = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] Could not load global config using path '%s': %v\n", flags.GlobalConfigFile, err)
		return exitFailure
	}

	applyFlagOverrides(gCfg, flags)

	if err := config.ValidateConfig(gCfg); err != nil {
		fmt.Fprintf(stderr, "[FATAL] %v\n", err)
		return exitFailure
	}

	appLogger, err := logger.NewLoggerBuilder().
		WithConfig(gCfg.LogConfig).
		WithConsoleWriter(stderr).
		Build()
	if err != nil {
		fmt.Fprintf(stderr, "[FATAL] Could not initialize logger: %v\n", err)
		return exitFailure
	}
	defer appLogger.Close()

	zLogger := *appLogger.GetZerolog()
	zLogger.Debug().
		Str("mode", gCfg.FormatConfig.Mode).
		Str("output", gCfg.OutputConfig.Format).
		Msg("Configuration loaded")

	a := newApp(gCfg, stdin, stdout, zLogger)
	code, err := a.run(ctx, flags.InputFile, flags.Args)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			zLogger.Warn().Msg("Interrupted")
		} else {
			zLogger.Error().Err(err).Msg("Run failed")
		}
		return exitFailure
	}
	return code
}

// applyFlagOverrides copies explicitly set flags over the file configuration
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags) {
	if flags.Mode != "" {
		gCfg.FormatConfig.Mode = flags.Mode
	}
	gCfg.FormatConfig.Mode = strings.ToLower(gCfg.FormatConfig.Mode)

	if flags.MaxLengthSet {
		gCfg.FormatConfig.MaxLength = flags.MaxLength
	}
	if flags.SlashesSet {
		gCfg.FormatConfig.SlashesDenoteHost = flags.SlashesDenoteHost
	}

	if flags.OutputFormat != "" {
		gCfg.OutputConfig.Format = flags.OutputFormat
	}
	gCfg.OutputConfig.Format = strings.ToLower(gCfg.OutputConfig.Format)
	if gCfg.OutputConfig.Format == "" {
		gCfg.OutputConfig.Format = config.OutputFormatText
	}

	if flags.ParquetPath != "" {
		gCfg.OutputConfig.ParquetPath = flags.ParquetPath
	}
	if flags.SQLitePath != "" {
		gCfg.OutputConfig.SQLitePath = flags.SQLitePath
	}
}
