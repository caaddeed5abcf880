package main

import (
	"bytes"
	"context"
	"io"

	"github.com/aleister1102/mdurl/internal/common/batchprocessor"
	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/common/filemanager"
	"github.com/aleister1102/mdurl/internal/config"
	"github.com/aleister1102/mdurl/internal/datastore"
	"github.com/aleister1102/mdurl/internal/formatter"
	"github.com/aleister1102/mdurl/internal/linkextractor"
	"github.com/aleister1102/mdurl/internal/models"
	"github.com/aleister1102/mdurl/internal/roundtrip"
	"github.com/aleister1102/mdurl/internal/urlparse"

	"github.com/rs/zerolog"
)

// app runs one CLI invocation against resolved configuration
type app struct {
	cfg         *config.GlobalConfig
	formatter   *formatter.Formatter
	fileManager *filemanager.FileManager
	stdin       io.Reader
	out         *outputRenderer
	logger      zerolog.Logger
}

func newApp(cfg *config.GlobalConfig, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) *app {
	return &app{
		cfg:         cfg,
		formatter:   formatter.NewFormatter(nil, logger),
		fileManager: filemanager.NewFileManager(logger),
		stdin:       stdin,
		out:         newOutputRenderer(stdout, cfg.OutputConfig.Format),
		logger:      logger.With().Str("component", "App").Logger(),
	}
}

// run dispatches on the configured mode and returns the exit code
func (a *app) run(ctx context.Context, inputFile string, args []string) (int, error) {
	mode := a.cfg.FormatConfig.Mode

	if mode == config.ModeLinks {
		results, err := a.runLinks(ctx, inputFile, args)
		if err != nil {
			return exitFailure, err
		}
		return exitOK, a.export(ctx, results)
	}

	// check mode compares raw lines, surrounding whitespace included
	readOpts := filemanager.DefaultFileReadOptions()
	if mode == config.ModeCheck {
		readOpts.TrimLines = false
	}

	inputs, err := a.collectInputs(inputFile, args, readOpts)
	if err != nil {
		return exitFailure, err
	}
	a.logger.Debug().Int("input_count", len(inputs)).Str("mode", mode).Msg("Processing inputs")

	if mode == config.ModeCheck {
		return a.runCheck(ctx, inputs)
	}

	results, err := a.formatAll(ctx, inputs)
	if err != nil {
		return exitFailure, err
	}

	if err := a.out.renderResults(mode, results); err != nil {
		return exitFailure, errorwrapper.WrapError(err, "failed to write output")
	}

	return exitOK, a.export(ctx, results)
}

// collectInputs reads -file when given, else positional args, else stdin
func (a *app) collectInputs(inputFile string, args []string, opts filemanager.FileReadOptions) ([]string, error) {
	switch {
	case inputFile == "-":
		return a.fileManager.ReadLinesFrom(a.stdin, opts)
	case inputFile != "":
		return a.fileManager.ReadLines(inputFile, opts)
	case len(args) > 0:
		return args, nil
	default:
		return a.fileManager.ReadLinesFrom(a.stdin, opts)
	}
}

// formatAll formats inputs in batches, keeping input order
func (a *app) formatAll(ctx context.Context, inputs []string) ([]models.FormatResult, error) {
	results := make([]models.FormatResult, len(inputs))
	processor := batchprocessor.NewBatchProcessor(a.cfg.BatchConfig.ToBatchProcessorConfig(), a.logger)

	_, err := processor.ProcessBatches(ctx, inputs, func(batchCtx context.Context, batch []string, offset int) error {
		for i, input := range batch {
			if err := batchCtx.Err(); err != nil {
				return err
			}
			results[offset+i] = a.formatOne(input)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (a *app) formatOne(input string) models.FormatResult {
	maxLength := a.cfg.FormatConfig.MaxLength
	return models.FormatResult{
		Input:     input,
		Human:     a.formatter.FormatForHumans(input, maxLength),
		Computer:  a.formatter.FormatForComputers(input),
		URL:       urlparse.Parse(input, a.cfg.FormatConfig.SlashesDenoteHost),
		MaxLength: maxLength,
	}
}

func (a *app) runCheck(ctx context.Context, inputs []string) (int, error) {
	checker := roundtrip.NewChecker(a.cfg.FormatConfig.SlashesDenoteHost, a.logger)

	results := make([]roundtrip.Result, 0, len(inputs))
	failed := 0
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return exitFailure, err
		}
		r := checker.Check(input)
		if !r.OK {
			failed++
		}
		results = append(results, r)
	}

	if err := a.out.renderChecks(results); err != nil {
		return exitFailure, errorwrapper.WrapError(err, "failed to write output")
	}

	if failed > 0 {
		a.logger.Warn().Int("failed", failed).Int("total", len(results)).Msg("Round trip mismatches found")
		return exitMismatch, nil
	}
	return exitOK, nil
}

// runLinks extracts links from each HTML source, stdin when none is given
func (a *app) runLinks(ctx context.Context, inputFile string, args []string) ([]models.FormatResult, error) {
	sources := args
	if inputFile != "" {
		sources = []string{inputFile}
	}
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	extractor := linkextractor.NewExtractor(a.formatter, a.cfg.FormatConfig.MaxLength, a.logger)

	links := make([]linkextractor.Link, 0)
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var found []linkextractor.Link
		var err error
		if source == "-" {
			found, err = extractor.ExtractFrom(a.stdin)
		} else {
			var content []byte
			content, err = a.fileManager.ReadFile(source, filemanager.DefaultFileReadOptions())
			if err == nil {
				found, err = extractor.ExtractFrom(bytes.NewReader(content))
			}
		}
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to extract links from "+source)
		}
		links = append(links, found...)
	}

	if err := a.out.renderLinks(links); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to write output")
	}

	results := make([]models.FormatResult, 0, len(links))
	for _, l := range links {
		results = append(results, models.FormatResult{
			Input:     l.Raw,
			Human:     l.Human,
			Computer:  l.Computer,
			URL:       urlparse.Parse(l.Raw, a.cfg.FormatConfig.SlashesDenoteHost),
			MaxLength: a.cfg.FormatConfig.MaxLength,
		})
	}
	return results, nil
}

// export writes results to the configured Parquet file and SQLite database
func (a *app) export(ctx context.Context, results []models.FormatResult) error {
	if path := a.cfg.OutputConfig.ParquetPath; path != "" {
		writer, err := datastore.NewParquetWriter(path, a.logger)
		if err != nil {
			return err
		}
		if _, err := writer.Write(ctx, results); err != nil {
			return errorwrapper.WrapError(err, "parquet export failed")
		}
	}

	if path := a.cfg.OutputConfig.SQLitePath; path != "" {
		store, err := datastore.NewSQLiteStore(path, a.logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				a.logger.Error().Err(err).Msg("Failed to close database")
			}
		}()
		if _, err := store.InsertBatch(ctx, results); err != nil {
			return errorwrapper.WrapError(err, "sqlite export failed")
		}
	}

	return nil
}
