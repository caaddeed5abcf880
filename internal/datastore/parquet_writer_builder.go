package datastore

import (
	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/common/filemanager"
	"github.com/rs/zerolog"
)

// ParquetWriterBuilder provides a fluent interface for creating ParquetWriter
type ParquetWriterBuilder struct {
	outputPath   string
	logger       zerolog.Logger
	writerConfig ParquetWriterConfig
}

// NewParquetWriterBuilder creates a new ParquetWriterBuilder
func NewParquetWriterBuilder(logger zerolog.Logger) *ParquetWriterBuilder {
	return &ParquetWriterBuilder{
		logger:       logger.With().Str("component", "ParquetWriter").Logger(),
		writerConfig: DefaultParquetWriterConfig(),
	}
}

// WithOutputPath sets the file the writer creates
func (b *ParquetWriterBuilder) WithOutputPath(path string) *ParquetWriterBuilder {
	b.outputPath = path
	return b
}

// WithWriterConfig sets the writer configuration
func (b *ParquetWriterBuilder) WithWriterConfig(cfg ParquetWriterConfig) *ParquetWriterBuilder {
	b.writerConfig = cfg
	return b
}

// Build creates a new ParquetWriter instance
func (b *ParquetWriterBuilder) Build() (*ParquetWriter, error) {
	if b.outputPath == "" {
		return nil, errorwrapper.NewValidationError("output_path", b.outputPath, "parquet output path cannot be empty")
	}

	if b.writerConfig.BatchSize <= 0 {
		b.writerConfig.BatchSize = DefaultParquetWriterConfig().BatchSize
	}

	return &ParquetWriter{
		outputPath:   b.outputPath,
		logger:       b.logger,
		fileManager:  filemanager.NewFileManager(b.logger),
		writerConfig: b.writerConfig,
	}, nil
}
