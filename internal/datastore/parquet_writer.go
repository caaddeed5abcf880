package datastore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/common/filemanager"
	"github.com/aleister1102/mdurl/internal/models"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ParquetWriter handles writing format results to a Parquet file.
type ParquetWriter struct {
	outputPath   string
	logger       zerolog.Logger
	fileManager  *filemanager.FileManager
	writerConfig ParquetWriterConfig
}

// NewParquetWriter creates a new ParquetWriter using builder pattern
func NewParquetWriter(outputPath string, logger zerolog.Logger) (*ParquetWriter, error) {
	return NewParquetWriterBuilder(logger).
		WithOutputPath(outputPath).
		Build()
}

// WriteRequest encapsulates a write request
type WriteRequest struct {
	Results     []models.FormatResult
	ProcessedAt time.Time
}

// WriteResult contains the result of a write operation
type WriteResult struct {
	FilePath       string
	RecordsWritten int
	FileSize       int64
	WriteTime      time.Duration
}

// Write creates (or truncates) the output file and writes every result to it
func (pw *ParquetWriter) Write(ctx context.Context, results []models.FormatResult) (*WriteResult, error) {
	request := WriteRequest{
		Results:     results,
		ProcessedAt: time.Now(),
	}

	result, err := pw.writeFormatResults(ctx, request)
	if err != nil {
		return nil, err
	}

	pw.logger.Info().
		Str("file_path", result.FilePath).
		Int("records_written", result.RecordsWritten).
		Dur("write_time", result.WriteTime).
		Msg("Successfully wrote format results to Parquet file")

	return result, nil
}

// writeFormatResults performs the actual write operation
func (pw *ParquetWriter) writeFormatResults(ctx context.Context, request WriteRequest) (*WriteResult, error) {
	startTime := time.Now()

	if err := pw.checkCancellation(ctx, "write start"); err != nil {
		return nil, err
	}

	if err := pw.fileManager.EnsureDirectory(filepath.Dir(pw.outputPath), 0755); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create Parquet output directory")
	}

	records := NewRecordTransformer(pw.logger).TransformAll(request.Results, request.ProcessedAt)

	if err := pw.checkCancellation(ctx, "before parquet write"); err != nil {
		return nil, err
	}

	recordsWritten, err := pw.writeToParquetFile(ctx, records)
	if err != nil {
		return nil, err
	}

	fileSize := int64(0)
	if fileInfo, statErr := os.Stat(pw.outputPath); statErr == nil {
		fileSize = fileInfo.Size()
	}

	return &WriteResult{
		FilePath:       pw.outputPath,
		RecordsWritten: recordsWritten,
		FileSize:       fileSize,
		WriteTime:      time.Since(startTime),
	}, nil
}

// checkCancellation checks for context cancellation
func (pw *ParquetWriter) checkCancellation(ctx context.Context, operation string) error {
	if result := CheckCancellationWithLog(ctx, pw.logger, operation); result.Cancelled {
		return result.Error
	}
	return nil
}

// writeToParquetFile writes the records in batches of writerConfig.BatchSize
func (pw *ParquetWriter) writeToParquetFile(ctx context.Context, records []models.ParquetFormattedURL) (int, error) {
	pw.logger.Debug().
		Str("file_path", pw.outputPath).
		Int("record_count", len(records)).
		Msg("Writing format results to Parquet file")

	file, err := os.Create(pw.outputPath)
	if err != nil {
		return 0, errorwrapper.WrapError(err, "failed to create/truncate parquet file: "+pw.outputPath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.ParquetFormattedURL](file, pw.getCompressionOption())

	written := 0
	for start := 0; start < len(records); start += pw.writerConfig.BatchSize {
		if err := pw.checkCancellation(ctx, "during parquet write"); err != nil {
			_ = writer.Close()
			return 0, err
		}

		end := min(start+pw.writerConfig.BatchSize, len(records))
		n, err := writer.Write(records[start:end])
		if err != nil {
			_ = writer.Close()
			return 0, errorwrapper.WrapError(err, "failed to write format results to parquet file")
		}
		written += n
	}

	if err := writer.Close(); err != nil {
		return 0, errorwrapper.WrapError(err, "failed to finalize parquet file")
	}

	return written, nil
}

// getCompressionOption returns the compression option based on configuration
func (pw *ParquetWriter) getCompressionOption() parquet.WriterOption {
	switch pw.writerConfig.CompressionType {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	default:
		return parquet.Compression(&parquet.Zstd) // Default to Zstd
	}
}
