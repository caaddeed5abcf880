package datastore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParquetWriter(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "urls.parquet")

	writer, err := NewParquetWriter(outputPath, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, outputPath, writer.outputPath)
	assert.Equal(t, "zstd", writer.writerConfig.CompressionType)
}

func TestNewParquetWriter_EmptyPath(t *testing.T) {
	writer, err := NewParquetWriter("", zerolog.Nop())

	assert.Nil(t, writer)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
}

func TestParquetWriterBuilder_FixesBatchSize(t *testing.T) {
	writer, err := NewParquetWriterBuilder(zerolog.Nop()).
		WithOutputPath("out.parquet").
		WithWriterConfig(ParquetWriterConfig{CompressionType: "gzip"}).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 1000, writer.writerConfig.BatchSize)
	assert.Equal(t, "gzip", writer.writerConfig.CompressionType)
}

func TestParquetWriter_WriteAndRead(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "nested", "dir", "urls.parquet")

	writer, err := NewParquetWriter(outputPath, zerolog.Nop())
	require.NoError(t, err)

	result, err := writer.Write(context.Background(), sampleResults())
	require.NoError(t, err)

	assert.Equal(t, outputPath, result.FilePath)
	assert.Equal(t, 3, result.RecordsWritten)
	assert.Positive(t, result.FileSize)
	assert.FileExists(t, outputPath)

	records, err := NewParquetReader(zerolog.Nop()).ReadFile(outputPath)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "https://example.com/a?b#c", records[0].Input)
	require.NotNil(t, records[0].Hostname)
	assert.Equal(t, "example.com", *records[0].Hostname)
	require.NotNil(t, records[0].Hash)
	assert.Equal(t, "#c", *records[0].Hash)
	assert.Nil(t, records[0].Port)
	assert.True(t, records[0].Slashes)
	assert.Equal(t, int32(50), records[0].MaxLength)

	assert.Equal(t, "mailto:", *records[1].Protocol)
	assert.Equal(t, "user", *records[1].Auth)
	assert.False(t, records[1].Slashes)

	assert.Empty(t, records[2].Input)
	assert.Nil(t, records[2].Human)
}

func TestParquetWriter_SmallBatches(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "urls.parquet")

	writer, err := NewParquetWriterBuilder(zerolog.Nop()).
		WithOutputPath(outputPath).
		WithWriterConfig(ParquetWriterConfig{CompressionType: "snappy", BatchSize: 1}).
		Build()
	require.NoError(t, err)

	result, err := writer.Write(context.Background(), sampleResults())
	require.NoError(t, err)
	assert.Equal(t, 3, result.RecordsWritten)

	records, err := NewParquetReader(zerolog.Nop()).ReadFile(outputPath)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestParquetWriter_Write_EmptyResults(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")

	writer, err := NewParquetWriter(outputPath, zerolog.Nop())
	require.NoError(t, err)

	result, err := writer.Write(context.Background(), []models.FormatResult{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.RecordsWritten)

	// File should still be created even with empty results
	assert.FileExists(t, outputPath)
}

func TestParquetWriter_Write_Cancelled(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "cancelled.parquet")

	writer, err := NewParquetWriter(outputPath, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = writer.Write(ctx, sampleResults())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, outputPath)
}

func TestParquetWriter_CheckCancellation(t *testing.T) {
	writer := &ParquetWriter{logger: zerolog.Nop()}

	t.Run("normal context", func(t *testing.T) {
		assert.NoError(t, writer.checkCancellation(context.Background(), "test operation"))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := writer.checkCancellation(ctx, "test operation")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "test operation cancelled")
	})
}

func TestParquetReader_MissingFile(t *testing.T) {
	_, err := NewParquetReader(zerolog.Nop()).ReadFile(filepath.Join(t.TempDir(), "missing.parquet"))

	assert.ErrorIs(t, err, errorwrapper.ErrNotFound)
}

func TestStringPtrOrNil(t *testing.T) {
	assert.Nil(t, StringPtrOrNil(""))
	require.NotNil(t, StringPtrOrNil("x"))
	assert.Equal(t, "x", *StringPtrOrNil("x"))
}
