package datastore

import (
	"errors"
	"io"
	"os"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/aleister1102/mdurl/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ParquetReader reads back files produced by ParquetWriter
type ParquetReader struct {
	logger zerolog.Logger
}

// NewParquetReader creates a new ParquetReader
func NewParquetReader(logger zerolog.Logger) *ParquetReader {
	return &ParquetReader{
		logger: logger.With().Str("component", "ParquetReader").Logger(),
	}
}

// ReadFile returns every record stored in filePath
func (pr *ParquetReader) ReadFile(filePath string) ([]models.ParquetFormattedURL, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.WrapError(errorwrapper.ErrNotFound, "parquet file "+filePath)
		}
		return nil, errorwrapper.WrapError(err, "failed to open parquet file "+filePath)
	}
	defer file.Close()

	reader := parquet.NewReader(file)
	defer reader.Close()

	var records []models.ParquetFormattedURL
	for {
		row := models.ParquetFormattedURL{}
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			pr.logger.Error().Err(err).Str("file", filePath).Msg("Failed to read row from parquet file")
			return nil, errorwrapper.WrapError(err, "failed to read row from "+filePath)
		}
		records = append(records, row)
	}

	pr.logger.Debug().Int("record_count", len(records)).Str("file", filePath).Msg("Successfully read records from Parquet file")
	return records, nil
}
