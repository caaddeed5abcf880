package datastore

import (
	"time"

	"github.com/aleister1102/mdurl/internal/models"
	"github.com/rs/zerolog"
)

// RecordTransformer handles transformation of records
type RecordTransformer struct {
	logger zerolog.Logger
}

// NewRecordTransformer creates a new RecordTransformer
func NewRecordTransformer(logger zerolog.Logger) *RecordTransformer {
	return &RecordTransformer{
		logger: logger.With().Str("component", "RecordTransformer").Logger(),
	}
}

// TransformToParquetRecord converts a models.FormatResult to a models.ParquetFormattedURL
func (rt *RecordTransformer) TransformToParquetRecord(r models.FormatResult, processedAt time.Time) models.ParquetFormattedURL {
	return models.ParquetFormattedURL{
		Input:    r.Input,
		Human:    StringPtrOrNil(r.Human),
		Computer: StringPtrOrNil(r.Computer),

		Protocol: cloneStringPtr(r.URL.Protocol),
		Slashes:  r.URL.Slashes,
		Auth:     cloneStringPtr(r.URL.Auth),
		Hostname: cloneStringPtr(r.URL.Hostname),
		Port:     cloneStringPtr(r.URL.Port),
		Pathname: cloneStringPtr(r.URL.Pathname),
		Search:   cloneStringPtr(r.URL.Search),
		Hash:     cloneStringPtr(r.URL.Hash),

		MaxLength:          int32(r.MaxLength),
		ProcessedTimestamp: processedAt.UnixMilli(),
	}
}

// TransformAll converts a batch, stamping every record with the same time
func (rt *RecordTransformer) TransformAll(results []models.FormatResult, processedAt time.Time) []models.ParquetFormattedURL {
	records := make([]models.ParquetFormattedURL, 0, len(results))
	for _, r := range results {
		records = append(records, rt.TransformToParquetRecord(r, processedAt))
	}
	rt.logger.Debug().Int("count", len(records)).Msg("Transformed format results")
	return records
}
