package models

import "time"

// ParquetFormattedURL defines the schema for storing format results using parquet-go/parquet-go.
// Absent URL components stay nil so they can be told apart from empty ones.
type ParquetFormattedURL struct {
	Input    string  `parquet:"input"` // REQUIRED
	Human    *string `parquet:"human,optional"`
	Computer *string `parquet:"computer,optional"`

	Protocol *string `parquet:"protocol,optional"`
	Slashes  bool    `parquet:"slashes"`
	Auth     *string `parquet:"auth,optional"`
	Hostname *string `parquet:"hostname,optional"`
	Port     *string `parquet:"port,optional"`
	Pathname *string `parquet:"pathname,optional"`
	Search   *string `parquet:"search,optional"`
	Hash     *string `parquet:"hash,optional"`

	MaxLength          int32 `parquet:"max_length"`
	ProcessedTimestamp int64 `parquet:"processed_timestamp"` // TIMESTAMP_MILLIS
}

// ProcessedAt returns the processing time of the record
func (p ParquetFormattedURL) ProcessedAt() time.Time {
	return time.UnixMilli(p.ProcessedTimestamp)
}
