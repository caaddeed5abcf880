package datastore

import (
	"testing"
	"time"

	"github.com/aleister1102/mdurl/internal/models"
	"github.com/aleister1102/mdurl/internal/urlparse"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordTransformer(t *testing.T) {
	transformer := NewRecordTransformer(zerolog.Nop())

	assert.NotNil(t, transformer)
}

func TestRecordTransformer_TransformToParquetRecord(t *testing.T) {
	transformer := NewRecordTransformer(zerolog.Nop())
	processedAt := time.UnixMilli(1700000000123)

	result := models.FormatResult{
		Input:     "http://user@[::1]:8080/p?q=1#h",
		Human:     "[::1]:8080/p?q=1#h",
		Computer:  "http://user@[::1]:8080/p?q=1#h",
		URL:       urlparse.Parse("http://user@[::1]:8080/p?q=1#h", false),
		MaxLength: 40,
	}

	record := transformer.TransformToParquetRecord(result, processedAt)

	assert.Equal(t, result.Input, record.Input)
	require.NotNil(t, record.Human)
	assert.Equal(t, result.Human, *record.Human)
	require.NotNil(t, record.Computer)
	assert.Equal(t, result.Computer, *record.Computer)

	assert.Equal(t, "http:", *record.Protocol)
	assert.True(t, record.Slashes)
	assert.Equal(t, "user", *record.Auth)
	assert.Equal(t, "::1", *record.Hostname)
	assert.Equal(t, "8080", *record.Port)
	assert.Equal(t, "/p", *record.Pathname)
	assert.Equal(t, "?q=1", *record.Search)
	assert.Equal(t, "#h", *record.Hash)

	assert.Equal(t, int32(40), record.MaxLength)
	assert.Equal(t, int64(1700000000123), record.ProcessedTimestamp)
	assert.Equal(t, processedAt, record.ProcessedAt())
}

func TestRecordTransformer_AbsentComponentsStayNil(t *testing.T) {
	transformer := NewRecordTransformer(zerolog.Nop())

	record := transformer.TransformToParquetRecord(models.FormatResult{
		Input: "/just/a/path",
		URL:   urlparse.Parse("/just/a/path", false),
	}, time.Now())

	assert.Nil(t, record.Human)
	assert.Nil(t, record.Computer)
	assert.Nil(t, record.Protocol)
	assert.Nil(t, record.Hostname)
	assert.Nil(t, record.Port)
	assert.Nil(t, record.Search)
	assert.Nil(t, record.Hash)
	require.NotNil(t, record.Pathname)
	assert.Equal(t, "/just/a/path", *record.Pathname)
}

func TestRecordTransformer_DoesNotAliasURL(t *testing.T) {
	transformer := NewRecordTransformer(zerolog.Nop())
	result := models.FormatResult{
		Input: "http://example.com/",
		URL:   urlparse.Parse("http://example.com/", false),
	}

	record := transformer.TransformToParquetRecord(result, time.Now())
	*result.URL.Hostname = "changed.example"

	assert.Equal(t, "example.com", *record.Hostname)
}

func TestRecordTransformer_TransformAll(t *testing.T) {
	transformer := NewRecordTransformer(zerolog.Nop())
	processedAt := time.Now()

	records := transformer.TransformAll(sampleResults(), processedAt)

	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, processedAt.UnixMilli(), r.ProcessedTimestamp)
	}
	assert.Equal(t, "mailto:", *records[1].Protocol)
	assert.Empty(t, records[2].Input)
}
