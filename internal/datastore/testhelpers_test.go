package datastore

import (
	"github.com/aleister1102/mdurl/internal/models"
	"github.com/aleister1102/mdurl/internal/urlparse"
)

func sampleResults() []models.FormatResult {
	return []models.FormatResult{
		{
			Input:     "https://example.com/a?b#c",
			Human:     "example.com/a?b#c",
			Computer:  "https://example.com/a?b#c",
			URL:       urlparse.Parse("https://example.com/a?b#c", false),
			MaxLength: 50,
		},
		{
			Input:     "mailto:user@example.org",
			Human:     "user@example.org",
			Computer:  "mailto:user@example.org",
			URL:       urlparse.Parse("mailto:user@example.org", false),
			MaxLength: 50,
		},
		{
			Input: "",
			URL:   urlparse.Parse("", false),
		},
	}
}
