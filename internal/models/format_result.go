package models

import (
	"github.com/aleister1102/mdurl/internal/urlparse"
)

// FormatResult is everything the CLI derives from one input URL
type FormatResult struct {
	Input     string       `json:"input" yaml:"input"`
	Human     string       `json:"human" yaml:"human"`
	Computer  string       `json:"computer" yaml:"computer"`
	URL       urlparse.URL `json:"url" yaml:"url"`
	MaxLength int          `json:"max_length" yaml:"max_length"`
}
