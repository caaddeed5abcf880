// Package roundtrip checks that parsing a URL and serializing it again gives
// back the original text, and shows where it does not.
package roundtrip

import (
	"github.com/aleister1102/mdurl/internal/urlparse"

	"github.com/rs/zerolog"
)

// Result is the outcome of checking one input
type Result struct {
	Input  string         `json:"input" yaml:"input"`
	Output string         `json:"output" yaml:"output"`
	OK     bool           `json:"ok" yaml:"ok"`
	Diff   string         `json:"diff,omitempty" yaml:"diff,omitempty"`
	Stats  DiffStatistics `json:"stats" yaml:"stats"`
}

// Checker compares inputs with their parse-then-serialize form
type Checker struct {
	slashesDenoteHost bool
	processor         *DiffProcessor
	logger            zerolog.Logger
}

// NewChecker creates a checker. slashesDenoteHost is passed to the parser.
func NewChecker(slashesDenoteHost bool, logger zerolog.Logger) *Checker {
	return &Checker{
		slashesDenoteHost: slashesDenoteHost,
		processor:         NewDiffProcessor(DefaultDiffConfig()),
		logger:            logger.With().Str("component", "RoundTripChecker").Logger(),
	}
}

// Check parses input, serializes the record and diffs the two strings
func (c *Checker) Check(input string) Result {
	output := urlparse.Parse(input, c.slashesDenoteHost).String()
	if output == input {
		return Result{Input: input, Output: output, OK: true, Stats: DiffStatistics{IsIdentical: true}}
	}

	diffs := c.processor.ProcessDiff(input, output)
	stats := CalculateStats(diffs)

	c.logger.Debug().
		Str("input", input).
		Str("output", output).
		Int("chars_added", stats.CharsAdded).
		Int("chars_deleted", stats.CharsDeleted).
		Msg("Round trip mismatch")

	return Result{
		Input:  input,
		Output: output,
		OK:     false,
		Diff:   MarkupText(diffs),
		Stats:  stats,
	}
}

// PrettyDiff renders the mismatch of r with terminal colors, "" when r is OK
func (c *Checker) PrettyDiff(r Result) string {
	if r.OK {
		return ""
	}
	return c.processor.PrettyText(c.processor.ProcessDiff(r.Input, r.Output))
}
