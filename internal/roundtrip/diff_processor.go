package roundtrip

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffConfig holds configuration for character diffing
type DiffConfig struct {
	EnableSemanticCleanup bool
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		EnableSemanticCleanup: true,
	}
}

// DiffProcessor handles the core diffing logic
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DiffConfig
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DiffConfig) *DiffProcessor {
	return &DiffProcessor{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// ProcessDiff generates a character diff between two strings
func (dp *DiffProcessor) ProcessDiff(text1, text2 string) []diffmatchpatch.Diff {
	diffs := dp.dmp.DiffMain(text1, text2, false)

	if dp.config.EnableSemanticCleanup {
		diffs = dp.dmp.DiffCleanupSemantic(diffs)
	}

	return diffs
}

// PrettyText renders diffs with ANSI colors for terminals
func (dp *DiffProcessor) PrettyText(diffs []diffmatchpatch.Diff) string {
	return dp.dmp.DiffPrettyText(diffs)
}

// MarkupText renders diffs as plain text, deletions as [-x-] and insertions
// as {+x+}. Identical inputs render as "".
func MarkupText(diffs []diffmatchpatch.Diff) string {
	if IsIdentical(diffs) {
		return ""
	}

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

// DiffStatistics holds diff calculation results
type DiffStatistics struct {
	CharsAdded   int
	CharsDeleted int
	IsIdentical  bool
}

// CalculateStats computes rune counts from diff results
func CalculateStats(diffs []diffmatchpatch.Diff) DiffStatistics {
	stats := DiffStatistics{}

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			stats.CharsAdded += len([]rune(diff.Text))
		case diffmatchpatch.DiffDelete:
			stats.CharsDeleted += len([]rune(diff.Text))
		}
	}

	stats.IsIdentical = IsIdentical(diffs)
	return stats
}

// IsIdentical reports whether diffs contain only equalities
func IsIdentical(diffs []diffmatchpatch.Diff) bool {
	for _, diff := range diffs {
		if diff.Type != diffmatchpatch.DiffEqual {
			return false
		}
	}
	return true
}
