// Package reporter renders analysis results for humans and machines.
package reporter

import (
	"math"

	"github.com/pthm/leesgraad/internal/score"
)

// Analysis bundles the results of one analyze run for reporting. A nil
// result for a requested scale means the text had too few tokens, which
// is reported as an informational note, not an error.
type Analysis struct {
	Source string
	Target string

	AVIRequested bool
	REFRequested bool

	AVI *score.AVIResult
	REF *score.REFResult

	AVISuggestions []string
	REFSuggestions []string
}

// Reporter outputs an analysis.
type Reporter interface {
	Report(a *Analysis) error
}

// round rounds v to the given number of decimal places for display.
func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
