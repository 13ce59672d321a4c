package score

import (
	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/text"
)

// Comprehension regression, fixed at calibration time:
// score = -2.3972 + 0.0208 * long_sent_pct + 0.3423 * marker_diversity
//         + 0.5405 * avg_word_len
const (
	refIntercept    = -2.3972
	refCoefLongSent = 0.0208
	refCoefMarkers  = 0.3423
	refCoefWordLen  = 0.5405
)

// Band cutoffs and confidence sub-thresholds.
const (
	refCutoff2F = 1.25
	refCutoff3F = 2.35
)

// REFMinTokens is the minimum token count for a comprehension analysis.
const REFMinTokens = 20

// LongSentenceWords is the token count above which a sentence counts as
// long (strictly more than this many tokens).
const LongSentenceWords = 20

// Confidence labels for the comprehension classification.
const (
	ConfidenceHigh     = "hoog"
	ConfidenceMedium   = "gemiddeld"
	ConfidenceBoundary = "gemiddeld (grensgebied)"
)

// REFResult is the outcome of a comprehension analysis. It is a plain
// immutable value owned by the caller. PctFrequent is reported for
// display only; it does not enter the score.
type REFResult struct {
	Score          float64
	Band           string
	Confidence     string
	TotalWords     int
	AvgWordLen     float64
	AvgSentenceLen float64
	PctFrequent    float64

	// LongSentenceRatio is the fraction of sentences with strictly more
	// than LongSentenceWords tokens.
	LongSentenceRatio float64

	// MarkerDiversity is the number of distinct discourse-marker
	// categories (0-5) with at least one matching token.
	MarkerDiversity int
}

// REF analyzes text against the comprehension model. Returns (nil, false)
// when the text has fewer than REFMinTokens tokens.
func (s *Scorer) REF(input string) (*REFResult, bool) {
	tokens := text.Tokenize(input)
	if len(tokens) < REFMinTokens {
		return nil, false
	}
	sentences := text.SplitSentences(input)

	f := extract(tokens, sentences)

	long := 0
	for _, n := range f.sentenceLengths {
		if n > LongSentenceWords {
			long++
		}
	}
	longRatio := float64(long) / float64(len(f.sentenceLengths))

	diversity := markerDiversity(tokens)

	score := refIntercept +
		refCoefLongSent*(longRatio*100) +
		refCoefMarkers*float64(diversity) +
		refCoefWordLen*f.avgWordLen

	band, confidence := classifyREF(score)

	return &REFResult{
		Score:             score,
		Band:              band,
		Confidence:        confidence,
		TotalWords:        f.totalWords,
		AvgWordLen:        f.avgWordLen,
		AvgSentenceLen:    f.avgSentenceLen,
		PctFrequent:       s.pctFrequent(tokens, fallbackPctFrequentREF),
		LongSentenceRatio: longRatio,
		MarkerDiversity:   diversity,
	}, true
}

// markerDiversity counts the distinct marker categories with at least one
// exact token match. A token matching several categories contributes to
// each; the count is over categories, not tokens.
func markerDiversity(tokens []string) int {
	diversity := 0
	for _, cat := range level.Markers() {
		words := make(map[string]bool, len(cat.Words))
		for _, w := range cat.Words {
			words[w] = true
		}
		for _, tok := range tokens {
			if words[tok] {
				diversity++
				break
			}
		}
	}
	return diversity
}

// classifyREF maps a comprehension score to a band and a confidence
// label. The cutoffs are inclusive toward the upper band.
func classifyREF(score float64) (band, confidence string) {
	switch {
	case score < refCutoff2F:
		if score < 1.0 {
			return "1F", ConfidenceHigh
		}
		return "1F", ConfidenceMedium
	case score < refCutoff3F:
		if score >= 1.5 && score <= 2.1 {
			return "2F", ConfidenceHigh
		}
		return "2F", ConfidenceBoundary
	default:
		if score > 2.7 {
			return "3F", ConfidenceHigh
		}
		return "3F", ConfidenceMedium
	}
}
