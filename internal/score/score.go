// Package score implements the two readability classifiers: the AVI
// technical-reading model (word frequency and word length) and the
// referentieniveau comprehension model (sentence complexity and discourse
// markers), plus the suggestion engine that explains the gap to a target
// band.
//
// Both models are fixed linear regressions. The coefficients, cutoffs,
// and feature arithmetic are calibration constants; they are not tunable
// at runtime and must not be "improved" independently of each other.
package score

import (
	"unicode/utf8"

	"github.com/pthm/leesgraad/internal/lexicon"
	"github.com/pthm/leesgraad/internal/text"
)

// Fallback frequent-word percentages used when no word list is available.
const (
	fallbackPctFrequentAVI = 70.0
	fallbackPctFrequentREF = 65.0
)

// Scorer grades texts against the static band tables. The lexicon is an
// optional dependency: nil or empty degrades the frequent-word feature to
// the fixed fallback percentages. A Scorer is stateless per call and safe
// for concurrent use.
type Scorer struct {
	lex *lexicon.Lexicon
}

// New creates a Scorer. lex may be nil.
func New(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// features holds the measurements shared by both models.
type features struct {
	totalWords      int
	avgWordLen      float64
	avgSentenceLen  float64
	sentenceLengths []int
}

// extract computes the shared features. When the splitter found no
// sentences the whole text counts as a single sentence of totalWords
// tokens.
func extract(tokens []string, sentences []string) features {
	f := features{totalWords: len(tokens)}

	chars := 0
	for _, t := range tokens {
		chars += utf8.RuneCountInString(t)
	}
	f.avgWordLen = float64(chars) / float64(f.totalWords)

	if len(sentences) > 0 {
		total := 0
		for _, s := range sentences {
			n := len(text.Tokenize(s))
			f.sentenceLengths = append(f.sentenceLengths, n)
			total += n
		}
		f.avgSentenceLen = float64(total) / float64(len(f.sentenceLengths))
	} else {
		f.sentenceLengths = []int{f.totalWords}
		f.avgSentenceLen = float64(f.totalWords)
	}

	return f
}

// pctFrequent computes the percentage of tokens found in the lexicon, or
// returns fallback when no lexicon is available.
func (s *Scorer) pctFrequent(tokens []string, fallback float64) float64 {
	if s.lex.Empty() {
		return fallback
	}
	found := 0
	for _, t := range tokens {
		if s.lex.Contains(t) {
			found++
		}
	}
	return float64(found) / float64(len(tokens)) * 100
}
