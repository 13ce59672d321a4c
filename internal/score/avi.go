package score

import (
	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/text"
)

// BILT regression, fixed at calibration time:
// bilt = 43.21 - 0.23 * pct_frequent + 8.63 * avg_word_len
const (
	biltIntercept    = 43.21
	biltCoefFrequent = -0.23
	biltCoefWordLen  = 8.63
)

// AVIMinTokens is the minimum token count for a technical-reading
// analysis. Below it the scorer yields no result, which is a normal
// outcome, not a fault.
const AVIMinTokens = 10

// OverlongWord is a distinct word exceeding the target band's
// syllable cap.
type OverlongWord struct {
	Word      string `json:"woord"`
	Syllables int    `json:"lettergrepen"`
}

// OverlongSentence is a sentence exceeding the target band's word cap.
// Text is truncated to 80 characters for display.
type OverlongSentence struct {
	Text  string `json:"tekst"`
	Words int    `json:"woorden"`
}

// AVIResult is the outcome of a technical-reading analysis. It is a
// plain immutable value owned by the caller.
type AVIResult struct {
	Bilt           float64
	Band           string
	TotalWords     int
	AvgWordLen     float64
	PctFrequent    float64
	AvgSentenceLen float64

	// SyllableCounts maps syllable count to number of tokens (repeats
	// counted).
	SyllableCounts map[int]int

	// OverlongWords and OverlongSentences are only populated when a
	// target band with the corresponding cap was supplied.
	OverlongWords     []OverlongWord
	OverlongSentences []OverlongSentence
}

// AVI analyzes text against the technical-reading model. targetBand is
// optional; when it names a band with syllable or sentence-length caps,
// the result lists the violations. Returns (nil, false) when the text has
// fewer than AVIMinTokens tokens.
func (s *Scorer) AVI(input string, targetBand string) (*AVIResult, bool) {
	tokens := text.Tokenize(input)
	if len(tokens) < AVIMinTokens {
		return nil, false
	}
	sentences := text.SplitSentences(input)

	f := extract(tokens, sentences)
	pct := s.pctFrequent(tokens, fallbackPctFrequentAVI)
	bilt := biltIntercept + biltCoefFrequent*pct + biltCoefWordLen*f.avgWordLen

	res := &AVIResult{
		Bilt:           bilt,
		Band:           classifyAVI(bilt),
		TotalWords:     f.totalWords,
		AvgWordLen:     f.avgWordLen,
		PctFrequent:    pct,
		AvgSentenceLen: f.avgSentenceLen,
		SyllableCounts: make(map[int]int),
	}

	for _, tok := range tokens {
		res.SyllableCounts[text.CountSyllables(tok)]++
	}

	if target, ok := level.AVIBandByName(targetBand); ok {
		if target.MaxSyllables > 0 {
			seen := make(map[string]bool)
			for _, tok := range tokens {
				if seen[tok] {
					continue
				}
				seen[tok] = true
				if n := text.CountSyllables(tok); n > target.MaxSyllables {
					res.OverlongWords = append(res.OverlongWords, OverlongWord{Word: tok, Syllables: n})
				}
			}
		}
		if target.MaxSentenceLen > 0 {
			for _, sent := range sentences {
				if n := len(text.Tokenize(sent)); n > target.MaxSentenceLen {
					res.OverlongSentences = append(res.OverlongSentences, OverlongSentence{
						Text:  truncate(sent, 80),
						Words: n,
					})
				}
			}
		}
	}

	return res, true
}

// classifyAVI assigns the first band whose half-open interval contains
// bilt, scanning in ascending order. The topmost band is the default; by
// construction of the table every real score matches exactly one band.
func classifyAVI(bilt float64) string {
	bands := level.AVIBands()
	for _, b := range bands {
		if b.Contains(bilt) {
			return b.Name
		}
	}
	return bands[len(bands)-1].Name
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
