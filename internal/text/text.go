// Package text implements the low-level text features the readability
// models are calibrated against: word tokenization, sentence splitting,
// and syllable estimation.
//
// The arithmetic here is deliberately simple. The regression thresholds
// in internal/score were tuned against these exact rules, so changing
// them (smarter sentence detection, dictionary syllables) would shift
// every classification.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordPattern matches a maximal run of word characters: letters, digits,
// underscore, and combining marks (diacritics).
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}\p{M}_]+`)

// sentencePattern matches a run of sentence-ending punctuation.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// Tokenize splits text into lowercase word tokens. Punctuation,
// whitespace, and symbols act as separators and are discarded. Order is
// preserved and tokens are not deduplicated.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// SplitSentences splits text into sentence spans on runs of '.', '!' and
// '?'. Each piece is trimmed; pieces of 5 characters or fewer are dropped
// to filter abbreviations and fragments. Terminator-free text therefore
// comes back as a single sentence, not empty. The result is empty only
// when every piece is 5 characters or fewer; callers then treat the whole
// text as one sentence.
func SplitSentences(text string) []string {
	var sentences []string
	for _, part := range sentencePattern.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > 5 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
