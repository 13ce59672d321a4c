// Package lexicon provides the frequent-word list used for the
// %-frequent-words feature. The list is loaded once, is immutable
// afterwards, and may safely be shared across concurrent analyses.
package lexicon

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

//go:embed woordenlijst.csv
var embedded []byte

// Lexicon is an immutable set of lowercase frequent words. The zero value
// and an empty Lexicon are both valid: membership tests simply return
// false, and scorers fall back to their default percentages.
type Lexicon struct {
	words map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the process-wide lexicon backed by the embedded word
// list, loading it on first use.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := parse(bytes.NewReader(embedded))
		if err != nil {
			slog.Warn("frequent-word list unavailable, falling back to default percentages", "err", err)
			lex = &Lexicon{}
		}
		defaultLex = lex
	})
	return defaultLex
}

// LoadFile loads a word list from a CSV file (one word per row, first
// column). A load failure is not fatal: it logs a warning and returns an
// empty lexicon so analysis degrades to the fallback percentages.
func LoadFile(path string) *Lexicon {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("could not open word list, falling back to default percentages", "path", path, "err", err)
		return &Lexicon{}
	}
	defer f.Close()

	lex, err := parse(f)
	if err != nil {
		slog.Warn("could not parse word list, falling back to default percentages", "path", path, "err", err)
		return &Lexicon{}
	}
	return lex
}

func parse(r io.Reader) (*Lexicon, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	words := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		w := strings.ToLower(strings.TrimSpace(rec[0]))
		if w == "" {
			continue
		}
		// Header row from the source spreadsheet.
		if i == 0 && w == "woord" {
			continue
		}
		words[w] = struct{}{}
	}

	return &Lexicon{words: words}, nil
}

// Contains reports whether word is in the frequent-word list. Matching is
// case-insensitive.
func (l *Lexicon) Contains(word string) bool {
	if l == nil || l.words == nil {
		return false
	}
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Empty reports whether the lexicon has no words, which happens when the
// resource failed to load. Scorers use this to switch to fixed fallback
// percentages.
func (l *Lexicon) Empty() bool {
	return l == nil || len(l.words) == 0
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}
