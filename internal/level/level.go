// Package level holds the static calibration tables: the eleven AVI
// technical-reading bands, the three comprehension (referentieniveau)
// bands, and the discourse-marker categories. The tables are embedded as
// YAML, parsed once at init, and never mutated afterwards.
package level

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// AVIBand describes one technical-reading band. BiltMin/BiltMax bound the
// half-open score interval [min, max); a nil bound is unbounded. A zero
// MaxSyllables or MaxSentenceLen means the band imposes no such cap.
type AVIBand struct {
	Name           string         `yaml:"name"`
	BiltMin        *float64       `yaml:"bilt_min"`
	BiltMax        *float64       `yaml:"bilt_max"`
	BiltTypical    float64        `yaml:"bilt_typical"`
	PctFrequent    float64        `yaml:"pct_frequent"`
	AvgWordLen     float64        `yaml:"avg_word_len"`
	MaxSyllables   int            `yaml:"max_syllables"`
	MaxSentenceLen int            `yaml:"max_sentence_len"`
	Age            float64        `yaml:"age"`
	WordTypes      string         `yaml:"word_types"`
	SentenceTraits string         `yaml:"sentence_traits"`
	NewStructures  string         `yaml:"new_structures"`
	Forbidden      string         `yaml:"forbidden"`
	Examples       []string       `yaml:"examples"`
	TargetWords    map[int]int    `yaml:"target_words"`
}

// Contains reports whether bilt falls inside the band's half-open
// interval [min, max).
func (b AVIBand) Contains(bilt float64) bool {
	if b.BiltMin != nil && bilt < *b.BiltMin {
		return false
	}
	if b.BiltMax != nil && bilt >= *b.BiltMax {
		return false
	}
	return true
}

// REFBand describes one comprehension band with the typical feature
// profile of texts at that level.
type REFBand struct {
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	AvgWordLen      float64 `yaml:"avg_word_len"`
	AvgSentenceLen  float64 `yaml:"avg_sentence_len"`
	LongSentencePct float64 `yaml:"long_sentence_pct"`
}

// MarkerCategory is one discourse-marker category with its fixed word list.
type MarkerCategory struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

var (
	aviBands   []AVIBand
	refBands   []REFBand
	markerCats []MarkerCategory
)

func init() {
	var avi struct {
		Bands []AVIBand `yaml:"bands"`
	}
	mustLoad("tables/avi.yaml", &avi)
	aviBands = avi.Bands

	var ref struct {
		Bands []REFBand `yaml:"bands"`
	}
	mustLoad("tables/ref.yaml", &ref)
	refBands = ref.Bands

	var markers struct {
		Categories []MarkerCategory `yaml:"categories"`
	}
	mustLoad("tables/markers.yaml", &markers)
	markerCats = markers.Categories
}

func mustLoad(name string, target any) {
	data, err := tablesFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("level: embedded table %s missing: %v", name, err))
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		panic(fmt.Sprintf("level: embedded table %s corrupt: %v", name, err))
	}
}

// AVIBands returns the eleven technical-reading bands in ascending order.
// The returned slice is shared; callers must not modify it.
func AVIBands() []AVIBand {
	return aviBands
}

// AVIBandByName returns the band with the given name.
func AVIBandByName(name string) (AVIBand, bool) {
	for _, b := range aviBands {
		if b.Name == name {
			return b, true
		}
	}
	return AVIBand{}, false
}

// AVIIndex returns the ordinal position of an AVI band name, or -1 when
// the name is unknown.
func AVIIndex(name string) int {
	for i, b := range aviBands {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// REFBands returns the three comprehension bands in ascending order.
// The returned slice is shared; callers must not modify it.
func REFBands() []REFBand {
	return refBands
}

// REFBandByName returns the comprehension band with the given name.
func REFBandByName(name string) (REFBand, bool) {
	for _, b := range refBands {
		if b.Name == name {
			return b, true
		}
	}
	return REFBand{}, false
}

// REFIndex returns the ordinal position of a comprehension band name, or
// -1 when the name is unknown.
func REFIndex(name string) int {
	for i, b := range refBands {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// Markers returns the discourse-marker categories in their fixed order.
// The returned slice is shared; callers must not modify it.
func Markers() []MarkerCategory {
	return markerCats
}

// TargetWords returns the target word count for reading a text at the
// given band in the given number of minutes. Unknown combinations fall
// back to 100 words.
func TargetWords(band string, minutes int) int {
	b, ok := AVIBandByName(band)
	if !ok {
		return 100
	}
	if n, ok := b.TargetWords[minutes]; ok {
		return n
	}
	if n, ok := b.TargetWords[1]; ok {
		return n
	}
	return 100
}

// Propositions maps a word budget to the recommended number of
// propositions for a text of that length.
func Propositions(targetWords int) int {
	switch {
	case targetWords < 60:
		return 3
	case targetWords < 90:
		return 5
	case targetWords < 120:
		return 6
	case targetWords < 160:
		return 8
	case targetWords < 200:
		return 10
	default:
		return 12
	}
}
