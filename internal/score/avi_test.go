package score

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/lexicon"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// lexiconFrom builds a lexicon containing exactly the given words.
func lexiconFrom(t *testing.T, words ...string) *lexicon.Lexicon {
	t.Helper()
	path := filepath.Join(t.TempDir(), "woorden.csv")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}
	return lexicon.LoadFile(path)
}

func TestAVIMinimumTokens(t *testing.T) {
	s := New(nil)

	nine := "een twee drie vier vijf zes zeven acht negen"
	if _, ok := s.AVI(nine, ""); ok {
		t.Error("9 tokens should yield no result")
	}

	ten := nine + " tien"
	if _, ok := s.AVI(ten, ""); !ok {
		t.Error("10 tokens should yield a result")
	}
}

func TestAVIFormula(t *testing.T) {
	// Ten 4-letter tokens, eight of which are in the lexicon:
	// pct_frequent = 80, avg word length = 4.0, so
	// bilt = 43.21 - 0.23*80 + 8.63*4.0 = 59.33, inside AVI-E3 [56, 60).
	words := []string{"aaaa", "bbbb", "cccc", "dddd", "eeee", "ffff", "gggg", "hhhh", "iiii", "jjjj"}
	lex := lexiconFrom(t, words[:8]...)

	s := New(lex)
	res, ok := s.AVI(strings.Join(words, " ")+".", "")
	if !ok {
		t.Fatal("expected a result")
	}

	if !almostEqual(res.PctFrequent, 80.0) {
		t.Errorf("PctFrequent = %v, want 80", res.PctFrequent)
	}
	if !almostEqual(res.AvgWordLen, 4.0) {
		t.Errorf("AvgWordLen = %v, want 4.0", res.AvgWordLen)
	}
	want := 43.21 - 0.23*80 + 8.63*4.0
	if !almostEqual(res.Bilt, want) {
		t.Errorf("Bilt = %v, want %v", res.Bilt, want)
	}
	if res.Band != "AVI-E3" {
		t.Errorf("Band = %s, want AVI-E3", res.Band)
	}
}

func TestClassifyAVITotal(t *testing.T) {
	// Every score in a wide range must match exactly one band.
	bands := level.AVIBands()
	for bilt := -100.0; bilt <= 200.0; bilt += 0.25 {
		matches := 0
		for _, b := range bands {
			if b.Contains(bilt) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("bilt %v matches %d bands, want exactly 1", bilt, matches)
		}
	}

	if got := classifyAVI(-100); got != "AVI-M3" {
		t.Errorf("classifyAVI(-100) = %s, want AVI-M3", got)
	}
	if got := classifyAVI(55.99); got != "AVI-M3" {
		t.Errorf("classifyAVI(55.99) = %s, want AVI-M3", got)
	}
	if got := classifyAVI(77.0); got != "AVI-Plus" {
		t.Errorf("classifyAVI(77.0) = %s, want AVI-Plus", got)
	}
	if got := classifyAVI(200); got != "AVI-Plus" {
		t.Errorf("classifyAVI(200) = %s, want AVI-Plus", got)
	}
}

func TestAVIFallbackPercentage(t *testing.T) {
	s := New(nil)
	res, ok := s.AVI("de hond en de kat en de vis en de muis spelen.", "")
	if !ok {
		t.Fatal("expected a result")
	}
	if !almostEqual(res.PctFrequent, 70.0) {
		t.Errorf("PctFrequent = %v, want fallback 70", res.PctFrequent)
	}
}

func TestAVISyllableHistogram(t *testing.T) {
	s := New(nil)
	res, ok := s.AVI("ik zie een boom en een huis en een computer staan.", "")
	if !ok {
		t.Fatal("expected a result")
	}

	// ik zie een boom en een huis en een staan -> 1 syllable (10 tokens),
	// computer -> 3.
	if res.SyllableCounts[1] != 10 {
		t.Errorf("SyllableCounts[1] = %d, want 10", res.SyllableCounts[1])
	}
	if res.SyllableCounts[3] != 1 {
		t.Errorf("SyllableCounts[3] = %d, want 1", res.SyllableCounts[3])
	}
}

func TestAVITargetCaps(t *testing.T) {
	s := New(nil)
	input := "de computer staat op tafel en de computer zoemt zacht. " +
		"ik kijk er heel stil en ook heel blij naar."

	res, ok := s.AVI(input, "AVI-M3")
	if !ok {
		t.Fatal("expected a result")
	}

	// AVI-M3 caps words at 1 syllable; computer (3) and tafel (2) exceed
	// it. Duplicates are reported once.
	var words []string
	for _, w := range res.OverlongWords {
		words = append(words, w.Word)
	}
	if !reflect.DeepEqual(words, []string{"computer", "tafel"}) {
		t.Errorf("OverlongWords = %v, want [computer tafel]", words)
	}

	// AVI-M3 caps sentences at 6 words; both sentences exceed it.
	if len(res.OverlongSentences) != 2 {
		t.Fatalf("len(OverlongSentences) = %d, want 2", len(res.OverlongSentences))
	}
	if res.OverlongSentences[0].Words != 10 {
		t.Errorf("first overlong sentence has %d words, want 10", res.OverlongSentences[0].Words)
	}
}

func TestAVINoTargetNoCaps(t *testing.T) {
	s := New(nil)
	res, ok := s.AVI("de computer staat op de tafel en hij zoemt zachtjes.", "")
	if !ok {
		t.Fatal("expected a result")
	}
	if res.OverlongWords != nil || res.OverlongSentences != nil {
		t.Error("cap listings should be empty without a target band")
	}
}

func TestAVIIdempotent(t *testing.T) {
	s := New(lexicon.Default())
	input := "De hond rent door de tuin. De kat kijkt rustig toe vanaf het warme dak."

	first, ok1 := s.AVI(input, "AVI-E3")
	second, ok2 := s.AVI(input, "AVI-E3")
	if !ok1 || !ok2 {
		t.Fatal("expected results")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs:\n%+v\n%+v", first, second)
	}
}

func TestAVISingleSentence(t *testing.T) {
	s := New(nil)
	// No terminators: the splitter keeps the whole text as one sentence.
	res, ok := s.AVI("de hond en de kat en de vis en de muis spelen samen buiten", "")
	if !ok {
		t.Fatal("expected a result")
	}
	if !almostEqual(res.AvgSentenceLen, float64(res.TotalWords)) {
		t.Errorf("AvgSentenceLen = %v, want total token count %d", res.AvgSentenceLen, res.TotalWords)
	}
}

func TestAVISentenceFallback(t *testing.T) {
	s := New(nil)
	// Every piece is 5 characters or fewer, so the splitter drops them
	// all and the whole text counts as a single sentence of all tokens.
	res, ok := s.AVI("ab cd. ef gh. ij kl. mn op. qr st.", "")
	if !ok {
		t.Fatal("expected a result")
	}
	if res.TotalWords != 10 {
		t.Fatalf("TotalWords = %d, want 10", res.TotalWords)
	}
	if !almostEqual(res.AvgSentenceLen, 10) {
		t.Errorf("AvgSentenceLen = %v, want 10", res.AvgSentenceLen)
	}
}
