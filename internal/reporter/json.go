package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/leesgraad/internal/score"
)

// JSONReporter outputs results as JSON with display-precision values:
// word lengths and BILT at 2 decimals, percentages and sentence lengths
// at 1, the comprehension score at 3.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput is the top-level JSON document.
type JSONOutput struct {
	Source string   `json:"bron"`
	Target string   `json:"doelniveau,omitempty"`
	AVI    *JSONAVI `json:"avi,omitempty"`
	REF    *JSONREF `json:"referentie,omitempty"`
}

// JSONAVI is the technical-reading result in JSON form.
type JSONAVI struct {
	Analyzed          bool                     `json:"geanalyseerd"`
	Bilt              float64                  `json:"bilt,omitempty"`
	Band              string                   `json:"niveau,omitempty"`
	TotalWords        int                      `json:"totaal_woorden,omitempty"`
	AvgWordLen        float64                  `json:"gem_woordlengte,omitempty"`
	PctFrequent       float64                  `json:"pct_frequent,omitempty"`
	AvgSentenceLen    float64                  `json:"gem_zinslengte,omitempty"`
	SyllableCounts    map[int]int              `json:"lettergreep_verdeling,omitempty"`
	OverlongWords     []score.OverlongWord     `json:"te_lange_woorden,omitempty"`
	OverlongSentences []score.OverlongSentence `json:"te_lange_zinnen,omitempty"`
	Suggestions       []string                 `json:"suggesties,omitempty"`
}

// JSONREF is the comprehension result in JSON form.
type JSONREF struct {
	Analyzed        bool     `json:"geanalyseerd"`
	Band            string   `json:"niveau,omitempty"`
	Score           float64  `json:"score,omitempty"`
	Confidence      string   `json:"betrouwbaarheid,omitempty"`
	TotalWords      int      `json:"totaal_woorden,omitempty"`
	AvgWordLen      float64  `json:"gem_woordlengte,omitempty"`
	AvgSentenceLen  float64  `json:"gem_zinslengte,omitempty"`
	PctFrequent     float64  `json:"pct_frequent,omitempty"`
	PctLongSent     float64  `json:"pct_lange_zinnen"`
	MarkerDiversity int      `json:"signaalwoord_diversiteit"`
	Suggestions     []string `json:"suggesties,omitempty"`
}

// Report encodes the analysis as indented JSON.
func (r *JSONReporter) Report(a *Analysis) error {
	out := JSONOutput{
		Source: a.Source,
		Target: a.Target,
	}

	if a.AVIRequested {
		avi := &JSONAVI{Analyzed: a.AVI != nil}
		if res := a.AVI; res != nil {
			avi.Bilt = round(res.Bilt, 2)
			avi.Band = res.Band
			avi.TotalWords = res.TotalWords
			avi.AvgWordLen = round(res.AvgWordLen, 2)
			avi.PctFrequent = round(res.PctFrequent, 1)
			avi.AvgSentenceLen = round(res.AvgSentenceLen, 1)
			avi.SyllableCounts = res.SyllableCounts
			avi.OverlongWords = res.OverlongWords
			avi.OverlongSentences = res.OverlongSentences
			avi.Suggestions = a.AVISuggestions
		}
		out.AVI = avi
	}

	if a.REFRequested {
		ref := &JSONREF{Analyzed: a.REF != nil}
		if res := a.REF; res != nil {
			ref.Band = res.Band
			ref.Score = round(res.Score, 3)
			ref.Confidence = res.Confidence
			ref.TotalWords = res.TotalWords
			ref.AvgWordLen = round(res.AvgWordLen, 2)
			ref.AvgSentenceLen = round(res.AvgSentenceLen, 1)
			ref.PctFrequent = round(res.PctFrequent, 1)
			ref.PctLongSent = round(res.LongSentenceRatio*100, 1)
			ref.MarkerDiversity = res.MarkerDiversity
			ref.Suggestions = a.REFSuggestions
		}
		out.REF = ref
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
