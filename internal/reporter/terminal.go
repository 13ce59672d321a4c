package reporter

import (
	"fmt"
	"sort"

	"github.com/pthm/leesgraad/internal/ui"
)

// TerminalReporter renders analysis results for terminal display.
type TerminalReporter struct {
	ui *ui.UI
}

// NewTerminalReporter creates a terminal reporter.
func NewTerminalReporter(u *ui.UI) *TerminalReporter {
	return &TerminalReporter{ui: u}
}

// Report prints the analysis to the terminal.
func (r *TerminalReporter) Report(a *Analysis) error {
	s := r.ui.Styles
	w := r.ui.Writer

	fmt.Fprintln(w, s.Header.Render("Leesbaarheidsanalyse"))
	fmt.Fprintln(w, s.Subheader.Render(a.Source))
	if a.Target != "" {
		fmt.Fprintf(w, "%s %s\n", s.Label.Render("Doelniveau:"), s.Band.Render(a.Target))
	}
	fmt.Fprintln(w)

	if a.AVIRequested {
		r.reportAVI(a)
	}
	if a.REFRequested {
		if a.AVIRequested {
			fmt.Fprintln(w)
		}
		r.reportREF(a)
	}

	return nil
}

func (r *TerminalReporter) reportAVI(a *Analysis) {
	s := r.ui.Styles
	w := r.ui.Writer

	fmt.Fprintln(w, s.Header.Render("Technisch lezen (AVI)"))

	res := a.AVI
	if res == nil {
		fmt.Fprintln(w, s.Warning.Render(s.IconWarning+" Te weinig woorden voor een betrouwbare AVI-analyse (minimaal 10)."))
		return
	}

	fmt.Fprintf(w, "%s %s\n", s.Label.Render("Niveau:"), s.Band.Render(res.Band))
	r.row("BILT-score", fmt.Sprintf("%.2f", res.Bilt))
	r.row("Aantal woorden", fmt.Sprintf("%d", res.TotalWords))
	r.row("Gem. woordlengte", fmt.Sprintf("%.2f letters", res.AvgWordLen))
	r.row("Frequente woorden", fmt.Sprintf("%.1f%%", res.PctFrequent))
	r.row("Gem. zinslengte", fmt.Sprintf("%.1f woorden", res.AvgSentenceLen))

	if len(res.SyllableCounts) > 0 {
		counts := make([]int, 0, len(res.SyllableCounts))
		for n := range res.SyllableCounts {
			counts = append(counts, n)
		}
		sort.Ints(counts)
		fmt.Fprintln(w, s.Label.Render("Lettergrepen:"))
		for _, n := range counts {
			fmt.Fprintf(w, "  %s\n", s.Value.Render(fmt.Sprintf("%d lettergreep: %d woorden", n, res.SyllableCounts[n])))
		}
	}

	if len(res.OverlongWords) > 0 {
		fmt.Fprintln(w, s.Warning.Render(s.IconWarning+" Te lange woorden voor het doelniveau:"))
		for _, ow := range res.OverlongWords {
			fmt.Fprintf(w, "  %s (%d lettergrepen)\n", ow.Word, ow.Syllables)
		}
	}
	if len(res.OverlongSentences) > 0 {
		fmt.Fprintln(w, s.Warning.Render(s.IconWarning+" Te lange zinnen voor het doelniveau:"))
		for _, sent := range res.OverlongSentences {
			fmt.Fprintf(w, "  %q (%d woorden)\n", sent.Text, sent.Words)
		}
	}

	r.suggestions(a.AVISuggestions)
}

func (r *TerminalReporter) reportREF(a *Analysis) {
	s := r.ui.Styles
	w := r.ui.Writer

	fmt.Fprintln(w, s.Header.Render("Begrijpend lezen (referentieniveau)"))

	res := a.REF
	if res == nil {
		fmt.Fprintln(w, s.Warning.Render(s.IconWarning+" Te weinig woorden voor een betrouwbare niveau-analyse (minimaal 20)."))
		return
	}

	fmt.Fprintf(w, "%s %s (%s)\n", s.Label.Render("Niveau:"), s.Band.Render(res.Band), res.Confidence)
	r.row("Score", fmt.Sprintf("%.3f", res.Score))
	r.row("Aantal woorden", fmt.Sprintf("%d", res.TotalWords))
	r.row("Gem. woordlengte", fmt.Sprintf("%.2f letters", res.AvgWordLen))
	r.row("Gem. zinslengte", fmt.Sprintf("%.1f woorden", res.AvgSentenceLen))
	r.row("Frequente woorden", fmt.Sprintf("%.1f%%", res.PctFrequent))
	r.row("Lange zinnen", fmt.Sprintf("%.1f%%", res.LongSentenceRatio*100))
	r.row("Signaalwoord-diversiteit", fmt.Sprintf("%d van 5 categorieën", res.MarkerDiversity))

	r.suggestions(a.REFSuggestions)
}

func (r *TerminalReporter) row(label, value string) {
	s := r.ui.Styles
	fmt.Fprintf(r.ui.Writer, "%s %s\n", s.Label.Render(label+":"), s.Value.Render(value))
}

func (r *TerminalReporter) suggestions(items []string) {
	if len(items) == 0 {
		return
	}
	s := r.ui.Styles
	w := r.ui.Writer
	fmt.Fprintln(w, s.Header.Render("Suggesties"))
	for _, item := range items {
		fmt.Fprintf(w, "%s %s\n", s.Suggestion.Render(s.IconSuggestion), item)
	}
}
