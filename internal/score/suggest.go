package score

import (
	"fmt"

	"github.com/pthm/leesgraad/internal/level"
)

// Tolerances for suggestion emission. A feature within tolerance of the
// target profile produces no advisory.
const (
	wordLenTolerance      = 0.2
	sentenceLenTolerance  = 2.0
	longSentenceTolerance = 5.0
	markerFloor           = 4
)

// SuggestAVI compares a technical-reading result against a target band
// and returns ordered remediation advice. The direction follows the band
// ordinals: a lower target simplifies, a higher target enriches, an equal
// target refines in place. An unknown target or no detected gap yields an
// empty slice; SuggestAVI never fails.
func SuggestAVI(r *AVIResult, targetBand string) []string {
	target, ok := level.AVIBandByName(targetBand)
	if !ok || r == nil {
		return nil
	}

	currentIdx := level.AVIIndex(r.Band)
	targetIdx := level.AVIIndex(targetBand)

	var out []string
	switch {
	case targetIdx < currentIdx:
		if r.AvgWordLen > target.AvgWordLen+wordLenTolerance {
			out = append(out, fmt.Sprintf("Kortere woorden: huidige gemiddelde %.2f letters, streef naar %.1f", r.AvgWordLen, target.AvgWordLen))
		}
		if r.PctFrequent < target.PctFrequent {
			out = append(out, fmt.Sprintf("Frequentere woorden: nu %.0f%% frequent, streef naar %.0f%%", r.PctFrequent, target.PctFrequent))
		}
		if target.MaxSentenceLen > 0 {
			out = append(out, fmt.Sprintf("Kortere zinnen: maximaal %d woorden per zin", target.MaxSentenceLen))
		}
		if target.MaxSyllables > 0 {
			out = append(out, fmt.Sprintf("Gebruik woorden van maximaal %d lettergrepen", target.MaxSyllables))
		}
		if target.Forbidden != "" {
			out = append(out, "Vermijd: "+target.Forbidden)
		}
	case targetIdx > currentIdx:
		if r.AvgWordLen < target.AvgWordLen-wordLenTolerance {
			out = append(out, fmt.Sprintf("Langere woorden: huidige gemiddelde %.2f letters, streef naar %.1f", r.AvgWordLen, target.AvgWordLen))
		}
		if r.PctFrequent > target.PctFrequent {
			out = append(out, fmt.Sprintf("Minder frequente woorden: nu %.0f%% frequent, streef naar %.0f%%", r.PctFrequent, target.PctFrequent))
		}
		if target.NewStructures != "" {
			out = append(out, "Nieuw toegestaan: "+target.NewStructures)
		}
	default:
		// Same band: only point at concrete threshold violations.
		if r.AvgWordLen > target.AvgWordLen+wordLenTolerance {
			out = append(out, fmt.Sprintf("Kortere woorden: huidige gemiddelde %.2f letters, streef naar %.1f", r.AvgWordLen, target.AvgWordLen))
		} else if r.AvgWordLen < target.AvgWordLen-wordLenTolerance {
			out = append(out, fmt.Sprintf("Langere woorden: huidige gemiddelde %.2f letters, streef naar %.1f", r.AvgWordLen, target.AvgWordLen))
		}
		if len(r.OverlongSentences) > 0 {
			out = append(out, fmt.Sprintf("Kort %d zinnen in tot maximaal %d woorden", len(r.OverlongSentences), target.MaxSentenceLen))
		}
		if len(r.OverlongWords) > 0 {
			out = append(out, fmt.Sprintf("Vervang %d woorden met meer dan %d lettergrepen", len(r.OverlongWords), target.MaxSyllables))
		}
	}

	if target.WordTypes != "" {
		out = append(out, fmt.Sprintf("Woordtypen %s: %s", target.Name, target.WordTypes))
	}

	return out
}

// SuggestREF compares a comprehension result against a target band and
// returns ordered remediation advice. Same direction rules as SuggestAVI;
// the marker-diversity floor applies only when enriching.
func SuggestREF(r *REFResult, targetBand string) []string {
	target, ok := level.REFBandByName(targetBand)
	if !ok || r == nil {
		return nil
	}

	currentIdx := level.REFIndex(r.Band)
	targetIdx := level.REFIndex(targetBand)
	longPct := r.LongSentenceRatio * 100

	var out []string
	switch {
	case targetIdx < currentIdx:
		if r.AvgWordLen > target.AvgWordLen+wordLenTolerance {
			out = append(out, fmt.Sprintf("Kortere woorden: huidige gemiddelde %.2f letters, streef naar ~%.1f", r.AvgWordLen, target.AvgWordLen))
		}
		if r.AvgSentenceLen > target.AvgSentenceLen+sentenceLenTolerance {
			out = append(out, fmt.Sprintf("Kortere zinnen: huidige gemiddelde %.0f woorden, streef naar ~%.0f", r.AvgSentenceLen, target.AvgSentenceLen))
		}
		if longPct > target.LongSentencePct+longSentenceTolerance {
			out = append(out, fmt.Sprintf("Minder lange zinnen: nu %.0f%% boven %d woorden, streef naar ~%.0f%%", longPct, LongSentenceWords, target.LongSentencePct))
		}
		out = append(out, "Tip: gebruik korte, concrete zinnen en vermijd bijzinnen en abstracte begrippen")
	case targetIdx > currentIdx:
		if r.AvgWordLen < target.AvgWordLen-wordLenTolerance {
			out = append(out, fmt.Sprintf("Langere woorden: huidige gemiddelde %.2f letters, streef naar ~%.1f", r.AvgWordLen, target.AvgWordLen))
		}
		if r.AvgSentenceLen < target.AvgSentenceLen-sentenceLenTolerance {
			out = append(out, fmt.Sprintf("Langere zinnen: huidige gemiddelde %.0f woorden, streef naar ~%.0f", r.AvgSentenceLen, target.AvgSentenceLen))
		}
		if longPct < target.LongSentencePct-longSentenceTolerance {
			out = append(out, fmt.Sprintf("Meer lange zinnen: nu %.0f%% boven %d woorden, streef naar ~%.0f%%", longPct, LongSentenceWords, target.LongSentencePct))
		}
		if r.MarkerDiversity < markerFloor {
			out = append(out, "Meer signaalwoorden: gebruik verbindingswoorden uit meer categorieën (causaal, contrastief, conclusief)")
		}
		out = append(out, "Tip: voeg bijzinnen toe en gebruik abstractere begrippen met een expliciete argumentatiestructuur")
	default:
		if r.AvgWordLen > target.AvgWordLen+wordLenTolerance {
			out = append(out, fmt.Sprintf("Kortere woorden: huidige gemiddelde %.2f letters, streef naar ~%.1f", r.AvgWordLen, target.AvgWordLen))
		} else if r.AvgWordLen < target.AvgWordLen-wordLenTolerance {
			out = append(out, fmt.Sprintf("Langere woorden: huidige gemiddelde %.2f letters, streef naar ~%.1f", r.AvgWordLen, target.AvgWordLen))
		}
		if r.AvgSentenceLen > target.AvgSentenceLen+sentenceLenTolerance {
			out = append(out, fmt.Sprintf("Kortere zinnen: huidige gemiddelde %.0f woorden, streef naar ~%.0f", r.AvgSentenceLen, target.AvgSentenceLen))
		} else if r.AvgSentenceLen < target.AvgSentenceLen-sentenceLenTolerance {
			out = append(out, fmt.Sprintf("Langere zinnen: huidige gemiddelde %.0f woorden, streef naar ~%.0f", r.AvgSentenceLen, target.AvgSentenceLen))
		}
		if longPct > target.LongSentencePct+longSentenceTolerance {
			out = append(out, fmt.Sprintf("Minder lange zinnen: nu %.0f%% boven %d woorden, streef naar ~%.0f%%", longPct, LongSentenceWords, target.LongSentencePct))
		} else if longPct < target.LongSentencePct-longSentenceTolerance {
			out = append(out, fmt.Sprintf("Meer lange zinnen: nu %.0f%% boven %d woorden, streef naar ~%.0f%%", longPct, LongSentenceWords, target.LongSentencePct))
		}
	}

	return out
}
