package converter

import (
	"fmt"
	"strings"

	"github.com/pthm/leesgraad/internal/level"
)

// aviSystemPrompt builds the system prompt for a technical-reading
// conversion from the target band's calibration profile.
func aviSystemPrompt(target level.AVIBand, targetWords int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Je bent een expert tekstschrijver voor Nederlandse kinderen.\n")
	fmt.Fprintf(&sb, "Je converteert teksten naar AVI-niveau %s.\n\n", target.Name)

	sb.WriteString("=== NIVEAU SPECIFICATIES ===\n")
	if target.WordTypes != "" {
		fmt.Fprintf(&sb, "- Woordtypen: %s\n", target.WordTypes)
	}
	if target.SentenceTraits != "" {
		fmt.Fprintf(&sb, "- Zinskenmerken: %s\n", target.SentenceTraits)
	}
	if target.NewStructures != "" {
		fmt.Fprintf(&sb, "- Nieuwe structuren: %s\n", target.NewStructures)
	}
	if target.Forbidden != "" {
		fmt.Fprintf(&sb, "- Vermijd: %s\n", target.Forbidden)
	}
	if len(target.Examples) > 0 {
		fmt.Fprintf(&sb, "- Voorbeeldwoorden: %s\n", strings.Join(target.Examples, ", "))
	}

	sb.WriteString("\n=== BELANGRIJKE REGELS ===\n")
	fmt.Fprintf(&sb, "- Schrijf precies %d woorden (plus of min 15%%)\n", targetWords)
	fmt.Fprintf(&sb, "- Gebruik ongeveer %d proposities (gebeurtenissen of feiten)\n", level.Propositions(targetWords))
	fmt.Fprintf(&sb, "- BILT moet tussen %s en %s zijn\n", formatBound(target.BiltMin, "0"), formatBound(target.BiltMax, "100"))
	fmt.Fprintf(&sb, "- Gemiddelde woordlengte: ongeveer %.1f letters\n", target.AvgWordLen)
	fmt.Fprintf(&sb, "- Frequente woorden: ongeveer %.0f%%\n", target.PctFrequent)
	if target.MaxSyllables > 0 {
		fmt.Fprintf(&sb, "- Maximaal %d lettergrepen per woord\n", target.MaxSyllables)
	}
	if target.MaxSentenceLen > 0 {
		fmt.Fprintf(&sb, "- Maximaal %d woorden per zin\n", target.MaxSentenceLen)
	}
	sb.WriteString("- Behoud de inhoud en betekenis van de originele tekst\n")
	sb.WriteString("- Maak de tekst vloeiend en interessant, geen opsomming\n")
	sb.WriteString("- Geef ALLEEN de tekst, geen uitleg of commentaar")

	return sb.String()
}

func aviUserPrompt(source, targetBand string, targetWords int) string {
	return fmt.Sprintf(`Converteer de volgende tekst naar %s niveau.

ORIGINELE TEKST:
%s

Schrijf nu de geconverteerde tekst (%d woorden):`, targetBand, source, targetWords)
}

// refSystemPrompt builds the system prompt for a comprehension-level
// conversion from the target band's typical feature profile.
func refSystemPrompt(target level.REFBand) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Je bent een expert tekstschrijver voor het Nederlandse onderwijs.\n")
	fmt.Fprintf(&sb, "Je converteert teksten naar referentieniveau %s.\n\n", target.Name)

	fmt.Fprintf(&sb, "=== %s KENMERKEN ===\n", target.Name)
	fmt.Fprintf(&sb, "- Niveau: %s\n", target.Description)
	fmt.Fprintf(&sb, "- Gemiddelde woordlengte: ongeveer %.2f letters\n", target.AvgWordLen)
	fmt.Fprintf(&sb, "- Gemiddelde zinslengte: ongeveer %.1f woorden\n", target.AvgSentenceLen)
	fmt.Fprintf(&sb, "- Lange zinnen (meer dan 20 woorden): ongeveer %.0f%%\n", target.LongSentencePct)

	sb.WriteString("\n=== INSTRUCTIES ===\n")
	switch target.Name {
	case "1F":
		sb.WriteString("- Gebruik korte, eenvoudige zinnen\n")
		sb.WriteString("- Gebruik concrete, alledaagse woorden\n")
		sb.WriteString("- Vermijd bijzinnen en abstracte begrippen\n")
	case "2F":
		sb.WriteString("- Gebruik gemiddeld complexe zinnen\n")
		sb.WriteString("- Mix van eenvoudige en complexere woorden\n")
	case "3F":
		sb.WriteString("- Gebruik langere, complexe zinnen met bijzinnen\n")
		sb.WriteString("- Gebruik abstractere en gespecialiseerde woorden\n")
		sb.WriteString("- Gebruik diverse signaalwoorden (causaal, contrastief, conclusief)\n")
	}
	sb.WriteString("- Behoud de inhoud en betekenis van de originele tekst\n")
	sb.WriteString("- Maak de tekst vloeiend en samenhangend\n")
	sb.WriteString("- Geef ALLEEN de tekst, geen uitleg")

	return sb.String()
}

func refUserPrompt(source, targetBand string) string {
	return fmt.Sprintf(`Converteer de volgende tekst naar %s niveau.

ORIGINELE TEKST:
%s

Schrijf nu de geconverteerde tekst:`, targetBand, source)
}

func formatBound(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprintf("%.0f", *v)
}
