// Package converter rewrites Dutch texts toward a target reading band
// using an LLM, then validates the result with the scoring engine.
package converter

import (
	"context"
	"fmt"
	"strings"

	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/llm"
	"github.com/pthm/leesgraad/internal/score"
)

const maxCompletionTokens = 2048

// wordCountMargin is the accepted deviation from the word budget.
const wordCountMargin = 0.20

// Stage names reported through StageFunc during a conversion.
const (
	StageAnalyze  = "analyze"
	StageGenerate = "generate"
	StageValidate = "validate"
)

// StageFunc receives stage transitions during a conversion. May be nil.
type StageFunc func(stage string)

// Converter drives LLM-backed text conversion.
type Converter struct {
	scorer  *score.Scorer
	client  llm.Client
	onStage StageFunc
}

// New creates a converter.
func New(scorer *score.Scorer, client llm.Client) *Converter {
	return &Converter{scorer: scorer, client: client}
}

// OnStage registers a stage callback for progress display.
func (c *Converter) OnStage(fn StageFunc) {
	c.onStage = fn
}

func (c *Converter) stage(name string) {
	if c.onStage != nil {
		c.onStage(name)
	}
}

// AVIResult is the outcome of a technical-reading conversion.
type AVIResult struct {
	FinalText string
	Success   bool
	Direction string

	Source    *score.AVIResult
	Converted *score.AVIResult

	TargetWords int
	ProcessLog  []string
	Problems    []string
}

// REFResult is the outcome of a comprehension-level conversion.
type REFResult struct {
	FinalText string
	Success   bool
	Direction string

	Source    *score.REFResult
	Converted *score.REFResult

	ProcessLog []string
	Problems   []string
}

// ConvertAVI rewrites input toward the target technical-reading band,
// sized for the given reading time in minutes (1, 2 or 3).
func (c *Converter) ConvertAVI(ctx context.Context, input, targetBand string, minutes int) (*AVIResult, error) {
	target, ok := level.AVIBandByName(targetBand)
	if !ok {
		return nil, fmt.Errorf("onbekend AVI-niveau: %s", targetBand)
	}

	res := &AVIResult{}

	c.stage(StageAnalyze)
	src, ok := c.scorer.AVI(input, "")
	if !ok {
		return nil, fmt.Errorf("brontekst te kort voor analyse (minimaal %d woorden)", score.AVIMinTokens)
	}
	res.Source = src
	res.log("Brontekst: %s (BILT: %.1f)", src.Band, src.Bilt)

	if level.AVIIndex(targetBand) <= level.AVIIndex(src.Band) {
		res.Direction = "simplify"
		res.log("Richting: vereenvoudigen naar %s", targetBand)
	} else {
		res.Direction = "enrich"
		res.log("Richting: verrijken naar %s", targetBand)
	}

	res.TargetWords = level.TargetWords(targetBand, minutes)
	res.log("Doelwoorden: %d (%d proposities)", res.TargetWords, level.Propositions(res.TargetWords))

	c.stage(StageGenerate)
	system := aviSystemPrompt(target, res.TargetWords)
	prompt := aviUserPrompt(input, targetBand, res.TargetWords)

	out, err := c.client.Complete(ctx, system, prompt, maxCompletionTokens)
	if err != nil {
		return nil, fmt.Errorf("conversie mislukt: %w", err)
	}
	res.FinalText = strings.TrimSpace(out)
	res.log("Tekst gegenereerd")

	c.stage(StageValidate)
	conv, ok := c.scorer.AVI(res.FinalText, targetBand)
	if !ok {
		res.Problems = append(res.Problems, "gegenereerde tekst te kort voor analyse")
		return res, nil
	}
	res.Converted = conv

	// The target check is inclusive on both bounds, unlike band
	// classification which uses half-open intervals.
	biltMin, biltMax := 0.0, 100.0
	if target.BiltMin != nil {
		biltMin = *target.BiltMin
	}
	if target.BiltMax != nil {
		biltMax = *target.BiltMax
	}
	if conv.Bilt >= biltMin && conv.Bilt <= biltMax {
		res.Success = true
		res.log("BILT binnen bereik: %.1f", conv.Bilt)
	} else {
		res.Problems = append(res.Problems, fmt.Sprintf("BILT %.1f buiten bereik %.0f-%.0f", conv.Bilt, biltMin, biltMax))
		res.log("BILT buiten bereik: %.1f", conv.Bilt)
	}

	margin := float64(res.TargetWords) * wordCountMargin
	diff := float64(conv.TotalWords - res.TargetWords)
	if diff < 0 {
		diff = -diff
	}
	if diff <= margin {
		res.log("Woordenaantal binnen marge: %d", conv.TotalWords)
	} else {
		res.Problems = append(res.Problems, fmt.Sprintf("woordenaantal %d wijkt af van doel %d", conv.TotalWords, res.TargetWords))
		res.log("Woordenaantal buiten marge: %d (doel: %d)", conv.TotalWords, res.TargetWords)
	}

	if len(res.Problems) == 0 {
		res.Success = true
	}

	return res, nil
}

// ConvertREF rewrites input toward the target comprehension band.
func (c *Converter) ConvertREF(ctx context.Context, input, targetBand string) (*REFResult, error) {
	target, ok := level.REFBandByName(targetBand)
	if !ok {
		return nil, fmt.Errorf("onbekend referentieniveau: %s", targetBand)
	}

	res := &REFResult{}

	c.stage(StageAnalyze)
	src, ok := c.scorer.REF(input)
	if !ok {
		return nil, fmt.Errorf("brontekst te kort voor analyse (minimaal %d woorden)", score.REFMinTokens)
	}
	res.Source = src
	res.log("Brontekst: %s (score: %.2f)", src.Band, src.Score)

	if level.REFIndex(targetBand) < level.REFIndex(src.Band) {
		res.Direction = "simplify"
		res.log("Richting: vereenvoudigen naar %s", targetBand)
	} else {
		res.Direction = "enrich"
		res.log("Richting: verrijken naar %s", targetBand)
	}

	c.stage(StageGenerate)
	system := refSystemPrompt(target)
	prompt := refUserPrompt(input, targetBand)

	out, err := c.client.Complete(ctx, system, prompt, maxCompletionTokens)
	if err != nil {
		return nil, fmt.Errorf("conversie mislukt: %w", err)
	}
	res.FinalText = strings.TrimSpace(out)
	res.log("Tekst gegenereerd")

	c.stage(StageValidate)
	conv, ok := c.scorer.REF(res.FinalText)
	if !ok {
		res.Problems = append(res.Problems, "gegenereerde tekst te kort voor analyse")
		return res, nil
	}
	res.Converted = conv
	res.Success = true

	if conv.Band == targetBand {
		res.log("Niveau bereikt: %s", conv.Band)
	} else {
		// A near miss is still accepted; the deviation is recorded.
		res.Problems = append(res.Problems, fmt.Sprintf("niveau %s wijkt af van doel %s", conv.Band, targetBand))
		res.log("Niveau: %s (doel: %s)", conv.Band, targetBand)
	}

	return res, nil
}

func (r *AVIResult) log(format string, args ...any) {
	r.ProcessLog = append(r.ProcessLog, fmt.Sprintf(format, args...))
}

func (r *REFResult) log(format string, args ...any) {
	r.ProcessLog = append(r.ProcessLog, fmt.Sprintf(format, args...))
}
