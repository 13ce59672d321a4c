package converter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pthm/leesgraad/internal/level"
	"github.com/pthm/leesgraad/internal/lexicon"
	"github.com/pthm/leesgraad/internal/score"
)

type fakeClient struct {
	response string
	err      error

	system string
	prompt string
}

func (f *fakeClient) Complete(_ context.Context, system, prompt string, _ int) (string, error) {
	f.system = system
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const sourceText = "de man loopt naar huis. hij is moe want het was een lange dag. " +
	"op straat ziet hij een hond. de hond kijkt hem aan en blaft zacht."

func TestConvertAVIUnknownBand(t *testing.T) {
	c := New(score.New(lexicon.Default()), &fakeClient{})
	if _, err := c.ConvertAVI(context.Background(), sourceText, "AVI-X9", 1); err == nil {
		t.Fatal("expected error for unknown band")
	}
}

func TestConvertAVISourceTooShort(t *testing.T) {
	c := New(score.New(lexicon.Default()), &fakeClient{})
	if _, err := c.ConvertAVI(context.Background(), "te kort.", "AVI-M3", 1); err == nil {
		t.Fatal("expected error for short source")
	}
}

func TestConvertAVI(t *testing.T) {
	fake := &fakeClient{response: "  de kat zit op de mat. de kat is dik. ik zie de kat en lach.  "}
	c := New(score.New(lexicon.Default()), fake)

	var stages []string
	c.OnStage(func(s string) { stages = append(stages, s) })

	res, err := c.ConvertAVI(context.Background(), sourceText, "AVI-M3", 1)
	if err != nil {
		t.Fatalf("ConvertAVI: %v", err)
	}

	if got := strings.Join(stages, ","); got != "analyze,generate,validate" {
		t.Errorf("stages = %s", got)
	}
	if res.FinalText != strings.TrimSpace(fake.response) {
		t.Errorf("FinalText = %q", res.FinalText)
	}
	if res.Source == nil || res.Converted == nil {
		t.Fatal("expected source and converted analyses")
	}

	budget := level.TargetWords("AVI-M3", 1)
	if res.TargetWords != budget {
		t.Errorf("TargetWords = %d, want %d", res.TargetWords, budget)
	}
	if !strings.Contains(fake.system, "AVI-M3") {
		t.Error("system prompt missing target band")
	}
	if !strings.Contains(fake.system, fmt.Sprintf("%d woorden", budget)) {
		t.Error("system prompt missing word budget")
	}
	if !strings.Contains(fake.system, fmt.Sprintf("%d proposities", level.Propositions(budget))) {
		t.Error("system prompt missing proposition budget")
	}
	if !strings.Contains(fake.prompt, sourceText) {
		t.Error("user prompt missing source text")
	}
	if len(res.ProcessLog) == 0 {
		t.Error("expected process log entries")
	}
}

func TestConvertAVIClientError(t *testing.T) {
	fake := &fakeClient{err: errors.New("boom")}
	c := New(score.New(lexicon.Default()), fake)
	if _, err := c.ConvertAVI(context.Background(), sourceText, "AVI-M3", 1); err == nil {
		t.Fatal("expected error from client")
	}
}

func TestConvertREF(t *testing.T) {
	out := strings.Repeat("de man loopt rustig door de lange straat omdat hij naar huis wil. ", 4)
	fake := &fakeClient{response: out}
	c := New(score.New(lexicon.Default()), fake)

	res, err := c.ConvertREF(context.Background(), sourceText, "1F")
	if err != nil {
		t.Fatalf("ConvertREF: %v", err)
	}

	if res.Source == nil || res.Converted == nil {
		t.Fatal("expected source and converted analyses")
	}
	if !res.Success {
		t.Error("REF conversion with a scorable result should be accepted")
	}
	if !strings.Contains(fake.system, "referentieniveau 1F") {
		t.Error("system prompt missing target band")
	}
}

func TestConvertREFUnknownBand(t *testing.T) {
	c := New(score.New(lexicon.Default()), &fakeClient{})
	if _, err := c.ConvertREF(context.Background(), sourceText, "4F"); err == nil {
		t.Fatal("expected error for unknown band")
	}
}

func TestREFSystemPromptInstructions(t *testing.T) {
	tests := []struct {
		band string
		want string
	}{
		{"1F", "korte, eenvoudige zinnen"},
		{"2F", "gemiddeld complexe zinnen"},
		{"3F", "signaalwoorden"},
	}
	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			b, ok := level.REFBandByName(tt.band)
			if !ok {
				t.Fatalf("band %s missing", tt.band)
			}
			got := refSystemPrompt(b)
			if !strings.Contains(got, tt.want) {
				t.Errorf("prompt for %s missing %q", tt.band, tt.want)
			}
		})
	}
}
