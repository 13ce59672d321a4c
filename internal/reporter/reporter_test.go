package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pthm/leesgraad/internal/score"
	"github.com/pthm/leesgraad/internal/ui"
)

func sampleAnalysis() *Analysis {
	return &Analysis{
		Source:       "verhaal.txt",
		Target:       "AVI-E3",
		AVIRequested: true,
		REFRequested: true,
		AVI: &score.AVIResult{
			Bilt:           59.333333,
			Band:           "AVI-E3",
			TotalWords:     10,
			AvgWordLen:     4.0,
			PctFrequent:    80.0,
			AvgSentenceLen: 5.0,
			SyllableCounts: map[int]int{1: 6, 2: 4},
		},
		REF: &score.REFResult{
			Band:              "1F",
			Score:             0.98765,
			Confidence:        score.ConfidenceHigh,
			TotalWords:        30,
			AvgWordLen:        4.5,
			AvgSentenceLen:    15.0,
			PctFrequent:       65.0,
			LongSentenceRatio: 0.5,
			MarkerDiversity:   2,
		},
		AVISuggestions: []string{"Kortere woorden: gemiddeld 4.00 letters, richtwaarde 4.10."},
	}
}

func TestJSONReporterRounding(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	if err := r.Report(sampleAnalysis()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	if out.Source != "verhaal.txt" {
		t.Errorf("Source = %q", out.Source)
	}
	if out.AVI == nil || out.REF == nil {
		t.Fatal("expected both scales in output")
	}
	if out.AVI.Bilt != 59.33 {
		t.Errorf("Bilt = %v, want 59.33", out.AVI.Bilt)
	}
	if out.REF.Score != 0.988 {
		t.Errorf("Score = %v, want 0.988", out.REF.Score)
	}
	if out.REF.PctLongSent != 50.0 {
		t.Errorf("PctLongSent = %v, want 50.0", out.REF.PctLongSent)
	}
	if len(out.AVI.Suggestions) != 1 {
		t.Errorf("Suggestions = %v", out.AVI.Suggestions)
	}
}

func TestJSONReporterTooShort(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)
	a := &Analysis{Source: "kort.txt", AVIRequested: true}
	if err := r.Report(a); err != nil {
		t.Fatalf("Report: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if out.AVI == nil || out.AVI.Analyzed {
		t.Errorf("AVI = %+v, want present with geanalyseerd=false", out.AVI)
	}
	if out.REF != nil {
		t.Errorf("REF = %+v, want absent", out.REF)
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf, errBuf bytes.Buffer
	u := ui.New(&buf, &errBuf, "text")
	r := NewTerminalReporter(u)
	if err := r.Report(sampleAnalysis()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"AVI-E3", "59.33", "1F", "0.988", "50.0%", "Kortere woorden"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTerminalReporterTooShort(t *testing.T) {
	var buf, errBuf bytes.Buffer
	u := ui.New(&buf, &errBuf, "text")
	r := NewTerminalReporter(u)
	a := &Analysis{Source: "kort.txt", AVIRequested: true}
	if err := r.Report(a); err != nil {
		t.Fatalf("Report: %v", err)
	}
	if !strings.Contains(buf.String(), "Te weinig woorden") {
		t.Errorf("expected short-text notice, got:\n%s", buf.String())
	}
}
