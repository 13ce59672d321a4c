package parser

import (
	"strings"
	"testing"
)

func TestGetFileType(t *testing.T) {
	tests := []struct {
		path     string
		expected FileType
	}{
		{"verhaal.md", FileTypeMarkdown},
		{"verhaal.MD", FileTypeMarkdown},
		{"verhaal.markdown", FileTypeMarkdown},
		{"verhaal.txt", FileTypePlain},
		{"verhaal", FileTypePlain},
	}
	for _, tt := range tests {
		if got := GetFileType(tt.path); got != tt.expected {
			t.Errorf("GetFileType(%q) = %v, want %v", tt.path, got, tt.expected)
		}
	}
}

func TestFlattenMarkdown(t *testing.T) {
	input := "# De boom\n\nDe boom staat in de tuin.\nHij is heel oud.\n\n" +
		"- eerste punt\n- tweede punt\n\n```go\nfunc main() {}\n```\n\n" +
		"De laatste zin staat hier."

	got := FlattenMarkdown([]byte(input))

	for _, want := range []string{
		"De boom",
		"De boom staat in de tuin.",
		"Hij is heel oud.",
		"eerste punt",
		"De laatste zin staat hier.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("flattened text missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "func main") {
		t.Errorf("code block should be dropped:\n%s", got)
	}
	if strings.Contains(got, "#") || strings.Contains(got, "```") {
		t.Errorf("markup should be dropped:\n%s", got)
	}
}

func TestExtractTextPlain(t *testing.T) {
	content := "# niet als kop behandelen\nGewone tekst."
	got := ExtractText("verhaal.txt", []byte(content))
	if got != content {
		t.Errorf("plain text should pass through unchanged, got %q", got)
	}
}
