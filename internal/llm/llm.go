// Package llm provides the language-model backends used by the
// conversion and quiz features. The scoring engine itself never imports
// this package.
//
// Two backends exist: the Anthropic Messages API (preferred when an API
// key is configured) and the local Claude Code CLI. Both satisfy Client.
package llm

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable is returned when no backend can be constructed: no API
// key configured and no Claude Code CLI installed.
var ErrUnavailable = errors.New("no LLM backend available: set ANTHROPIC_API_KEY or install the Claude Code CLI")

// Client generates a completion for a system prompt and a user prompt.
type Client interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}

// New selects a backend: the API when apiKey is non-empty, otherwise the
// CLI when available.
func New(apiKey, model string) (Client, error) {
	if apiKey != "" {
		return NewAPIClient(apiKey, model), nil
	}
	if cli := NewCLIClient(); cli != nil {
		return cli, nil
	}
	return nil, ErrUnavailable
}

// ExtractJSON extracts a JSON document from a response that may be
// wrapped in markdown code fences or surrounding prose.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}

	if idx := strings.Index(s, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	if idx := strings.Index(s, "```"); idx != -1 {
		start := idx + len("```")
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	// Last resort: the outermost object or array, whichever opens first.
	objOpen := strings.Index(s, "{")
	arrOpen := strings.Index(s, "[")
	switch {
	case arrOpen != -1 && (objOpen == -1 || arrOpen < objOpen):
		if end := strings.LastIndex(s, "]"); end > arrOpen {
			return s[arrOpen : end+1]
		}
	case objOpen != -1:
		if end := strings.LastIndex(s, "}"); end > objOpen {
			return s[objOpen : end+1]
		}
	}

	return s
}
