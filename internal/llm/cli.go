package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	claudecode "github.com/severity1/claude-agent-sdk-go"
)

// CLIClient runs prompts through a locally installed Claude Code CLI.
// It is the fallback backend when no API key is configured.
type CLIClient struct{}

// NewCLIClient probes for the Claude Code CLI. Returns nil when the CLI
// is not installed.
func NewCLIClient() *CLIClient {
	ctx := context.Background()
	_, err := claudecode.Query(ctx, "echo test",
		claudecode.WithModel("sonnet"),
		claudecode.WithMaxTurns(1),
	)
	if err != nil && claudecode.IsCLINotFoundError(err) {
		return nil
	}
	return &CLIClient{}
}

// Complete runs a single-turn query. The CLI has no separate system
// channel, so the system prompt is prepended to the user prompt.
func (c *CLIClient) Complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	full := prompt
	if system != "" {
		full = system + "\n\n" + prompt
	}

	iterator, err := claudecode.Query(ctx, full,
		claudecode.WithModel("sonnet"),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		return "", fmt.Errorf("claude code: %w", err)
	}
	defer iterator.Close()

	var sb strings.Builder
	for {
		message, err := iterator.Next(ctx)
		if err != nil {
			if errors.Is(err, claudecode.ErrNoMoreMessages) {
				break
			}
			return "", fmt.Errorf("claude code: %w", err)
		}

		if assistantMsg, ok := message.(*claudecode.AssistantMessage); ok {
			for _, block := range assistantMsg.Content {
				if textBlock, ok := block.(*claudecode.TextBlock); ok {
					sb.WriteString(textBlock.Text)
				}
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("claude code: empty response")
	}
	return sb.String(), nil
}
