package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the lipgloss styles for terminal output.
type Styles struct {
	enabled bool

	// Outcome styles
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Suggestion lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Band      lipgloss.Style

	// Icons (ASCII-degraded when not interactive)
	IconSuccess    string
	IconWarning    string
	IconError      string
	IconSuggestion string
}

// NewStyles creates a style set. When enabled is false all styles render
// text unchanged, for piped output.
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.Suggestion = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
		s.Band = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

		s.IconSuccess = "✓"
		s.IconWarning = "⚠"
		s.IconError = "✗"
		s.IconSuggestion = "•"
	} else {
		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Error = lipgloss.NewStyle()
		s.Suggestion = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()
		s.Band = lipgloss.NewStyle()

		s.IconSuccess = "ok"
		s.IconWarning = "!"
		s.IconError = "x"
		s.IconSuggestion = "-"
	}

	return s
}
