// Package ui handles terminal presentation: TTY detection, styling, and
// progress display for the slower LLM-backed commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted.
type OutputMode int

const (
	// OutputModeInteractive enables colors and progress display.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors and progress (piped output).
	OutputModePlain
	// OutputModeJSON outputs machine-readable JSON only.
	OutputModeJSON
)

// UI bundles the output writers with the detected mode and style set.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a UI with automatic TTY detection.
func New(w, errW io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	if format == "json" {
		return OutputModeJSON
	}
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}
	return OutputModePlain
}

// IsInteractive reports whether output goes to a terminal.
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON reports whether JSON output mode is enabled.
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}

// Warnf prints a styled warning to the error writer.
func (ui *UI) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(ui.ErrWriter, ui.Styles.Warning.Render(ui.Styles.IconWarning+" "+msg))
}
