package cli

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/licensit/licensit/internal/config"
)

// IsJSONOutput reports whether --json was passed.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput writes v as indented JSON followed by a newline.
func WriteOutput(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

type styles struct {
	ID      lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// newStyles builds styles rendered for w. Color is off unless colorEnabled says otherwise.
func newStyles(w io.Writer) styles {
	renderer := lipgloss.NewRenderer(w)
	if colorEnabled(w) {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		ID:      renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Success: renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Muted:   renderer.NewStyle().Faint(true),
	}
}

func colorEnabled(w io.Writer) bool {
	if noColor {
		return false
	}
	mode := config.ColorAuto
	if cfg := GetConfig(); cfg != nil {
		mode = cfg.Output.Color
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
