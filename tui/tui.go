// Package tui holds terminal bootstrap shared by the interactive screens.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// InitializeTUI pins the lipgloss color profile before any screen renders.
//
// Resolution order:
//  1. NO_COLOR disables styling entirely, even when forced elsewhere.
//  2. CLICOLOR_FORCE=1 or COLORTERM=truecolor forces truecolor, which keeps
//     output consistent under pipes and CI captures.
//  3. A non-tty stdout falls back to plain text.
//
// Anything else is left to lipgloss's own terminal detection.
func InitializeTUI() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
