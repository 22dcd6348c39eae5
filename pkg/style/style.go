// Package style defines the visual styling for venvx's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Styling degrades to plain text when stdout is
// not a terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Semantic styles used across command output
var (
	// VenvName renders an environment name
	VenvName = lipgloss.NewStyle().Bold(true)

	// PackageSpec renders a package name and version
	PackageSpec = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})

	// Dim renders secondary detail like interpreter paths
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})

	// Pinned marks packages excluded from upgrades
	Pinned = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})

	// Warning renders non-fatal problems like unreadable metadata
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

// Init selects the color profile for all subsequent rendering. Piped
// output gets plain text; NO_COLOR is honored.
func Init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
