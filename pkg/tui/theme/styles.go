package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 color palette with orange, brown, yellow, and pink tones
// Based on Autumn theme with warm earth tones
var (
	// Base colors (backgrounds and text)
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase01 = lipgloss.Color("#282420") // Lighter background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, invisibles
	ColorBase05 = lipgloss.Color("#ab937b") // Default foreground
	ColorBase06 = lipgloss.Color("#d3b597") // Light foreground

	// Accent colors
	ColorRed    = lipgloss.Color("#d95f5f") // Errors
	ColorOrange = lipgloss.Color("#eb8755") // Focus, tool headers
	ColorYellow = lipgloss.Color("#f5b761") // Warnings, highlights
	ColorGreen  = lipgloss.Color("#93b56b") // Success
	ColorCyan   = lipgloss.Color("#61afaf") // Data output
	ColorPurple = lipgloss.Color("#976bb5") // Agent thoughts

	ColorBorder = ColorBase03
	ColorMuted  = ColorBase03
)

// Styles defines the Lipgloss styles for the feed components
type Styles struct {
	// Feed message styles, one per classification
	PlainMessage lipgloss.Style
	ToolHeader   lipgloss.Style
	ToolBody     lipgloss.Style
	Thought      lipgloss.Style
	Tabular      lipgloss.Style
	ErrorMessage lipgloss.Style

	// Chrome
	UserPrompt lipgloss.Style
	InputBar   lipgloss.Style
	Spinner    lipgloss.Style
	StatusBar  lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles
func DefaultStyles() *Styles {
	return &Styles{
		PlainMessage: lipgloss.NewStyle().
			Foreground(ColorBase05),

		ToolHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange),

		ToolBody: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			Foreground(ColorBase06),

		Thought: lipgloss.NewStyle().
			Foreground(ColorPurple).
			Background(ColorBase01).
			Italic(true).
			Padding(0, 1),

		Tabular: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			Foreground(ColorCyan),

		ErrorMessage: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed),

		UserPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow),

		InputBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorBorder),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorOrange),

		StatusBar: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}
