package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles of each part of the screen.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Display  lipgloss.Style
	Error    lipgloss.Style
	Button   lipgloss.Style
	Selected lipgloss.Style
}

// NewTheme builds the theme from an accent and an error color, each an ANSI
// color number or a hex string.
func NewTheme(accent, errColor string) Theme {
	a := lipgloss.Color(accent)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(a),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(a),
		Display: lipgloss.NewStyle().
			Width(32).
			Align(lipgloss.Right).
			Padding(0, 1).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(a),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)),
		Button:   lipgloss.NewStyle().Width(6).Align(lipgloss.Center),
		Selected: lipgloss.NewStyle().Width(6).Align(lipgloss.Center).Reverse(true).Foreground(a),
	}
}

// DefaultTheme is the theme with the default config colors.
func DefaultTheme() Theme {
	return NewTheme("63", "203")
}
