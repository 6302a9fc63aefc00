package tui

import "github.com/charmbracelet/lipgloss"

// Host chrome styles. Widget bodies style themselves through the theme;
// these only dress the frame around them.
var (
	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	focusMarkStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)

	connDotUp   = lipgloss.NewStyle().SetString("●")
	connDotDown = lipgloss.NewStyle().Faint(true).SetString("○")
)
