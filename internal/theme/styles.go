package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles projects resolved tokens into the lipgloss styles widgets render
// with. Projection is pure: the same theme always yields the same styles.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style

	Ok   lipgloss.Style
	Warn lipgloss.Style
	Crit lipgloss.Style

	Frame lipgloss.Style
}

// Styles builds the widget style set from the theme's tokens.
func (t Theme) Styles() Styles {
	text := lipgloss.Color(t.Value(TokenText))
	muted := lipgloss.Color(t.Value(TokenMuted))
	primary := lipgloss.Color(t.Value(TokenPrimary))
	accent := lipgloss.Color(t.Value(TokenAccent))

	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(primary),
		Label:  lipgloss.NewStyle().Foreground(muted),
		Value:  lipgloss.NewStyle().Bold(true).Foreground(text),
		Muted:  lipgloss.NewStyle().Faint(true).Foreground(muted),
		Accent: lipgloss.NewStyle().Foreground(accent),

		Ok:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Value(TokenSuccess))),
		Warn: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Value(TokenWarning))),
		Crit: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Value(TokenDanger))),

		Frame: lipgloss.NewStyle().
			Border(t.borderStyle()).
			BorderForeground(muted).
			Padding(0, t.Spacing()),
	}
}

func (t Theme) borderStyle() lipgloss.Border {
	switch t.Value(TokenBorder) {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "none":
		return lipgloss.Border{}
	default:
		return lipgloss.RoundedBorder()
	}
}
