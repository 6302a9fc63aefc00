package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the full host frame: title, widget stack, event ribbon,
// status and help lines.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleBarStyle.Render("intentvault widgets"))
	b.WriteString("\n")

	for idx, inst := range m.instances {
		mark := "  "
		if idx == m.focus {
			mark = focusMarkStyle.Render("▸ ")
		}
		dot := connDotDown.String()
		if inst.Connected() {
			dot = connDotUp.String()
		}
		header := fmt.Sprintf("%s%s %s", mark, dot, inst.Tag())
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(inst.View())
		b.WriteString("\n")
	}

	if len(m.events) > 0 {
		ev := m.events[0]
		b.WriteString(helpStyle.Render(fmt.Sprintf("last event: %s/%s", ev.Tag, ev.Name)))
		b.WriteString("\n")
	}

	status := m.status
	if m.connecting() {
		status = m.spinner.View() + " connecting " + status
	}
	if status != "" {
		b.WriteString(statusBarStyle.Render(status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

func (m Model) helpLine() string {
	parts := []string{"tab: focus", "q: quit"}
	if inst := m.Focused(); inst != nil {
		for _, bind := range inst.Bindings() {
			parts = append(parts, fmt.Sprintf("%s: %s", bind.Key, bind.Help))
		}
	}
	return strings.Join(parts, lipgloss.NewStyle().Faint(true).Render(" · "))
}
