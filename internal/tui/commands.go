package tui

import tea "github.com/charmbracelet/bubbletea"

// waitForExternal blocks on the external message channel and surfaces the
// next connection callback or widget event as a tea.Msg. Update re-arms it
// after every delivery.
func waitForExternal(msgs chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-msgs
	}
}
