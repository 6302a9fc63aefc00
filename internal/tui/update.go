package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/intentvault/widgets/internal/runtime"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, inst := range m.instances {
			inst.SetWidth(m.widgetWidth())
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.connecting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Animation frames arrive directly from tea.Tick commands.
	case runtime.FrameMsg:
		if inst := m.instanceByID(msg.ID); inst != nil {
			return m, inst.Frame(msg.Gen)
		}
		return m, nil

	// Everything below arrived over the external channel and must re-arm
	// the channel reader.

	case runtime.EnvelopeMsg:
		var cmd tea.Cmd
		if inst := m.instanceByID(msg.ID); inst != nil {
			cmd = inst.HandleEnvelope(msg.Raw)
		}
		return m, tea.Batch(cmd, waitForExternal(m.msgs))

	case runtime.OpenedMsg:
		if inst := m.instanceByID(msg.ID); inst != nil {
			inst.SetConnected(true)
			m.status = fmt.Sprintf("%s connected", inst.Tag())
		}
		return m, waitForExternal(m.msgs)

	case runtime.ClosedMsg:
		if inst := m.instanceByID(msg.ID); inst != nil {
			inst.SetConnected(false)
			m.status = fmt.Sprintf("%s disconnected", inst.Tag())
		}
		return m, waitForExternal(m.msgs)

	case runtime.ConnErrMsg:
		if inst := m.instanceByID(msg.ID); inst != nil {
			m.status = fmt.Sprintf("%s: %v", inst.Tag(), msg.Err)
			m.log.WithWidget(inst.Tag()).Error(msg.Err, "connection error")
		}
		return m, waitForExternal(m.msgs)

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		for _, inst := range m.instances {
			inst.Unmount()
		}
		return m, tea.Quit

	case "tab":
		m.focusNext()
		return m, nil

	case "shift+tab":
		m.focusPrev()
		return m, nil
	}

	if inst := m.Focused(); inst != nil {
		for _, b := range inst.Bindings() {
			if b.Key == msg.String() {
				return m, inst.Act(b.Action)
			}
		}
	}

	return m, nil
}

// handleEvent records the widget notification and answers the ones the host
// owns: a sync request turns into a sync_request frame on the emitter's
// connection.
func (m Model) handleEvent(ev runtime.Event) (tea.Model, tea.Cmd) {
	m.recordEvent(ev)

	switch ev.Name {
	case "sync-requested":
		for _, inst := range m.instances {
			if inst.Tag() != ev.Tag || !inst.Connected() {
				continue
			}
			inst.Send(map[string]any{"type": "sync_request", "data": ev.Detail})
			break
		}
	case "view-capsule":
		m.status = fmt.Sprintf("open capsule %v", ev.Detail["capsuleId"])
	case "utid-copied":
		m.status = fmt.Sprintf("copied %v", ev.Detail["utid"])
	}

	return m, waitForExternal(m.msgs)
}

// widgetWidth is the horizontal budget each widget renders into.
func (m Model) widgetWidth() int {
	w := m.width - 2
	if w < 24 {
		w = 24
	}
	return w
}
