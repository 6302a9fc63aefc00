package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/intentvault/widgets/internal/config"
	"github.com/intentvault/widgets/internal/logger"
	"github.com/intentvault/widgets/internal/registry"
	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
	iverrors "github.com/intentvault/widgets/pkg/errors"
)

// Model is the widget host: it owns the mounted instances and routes every
// inbound message through the single Update goroutine, so socket frames and
// animation frames for one instance are applied strictly in delivery order.
type Model struct {
	log       *logger.Logger
	instances []*runtime.Instance
	focus     int

	spinner spinner.Model
	events  []runtime.Event
	status  string

	// msgs carries connection callbacks and widget events from their
	// goroutines into the program loop.
	msgs chan tea.Msg

	// pending holds the mount commands issued by New, consumed by Init.
	pending []tea.Cmd

	width  int
	height int
}

// eventLogCap bounds the host's recent-event ribbon.
const eventLogCap = 5

// NewModel mounts every widget declared in the manifest and returns the host
// model. Tags must already be validated against the registry.
func NewModel(m *config.Manifest, reg *registry.Registry, log *logger.Logger) (Model, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot

	host := Model{
		log:     log,
		spinner: s,
		msgs:    make(chan tea.Msg, 64),
		width:   80,
		height:  24,
	}

	src := theme.MultiSource{theme.EnvSource{}, theme.MapSource(m.Theme)}

	for idx, w := range m.Widgets {
		ctor, ok := reg.Lookup(w.Tag)
		if !ok {
			return Model{}, iverrors.NewManifestError("", "unknown widget tag "+w.Tag, nil)
		}

		sink := host.msgs
		inst := runtime.NewInstance(idx, ctor(),
			runtime.WithLogger(log),
			runtime.WithThemeSource(src),
			runtime.WithSink(func(msg tea.Msg) { sink <- msg }),
			runtime.WithEmitter(runtime.EmitterFunc(func(ev runtime.Event) {
				sink <- EventMsg{Event: ev}
			})),
		)

		attrs := make(map[string]string, len(w.Attributes)+1)
		for k, v := range w.Attributes {
			attrs[k] = v
		}
		if _, ok := attrs["theme-mode"]; !ok && m.ThemeMode != "" {
			attrs["theme-mode"] = m.ThemeMode
		}

		if cmd := inst.Mount(attrs); cmd != nil {
			host.pending = append(host.pending, cmd)
		}
		host.instances = append(host.instances, inst)
	}

	return host, nil
}

// Init starts the spinner, flushes the mount commands, and begins draining
// the external message channel.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, waitForExternal(m.msgs)}
	cmds = append(cmds, m.pending...)
	return tea.Batch(cmds...)
}

// Instances exposes the mounted instances.
func (m Model) Instances() []*runtime.Instance { return m.instances }

// Focused returns the instance owning key routing, or nil when none exist.
func (m Model) Focused() *runtime.Instance {
	if m.focus < 0 || m.focus >= len(m.instances) {
		return nil
	}
	return m.instances[m.focus]
}

func (m *Model) focusNext() {
	if len(m.instances) == 0 {
		return
	}
	m.focus = (m.focus + 1) % len(m.instances)
}

func (m *Model) focusPrev() {
	if len(m.instances) == 0 {
		return
	}
	m.focus--
	if m.focus < 0 {
		m.focus = len(m.instances) - 1
	}
}

func (m *Model) instanceByID(id int) *runtime.Instance {
	if id < 0 || id >= len(m.instances) {
		return nil
	}
	return m.instances[id]
}

func (m *Model) recordEvent(ev runtime.Event) {
	m.events = append([]runtime.Event{ev}, m.events...)
	if len(m.events) > eventLogCap {
		m.events = m.events[:eventLogCap]
	}
}

func (m *Model) connecting() bool {
	for _, inst := range m.instances {
		if inst.Config().SocketURL != "" && !inst.Connected() {
			return true
		}
	}
	return false
}
