package runtime

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/intentvault/widgets/internal/conn"
	"github.com/intentvault/widgets/internal/logger"
	"github.com/intentvault/widgets/internal/theme"
)

// Sink forwards out-of-loop callbacks (socket frames, connection lifecycle)
// into the host program's message queue. When running under Bubble Tea this
// is Program.Send; tests substitute a collector.
type Sink func(msg tea.Msg)

// Option configures an Instance at construction.
type Option func(*Instance)

// WithEmitter sets the notification event receiver.
func WithEmitter(e Emitter) Option {
	return func(i *Instance) {
		if e != nil {
			i.emitter = e
		}
	}
}

// WithLogger sets the instance logger.
func WithLogger(log *logger.Logger) Option {
	return func(i *Instance) {
		if log != nil {
			i.log = log
		}
	}
}

// WithThemeSource sets where design tokens are resolved from at mount.
func WithThemeSource(src theme.Source) Option {
	return func(i *Instance) { i.themeSrc = src }
}

// WithDialer substitutes the connection dialer, for tests.
func WithDialer(d conn.Dialer) Option {
	return func(i *Instance) { i.dialer = d }
}

// WithSink sets the message sink for connection callbacks.
func WithSink(sink Sink) Option {
	return func(i *Instance) { i.sink = sink }
}

// Instance is the generic lifecycle driver: one mounted widget. It owns the
// configuration, resolved theme, state snapshot, push connection and
// animation bookkeeping for exactly one Spec; nothing is shared between
// instances.
type Instance struct {
	id   int
	spec Spec

	cfg   Config
	th    theme.Theme
	state State
	attrs map[string]string

	conn      *conn.Manager
	connected bool

	// animation frame chain bookkeeping: at most one chain is live, and a
	// generation bump invalidates every frame already in flight.
	animating bool
	animGen   int

	width    int
	view     string
	bindings []KeyBinding
	renders  int

	mounted  bool
	emitter  Emitter
	log      *logger.Logger
	themeSrc theme.Source
	dialer   conn.Dialer
	sink     Sink
}

// NewInstance creates an unmounted instance for a widget spec.
func NewInstance(id int, spec Spec, opts ...Option) *Instance {
	i := &Instance{
		id:      id,
		spec:    spec,
		cfg:     defaultConfig(),
		state:   spec.NewState(),
		attrs:   make(map[string]string),
		emitter: DiscardEmitter(),
		log:     logger.Discard(),
		width:   40,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.log = i.log.WithWidget(spec.Tag())

	i.conn = conn.NewManager(i.dialer, conn.Hooks{
		OnOpen:  func() { i.send(OpenedMsg{ID: i.id}) },
		OnClose: func() { i.send(ClosedMsg{ID: i.id}) },
		OnError: func(err error) { i.send(ConnErrMsg{ID: i.id, Err: err}) },
		OnFrame: func(raw []byte) { i.send(EnvelopeMsg{ID: i.id, Raw: append([]byte(nil), raw...)}) },
	}, i.log)
	return i
}

func (i *Instance) send(msg tea.Msg) {
	if i.sink != nil {
		i.sink(msg)
	}
}

// ID returns the host-assigned instance id.
func (i *Instance) ID() int { return i.id }

// Tag returns the widget's element tag.
func (i *Instance) Tag() string { return i.spec.Tag() }

// Mount loads configuration from the host attributes, resolves the theme,
// performs the initial render and, when auto-connect is enabled and a socket
// URL is configured, returns a command that opens the push connection.
func (i *Instance) Mount(attrs map[string]string) tea.Cmd {
	if i.mounted {
		return nil
	}

	observed := make(map[string]bool, len(i.spec.ObservedAttributes()))
	for _, name := range i.spec.ObservedAttributes() {
		observed[name] = true
	}

	for name, value := range attrs {
		switch {
		case isConfigAttr(name):
			i.cfg = i.cfg.withAttr(name, value)
			i.attrs[name] = value
		case observed[name]:
			i.state = i.spec.ApplyAttribute(i.state, name, value)
			i.attrs[name] = value
		default:
			// Unrecognized attributes are ignored.
		}
	}

	i.th = theme.Resolve(theme.ParseMode(i.cfg.ThemeMode), i.themeSrc)
	i.mounted = true
	i.render()

	if i.cfg.AutoConnect && i.cfg.SocketURL != "" {
		return i.openCmd(i.cfg.SocketURL)
	}
	return nil
}

// openCmd dials off the update loop; results arrive through the sink.
func (i *Instance) openCmd(url string) tea.Cmd {
	return func() tea.Msg {
		i.conn.Open(url)
		return nil
	}
}

// Connect opens the push connection on demand (manual connect when
// auto-connect was disabled).
func (i *Instance) Connect() tea.Cmd {
	if !i.mounted || i.cfg.SocketURL == "" {
		return nil
	}
	return i.openCmd(i.cfg.SocketURL)
}

// Unmount closes the connection, cancels any outstanding animation frames
// and runs the widget's cleanup hook. After Unmount the instance delivers no
// further callbacks: in-flight frames carry a stale generation and envelope
// handling checks the mounted flag.
func (i *Instance) Unmount() {
	if !i.mounted {
		return
	}
	i.conn.Close()
	i.animGen++
	i.animating = false
	i.state = i.spec.Cleanup(i.state)
	i.connected = false
	i.mounted = false
}

// SetAttribute applies a host attribute change. Setting an attribute to its
// current value is a no-op; otherwise the config key or widget state is
// re-derived and a render happens only when the widget declares the
// attribute render-triggering.
func (i *Instance) SetAttribute(name, value string) tea.Cmd {
	if !i.mounted {
		return nil
	}
	old, existed := i.attrs[name]
	if existed && old == value {
		return nil
	}

	switch {
	case isConfigAttr(name):
		i.cfg = i.cfg.withAttr(name, value)
	default:
		known := false
		for _, observed := range i.spec.ObservedAttributes() {
			if observed == name {
				known = true
				break
			}
		}
		if !known {
			return nil
		}
		i.state = i.spec.ApplyAttribute(i.state, name, value)
	}
	i.attrs[name] = value

	if i.spec.RendersOn(name) {
		i.render()
	}
	return nil
}

// HandleEnvelope processes one inbound push frame: tolerant decode, type
// discrimination, relevance filtering, then the widget's update routine.
// Anything that fails degrades to a dropped message.
func (i *Instance) HandleEnvelope(raw []byte) tea.Cmd {
	if !i.mounted {
		return nil
	}

	env, err := conn.DecodeEnvelope(raw)
	if err != nil {
		i.log.Error(err, "dropping malformed envelope")
		return nil
	}
	if env.Type != i.spec.MessageType() {
		return nil
	}
	if env.UserID != "" && i.cfg.UserID != "" && env.UserID != i.cfg.UserID {
		return nil
	}

	tr, handled := i.spec.OnMessage(i.state, env.Payload())
	if !handled {
		return nil
	}
	return i.applyTransition(tr)
}

// Act routes a user action to the widget.
func (i *Instance) Act(action string) tea.Cmd {
	if !i.mounted {
		return nil
	}
	actor, ok := i.spec.(Actor)
	if !ok {
		return nil
	}
	tr, handled := actor.Act(i.state, action)
	if !handled {
		return nil
	}
	return i.applyTransition(tr)
}

func (i *Instance) applyTransition(tr Transition) tea.Cmd {
	i.state = tr.State
	for _, ev := range tr.Events {
		ev.Tag = i.spec.Tag()
		i.emitter.Emit(ev)
	}
	i.render()

	if tr.Animate {
		return i.armAnimation()
	}
	return nil
}

// armAnimation starts a frame chain unless one is already live.
func (i *Instance) armAnimation() tea.Cmd {
	if _, ok := i.spec.(Animator); !ok {
		return nil
	}
	if i.animating {
		return nil
	}
	i.animating = true
	return i.frameCmd()
}

func (i *Instance) frameCmd() tea.Cmd {
	gen := i.animGen
	id := i.id
	return tea.Tick(i.th.FrameInterval(), func(time.Time) tea.Msg {
		return FrameMsg{ID: id, Gen: gen}
	})
}

// Frame applies one animation frame. Frames from a superseded generation
// (after unmount) are dropped; a frame that converges ends the chain.
func (i *Instance) Frame(gen int) tea.Cmd {
	if !i.mounted || !i.animating || gen != i.animGen {
		return nil
	}
	animator, ok := i.spec.(Animator)
	if !ok {
		i.animating = false
		return nil
	}

	next, more := animator.Advance(i.state)
	i.state = next
	i.render()

	if more {
		return i.frameCmd()
	}
	i.animating = false
	return nil
}

// SetConnected records the connection state for rendering.
func (i *Instance) SetConnected(connected bool) {
	if i.connected == connected {
		return
	}
	i.connected = connected
	i.render()
}

// SetWidth resizes the widget's render region.
func (i *Instance) SetWidth(width int) {
	if width < 1 || width == i.width {
		return
	}
	i.width = width
	if i.mounted {
		i.render()
	}
}

// render rebuilds the whole view from the current snapshot and re-derives
// key bindings, since the previous render's bindings died with it.
func (i *Instance) render() {
	i.view = i.spec.View(i.state, i.cfg, i.th, i.width)
	i.bindings = nil
	if interactive, ok := i.spec.(Interactive); ok {
		i.bindings = interactive.Keys()
	}
	i.renders++
}

// View returns the last rendered region.
func (i *Instance) View() string { return i.view }

// Bindings returns the key bindings derived at the last render.
func (i *Instance) Bindings() []KeyBinding { return i.bindings }

// Renders reports how many full renders have run. Used by tests asserting
// the no-op attribute-change policy.
func (i *Instance) Renders() int { return i.renders }

// Connected reports the rendered connection state.
func (i *Instance) Connected() bool { return i.connected }

// Animating reports whether a frame chain is live.
func (i *Instance) Animating() bool { return i.animating }

// Config returns the instance configuration snapshot.
func (i *Instance) Config() Config { return i.cfg }

// State returns the current state snapshot, for the host and tests.
func (i *Instance) State() State { return i.state }

// Theme returns the theme resolved at mount.
func (i *Instance) Theme() theme.Theme { return i.th }

// Send transmits a message on the push connection; no-op unless connected.
func (i *Instance) Send(v any) {
	i.conn.Send(v)
}
