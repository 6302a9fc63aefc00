package runtime

import (
	"encoding/json"

	"github.com/intentvault/widgets/internal/theme"
)

// State is a widget's private state record. Widgets define their own struct
// and the lifecycle driver threads it through transitions; state is replaced
// wholesale on every transition so a render always reads one snapshot.
type State any

// Transition is the result of a state update: the next state, notification
// events to surface to the host, and whether an animation frame chain should
// be armed.
type Transition struct {
	State   State
	Events  []Event
	Animate bool
}

// Spec is the contract a concrete widget implements. The lifecycle driver
// (Instance) composes a Spec with configuration, theme, connection and
// animation plumbing; widgets never subclass anything.
//
// All methods are pure with respect to the driver: they receive a state and
// return the next one.
type Spec interface {
	// Tag is the fixed element tag, e.g. "iv-energy-gauge".
	Tag() string

	// ObservedAttributes lists the value attributes this widget reacts to.
	// Attributes outside this set (and outside the shared config surface)
	// are ignored entirely.
	ObservedAttributes() []string

	// RendersOn reports whether a change to the named attribute triggers a
	// re-render. The policy is fixed per widget type: some re-render on
	// every observed attribute, others only on a named subset.
	RendersOn(attr string) bool

	// NewState returns the widget's built-in defaults.
	NewState() State

	// ApplyAttribute folds one attribute value into the state. Malformed
	// values fall back to the widget default for that field.
	ApplyAttribute(s State, name, value string) State

	// MessageType is the envelope discriminator this widget consumes.
	MessageType() string

	// OnMessage folds an accepted payload into the state. The boolean
	// reports whether the payload was handled; unhandled payloads leave the
	// state untouched.
	OnMessage(s State, payload json.RawMessage) (Transition, bool)

	// View renders the widget's whole region from the current snapshot.
	// Every call is a full rebuild; nothing is diffed or cached.
	View(s State, cfg Config, th theme.Theme, width int) string

	// Cleanup runs at unmount, after the connection is closed. Widgets with
	// no resources return the state unchanged.
	Cleanup(s State) State
}

// Actor is implemented by widgets with user-invokable actions (copy, sync,
// toggle). The driver routes host key presses to Act.
type Actor interface {
	Act(s State, action string) (Transition, bool)
}

// Animator is implemented by widgets that ease displayed values per frame.
// Advance applies one frame and reports whether another is needed.
type Animator interface {
	Advance(s State) (State, bool)
}

// KeyBinding maps a key press to a widget action.
type KeyBinding struct {
	Key    string
	Action string
	Help   string
}

// Interactive is implemented by widgets exposing key bindings. Bindings are
// re-derived after every render, mirroring handler re-attachment on rebuilt
// subtrees.
type Interactive interface {
	Keys() []KeyBinding
}
