package runtime

// Event is a notification surfaced to the embedding host, the runtime's
// analogue of a bubbling DOM event: a name plus an opaque detail payload.
type Event struct {
	Tag    string
	Name   string
	Detail map[string]any
}

// Emitter receives widget notification events.
type Emitter interface {
	Emit(ev Event)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(ev Event)

// Emit implements Emitter.
func (f EmitterFunc) Emit(ev Event) { f(ev) }

type discardEmitter struct{}

func (discardEmitter) Emit(Event) {}

// DiscardEmitter returns an emitter that drops every event.
func DiscardEmitter() Emitter { return discardEmitter{} }
