package tui

import "github.com/intentvault/widgets/internal/runtime"

// EventMsg carries a widget notification event into the host loop.
type EventMsg struct {
	Event runtime.Event
}
