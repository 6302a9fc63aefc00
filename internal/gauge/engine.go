package gauge

import "fmt"

// Status is the animation loop state. The engine is a two-state machine with
// a single transition rule applied once per frame, which makes the
// one-active-loop invariant checkable: frames may only be scheduled while
// the status is StatusAnimating.
type Status int

const (
	// StatusIdle means the displayed value has converged; no frame is due.
	StatusIdle Status = iota
	// StatusAnimating means a frame chain is live and Step must be called.
	StatusAnimating
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAnimating:
		return "animating"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// convergence threshold and per-frame easing factor, in percentage units
const (
	snapEpsilon = 0.1
	easeFactor  = 0.1
)

// Engine eases a displayed percentage toward a commanded target. Values are
// percentages in [0, 100].
type Engine struct {
	current float64
	target  float64
	status  Status
}

// NewEngine returns an idle engine at zero.
func NewEngine() *Engine {
	return &Engine{}
}

// SetTarget commands a new target, clamped to [0, 100], and reports whether
// the caller must schedule a frame. A false return either means the engine
// is already animating (the live frame chain will pick the target up) or the
// value snapped immediately because it was already within the threshold.
func (e *Engine) SetTarget(v float64) bool {
	e.target = clamp(v, 0, 100)

	if e.status == StatusAnimating {
		return false
	}
	if abs(e.target-e.current) <= snapEpsilon {
		e.current = e.target
		return false
	}
	e.status = StatusAnimating
	return true
}

// Step advances one frame and reports whether another frame is needed. Once
// the displayed value is within the threshold it snaps to the target and the
// engine goes idle; no further frames may be scheduled until the next
// SetTarget arms it again.
func (e *Engine) Step() bool {
	delta := e.target - e.current
	if abs(delta) > snapEpsilon {
		e.current += delta * easeFactor
		e.status = StatusAnimating
		return true
	}
	e.current = e.target
	e.status = StatusIdle
	return false
}

// Snap sets both the displayed and commanded value without animating. Used
// for attribute-driven changes, which bypass the frame loop.
func (e *Engine) Snap(v float64) {
	e.target = clamp(v, 0, 100)
	e.current = e.target
	e.status = StatusIdle
}

// Stop forces the engine idle. Used on unmount so a pending frame callback
// finds nothing to do.
func (e *Engine) Stop() {
	e.status = StatusIdle
}

// Current returns the displayed value.
func (e *Engine) Current() float64 { return e.current }

// Target returns the commanded value.
func (e *Engine) Target() float64 { return e.target }

// State returns the loop status.
func (e *Engine) State() Status { return e.status }

// Zone classifies a value against warning/critical thresholds.
type Zone int

const (
	ZoneOk Zone = iota
	ZoneWarn
	ZoneCrit
)

// ZoneOf returns the zone a value falls in: ok below warning, warn from
// warning up to critical, crit at or above critical.
func ZoneOf(value, warn, crit float64) Zone {
	switch {
	case value >= crit:
		return ZoneCrit
	case value >= warn:
		return ZoneWarn
	default:
		return ZoneOk
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
