package widgets

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/gauge"
	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagEnergyGauge is the energy gauge's element tag.
const TagEnergyGauge = "iv-energy-gauge"

// EnergyState is the energy gauge state record. The embedded engine is the
// per-instance animation state machine; everything else is plain telemetry.
type EnergyState struct {
	Engine *gauge.Engine

	Current float64
	Peak    float64
	Average float64
	Unit    string

	WarnThreshold float64
	CritThreshold float64

	samples int
}

// percent maps the current reading onto the gauge's [0,100] range.
func (st EnergyState) percent() float64 {
	if st.Peak <= 0 {
		return 0
	}
	return st.Current / st.Peak * 100
}

// EnergyGauge renders live energy telemetry as an animated circular gauge.
// Frequent updates route through the canvas frame loop rather than the full
// re-render path.
type EnergyGauge struct{}

// NewEnergyGauge constructs the energy gauge spec.
func NewEnergyGauge() runtime.Spec { return EnergyGauge{} }

func (EnergyGauge) Tag() string { return TagEnergyGauge }

func (EnergyGauge) ObservedAttributes() []string {
	return []string{"current", "peak", "threshold-warning", "threshold-critical", "unit"}
}

// RendersOn: current and the thresholds repaint; peak and unit are picked up
// on the next repaint.
func (EnergyGauge) RendersOn(attr string) bool {
	switch attr {
	case "current", "threshold-warning", "threshold-critical":
		return true
	}
	return false
}

func (EnergyGauge) NewState() runtime.State {
	return EnergyState{
		Engine:        gauge.NewEngine(),
		Peak:          100,
		Unit:          "W",
		WarnThreshold: 60,
		CritThreshold: 85,
	}
}

func (EnergyGauge) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(EnergyState)
	switch name {
	case "current":
		st.Current = runtime.FloatAttr(value, 0)
		// Attribute changes snap the needle; only messages animate.
		st.Engine.Snap(st.percent())
	case "peak":
		st.Peak = runtime.FloatAttr(value, 100)
	case "threshold-warning":
		st.WarnThreshold = runtime.FloatAttr(value, 60)
	case "threshold-critical":
		st.CritThreshold = runtime.FloatAttr(value, 85)
	case "unit":
		if value != "" {
			st.Unit = value
		}
	}
	return st
}

func (EnergyGauge) MessageType() string { return "energy_update" }

type energyPayload struct {
	Current *float64 `json:"current"`
	Peak    *float64 `json:"peak"`
	Unit    string   `json:"unit"`
}

func (EnergyGauge) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(EnergyState)
	var body energyPayload
	if err := json.Unmarshal(payload, &body); err != nil || body.Current == nil {
		return runtime.Transition{State: st}, false
	}

	st.Current = *body.Current
	if body.Peak != nil && *body.Peak > 0 {
		st.Peak = *body.Peak
	}
	if body.Unit != "" {
		st.Unit = body.Unit
	}
	if st.Current > st.Peak {
		st.Peak = st.Current
	}
	st.samples++
	st.Average += (st.Current - st.Average) / float64(st.samples)

	animate := st.Engine.SetTarget(st.percent())

	return runtime.Transition{
		State: st,
		Events: []runtime.Event{{
			Name:   "energy-update",
			Detail: map[string]any{"current": st.Current, "unit": st.Unit},
		}},
		Animate: animate,
	}, true
}

// Advance applies one easing frame toward the latest target.
func (EnergyGauge) Advance(s runtime.State) (runtime.State, bool) {
	st := s.(EnergyState)
	more := st.Engine.Step()
	return st, more
}

func (EnergyGauge) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(EnergyState)
	styles := th.Styles()

	inner := width - 4
	if inner < 21 {
		inner = 21
	}
	canvas := gauge.NewCanvas(inner, 11)
	gauge.Draw(canvas, st.Engine.Current(), st.WarnThreshold, st.CritThreshold, &gauge.Palette{
		Ok:     styles.Ok,
		Warn:   styles.Warn,
		Crit:   styles.Crit,
		Track:  styles.Muted,
		Needle: styles.Value,
		Shadow: styles.Muted,
		Text:   styles.Value,
	})

	stats := styles.Label.Render(fmt.Sprintf("now %s · peak %s · avg %s %s",
		FormatBalance(st.Current), FormatBalance(st.Peak), FormatBalance(st.Average), st.Unit))

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.Title.Render("Energy"),
			canvas.String(),
			stats,
		),
	)
}

// Cleanup stops the engine so a pending frame finds nothing to advance.
func (EnergyGauge) Cleanup(s runtime.State) runtime.State {
	st := s.(EnergyState)
	st.Engine.Stop()
	return st
}

func init() {
	register(TagEnergyGauge, NewEnergyGauge)
}
