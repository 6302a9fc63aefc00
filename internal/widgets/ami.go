package widgets

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagAmiPulse is the AmI pulse's element tag.
const TagAmiPulse = "iv-ami-pulse"

// AmiState is the AmI pulse state record. Activity is normalized to [0,1].
type AmiState struct {
	Activity float64
	Mood     string
}

// AmiPulse visualizes ambient-intelligence activity as a pulse bar.
type AmiPulse struct{}

// NewAmiPulse constructs the AmI pulse spec.
func NewAmiPulse() runtime.Spec { return AmiPulse{} }

func (AmiPulse) Tag() string { return TagAmiPulse }

func (AmiPulse) ObservedAttributes() []string {
	return []string{"activity-level"}
}

// RendersOn: only the activity level repaints.
func (AmiPulse) RendersOn(attr string) bool { return attr == "activity-level" }

func (AmiPulse) NewState() runtime.State {
	return AmiState{Activity: 0.5, Mood: "calm"}
}

func (AmiPulse) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(AmiState)
	if name == "activity-level" {
		st.Activity = clampUnit(runtime.FloatAttr(value, 0.5))
	}
	return st
}

func (AmiPulse) MessageType() string { return "ami_state" }

type amiPayload struct {
	Activity *float64 `json:"activity"`
	Mood     string   `json:"mood"`
}

func (AmiPulse) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(AmiState)
	var body amiPayload
	if err := json.Unmarshal(payload, &body); err != nil || body.Activity == nil {
		return runtime.Transition{State: st}, false
	}
	st.Activity = clampUnit(*body.Activity)
	if body.Mood != "" {
		st.Mood = body.Mood
	}
	return runtime.Transition{State: st}, true
}

func (AmiPulse) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(AmiState)
	styles := th.Styles()

	barWidth := width - 8
	if barWidth < 5 {
		barWidth = 5
	}
	filled := int(st.Activity*float64(barWidth) + 0.5)

	barStyle := styles.Ok
	if st.Activity >= 0.8 {
		barStyle = styles.Crit
	} else if st.Activity >= 0.5 {
		barStyle = styles.Warn
	}

	pulse := barStyle.Render(meter(filled, barWidth))
	label := styles.Label.Render(fmt.Sprintf("%.0f%% · %s", st.Activity*100, st.Mood))

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.Title.Render("AmI"),
			pulse,
			label,
		),
	)
}

func (AmiPulse) Cleanup(s runtime.State) runtime.State { return s }

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	register(TagAmiPulse, NewAmiPulse)
}
