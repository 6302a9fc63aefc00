package widgets

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagShadowTwin is the shadow twin's element tag.
const TagShadowTwin = "iv-shadow-twin"

// TwinState is the shadow twin state record.
type TwinState struct {
	TwinID     string
	SyncStatus string
	LastSync   time.Time
	Drift      float64
	Energy     float64 // normalized [0,1]
	Calibrated bool
}

// ShadowTwin tracks a digital twin's synchronization status and lets the
// host request a sync.
type ShadowTwin struct{}

// NewShadowTwin constructs the shadow twin spec.
func NewShadowTwin() runtime.Spec { return ShadowTwin{} }

func (ShadowTwin) Tag() string { return TagShadowTwin }

func (ShadowTwin) ObservedAttributes() []string {
	return []string{"twin-id", "drift"}
}

// RendersOn: only the twin id repaints; drift refreshes with the next sync
// message anyway.
func (ShadowTwin) RendersOn(attr string) bool { return attr == "twin-id" }

func (ShadowTwin) NewState() runtime.State {
	return TwinState{SyncStatus: "unknown"}
}

func (ShadowTwin) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(TwinState)
	switch name {
	case "twin-id":
		st.TwinID = value
	case "drift":
		st.Drift = runtime.FloatAttr(value, 0)
	}
	return st
}

func (ShadowTwin) MessageType() string { return "twin_sync" }

type twinPayload struct {
	TwinID     string   `json:"twinId"`
	SyncStatus string   `json:"syncStatus"`
	Drift      *float64 `json:"drift"`
	Energy     *float64 `json:"energy"`
	Calibrated *bool    `json:"calibrated"`
}

func (ShadowTwin) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(TwinState)
	var body twinPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return runtime.Transition{State: st}, false
	}
	if body.TwinID != "" && st.TwinID != "" && body.TwinID != st.TwinID {
		return runtime.Transition{State: st}, false
	}
	if body.TwinID != "" {
		st.TwinID = body.TwinID
	}
	if body.SyncStatus != "" {
		st.SyncStatus = body.SyncStatus
		st.LastSync = time.Now()
	}
	if body.Drift != nil {
		st.Drift = *body.Drift
	}
	if body.Energy != nil {
		st.Energy = clampUnit(*body.Energy)
	}
	if body.Calibrated != nil {
		st.Calibrated = *body.Calibrated
	}
	return runtime.Transition{State: st}, true
}

// Act: "sync" surfaces a sync-requested notification; the host answers by
// sending a sync_request on the widget's connection.
func (ShadowTwin) Act(s runtime.State, action string) (runtime.Transition, bool) {
	st := s.(TwinState)
	if action != "sync" {
		return runtime.Transition{State: st}, false
	}
	return runtime.Transition{
		State: st,
		Events: []runtime.Event{{
			Name:   "sync-requested",
			Detail: map[string]any{"twinId": st.TwinID},
		}},
	}, true
}

func (ShadowTwin) Keys() []runtime.KeyBinding {
	return []runtime.KeyBinding{
		{Key: "s", Action: "sync", Help: "request sync"},
	}
}

func (ShadowTwin) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(TwinState)
	styles := th.Styles()

	statusStyle := styles.Muted
	switch st.SyncStatus {
	case "synced":
		statusStyle = styles.Ok
	case "drifting":
		statusStyle = styles.Warn
	case "desynced":
		statusStyle = styles.Crit
	}

	calibration := styles.Warn.Render("uncalibrated")
	if st.Calibrated {
		calibration = styles.Ok.Render("calibrated")
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = width - 14
	if bar.Width < 10 {
		bar.Width = 10
	}

	twinID := st.TwinID
	if twinID == "" {
		twinID = "—"
	}

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Center,
				styles.Title.Render("Twin "),
				styles.Value.Render(truncate(twinID, width-14)),
			),
			lipgloss.JoinHorizontal(lipgloss.Center,
				statusStyle.Render(st.SyncStatus),
				styles.Muted.Render(" · "),
				styles.Label.Render("sync "+timeAgo(st.LastSync, time.Now())),
			),
			styles.Label.Render(fmt.Sprintf("drift %.2f · %s", st.Drift, calibration)),
			lipgloss.JoinHorizontal(lipgloss.Center,
				styles.Label.Render("energy "),
				bar.ViewAs(st.Energy),
			),
			styles.Muted.Render("s: request sync"),
		),
	)
}

func (ShadowTwin) Cleanup(s runtime.State) runtime.State { return s }

func init() {
	register(TagShadowTwin, NewShadowTwin)
}
