package widgets

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagCapsuleCard is the capsule card's element tag.
const TagCapsuleCard = "iv-capsule-card"

// CapsuleState is the capsule card's state record.
type CapsuleState struct {
	CapsuleID  string
	Title      string
	Status     string
	ProofCount int
}

// CapsuleCard summarizes one capsule and lets the host open it.
type CapsuleCard struct{}

// NewCapsuleCard constructs the capsule card spec.
func NewCapsuleCard() runtime.Spec { return CapsuleCard{} }

func (CapsuleCard) Tag() string { return TagCapsuleCard }

func (CapsuleCard) ObservedAttributes() []string {
	return []string{"capsule-id", "title", "status"}
}

// RendersOn: only title and status changes repaint; capsule-id is carried
// silently until the next render.
func (CapsuleCard) RendersOn(attr string) bool {
	return attr == "title" || attr == "status"
}

func (CapsuleCard) NewState() runtime.State {
	return CapsuleState{Status: "sealed"}
}

func (CapsuleCard) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(CapsuleState)
	switch name {
	case "capsule-id":
		st.CapsuleID = value
	case "title":
		st.Title = value
	case "status":
		if value != "" {
			st.Status = value
		}
	}
	return st
}

func (CapsuleCard) MessageType() string { return "capsule_update" }

type capsulePayload struct {
	CapsuleID  string `json:"capsuleId"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	ProofCount *int   `json:"proofCount"`
}

func (CapsuleCard) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(CapsuleState)
	var body capsulePayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return runtime.Transition{State: st}, false
	}
	if body.CapsuleID != "" && st.CapsuleID != "" && body.CapsuleID != st.CapsuleID {
		// Update for a different capsule: not ours.
		return runtime.Transition{State: st}, false
	}
	if body.CapsuleID != "" {
		st.CapsuleID = body.CapsuleID
	}
	if body.Title != "" {
		st.Title = body.Title
	}
	if body.Status != "" {
		st.Status = body.Status
	}
	if body.ProofCount != nil {
		st.ProofCount = *body.ProofCount
	}
	return runtime.Transition{State: st}, true
}

// Act: "open" surfaces a view-capsule notification for the host.
func (CapsuleCard) Act(s runtime.State, action string) (runtime.Transition, bool) {
	st := s.(CapsuleState)
	if action != "open" {
		return runtime.Transition{State: st}, false
	}
	return runtime.Transition{
		State: st,
		Events: []runtime.Event{{
			Name:   "view-capsule",
			Detail: map[string]any{"capsuleId": st.CapsuleID},
		}},
	}, true
}

func (CapsuleCard) Keys() []runtime.KeyBinding {
	return []runtime.KeyBinding{
		{Key: "o", Action: "open", Help: "open capsule"},
	}
}

func (CapsuleCard) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(CapsuleState)
	styles := th.Styles()

	statusStyle := styles.Muted
	switch st.Status {
	case "active", "verified":
		statusStyle = styles.Ok
	case "pending":
		statusStyle = styles.Warn
	case "revoked":
		statusStyle = styles.Crit
	}

	title := st.Title
	if title == "" {
		title = "untitled capsule"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Title.Render(truncate(title, width-12)),
		" ",
		statusStyle.Render("["+st.Status+"]"),
	)
	meta := styles.Label.Render(fmt.Sprintf("%s · %d proofs", truncate(st.CapsuleID, 18), st.ProofCount))
	hint := styles.Muted.Render("o: open")

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, meta, hint),
	)
}

func (CapsuleCard) Cleanup(s runtime.State) runtime.State { return s }

func init() {
	register(TagCapsuleCard, NewCapsuleCard)
}
