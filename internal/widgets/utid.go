package widgets

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagUtidBadge is the UTID badge's element tag.
const TagUtidBadge = "iv-utid-badge"

// consciousness levels render as a five-step meter
const consciousnessSteps = 5

// UtidState is the UTID badge state record.
type UtidState struct {
	UTID          string
	Verified      bool
	Hash          string
	IssuedAt      string
	Provenance    []string
	Consciousness int
	ShowQR        bool
}

// UtidBadge renders a cryptographic identity badge with copy and QR actions.
type UtidBadge struct{}

// NewUtidBadge constructs the UTID badge spec.
func NewUtidBadge() runtime.Spec { return UtidBadge{} }

func (UtidBadge) Tag() string { return TagUtidBadge }

func (UtidBadge) ObservedAttributes() []string {
	return []string{"utid", "verified", "consciousness"}
}

// RendersOn: the badge re-renders on every observed attribute.
func (UtidBadge) RendersOn(string) bool { return true }

func (UtidBadge) NewState() runtime.State {
	return UtidState{}
}

func (UtidBadge) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(UtidState)
	switch name {
	case "utid":
		st.UTID = value
	case "verified":
		st.Verified = runtime.BoolAttr(value, false)
	case "consciousness":
		st.Consciousness = runtime.IntAttr(value, 0)
	}
	return st
}

func (UtidBadge) MessageType() string { return "utid_status" }

type utidPayload struct {
	UTID          string   `json:"utid"`
	Verified      *bool    `json:"verified"`
	Hash          string   `json:"hash"`
	IssuedAt      string   `json:"issuedAt"`
	Provenance    []string `json:"provenance"`
	Consciousness *int     `json:"consciousness"`
}

func (UtidBadge) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(UtidState)
	var body utidPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return runtime.Transition{State: st}, false
	}
	if body.UTID != "" {
		st.UTID = body.UTID
	}
	if body.Verified != nil {
		st.Verified = *body.Verified
	}
	if body.Hash != "" {
		st.Hash = body.Hash
	}
	if body.IssuedAt != "" {
		st.IssuedAt = body.IssuedAt
	}
	if body.Provenance != nil {
		st.Provenance = body.Provenance
	}
	if body.Consciousness != nil {
		st.Consciousness = *body.Consciousness
	}
	return runtime.Transition{State: st}, true
}

// Act: "copy" surfaces the utid for the host clipboard; "toggle-qr" flips
// the QR panel and announces when it becomes visible.
func (UtidBadge) Act(s runtime.State, action string) (runtime.Transition, bool) {
	st := s.(UtidState)
	switch action {
	case "copy":
		return runtime.Transition{
			State: st,
			Events: []runtime.Event{{
				Name:   "utid-copied",
				Detail: map[string]any{"utid": st.UTID},
			}},
		}, true
	case "toggle-qr":
		st.ShowQR = !st.ShowQR
		tr := runtime.Transition{State: st}
		if st.ShowQR {
			tr.Events = []runtime.Event{{
				Name:   "qr-shown",
				Detail: map[string]any{"utid": st.UTID},
			}}
		}
		return tr, true
	}
	return runtime.Transition{State: st}, false
}

func (UtidBadge) Keys() []runtime.KeyBinding {
	return []runtime.KeyBinding{
		{Key: "c", Action: "copy", Help: "copy utid"},
		{Key: "r", Action: "toggle-qr", Help: "toggle QR"},
	}
}

func (UtidBadge) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(UtidState)
	styles := th.Styles()

	mark := styles.Crit.Render("✗ unverified")
	if st.Verified {
		mark = styles.Ok.Render("✓ verified")
	}

	utid := st.UTID
	if utid == "" {
		utid = "—"
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center,
			styles.Title.Render("UTID "),
			styles.Value.Render(truncate(utid, width-16)),
		),
		mark,
	}
	if st.Hash != "" {
		lines = append(lines, styles.Label.Render("hash "+shortHash(st.Hash)))
	}
	lines = append(lines, styles.Label.Render(
		fmt.Sprintf("consciousness %s · %d provenance", meter(st.Consciousness, consciousnessSteps), len(st.Provenance))))

	if st.ShowQR {
		lines = append(lines, qrPanel(utid, styles))
	}
	lines = append(lines, styles.Muted.Render("c: copy · r: QR"))

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

// qrPanel renders a deterministic block pattern derived from the utid. It is
// a visual stand-in, not a scannable code.
func qrPanel(utid string, styles theme.Styles) string {
	const size = 6
	rows := make([]string, size)
	for y := 0; y < size; y++ {
		row := make([]rune, size*2)
		for x := 0; x < size; x++ {
			h := 0
			for i, r := range utid {
				h = h*31 + int(r) + i*x + y*7
			}
			cell := ' '
			if h%3 == 0 {
				cell = '█'
			}
			row[x*2] = cell
			row[x*2+1] = cell
		}
		rows[y] = string(row)
	}
	return styles.Accent.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (UtidBadge) Cleanup(s runtime.State) runtime.State { return s }

func init() {
	register(TagUtidBadge, NewUtidBadge)
}
