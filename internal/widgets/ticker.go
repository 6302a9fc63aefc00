package widgets

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagProofTicker is the proof ticker's element tag.
const TagProofTicker = "iv-proof-ticker"

// tickerCap bounds the retained entries regardless of the display limit.
const tickerCap = 32

// ProofEntry is one row of the scrolling proof feed.
type ProofEntry struct {
	ID   string
	Kind string
	Note string
	At   time.Time
}

// TickerState is the proof ticker state record. Entries are newest-first.
type TickerState struct {
	Entries []ProofEntry
	Limit   int
}

// ProofTicker renders a scrolling feed of proof events.
type ProofTicker struct{}

// NewProofTicker constructs the proof ticker spec.
func NewProofTicker() runtime.Spec { return ProofTicker{} }

func (ProofTicker) Tag() string { return TagProofTicker }

func (ProofTicker) ObservedAttributes() []string {
	return []string{"limit"}
}

// RendersOn: the display limit repaints.
func (ProofTicker) RendersOn(attr string) bool { return attr == "limit" }

func (ProofTicker) NewState() runtime.State {
	return TickerState{Limit: 8}
}

func (ProofTicker) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(TickerState)
	if name == "limit" {
		limit := runtime.IntAttr(value, 8)
		if limit < 1 {
			limit = 8
		}
		if limit > tickerCap {
			limit = tickerCap
		}
		st.Limit = limit
	}
	return st
}

func (ProofTicker) MessageType() string { return "proof_event" }

type proofPayload struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Note string `json:"note"`
}

func (ProofTicker) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(TickerState)
	var body proofPayload
	if err := json.Unmarshal(payload, &body); err != nil || body.ID == "" {
		return runtime.Transition{State: st}, false
	}

	entry := ProofEntry{ID: body.ID, Kind: body.Kind, Note: body.Note, At: time.Now()}
	entries := make([]ProofEntry, 0, len(st.Entries)+1)
	entries = append(entries, entry)
	entries = append(entries, st.Entries...)
	if len(entries) > tickerCap {
		entries = entries[:tickerCap]
	}
	st.Entries = entries

	return runtime.Transition{State: st}, true
}

func (ProofTicker) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(TickerState)
	styles := th.Styles()
	now := time.Now()

	rows := []string{styles.Title.Render("Proofs")}
	if len(st.Entries) == 0 {
		rows = append(rows, styles.Muted.Render("no proofs yet"))
	}
	shown := st.Entries
	if len(shown) > st.Limit {
		shown = shown[:st.Limit]
	}
	for _, entry := range shown {
		kind := entry.Kind
		if kind == "" {
			kind = "proof"
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			styles.Accent.Render("▸ "),
			styles.Value.Render(truncate(kind, 12)),
			styles.Label.Render(fmt.Sprintf(" %s · %s", truncate(entry.Note, width-28), timeAgo(entry.At, now))),
		))
	}

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (ProofTicker) Cleanup(s runtime.State) runtime.State { return s }

func init() {
	register(TagProofTicker, NewProofTicker)
}
