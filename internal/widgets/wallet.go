package widgets

import (
	"encoding/json"

	"github.com/charmbracelet/lipgloss"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

// TagWalletOrb is the wallet orb's element tag.
const TagWalletOrb = "iv-wallet-orb"

// WalletState is the wallet orb's state record.
type WalletState struct {
	Balance  float64
	Currency string
	Trend    string // "up", "down" or ""
}

// WalletOrb shows a live wallet balance inside a glowing orb.
type WalletOrb struct{}

// NewWalletOrb constructs the wallet orb spec.
func NewWalletOrb() runtime.Spec { return WalletOrb{} }

func (WalletOrb) Tag() string { return TagWalletOrb }

func (WalletOrb) ObservedAttributes() []string {
	return []string{"balance", "currency"}
}

// RendersOn: the orb re-renders on every observed attribute.
func (WalletOrb) RendersOn(string) bool { return true }

func (WalletOrb) NewState() runtime.State {
	return WalletState{Currency: "VLT"}
}

func (WalletOrb) ApplyAttribute(s runtime.State, name, value string) runtime.State {
	st := s.(WalletState)
	switch name {
	case "balance":
		st.Balance = runtime.FloatAttr(value, 0)
	case "currency":
		if value != "" {
			st.Currency = value
		}
	}
	return st
}

func (WalletOrb) MessageType() string { return "balance_update" }

type walletPayload struct {
	Balance  *float64 `json:"balance"`
	Currency string   `json:"currency"`
	Trend    string   `json:"trend"`
}

func (WalletOrb) OnMessage(s runtime.State, payload json.RawMessage) (runtime.Transition, bool) {
	st := s.(WalletState)
	var body walletPayload
	if err := json.Unmarshal(payload, &body); err != nil || body.Balance == nil {
		return runtime.Transition{State: st}, false
	}
	st.Balance = *body.Balance
	if body.Currency != "" {
		st.Currency = body.Currency
	}
	st.Trend = body.Trend
	return runtime.Transition{State: st}, true
}

func (WalletOrb) View(s runtime.State, _ runtime.Config, th theme.Theme, width int) string {
	st := s.(WalletState)
	styles := th.Styles()

	trend := " "
	trendStyle := styles.Muted
	switch st.Trend {
	case "up":
		trend = "▲"
		trendStyle = styles.Ok
	case "down":
		trend = "▼"
		trendStyle = styles.Crit
	}

	orb := styles.Accent.Render("◉")
	amount := styles.Value.Render(FormatBalance(st.Balance))
	currency := styles.Label.Render(st.Currency)

	line := lipgloss.JoinHorizontal(lipgloss.Center,
		orb, " ", amount, " ", currency, " ", trendStyle.Render(trend))

	return styles.Frame.Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.Title.Render("Wallet"),
			line,
		),
	)
}

func (WalletOrb) Cleanup(s runtime.State) runtime.State { return s }

func init() {
	register(TagWalletOrb, NewWalletOrb)
}
