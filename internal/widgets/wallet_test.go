package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/theme"
)

func TestWalletDefaults(t *testing.T) {
	t.Parallel()

	st := NewWalletOrb().NewState().(WalletState)
	assert.Equal(t, 0.0, st.Balance)
	assert.Equal(t, "VLT", st.Currency)
}

func TestWalletApplyBalanceAttribute(t *testing.T) {
	t.Parallel()

	w := NewWalletOrb()
	st := w.ApplyAttribute(w.NewState(), "balance", "1234.5").(WalletState)
	assert.Equal(t, 1234.5, st.Balance)

	st = w.ApplyAttribute(st, "balance", "garbage").(WalletState)
	assert.Equal(t, 0.0, st.Balance, "malformed value falls back to default")
}

func TestWalletOnMessage(t *testing.T) {
	t.Parallel()

	w := NewWalletOrb()
	tr, ok := w.OnMessage(w.NewState(), []byte(`{"balance":9001.25,"trend":"up"}`))
	require.True(t, ok)
	st := tr.State.(WalletState)
	assert.Equal(t, 9001.25, st.Balance)
	assert.Equal(t, "up", st.Trend)
}

func TestWalletOnMessageWithoutBalanceIsUnhandled(t *testing.T) {
	t.Parallel()

	w := NewWalletOrb()
	before := w.NewState().(WalletState)
	tr, ok := w.OnMessage(before, []byte(`{"trend":"up"}`))
	assert.False(t, ok)
	assert.Equal(t, before, tr.State.(WalletState))
}

func TestWalletViewShowsFormattedBalance(t *testing.T) {
	t.Parallel()

	w := NewWalletOrb()
	st := w.ApplyAttribute(w.NewState(), "balance", "1234.5")
	out := w.View(st, runtime.Config{}, theme.Default(theme.ModeDark), 40)
	assert.Contains(t, out, "1,234.50")
	assert.Contains(t, out, "VLT")
}
