package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentvault/widgets/internal/runtime"
	"github.com/intentvault/widgets/internal/widgets"
)

func TestEnvelopeRoutedToOwningInstance(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	raw := []byte(`{"type":"balance_update","data":{"balance":42}}`)

	next, _ := m.Update(runtime.EnvelopeMsg{ID: 0, Raw: raw})
	m = next.(Model)

	wallet := m.Instances()[0].State().(widgets.WalletState)
	assert.Equal(t, 42.0, wallet.Balance)

	capsule := m.Instances()[1].State().(widgets.CapsuleState)
	assert.Equal(t, "Genesis", capsule.Title, "other instance untouched")
}

func TestEnvelopeForUnknownInstanceIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, cmd := m.Update(runtime.EnvelopeMsg{ID: 99, Raw: []byte(`{}`)})
	require.NotNil(t, next)
	require.NotNil(t, cmd, "channel reader is still re-armed")
}

func TestOpenedAndClosedToggleConnected(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	next, _ := m.Update(runtime.OpenedMsg{ID: 0})
	m = next.(Model)
	assert.True(t, m.Instances()[0].Connected())

	next, _ = m.Update(runtime.ClosedMsg{ID: 0})
	m = next.(Model)
	assert.False(t, m.Instances()[0].Connected())
}

func TestQuitUnmountsEveryInstance(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, ok := m.Instances()[0].State().(widgets.WalletState)
	assert.True(t, ok, "state survives unmount for inspection")
	assert.Nil(t, m.Instances()[0].Frame(0), "unmounted instance schedules no frames")
}

func TestActionKeyRoutedToFocusedWidget(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// Focus the capsule card, then press its "open" key.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	assert.Nil(t, cmd, "open emits an event but schedules no animation")

	// The emitted event is queued on the external channel.
	select {
	case msg := <-m.msgs:
		ev, ok := msg.(EventMsg)
		require.True(t, ok)
		assert.Equal(t, "view-capsule", ev.Event.Name)
		assert.Equal(t, widgets.TagCapsuleCard, ev.Event.Tag)
	default:
		t.Fatal("expected a queued widget event")
	}
}

func TestEventMsgRecordedAndShown(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	next, _ := m.Update(EventMsg{Event: runtime.Event{
		Tag:    widgets.TagCapsuleCard,
		Name:   "view-capsule",
		Detail: map[string]any{"capsuleId": "cap-1"},
	}})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "view-capsule")
	assert.Contains(t, out, "cap-1")
}

func TestWindowSizePropagatesWidth(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	before := m.Instances()[0].Renders()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Greater(t, m.Instances()[0].Renders(), before)
}
