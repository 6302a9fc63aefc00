package widgets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerPrependsNewestFirst(t *testing.T) {
	t.Parallel()

	w := NewProofTicker()
	s := w.NewState()
	for i := 1; i <= 3; i++ {
		tr, ok := w.OnMessage(s, []byte(fmt.Sprintf(`{"id":"p-%d","kind":"mint"}`, i)))
		require.True(t, ok)
		s = tr.State
	}

	st := s.(TickerState)
	require.Len(t, st.Entries, 3)
	assert.Equal(t, "p-3", st.Entries[0].ID)
	assert.Equal(t, "p-1", st.Entries[2].ID)
}

func TestTickerDropsEntriesPastCap(t *testing.T) {
	t.Parallel()

	w := NewProofTicker()
	s := w.NewState()
	for i := 0; i < tickerCap+5; i++ {
		tr, ok := w.OnMessage(s, []byte(fmt.Sprintf(`{"id":"p-%d"}`, i)))
		require.True(t, ok)
		s = tr.State
	}

	st := s.(TickerState)
	assert.Len(t, st.Entries, tickerCap)
	assert.Equal(t, fmt.Sprintf("p-%d", tickerCap+4), st.Entries[0].ID)
}

func TestTickerRejectsEmptyID(t *testing.T) {
	t.Parallel()

	w := NewProofTicker()
	_, ok := w.OnMessage(w.NewState(), []byte(`{"kind":"mint"}`))
	assert.False(t, ok)
}

func TestTickerLimitAttribute(t *testing.T) {
	t.Parallel()

	w := NewProofTicker()

	st := w.ApplyAttribute(w.NewState(), "limit", "4").(TickerState)
	assert.Equal(t, 4, st.Limit)

	st = w.ApplyAttribute(w.NewState(), "limit", "0").(TickerState)
	assert.Equal(t, 8, st.Limit, "out-of-range falls back to default")

	st = w.ApplyAttribute(w.NewState(), "limit", "999").(TickerState)
	assert.Equal(t, tickerCap, st.Limit)

	st = w.ApplyAttribute(w.NewState(), "limit", "lots").(TickerState)
	assert.Equal(t, 8, st.Limit)
}
