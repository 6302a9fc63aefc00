package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intentvault/widgets/internal/gauge"
)

func TestEnergyDefaults(t *testing.T) {
	t.Parallel()

	st := NewEnergyGauge().NewState().(EnergyState)
	assert.Equal(t, 100.0, st.Peak)
	assert.Equal(t, "W", st.Unit)
	assert.Equal(t, 60.0, st.WarnThreshold)
	assert.Equal(t, 85.0, st.CritThreshold)
	require.NotNil(t, st.Engine)
}

func TestEnergyMessageArmsAnimation(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge()
	tr, ok := g.OnMessage(g.NewState(), []byte(`{"current":80}`))
	require.True(t, ok)
	assert.True(t, tr.Animate)

	st := tr.State.(EnergyState)
	assert.Equal(t, 80.0, st.Current)
	assert.Equal(t, gauge.StatusAnimating, st.Engine.State())

	require.Len(t, tr.Events, 1)
	assert.Equal(t, "energy-update", tr.Events[0].Name)
}

func TestEnergyAttributeSnapsWithoutAnimating(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge()
	st := g.ApplyAttribute(g.NewState(), "current", "50").(EnergyState)
	assert.Equal(t, 50.0, st.Current)
	assert.Equal(t, 50.0, st.Engine.Current())
	assert.Equal(t, gauge.StatusIdle, st.Engine.State())
}

func TestEnergyAdvanceStepsTowardTarget(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge().(EnergyGauge)
	tr, ok := g.OnMessage(g.NewState(), []byte(`{"current":100}`))
	require.True(t, ok)

	st, more := g.Advance(tr.State)
	assert.True(t, more)
	assert.InDelta(t, 10.0, st.(EnergyState).Engine.Current(), 1e-9)
}

func TestEnergyMessageRaisesPeakToCurrent(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge()
	tr, ok := g.OnMessage(g.NewState(), []byte(`{"current":150}`))
	require.True(t, ok)
	st := tr.State.(EnergyState)
	assert.Equal(t, 150.0, st.Peak)
	assert.InDelta(t, 100.0, st.Engine.Target(), 1e-9)
}

func TestEnergyRunningAverage(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge()
	s := g.NewState()
	for _, v := range []string{`{"current":10}`, `{"current":20}`, `{"current":30}`} {
		tr, ok := g.OnMessage(s, []byte(v))
		require.True(t, ok)
		s = tr.State
	}
	assert.InDelta(t, 20.0, s.(EnergyState).Average, 1e-9)
}

func TestEnergyMessageWithoutCurrentIsUnhandled(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge()
	_, ok := g.OnMessage(g.NewState(), []byte(`{"unit":"kW"}`))
	assert.False(t, ok)
}

func TestEnergyCleanupStopsEngine(t *testing.T) {
	t.Parallel()

	g := NewEnergyGauge()
	tr, ok := g.OnMessage(g.NewState(), []byte(`{"current":80}`))
	require.True(t, ok)

	st := g.Cleanup(tr.State).(EnergyState)
	assert.Equal(t, gauge.StatusIdle, st.Engine.State())
	assert.False(t, st.Engine.Step())
}
