package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapsuleDefaults(t *testing.T) {
	t.Parallel()

	st := NewCapsuleCard().NewState().(CapsuleState)
	assert.Equal(t, "sealed", st.Status)
}

func TestCapsuleOnMessageUpdatesFields(t *testing.T) {
	t.Parallel()

	c := NewCapsuleCard()
	tr, ok := c.OnMessage(c.NewState(), []byte(`{"capsuleId":"cap-1","title":"Genesis","status":"active","proofCount":3}`))
	require.True(t, ok)
	st := tr.State.(CapsuleState)
	assert.Equal(t, "cap-1", st.CapsuleID)
	assert.Equal(t, "Genesis", st.Title)
	assert.Equal(t, "active", st.Status)
	assert.Equal(t, 3, st.ProofCount)
}

func TestCapsuleOnMessageRejectsForeignCapsule(t *testing.T) {
	t.Parallel()

	c := NewCapsuleCard()
	st := c.ApplyAttribute(c.NewState(), "capsule-id", "cap-1")
	tr, ok := c.OnMessage(st, []byte(`{"capsuleId":"cap-2","status":"active"}`))
	assert.False(t, ok)
	assert.Equal(t, "sealed", tr.State.(CapsuleState).Status)
}

func TestCapsuleOpenAction(t *testing.T) {
	t.Parallel()

	c := NewCapsuleCard().(CapsuleCard)
	st := c.ApplyAttribute(c.NewState(), "capsule-id", "cap-1")

	tr, ok := c.Act(st, "open")
	require.True(t, ok)
	require.Len(t, tr.Events, 1)
	assert.Equal(t, "view-capsule", tr.Events[0].Name)
	assert.Equal(t, "cap-1", tr.Events[0].Detail["capsuleId"])

	_, ok = c.Act(st, "shred")
	assert.False(t, ok)
}

func TestCapsuleEmptyStatusAttributeKeepsCurrent(t *testing.T) {
	t.Parallel()

	c := NewCapsuleCard()
	st := c.ApplyAttribute(c.NewState(), "status", "").(CapsuleState)
	assert.Equal(t, "sealed", st.Status)
}
