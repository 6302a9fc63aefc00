package gauge

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasSetAndAt(t *testing.T) {
	t.Parallel()

	c := NewCanvas(10, 4)
	c.Set(3, 2, 'x', nil)

	assert.Equal(t, 'x', c.At(3, 2))
	assert.Equal(t, ' ', c.At(0, 0))
}

func TestCanvasOutOfBoundsIsIgnored(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 2)
	c.Set(-1, 0, 'x', nil)
	c.Set(4, 0, 'x', nil)
	c.Set(0, 2, 'x', nil)

	assert.Equal(t, strings.Repeat(" ", 4)+"\n"+strings.Repeat(" ", 4), c.String())
}

func TestCanvasCenteredText(t *testing.T) {
	t.Parallel()

	c := NewCanvas(11, 1)
	c.CenteredText(0, "42%", nil)

	assert.Equal(t, "    42%    ", c.String())
}

func TestCanvasClearResetsCells(t *testing.T) {
	t.Parallel()

	c := NewCanvas(3, 1)
	style := lipgloss.NewStyle().Bold(true)
	c.Set(1, 0, 'x', &style)
	c.Clear()

	assert.Equal(t, "   ", c.String())
}

func TestDrawPaintsPercentageAndArc(t *testing.T) {
	t.Parallel()

	c := NewCanvas(41, 13)
	Draw(c, 42, 60, 85, &Palette{})

	out := c.String()
	require.Contains(t, out, "42%")

	// The value arc must have painted solid cells.
	assert.Contains(t, out, "█")
	// The track dots extend past the value arc.
	assert.Contains(t, out, "·")
}

func TestDrawRoundsDisplayedPercentage(t *testing.T) {
	t.Parallel()

	c := NewCanvas(41, 13)
	Draw(c, 79.96, 60, 85, &Palette{})

	assert.Contains(t, c.String(), "80%")
}
