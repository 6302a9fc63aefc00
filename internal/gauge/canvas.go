package gauge

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// xAspect corrects for terminal cells being roughly twice as tall as wide,
// so circles drawn in cell space look round.
const xAspect = 2.0

// Canvas is a fixed-size cell grid the gauge is painted onto. Every frame
// repaints the whole grid; there is no partial invalidation.
type Canvas struct {
	width  int
	height int
	runes  []rune
	styles []*lipgloss.Style
}

// NewCanvas allocates a cleared canvas.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:  width,
		height: height,
		runes:  make([]rune, width*height),
		styles: make([]*lipgloss.Style, width*height),
	}
	c.Clear()
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.runes {
		c.runes[i] = ' '
		c.styles[i] = nil
	}
}

// Set paints a single cell. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	c.runes[i] = r
	c.styles[i] = style
}

// At returns the rune at a cell, or space when out of bounds.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.runes[y*c.width+x]
}

// plot maps gauge space (square, y down) onto cell space with aspect
// correction and paints the nearest cell.
func (c *Canvas) plot(gx, gy float64, r rune, style *lipgloss.Style) {
	x := int(math.Round(gx * xAspect))
	y := int(math.Round(gy))
	c.Set(x, y, r, style)
}

// Arc paints the circular arc from start to end radians (y axis pointing
// down, angles clockwise from positive x).
func (c *Canvas) Arc(cx, cy, radius, start, end float64, r rune, style *lipgloss.Style) {
	if end < start {
		start, end = end, start
	}
	// Sample densely enough that adjacent cells are hit at this radius.
	step := 0.5 / math.Max(1, radius*xAspect)
	for a := start; a <= end; a += step {
		c.plot(cx+radius*math.Cos(a), cy+radius*math.Sin(a), r, style)
	}
}

// Line paints a straight segment between two gauge-space points.
func (c *Canvas) Line(x0, y0, x1, y1 float64, r rune, style *lipgloss.Style) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Max(math.Abs(dx)*xAspect, math.Abs(dy))*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(x0+dx*t, y0+dy*t, r, style)
	}
}

// FillCircle paints a filled disc.
func (c *Canvas) FillCircle(cx, cy, radius float64, r rune, style *lipgloss.Style) {
	for gy := cy - radius; gy <= cy+radius; gy++ {
		for gx := cx - radius; gx <= cx+radius; gx += 0.5 {
			ddx := gx - cx
			ddy := gy - cy
			if ddx*ddx+ddy*ddy <= radius*radius {
				c.plot(gx, gy, r, style)
			}
		}
	}
}

// Text paints a string starting at a cell coordinate.
func (c *Canvas) Text(x, y int, s string, style *lipgloss.Style) {
	for i, r := range s {
		c.Set(x+i, y, r, style)
	}
}

// CenteredText paints a string horizontally centered on a cell row.
func (c *Canvas) CenteredText(y int, s string, style *lipgloss.Style) {
	c.Text((c.width-len(s))/2, y, s, style)
}

// String renders the grid to a styled multi-line string. Adjacent cells that
// share a style render as one styled run.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for x < c.width {
			style := c.styles[y*c.width+x]
			runEnd := x
			for runEnd < c.width && c.styles[y*c.width+runEnd] == style {
				runEnd++
			}
			segment := string(c.runes[y*c.width+x : y*c.width+runEnd])
			if style != nil {
				segment = style.Render(segment)
			}
			b.WriteString(segment)
			x = runEnd
		}
	}
	return b.String()
}
