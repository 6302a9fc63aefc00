package gauge

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// The gauge sweeps 270 degrees with the opening at the bottom: the track
// runs from 0.75pi to 2.25pi, matching the widget's original geometry.
const (
	arcStart = 0.75 * math.Pi
	arcEnd   = 2.25 * math.Pi
)

// Palette carries the styles a frame is painted with. Zone styles color the
// value arc and the zone bands; Track, Needle, Shadow and Text cover the
// remaining strokes.
type Palette struct {
	Ok     lipgloss.Style
	Warn   lipgloss.Style
	Crit   lipgloss.Style
	Track  lipgloss.Style
	Needle lipgloss.Style
	Shadow lipgloss.Style
	Text   lipgloss.Style
}

// angleFor maps a percentage onto the gauge's angular range.
func angleFor(v float64) float64 {
	return arcStart + clamp(v, 0, 100)/100*(arcEnd-arcStart)
}

// Draw repaints one frame of the gauge for the displayed value. The full
// sequence per frame: clear, track arc, three zone bands, value arc colored
// by the current zone, needle with its one-cell shadow, hub, percentage.
func Draw(c *Canvas, current, warn, crit float64, p *Palette) {
	c.Clear()

	cx := float64(c.Width()-1) / (2 * xAspect)
	cy := float64(c.Height()) / 2
	radius := math.Min(cx, cy) - 1
	if radius < 2 {
		radius = 2
	}

	faintOk := p.Ok.Faint(true)
	faintWarn := p.Warn.Faint(true)
	faintCrit := p.Crit.Faint(true)

	// Track on the outer ring, threshold bands one ring in.
	band := radius - 1.5
	c.Arc(cx, cy, radius, arcStart, arcEnd, '·', &p.Track)
	c.Arc(cx, cy, band, arcStart, angleFor(warn), '─', &faintOk)
	c.Arc(cx, cy, band, angleFor(warn), angleFor(crit), '─', &faintWarn)
	c.Arc(cx, cy, band, angleFor(crit), arcEnd, '─', &faintCrit)

	valueStyle := p.Ok
	switch ZoneOf(current, warn, crit) {
	case ZoneWarn:
		valueStyle = p.Warn
	case ZoneCrit:
		valueStyle = p.Crit
	}
	c.Arc(cx, cy, radius, arcStart, angleFor(current), '█', &valueStyle)

	// Needle with a one-cell shadow beneath it.
	angle := angleFor(current)
	tipX := cx + (radius-1)*math.Cos(angle)
	tipY := cy + (radius-1)*math.Sin(angle)
	c.Line(cx+1/xAspect, cy, tipX+1/xAspect, tipY, '░', &p.Shadow)
	c.Line(cx, cy, tipX, tipY, '█', &p.Needle)

	c.FillCircle(cx, cy, 1.2, '█', &p.Needle)

	c.CenteredText(int(math.Round(cy)), fmt.Sprintf("%d%%", int(math.Round(current))), &p.Text)
}
