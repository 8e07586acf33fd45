package level

import (
	"math"
	"time"

	"squircles/internal/geom"
	"squircles/internal/surface"
)

const (
	hoverRequired = 3 * time.Second
	// Outside the circle the meter drains at this fraction of real time.
	hoverDrain = 0.5
)

// HoverPatience fills a meter while the pointer rests on the circle. The
// meter leaks slowly instead of resetting when the pointer leaves.
type HoverPatience struct {
	base
	radius   float64
	meter    time.Duration
	last     time.Time
	px, py   float64
	pointer  bool
	hovering bool
	done     bool
}

func NewHoverPatience(h Host, w, ht float64) Level {
	return &HoverPatience{base: newBase(h, w, ht), radius: 100, last: h.Now()}
}

func (l *HoverPatience) Update() {
	now := l.host.Now()
	dt := now.Sub(l.last)
	l.last = now
	if l.done || dt <= 0 {
		return
	}

	if l.hovering {
		l.meter += dt
		if l.meter >= hoverRequired {
			l.done = true
			l.host.Advance()
		}
		return
	}
	l.meter -= time.Duration(float64(dt) * hoverDrain)
	if l.meter < 0 {
		l.meter = 0
	}
}

func (l *HoverPatience) check() {
	l.hovering = l.pointer && geom.InCircle(l.px, l.py, l.w/2, l.h/2, l.radius)
}

func (l *HoverPatience) MouseMove(x, y float64) {
	l.px, l.py, l.pointer = x, y, true
	l.check()
}

func (l *HoverPatience) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.check()
}

// Progress is the meter as a fraction of the requirement.
func (l *HoverPatience) Progress() float64 {
	return math.Min(1, float64(l.meter)/float64(hoverRequired))
}

func (l *HoverPatience) Draw(s surface.Surface) {
	cx, cy := l.w/2, l.h/2
	s.Text("HOVER over the Circle", cx, cy-120, surface.Centered(40, true), ink)
	s.FillCircle(cx, cy, l.radius, slate)
	if p := l.Progress(); p > 0 {
		start := -math.Pi / 2
		s.FillSector(cx, cy, l.radius, start, start+2*math.Pi*p, green)
	}
	s.StrokeCircle(cx, cy, l.radius, 5, white)
}
