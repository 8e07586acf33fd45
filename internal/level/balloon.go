package level

import (
	"math"

	"squircles/internal/surface"
)

const (
	balloonStart     = 50
	balloonTarget    = 200
	balloonTolerance = 20
	balloonStep      = 5
	balloonMin       = 10
)

// ScrollInflate grows a balloon with the wheel. It pops on a click, but
// only while it is close enough to the dotted line.
type ScrollInflate struct {
	base
	radius float64
}

func NewScrollInflate(h Host, w, ht float64) Level {
	return &ScrollInflate{base: newBase(h, w, ht), radius: balloonStart}
}

func (l *ScrollInflate) inBand() bool {
	return math.Abs(l.radius-balloonTarget) < balloonTolerance
}

func (l *ScrollInflate) Wheel(deltaY float64) {
	switch {
	case deltaY < 0:
		l.radius += balloonStep
	case deltaY > 0:
		l.radius = math.Max(balloonMin, l.radius-balloonStep)
	}
}

func (l *ScrollInflate) Click(x, y float64) {
	if !l.inBand() {
		return
	}
	l.host.SpawnParticles(l.w/2, l.h/2, salmon)
	l.host.Advance()
}

// Radius is the balloon's current size.
func (l *ScrollInflate) Radius() float64 { return l.radius }

func (l *ScrollInflate) Draw(s surface.Surface) {
	cx, cy := l.w/2, l.h/2
	s.SetDash(10, 10)
	s.StrokeCircle(cx, cy, balloonTarget, 10, ghost)
	s.SetDash()

	s.FillCircle(cx, cy, l.radius, salmon)
	l.title(s, "SCROLL UP to Inflate to the Dotted Line", 100, 30)
	if l.inBand() {
		s.Text("CLICK TO POP!", cx, l.h-100, surface.Centered(30, true), mint)
	}
}
