package level

import (
	"math"
	"strconv"

	"squircles/internal/geom"
	"squircles/internal/surface"
)

const (
	bounceSpeedUp = 1.1
	bounceShrink  = 0.98
)

// BouncingTarget drifts around the surface and gets faster and smaller with
// every hit.
type BouncingTarget struct {
	base
	x, y   float64
	vx, vy float64
	radius float64
	hits   int
	needed int
}

func NewBouncingTarget(h Host, w, ht float64) Level {
	return &BouncingTarget{
		base:   newBase(h, w, ht),
		x:      w / 2,
		y:      ht / 2,
		vx:     1.5,
		vy:     1.5,
		radius: 80,
		needed: 5,
	}
}

// reflect keeps pos inside [r, size-r] and points v back inside.
func reflect(pos, v, r, size float64) (float64, float64) {
	if size < 2*r {
		return size / 2, v
	}
	if pos-r < 0 {
		return r, math.Abs(v)
	}
	if pos+r > size {
		return size - r, -math.Abs(v)
	}
	return pos, v
}

func (l *BouncingTarget) Update() {
	l.x += l.vx
	l.y += l.vy
	l.x, l.vx = reflect(l.x, l.vx, l.radius, l.w)
	l.y, l.vy = reflect(l.y, l.vy, l.radius, l.h)
}

func (l *BouncingTarget) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.x, l.vx = reflect(l.x, l.vx, l.radius, w)
	l.y, l.vy = reflect(l.y, l.vy, l.radius, h)
}

func (l *BouncingTarget) Draw(s surface.Surface) {
	s.FillGradientCircle(l.x, l.y, l.radius, geom.Point{X: l.x - 20, Y: l.y - 20}, blush, candy)
	s.StrokeCircle(l.x, l.y, l.radius, 3, white)
	s.Text(strconv.Itoa(l.needed-l.hits), l.x, l.y, surface.Centered(40, true), white)
	s.Text("Catch me!", l.x, l.y+l.radius+30, surface.Centered(20, false), ink)
}

func (l *BouncingTarget) Click(x, y float64) {
	if !geom.InCircle(x, y, l.x, l.y, l.radius) {
		return
	}
	l.hits++
	l.vx *= bounceSpeedUp
	l.vy *= bounceSpeedUp
	l.radius *= bounceShrink
	if l.hits >= l.needed {
		l.host.Advance()
	}
}

// Position returns the current centre and radius.
func (l *BouncingTarget) Position() (x, y, r float64) { return l.x, l.y, l.radius }

// Hits is the number of successful clicks so far.
func (l *BouncingTarget) Hits() int { return l.hits }
