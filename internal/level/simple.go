package level

import (
	"image/color"
	"strconv"
	"time"

	"squircles/internal/geom"
	"squircles/internal/surface"
)

// ClickAnywhere is the title screen. Any click starts the game.
type ClickAnywhere struct {
	base
	clicked bool
}

const startDelay = 500 * time.Millisecond

func NewClickAnywhere(h Host, w, ht float64) Level {
	return &ClickAnywhere{base: newBase(h, w, ht)}
}

func (l *ClickAnywhere) Draw(s surface.Surface) {
	s.Text("CLICK ANYWHERE", l.w/2, l.h/2, surface.Centered(60, true), ink)
	s.Text("To start the game", l.w/2, l.h/2+50, surface.Centered(20, false), muted)
}

func (l *ClickAnywhere) MouseMove(x, y float64) {
	if l.host.Rand().Float64() > 0.5 {
		l.host.SpawnParticles(x, y, trail)
	}
}

func (l *ClickAnywhere) Click(x, y float64) {
	if l.clicked {
		return
	}
	l.clicked = true
	l.host.After(startDelay, l.host.Advance)
}

// ClickTarget asks for five hits on a sphere that jumps after each one.
type ClickTarget struct {
	base
	x, y      float64
	radius    float64
	remaining int
}

func NewClickTarget(h Host, w, ht float64) Level {
	l := &ClickTarget{base: newBase(h, w, ht), radius: 80, remaining: 5}
	l.x, l.y = l.randomSpot(100)
	return l
}

func (l *ClickTarget) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.x = geom.Clamp(l.x, l.radius, w-l.radius)
	l.y = geom.Clamp(l.y, l.radius, h-l.radius)
}

func (l *ClickTarget) Draw(s surface.Surface) {
	s.FillGradientCircle(l.x, l.y, l.radius, geom.Point{X: l.x - 20, Y: l.y - 20}, sky, cyan)
	s.StrokeCircle(l.x, l.y, l.radius, 5, white)
	s.Text(strconv.Itoa(l.remaining), l.x, l.y, surface.Centered(30, true), white)
	s.Text("Click the Blue Circle", l.w/2, 50, surface.Centered(20, false), ink)
}

func (l *ClickTarget) Click(x, y float64) {
	if !geom.InCircle(x, y, l.x, l.y, l.radius) {
		return
	}
	l.remaining--
	if l.remaining <= 0 {
		l.host.Advance()
		return
	}
	l.host.Cues().PlaySuccess()
	l.x, l.y = l.randomSpot(100)
}

// Remaining is the number of hits still needed.
func (l *ClickTarget) Remaining() int { return l.remaining }

type swatch struct {
	name string
	clr  color.Color
}

type colorTarget struct {
	x, y   float64
	radius float64
	swatch swatch
}

// ColorMatch names a colour and wants the matching circle.
type ColorMatch struct {
	base
	targets []colorTarget
	want    swatch
}

func NewColorMatch(h Host, w, ht float64) Level {
	swatches := []swatch{
		{"RED", red},
		{"BLUE", blue},
		{"GREEN", green},
		{"YELLOW", yellow},
	}
	l := &ColorMatch{base: newBase(h, w, ht)}
	l.want = swatches[h.Rand().Intn(len(swatches))]
	for _, sw := range swatches {
		l.targets = append(l.targets, colorTarget{radius: 60, swatch: sw})
	}
	l.layout()
	return l
}

func (l *ColorMatch) layout() {
	for i := range l.targets {
		l.targets[i].x = l.w / 5 * float64(i+1)
		l.targets[i].y = l.h / 2
	}
}

func (l *ColorMatch) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.layout()
}

func (l *ColorMatch) Draw(s surface.Surface) {
	l.title(s, "Click the", 100, 40)
	s.Text(l.want.name+" ONE", l.w/2, 150, surface.Centered(40, true), l.want.clr)
	for _, t := range l.targets {
		s.FillCircle(t.x, t.y, t.radius, t.swatch.clr)
		s.StrokeCircle(t.x, t.y, t.radius, 4, white)
	}
}

func (l *ColorMatch) Click(x, y float64) {
	for _, t := range l.targets {
		if !geom.InCircle(x, y, t.x, t.y, t.radius) {
			continue
		}
		if t.swatch.name == l.want.name {
			l.host.Advance()
		} else {
			l.buzz(150, 300*time.Millisecond)
		}
		return
	}
}

// DoubleClick only reacts to a double-click on its circle.
type DoubleClick struct {
	base
	radius float64
}

func NewDoubleClick(h Host, w, ht float64) Level {
	return &DoubleClick{base: newBase(h, w, ht), radius: 80}
}

func (l *DoubleClick) Draw(s surface.Surface) {
	cx, cy := l.w/2, l.h/2
	s.Text("DOUBLE CLICK ME", cx, cy-120, surface.Centered(40, true), ink)
	s.FillCircle(cx, cy, l.radius, orange)
	s.StrokeCircle(cx, cy, l.radius, 5, white)
}

func (l *DoubleClick) DoubleClick(x, y float64) {
	if geom.InCircle(x, y, l.w/2, l.h/2, l.radius) {
		l.host.Advance()
	}
}

// RightClick wants a secondary click on its box.
type RightClick struct {
	base
	size float64
}

func NewRightClick(h Host, w, ht float64) Level {
	return &RightClick{base: newBase(h, w, ht), size: 150}
}

func (l *RightClick) box() geom.Rect {
	return geom.Rect{X: l.w/2 - l.size/2, Y: l.h/2 - l.size/2, W: l.size, H: l.size}
}

func (l *RightClick) Draw(s surface.Surface) {
	b := l.box()
	l.title(s, "RIGHT CLICK the Box", b.Y-50, 40)
	s.FillRect(b.X, b.Y, b.W, b.H, royal)
	s.StrokeRect(b.X, b.Y, b.W, b.H, 5, white)
}

func (l *RightClick) ContextMenu(x, y float64) {
	if l.box().Contains(x, y) {
		l.host.Advance()
	}
}
