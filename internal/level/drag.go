package level

import (
	"image/color"
	"time"

	"squircles/internal/geom"
	"squircles/internal/surface"
)

// DragToBox wants the ball dropped inside the box.
type DragToBox struct {
	base
	bx, by   float64
	radius   float64
	dragging bool
	box      geom.Rect
}

func NewDragToBox(h Host, w, ht float64) Level {
	l := &DragToBox{base: newBase(h, w, ht), radius: 50}
	l.bx, l.by = l.home()
	l.layout()
	return l
}

func (l *DragToBox) home() (float64, float64) { return 100, l.h / 2 }

func (l *DragToBox) layout() {
	l.box = geom.Rect{X: l.w - 200, Y: l.h/2 - 75, W: 150, H: 150}
}

func (l *DragToBox) Resize(w, h float64) {
	l.base.Resize(w, h)
	if !l.dragging {
		_, l.by = l.home()
	}
	l.layout()
}

func (l *DragToBox) Draw(s surface.Surface) {
	l.title(s, "Drag the BALL to the BOX", 80, 40)
	s.FillRect(l.box.X, l.box.Y, l.box.W, l.box.H, royal)
	s.StrokeRect(l.box.X, l.box.Y, l.box.W, l.box.H, 4, white)
	s.FillCircle(l.bx, l.by, l.radius, orchid)
	s.StrokeCircle(l.bx, l.by, l.radius, 2, white)
}

func (l *DragToBox) MouseDown(x, y float64) {
	if geom.InCircle(x, y, l.bx, l.by, l.radius) {
		l.dragging = true
	}
}

func (l *DragToBox) MouseMove(x, y float64) {
	if !l.dragging {
		return
	}
	l.bx, l.by = x, y
	l.host.SpawnParticles(x, y, orchid)
}

func (l *DragToBox) MouseUp(x, y float64) {
	if !l.dragging {
		return
	}
	l.dragging = false
	if l.box.Contains(x, y) {
		l.host.Advance()
		return
	}
	l.bx, l.by = l.home()
	l.buzz(200, 200*time.Millisecond)
}

type token struct {
	x, y   float64
	kind   int
	sorted bool
}

type bin struct {
	rect geom.Rect
	kind int
}

// SortByColor has three balls to drop into the bins of their colour.
// A sorted ball disappears and takes no further input.
type SortByColor struct {
	base
	colors  []color.Color
	tokens  []token
	slots   []int
	bins    []bin
	radius  float64
	grabbed int
}

const (
	sortRow     = 150
	sortSpacing = 150
)

func NewSortByColor(h Host, w, ht float64) Level {
	l := &SortByColor{
		base:    newBase(h, w, ht),
		colors:  []color.Color{red, green, royal},
		radius:  40,
		grabbed: -1,
	}
	for k := range l.colors {
		l.tokens = append(l.tokens, token{kind: k})
		l.bins = append(l.bins, bin{kind: k})
	}
	// slots[i] is the home column of token i.
	l.slots = h.Rand().Perm(len(l.tokens))
	l.layout()
	for i := range l.tokens {
		l.tokens[i].x, l.tokens[i].y = l.home(i)
	}
	return l
}

func (l *SortByColor) home(i int) (float64, float64) {
	return l.w/2 + float64(l.slots[i]-1)*sortSpacing, sortRow
}

func (l *SortByColor) layout() {
	for i := range l.bins {
		l.bins[i].rect = geom.Rect{X: l.w/2 - 225 + float64(i)*160, Y: l.h - 150, W: 150, H: 100}
	}
}

func (l *SortByColor) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.layout()
	for i := range l.tokens {
		if !l.tokens[i].sorted && i != l.grabbed {
			l.tokens[i].x, l.tokens[i].y = l.home(i)
		}
	}
}

func (l *SortByColor) Draw(s surface.Surface) {
	for _, b := range l.bins {
		s.FillRect(b.rect.X, b.rect.Y, b.rect.W, b.rect.H, l.colors[b.kind])
		s.StrokeRect(b.rect.X, b.rect.Y, b.rect.W, b.rect.H, 1, white)
		s.Text("DROP HERE", b.rect.X+b.rect.W/2, b.rect.Y+b.rect.H/2, surface.Centered(20, true), white)
	}
	for _, t := range l.tokens {
		if t.sorted {
			continue
		}
		s.FillCircle(t.x, t.y, l.radius, l.colors[t.kind])
		s.StrokeCircle(t.x, t.y, l.radius, 1, black)
	}
	l.title(s, "Sort the balls by COLOR", 50, 30)
}

// MouseDown grabs the topmost unsorted ball under the pointer.
func (l *SortByColor) MouseDown(x, y float64) {
	for i := len(l.tokens) - 1; i >= 0; i-- {
		t := l.tokens[i]
		if !t.sorted && geom.InCircle(x, y, t.x, t.y, l.radius) {
			l.grabbed = i
			return
		}
	}
}

func (l *SortByColor) MouseMove(x, y float64) {
	if l.grabbed < 0 {
		return
	}
	l.tokens[l.grabbed].x, l.tokens[l.grabbed].y = x, y
}

// MouseUp resolves the ball grabbed on MouseDown, and only that ball.
func (l *SortByColor) MouseUp(x, y float64) {
	if l.grabbed < 0 {
		return
	}
	i := l.grabbed
	l.grabbed = -1
	t := &l.tokens[i]

	dropped := false
	for _, b := range l.bins {
		if b.rect.Contains(x, y) && b.kind == t.kind {
			dropped = true
			break
		}
	}
	if !dropped {
		t.x, t.y = l.home(i)
		l.buzz(200, 200*time.Millisecond)
		return
	}

	t.sorted = true
	l.host.Cues().PlaySuccess()
	if l.Sorted() == len(l.tokens) {
		l.host.Advance()
	}
}

// Sorted is the number of balls already in their bins.
func (l *SortByColor) Sorted() int {
	n := 0
	for _, t := range l.tokens {
		if t.sorted {
			n++
		}
	}
	return n
}
