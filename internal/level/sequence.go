package level

import (
	"fmt"
	"strconv"
	"time"

	"squircles/internal/geom"
	"squircles/internal/surface"
)

type numbered struct {
	id      int
	x, y    float64
	visible bool
}

// NumberedSequence wants its circles clicked in ascending order.
type NumberedSequence struct {
	base
	targets []numbered
	radius  float64
	next    int
}

const sequenceLength = 5

func NewNumberedSequence(h Host, w, ht float64) Level {
	l := &NumberedSequence{base: newBase(h, w, ht), radius: 40, next: 1}
	for i := 1; i <= sequenceLength; i++ {
		t := numbered{id: i, visible: true}
		t.x, t.y = l.randomSpot(100)
		l.targets = append(l.targets, t)
	}
	return l
}

func (l *NumberedSequence) Resize(w, h float64) {
	l.base.Resize(w, h)
	for i := range l.targets {
		l.targets[i].x = geom.Clamp(l.targets[i].x, l.radius, w-l.radius)
		l.targets[i].y = geom.Clamp(l.targets[i].y, l.radius, h-l.radius)
	}
}

func (l *NumberedSequence) Draw(s surface.Surface) {
	l.title(s, "Click 1, 2, 3, 4, 5 in Order", 50, 30)
	for _, t := range l.targets {
		if !t.visible {
			continue
		}
		s.FillCircle(t.x, t.y, l.radius, lavender)
		s.StrokeCircle(t.x, t.y, l.radius, 1, white)
		s.Text(strconv.Itoa(t.id), t.x, t.y, surface.Centered(30, true), white)
	}
}

// Click resolves the first visible circle under the pointer.
func (l *NumberedSequence) Click(x, y float64) {
	for i := range l.targets {
		t := &l.targets[i]
		if !t.visible || !geom.InCircle(x, y, t.x, t.y, l.radius) {
			continue
		}
		if t.id != l.next {
			l.buzz(150, 200*time.Millisecond)
			return
		}
		t.visible = false
		l.next++
		l.host.Cues().PlayClick()
		if l.next > sequenceLength {
			l.host.Advance()
		}
		return
	}
}

// Next is the number expected next.
func (l *NumberedSequence) Next() int { return l.next }

type shrinker struct {
	x, y   float64
	radius float64
}

// ShrinkingTargets shows one target at a time that shrinks away. A target
// that vanishes is replaced; it does not cost progress.
type ShrinkingTargets struct {
	base
	target  shrinker
	last    time.Time
	clicked int
	needed  int
}

const (
	shrinkStart = 80
	// shrinkRate is pixels of radius lost per second.
	shrinkRate = 30.0
)

func NewShrinkingTargets(h Host, w, ht float64) Level {
	l := &ShrinkingTargets{base: newBase(h, w, ht), needed: 5, last: h.Now()}
	l.spawn()
	return l
}

func (l *ShrinkingTargets) spawn() {
	l.target.x, l.target.y = l.randomSpot(100)
	l.target.radius = shrinkStart
}

func (l *ShrinkingTargets) Update() {
	now := l.host.Now()
	dt := now.Sub(l.last)
	l.last = now
	if dt <= 0 {
		return
	}
	l.target.radius -= shrinkRate * dt.Seconds()
	if l.target.radius <= 0 {
		l.spawn()
		l.buzz(150, 200*time.Millisecond)
	}
}

func (l *ShrinkingTargets) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.target.x = geom.Clamp(l.target.x, 100, w-100)
	l.target.y = geom.Clamp(l.target.y, 100, h-100)
}

func (l *ShrinkingTargets) Draw(s surface.Surface) {
	l.title(s, fmt.Sprintf("Click before they disappear! (%d/%d)", l.clicked, l.needed), 50, 30)
	t := l.target
	s.FillCircle(t.x, t.y, t.radius, rose)
	s.StrokeCircle(t.x, t.y, t.radius, 1, white)
}

func (l *ShrinkingTargets) Click(x, y float64) {
	if !geom.InCircle(x, y, l.target.x, l.target.y, l.target.radius) {
		return
	}
	l.clicked++
	l.host.Cues().PlayClick()
	if l.clicked >= l.needed {
		l.host.Advance()
		return
	}
	l.spawn()
}

// Clicked is the number of targets hit so far.
func (l *ShrinkingTargets) Clicked() int { return l.clicked }

// Target returns the live target's centre and radius.
func (l *ShrinkingTargets) Target() (x, y, r float64) {
	return l.target.x, l.target.y, l.target.radius
}
