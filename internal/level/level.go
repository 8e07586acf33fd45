// Package level holds the fifteen challenges of the game.
//
// Every level is a small state machine behind the Level interface. Input
// handlers are optional: a level implements only the handler interfaces it
// cares about and the session ignores the rest.
package level

import (
	"image/color"
	"math/rand"
	"time"

	"squircles/internal/audio"
	"squircles/internal/sched"
	"squircles/internal/surface"
)

// Level is the part every challenge implements.
type Level interface {
	Update()
	Draw(s surface.Surface)
	// Resize re-derives layout for the new surface size. Progress is kept.
	Resize(w, h float64)
}

type Clicker interface{ Click(x, y float64) }

type MouseMover interface{ MouseMove(x, y float64) }

type MouseDowner interface{ MouseDown(x, y float64) }

type MouseUpper interface{ MouseUp(x, y float64) }

type DoubleClicker interface{ DoubleClick(x, y float64) }

// ContextMenuer handles a secondary (right) click.
type ContextMenuer interface{ ContextMenu(x, y float64) }

// Wheeler receives scroll deltas; negative is up.
type Wheeler interface{ Wheel(deltaY float64) }

// Host is the slice of the session a level may use. A host stops working
// once its level has been replaced.
type Host interface {
	// Advance ends the level successfully.
	Advance()
	// SpawnParticles bursts particles at a point; nil picks random hues.
	SpawnParticles(x, y float64, c color.Color)
	Cues() audio.Cues
	After(d time.Duration, fn func()) sched.Task
	Cancel(t sched.Task) bool
	Now() time.Time
	Rand() *rand.Rand
}

// base carries what every level needs: its host and the surface size.
type base struct {
	host Host
	w, h float64
}

func newBase(host Host, w, h float64) base {
	return base{host: host, w: w, h: h}
}

func (b *base) Update() {}

func (b *base) Resize(w, h float64) {
	b.w, b.h = w, h
}

// buzz is the "wrong" cue.
func (b *base) buzz(freq float64, d time.Duration) {
	b.host.Cues().PlayTone(freq, audio.Sawtooth, d)
}

// randomSpot picks a point at least margin away from every edge.
func (b *base) randomSpot(margin float64) (float64, float64) {
	rng := b.host.Rand()
	return rng.Float64()*max(b.w-2*margin, 0) + margin,
		rng.Float64()*max(b.h-2*margin, 0) + margin
}

// title draws the instruction line most levels show at the top.
func (b *base) title(s surface.Surface, text string, y, size float64) {
	s.Text(text, b.w/2, y, surface.Centered(size, true), ink)
}

// Info describes one entry of the level table.
type Info struct {
	Number int
	Name   string
	Hint   string
	New    func(h Host, w, ht float64) Level
}

var catalog = []Info{
	{1, "Click Anywhere", "Click anywhere to start", NewClickAnywhere},
	{2, "Click Target", "Click the blue circle five times", NewClickTarget},
	{3, "Bouncing Target", "Catch the bouncing circle five times", NewBouncingTarget},
	{4, "Color Match", "Click the circle of the named colour", NewColorMatch},
	{5, "Drag to Box", "Drag the ball into the box", NewDragToBox},
	{6, "Double Click", "Double-click the circle", NewDoubleClick},
	{7, "Right Click", "Right-click the box", NewRightClick},
	{8, "Hover Patience", "Hover over the circle for three seconds", NewHoverPatience},
	{9, "Sort by Color", "Drop each ball into the bin of its colour", NewSortByColor},
	{10, "Trace Path", "Trace the corridor from START to FINISH", NewTracePath},
	{11, "Numbered Sequence", "Click 1 to 5 in order", NewNumberedSequence},
	{12, "Shrinking Targets", "Click targets before they vanish", NewShrinkingTargets},
	{13, "Reaction Time", "Click as soon as the screen turns green", NewReactionTime},
	{14, "Scroll Inflate", "Scroll up to the dotted line, then click", NewScrollInflate},
	{15, "Precision Maze", "Follow the wavy path without leaving it", NewPrecisionMaze},
}

// Catalog lists every level in play order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Count is the number of defined levels.
func Count() int { return len(catalog) }

// Lookup returns the entry for level n.
func Lookup(n int) (Info, bool) {
	if n < 1 || n > len(catalog) {
		return Info{}, false
	}
	return catalog[n-1], true
}

// New builds level n for a w x h surface.
func New(n int, host Host, w, h float64) (Level, bool) {
	info, ok := Lookup(n)
	if !ok {
		return nil, false
	}
	return info.New(host, w, h), true
}
