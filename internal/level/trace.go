package level

import (
	"math"
	"time"

	"squircles/internal/geom"
	"squircles/internal/surface"
)

// TracePath is a straight corridor. The trace starts in the START zone and
// must stay inside the band until FINISH.
type TracePath struct {
	base
	band    float64
	padding float64
	zone    float64
	inPath  bool
}

func NewTracePath(h Host, w, ht float64) Level {
	return &TracePath{base: newBase(h, w, ht), band: 100, padding: 100, zone: 50}
}

func (l *TracePath) corridor() geom.Rect {
	return geom.Rect{X: l.padding, Y: l.h/2 - l.band/2, W: l.w - 2*l.padding, H: l.band}
}

// inCorridor includes the edges, unlike Rect.Contains.
func (l *TracePath) inCorridor(x, y float64) bool {
	c := l.corridor()
	return x >= c.X && x <= c.X+c.W && y >= c.Y && y <= c.Y+c.H
}

func (l *TracePath) MouseMove(x, y float64) {
	if !l.inCorridor(x, y) {
		if l.inPath {
			l.inPath = false
			l.buzz(200, 200*time.Millisecond)
		}
		return
	}
	c := l.corridor()
	if x < c.X+l.zone {
		l.inPath = true
	}
	if !l.inPath {
		return
	}
	l.host.SpawnParticles(x, y, purple)
	if x > c.X+c.W-l.zone {
		l.host.Advance()
	}
}

// Tracing reports whether a trace is in progress.
func (l *TracePath) Tracing() bool { return l.inPath }

func (l *TracePath) Draw(s surface.Surface) {
	c := l.corridor()
	cy := l.h / 2
	label := surface.Centered(16, false)

	s.FillRect(c.X, c.Y, c.W, c.H, track)
	s.FillRect(c.X, c.Y, l.zone, c.H, lime)
	s.Text("START", c.X+l.zone/2, cy, label, black)
	s.FillRect(c.X+c.W-l.zone, c.Y, l.zone, c.H, peach)
	s.Text("FINISH", c.X+c.W-l.zone/2, cy, label, black)
	s.StrokeRect(c.X, c.Y, c.W, c.H, 2, black)

	l.title(s, "Trace the Path from START to FINISH", 50, 30)
	if !l.inPath {
		s.Text("Go to Start", l.w/2, l.h-50, surface.Centered(30, true), red)
	}
}

// PrecisionMaze is a narrow corridor around a sine wave.
type PrecisionMaze struct {
	base
	halfWidth float64
	points    []geom.Point
	inPath    bool
}

const (
	mazeStep      = 50
	mazeAmplitude = 200
	mazeWave      = 100
	// Anything left of mazeGrace counts as the start zone.
	mazeGrace = 100
)

func NewPrecisionMaze(h Host, w, ht float64) Level {
	l := &PrecisionMaze{base: newBase(h, w, ht), halfWidth: 30}
	l.layout()
	return l
}

// centerline is the ideal y for a given x.
func (l *PrecisionMaze) centerline(x float64) float64 {
	return l.h/2 + math.Sin(x/mazeWave)*mazeAmplitude
}

func (l *PrecisionMaze) layout() {
	x := float64(mazeStep)
	l.points = append(l.points[:0], geom.Point{X: x, Y: l.h / 2})
	for x < l.w-mazeStep {
		x += mazeStep
		l.points = append(l.points, geom.Point{X: x, Y: l.centerline(x)})
	}
}

func (l *PrecisionMaze) Resize(w, h float64) {
	l.base.Resize(w, h)
	l.layout()
}

// OnTrack is the corridor membership test.
func (l *PrecisionMaze) OnTrack(x, y float64) bool {
	return x < mazeGrace || math.Abs(y-l.centerline(x)) < l.halfWidth
}

func (l *PrecisionMaze) MouseMove(x, y float64) {
	if !l.OnTrack(x, y) {
		if l.inPath {
			l.inPath = false
			l.buzz(150, 200*time.Millisecond)
		}
		return
	}
	if x < mazeGrace {
		l.inPath = true
	}
	// On a narrow surface the finish must still lie past the start zone.
	if l.inPath && x >= mazeGrace && x > l.w-mazeGrace {
		l.host.Advance()
	}
}

// Tracing reports whether a trace is in progress.
func (l *PrecisionMaze) Tracing() bool { return l.inPath }

func (l *PrecisionMaze) Draw(s surface.Surface) {
	s.StrokePolyline(l.points, l.halfWidth*2, track)

	first, last := l.points[0], l.points[len(l.points)-1]
	label := surface.Centered(16, false)
	s.FillCircle(first.X, first.Y, l.halfWidth, lime)
	s.Text("START", first.X, first.Y, label, black)
	s.FillCircle(last.X, last.Y, l.halfWidth, peach)
	s.Text("FINISH", last.X, last.Y, label, black)

	l.title(s, "Precise Mouse Movement", 50, 30)
}
