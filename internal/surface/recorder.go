package surface

import (
	"image/color"

	"squircles/internal/geom"
)

// Op is one recorded draw call.
type Op struct {
	Kind  string
	Text  string
	X, Y  float64
	R     float64
	Color color.Color
}

// Recorder is a Surface that keeps the calls it receives instead of
// drawing them. Clear starts a new frame.
type Recorder struct {
	ops   []Op
	frame int
	dash  []float64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op) {
	r.ops = append(r.ops, op)
}

// Frames is the number of Clear calls seen.
func (r *Recorder) Frames() int { return r.frame }

// Ops returns the calls made since the last Clear.
func (r *Recorder) Ops() []Op { return r.ops }

// Texts returns the strings drawn since the last Clear, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many calls of kind were made since the last Clear.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Dashed reports whether a dash pattern is active.
func (r *Recorder) Dashed() bool { return len(r.dash) > 0 }

func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.frame++
}

func (r *Recorder) FillCircle(x, y, rad float64, c color.Color) {
	r.add(Op{Kind: "fill-circle", X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, rad, _ float64, c color.Color) {
	r.add(Op{Kind: "stroke-circle", X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) FillRect(x, y, _, _ float64, c color.Color) {
	r.add(Op{Kind: "fill-rect", X: x, Y: y, Color: c})
}

func (r *Recorder) StrokeRect(x, y, _, _, _ float64, c color.Color) {
	r.add(Op{Kind: "stroke-rect", X: x, Y: y, Color: c})
}

func (r *Recorder) FillSector(x, y, rad, _, _ float64, c color.Color) {
	r.add(Op{Kind: "fill-sector", X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) StrokePolyline(pts []geom.Point, _ float64, c color.Color) {
	op := Op{Kind: "polyline", Color: c}
	if len(pts) > 0 {
		op.X, op.Y = pts[0].X, pts[0].Y
	}
	r.add(op)
}

func (r *Recorder) FillGradientCircle(x, y, rad float64, _ geom.Point, _, outer color.Color) {
	r.add(Op{Kind: "gradient-circle", X: x, Y: y, R: rad, Color: outer})
}

func (r *Recorder) Text(s string, x, y float64, _ Font, c color.Color) {
	r.add(Op{Kind: "text", Text: s, X: x, Y: y, Color: c})
}

func (r *Recorder) SetDash(pattern ...float64) {
	r.dash = append(r.dash[:0], pattern...)
}
