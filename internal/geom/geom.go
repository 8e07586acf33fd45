// Package geom holds the hit tests shared by the levels.
package geom

import "math"

// Point is a position on the surface, in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Finite reports whether both coordinates are real numbers.
func Finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// Dist returns the euclidean distance between two points.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// InCircle is strict: a point on the rim is a miss.
func InCircle(x, y, cx, cy, r float64) bool {
	return Dist(x, y, cx, cy) < r
}

// Contains is strict on every edge.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Clamp pins v into [lo, hi]. When the range is empty it returns its midpoint.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
