// Package surface describes the 2D drawing target the game renders onto.
//
// The desktop window, the headless PNG canvas and the test recorder all
// implement Surface, so levels never know which one they are drawing to.
package surface

import (
	"image/color"

	"squircles/internal/geom"
)

// Background is the colour Clear paints.
var Background = color.RGBA{0xf1, 0xf2, 0xf6, 0xff}

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of a text run.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
)

// Font selects size, weight and anchoring for Text.
type Font struct {
	Size     float64
	Bold     bool
	Align    Align
	Baseline Baseline
}

// Centered is the anchoring most labels use.
func Centered(size float64, bold bool) Font {
	return Font{Size: size, Bold: bold, Align: AlignCenter, Baseline: BaselineMiddle}
}

// Surface is the set of primitives levels, particles and the HUD draw with.
// Angles are radians, clockwise from the positive x axis.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeCircle(x, y, r, width float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	// FillSector fills the pie slice between two angles.
	FillSector(x, y, r, from, to float64, c color.Color)
	// StrokePolyline uses round caps and joins.
	StrokePolyline(pts []geom.Point, width float64, c color.Color)
	// FillGradientCircle blends from inner at focus to outer at the rim.
	FillGradientCircle(x, y, r float64, focus geom.Point, inner, outer color.Color)
	Text(s string, x, y float64, f Font, c color.Color)
	// SetDash applies to later strokes. No arguments turns dashing off.
	SetDash(pattern ...float64)
}
