package surface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"squircles/internal/assets"
	"squircles/internal/geom"
)

type faceKey struct {
	size float64
	bold bool
}

// Canvas is an offscreen Surface backed by a gg context. It is used for
// headless snapshots.
type Canvas struct {
	dc      *gg.Context
	regular *truetype.Font
	bold    *truetype.Font
	faces   map[faceKey]font.Face
}

// NewCanvas allocates a w x h canvas and parses the UI fonts.
func NewCanvas(w, h int) (*Canvas, error) {
	regular, err := truetype.Parse(assets.FontTTF(false))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	bold, err := truetype.Parse(assets.FontTTF(true))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &Canvas{
		dc:      gg.NewContext(w, h),
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func (c *Canvas) face(size float64, bold bool) font.Face {
	key := faceKey{size, bold}
	if f, ok := c.faces[key]; ok {
		return f
	}
	ttf := c.regular
	if bold {
		ttf = c.bold
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[key] = f
	return f
}

func (c *Canvas) Clear() {
	c.dc.SetColor(Background)
	c.dc.Clear()
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	c.dc.DrawCircle(x, y, r)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

func (c *Canvas) StrokeCircle(x, y, r, width float64, clr color.Color) {
	c.dc.DrawCircle(x, y, r)
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.SetColor(clr)
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

func (c *Canvas) FillSector(x, y, r, from, to float64, clr color.Color) {
	if to <= from {
		return
	}
	c.dc.MoveTo(x, y)
	c.dc.DrawArc(x, y, r, from, to)
	c.dc.ClosePath()
	c.dc.SetColor(clr)
	c.dc.Fill()
}

func (c *Canvas) StrokePolyline(pts []geom.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()
	c.dc.SetLineWidth(width)
	c.dc.SetColor(clr)
	c.dc.Stroke()
}

func (c *Canvas) FillGradientCircle(x, y, r float64, focus geom.Point, inner, outer color.Color) {
	grad := gg.NewRadialGradient(focus.X, focus.Y, r/8, x, y, r)
	grad.AddColorStop(0, inner)
	grad.AddColorStop(1, outer)
	c.dc.DrawCircle(x, y, r)
	c.dc.SetFillStyle(grad)
	c.dc.Fill()
}

func (c *Canvas) Text(s string, x, y float64, f Font, clr color.Color) {
	c.dc.SetFontFace(c.face(f.Size, f.Bold))
	c.dc.SetColor(clr)

	ax := 0.0
	switch f.Align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	ay := 0.0
	switch f.Baseline {
	case BaselineMiddle:
		ay = 0.35
	case BaselineTop:
		ay = 0.75
	}
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

func (c *Canvas) SetDash(pattern ...float64) {
	c.dc.SetDash(pattern...)
}
