package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"squircles/internal/assets"
	"squircles/internal/geom"
	"squircles/internal/surface"
)

// gradientSteps is how many rings approximate a radial gradient.
const gradientSteps = 24

type faceKey struct {
	size float64
	bold bool
}

// screen is the window Surface. Shapes go through ebiten's vector package;
// arcs and polylines are tessellated into triangles.
type screen struct {
	dst     *ebiten.Image
	white   *ebiten.Image
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
	dash    []float64

	vs []ebiten.Vertex
	is []uint16
}

func newScreen() (*screen, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(assets.FontTTF(false)))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(assets.FontTTF(true)))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	// Sample from the inner pixel so filtering never picks up the edge.
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)

	return &screen{
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

func (s *screen) target(dst *ebiten.Image) { s.dst = dst }

func (s *screen) Clear() {
	s.dst.Fill(surface.Background)
}

func (s *screen) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), c, true)
}

func (s *screen) StrokeCircle(x, y, r, width float64, c color.Color) {
	if len(s.dash) == 0 {
		vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), float32(width), c, true)
		return
	}
	if r <= 0 {
		return
	}

	var p vector.Path
	angle, on := 0.0, true
	for i := 0; angle < 2*math.Pi; i++ {
		seg := s.dash[i%len(s.dash)] / r
		if seg <= 0 {
			// A zero-length dash entry would never advance.
			seg = 1 / r
		}
		end := math.Min(angle+seg, 2*math.Pi)
		if on {
			p.MoveTo(float32(x+r*math.Cos(angle)), float32(y+r*math.Sin(angle)))
			p.Arc(float32(x), float32(y), float32(r), float32(angle), float32(end), vector.Clockwise)
		}
		angle, on = end, !on
	}
	s.stroke(&p, width, c)
}

func (s *screen) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *screen) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, true)
}

func (s *screen) FillSector(x, y, r, from, to float64, c color.Color) {
	var p vector.Path
	p.MoveTo(float32(x), float32(y))
	p.Arc(float32(x), float32(y), float32(r), float32(from), float32(to), vector.Clockwise)
	p.Close()
	s.fill(&p, c)
}

func (s *screen) StrokePolyline(pts []geom.Point, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.LineTo(float32(pt.X), float32(pt.Y))
	}
	s.stroke(&p, width, c)
}

// FillGradientCircle stacks shrinking discs that slide toward the focus,
// each blended a little further toward inner.
func (s *screen) FillGradientCircle(x, y, r float64, focus geom.Point, inner, outer color.Color) {
	in, ok := colorful.MakeColor(inner)
	if !ok {
		s.FillCircle(x, y, r, outer)
		return
	}
	out, ok := colorful.MakeColor(outer)
	if !ok {
		s.FillCircle(x, y, r, inner)
		return
	}
	for i := 0; i < gradientSteps; i++ {
		t := float64(i) / gradientSteps
		cx := x + (focus.X-x)*t
		cy := y + (focus.Y-y)*t
		s.FillCircle(cx, cy, r*(1-t), out.BlendRgb(in, t).Clamped())
	}
}

func (s *screen) face(size float64, bold bool) *text.GoTextFace {
	k := faceKey{size, bold}
	if f, ok := s.faces[k]; ok {
		return f
	}
	src := s.regular
	if bold {
		src = s.bold
	}
	f := &text.GoTextFace{Source: src, Size: size}
	s.faces[k] = f
	return f
}

func (s *screen) Text(str string, x, y float64, f surface.Font, c color.Color) {
	face := s.face(f.Size, f.Bold)
	op := &text.DrawOptions{}

	switch f.Align {
	case surface.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case surface.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	switch f.Baseline {
	case surface.BaselineMiddle:
		op.SecondaryAlign = text.AlignCenter
	case surface.BaselineTop:
		op.SecondaryAlign = text.AlignStart
	default:
		// text/v2 anchors at the top of the line; move up to the baseline.
		op.SecondaryAlign = text.AlignStart
		y -= face.Metrics().HAscent
	}

	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, face, op)
}

func (s *screen) SetDash(pattern ...float64) {
	s.dash = append(s.dash[:0], pattern...)
}

func (s *screen) fill(p *vector.Path, c color.Color) {
	s.vs, s.is = p.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(c, ebiten.FillRuleNonZero)
}

func (s *screen) stroke(p *vector.Path, width float64, c color.Color) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	s.vs, s.is = p.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.drawTriangles(c, ebiten.FillRuleFillAll)
}

func (s *screen) drawTriangles(c color.Color, rule ebiten.FillRule) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 1, 1
		s.vs[i].ColorR = float32(n.R) / 0xff
		s.vs[i].ColorG = float32(n.G) / 0xff
		s.vs[i].ColorB = float32(n.B) / 0xff
		s.vs[i].ColorA = float32(n.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	s.dst.DrawTriangles(s.vs, s.is, s.white, op)
}
