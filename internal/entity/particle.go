package entity

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"squircles/internal/surface"
)

const (
	BurstSize = 15
	// Decay is the life lost per update. A particle lives 1/Decay updates.
	Decay = 0.02

	lifeFrames     = 50
	particleRadius = 5
	maxSpeed       = 10
)

// Particle is one short-lived dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  colorful.Color
	Alpha  float64
	ttl    int
}

// Life is the remaining life fraction in (0, 1].
func (p *Particle) Life() float64 {
	return float64(p.ttl) / lifeFrames
}

// Particles owns every live particle.
type Particles struct {
	list []Particle
	rng  *rand.Rand
}

func NewParticles(rng *rand.Rand) *Particles {
	return &Particles{rng: rng}
}

// Spawn adds a burst at (x, y). A nil clr gives every particle its own
// random hue.
func (ps *Particles) Spawn(x, y float64, clr color.Color) {
	base, alpha := colorful.Color{}, 1.0
	if clr != nil {
		_, _, _, a := clr.RGBA()
		alpha = float64(a) / 0xffff
		base = toColorful(clr)
	}
	for i := 0; i < BurstSize; i++ {
		c := base
		if clr == nil {
			c = colorful.Hsl(ps.rng.Float64()*360, 0.7, 0.5)
		}
		ps.list = append(ps.list, Particle{
			X:     x,
			Y:     y,
			VX:    (ps.rng.Float64() - 0.5) * maxSpeed,
			VY:    (ps.rng.Float64() - 0.5) * maxSpeed,
			Color: c,
			Alpha: alpha,
			ttl:   lifeFrames,
		})
	}
}

// toColorful drops alpha; colorful.MakeColor refuses fully transparent input.
func toColorful(clr color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// Update moves every particle one step and drops the dead ones.
func (ps *Particles) Update() {
	live := ps.list[:0]
	for _, p := range ps.list {
		p.X += p.VX
		p.Y += p.VY
		p.ttl--
		if p.ttl > 0 {
			live = append(live, p)
		}
	}
	ps.list = live
}

func (ps *Particles) Draw(s surface.Surface) {
	for i := range ps.list {
		p := &ps.list[i]
		r, g, b := p.Color.Clamped().RGB255()
		a := uint8(p.Life() * p.Alpha * 255)
		s.FillCircle(p.X, p.Y, particleRadius, color.NRGBA{R: r, G: g, B: b, A: a})
	}
}

func (ps *Particles) Len() int { return len(ps.list) }

// All exposes the live particles for inspection.
func (ps *Particles) All() []Particle { return ps.list }
