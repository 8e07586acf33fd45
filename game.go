package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"squircles/internal/input"
	"squircles/internal/session"
)

// Game adapts a Session to ebiten's loop.
type Game struct {
	session *session.Session
	input   input.Translator
	events  []input.Event
	screen  *screen
	clock   func() time.Time

	width, height int
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	// 1. Mouse state -> events, in the order a browser would fire them
	g.events = g.input.Feed(g.events[:0], pollMouse(g.clock()))
	for _, ev := range g.events {
		g.session.Route(ev)
	}

	// 2. Timers, level, particles
	g.session.Update()
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(dst *ebiten.Image) {
	g.screen.target(dst)
	g.session.Draw(g.screen)
}

// Layout: the logical screen follows the window so the levels re-layout
// instead of being scaled.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(g.width, 1), max(g.height, 1)
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
