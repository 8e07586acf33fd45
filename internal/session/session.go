// Package session runs the game: it owns the live level, the particles and
// the scheduler, and moves the player from one level to the next.
package session

import (
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"squircles/internal/audio"
	"squircles/internal/entity"
	"squircles/internal/geom"
	"squircles/internal/input"
	"squircles/internal/level"
	"squircles/internal/sched"
	"squircles/internal/surface"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Options configures a Session. Zero values pick sensible defaults.
type Options struct {
	Width, Height float64
	// StartLevel is the first level played; 0 means level 1.
	StartLevel int
	// Clock drives every duration in the game. Defaults to time.Now.
	Clock func() time.Time
	// Seed feeds the random source when Rand is nil. 0 seeds from the clock.
	Seed   int64
	Rand   *rand.Rand
	Cues   audio.Cues
	Logger *zap.Logger
}

// Session is one run of the game.
type Session struct {
	id     string
	number int
	live   level.Level
	host   *host
	gen    uint64

	particles *entity.Particles
	sched     *sched.Scheduler
	w, h      float64

	now  func() time.Time
	rng  *rand.Rand
	cues audio.Cues
	log  *zap.Logger
}

var hudColor = color.RGBA{0x33, 0x33, 0x33, 0xff}

// New builds a session and starts its first level.
func New(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Rand == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = opts.Clock().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	if opts.Cues == nil {
		opts.Cues = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.StartLevel == 0 {
		opts.StartLevel = 1
	}

	id := uuid.NewString()
	s := &Session{
		id:        id,
		particles: entity.NewParticles(opts.Rand),
		sched:     sched.New(opts.Clock),
		w:         opts.Width,
		h:         opts.Height,
		now:       opts.Clock,
		rng:       opts.Rand,
		cues:      opts.Cues,
		log:       opts.Logger.Named("session").With(zap.String("session", id)),
	}
	s.log.Info("session started",
		zap.Float64("width", s.w),
		zap.Float64("height", s.h),
	)
	s.StartLevel(opts.StartLevel)
	return s
}

// StartLevel replaces the live level with level n. Anything the old level
// scheduled is dropped and its host stops working. Unknown levels fall back
// to level 1.
func (s *Session) StartLevel(n int) {
	s.sched.Invalidate()
	s.gen++

	info, ok := level.Lookup(n)
	if !ok {
		s.log.Warn("unknown level, restarting from 1", zap.Int("level", n))
		n = 1
		info, _ = level.Lookup(n)
	}

	s.number = n
	s.host = &host{s: s, gen: s.gen}
	s.live = info.New(s.host, s.w, s.h)
	s.cues.PlayInstruction(n)
	s.log.Info("level started", zap.Int("level", n), zap.String("name", info.Name))
}

// Advance finishes the live level and starts the next one.
func (s *Session) Advance() {
	s.log.Debug("level complete", zap.Int("level", s.number))
	s.cues.PlaySuccess()
	s.StartLevel(s.number + 1)
}

// SpawnParticles bursts particles at (x, y). A nil colour picks a random hue
// for every particle.
func (s *Session) SpawnParticles(x, y float64, c color.Color) {
	s.particles.Spawn(x, y, c)
}

// Route hands an input event to the live level. Levels that do not handle
// the event's kind never see it.
func (s *Session) Route(ev input.Event) {
	if !geom.Finite(ev.X, ev.Y) || !geom.Finite(ev.DeltaY, 0) {
		s.log.Debug("dropping malformed event", zap.Stringer("kind", ev.Kind))
		return
	}

	l := s.live
	switch ev.Kind {
	case input.Click:
		s.SpawnParticles(ev.X, ev.Y, nil)
		s.cues.PlayClick()
		if h, ok := l.(level.Clicker); ok {
			h.Click(ev.X, ev.Y)
		}
	case input.MouseMove:
		if h, ok := l.(level.MouseMover); ok {
			h.MouseMove(ev.X, ev.Y)
		}
	case input.MouseDown:
		if h, ok := l.(level.MouseDowner); ok {
			h.MouseDown(ev.X, ev.Y)
		}
	case input.MouseUp:
		if h, ok := l.(level.MouseUpper); ok {
			h.MouseUp(ev.X, ev.Y)
		}
	case input.DoubleClick:
		if h, ok := l.(level.DoubleClicker); ok {
			h.DoubleClick(ev.X, ev.Y)
		}
	case input.ContextMenu:
		if h, ok := l.(level.ContextMenuer); ok {
			h.ContextMenu(ev.X, ev.Y)
		}
	case input.Wheel:
		if h, ok := l.(level.Wheeler); ok {
			h.Wheel(ev.DeltaY)
		}
	}
}

// Resize records the new surface size and lets the level re-layout.
func (s *Session) Resize(w, h float64) {
	if w <= 0 || h <= 0 || !geom.Finite(w, h) {
		return
	}
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.live.Resize(w, h)
	s.log.Debug("resized", zap.Float64("width", w), zap.Float64("height", h))
}

// Update advances the game by one frame without drawing.
func (s *Session) Update() {
	s.sched.Run()
	s.live.Update()
	s.particles.Update()
}

// Draw renders the current frame.
func (s *Session) Draw(dst surface.Surface) {
	dst.Clear()
	s.live.Draw(dst)
	s.particles.Draw(dst)

	hud := surface.Font{Size: 20, Bold: true, Align: surface.AlignLeft, Baseline: surface.BaselineTop}
	dst.Text("Level: "+strconv.Itoa(s.number), 10, 10, hud, hudColor)
}

// Tick is one full frame: Update then Draw.
func (s *Session) Tick(dst surface.Surface) {
	s.Update()
	s.Draw(dst)
}

// Level is the number of the live level.
func (s *Session) Level() int { return s.number }

// Current is the live level itself.
func (s *Session) Current() level.Level { return s.live }

func (s *Session) Particles() *entity.Particles { return s.particles }

func (s *Session) Size() (w, h float64) { return s.w, s.h }

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }
