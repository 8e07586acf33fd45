package session

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"squircles/internal/audio"
	"squircles/internal/entity"
	"squircles/internal/input"
	"squircles/internal/level"
	"squircles/internal/surface"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type cueLog struct {
	tones        int
	successes    int
	clicks       int
	instructions []int
}

func (c *cueLog) PlayTone(float64, audio.Wave, time.Duration) { c.tones++ }

func (c *cueLog) PlaySuccess() { c.successes++ }

func (c *cueLog) PlayClick() { c.clicks++ }

func (c *cueLog) PlayInstruction(n int) { c.instructions = append(c.instructions, n) }

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

const frame = time.Second / 60

type fixture struct {
	s    *Session
	clk  *clock
	cues *cueLog
	rec  *surface.Recorder
}

func newFixture(t *testing.T, start int) *fixture {
	t.Helper()
	f := &fixture{
		clk:  &clock{t: time.Unix(1_700_000_000, 0)},
		cues: &cueLog{},
		rec:  surface.NewRecorder(),
	}
	f.s = New(Options{
		StartLevel: start,
		Clock:      f.clk.now,
		Seed:       7,
		Cues:       f.cues,
		Logger:     zaptest.NewLogger(t),
	})
	return f
}

// tick moves the clock by d and renders one frame.
func (f *fixture) tick(d time.Duration) {
	f.clk.t = f.clk.t.Add(d)
	f.s.Tick(f.rec)
}

func TestNewDefaults(t *testing.T) {
	f := newFixture(t, 0)
	w, h := f.s.Size()
	assert.Equal(t, float64(DefaultWidth), w)
	assert.Equal(t, float64(DefaultHeight), h)
	assert.Equal(t, 1, f.s.Level())
	assert.IsType(t, &level.ClickAnywhere{}, f.s.Current())
	assert.Equal(t, []int{1}, f.cues.instructions)
	assert.NotEmpty(t, f.s.ID())
}

func TestClickAnywhereScenario(t *testing.T) {
	f := newFixture(t, 1)

	f.s.Route(input.Event{Kind: input.Click, X: 100, Y: 100})
	assert.Equal(t, entity.BurstSize, f.s.Particles().Len())
	assert.Equal(t, 1, f.cues.clicks)
	assert.Equal(t, 1, f.s.Level(), "the level waits before advancing")

	f.tick(400 * time.Millisecond)
	assert.Equal(t, 1, f.s.Level())
	f.tick(100 * time.Millisecond)
	assert.Equal(t, 2, f.s.Level())
	assert.Equal(t, 1, f.cues.successes)

	for i := 0; i < 100; i++ {
		f.tick(frame)
	}
	assert.Equal(t, 2, f.s.Level(), "advance happens exactly once")
}

func TestParticlesDieAfterFiftyFrames(t *testing.T) {
	f := newFixture(t, 2)
	f.s.SpawnParticles(50, 50, nil)

	for i := 0; i < 49; i++ {
		f.tick(frame)
	}
	require.Equal(t, entity.BurstSize, f.s.Particles().Len())
	f.tick(frame)
	assert.Zero(t, f.s.Particles().Len())
}

func TestDrawOrder(t *testing.T) {
	f := newFixture(t, 2)
	f.s.SpawnParticles(50, 50, nil)
	f.tick(frame)

	ops := f.rec.Ops()
	require.NotEmpty(t, ops)
	assert.Equal(t, 1, f.rec.Frames())

	hud := ops[len(ops)-1]
	assert.Equal(t, "text", hud.Kind)
	assert.Equal(t, "Level: 2", hud.Text)
	assert.Equal(t, 10.0, hud.X)
	assert.Equal(t, 10.0, hud.Y)

	// Particles are drawn after the level and before the HUD.
	particles := ops[len(ops)-1-entity.BurstSize : len(ops)-1]
	for _, op := range particles {
		assert.Equal(t, "fill-circle", op.Kind)
		assert.Equal(t, 5.0, op.R)
	}
}

func TestWrapsToLevelOneAfterLast(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	f := newFixture(t, level.Count())
	f.s.log = zap.New(core)

	f.s.Advance()
	assert.Equal(t, 1, f.s.Level())
	assert.IsType(t, &level.ClickAnywhere{}, f.s.Current())
	assert.Equal(t, 1, logs.FilterMessage("unknown level, restarting from 1").Len())
}

func TestUnknownStartLevelFallsBack(t *testing.T) {
	for _, n := range []int{-3, 16, 99} {
		f := newFixture(t, n)
		assert.Equal(t, 1, f.s.Level(), "start %d", n)
	}
}

func TestReplacedLevelCannotAdvance(t *testing.T) {
	f := newFixture(t, 2)
	old := f.s.host

	f.s.Advance()
	require.Equal(t, 3, f.s.Level())

	old.Advance()
	assert.Equal(t, 3, f.s.Level())
	assert.Zero(t, old.After(time.Millisecond, func() { t.Fatal("stale task ran") }))
	old.SpawnParticles(1, 1, nil)
	assert.Zero(t, f.s.Particles().Len())
}

func TestTransitionDropsScheduledWork(t *testing.T) {
	f := newFixture(t, 1)
	f.s.Route(input.Event{Kind: input.Click, X: 5, Y: 5})

	// Skip ahead before the delayed advance fires.
	f.s.StartLevel(4)
	f.tick(time.Second)
	assert.Equal(t, 4, f.s.Level())
}

func TestReactionFalseStartThroughSession(t *testing.T) {
	f := newFixture(t, 13)
	rt := f.s.Current().(*level.ReactionTime)

	f.tick(time.Second)
	f.s.Route(input.Event{Kind: input.Click, X: 10, Y: 10})
	assert.Equal(t, 13, f.s.Level())

	for i := 0; i < 120; i++ {
		f.tick(frame)
	}
	assert.Equal(t, level.PhaseWait, rt.Phase())
	assert.Equal(t, 13, f.s.Level())
}

func TestRouteIgnoresMissingHandlers(t *testing.T) {
	f := newFixture(t, 1)
	assert.NotPanics(t, func() {
		f.s.Route(input.Event{Kind: input.Wheel, DeltaY: -100})
		f.s.Route(input.Event{Kind: input.DoubleClick, X: 1, Y: 1})
		f.s.Route(input.Event{Kind: input.ContextMenu, X: 1, Y: 1})
		f.s.Route(input.Event{Kind: input.MouseDown, X: 1, Y: 1})
		f.s.Route(input.Event{Kind: input.MouseUp, X: 1, Y: 1})
	})
	f.tick(time.Second)
	assert.Equal(t, 1, f.s.Level())
}

func TestRouteDispatchesByKind(t *testing.T) {
	f := newFixture(t, 6)
	cx, cy := float64(DefaultWidth)/2, float64(DefaultHeight)/2

	f.s.Route(input.Event{Kind: input.Click, X: cx, Y: cy})
	assert.Equal(t, 6, f.s.Level(), "a single click is not a double-click")
	f.s.Route(input.Event{Kind: input.DoubleClick, X: cx, Y: cy})
	assert.Equal(t, 7, f.s.Level())

	f.s.Route(input.Event{Kind: input.Click, X: cx, Y: cy})
	assert.Equal(t, 7, f.s.Level())
	f.s.Route(input.Event{Kind: input.ContextMenu, X: cx, Y: cy})
	assert.Equal(t, 8, f.s.Level())
}

func TestRouteWheel(t *testing.T) {
	f := newFixture(t, 14)
	balloon := f.s.Current().(*level.ScrollInflate)
	before := balloon.Radius()
	f.s.Route(input.Event{Kind: input.Wheel, X: 1, Y: 1, DeltaY: -100})
	assert.Greater(t, balloon.Radius(), before)
}

func TestRouteDropsNonFinite(t *testing.T) {
	f := newFixture(t, 2)
	for _, ev := range []input.Event{
		{Kind: input.Click, X: math.NaN(), Y: 10},
		{Kind: input.Click, X: 10, Y: math.Inf(1)},
		{Kind: input.Wheel, X: 1, Y: 1, DeltaY: math.NaN()},
	} {
		f.s.Route(ev)
	}
	assert.Zero(t, f.s.Particles().Len())
	assert.Zero(t, f.cues.clicks)
}

func TestResizeKeepsProgressAndRelayouts(t *testing.T) {
	f := newFixture(t, 7)
	f.s.Resize(600, 400)
	w, h := f.s.Size()
	assert.Equal(t, 600.0, w)
	assert.Equal(t, 400.0, h)

	f.s.Resize(0, 400)
	f.s.Resize(math.NaN(), 400)
	w, _ = f.s.Size()
	assert.Equal(t, 600.0, w)

	f.s.Route(input.Event{Kind: input.ContextMenu, X: 300, Y: 200})
	assert.Equal(t, 8, f.s.Level())
}

func TestNewLevelsUseCurrentSize(t *testing.T) {
	f := newFixture(t, 6)
	f.s.Resize(500, 300)
	f.s.Advance()
	f.s.Route(input.Event{Kind: input.ContextMenu, X: 250, Y: 150})
	assert.Equal(t, 8, f.s.Level())
}
