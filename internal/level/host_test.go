package level

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"squircles/internal/audio"
	"squircles/internal/sched"
)

type tone struct {
	freq float64
	wave audio.Wave
	dur  time.Duration
}

// fakeHost records everything a level asks of its session.
type fakeHost struct {
	advanced  int
	particles int
	tones     []tone
	successes int
	clicks    int
	now       time.Time
	sched     *sched.Scheduler
	rng       *rand.Rand
}

func newHost(t *testing.T) *fakeHost {
	t.Helper()
	h := &fakeHost{now: time.Unix(1_700_000_000, 0), rng: rand.New(rand.NewSource(42))}
	h.sched = sched.New(func() time.Time { return h.now })
	return h
}

func (h *fakeHost) Advance() { h.advanced++ }

func (h *fakeHost) SpawnParticles(x, y float64, c color.Color) { h.particles++ }

func (h *fakeHost) Cues() audio.Cues { return h }

func (h *fakeHost) After(d time.Duration, fn func()) sched.Task { return h.sched.After(d, fn) }

func (h *fakeHost) Cancel(t sched.Task) bool { return h.sched.Cancel(t) }

func (h *fakeHost) Now() time.Time { return h.now }

func (h *fakeHost) Rand() *rand.Rand { return h.rng }

func (h *fakeHost) PlayTone(freq float64, w audio.Wave, d time.Duration) {
	h.tones = append(h.tones, tone{freq, w, d})
}

func (h *fakeHost) PlaySuccess() { h.successes++ }

func (h *fakeHost) PlayClick() { h.clicks++ }

func (h *fakeHost) PlayInstruction(int) {}

// step moves the clock, fires due timers and updates l once, like a frame.
func (h *fakeHost) step(l Level, d time.Duration) {
	h.now = h.now.Add(d)
	h.sched.Run()
	l.Update()
}

const frame = time.Second / 60

func (h *fakeHost) lastTone() tone {
	if len(h.tones) == 0 {
		return tone{}
	}
	return h.tones[len(h.tones)-1]
}
