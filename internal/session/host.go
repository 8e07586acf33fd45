package session

import (
	"image/color"
	"math/rand"
	"time"

	"squircles/internal/audio"
	"squircles/internal/sched"
)

// host is the handle a level gets. It is bound to one level instance; once
// that level is replaced the handle refuses to advance or schedule.
type host struct {
	s   *Session
	gen uint64
}

func (h *host) stale() bool { return h.gen != h.s.gen }

func (h *host) Advance() {
	if h.stale() {
		h.s.log.Debug("ignoring advance from a replaced level")
		return
	}
	h.s.Advance()
}

func (h *host) SpawnParticles(x, y float64, c color.Color) {
	if h.stale() {
		return
	}
	h.s.SpawnParticles(x, y, c)
}

func (h *host) Cues() audio.Cues { return h.s.cues }

func (h *host) After(d time.Duration, fn func()) sched.Task {
	if h.stale() {
		return 0
	}
	return h.s.sched.After(d, fn)
}

func (h *host) Cancel(t sched.Task) bool { return h.s.sched.Cancel(t) }

func (h *host) Now() time.Time { return h.s.now() }

func (h *host) Rand() *rand.Rand { return h.s.rng }
