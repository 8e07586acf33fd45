package level

import (
	"image/color"
	"time"

	"squircles/internal/audio"
	"squircles/internal/sched"
	"squircles/internal/surface"
)

// Phase is the stage of a reaction-time round.
type Phase int

const (
	PhaseWait Phase = iota
	PhaseReady
	PhaseGo
)

func (p Phase) String() string {
	switch p {
	case PhaseWait:
		return "WAIT"
	case PhaseReady:
		return "READY"
	case PhaseGo:
		return "GO"
	}
	return "UNKNOWN"
}

const (
	waitDelay    = 2 * time.Second
	readyMin     = time.Second
	readySpread  = 2 * time.Second
	falseStartCD = time.Second
)

// ReactionTime runs WAIT -> READY -> GO on timers. Clicking before GO is a
// false start that throws the round away and starts a new one after a
// penalty. Every round has its own generation; a timer from an older round
// does nothing when it fires.
type ReactionTime struct {
	base
	phase    Phase
	message  string
	bg       color.Color
	gen      uint64
	pending  sched.Task
	started  time.Time
	reaction time.Duration
}

func NewReactionTime(h Host, w, ht float64) Level {
	l := &ReactionTime{base: newBase(h, w, ht)}
	l.startRound()
	return l
}

func (l *ReactionTime) startRound() {
	l.gen++
	gen := l.gen
	l.phase, l.message, l.bg = PhaseWait, "WAIT...", salmon

	l.pending = l.host.After(waitDelay, func() {
		if gen != l.gen {
			return
		}
		l.phase, l.message, l.bg = PhaseReady, "READY...", amber
		l.host.Cues().PlayTone(400, audio.Square, 100*time.Millisecond)

		delay := readyMin + time.Duration(l.host.Rand().Int63n(int64(readySpread)))
		l.pending = l.host.After(delay, func() {
			if gen != l.gen {
				return
			}
			l.phase, l.message, l.bg = PhaseGo, "CLICK NOW!", mint
			l.started = l.host.Now()
			l.host.Cues().PlayTone(800, audio.Square, 200*time.Millisecond)
		})
	})
}

func (l *ReactionTime) Click(x, y float64) {
	if l.phase == PhaseGo {
		l.reaction = l.host.Now().Sub(l.started)
		l.host.Advance()
		return
	}

	l.gen++
	gen := l.gen
	l.host.Cancel(l.pending)
	l.message = "TOO EARLY!"
	l.buzz(150, 500*time.Millisecond)
	l.pending = l.host.After(falseStartCD, func() {
		if gen != l.gen {
			return
		}
		l.startRound()
	})
}

func (l *ReactionTime) Draw(s surface.Surface) {
	s.FillRect(0, 0, l.w, l.h, l.bg)
	s.Text(l.message, l.w/2, l.h/2, surface.Centered(80, true), white)
}

// Phase is the current stage of the round.
func (l *ReactionTime) Phase() Phase { return l.phase }

// Generation counts rounds and false starts.
func (l *ReactionTime) Generation() uint64 { return l.gen }

// Reaction is the measured latency of the winning click.
func (l *ReactionTime) Reaction() time.Duration { return l.reaction }
