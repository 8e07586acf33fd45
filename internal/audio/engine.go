package audio

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"squircles/internal/assets"
)

const DefaultSampleRate = 44100

// Sink plays a buffer of signed 16-bit little-endian stereo PCM.
type Sink interface {
	Play(pcm []byte) error
}

// Options configures an Engine.
type Options struct {
	SampleRate int
	// Volume is a linear multiplier on every cue; 1 is unchanged.
	Volume float64
	// Clips holds the optional per-level instruction WAV files.
	Clips fs.FS
}

// Engine renders cues with beep and plays them through a Sink. Failures are
// logged at debug level and otherwise ignored.
type Engine struct {
	sink   Sink
	rate   beep.SampleRate
	volume float64
	clips  fs.FS
	log    *zap.Logger

	// rendered caches instruction PCM per level. A nil entry records a
	// level whose clip is missing or broken.
	rendered map[int][]byte
}

func NewEngine(sink Sink, opts Options, log *zap.Logger) *Engine {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		sink:   sink,
		rate:   beep.SampleRate(opts.SampleRate),
		volume: opts.Volume,
		clips:  opts.Clips,
		log:    log.Named("audio"),

		rendered: make(map[int][]byte),
	}
}

func (e *Engine) play(what string, s beep.Streamer) {
	pcm, err := Render(e.rate, withVolume(s, e.volume))
	if err != nil {
		e.log.Debug("render failed", zap.String("cue", what), zap.Error(err))
		return
	}
	if err := e.sink.Play(pcm); err != nil {
		e.log.Debug("playback failed", zap.String("cue", what), zap.Error(err))
	}
}

func (e *Engine) PlayTone(freq float64, w Wave, d time.Duration) {
	s, err := Tone(e.rate, freq, w, d)
	if err != nil {
		e.log.Debug("tone rejected", zap.Error(err))
		return
	}
	e.play("tone", s)
}

// PlaySuccess is a rising two-note chime.
func (e *Engine) PlaySuccess() {
	lo, err := Tone(e.rate, 660, Sine, 100*time.Millisecond)
	if err != nil {
		e.log.Debug("tone rejected", zap.Error(err))
		return
	}
	hi, err := Tone(e.rate, 880, Sine, 200*time.Millisecond)
	if err != nil {
		e.log.Debug("tone rejected", zap.Error(err))
		return
	}
	e.play("success", beep.Seq(lo, hi))
}

func (e *Engine) PlayClick() {
	e.PlayTone(400, Triangle, 100*time.Millisecond)
}

// PlayInstruction plays the level's spoken clip if one is configured. Each
// clip is decoded and rendered once; later plays reuse the PCM.
func (e *Engine) PlayInstruction(level int) {
	pcm, ok := e.instruction(level)
	if !ok {
		return
	}
	if err := e.sink.Play(pcm); err != nil {
		e.log.Debug("playback failed", zap.String("cue", "instruction"), zap.Error(err))
	}
}

// Preload renders the clips of levels 1..n up front so level changes never
// decode audio.
func (e *Engine) Preload(n int) {
	loaded := 0
	for level := 1; level <= n; level++ {
		if _, ok := e.instruction(level); ok {
			loaded++
		}
	}
	e.log.Debug("instruction clips preloaded", zap.Int("loaded", loaded))
}

func (e *Engine) instruction(level int) ([]byte, bool) {
	if pcm, seen := e.rendered[level]; seen {
		return pcm, pcm != nil
	}
	pcm, err := e.renderClip(level)
	if err != nil {
		e.log.Debug("no instruction clip", zap.Int("level", level), zap.Error(err))
		e.rendered[level] = nil
		return nil, false
	}
	e.rendered[level] = pcm
	return pcm, true
}

func (e *Engine) renderClip(level int) ([]byte, error) {
	s, err := e.loadClip(level)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return Render(e.rate, withVolume(s, e.volume))
}

type clip struct {
	beep.Streamer
	close func() error
}

func (c clip) Close() error { return c.close() }

func (e *Engine) loadClip(level int) (clip, error) {
	f, err := assets.OpenInstruction(e.clips, level)
	if err != nil {
		return clip{}, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return clip{}, fmt.Errorf("decode %s: %w", assets.InstructionName(level), err)
	}
	closeAll := func() error {
		stream.Close()
		return f.Close()
	}
	if format.SampleRate == e.rate {
		return clip{Streamer: stream, close: closeAll}, nil
	}
	return clip{Streamer: beep.Resample(4, format.SampleRate, e.rate, stream), close: closeAll}, nil
}
