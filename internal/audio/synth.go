package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	// Tones start at this gain and ramp down exponentially to toneFloor.
	tonePeak  = 0.1
	toneFloor = 0.001

	// Render refuses to produce more than this much audio.
	maxRender = 30 * time.Second
)

// decay shapes a stream with an exponential ramp from tonePeak to toneFloor
// over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		frac := float64(d.position) / float64(d.total)
		g := tonePeak * math.Pow(toneFloor/tonePeak, frac)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func oscillator(rate beep.SampleRate, freq float64, w Wave) (beep.Streamer, error) {
	switch w {
	case Sine:
		return generators.SineTone(rate, freq)
	case Square:
		return generators.SquareTone(rate, freq)
	case Sawtooth:
		return generators.SawtoothTone(rate, freq)
	case Triangle:
		return generators.TriangleTone(rate, freq)
	}
	return nil, fmt.Errorf("unknown wave %d", int(w))
}

// Tone is a single decaying note of length d.
func Tone(rate beep.SampleRate, freq float64, w Wave, d time.Duration) (beep.Streamer, error) {
	osc, err := oscillator(rate, freq, w)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz %s: %w", freq, w, err)
	}
	n := rate.N(d)
	if n <= 0 {
		return nil, fmt.Errorf("tone %.0fHz %s: empty duration %s", freq, w, d)
	}
	return &decay{streamer: beep.Take(n, osc), total: n}, nil
}

// withVolume scales s by a linear factor; zero or less mutes it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Render drains s into signed 16-bit little-endian stereo PCM.
func Render(rate beep.SampleRate, s beep.Streamer) ([]byte, error) {
	limit := rate.N(maxRender)
	buf := make([][2]float64, 512)
	var out []byte
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				pcm := int16(v * math.MaxInt16)
				out = append(out, byte(pcm), byte(pcm>>8))
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
