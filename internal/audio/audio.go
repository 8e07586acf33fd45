// Package audio synthesizes the game's cues and hands them to a sink.
package audio

import "time"

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
	Triangle
)

func (w Wave) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	}
	return "unknown"
}

// Cues is everything gameplay code may ask of the audio system. Calls are
// fire-and-forget and never fail.
type Cues interface {
	PlayTone(freq float64, w Wave, d time.Duration)
	PlaySuccess()
	PlayClick()
	PlayInstruction(level int)
}

// Silent discards every cue.
type Silent struct{}

func (Silent) PlayTone(float64, Wave, time.Duration) {}
func (Silent) PlaySuccess()                          {}
func (Silent) PlayClick()                            {}
func (Silent) PlayInstruction(int)                   {}
