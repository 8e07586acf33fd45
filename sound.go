package main

import (
	"errors"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

var errAudioNotReady = errors.New("audio context not ready")

// speaker is the audio sink backed by ebiten's context. Each cue gets its
// own player so overlapping cues mix.
type speaker struct {
	ctx *eaudio.Context
}

func (s speaker) Play(pcm []byte) error {
	if s.ctx == nil || !s.ctx.IsReady() {
		return errAudioNotReady
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
	return nil
}
