package main

import (
	"io/fs"
	"os"
	"time"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"squircles/internal/audio"
	"squircles/internal/level"
	"squircles/internal/session"
)

func NewGame(o options, log *zap.Logger) (*Game, error) {
	scr, err := newScreen()
	if err != nil {
		return nil, err
	}

	// Audio Init
	var cues audio.Cues = audio.Silent{}
	if !o.mute {
		ctx := eaudio.NewContext(audio.DefaultSampleRate)
		engine := audio.NewEngine(speaker{ctx: ctx}, audio.Options{
			SampleRate: audio.DefaultSampleRate,
			Volume:     o.volume,
			Clips:      instructionClips(o.instructions, log),
		}, log)
		// Decode every clip before the loop starts, not on level change.
		engine.Preload(level.Count())
		cues = engine
	}

	g := &Game{
		screen: scr,
		clock:  time.Now,
		width:  o.width,
		height: o.height,
	}
	g.session = session.New(session.Options{
		Width:      float64(o.width),
		Height:     float64(o.height),
		StartLevel: o.level,
		Clock:      g.clock,
		Seed:       o.seed,
		Cues:       cues,
		Logger:     log,
	})
	return g, nil
}

// instructionClips returns the clip directory, or nil when there is none.
func instructionClips(dir string, log *zap.Logger) fs.FS {
	if dir == "" {
		return nil
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		log.Debug("no instruction clips", zap.String("dir", dir))
		return nil
	}
	return os.DirFS(dir)
}
