package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"squircles/internal/input"
)

// pollMouse samples the mouse once per update.
func pollMouse(now time.Time) input.Poll {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return input.Poll{
		X:             float64(x),
		Y:             float64(y),
		Left:          ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Right:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		RightPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		RightReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		WheelY:        wy,
		At:            now,
	}
}
