package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

func runWindow(game *Game, o options) error {
	// 1. Window Setup
	ebiten.SetWindowSize(o.width, o.height)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
