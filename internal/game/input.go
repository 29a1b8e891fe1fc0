package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/steverpalmer/first-person-maze/internal/player"
	"github.com/steverpalmer/first-person-maze/internal/view"
)

// handleInput maps keys to commands. Navigation is edge-triggered: one key
// press, one discrete move, matching the jump-cut presentation.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.apply(player.TurnLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.apply(player.TurnRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.apply(player.Forward)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.apply(player.Backward)
	}

	// Cycle views with Space (Tab also works).
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.mode = g.mode.Next()
		if !g.building() && g.mode == view.Shaded {
			// Entering the shaded view snaps the camera; gliding in from
			// the previous pose would sweep across the whole maze.
			g.glide.Snap(g.state)
		}
		g.audio.PlaySwitchView()
	}

	// New maze with 'N'
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.nextMaze()
	}

	// Fullscreen toggle with 'F'
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	// Quit with 'Q' or Escape
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
}
