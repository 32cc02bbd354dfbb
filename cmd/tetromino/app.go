package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetromino/debugui"
	"github.com/plus3/tetromino/game"
)

// App implements ebiten.Game on top of a game session. The session ticks on
// its own; App only forwards input and draws the latest snapshot.
type App struct {
	session *game.Session
	layout  layout
	input   *controls
	sound   *soundBoard
	overlay *debugui.Overlay

	last game.Snapshot
}

func (a *App) Update() error {
	if a.overlay != nil {
		a.overlay.BeginFrame()
		defer a.overlay.EndFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if a.overlay == nil || !a.overlay.WantsKeyboard() {
		a.input.Apply(a.session, a.last)
	}

	snap := a.session.Snapshot()
	a.sound.React(a.last, snap)
	a.last = snap

	if a.overlay != nil {
		a.overlay.Render(snap, a.session.TickStats())
	}

	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.layout.draw(screen, a.last)

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.layout.width, a.layout.height
}
