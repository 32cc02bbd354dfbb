package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"

	"github.com/plus3/tetromino/game"
)

// Frame counts at 60 TPS.
const (
	repeatDelay    = 10
	repeatRate     = 3
	softDropRepeat = 2
)

// controls turns key state into session actions. Held movement keys repeat
// after a delay.
type controls struct {
	held *intmap.Map[ebiten.Key, int]
}

func newControls() *controls {
	return &controls{
		held: intmap.New[ebiten.Key, int](8),
	}
}

// advance records one frame of key state and reports whether the key should
// act this frame: on the first pressed frame, then every rate frames once
// delay frames have passed.
func (c *controls) advance(key ebiten.Key, pressed bool, delay, rate int) bool {
	if !pressed {
		c.held.Del(key)
		return false
	}

	frames, _ := c.held.Get(key)
	frames++
	c.held.Put(key, frames)

	if frames == 1 {
		return true
	}
	return frames > delay && (frames-delay)%rate == 0
}

func (c *controls) repeat(key ebiten.Key, delay, rate int) bool {
	return c.advance(key, ebiten.IsKeyPressed(key), delay, rate)
}

// Apply forwards this frame's input to the session. last is the snapshot
// from the previous frame and decides whether Enter starts a game.
func (c *controls) Apply(s *game.Session, last game.Snapshot) {
	idle := last.GameOver || !last.HasPiece
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || (idle && inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		s.Start()
		c.held.Clear()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.Pause()
	}

	if c.repeat(ebiten.KeyLeft, repeatDelay, repeatRate) {
		s.MoveLeft()
	}
	if c.repeat(ebiten.KeyRight, repeatDelay, repeatRate) {
		s.MoveRight()
	}
	if c.repeat(ebiten.KeyDown, softDropRepeat, softDropRepeat) {
		s.MoveDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		s.Rotate()
	}
}
