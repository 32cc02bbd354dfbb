package main

import (
	"math/rand/v2"

	"github.com/plus3/tetromino/game"
)

// randomPlayer issues between zero and three intents before every tick.
type randomPlayer struct {
	rng     *rand.Rand
	Actions int
}

func (p *randomPlayer) Act(s *game.Session) {
	for range p.rng.IntN(4) {
		p.Actions++
		switch p.rng.IntN(4) {
		case 0:
			s.MoveLeft()
		case 1:
			s.MoveRight()
		case 2:
			s.Rotate()
		case 3:
			s.MoveDown()
		}
	}
}
