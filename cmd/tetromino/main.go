// Command tetromino opens a window and plays the game with the keyboard.
//
//	←/→      move
//	↓        move down
//	↑ or Z   rotate
//	P        pause
//	Enter/R  new game
//	Esc      quit
package main

import (
	"flag"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetromino/config"
	"github.com/plus3/tetromino/debugui"
	"github.com/plus3/tetromino/game"
	"github.com/plus3/tetromino/piece"
)

func main() {
	var cfg config.Game
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		config.Exitf("%v", err)
	}

	seed1, seed2, err := config.SeedPair(cfg.Seed)
	if err != nil {
		config.Exitf("%v", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.DebugLog {
		logger = log.New(os.Stderr, "tetromino ", log.LstdFlags|log.Lmicroseconds)
	}
	logger.Printf("seed %d, tick %s", seed1, cfg.TickInterval)

	session := game.NewSession(
		game.WithTickInterval(cfg.TickInterval),
		game.WithSource(piece.NewRandom(rand.New(rand.NewPCG(seed1, seed2)))),
		game.WithLogger(logger),
	)

	layout := newLayout(cfg.CellSize)
	app := &App{
		session: session,
		layout:  layout,
		input:   newControls(),
		sound:   newSoundBoard(cfg.Sound),
	}

	if cfg.DebugUI {
		app.overlay = debugui.NewOverlay("tetromino", layout.width*3, layout.height)
	} else {
		ebiten.SetWindowSize(layout.width, layout.height)
		ebiten.SetWindowTitle("tetromino")
	}

	err = ebiten.RunGame(app)
	session.Close()
	if err != nil {
		log.Fatalf("run game: %v", err)
	}
}
