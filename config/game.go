package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"time"
)

// Game configures a playable session and its window.
type Game struct {
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	Seed         uint64        `env:"SEED"`
	CellSize     int           `env:"CELL_SIZE" envDefault:"30"`
	Sound        bool          `env:"SOUND" envDefault:"true"`
	DebugUI      bool          `env:"DEBUG_UI"`
	DebugLog     bool          `env:"DEBUG_LOG"`
}

// BindFlags registers flags that override the environment values already
// loaded into g.
func (g *Game) BindFlags(fs *flag.FlagSet) {
	fs.DurationVar(&g.TickInterval, "tick", g.TickInterval, "time between automatic drops")
	fs.Uint64Var(&g.Seed, "seed", g.Seed, "piece generator seed (0 picks a random one)")
	fs.IntVar(&g.CellSize, "cell", g.CellSize, "board cell size in pixels")
	fs.BoolVar(&g.Sound, "sound", g.Sound, "play sound effects")
	fs.BoolVar(&g.DebugUI, "debug-ui", g.DebugUI, "show the ImGui debug overlay")
	fs.BoolVar(&g.DebugLog, "debug", g.DebugLog, "log game events to stderr")
}

// Validate reports values the game cannot run with.
func (g *Game) Validate() error {
	if g.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", g.TickInterval)
	}
	if g.CellSize < 4 {
		return fmt.Errorf("cell size must be at least 4 pixels, got %d", g.CellSize)
	}
	return nil
}

// Load reads the environment into g, then parses args as flags on top.
func (g *Game) Load(fs *flag.FlagSet, args []string) error {
	if err := ParseEnv(g); err != nil {
		return err
	}
	g.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return g.Validate()
}

// SeedPair expands seed into the two words a PCG generator takes. A zero seed
// is replaced by one read from crypto/rand.
func SeedPair(seed uint64) (uint64, uint64, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return 0, 0, fmt.Errorf("read random seed: %w", err)
		}
		seed = binary.LittleEndian.Uint64(b[:])
	}
	return seed, seed ^ 0x9e3779b97f4a7c15, nil
}
