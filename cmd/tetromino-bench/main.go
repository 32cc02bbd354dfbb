// Command tetromino-bench plays games headlessly as fast as possible with a
// random player and prints a markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetromino/config"
	"github.com/plus3/tetromino/game"
	"github.com/plus3/tetromino/piece"
)

type benchConfig struct {
	Duration time.Duration `env:"BENCH_DURATION" envDefault:"10s"`
	Games    int           `env:"BENCH_GAMES"`
	Seed     uint64        `env:"SEED"`
}

func main() {
	var cfg benchConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("%v", err)
	}
	flag.DurationVar(&cfg.Duration, "duration", cfg.Duration, "The total duration the benchmark should run for.")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Stop after this many finished games (0 means no limit).")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for pieces and player moves (0 picks a random one).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	seed1, seed2, err := config.SeedPair(cfg.Seed)
	if err != nil {
		config.Exitf("%v", err)
	}

	log.Println("Starting tetromino benchmark...")

	report := &Report{
		Duration:       cfg.Duration,
		GameLimit:      cfg.Games,
		Seed:           seed1,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", cfg.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	rng := rand.New(rand.NewPCG(seed1, seed2))
	session := game.NewSession(
		game.WithManualTicks(),
		game.WithSource(piece.NewRandom(rand.New(rand.NewPCG(seed2, seed1)))),
	)
	player := &randomPlayer{rng: rng}

	startTime := time.Now()
	runGames(ctx, session, player, cfg.Games, report)
	report.TotalTime = time.Since(startTime)
	report.Scores.Finalize()
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// runGames plays until ctx is done or limit games have ended.
func runGames(ctx context.Context, session *game.Session, player *randomPlayer, limit int, report *Report) {
	session.Start()
	defer session.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		player.Act(session)

		start := time.Now()
		session.Step()
		report.TickTime.Add(time.Since(start))
		report.TotalTicks++

		if !session.IsGameOver() {
			continue
		}

		report.Games++
		report.Scores.Add(session.Score())
		report.Lines += session.Lines()
		if limit > 0 && report.Games >= limit {
			return
		}
		session.Start()
	}
}
