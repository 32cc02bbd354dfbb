package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/tetromino/game"
	"github.com/plus3/tetromino/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGamesStopsAtLimit(t *testing.T) {
	session := game.NewSession(
		game.WithManualTicks(),
		game.WithSource(piece.NewRandom(rand.New(rand.NewPCG(3, 4)))),
	)
	player := &randomPlayer{rng: rand.New(rand.NewPCG(5, 6))}
	report := &Report{}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	runGames(ctx, session, player, 3, report)

	assert.Equal(t, 3, report.Games)
	assert.Len(t, report.Scores.Samples, 3)
	assert.Greater(t, report.TotalTicks, int64(0))
	assert.Len(t, report.TickTime.Samples, int(report.TotalTicks))
	assert.Greater(t, player.Actions, 0)
	assert.False(t, session.Running(), "session closed on return")
}

func TestRunGamesStopsOnContext(t *testing.T) {
	session := game.NewSession(game.WithManualTicks())
	player := &randomPlayer{rng: rand.New(rand.NewPCG(1, 1))}
	report := &Report{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runGames(ctx, session, player, 0, report)
	assert.Equal(t, int64(0), report.TotalTicks)
}

func TestScoreStats(t *testing.T) {
	var s ScoreStats
	s.Finalize()
	assert.Zero(t, s.Max)

	for _, score := range []int{300, 0, 100, 100} {
		s.Add(score)
	}
	s.Finalize()

	assert.Equal(t, 300, s.Max)
	assert.Equal(t, 100, s.Median)
	assert.InDelta(t, 125.0, s.Mean, 1e-9)
	assert.Equal(t, []int{300, 0, 100, 100}, s.Samples, "samples keep arrival order")
}

func TestStats(t *testing.T) {
	var s Stats
	s.Add(3 * time.Millisecond)
	s.Add(time.Millisecond)
	s.Add(2 * time.Millisecond)
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:   time.Second,
		Seed:       9,
		Games:      2,
		Lines:      5,
		TotalTicks: 1000,
		TotalTime:  500 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Tetromino Benchmark Report")
	assert.Contains(t, out, "**Game Limit:** none")
	assert.Contains(t, out, "**Finished Games:** 2")
	assert.Contains(t, out, "**Ticks per Second:** 2000")
	assert.NotContains(t, out, "GC Pause")
}
