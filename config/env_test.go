package config

import (
	"bytes"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TETROMINO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"), err.Error())
}

func TestParseEnvPrefix(t *testing.T) {
	t.Setenv("TEST_PORT", "7")
	t.Setenv("TETROMINO_TEST_PORT", "8")

	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 8, cfg.Port)
}

func TestWriteExit(t *testing.T) {
	var buf bytes.Buffer
	writeExit(&buf, "tetromino", "load config: %v", "bad seed")
	assert.Equal(t, "tetromino: load config: bad seed\n", buf.String())
}

func TestGameLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg Game
		require.NoError(t, cfg.Load(flag.NewFlagSet("test", flag.ContinueOnError), nil))

		assert.Equal(t, time.Second, cfg.TickInterval)
		assert.Equal(t, 30, cfg.CellSize)
		assert.True(t, cfg.Sound)
		assert.False(t, cfg.DebugUI)
		assert.Equal(t, uint64(0), cfg.Seed)
	})

	t.Run("env then flags", func(t *testing.T) {
		t.Setenv("TETROMINO_TICK_INTERVAL", "250ms")
		t.Setenv("TETROMINO_SEED", "42")
		t.Setenv("TETROMINO_SOUND", "false")

		var cfg Game
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		require.NoError(t, cfg.Load(fs, []string{"-cell", "16", "-debug"}))

		assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.False(t, cfg.Sound)
		assert.Equal(t, 16, cfg.CellSize)
		assert.True(t, cfg.DebugLog)
	})

	t.Run("invalid", func(t *testing.T) {
		var cfg Game
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		err := cfg.Load(fs, []string{"-tick", "0s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tick interval")
	})
}

func TestSeedPair(t *testing.T) {
	a, b, err := SeedPair(42)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), a)
	assert.NotEqual(t, a, b)

	a, _, err = SeedPair(0)
	require.NoError(t, err)
	assert.NotZero(t, a)
}
