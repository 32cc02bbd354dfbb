// Package config loads command configuration from the environment and
// command-line flags.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag, so `env:"SEED"` reads
// TETROMINO_SEED.
const EnvPrefix = "TETROMINO_"

// ParseEnv fills target from TETROMINO_* environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
