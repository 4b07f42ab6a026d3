package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings sourced from the environment.
type Config struct {
	ListenAddr      string        `env:"CARDISTRY_LISTEN_ADDR" envDefault:":8080"`
	ChallengeWindow time.Duration `env:"CARDISTRY_CHALLENGE_WINDOW" envDefault:"5s"`
	MaxPlayers      int           `env:"CARDISTRY_MAX_PLAYERS" envDefault:"10"`
	MinPlayers      int           `env:"CARDISTRY_MIN_PLAYERS" envDefault:"2"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
