// Package config loads runtime options from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/littleprofessor/internal/game"
	"github.com/samdwyer/littleprofessor/internal/ui"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config describes every option of a session.
type Config struct {
	UserFile         string        `env:"LP_USER_FILE"          envDefault:"users.txt"`
	Secret           string        `env:"LP_SECRET"             envDefault:"little-professor"`
	QuestionsPerRoom int           `env:"LP_QUESTIONS_PER_ROOM" envDefault:"5"`
	TickInterval     time.Duration `env:"LP_TICK_INTERVAL"      envDefault:"1s"`
	Seed             int64         `env:"LP_SEED"               envDefault:"0"`
	LogFile          string        `env:"LP_LOG_FILE"           envDefault:"littleprofessor.log"`
	LogLevel         string        `env:"LP_LOG_LEVEL"          envDefault:"info"`
	Telemetry        bool          `env:"LP_TELEMETRY"          envDefault:"false"`
	HoneycombAPIKey  string        `env:"LP_HONEYCOMB_API_KEY"`
	HoneycombDataset string        `env:"LP_HONEYCOMB_DATASET"  envDefault:"littleprofessor"`
	AccentColor      string        `env:"LP_ACCENT_COLOR"       envDefault:"#FFD75F"`
	Plain            bool          `env:"LP_PLAIN"              envDefault:"false"`
}

// Load reads a .env file if one exists and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Debug().Err(err).Msg(".env file not loaded")
	}
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first option that cannot be used.
func (c Config) Validate() error {
	if c.UserFile == "" {
		return fmt.Errorf("%w: LP_USER_FILE is empty", ErrInvalid)
	}
	if c.Secret == "" {
		return fmt.Errorf("%w: LP_SECRET is empty", ErrInvalid)
	}
	if c.QuestionsPerRoom <= 0 {
		return fmt.Errorf("%w: LP_QUESTIONS_PER_ROOM must be positive, got %d", ErrInvalid, c.QuestionsPerRoom)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: LP_TICK_INTERVAL must be positive, got %s", ErrInvalid, c.TickInterval)
	}
	if _, err := ui.ParseHexColor(c.AccentColor); err != nil {
		return fmt.Errorf("%w: LP_ACCENT_COLOR: %v", ErrInvalid, err)
	}
	return nil
}

// Game projects the options the controller needs.
func (c Config) Game() game.Config {
	return game.Config{
		QuestionsPerRoom: c.QuestionsPerRoom,
		TickInterval:     c.TickInterval,
		Seed:             c.Seed,
	}
}
