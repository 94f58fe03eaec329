package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	GroqAPIKey  string        `envconfig:"GROQ_API_KEY"`
	GroqModel   string        `envconfig:"GROQ_MODEL" default:"llama-3.3-70b-versatile"`
	GroqTimeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`

	TurnDuration time.Duration `envconfig:"TURN_DURATION" default:"120s"`
	TurnGap      time.Duration `envconfig:"TURN_GAP" default:"1s"`
	QuorumPoll   time.Duration `envconfig:"QUORUM_POLL" default:"1s"`
	MinPlayers   int           `envconfig:"MIN_PLAYERS" default:"3"`
	MaxPlayers   int           `envconfig:"MAX_PLAYERS" default:"12"`
}

// Load reads configuration from the environment, preceded by a best-effort
// .env load so local setups match the hosted one.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}
	if cfg.MinPlayers < 1 || cfg.MinPlayers > cfg.MaxPlayers {
		return Config{}, fmt.Errorf("MIN_PLAYERS must be in 1..MAX_PLAYERS, got %d", cfg.MinPlayers)
	}
	return cfg, nil
}
