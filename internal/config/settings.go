package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are process-level options read from the environment.
type Settings struct {
	TuningPath string `env:"TURNSIM_CONFIG"`
	DBPath     string `env:"TURNSIM_DB" envDefault:"data/turnsim.db"`
	Seed       int64  `env:"TURNSIM_SEED"` // 0 picks a fresh seed
	Turns      int    `env:"TURNSIM_TURNS" envDefault:"20"`
	LogLevel   string `env:"TURNSIM_LOG_LEVEL" envDefault:"info"`
	HumanSide  string `env:"TURNSIM_HUMAN_SIDE" envDefault:"resistance"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Turns < 0 {
		return Settings{}, fmt.Errorf("parse env: TURNSIM_TURNS must not be negative")
	}
	return s, nil
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
