// Package config provides YAML-based game configuration loading and
// speed presets for the snake game.
package config

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Config is the complete configuration of a game session.
// The board size is fixed and deliberately absent.
type Config struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	Speed        SpeedPreset   `yaml:"speed"`
	Seed         int64         `yaml:"seed"`
	Frontend     string        `yaml:"frontend"`
	Colors       Colors        `yaml:"colors"`
	Log          LogConfig     `yaml:"log"`
}

// Colors holds the board glyph colors: ANSI palette indexes, names or hex.
type Colors struct {
	Wall  string `yaml:"wall"`
	Food  string `yaml:"food"`
	Snake string `yaml:"snake"`
	Score string `yaml:"score"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval: core.DefaultTickInterval,
		Speed:        SpeedNormal,
		Seed:         0,
		Frontend:     "term",
		Colors: Colors{
			Wall:  "245",
			Food:  "9",
			Snake: "10",
			Score: "15",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Palette converts the colors for a front end.
func (c Colors) Palette() registry.Palette {
	return registry.Palette{
		Wall:  c.Wall,
		Food:  c.Food,
		Snake: c.Snake,
		Score: c.Score,
	}
}

// EffectiveInterval returns the tick interval after applying the speed preset.
func (c Config) EffectiveInterval() time.Duration {
	return c.Speed.Scale(c.TickInterval)
}
