// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import "fmt"

// Config contains all settings needed to start a session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	History HistoryConfig `yaml:"history"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Seed    int64         `yaml:"seed"` // 0 = seed from the clock
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the board dimension.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// HistoryConfig defines how many states undo/redo can reach.
type HistoryConfig struct {
	Capacity int `yaml:"capacity"`
}

// SpawnConfig defines tile spawning.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Probability of spawning 4 instead of 2 (0.0-1.0)
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = stderr (discarded while the TUI runs)
}

// Size limits, mirrored from the engine so config has no engine dependency.
const (
	minBoardSize = 2
	maxBoardSize = 8
)

// InvalidConfigError reports a field with an unusable value.
type InvalidConfigError struct {
	Field string
	Msg   string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// Validate checks that every field is within range.
func (c Config) Validate() error {
	if c.Board.Size < minBoardSize || c.Board.Size > maxBoardSize {
		return &InvalidConfigError{
			Field: "board.size",
			Msg:   fmt.Sprintf("%d is outside [%d, %d]", c.Board.Size, minBoardSize, maxBoardSize),
		}
	}
	if c.History.Capacity < 1 {
		return &InvalidConfigError{Field: "history.capacity", Msg: fmt.Sprintf("%d must be positive", c.History.Capacity)}
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return &InvalidConfigError{Field: "spawn.four_probability", Msg: fmt.Sprintf("%v is outside [0, 1]", c.Spawn.FourProbability)}
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &InvalidConfigError{Field: "log.level", Msg: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	return nil
}
