package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board:   BoardConfig{Size: 4},
		History: HistoryConfig{Capacity: 100},
		Spawn:   SpawnConfig{FourProbability: 0.1},
		Log:     LogConfig{Level: "info"},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
