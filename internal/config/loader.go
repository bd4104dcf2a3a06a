package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// UserConfigFile is the config path relative to the XDG config directories.
	UserConfigFile = "slide2048/config.yaml"

	// LocalConfigFile is checked relative to the working directory.
	LocalConfigFile = "configs/slide2048.yaml"
)

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/slide2048/config.yaml (and XDG_CONFIG_DIRS)
// -> ./configs/slide2048.yaml -> embedded default.
// Fields missing from a file keep their default values. Only a broken
// customPath is an error; broken fallback files are skipped.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
		if cfg, err := readFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(LocalConfigFile); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGameYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}
