package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

// isolateXDG points the XDG config lookup at empty temp directories.
func isolateXDG(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadWithoutFilesUsesDefault(t *testing.T) {
	isolateXDG(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "board:\n  size: 6\nspawn:\n  four_probability: 0.25\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Board.Size != 6 || cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("Load(%s) = %+v", path, cfg)
	}
	// Unset fields keep defaults.
	if cfg.History.Capacity != 100 {
		t.Errorf("history.capacity = %d, want default 100", cfg.History.Capacity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolateXDG(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "board: [not, a, map\n")
	if _, err := Load(broken); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "board:\n  size: 12\n")
	_, err := Load(invalid)
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "board.size" {
		t.Errorf("Load(invalid) error = %v, want InvalidConfigError on board.size", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolateXDG(t)
	writeFile(t, filepath.Join(home, UserConfigFile), "board:\n  size: 3\nhistory:\n  capacity: 7\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Size != 3 || cfg.History.Capacity != 7 {
		t.Errorf("Load() = %+v, want user config values", cfg)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := isolateXDG(t)
	writeFile(t, filepath.Join(home, UserConfigFile), "spawn:\n  four_probability: 2\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("invalid user config should be skipped, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{name: "default is valid", modify: func(*Config) {}},
		{name: "board too small", modify: func(c *Config) { c.Board.Size = 1 }, field: "board.size"},
		{name: "board too large", modify: func(c *Config) { c.Board.Size = 9 }, field: "board.size"},
		{name: "zero history", modify: func(c *Config) { c.History.Capacity = 0 }, field: "history.capacity"},
		{name: "negative probability", modify: func(c *Config) { c.Spawn.FourProbability = -0.1 }, field: "spawn.four_probability"},
		{name: "bad log level", modify: func(c *Config) { c.Log.Level = "loud" }, field: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()

			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var cfgErr *InvalidConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Field != tt.field {
				t.Errorf("Validate() = %v, want error on %s", err, tt.field)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		size   int
		p4     float64
	}{
		{preset: DifficultyEasy, size: 5, p4: 0.05},
		{preset: DifficultyNormal, size: 4, p4: 0.10},
		{preset: DifficultyHard, size: 4, p4: 0.20},
		{preset: "", size: 6, p4: 0.3},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.Board.Size = 6
		cfg.Spawn.FourProbability = 0.3
		ApplyPreset(&cfg, tt.preset)

		if cfg.Board.Size != tt.size || cfg.Spawn.FourProbability != tt.p4 {
			t.Errorf("ApplyPreset(%q): size=%d p4=%v, want %d/%v", tt.preset, cfg.Board.Size, cfg.Spawn.FourProbability, tt.size, tt.p4)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("ApplyPreset(%q) produced invalid config: %v", tt.preset, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
