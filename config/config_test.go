package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
seed = 42
debug = true

[playfield]
width = 480

[audio]
enabled = false
volume = -1.5

[shell]
contract_address = "0xabc"

[terminal]
color = "256"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Seed != 42 || !cfg.Debug {
		t.Errorf("top level = %+v", cfg)
	}
	if cfg.Playfield.Width != 480 || cfg.Playfield.Height != Default().Playfield.Height {
		t.Errorf("playfield = %+v, height should keep default", cfg.Playfield)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != -1.5 {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Shell.ContractAddress != "0xabc" {
		t.Errorf("contract = %q", cfg.Shell.ContractAddress)
	}
	if cfg.Terminal.Color != Color256 || cfg.Terminal.FPS != 60 {
		t.Errorf("terminal = %+v", cfg.Terminal)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[playfield]\ndepth = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load missing = %v, want wrapped ErrNotExist", err)
	}
}

func TestParseSyntaxError(t *testing.T) {
	if _, err := Parse("seed = ["); err == nil {
		t.Error("expected syntax error")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse("[playfield]\nwidth = 400\ndepth = 3\n")
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Parse = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "playfield.depth") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Playfield.Width = 0 }},
		{"negative height", func(c *Config) { c.Playfield.Height = -1 }},
		{"narrower than player", func(c *Config) { c.Playfield.Width = 60 }},
		{"too short", func(c *Config) { c.Playfield.Height = 100 }},
		{"fps low", func(c *Config) { c.Terminal.FPS = 5 }},
		{"fps high", func(c *Config) { c.Terminal.FPS = 500 }},
		{"color", func(c *Config) { c.Terminal.Color = "16" }},
		{"scale", func(c *Config) { c.Web.Scale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
