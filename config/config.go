// Package config loads game settings from defaults, an optional TOML file and flags
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/reddy-catch/parameter"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure
	ErrInvalidConfig = errors.New("invalid config")
)

// Color modes accepted by the terminal edition
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

type Config struct {
	Seed      uint64          `toml:"seed"` // 0 picks a time based seed
	Debug     bool            `toml:"debug"`
	Playfield PlayfieldConfig `toml:"playfield"`
	Audio     AudioConfig     `toml:"audio"`
	Shell     ShellConfig     `toml:"shell"`
	Terminal  TerminalConfig  `toml:"terminal"`
	Web       WebConfig       `toml:"web"`
}

type PlayfieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // log2 gain, -1 halves amplitude
}

type ShellConfig struct {
	ContractAddress string `toml:"contract_address"`
}

type TerminalConfig struct {
	Color string `toml:"color"`
	FPS   int    `toml:"fps"`
}

type WebConfig struct {
	Scale float64 `toml:"scale"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  parameter.DefaultPlayfieldWidth,
			Height: parameter.DefaultPlayfieldHeight,
		},
		Audio:    AudioConfig{Enabled: true},
		Terminal: TerminalConfig{Color: ColorAuto, FPS: 60},
		Web:      WebConfig{Scale: 1},
	}
}

// Load reads path over the defaults. An empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkDecoded(md, cfg); err != nil {
		return Config{}, fmt.Errorf("%w in %s", err, path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults, used for embedded configs
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := checkDecoded(md, cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// checkDecoded rejects keys the config struct does not know, then validates
func checkDecoded(md toml.MetaData, cfg Config) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield %vx%v must be positive", ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	}
	if c.Playfield.Width < parameter.PlayerWidth || c.Playfield.Width < 2*parameter.SpawnMarginX {
		return fmt.Errorf("%w: playfield width %v narrower than the player", ErrInvalidConfig, c.Playfield.Width)
	}
	if c.Playfield.Height < parameter.PlayerBottomOffset+parameter.PlayerHeight/2 {
		return fmt.Errorf("%w: playfield height %v too short for the player", ErrInvalidConfig, c.Playfield.Height)
	}
	if c.Terminal.FPS < 10 || c.Terminal.FPS > 240 {
		return fmt.Errorf("%w: terminal fps %d outside [10, 240]", ErrInvalidConfig, c.Terminal.FPS)
	}
	switch c.Terminal.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.Terminal.Color)
	}
	if c.Web.Scale <= 0 {
		return fmt.Errorf("%w: web scale %v must be positive", ErrInvalidConfig, c.Web.Scale)
	}
	return nil
}
