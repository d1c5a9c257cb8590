// Package config loads the game's tuning values from YAML.
//
// Defaults are embedded from default.yaml; a user file only needs the keys it overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

type SpritesConfig struct {
	Size   float64 `yaml:"size"`
	Player string  `yaml:"player"`
	Enemy  string  `yaml:"enemy"`
}

type PlayerConfig struct {
	Speed float64 `yaml:"speed"`
}

type EnemiesConfig struct {
	Speed float64 `yaml:"speed"`
	Count int     `yaml:"count"`
}

// Config is the full set of values threaded into the simulation systems.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Sprites SpritesConfig `yaml:"sprites"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemiesConfig `yaml:"enemies"`
	Seed    uint64        `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Parse overlays data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value is usable by the simulation.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if c.Sprites.Size <= 0 {
		errs = append(errs, fmt.Errorf("%w: sprites.size %g", ErrInvalid, c.Sprites.Size))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("%w: player.speed %g", ErrInvalid, c.Player.Speed))
	}
	if c.Enemies.Speed < 0 {
		errs = append(errs, fmt.Errorf("%w: enemies.speed %g", ErrInvalid, c.Enemies.Speed))
	}
	if c.Enemies.Count < 0 {
		errs = append(errs, fmt.Errorf("%w: enemies.count %d", ErrInvalid, c.Enemies.Count))
	}
	return errors.Join(errs...)
}

// ApplyLive copies the values that may change while the game runs.
// Sprite size and enemy count only take effect at startup and are left untouched.
func (c *Config) ApplyLive(next *Config) {
	c.Player.Speed = next.Player.Speed
	c.Enemies.Speed = next.Enemies.Speed
}
