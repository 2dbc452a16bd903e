// Package config loads front-end settings from YAML
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds front-end settings; simulation tuning lives in parameter
type Config struct {
	Creature Creature `yaml:"creature"`
	Window   Window   `yaml:"window"`
	Audio    Audio    `yaml:"audio"`
	Debug    Debug    `yaml:"debug"`
}

type Creature struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Length int `yaml:"length"`
}

type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Tile   float32 `yaml:"tile"`
	TPS    int     `yaml:"tps"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Debug struct {
	Log       bool   `yaml:"log"`
	LogLevel  string `yaml:"log_level"`
	LogDir    string `yaml:"log_dir"`
	StatsView bool   `yaml:"statsview"`
}

// Default returns the settings of the stock sandbox
func Default() Config {
	return Config{
		Creature: Creature{StartX: 40, StartY: 10, Length: 14},
		Window:   Window{Width: 800, Height: 800, Tile: 10, TPS: 60},
		Audio:    Audio{Enabled: true, Volume: 0.6},
		Debug:    Debug{LogLevel: "info", LogDir: "logs"},
	}
}

// Load reads path over the defaults; fields absent from the file keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result
// Unknown keys are rejected
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document keeps every default
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}
	return cfg.Validate()
}

// Validate rejects settings the front ends cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Creature.Length < 0:
		return fmt.Errorf("creature length %d is negative", c.Creature.Length)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.Tile <= 0:
		return fmt.Errorf("tile size %v must be positive", c.Window.Tile)
	case c.Window.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", c.Window.TPS)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	switch c.Debug.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Debug.LogLevel)
	}
	return nil
}
