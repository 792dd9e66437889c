package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	MinPoints     = 3
	MaxPoints     = 100
	DefaultPoints = 5
	DefaultRadius = 1.0
	DefaultWidth  = 48
	DefaultHeight = 22
	DefaultRotX   = 0.35
	DefaultRotY   = 0.6
	DefaultZoom   = 1.0
	DefaultTheme  = "cyberpunk"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	Points    int        `yaml:"points"`
	Randomize bool       `yaml:"randomize"`
	Seed      int64      `yaml:"seed"`
	Radius    float64    `yaml:"radius"`
	View      ViewConfig `yaml:"view"`
}

// ViewConfig controls the terminal rendering. Width and Height are in
// character cells.
type ViewConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	RotX   float64 `yaml:"rot_x"`
	RotY   float64 `yaml:"rot_y"`
	Zoom   float64 `yaml:"zoom"`
	Theme  string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Points: DefaultPoints,
		Radius: DefaultRadius,
		View: ViewConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			RotX:   DefaultRotX,
			RotY:   DefaultRotY,
			Zoom:   DefaultZoom,
			Theme:  DefaultTheme,
		},
	}
}

// Load reads a YAML file on top of the defaults and clamps the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// ClampPoints limits a requested point count to [MinPoints, MaxPoints].
func ClampPoints(n int) int {
	if n < MinPoints {
		return MinPoints
	}
	if n > MaxPoints {
		return MaxPoints
	}
	return n
}

// Normalize clamps the point count and fills zero values with defaults.
func (c *Config) Normalize() {
	c.Points = ClampPoints(c.Points)
	if c.Radius <= 0 {
		c.Radius = DefaultRadius
	}
	if c.View.Width <= 0 {
		c.View.Width = DefaultWidth
	}
	if c.View.Height <= 0 {
		c.View.Height = DefaultHeight
	}
	if c.View.Zoom <= 0 {
		c.View.Zoom = DefaultZoom
	}
	if c.View.Theme == "" {
		c.View.Theme = DefaultTheme
	}
}
