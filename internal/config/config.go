// Package config loads the boxfolk scene configuration from TOML and merges
// command-line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Run modes.
const (
	ModeWindow   = "window"
	ModeHeadless = "headless"
	ModeTerminal = "term"
)

// Figure places one figure in the scene.
type Figure struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
	Z float64 `toml:"z"`
}

// Config holds window, scene and capture settings.
type Config struct {
	Title      string  `toml:"title"`
	Mode       string  `toml:"mode"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	PixelRatio float64 `toml:"pixel_ratio"`
	Hz         int     `toml:"hz"`
	Ticks      uint64  `toml:"ticks"`
	Seed       uint64  `toml:"seed"`
	Debug      bool    `toml:"debug"`

	// ClearColor is a 0xRRGGBB value.
	ClearColor uint32 `toml:"clear_color"`

	Figures []Figure `toml:"figure"`

	Screenshot Screenshot `toml:"screenshot"`
	Script     string     `toml:"script"`
}

// Screenshot configures captured frames.
type Screenshot struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// Load reads a TOML config file and returns Config.
// Fields not set in the file keep their zero values; unknown keys are errors.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML config data.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return Config{}, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return Config{}, err
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Mode   string
	Width  int
	Height int
	Hz     int
	Ticks  uint64
	Seed   uint64
	Script string
	Shots  string
	Format string
	Debug  bool
}

// DefaultFigures is the scene used when the config lists none.
var DefaultFigures = []Figure{{X: 0}, {X: 4}, {X: -4}}

// Resolve applies flag overrides and fills in defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Hz > 0 {
		c.Hz = flags.Hz
	}
	if flags.Ticks > 0 {
		c.Ticks = flags.Ticks
	}
	if flags.Seed > 0 {
		c.Seed = flags.Seed
	}
	if flags.Script != "" {
		c.Script = flags.Script
	}
	if flags.Shots != "" {
		c.Screenshot.Dir = flags.Shots
	}
	if flags.Format != "" {
		c.Screenshot.Format = flags.Format
	}
	if flags.Debug {
		c.Debug = true
	}

	if c.Title == "" {
		c.Title = "boxfolk"
	}
	if c.Mode == "" {
		c.Mode = ModeWindow
	}
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 540
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if len(c.Figures) == 0 {
		c.Figures = append([]Figure(nil), DefaultFigures...)
	}
	if c.Screenshot.Dir == "" {
		c.Screenshot.Dir = "screenshots"
	}
	if c.Screenshot.Format == "" {
		c.Screenshot.Format = "png"
	}
}

// Validate reports settings that cannot be run.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeHeadless, ModeTerminal:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	switch c.Screenshot.Format {
	case "png", "webp", "tga":
	default:
		return fmt.Errorf("config: unknown screenshot format %q", c.Screenshot.Format)
	}
	if c.PixelRatio < 0 {
		return fmt.Errorf("config: pixel_ratio must not be negative")
	}
	return nil
}
