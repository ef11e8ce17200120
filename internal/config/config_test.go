package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := []byte(`
title = "parade"
mode = "headless"
width = 640
height = 480
pixel_ratio = 1.5
hz = 30
ticks = 120
seed = 42
clear_color = 0x101820

[[figure]]
x = -2

[[figure]]
x = 2
z = -1

[screenshot]
dir = "out"
format = "webp"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "parade", cfg.Title)
	assert.Equal(t, ModeHeadless, cfg.Mode)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.InDelta(t, 1.5, cfg.PixelRatio, 1e-9)
	assert.Equal(t, 30, cfg.Hz)
	assert.Equal(t, uint64(120), cfg.Ticks)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, uint32(0x101820), cfg.ClearColor)
	assert.Equal(t, []Figure{{X: -2}, {X: 2, Z: -1}}, cfg.Figures)
	assert.Equal(t, Screenshot{Dir: "out", Format: "webp"}, cfg.Screenshot)
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse([]byte(`colour = 1`))
	assert.Error(t, err)
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse([]byte("title = \"ok\"\nwidth = = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boxfolk.toml")
	require.NoError(t, os.WriteFile(path, []byte(`width = 320`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	assert.Equal(t, "boxfolk", cfg.Title)
	assert.Equal(t, ModeWindow, cfg.Mode)
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 540, cfg.Height)
	assert.Equal(t, 60, cfg.Hz)
	assert.Equal(t, DefaultFigures, cfg.Figures)
	assert.Equal(t, "screenshots", cfg.Screenshot.Dir)
	assert.Equal(t, "png", cfg.Screenshot.Format)
	assert.NoError(t, cfg.Validate())
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg := Config{Mode: ModeWindow, Width: 100, Hz: 30, Screenshot: Screenshot{Format: "tga"}}
	cfg.Resolve(Flags{Mode: ModeTerminal, Width: 200, Ticks: 5, Seed: 7, Format: "webp", Debug: true})

	assert.Equal(t, ModeTerminal, cfg.Mode)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 30, cfg.Hz)
	assert.Equal(t, uint64(5), cfg.Ticks)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "webp", cfg.Screenshot.Format)
	assert.True(t, cfg.Debug)
}

func TestResolveCopiesDefaultFigures(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	cfg.Figures[0].X = 99
	assert.Equal(t, 0.0, DefaultFigures[0].X)
}

func TestValidate(t *testing.T) {
	base := Config{}
	base.Resolve(Flags{})

	bad := base
	bad.Mode = "vr"
	assert.Error(t, bad.Validate())

	bad = base
	bad.Screenshot.Format = "gif"
	assert.Error(t, bad.Validate())

	bad = base
	bad.PixelRatio = -1
	assert.Error(t, bad.Validate())
}
