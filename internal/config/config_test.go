package config

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/procedural-td/internal/mapgen"
	"github.com/Garsondee/procedural-td/internal/title"
)

func TestDefault_MatchesStockValues(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, image.Pt(320, 180), cfg.Layout.Size())
	require.Equal(t, title.DefaultSpacing, cfg.Layout.Spacing())
	require.Equal(t, 500*time.Millisecond, cfg.Loading.FrameInterval)
	require.Equal(t, mapgen.DefaultConfig, cfg.MapGen)

	p, err := cfg.Colors.Palette()
	require.NoError(t, err)
	require.Equal(t, title.DefaultPalette, p)
}

func TestLoad_CustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("loading:\n  frame_interval: 250ms\nwindow:\n  width: 800\nmapgen:\n  cols: 40\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.Loading.FrameInterval)
	require.Equal(t, 800, cfg.Window.Width)
	require.Equal(t, 720, cfg.Window.Height, "unset keys keep their defaults")
	require.Equal(t, 40, cfg.MapGen.Cols)
	require.Equal(t, mapgen.DefaultConfig.Rows, cfg.MapGen.Rows)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("window: [1, 2"), 0o600))
	_, err = Load(bad)
	require.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("colors:\n  text: black\n"), 0o600))
	_, err = Load(invalid)
	require.ErrorContains(t, err, "colors.text")
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"window":   func(c *Config) { c.Window.Width = 0 },
		"layout":   func(c *Config) { c.Layout.Height = -1 },
		"interval": func(c *Config) { c.Loading.FrameInterval = 0 },
		"level":    func(c *Config) { c.LogLevel = "loud" },
		"mapgen":   func(c *Config) { c.MapGen.Octaves = 0 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		require.Error(t, cfg.Validate(), name)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#87ae8e")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 135, G: 174, B: 142, A: 255}, c)

	_, err = parseHexColor("#12345")
	require.Error(t, err)
	_, err = parseHexColor("#zzzzzz")
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, log.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, log.DebugLevel, lvl)
}
