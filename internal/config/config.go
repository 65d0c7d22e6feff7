// Package config provides YAML-based configuration for the game window,
// title screen layout and map generation.
package config

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/Garsondee/procedural-td/internal/mapgen"
	"github.com/Garsondee/procedural-td/internal/title"
)

// Config is the full game configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Window   WindowConfig  `yaml:"window"`
	Layout   LayoutConfig  `yaml:"layout"`
	Colors   ColorConfig   `yaml:"colors"`
	Loading  LoadingConfig `yaml:"loading"`
	Assets   AssetsConfig  `yaml:"assets"`
	MapGen   mapgen.Config `yaml:"mapgen"`
}

// WindowConfig defines the OS window.
type WindowConfig struct {
	Title        string `yaml:"title"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	IntegerScale bool   `yaml:"integer_scale"`
}

// LayoutConfig defines the title screen's internal resolution and spacing.
type LayoutConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TitleTop    int `yaml:"title_top"`
	SeedBelow   int `yaml:"seed_below"`
	SeedToStart int `yaml:"seed_to_start"`
	TextInsetX  int `yaml:"text_inset_x"`
	TextInsetY  int `yaml:"text_inset_y"`
}

// ColorConfig holds "#rrggbb" colours.
type ColorConfig struct {
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Text       string `yaml:"text"`
}

// LoadingConfig defines the loading indicator animation.
type LoadingConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
}

// AssetsConfig points at an optional directory of PNG sprite overrides.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// Size returns the layout resolution.
func (l LayoutConfig) Size() image.Point {
	return image.Pt(l.Width, l.Height)
}

// Spacing converts the layout gaps for the title screen.
func (l LayoutConfig) Spacing() title.Spacing {
	return title.Spacing{
		TitleTop:    l.TitleTop,
		SeedBelow:   l.SeedBelow,
		SeedToStart: l.SeedToStart,
		TextInset:   image.Pt(l.TextInsetX, l.TextInsetY),
	}
}

// Palette parses the configured colours.
func (c ColorConfig) Palette() (title.Palette, error) {
	var p title.Palette
	var err error
	if p.Background, err = parseHexColor(c.Background); err != nil {
		return p, fmt.Errorf("colors.background: %w", err)
	}
	if p.Title, err = parseHexColor(c.Title); err != nil {
		return p, fmt.Errorf("colors.title: %w", err)
	}
	if p.Text, err = parseHexColor(c.Text); err != nil {
		return p, fmt.Errorf("colors.text: %w", err)
	}
	return p, nil
}

// parseHexColor parses "#rrggbb" into an opaque colour.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Layout.Width <= 0 || c.Layout.Height <= 0:
		return fmt.Errorf("layout size %dx%d must be positive", c.Layout.Width, c.Layout.Height)
	case c.Loading.FrameInterval <= 0:
		return fmt.Errorf("loading.frame_interval %s must be positive", c.Loading.FrameInterval)
	}
	if _, err := c.Colors.Palette(); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return c.MapGen.Validate()
}
