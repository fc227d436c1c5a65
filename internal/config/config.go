// Package config holds the presentation settings and scenario files shared
// by the visualizers.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB is an opaque colour. In YAML it is written as "#rrggbb".
type RGB struct {
	R, G, B uint8
}

// Color converts c for use with image and drawing packages.
func (c RGB) Color() color.RGBA { return color.RGBA{c.R, c.G, c.B, 0xff} }

func (c RGB) String() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// ParseRGB parses "#rrggbb" (the leading # is optional).
func ParseRGB(s string) (RGB, error) {
	var c RGB
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return c, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("colour %q: %w", s, err)
	}
	return c, nil
}

func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c RGB) MarshalYAML() (any, error) { return c.String(), nil }

// Palette names the colours a visualizer draws with.
type Palette struct {
	Background RGB `yaml:"background"`
	GridLines  RGB `yaml:"grid_lines"`
	Wall       RGB `yaml:"wall"`
	Weight     RGB `yaml:"weight"`
	Explored   RGB `yaml:"explored"`
	Path       RGB `yaml:"path"`
	Start      RGB `yaml:"start"`
	Goal       RGB `yaml:"goal"`
	Text       RGB `yaml:"text"`
}

// Config is the presentation configuration.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize int     `yaml:"tile_size"`
	Palette  Palette `yaml:"palette"`
}

var (
	white      = RGB{255, 255, 255}
	black      = RGB{0, 0, 0}
	red        = RGB{255, 0, 0}
	green      = RGB{0, 255, 0}
	forest     = RGB{34, 57, 10}
	cyan       = RGB{0, 255, 255}
	yellow     = RGB{255, 255, 0}
	darkPurple = RGB{100, 0, 100}
	medGray    = RGB{75, 75, 75}
)

// DefaultPalette is the classic visualizer colour scheme.
func DefaultPalette() Palette {
	return Palette{
		Background: black,
		GridLines:  cyan,
		Wall:       darkPurple,
		Weight:     forest,
		Explored:   medGray,
		Path:       yellow,
		Start:      green,
		Goal:       red,
		Text:       white,
	}
}

// Default is a 28x15 grid of 48px tiles.
func Default() Config {
	return Config{
		Width:    28,
		Height:   15,
		TileSize: 48,
		Palette:  DefaultPalette(),
	}
}

var errInvalidConfig = errors.New("invalid config")

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", errInvalidConfig, c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", errInvalidConfig, c.TileSize)
	}
	return nil
}
