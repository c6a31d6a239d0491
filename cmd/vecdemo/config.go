package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// config is the demo configuration. Every field can come from a TOML file;
// flags given on the command line override the file.
type config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Output string `toml:"output"`

	Text     string  `toml:"text"`
	FontFile string  `toml:"font_file"`
	FontSize float64 `toml:"font_size"`
	Engine   string  `toml:"engine"`

	StrokeWidth float64   `toml:"stroke_width"`
	Dash        []float64 `toml:"dash"`
	Background  string    `toml:"background"`
	Fill        string    `toml:"fill"`
	Stroke      string    `toml:"stroke"`

	Verbose bool `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Width:       800,
		Height:      600,
		Output:      "vecdemo.png",
		Text:        "Text follows the curve of any path",
		FontSize:    22,
		Engine:      "sfnt",
		StrokeWidth: 2,
		Background:  "#ffffff",
		Fill:        "#4a7bd0",
		Stroke:      "#202020",
	}
}

// loadConfig reads a TOML file over cfg. Keys missing from the file keep
// their current values.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("invalid font size %v", c.FontSize)
	}
	switch c.Engine {
	case "sfnt", "gotext":
	default:
		return fmt.Errorf("unknown glyph engine %q (want sfnt or gotext)", c.Engine)
	}
	for _, d := range c.Dash {
		if d < 0 {
			return fmt.Errorf("invalid dash length %v", d)
		}
	}
	for _, s := range []string{c.Background, c.Fill, c.Stroke} {
		if _, err := parseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// parseColor parses #rgb, #rrggbb or #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
