package core

import (
	"fmt"
	"strings"
)

// Color is a named fill colour. Surfaces translate it to whatever their
// backend understands (ANSI codes, RGBA).
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorSilver
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
	ColorSilver:  "silver",
}

// String returns the colour name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// ParseColor resolves a colour name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// UnmarshalText lets colours be written by name in YAML config files.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the colour name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
