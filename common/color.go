package common

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear-agnostic RGB triple with components in [0, 1].
type Color [3]float32

// ParseHexColor parses a "#rrggbb" or "#rgb" string (the leading '#' is optional).
//
// Parameters:
//   - s: the hex color string
//
// Returns:
//   - Color: the parsed color
//   - error: error if the string is not a valid hex color
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// MustParseHexColor is ParseHexColor for compile-time constants. It panics on malformed input.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NormalizeHexColor returns the canonical lowercase "#rrggbb" form of s.
//
// Parameters:
//   - s: the hex color string
//
// Returns:
//   - string: canonical form
//   - bool: false if s is not a valid hex color
func NormalizeHexColor(s string) (string, bool) {
	c, err := ParseHexColor(s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// Hex formats the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c[0]), channel8(c[1]), channel8(c[2]))
}

// RGBA8 returns the color as 8-bit channels with full alpha.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return channel8(c[0]), channel8(c[1]), channel8(c[2]), 255
}

// Scale multiplies each component by k without clamping.
func (c Color) Scale(k float32) Color {
	return Color{c[0] * k, c[1] * k, c[2] * k}
}

func channel8(v float32) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
