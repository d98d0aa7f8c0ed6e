package effects

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel positions of the packed gradient color. The accent policy expects
// alpha in the high byte followed by blue, green and red.
const (
	alphaShift = 24
	blueShift  = 16
	greenShift = 8
	redShift   = 0
)

// Color is the tint applied behind Blur and AcrylicBlur on Windows 10 and later.
type Color struct {
	A, R, G, B uint8
}

// DefaultColor is an almost fully transparent black tint.
var DefaultColor = Color{A: 0x01}

// Pack returns the color in the channel order the accent policy expects.
func (c Color) Pack() uint32 {
	return uint32(c.A)<<alphaShift |
		uint32(c.B)<<blueShift |
		uint32(c.G)<<greenShift |
		uint32(c.R)<<redShift
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// ParseColor parses #AARRGGBB or #RRGGBB (opaque). The leading # is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6:
		hex = "FF" + hex
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q: want #AARRGGBB or #RRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = color
	return nil
}
