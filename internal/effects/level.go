// Package effects applies blur, acrylic and transparency effects to a window
// background, picking the native mechanism the running Windows release offers.
package effects

import (
	"fmt"
	"strings"
)

// Level is the visual treatment of the parts of a window nothing is drawn on.
type Level int

const (
	// Opaque leaves the background black.
	Opaque Level = iota
	// Transparent shows the desktop through the window.
	Transparent
	// Blur shows a blurred desktop through the window.
	Blur
	// AcrylicBlur shows a heavily blurred, tinted desktop. Falls back to Blur
	// where unsupported.
	AcrylicBlur
)

var levelNames = map[Level]string{
	Opaque:      "opaque",
	Transparent: "transparent",
	Blur:        "blur",
	AcrylicBlur: "acrylic",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel converts a level name to a Level. Accepts "none" as an alias of
// opaque.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "none" {
		return Opaque, nil
	}

	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}

	return Opaque, fmt.Errorf("unknown effect level %q (want opaque, transparent, blur or acrylic)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("invalid effect level %d", int(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = level
	return nil
}
