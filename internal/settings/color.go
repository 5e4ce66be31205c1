// Package settings describes the configurable fields of display components
// and the typed values they hold.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color strings that are not hex encoded.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// RGBA creates a color from float channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromARGB32 creates a color from a packed 0xAARRGGBB value, the encoding
// used by LiveSplit layout files.
func FromARGB32(v uint32) Color {
	return Color{
		R: float32((v>>16)&0xFF) / 255,
		G: float32((v>>8)&0xFF) / 255,
		B: float32(v&0xFF) / 255,
		A: float32((v>>24)&0xFF) / 255,
	}
}

// ParseLayoutHex parses the AARRGGBB form used by layout files.
func ParseLayoutHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return FromARGB32(uint32(v)), nil
}

// ParseHex parses #RRGGBB or #RRGGBBAA. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 6:
		c, err := colorful.Hex("#" + s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return RGBA(float32(c.R), float32(c.G), float32(c.B), 1), nil
	case 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	// colorful has no alpha channel.
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{
		R: float32((v>>24)&0xFF) / 255,
		G: float32((v>>16)&0xFF) / 255,
		B: float32((v>>8)&0xFF) / 255,
		A: float32(v&0xFF) / 255,
	}, nil
}

// Hex formats the color as #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B))
}

// String formats the color as #RRGGBBAA.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

// Transparent reports whether the color is fully transparent black, the
// value LiveSplit uses for "no color".
func (c Color) Transparent() bool {
	return c == Color{}
}

// Visible reports whether the color has any alpha.
func (c Color) Visible() bool {
	return c.A > 0
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
