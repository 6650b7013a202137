// Package color parses, normalizes and orders the hex color values found in
// VS Code theme files.
package color

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrBadFormat is returned for color values that are not hex notation.
var ErrBadFormat = errors.New("unexpected color format")

// Color is a parsed theme color value.
type Color struct {
	R, G, B uint8
	A       uint8 // 0xff when the source value had no alpha component
}

// Parse reads a hex color in #RGB, #RGBA, #RRGGBB or #RRGGBBAA notation,
// case-insensitive.
func Parse(s string) (Color, error) {
	if len(s) < 4 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	n := make([]uint8, 0, 8)
	for i := 1; i < len(s); i++ {
		v, ok := nibble(s[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
		}
		n = append(n, v)
	}
	c := Color{A: 0xff}
	switch len(n) {
	case 3:
		c.R, c.G, c.B = n[0]*0x11, n[1]*0x11, n[2]*0x11
	case 4:
		c.R, c.G, c.B, c.A = n[0]*0x11, n[1]*0x11, n[2]*0x11, n[3]*0x11
	case 6:
		c.R, c.G, c.B = n[0]<<4|n[1], n[2]<<4|n[3], n[4]<<4|n[5]
	case 8:
		c.R, c.G, c.B, c.A = n[0]<<4|n[1], n[2]<<4|n[3], n[4]<<4|n[5], n[6]<<4|n[7]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	return c, nil
}

// Normalize parses s and returns its canonical form: lowercase, long
// notation, with a fully opaque alpha stripped.
func Normalize(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

func nibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the canonical string form of the color.
func (c Color) Hex() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBHex returns the six-digit form with any alpha dropped, suitable for
// terminal styling.
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSV returns hue (0-360), saturation (0-100) and value (0-100). Alpha is
// ignored.
func (c Color) HSV() (h, s, v float64) {
	h, s, v = c.colorful().Hsv()
	return h, s * 100, v * 100
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Luminance returns the perceptive luminance on a 0-1 scale. The human eye
// favors green, so the channels are weighted unevenly.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// contrastThreshold splits colors that need black text from those that need
// white text.
const contrastThreshold = 0.5

// ContrastFG returns black for bright colors and white for dark ones.
func (c Color) ContrastFG() Color {
	if c.Luminance() > contrastThreshold {
		return Color{A: 0xff}
	}
	return Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
}

// grayThreshold is the saturation percentage at or below which a color
// sorts with the grays.
const grayThreshold = 5.0

// IsGray reports whether the color is close enough to grayscale to sort
// after the chromatic colors.
func (c Color) IsGray() bool {
	_, s, _ := c.HSV()
	return s <= grayThreshold
}

// SortKey returns a scalar ordering key. Chromatic colors sort hue-major
// with the most saturated and brightest first within a hue; grays follow
// all chromatic colors, ordered light to dark.
func (c Color) SortKey() float64 {
	h, s, v := c.HSV()
	satval := (100 - s) * (100 - v)
	if s > grayThreshold {
		return h*100*100 + satval
	}
	return 360*100*100 + satval
}

// Less orders two colors for display. The order is a pure function of the
// pair; ties break on the canonical hex string.
func Less(a, b Color) bool {
	ka, kb := a.SortKey(), b.SortKey()
	if ka != kb {
		return ka < kb
	}
	return a.Hex() < b.Hex()
}
