// Package color provides the immutable HSL color value used across shade.
package color

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color construction errors.
var (
	ErrInvalidColor = errors.New("invalid color")
)

// Color is an immutable color in HSL space. Hue is in [0,360), saturation
// and lightness are percentages in [0,100]. The zero value is black.
type Color struct {
	h float64
	s float64
	l float64
}

// Common endpoints of the lightness scale.
var (
	White = Color{h: 0, s: 0, l: 100}
	Black = Color{h: 0, s: 0, l: 0}
)

// Parse builds a Color from a hex literal such as "#1a2b3c" or "#abc".
// The leading "#" is optional and matching is case-insensitive.
func Parse(hex string) (Color, error) {
	trimmed := strings.TrimSpace(hex)
	if trimmed == "" {
		return Color{}, fmt.Errorf("%w: empty literal", ErrInvalidColor)
	}
	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}

	// colorful.Hex scans digit pairs and would accept a 5-digit literal by
	// reading a lone trailing digit, so the length must be checked here.
	if len(trimmed) != 4 && len(trimmed) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	parsed, err := colorful.Hex(strings.ToLower(trimmed))
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	h, s, l := parsed.Hsl()
	return Color{h: h, s: s * 100, l: l * 100}, nil
}

// FromHSL builds a Color from explicit channels. Hue is in degrees,
// saturation and lightness are percentages.
func FromHSL(h, s, l float64) (Color, error) {
	if h < 0 || h >= 360 {
		return Color{}, fmt.Errorf("%w: hue %v out of [0,360)", ErrInvalidColor, h)
	}
	if s < 0 || s > 100 {
		return Color{}, fmt.Errorf("%w: saturation %v out of [0,100]", ErrInvalidColor, s)
	}
	if l < 0 || l > 100 {
		return Color{}, fmt.Errorf("%w: lightness %v out of [0,100]", ErrInvalidColor, l)
	}
	return Color{h: h, s: s, l: l}, nil
}

// Hue returns the hue channel in degrees.
func (c Color) Hue() float64 {
	return c.h
}

// Saturation returns the saturation channel as a percentage.
func (c Color) Saturation() float64 {
	return c.s
}

// Lightness returns the lightness channel as a percentage, 0 being black
// and 100 being white.
func (c Color) Lightness() float64 {
	return c.l
}

// Adjust returns a copy with lightness shifted by delta percentage points,
// clamped to [0,100]. Hue and saturation are preserved.
func (c Color) Adjust(delta float64) Color {
	l := c.l + delta
	if l < 0 {
		l = 0
	}
	if l > 100 {
		l = 100
	}
	return Color{h: c.h, s: c.s, l: l}
}

// Lighten is Adjust with a positive shift.
func (c Color) Lighten(amount float64) Color {
	return c.Adjust(amount)
}

// Darken is Adjust with a negative shift.
func (c Color) Darken(amount float64) Color {
	return c.Adjust(-amount)
}

// RGB returns the red, green and blue channels in [0,1].
func (c Color) RGB() (r, g, b float64) {
	converted := colorful.Hsl(c.h, c.s/100, c.l/100).Clamped()
	return converted.R, converted.G, converted.B
}

// Hex renders the canonical lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return colorful.Hsl(c.h, c.s/100, c.l/100).Clamped().Hex()
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}
