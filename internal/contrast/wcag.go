package contrast

import (
	"math"

	"github.com/lucidstyle/shade/internal/color"
)

// WCAG relative-luminance channel coefficients.
const (
	redCoeff   = 0.2126
	greenCoeff = 0.7152
	blueCoeff  = 0.0722
)

// low-gamma adjust coefficient
const lowGamma = 1 / 12.92

// WCAG minimum contrast ratios for normal text.
const (
	aaRatio  = 4.5
	aaaRatio = 7.0
)

func adjustGamma(v float64) float64 {
	return math.Pow((v+0.055)/1.055, 2.4)
}

func channelLuminance(v float64) float64 {
	if v <= 0.03928 {
		return v * lowGamma
	}
	return adjustGamma(v)
}

func relativeLuminance(c color.Color) float64 {
	r, g, b := c.RGB()
	return redCoeff*channelLuminance(r) + greenCoeff*channelLuminance(g) + blueCoeff*channelLuminance(b)
}

// Ratio returns the WCAG contrast ratio between two colors, from 1 (no
// contrast) to 21 (black on white). Order of arguments does not matter.
func Ratio(a, b color.Color) float64 {
	al := relativeLuminance(a)
	bl := relativeLuminance(b)
	lighter := math.Max(al, bl)
	darker := math.Min(al, bl)
	return (lighter + 0.05) / (darker + 0.05)
}

// MeetsAA reports whether the pair meets WCAG AA for normal text (4.5:1).
func MeetsAA(fg, bg color.Color) bool {
	return Ratio(fg, bg) >= aaRatio
}

// MeetsAAA reports whether the pair meets WCAG AAA for normal text (7:1).
func MeetsAAA(fg, bg color.Color) bool {
	return Ratio(fg, bg) >= aaaRatio
}
