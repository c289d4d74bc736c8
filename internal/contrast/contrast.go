// Package contrast derives readable companion colors from a background
// color by an HSL lightness threshold test.
package contrast

import "github.com/lucidstyle/shade/internal/color"

// Lightness shifts applied per derived role, in percentage points.
const (
	borderShift = 12
	hoverShift  = 7
	headerShift = 60
	linkShift   = 5
)

const lightThreshold = 50

// IsLight reports whether bg sits above the lightness midpoint. Exactly
// 50% classifies as dark; every derivation in this package shares that
// tie-break through this single predicate.
func IsLight(bg color.Color) bool {
	return bg.Lightness() > lightThreshold
}

// whiteEpsilon absorbs float round-trip error on the lightness channel so
// a hex-parsed #ffffff still lands on the exact-white branch.
const whiteEpsilon = 1e-9

// IsWhite reports whether bg is at full lightness. This is a stricter test
// than IsLight and must stay a separate predicate: merging the two would
// reroute every non-extreme light background.
func IsWhite(bg color.Color) bool {
	return bg.Lightness() >= 100-whiteEpsilon
}

// shift moves bg toward more contrast: darker on light backgrounds,
// lighter on dark ones.
func shift(bg color.Color, amount float64) color.Color {
	if IsLight(bg) {
		return bg.Darken(amount)
	}
	return bg.Lighten(amount)
}

// Foreground returns the readable text color for bg: black on light
// backgrounds, white on dark ones.
func Foreground(bg color.Color) color.Color {
	if IsLight(bg) {
		return color.Black
	}
	return color.White
}

// Border returns bg shifted 12 points toward contrast, for section and
// element borders.
func Border(bg color.Color) color.Color {
	return shift(bg, borderShift)
}

// HoverBackground returns bg shifted 7 points toward contrast, for
// hover states.
func HoverBackground(bg color.Color) color.Color {
	return shift(bg, hoverShift)
}

// HeaderText returns bg shifted 60 points toward contrast, a strong
// variant for captions and headings.
func HeaderText(bg color.Color) color.Color {
	return shift(bg, headerShift)
}

// Link derives the hyperlink color from an optional anchor. A nil anchor
// means no explicit color: ok is false and the caller's surrounding style
// applies. The light/dark branch is taken on bg, never on anchor.
func Link(bg color.Color, anchor *color.Color) (c color.Color, ok bool) {
	if anchor == nil {
		return color.Color{}, false
	}
	if IsLight(bg) {
		return anchor.Darken(linkShift), true
	}
	return anchor.Lighten(linkShift), true
}
