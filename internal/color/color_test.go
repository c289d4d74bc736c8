package color

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		lightness float64
	}{
		{"#ffffff", 100},
		{"#000000", 0},
		{"ffffff", 100},
		{"#FFF", 100},
		{"  #000000  ", 0},
		{"#808080", 50.196078},
	}

	for _, tt := range tests {
		c, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if math.Abs(c.Lightness()-tt.lightness) > 0.001 {
			t.Errorf("Parse(%q) lightness = %v, want %v", tt.input, c.Lightness(), tt.lightness)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "#gggggg", "#12345", "#1234567", "#ab", "not a color", "#"} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidColor", input, err)
		}
	}
}

func TestFromHSL(t *testing.T) {
	c, err := FromHSL(210, 40, 60)
	if err != nil {
		t.Fatalf("FromHSL: %v", err)
	}
	if c.Hue() != 210 || c.Saturation() != 40 || c.Lightness() != 60 {
		t.Errorf("unexpected channels: %v %v %v", c.Hue(), c.Saturation(), c.Lightness())
	}

	invalid := []struct{ h, s, l float64 }{
		{360, 50, 50},
		{-1, 50, 50},
		{0, 101, 50},
		{0, 50, -0.1},
		{0, 50, 100.5},
	}
	for _, tt := range invalid {
		if _, err := FromHSL(tt.h, tt.s, tt.l); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("FromHSL(%v, %v, %v) error = %v, want ErrInvalidColor", tt.h, tt.s, tt.l, err)
		}
	}
}

func TestAdjustClamps(t *testing.T) {
	c, err := FromHSL(120, 50, 95)
	if err != nil {
		t.Fatalf("FromHSL: %v", err)
	}

	lightened := c.Lighten(12)
	if lightened.Lightness() != 100 {
		t.Errorf("Lighten past white = %v, want 100", lightened.Lightness())
	}

	darkened := c.Darken(200)
	if darkened.Lightness() != 0 {
		t.Errorf("Darken past black = %v, want 0", darkened.Lightness())
	}

	// Hue and saturation survive the shift.
	if lightened.Hue() != 120 || lightened.Saturation() != 50 {
		t.Errorf("Adjust changed hue/saturation: %v %v", lightened.Hue(), lightened.Saturation())
	}
}

func TestAdjustIsImmutable(t *testing.T) {
	c, err := FromHSL(0, 0, 40)
	if err != nil {
		t.Fatalf("FromHSL: %v", err)
	}
	_ = c.Adjust(10)
	if c.Lightness() != 40 {
		t.Errorf("Adjust mutated receiver: %v", c.Lightness())
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#ffffff", "#000000", "#5b8def", "#f85149"} {
		c, err := Parse(hex)
		if err != nil {
			t.Fatalf("Parse(%q): %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("Hex round trip: got %q, want %q", got, hex)
		}
	}
}

func TestEndpoints(t *testing.T) {
	if White.Lightness() != 100 {
		t.Errorf("White lightness = %v", White.Lightness())
	}
	if Black.Lightness() != 0 {
		t.Errorf("Black lightness = %v", Black.Lightness())
	}
	if White.Hex() != "#ffffff" || Black.Hex() != "#000000" {
		t.Errorf("endpoint hex: %q %q", White.Hex(), Black.Hex())
	}
}
