package theme

import (
	"errors"
	"testing"

	"github.com/lucidstyle/shade/internal/color"
)

func TestDeriveDarkBackground(t *testing.T) {
	bg, err := color.Parse("#0b0f14")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	anchor, err := color.Parse("#5b8def")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tokens := Derive(bg, &anchor)

	if tokens.Text != color.White {
		t.Errorf("Text = %v, want white on a dark background", tokens.Text)
	}
	if tokens.Border.Lightness() <= bg.Lightness() {
		t.Errorf("Border should lighten a dark background: %v vs %v", tokens.Border.Lightness(), bg.Lightness())
	}
	if tokens.Link == nil {
		t.Fatal("Link missing despite anchor")
	}
	if tokens.Link.Lightness() <= anchor.Lightness() {
		t.Errorf("Link should lighten the anchor on a dark background")
	}
}

func TestDeriveWithoutAnchor(t *testing.T) {
	tokens := Derive(color.White, nil)

	if tokens.Link != nil {
		t.Errorf("Link = %v, want nil (inherit)", tokens.Link)
	}
	if tokens.Text != color.Black {
		t.Errorf("Text = %v, want black on white", tokens.Text)
	}
}

func TestThemeTokens(t *testing.T) {
	tokens, err := DefaultPalette.Tokens()
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens.Link == nil {
		t.Error("default palette should derive a link color")
	}

	tokens, err = PaperPalette.Tokens()
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens.Link != nil {
		t.Error("paper palette has no anchor, link should inherit")
	}
}

func TestThemeTokensInvalidSeed(t *testing.T) {
	bad := Theme{Name: "bad", Background: "#nothex"}
	if _, err := bad.Tokens(); !errors.Is(err, color.ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}

	badAnchor := Theme{Name: "bad-anchor", Background: "#ffffff", Anchor: "zz"}
	if _, err := badAnchor.Tokens(); !errors.Is(err, color.ErrInvalidColor) {
		t.Errorf("error = %v, want ErrInvalidColor", err)
	}
}

func TestBuiltinPalettesDerive(t *testing.T) {
	for name, palette := range Palettes {
		if _, err := palette.Tokens(); err != nil {
			t.Errorf("palette %q: %v", name, err)
		}
		if palette.Name != name {
			t.Errorf("palette %q has mismatched Name %q", name, palette.Name)
		}
	}
}
