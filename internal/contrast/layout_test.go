package contrast

import (
	"testing"

	"github.com/lucidstyle/shade/internal/color"
)

func TestLayoutWhiteBranch(t *testing.T) {
	rule := Layout(color.White, 10)

	if rule.Container != nil {
		t.Fatalf("white branch should not pad the container: %+v", rule.Container)
	}
	if rule.Children == nil {
		t.Fatal("white branch missing child padding")
	}
	if rule.Children.Percent != 10 || rule.Children.Em != 2 {
		t.Errorf("child padding = %v%% - %vem, want 10%% - 2em", rule.Children.Percent, rule.Children.Em)
	}
}

func TestLayoutNonWhiteBranch(t *testing.T) {
	// 99.9% lightness is close to white but must take the container branch.
	for _, l := range []float64{0, 42, 99.9} {
		bg := mustHSL(t, 0, 0, l)
		rule := Layout(bg, 10)

		if rule.Container == nil {
			t.Fatalf("l=%v: missing container padding", l)
		}
		if rule.Container.Percent != 8 || rule.Container.Em != 1.6 {
			t.Errorf("l=%v: container padding = %v%% - %vem, want 8%% - 1.6em", l, rule.Container.Percent, rule.Container.Em)
		}
		if rule.Children == nil {
			t.Fatalf("l=%v: missing child padding", l)
		}
		if rule.Children.Percent != 13 || rule.Children.Em != 1.6 {
			t.Errorf("l=%v: child padding = %v%% - %vem, want 13%% - 1.6em", l, rule.Children.Percent, rule.Children.Em)
		}
	}
}

func TestLayoutWhiteSurvivesHexRoundTrip(t *testing.T) {
	bg, err := color.Parse("#ffffff")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !IsWhite(bg) {
		t.Fatal("hex-parsed #ffffff should classify as white")
	}
	if rule := Layout(bg, 10); rule.Container != nil {
		t.Fatal("hex-parsed white took the container branch")
	}
}

func TestIsWhiteDistinctFromIsLight(t *testing.T) {
	almost := mustHSL(t, 0, 0, 99.9)
	if !IsLight(almost) {
		t.Fatal("99.9% lightness should be light")
	}
	if IsWhite(almost) {
		t.Fatal("99.9% lightness must not be white")
	}
}
