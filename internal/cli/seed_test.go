package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lucidstyle/shade/internal/theme"
)

func TestResolveSeedExplicit(t *testing.T) {
	bg, anchor, err := resolveSeed("", "#0b0f14", "#5b8def")
	if err != nil {
		t.Fatalf("resolveSeed: %v", err)
	}
	if bg.Hex() != "#0b0f14" {
		t.Errorf("bg = %s, want #0b0f14", bg.Hex())
	}
	if anchor == nil || anchor.Hex() != "#5b8def" {
		t.Errorf("anchor = %v, want #5b8def", anchor)
	}
}

func TestResolveSeedPalette(t *testing.T) {
	bg, anchor, err := resolveSeed("default", "", "")
	if err != nil {
		t.Fatalf("resolveSeed: %v", err)
	}
	if bg.Hex() != theme.DefaultPalette.Background {
		t.Errorf("bg = %s, want %s", bg.Hex(), theme.DefaultPalette.Background)
	}
	if anchor == nil {
		t.Error("default palette should carry an anchor")
	}

	// Paper has no anchor.
	_, anchor, err = resolveSeed("paper", "", "")
	if err != nil {
		t.Fatalf("resolveSeed: %v", err)
	}
	if anchor != nil {
		t.Errorf("paper anchor = %v, want nil", anchor)
	}
}

func TestResolveSeedErrors(t *testing.T) {
	if _, _, err := resolveSeed("no-such", "", ""); err == nil {
		t.Error("expected error for unknown palette")
	}
	if _, _, err := resolveSeed("", "", ""); err == nil {
		t.Error("expected error for missing background")
	}
	if _, _, err := resolveSeed("", "#zz", ""); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestPrintTokens(t *testing.T) {
	tokens, err := theme.PaperPalette.Tokens()
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}

	var buf bytes.Buffer
	printTokens(&buf, tokens)
	out := buf.String()

	if !strings.Contains(out, "#000000") {
		t.Errorf("expected black text in output:\n%s", out)
	}
	if !strings.Contains(out, "inherit") {
		t.Errorf("expected inherit link in output:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 6 {
		t.Errorf("expected 6 lines, got %d:\n%s", lines, out)
	}
}

func TestVerdict(t *testing.T) {
	if verdict(true) != "pass" || verdict(false) != "fail" {
		t.Fatalf("unexpected verdicts: %s, %s", verdict(true), verdict(false))
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"name", "background"}, [][]string{
		{"midnight", "#0b0f14"},
		{"paper", "#ffffff"},
	})
	if err != nil {
		t.Fatalf("writeTable: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "BACKGROUND") {
		t.Errorf("headers should be uppercased:\n%s", out)
	}
	if !strings.Contains(out, "midnight") {
		t.Errorf("unexpected table output:\n%s", out)
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" {
		t.Errorf("orDash(\"\") = %q, want -", orDash(""))
	}
	if orDash("#5b8def") != "#5b8def" {
		t.Errorf("orDash passthrough = %q", orDash("#5b8def"))
	}
}
