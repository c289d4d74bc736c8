package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/lucidstyle/shade/internal/color"
	"github.com/lucidstyle/shade/internal/theme"
)

// resolveSeed turns the common --palette / --bg / --anchor flag trio into a
// parsed seed pair. A palette name wins over explicit colors.
func resolveSeed(paletteName, bgHex, anchorHex string) (color.Color, *color.Color, error) {
	if paletteName != "" {
		palette, ok := theme.Palettes[paletteName]
		if !ok {
			return color.Color{}, nil, fmt.Errorf("unknown palette %q (have: %s)", paletteName, paletteNames())
		}
		bgHex = palette.Background
		anchorHex = palette.Anchor
	}

	if bgHex == "" {
		return color.Color{}, nil, fmt.Errorf("a background is required (--bg or --palette)")
	}

	bg, err := color.Parse(bgHex)
	if err != nil {
		return color.Color{}, nil, err
	}

	var anchor *color.Color
	if anchorHex != "" {
		parsed, err := color.Parse(anchorHex)
		if err != nil {
			return color.Color{}, nil, err
		}
		anchor = &parsed
	}

	return bg, anchor, nil
}

func paletteNames() string {
	names := make([]string, 0, len(theme.Palettes))
	for name := range theme.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorEnabled() bool {
	if cfg != nil && cfg.NoColor {
		return false
	}
	return hasTTY()
}

const swatchWidth = 6

// printTokens writes one line per derived role, with a color swatch when
// the output is an interactive terminal.
func printTokens(out io.Writer, tokens theme.Tokens) {
	rows := []struct {
		role string
		c    *color.Color
	}{
		{"background", &tokens.Background},
		{"text", &tokens.Text},
		{"border", &tokens.Border},
		{"hover", &tokens.Hover},
		{"header", &tokens.Header},
		{"link", tokens.Link},
	}

	swatches := colorEnabled()
	for _, row := range rows {
		if row.c == nil {
			fmt.Fprintf(out, "%-12s %-10s\n", row.role, "inherit")
			continue
		}
		line := fmt.Sprintf("%-12s %-10s %5.1f%%", row.role, row.c.Hex(), row.c.Lightness())
		if swatches {
			swatch := lipgloss.NewStyle().
				Background(lipgloss.Color(row.c.Hex())).
				Render(fmt.Sprintf("%*s", swatchWidth, ""))
			line += "  " + swatch
		}
		fmt.Fprintln(out, line)
	}
}
