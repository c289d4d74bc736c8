// Package theme turns a background/anchor seed pair into the full set of
// derived colors a styled section needs.
package theme

import (
	"fmt"

	"github.com/lucidstyle/shade/internal/color"
	"github.com/lucidstyle/shade/internal/contrast"
)

// Tokens is the derived color set for one visual section. Link is nil when
// no anchor was supplied and the surrounding style should apply.
type Tokens struct {
	Background color.Color
	Text       color.Color
	Border     color.Color
	Hover      color.Color
	Header     color.Color
	Link       *color.Color
	Anchor     *color.Color
}

// Theme bundles a named seed pair. Seeds are hex literals; Anchor may be
// empty when the theme has no accent.
type Theme struct {
	Name       string
	Background string
	Anchor     string
}

// Derive computes every token from the background, branching each one on
// the shared light/dark test.
func Derive(bg color.Color, anchor *color.Color) Tokens {
	tokens := Tokens{
		Background: bg,
		Text:       contrast.Foreground(bg),
		Border:     contrast.Border(bg),
		Hover:      contrast.HoverBackground(bg),
		Header:     contrast.HeaderText(bg),
		Anchor:     anchor,
	}
	if link, ok := contrast.Link(bg, anchor); ok {
		tokens.Link = &link
	}
	return tokens
}

// Tokens parses the theme's seed literals and derives its token set.
func (t Theme) Tokens() (Tokens, error) {
	bg, err := color.Parse(t.Background)
	if err != nil {
		return Tokens{}, fmt.Errorf("theme %q background: %w", t.Name, err)
	}

	var anchor *color.Color
	if t.Anchor != "" {
		parsed, err := color.Parse(t.Anchor)
		if err != nil {
			return Tokens{}, fmt.Errorf("theme %q anchor: %w", t.Name, err)
		}
		anchor = &parsed
	}

	return Derive(bg, anchor), nil
}
