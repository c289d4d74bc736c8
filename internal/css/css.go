// Package css renders derived theme tokens as stylesheet text for the
// consuming pipeline.
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucidstyle/shade/internal/contrast"
	"github.com/lucidstyle/shade/internal/theme"
)

// Padding renders a padding rule as a calc expression.
func Padding(rule contrast.PaddingRule) string {
	return fmt.Sprintf("calc(%s%% - %sem)", formatNumber(rule.Percent), formatNumber(rule.Em))
}

// formatNumber renders without trailing zeros, matching handwritten CSS.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Declarations returns the container color declarations for a token set,
// in a fixed order.
func Declarations(t theme.Tokens) []string {
	return []string{
		"background-color: " + t.Background.Hex() + ";",
		"color: " + t.Text.Hex() + ";",
		"border-color: " + t.Border.Hex() + ";",
	}
}

// Block renders a full rule block for one section: the container rule, a
// header rule, a link rule, a hover rule and the child padding rule.
func Block(selector string, t theme.Tokens, layout contrast.LayoutRule) string {
	var b strings.Builder

	writeRule := func(sel string, decls ...string) {
		b.WriteString(sel)
		b.WriteString(" {\n")
		for _, decl := range decls {
			b.WriteString("  ")
			b.WriteString(decl)
			b.WriteString("\n")
		}
		b.WriteString("}\n")
	}

	containerDecls := Declarations(t)
	if layout.Container != nil {
		containerDecls = append(containerDecls, "padding: "+Padding(*layout.Container)+";")
	}
	writeRule(selector, containerDecls...)

	writeRule(selector+" h1, "+selector+" h2", "color: "+t.Header.Hex()+";")

	link := "inherit"
	if t.Link != nil {
		link = t.Link.Hex()
	}
	writeRule(selector+" a", "color: "+link+";")

	writeRule(selector+":hover", "background-color: "+t.Hover.Hex()+";")

	if layout.Children != nil {
		writeRule(selector+" > *", "padding: "+Padding(*layout.Children)+";")
	}

	return b.String()
}
