// Package tui implements the interactive swatch preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucidstyle/shade/internal/color"
	"github.com/lucidstyle/shade/internal/theme"
)

func lipglossColor(c color.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Run launches the preview program for the given seed pair.
func Run(bg color.Color, anchor *color.Color) error {
	program := tea.NewProgram(newModel(bg, anchor), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

const lightnessStep = 1

type model struct {
	width   int
	height  int
	seed    color.Color
	current color.Color
	anchor  *color.Color
	tokens  theme.Tokens
	styles  theme.Styles
}

func newModel(bg color.Color, anchor *color.Color) model {
	m := model{seed: bg, current: bg, anchor: anchor}
	m.rebuild()
	return m
}

func (m *model) rebuild() {
	m.tokens = theme.Derive(m.current, m.anchor)
	m.styles = theme.BuildStyles(m.tokens)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.current = m.current.Darken(lightnessStep)
			m.rebuild()
		case "k", "up":
			m.current = m.current.Lighten(lightnessStep)
			m.rebuild()
		case "r":
			m.current = m.seed
			m.rebuild()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

const swatchWidth = 14

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("shade preview"))
	b.WriteString("\n\n")

	b.WriteString(m.swatchLine("background", m.tokens.Background))
	b.WriteString(m.swatchLine("text", m.tokens.Text))
	b.WriteString(m.swatchLine("border", m.tokens.Border))
	b.WriteString(m.swatchLine("hover", m.tokens.Hover))
	b.WriteString(m.swatchLine("header", m.tokens.Header))
	if m.tokens.Link != nil {
		b.WriteString(m.swatchLine("link", *m.tokens.Link))
	} else {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", "link", m.styles.Muted.Render("inherit")))
	}

	b.WriteString("\n")
	sample := m.styles.Text.Render("  The quick brown fox  ")
	header := m.styles.Header.Render("  Section header  ")
	b.WriteString("  " + header + "\n")
	b.WriteString("  " + sample + "\n")

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  lightness %.1f%%  ·  k lighten · j darken · r reset · q quit", m.current.Lightness())))
	b.WriteString("\n")

	return b.String()
}

func (m model) swatchLine(label string, c color.Color) string {
	swatch := m.styles.Swatch.Copy().Background(lipglossColor(c)).Render(strings.Repeat(" ", swatchWidth))
	return fmt.Sprintf("  %-12s %s  %s\n", label, swatch, c.Hex())
}
