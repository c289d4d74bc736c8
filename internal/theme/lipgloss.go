package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from a token set, for rendering
// swatches and labels in the terminal.
type Styles struct {
	Tokens Tokens
	Swatch lipgloss.Style
	Text   lipgloss.Style
	Header lipgloss.Style
	Border lipgloss.Style
	Hover  lipgloss.Style
	Link   lipgloss.Style
	Label  lipgloss.Style
	Muted  lipgloss.Style
}

// BuildStyles converts derived tokens into lipgloss styles.
func BuildStyles(tokens Tokens) Styles {
	bg := lipgloss.Color(tokens.Background.Hex())

	styles := Styles{
		Tokens: tokens,
		Swatch: lipgloss.NewStyle().Background(bg),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text.Hex())).Background(bg),
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Header.Hex())).Background(bg).Bold(true),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border.Hex())),
		Hover:  lipgloss.NewStyle().Background(lipgloss.Color(tokens.Hover.Hex())),
		Label:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
	}

	if tokens.Link != nil {
		styles.Link = lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Link.Hex())).Background(bg).Underline(true)
	} else {
		styles.Link = styles.Text.Underline(true)
	}

	return styles
}
