package theme

// HighContrastPalette favors visibility for low-vision readers.
var HighContrastPalette = Theme{
	Name:       "high-contrast",
	Background: "#000000",
	Anchor:     "#00a2ff",
}
