package theme

// Palettes lists the built-in seed pairs by name.
var Palettes = map[string]Theme{
	"default":       DefaultPalette,
	"high-contrast": HighContrastPalette,
	"paper":         PaperPalette,
}
