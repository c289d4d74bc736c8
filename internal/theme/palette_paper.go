package theme

// PaperPalette is a pure-white seed pair without an accent; link styling
// inherits from the surrounding text.
var PaperPalette = Theme{
	Name:       "paper",
	Background: "#ffffff",
}
