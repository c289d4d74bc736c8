package theme

// DefaultPalette is the baseline dark seed pair.
var DefaultPalette = Theme{
	Name:       "default",
	Background: "#0b0f14",
	Anchor:     "#5b8def",
}
