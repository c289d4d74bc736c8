package contrast

import "github.com/lucidstyle/shade/internal/color"

// PaddingRule is a percentage padding with an em correction subtracted,
// rendered downstream as calc(<Percent>% - <Em>em).
type PaddingRule struct {
	Percent float64
	Em      float64
}

// LayoutRule assigns padding to a section container and/or its direct
// children. A nil entry means no rule for that target.
type LayoutRule struct {
	Container *PaddingRule
	Children  *PaddingRule
}

// Fixed child padding for the non-white branch.
const (
	childPercent = 13
	childEm      = 1.6
)

// Layout selects section padding by the exact-white test on bg. On a pure
// white background the children carry the padding; on any other background
// the container takes a reduced padding and the children get a fixed one.
func Layout(bg color.Color, paddingBase float64) LayoutRule {
	if IsWhite(bg) {
		return LayoutRule{
			Children: &PaddingRule{Percent: paddingBase, Em: paddingBase / 5},
		}
	}

	scaled := paddingBase * 0.8
	return LayoutRule{
		Container: &PaddingRule{Percent: scaled, Em: scaled / 5},
		Children:  &PaddingRule{Percent: childPercent, Em: childEm},
	}
}
