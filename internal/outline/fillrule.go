package outline

import "github.com/MeKo-Christian/glyphcore/internal/rasterizer"

// SelectFillRule maps an outline's flag bit to the rasterizer's fill rule:
// EvenOdd iff EvenOddFill is set, else NonZero.
func SelectFillRule(o *Outline) rasterizer.FillRule {
	if o.HasEvenOddFill() {
		return rasterizer.FillEvenOdd
	}
	return rasterizer.FillNonZero
}
