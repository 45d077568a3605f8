// Curve flattening for QuadTo/CubicTo: adaptive midpoint subdivision
// driven by a chord-distance flatness test, in the same 8-bit subpixel
// integer domain as the line stepper. The max(ONE_PIXEL/4, chord/16)
// threshold is the one FreeType's outline decomposer uses: finer-grained
// near small glyphs, coarser on large ones.
package rasterizer

import (
	"github.com/MeKo-Christian/glyphcore/internal/basics"
	"github.com/MeKo-Christian/glyphcore/internal/config"
)

// flattenQuad recursively subdivides a quadratic Bézier at its midpoint
// until the chord-distance flatness test passes or the recursion cap is
// hit, emitting LineTo segments along the way.
func (r *Rasterizer) flattenQuad(x1, y1, cx, cy, x2, y2 int, depth int) error {
	dx := int64(x2 - x1)
	dy := int64(y2 - y1)

	d := abs64(int64(cx-x1)*dy - int64(cy-y1)*dx)
	chord := abs64(dx) + abs64(dy)

	threshold := chord / 16
	if threshold < basics.PolySubpixelScale/4 {
		threshold = basics.PolySubpixelScale / 4
	}

	if depth >= config.MaxCurveRecursionDepth || d <= threshold*chord {
		err := r.renderLine(r.curX, r.curY, x2, y2)
		r.curX, r.curY = x2, y2
		return err
	}

	// Midpoint (de Casteljau) subdivision of the quadratic into two halves.
	x12 := (x1 + cx) / 2
	y12 := (y1 + cy) / 2
	x23 := (cx + x2) / 2
	y23 := (cy + y2) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2

	if err := r.flattenQuad(x1, y1, x12, y12, x123, y123, depth+1); err != nil {
		return err
	}
	return r.flattenQuad(x123, y123, x23, y23, x2, y2, depth+1)
}

// flattenCubic recursively subdivides a cubic Bézier at its midpoint until
// both control points lie within the size-aware flatness threshold of the
// chord, or the recursion cap is hit.
func (r *Rasterizer) flattenCubic(x1, y1, cx1, cy1, cx2, cy2, x2, y2 int, depth int) error {
	dx := int64(x2 - x1)
	dy := int64(y2 - y1)

	d1 := abs64(int64(cx1-x1)*dy - int64(cy1-y1)*dx)
	d2 := abs64(int64(cx2-x1)*dy - int64(cy2-y1)*dx)
	chord := abs64(dx) + abs64(dy)

	threshold := chord / 16
	if threshold < basics.PolySubpixelScale/4 {
		threshold = basics.PolySubpixelScale / 4
	}

	if depth >= config.MaxCurveRecursionDepth || d1+d2 <= threshold*chord {
		err := r.renderLine(r.curX, r.curY, x2, y2)
		r.curX, r.curY = x2, y2
		return err
	}

	x12 := (x1 + cx1) / 2
	y12 := (y1 + cy1) / 2
	x23 := (cx1 + cx2) / 2
	y23 := (cy1 + cy2) / 2
	x34 := (cx2 + x2) / 2
	y34 := (cy2 + y2) / 2
	x123 := (x12 + x23) / 2
	y123 := (y12 + y23) / 2
	x234 := (x23 + x34) / 2
	y234 := (y23 + y34) / 2
	x1234 := (x123 + x234) / 2
	y1234 := (y123 + y234) / 2

	if err := r.flattenCubic(x1, y1, x12, y12, x123, y123, x1234, y1234, depth+1); err != nil {
		return err
	}
	return r.flattenCubic(x1234, y1234, x234, y234, x34, y34, x2, y2, depth+1)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
