package basics

import "math"

// MulDiv computes a*b/c with a wider-than-32-bit intermediate, matching
// AGG's poly_subpixel_scale arithmetic (agg_math.h's mul_div). Returns 0
// when c is zero rather than panicking: out-of-range divisors are not
// errors in the rasterizer's hot path.
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		return 0
	}
	return (a * b) / c
}

// Hypot approximates the length of (x, y) using the AGG/FreeType estimate
// |x| + 3|y|/8 (for |x| >= |y|), cheap enough for stroker/SDF hot paths
// where an exact sqrt isn't warranted.
func Hypot(x, y float64) float64 {
	x = math.Abs(x)
	y = math.Abs(y)
	if x < y {
		x, y = y, x
	}
	return x + 3*y/8
}

// CalcSqDistance returns the squared distance between two points.
func CalcSqDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CalcSegmentPointU returns the parameter of the projection of (x,y) onto
// the segment (x1,y1)-(x2,y2), unclamped; 0 for a degenerate segment.
func CalcSegmentPointU(x1, y1, x2, y2, x, y float64) float64 {
	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 && dy == 0 {
		return 0
	}

	pdx := x - x1
	pdy := y - y1

	return (pdx*dx + pdy*dy) / (dx*dx + dy*dy)
}

// CalcSegmentPointSqDistance returns the squared distance from (x,y) to
// the segment (x1,y1)-(x2,y2), clamping the projection parameter to [0,1].
func CalcSegmentPointSqDistance(x1, y1, x2, y2, x, y float64) float64 {
	u := CalcSegmentPointU(x1, y1, x2, y2, x, y)

	if u <= 0 {
		return CalcSqDistance(x, y, x1, y1)
	}
	if u >= 1 {
		return CalcSqDistance(x, y, x2, y2)
	}

	ix := x1 + u*(x2-x1)
	iy := y1 + u*(y2-y1)
	return CalcSqDistance(x, y, ix, iy)
}
