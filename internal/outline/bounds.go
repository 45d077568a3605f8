package outline

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/MeKo-Christian/glyphcore/internal/basics"
)

// PixelBounds is an axis-aligned integer bounding box in pixel space.
type PixelBounds struct {
	MinX, MinY, MaxX, MaxY int
}

// controlBox returns the envelope of every endpoint and control-point
// coordinate in o, used as a fallback when o.Bounds is nil (the precomputed
// box is the common path; not every caller populates it).
func controlBox(o *Outline) Bounds {
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	grow := func(x, y float64) {
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}
	for _, c := range o.Commands {
		switch c.Op {
		case OpMoveTo, OpLineTo:
			grow(c.X, c.Y)
		case OpQuadTo:
			grow(c.CX1, c.CY1)
			grow(c.X, c.Y)
		case OpCubicTo:
			grow(c.CX1, c.CY1)
			grow(c.CX2, c.CY2)
			grow(c.X, c.Y)
		}
	}
	if math.IsInf(b.MinX, 1) {
		return Bounds{}
	}
	return b
}

// mulFix multiplies a 26.6 fixed-point value by a 16.16 scale factor,
// rounding to nearest, yielding 26.6.
func mulFix(a fixed.Int26_6, scale16 int64) fixed.Int26_6 {
	v := int64(a) * scale16
	if v >= 0 {
		return fixed.Int26_6((v + 0x8000) >> 16)
	}
	return fixed.Int26_6(-((-v + 0x8000) >> 16))
}

// GetPathBounds computes the pixel-space bounding box of o at the given
// scale. When roundToGrid is true, the bounds pass through a
// combined 26.6 x 16.16 fixed-point scale (the unit upstream grid-fitting
// works in) and are floored/ceiled at pixel boundaries there; otherwise
// the (possibly precomputed) outline bounding box is scaled in float and
// rounded outward. flipY negates the Y interval in either path.
func GetPathBounds(o *Outline, scale float64, flipY, roundToGrid bool) PixelBounds {
	var b Bounds
	if o.Bounds != nil {
		b = *o.Bounds
	} else {
		b = controlBox(o)
	}

	minX, maxX := b.MinX, b.MaxX
	minY, maxY := b.MinY, b.MaxY

	if flipY {
		minY, maxY = -maxY, -minY
	}

	if roundToGrid {
		scale16 := int64(basics.IRound(scale * (1 << 16)))
		toGrid := func(v float64) fixed.Int26_6 {
			return mulFix(fixed.Int26_6(basics.IRound(v*64)), scale16)
		}
		return PixelBounds{
			MinX: toGrid(minX).Floor(),
			MinY: toGrid(minY).Floor(),
			MaxX: toGrid(maxX).Ceil(),
			MaxY: toGrid(maxY).Ceil(),
		}
	}

	return PixelBounds{
		MinX: basics.IFloor(minX * scale),
		MinY: basics.IFloor(minY * scale),
		MaxX: basics.ICeil(maxX * scale),
		MaxY: basics.ICeil(maxY * scale),
	}
}
