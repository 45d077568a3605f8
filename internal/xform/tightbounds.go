package xform

import (
	"math"

	"github.com/MeKo-Christian/glyphcore/internal/outline"
)

// TightBounds computes the exact axis-aligned bounding box of o: for every
// Bézier segment it includes the endpoints plus any curve extrema with
// parameter t in (0,1), found as roots of the derivative on each axis
// (linear for a quadratic, a quadratic discriminant solve for a cubic).
// TightBounds(o) is always contained in ControlBox(o), and equals the
// vertex envelope for any closed polygonal path (no curves).
func TightBounds(o *outline.Outline) outline.Bounds {
	b := outline.Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	grow := func(x, y float64) {
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}

	var curX, curY float64
	for _, c := range o.Commands {
		switch c.Op {
		case outline.OpMoveTo:
			grow(c.X, c.Y)
			curX, curY = c.X, c.Y
		case outline.OpLineTo:
			grow(c.X, c.Y)
			curX, curY = c.X, c.Y
		case outline.OpQuadTo:
			grow(c.X, c.Y)
			growQuadExtrema(curX, curY, c.CX1, c.CY1, c.X, c.Y, grow)
			curX, curY = c.X, c.Y
		case outline.OpCubicTo:
			grow(c.X, c.Y)
			growCubicExtrema(curX, curY, c.CX1, c.CY1, c.CX2, c.CY2, c.X, c.Y, grow)
			curX, curY = c.X, c.Y
		}
	}
	if math.IsInf(b.MinX, 1) {
		return outline.Bounds{}
	}
	return b
}

// quadAt evaluates one axis of a quadratic Bézier at parameter t.
func quadAt(p0, p1, p2, t float64) float64 {
	u := 1 - t
	return u*u*p0 + 2*u*t*p1 + t*t*p2
}

// growQuadExtrema finds the single t where d/dt of each axis is zero
// (a quadratic's derivative is linear, so there is at most one root) and
// grows the box with the curve point there if t lies in (0,1).
func growQuadExtrema(x0, y0, cx, cy, x1, y1 float64, grow func(x, y float64)) {
	growAxis := func(p0, p1, p2 float64, other func(t float64) float64, setX bool) {
		denom := p0 - 2*p1 + p2
		if math.Abs(denom) < 1e-12 {
			return
		}
		t := (p0 - p1) / denom
		if t <= 0 || t >= 1 {
			return
		}
		v := quadAt(p0, p1, p2, t)
		o := other(t)
		if setX {
			grow(v, o)
		} else {
			grow(o, v)
		}
	}
	growAxis(x0, cx, x1, func(t float64) float64 { return quadAt(y0, cy, y1, t) }, true)
	growAxis(y0, cy, y1, func(t float64) float64 { return quadAt(x0, cx, x1, t) }, false)
}

// cubicAt evaluates one axis of a cubic Bézier at parameter t.
func cubicAt(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

// growCubicExtrema solves the (up to) two roots of a cubic's derivative,
// itself a quadratic, via the discriminant, and grows the box with the
// curve points at any root lying in (0,1).
func growCubicExtrema(x0, y0, cx1, cy1, cx2, cy2, x1, y1 float64, grow func(x, y float64)) {
	growAxis := func(p0, p1, p2, p3 float64, other func(t float64) float64, setX bool) {
		// d/dt B(t) = 3(1-t)^2(p1-p0) + 6(1-t)t(p2-p1) + 3t^2(p3-p2),
		// which collapses to a*t^2 + b*t + c (up to a constant factor) with:
		a := -p0 + 3*p1 - 3*p2 + p3
		b := 2 * (p0 - 2*p1 + p2)
		c := p1 - p0

		roots := quadraticRoots(a, b, c)
		for _, t := range roots {
			if t <= 0 || t >= 1 {
				continue
			}
			v := cubicAt(p0, p1, p2, p3, t)
			o := other(t)
			if setX {
				grow(v, o)
			} else {
				grow(o, v)
			}
		}
	}
	growAxis(x0, cx1, cx2, x1, func(t float64) float64 { return cubicAt(y0, cy1, cy2, y1, t) }, true)
	growAxis(y0, cy1, cy2, y1, func(t float64) float64 { return cubicAt(x0, cx1, cx2, x1, t) }, false)
}

// quadraticRoots returns the real roots of a*t^2 + b*t + c = 0 (0, 1, or 2
// of them), handling the degenerate linear/constant cases.
func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
