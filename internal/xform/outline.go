package xform

import (
	"math"

	"github.com/MeKo-Christian/glyphcore/internal/outline"
)

// Transform2D applies M to every coordinate (including control points) of
// a copy of o, and recomputes o's bounding box (when present) by
// transforming all four corners of the input box and taking the
// envelope. The input outline is not modified.
func Transform2D(o *outline.Outline, m Matrix2D) *outline.Outline {
	out := &outline.Outline{
		Commands: make([]outline.Command, len(o.Commands)),
		Flags:    o.Flags,
	}
	for i, c := range o.Commands {
		out.Commands[i] = transformCommand2D(c, m)
	}
	if o.Bounds != nil {
		out.Bounds = transformBoundsCorners2D(*o.Bounds, m)
	}
	return out
}

func transformCommand2D(c outline.Command, m Matrix2D) outline.Command {
	nc := c
	switch c.Op {
	case outline.OpMoveTo, outline.OpLineTo:
		nc.X, nc.Y = m.Apply(c.X, c.Y)
	case outline.OpQuadTo:
		nc.CX1, nc.CY1 = m.Apply(c.CX1, c.CY1)
		nc.X, nc.Y = m.Apply(c.X, c.Y)
	case outline.OpCubicTo:
		nc.CX1, nc.CY1 = m.Apply(c.CX1, c.CY1)
		nc.CX2, nc.CY2 = m.Apply(c.CX2, c.CY2)
		nc.X, nc.Y = m.Apply(c.X, c.Y)
	}
	return nc
}

func transformBoundsCorners2D(b outline.Bounds, m Matrix2D) *outline.Bounds {
	corners := [4][2]float64{
		{b.MinX, b.MinY}, {b.MaxX, b.MinY}, {b.MaxX, b.MaxY}, {b.MinX, b.MaxY},
	}
	nb := outline.Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, p := range corners {
		x, y := m.Apply(p[0], p[1])
		nb.MinX = math.Min(nb.MinX, x)
		nb.MinY = math.Min(nb.MinY, y)
		nb.MaxX = math.Max(nb.MaxX, x)
		nb.MaxY = math.Max(nb.MaxY, y)
	}
	return &nb
}

// Transform3D applies a homogeneous matrix with perspective division to
// every coordinate of a copy of o. No subdivision is inserted: Béziers
// are not projective-invariant, so a transformed quadratic/cubic is an
// approximation of the true projected curve.
func Transform3D(o *outline.Outline, m Matrix3x3) *outline.Outline {
	out := &outline.Outline{
		Commands: make([]outline.Command, len(o.Commands)),
		Flags:    o.Flags,
	}
	for i, c := range o.Commands {
		nc := c
		switch c.Op {
		case outline.OpMoveTo, outline.OpLineTo:
			nc.X, nc.Y = m.Apply(c.X, c.Y)
		case outline.OpQuadTo:
			nc.CX1, nc.CY1 = m.Apply(c.CX1, c.CY1)
			nc.X, nc.Y = m.Apply(c.X, c.Y)
		case outline.OpCubicTo:
			nc.CX1, nc.CY1 = m.Apply(c.CX1, c.CY1)
			nc.CX2, nc.CY2 = m.Apply(c.CX2, c.CY2)
			nc.X, nc.Y = m.Apply(c.X, c.Y)
		}
		out.Commands[i] = nc
	}
	return out
}

// Rotate90 rotates o 90 degrees counter-clockwise about (offX, offY):
// (x,y) -> (offX - (y - offY), offY + (x - offX)), which reduces to
// (x,y) -> (-y, x) at the origin, and re-normalizes the bounding box.
// This is a fast specialization of Transform2D for the common 90-degree
// case used by glyph-orientation callers, avoiding the general matrix
// multiply.
func Rotate90(o *outline.Outline, offX, offY float64) *outline.Outline {
	rot := func(x, y float64) (float64, float64) {
		dx, dy := x-offX, y-offY
		return offX - dy, offY + dx
	}
	out := &outline.Outline{Commands: make([]outline.Command, len(o.Commands)), Flags: o.Flags}
	for i, c := range o.Commands {
		nc := c
		switch c.Op {
		case outline.OpMoveTo, outline.OpLineTo:
			nc.X, nc.Y = rot(c.X, c.Y)
		case outline.OpQuadTo:
			nc.CX1, nc.CY1 = rot(c.CX1, c.CY1)
			nc.X, nc.Y = rot(c.X, c.Y)
		case outline.OpCubicTo:
			nc.CX1, nc.CY1 = rot(c.CX1, c.CY1)
			nc.CX2, nc.CY2 = rot(c.CX2, c.CY2)
			nc.X, nc.Y = rot(c.X, c.Y)
		}
		out.Commands[i] = nc
	}
	if o.Bounds != nil {
		b := *o.Bounds
		corners := [4][2]float64{{b.MinX, b.MinY}, {b.MaxX, b.MinY}, {b.MaxX, b.MaxY}, {b.MinX, b.MaxY}}
		nb := outline.Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
		for _, p := range corners {
			x, y := rot(p[0], p[1])
			nb.MinX = math.Min(nb.MinX, x)
			nb.MinY = math.Min(nb.MinY, y)
			nb.MaxX = math.Max(nb.MaxX, x)
			nb.MaxY = math.Max(nb.MaxY, y)
		}
		out.Bounds = &nb
	}
	return out
}

// ScalePow2 multiplies every coordinate of o by 2^ordX on X and 2^ordY on
// Y, a fast specialization for the common power-of-two rescale case.
func ScalePow2(o *outline.Outline, ordX, ordY int) *outline.Outline {
	sx := math.Ldexp(1, ordX)
	sy := math.Ldexp(1, ordY)
	return Transform2D(o, Matrix2D{A: sx, D: sy})
}

// ControlBox computes the axis-aligned envelope of every endpoint and
// control-point coordinate in o. It is fast but may be slack
// for curved segments whose extrema lie strictly between control points
// and endpoints.
func ControlBox(o *outline.Outline) outline.Bounds {
	b := outline.Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	grow := func(x, y float64) {
		b.MinX = math.Min(b.MinX, x)
		b.MinY = math.Min(b.MinY, y)
		b.MaxX = math.Max(b.MaxX, x)
		b.MaxY = math.Max(b.MaxY, y)
	}
	for _, c := range o.Commands {
		switch c.Op {
		case outline.OpMoveTo, outline.OpLineTo:
			grow(c.X, c.Y)
		case outline.OpQuadTo:
			grow(c.CX1, c.CY1)
			grow(c.X, c.Y)
		case outline.OpCubicTo:
			grow(c.CX1, c.CY1)
			grow(c.CX2, c.CY2)
			grow(c.X, c.Y)
		}
	}
	if math.IsInf(b.MinX, 1) {
		return outline.Bounds{}
	}
	return b
}
