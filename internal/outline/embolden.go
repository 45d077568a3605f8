package outline

import "github.com/MeKo-Christian/glyphcore/internal/basics"

// EmboldenPath translates each contour point along its outward normal by
// strength font units, the outline-side counterpart of the bitmap dilate
// in internal/blur. The normal at a
// point is estimated from its neighboring endpoints; a command's control
// points move with its endpoint's normal so curve shape is preserved under
// small strengths. Vector lengths use the rasterizer's cheap hypot
// estimate, which is accurate enough for a normal-offset heuristic.
func EmboldenPath(o *Outline, strength float64) *Outline {
	if strength == 0 {
		return o
	}

	out := &Outline{Commands: make([]Command, len(o.Commands)), Flags: o.Flags}
	copy(out.Commands, o.Commands)

	n := len(out.Commands)
	endpointIdx := make([]int, 0, n)
	for i, c := range out.Commands {
		if c.Op == OpMoveTo || c.Op == OpLineTo || c.Op == OpQuadTo || c.Op == OpCubicTo {
			endpointIdx = append(endpointIdx, i)
		}
	}

	normalAt := func(pos int) (float64, float64) {
		m := len(endpointIdx)
		if m < 2 {
			return 0, 0
		}
		prev := endpointIdx[(pos-1+m)%m]
		next := endpointIdx[(pos+1)%m]
		x0, y0 := out.Commands[prev].X, out.Commands[prev].Y
		x1, y1 := out.Commands[next].X, out.Commands[next].Y
		dx, dy := x1-x0, y1-y0
		l := basics.Hypot(dx, dy)
		if l < 1e-9 {
			return 0, 0
		}
		return dy / l, -dx / l
	}

	for i, pos := range endpointIdx {
		nx, ny := normalAt(i)
		c := &out.Commands[pos]
		c.X += nx * strength
		c.Y += ny * strength
		switch c.Op {
		case OpQuadTo:
			c.CX1 += nx * strength
			c.CY1 += ny * strength
		case OpCubicTo:
			c.CX1 += nx * strength
			c.CY1 += ny * strength
			c.CX2 += nx * strength
			c.CY2 += ny * strength
		}
	}
	return out
}
