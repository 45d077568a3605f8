package rasterizer

import (
	"github.com/MeKo-Christian/glyphcore/internal/basics"
	"github.com/MeKo-Christian/glyphcore/internal/config"
)

// Rasterizer accumulates line segments (including flattened curves) into a
// CellBuffer using the cell/area algorithm, and sweeps the result into
// coverage spans under a fill rule. All coordinates it accepts are in the
// 8-bit subpixel integer domain (basics.PolySubpixelScale units per pixel).
type Rasterizer struct {
	cb       *CellBuffer
	fillRule FillRule
	curX     int
	curY     int
}

// New creates a Rasterizer backed by a cell pool of the given size (0 uses
// config.DefaultCellPoolSize).
func New(poolSize int) *Rasterizer {
	if poolSize <= 0 {
		poolSize = config.DefaultCellPoolSize
	}
	return &Rasterizer{cb: NewCellBuffer(poolSize)}
}

// Cells exposes the underlying cell buffer, e.g. so band processing can
// reset/clip/resize it between passes.
func (r *Rasterizer) Cells() *CellBuffer { return r.cb }

// SetFillRule selects Non-zero or Even-odd for Sweep/SweepSpans/SweepDirect.
func (r *Rasterizer) SetFillRule(rule FillRule) { r.fillRule = rule }

// FillRule returns the currently configured fill rule.
func (r *Rasterizer) FillRule() FillRule { return r.fillRule }

// MoveTo starts a new subpath at the given subpixel coordinate. It does
// not touch any cells; the outline decomposer is responsible for closing
// the previous contour (if any) before calling MoveTo again.
func (r *Rasterizer) MoveTo(x, y int) {
	r.curX, r.curY = x, y
}

// LineTo accumulates a straight edge from the current point to (x, y).
func (r *Rasterizer) LineTo(x, y int) error {
	if x == r.curX && y == r.curY {
		return nil
	}
	if err := r.renderLine(r.curX, r.curY, x, y); err != nil {
		return err
	}
	r.curX, r.curY = x, y
	return nil
}

// QuadTo flattens a quadratic Bézier from the current point through
// control (cx, cy) to (x, y) using adaptive subdivision.
func (r *Rasterizer) QuadTo(cx, cy, x, y int) error {
	return r.flattenQuad(r.curX, r.curY, cx, cy, x, y, 0)
}

// CubicTo flattens a cubic Bézier from the current point through controls
// (cx1, cy1) and (cx2, cy2) to (x, y).
func (r *Rasterizer) CubicTo(cx1, cy1, cx2, cy2, x, y int) error {
	return r.flattenCubic(r.curX, r.curY, cx1, cy1, cx2, cy2, x, y, 0)
}

// CurrentPoint returns the current subpixel position.
func (r *Rasterizer) CurrentPoint() (int, int) { return r.curX, r.curY }

// renderLine implements the AGG cell/area line-stepping algorithm: one
// call to renderHLine when the segment stays within a single scanline, a
// fast path for purely vertical segments, and a scanline-by-scanline walk
// computing each row's x crossing via MulDiv otherwise.
func (r *Rasterizer) renderLine(x1, y1, x2, y2 int) error {
	ey1 := basics.TruncSubpixel(y1)
	ey2 := basics.TruncSubpixel(y2)
	fy1 := basics.FracSubpixel(y1)
	fy2 := basics.FracSubpixel(y2)

	dx := x2 - x1
	dy := y2 - y1

	if ey1 == ey2 {
		return r.renderHLine(ey1, x1, fy1, x2, fy2)
	}

	incr := 1

	if dx == 0 {
		ex := basics.TruncSubpixel(x1)
		twoFx := basics.FracSubpixel(x1) << 1
		first := basics.PolySubpixelScale
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		if err := r.cb.SetCurrentCell(ex, ey1); err != nil {
			return err
		}
		r.cb.AddArea(twoFx*delta, delta)
		ey1 += incr
		if err := r.cb.SetCurrentCell(ex, ey1); err != nil {
			return err
		}

		delta = first + first - basics.PolySubpixelScale
		areaStep := twoFx * delta
		for ey1 != ey2 {
			r.cb.AddArea(areaStep, delta)
			ey1 += incr
			if err := r.cb.SetCurrentCell(ex, ey1); err != nil {
				return err
			}
		}
		delta = fy2 - basics.PolySubpixelScale + first
		r.cb.AddArea(twoFx*delta, delta)
		return nil
	}

	var p, first int
	absDy := dy
	if dy > 0 {
		p = basics.PolySubpixelScale - fy1
		first = basics.PolySubpixelScale
	} else {
		p = fy1
		first = 0
		incr = -1
		absDy = -dy
	}

	xDelta := int(basics.MulDiv(int64(dx), int64(p), int64(absDy)))
	xFrom := x1 + xDelta
	if err := r.renderHLine(ey1, x1, fy1, xFrom, first); err != nil {
		return err
	}
	ey1 += incr
	if err := r.cb.SetCurrentCell(basics.TruncSubpixel(xFrom), ey1); err != nil {
		return err
	}

	if ey1 != ey2 {
		lift := int(basics.MulDiv(int64(dx), int64(basics.PolySubpixelScale), int64(absDy)))
		for ey1 != ey2 {
			xTo := xFrom + lift
			if err := r.renderHLine(ey1, xFrom, basics.PolySubpixelScale-first, xTo, first); err != nil {
				return err
			}
			xFrom = xTo
			ey1 += incr
			if err := r.cb.SetCurrentCell(basics.TruncSubpixel(xFrom), ey1); err != nil {
				return err
			}
		}
	}

	return r.renderHLine(ey1, xFrom, basics.PolySubpixelScale-first, x2, fy2)
}

// renderHLine accumulates the portion of a segment that falls on a single
// scanline ey, stepping column by column when it spans more than one.
func (r *Rasterizer) renderHLine(ey, x1, fy1, x2, fy2 int) error {
	ex1 := basics.TruncSubpixel(x1)
	ex2 := basics.TruncSubpixel(x2)
	fx1 := basics.FracSubpixel(x1)
	fx2 := basics.FracSubpixel(x2)

	if fy1 == fy2 {
		return r.cb.SetCurrentCell(ex2, ey)
	}

	if ex1 == ex2 {
		if err := r.cb.SetCurrentCell(ex1, ey); err != nil {
			return err
		}
		delta := fy2 - fy1
		r.cb.AddArea((fx1+fx2)*delta, delta)
		return nil
	}

	dx := x2 - x1
	dy := fy2 - fy1
	incr := 1
	var p, first int
	if dx > 0 {
		p = basics.PolySubpixelScale - fx1
		first = basics.PolySubpixelScale
	} else {
		p = fx1
		first = 0
		incr = -1
		dx = -dx
	}

	delta := int(basics.MulDiv(int64(dy), int64(p), int64(dx)))
	if err := r.cb.SetCurrentCell(ex1, ey); err != nil {
		return err
	}
	r.cb.AddArea((fx1+first)*delta, delta)

	y := fy1 + delta
	ex1 += incr
	if err := r.cb.SetCurrentCell(ex1, ey); err != nil {
		return err
	}

	if ex1 != ex2 {
		lift := int(basics.MulDiv(int64(dy), int64(basics.PolySubpixelScale), int64(dx)))
		for ex1 != ex2 {
			r.cb.AddArea(basics.PolySubpixelScale*lift, lift)
			y += lift
			ex1 += incr
			if err := r.cb.SetCurrentCell(ex1, ey); err != nil {
				return err
			}
		}
	}

	delta = fy2 - y
	r.cb.AddArea((fx2+basics.PolySubpixelScale-first)*delta, delta)
	return nil
}
