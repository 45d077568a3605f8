package outline

import "github.com/MeKo-Christian/glyphcore/internal/basics"

// Decomposer replays validated Outline commands into a rasterizer sink in
// the 8-bit subpixel integer domain, scaling and offsetting each font-unit
// coordinate and honoring an implicit close on MoveTo / end-of-outline.
type Decomposer struct {
	Scale            float64
	OffsetX, OffsetY float64
	FlipY            bool
}

// Sink is the subset of *rasterizer.Rasterizer the decomposer drives. It
// is expressed as an interface here (rather than importing the concrete
// type) purely to keep this package's dependency on rasterizer to its
// method surface; the production caller always passes a *rasterizer.Rasterizer.
type Sink interface {
	MoveTo(x, y int)
	LineTo(x, y int) error
	QuadTo(cx, cy, x, y int) error
	CubicTo(cx1, cy1, cx2, cy2, x, y int) error
}

// toSub converts a font-unit coordinate to the subpixel integer domain:
// round((v*scale + offset) * ONE_PIXEL), negating Y first when flipY is
// set so font Y-up becomes bitmap Y-down.
func (d *Decomposer) toSub(x, y float64) (int, int) {
	if d.FlipY {
		y = -y
	}
	px := basics.IRound((x*d.Scale + d.OffsetX) * basics.PolySubpixelScale)
	py := basics.IRound((y*d.Scale + d.OffsetY) * basics.PolySubpixelScale)
	return px, py
}

// Decompose iterates o.Commands, converting coordinates via
// round((v*scale + offset) * ONE_PIXEL) and driving sink. Every
// LineTo/QuadTo/CubicTo/Close is assumed already validated to be preceded
// by a MoveTo (see Validate). A MoveTo that interrupts an open contour
// closes it with a straight line to the contour's start; any contour still
// open at the end of the outline is closed the same way.
func (d *Decomposer) Decompose(sink Sink, o *Outline) error {
	var startX, startY int
	inContour := false

	closeContour := func() error {
		if inContour {
			if err := sink.LineTo(startX, startY); err != nil {
				return err
			}
			inContour = false
		}
		return nil
	}

	for _, c := range o.Commands {
		switch c.Op {
		case OpMoveTo:
			if err := closeContour(); err != nil {
				return err
			}
			x, y := d.toSub(c.X, c.Y)
			sink.MoveTo(x, y)
			startX, startY = x, y
			inContour = true
		case OpLineTo:
			x, y := d.toSub(c.X, c.Y)
			if err := sink.LineTo(x, y); err != nil {
				return err
			}
		case OpQuadTo:
			cx, cy := d.toSub(c.CX1, c.CY1)
			x, y := d.toSub(c.X, c.Y)
			if err := sink.QuadTo(cx, cy, x, y); err != nil {
				return err
			}
		case OpCubicTo:
			cx1, cy1 := d.toSub(c.CX1, c.CY1)
			cx2, cy2 := d.toSub(c.CX2, c.CY2)
			x, y := d.toSub(c.X, c.Y)
			if err := sink.CubicTo(cx1, cy1, cx2, cy2, x, y); err != nil {
				return err
			}
		case OpClose:
			if err := closeContour(); err != nil {
				return err
			}
		}
	}
	return closeContour()
}
