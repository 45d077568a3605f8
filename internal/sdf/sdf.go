// Package sdf implements the signed-distance-field renderer: per-pixel
// minimum-distance-to-outline computation with an inside/outside sign
// from even-odd ray casting over a three-tag edge variant
// (line/quadratic/cubic). The three-channel MSDF variant lives alongside
// it in msdf.go.
package sdf

import (
	"math"

	"github.com/MeKo-Christian/glyphcore/internal/basics"
	"github.com/MeKo-Christian/glyphcore/internal/config"
	"github.com/MeKo-Christian/glyphcore/internal/outline"
)

// edgeKind tags which of the three edge shapes an edge carries.
type edgeKind uint8

const (
	edgeLine edgeKind = iota
	edgeQuad
	edgeCubic
)

// edge is one contour segment in font-unit coordinates, in whichever of
// the three shapes edgeKind selects.
type edge struct {
	kind     edgeKind
	x0, y0   float64
	cx1, cy1 float64
	cx2, cy2 float64
	x1, y1   float64
}

func lineAt(x0, y0, x1, y1, t float64) (float64, float64) {
	return x0 + (x1-x0)*t, y0 + (y1-y0)*t
}

func quadAt(x0, y0, cx, cy, x1, y1, t float64) (float64, float64) {
	u := 1 - t
	x := u*u*x0 + 2*u*t*cx + t*t*x1
	y := u*u*y0 + 2*u*t*cy + t*t*y1
	return x, y
}

func cubicAt(x0, y0, cx1, cy1, cx2, cy2, x1, y1, t float64) (float64, float64) {
	u := 1 - t
	x := u*u*u*x0 + 3*u*u*t*cx1 + 3*u*t*t*cx2 + t*t*t*x1
	y := u*u*u*y0 + 3*u*u*t*cy1 + 3*u*t*t*cy2 + t*t*t*y1
	return x, y
}

// at evaluates the edge's point at parameter t in [0,1].
func (e edge) at(t float64) (float64, float64) {
	switch e.kind {
	case edgeQuad:
		return quadAt(e.x0, e.y0, e.cx1, e.cy1, e.x1, e.y1, t)
	case edgeCubic:
		return cubicAt(e.x0, e.y0, e.cx1, e.cy1, e.cx2, e.cy2, e.x1, e.y1, t)
	default:
		return lineAt(e.x0, e.y0, e.x1, e.y1, t)
	}
}

// distanceTo returns the minimum Euclidean distance from (px,py) to e. A
// line segment is handled exactly via clamped projection; curves are
// sampled at t = i/config.SDFEdgeSampleCount for i = 0..SDFEdgeSampleCount
// (both endpoints included) rather than solved in closed form, which is accurate to well under a pixel at
// glyph-rendering sizes.
func (e edge) distanceTo(px, py float64) float64 {
	if e.kind == edgeLine {
		return math.Sqrt(basics.CalcSegmentPointSqDistance(e.x0, e.y0, e.x1, e.y1, px, py))
	}
	best := math.Inf(1)
	n := config.SDFEdgeSampleCount
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x, y := e.at(t)
		dx, dy := px-x, py-y
		d := dx*dx + dy*dy
		if d < best {
			best = d
		}
	}
	return math.Sqrt(best)
}

// buildEdges converts o's commands into per-contour edge lists, closing
// each contour implicitly the same way the rasterizer decomposer does.
// Contours stay separate so the ray-cast inside test doesn't see phantom
// segments bridging the end of one contour to the start of the next (an
// 'O' has two rings, not one).
func buildEdges(o *outline.Outline) [][]edge {
	var contours [][]edge
	var cur []edge
	var startX, startY, curX, curY float64
	open := false

	closeContour := func() {
		if open {
			if curX != startX || curY != startY {
				cur = append(cur, edge{kind: edgeLine, x0: curX, y0: curY, x1: startX, y1: startY})
			}
			if len(cur) > 0 {
				contours = append(contours, cur)
			}
			cur = nil
		}
		open = false
	}

	for _, c := range o.Commands {
		switch c.Op {
		case outline.OpMoveTo:
			closeContour()
			startX, startY = c.X, c.Y
			curX, curY = c.X, c.Y
			open = true
		case outline.OpLineTo:
			cur = append(cur, edge{kind: edgeLine, x0: curX, y0: curY, x1: c.X, y1: c.Y})
			curX, curY = c.X, c.Y
		case outline.OpQuadTo:
			cur = append(cur, edge{kind: edgeQuad, x0: curX, y0: curY, cx1: c.CX1, cy1: c.CY1, x1: c.X, y1: c.Y})
			curX, curY = c.X, c.Y
		case outline.OpCubicTo:
			cur = append(cur, edge{kind: edgeCubic, x0: curX, y0: curY, cx1: c.CX1, cy1: c.CY1, cx2: c.CX2, cy2: c.CY2, x1: c.X, y1: c.Y})
			curX, curY = c.X, c.Y
		case outline.OpClose:
			closeContour()
		}
	}
	closeContour()
	return contours
}

// flattenForRayCast samples each contour into a closed polyline ring for
// the ray-casting inside test: every edge contributes
// config.SDFInsideTestSampleCount straight segments.
func flattenForRayCast(contours [][]edge) [][][2]float64 {
	rings := make([][][2]float64, 0, len(contours))
	n := config.SDFInsideTestSampleCount
	for _, edges := range contours {
		var pts [][2]float64
		for _, e := range edges {
			for i := 0; i < n; i++ {
				t := float64(i) / float64(n)
				x, y := e.at(t)
				pts = append(pts, [2]float64{x, y})
			}
		}
		if len(pts) > 0 {
			rings = append(rings, pts)
		}
	}
	return rings
}

// inside reports whether (px,py) is inside the outline approximated by
// rings, shooting a horizontal ray to the right and counting crossings
// over every ring with the canonical strict even-odd rule
// (p0.y > py) != (p1.y > py). This is correct for simple closed outlines
// and ambiguous (but stable) for self-intersecting ones; the parity rule
// is deliberate, not a winding test.
func inside(rings [][][2]float64, px, py float64) bool {
	crossings := 0
	for _, poly := range rings {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := poly[i]
			p1 := poly[(i+1)%n]
			if (p0[1] > py) != (p1[1] > py) {
				xCross := p0[0] + (py-p0[1])/(p1[1]-p0[1])*(p1[0]-p0[0])
				if xCross > px {
					crossings++
				}
			}
		}
	}
	return crossings%2 == 1
}

// Options configures RenderSDF.
type Options struct {
	Width, Height    int
	Scale            float64
	OffsetX, OffsetY float64
	FlipY            bool
	Spread           float64
}

// RenderSDF produces a Width*Height single-channel byte buffer where each
// pixel encodes its signed distance to o's outline, 128 representing the
// boundary and Spread pixels mapped to one half of the encoding range.
// An empty outline yields an all-zero buffer.
func RenderSDF(o *outline.Outline, opt Options) []byte {
	buf := make([]byte, opt.Width*opt.Height)
	if len(o.Commands) == 0 {
		return buf
	}

	contours := buildEdges(o)
	if len(contours) == 0 {
		return buf
	}
	rings := flattenForRayCast(contours)

	spread := opt.Spread
	if spread <= 0 {
		spread = config.DefaultSDFSpread
	}

	toFontUnits := func(px, py float64) (float64, float64) {
		x := (px - opt.OffsetX) / opt.Scale
		y := (py - opt.OffsetY) / opt.Scale
		if opt.FlipY {
			y = -y
		}
		return x, y
	}

	for y := 0; y < opt.Height; y++ {
		for x := 0; x < opt.Width; x++ {
			fx, fy := toFontUnits(float64(x)+0.5, float64(y)+0.5)

			dist := math.Inf(1)
			for _, edges := range contours {
				for _, e := range edges {
					d := e.distanceTo(fx, fy)
					if d < dist {
						dist = d
					}
				}
			}
			dist *= opt.Scale

			signed := dist
			if !inside(rings, fx, fy) {
				signed = -dist
			}

			v := 128.0 + (signed/spread)*127.0
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			buf[y*opt.Width+x] = byte(math.Round(v))
		}
	}
	return buf
}
