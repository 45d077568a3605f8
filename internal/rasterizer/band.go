// Band processing: bounded-memory rasterization of tall glyphs by
// splitting the target into vertical bands, each rendered with its own
// cell-pool pass, and recovering from a pool overflow by bisecting the
// offending band in X then Y, the retry loop FreeType's ftgrays.c runs
// around its own cell pool.
package rasterizer

import "github.com/MeKo-Christian/glyphcore/internal/config"

// Band describes one rectangular region of a bisection work stack.
type Band struct {
	MinX, MinY, MaxX, MaxY int
	Depth                  int
}

// DecomposeFunc replays an entire outline into r, in the coordinate frame
// already configured on r's cell buffer (band bounds + clip). It must be
// safe to call repeatedly: band processing calls it once per band attempt,
// including retries after a bisection.
type DecomposeFunc func(r *Rasterizer) error

// RenderBanded rasterizes [minX,minY)-[maxX,maxY) by an initial set of
// horizontal slabs, decomposing the outline fresh into each band and
// sweeping successful bands to sink. A band whose decomposition overflows
// the cell pool is bisected (X first, then Y) and retried; a band that
// overflows again past config.MaxBisectionDepth is dropped, and onDrop (if
// non-nil) is invoked so the caller can log it.
func RenderBanded(r *Rasterizer, minX, minY, maxX, maxY int, decompose DecomposeFunc, sink CoverageSink, onDrop func(Band)) {
	initialHeight := config.BandHeightThreshold / 4
	if initialHeight < 1 {
		initialHeight = 1
	}

	var stack []Band
	for y := minY; y < maxY; y += initialHeight {
		top := y + initialHeight
		if top > maxY {
			top = maxY
		}
		stack = append(stack, Band{MinX: minX, MinY: y, MaxX: maxX, MaxY: top})
	}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if b.MinX >= b.MaxX || b.MinY >= b.MaxY {
			continue
		}

		r.Cells().SetBandBounds(b.MinY, b.MaxY)
		r.Cells().SetClip(b.MinX, b.MinY, b.MaxX, b.MaxY)

		err := decompose(r)
		if err == nil {
			r.Sweep(b.MinX, b.MaxX, sink)
			continue
		}

		if b.Depth >= config.MaxBisectionDepth {
			if onDrop != nil {
				onDrop(b)
			}
			continue
		}

		stack = append(stack, bisect(b)...)
	}
}

// bisect splits a band in X if it is more than one pixel wide, else in Y.
func bisect(b Band) []Band {
	depth := b.Depth + 1
	if b.MaxX-b.MinX > 1 {
		mid := b.MinX + (b.MaxX-b.MinX)/2
		return []Band{
			{MinX: b.MinX, MinY: b.MinY, MaxX: mid, MaxY: b.MaxY, Depth: depth},
			{MinX: mid, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY, Depth: depth},
		}
	}
	if b.MaxY-b.MinY > 1 {
		mid := b.MinY + (b.MaxY-b.MinY)/2
		return []Band{
			{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: mid, Depth: depth},
			{MinX: b.MinX, MinY: mid, MaxX: b.MaxX, MaxY: b.MaxY, Depth: depth},
		}
	}
	return []Band{{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY, Depth: depth}}
}
