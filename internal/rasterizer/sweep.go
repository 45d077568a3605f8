// Sweep: converts the cell buffer's per-scanline cell lists into coverage
// spans under a fill rule, either buffered into Span slices for a
// caller-supplied callback or pushed directly to a CoverageSink (the
// bitmap writer lives in internal/bitmap and implements this interface).
package rasterizer

import (
	"github.com/MeKo-Christian/glyphcore/internal/basics"
	"github.com/MeKo-Christian/glyphcore/internal/config"
)

// Span is a single run of constant coverage on one scanline.
type Span struct {
	X        int
	Len      int
	Coverage uint8
}

// CoverageSink receives coverage spans one at a time. Bitmap
// writers, SDF accumulators, or test harnesses can all implement it.
type CoverageSink interface {
	BlendSpan(y, x, length int, coverage uint8)
}

type sinkFunc func(y, x, length int, coverage uint8)

func (f sinkFunc) BlendSpan(y, x, length int, coverage uint8) { f(y, x, length, coverage) }

// scanlineSpans computes the coverage spans for a single scanline's sorted
// cell list, clipped to [minX,maxX), appending to dst and returning it:
// fill between cells from the running cover, write each cell's own column
// from its area, fill to the end.
func scanlineSpans(cells []cellView, rule FillRule, minX, maxX int, dst []Span) []Span {
	cover := 0
	prevX := minX

	emit := func(x, length int, cov int) {
		if length <= 0 {
			return
		}
		c := ApplyFillRule(cov, rule)
		if c == 0 {
			return
		}
		dst = append(dst, Span{X: x, Len: length, Coverage: uint8(c)})
	}

	for _, c := range cells {
		cx := c.X
		if cx >= maxX {
			break
		}
		if cx > prevX {
			lo := prevX
			if lo < minX {
				lo = minX
			}
			emit(lo, cx-lo, cover)
		}
		// The cell's own cover joins the running total before its column
		// is written: an edge on the column's left boundary contributes
		// zero area but must still count toward this pixel.
		cover += c.Cover
		if cx >= minX {
			edgeCover := ((2*basics.PolySubpixelScale*cover - c.Area) >> (basics.PolySubpixelShift + 1))
			emit(cx, 1, edgeCover)
		}
		if cx+1 > prevX {
			prevX = cx + 1
		}
	}
	if prevX < maxX {
		emit(prevX, maxX-prevX, cover)
	}
	return dst
}

// SweepSpans walks every non-empty scanline in the cell buffer's current
// band and invokes cb once per scanline with that scanline's span list,
// clipped to [minX,maxX). The slice passed to cb is reused across calls
// and must not be retained past the callback.
func (r *Rasterizer) SweepSpans(minX, maxX int, cb func(y int, spans []Span)) {
	var spanBuf []Span
	var cellBuf []cellView
	cellBuf = r.cb.ForEachScanline(cellBuf, func(y int, cells []cellView) {
		spanBuf = scanlineSpans(cells, r.fillRule, minX, maxX, spanBuf[:0])
		if len(spanBuf) > 0 {
			cb(y, spanBuf)
		}
	})
}

// SweepDirect behaves like SweepSpans but buffers up to
// config.SweepSpanBufferSize spans before flushing. Functionally it
// produces the same spans as SweepSpans; the buffering only changes the
// granularity of the callback invocations within a scanline.
func (r *Rasterizer) SweepDirect(minX, maxX int, cb func(y int, spans []Span)) {
	var spanBuf []Span
	var cellBuf []cellView
	cellBuf = r.cb.ForEachScanline(cellBuf, func(y int, cells []cellView) {
		all := scanlineSpans(cells, r.fillRule, minX, maxX, spanBuf[:0])
		for len(all) > 0 {
			n := len(all)
			if n > config.SweepSpanBufferSize {
				n = config.SweepSpanBufferSize
			}
			cb(y, all[:n])
			all = all[n:]
		}
		spanBuf = all[:0]
	})
}

// Sweep pushes every scanline's spans directly to sink, clipped to
// [minX,maxX). This is the path the top-level Rasterize flow uses to
// write into a Bitmap.
func (r *Rasterizer) Sweep(minX, maxX int, sink CoverageSink) {
	r.SweepSpans(minX, maxX, func(y int, spans []Span) {
		for _, s := range spans {
			sink.BlendSpan(y, s.X, s.Len, s.Coverage)
		}
	})
}
