package xform

import "github.com/MeKo-Christian/glyphcore/internal/outline"

// ViewportFit computes the uniform scale+translate Matrix2D that maps o's
// control box into a boxWidth x boxHeight pixel box with the given
// padding on every side, preserving aspect ratio: the axis with the
// smaller available-size-to-extent ratio is fitted exactly, the other
// centered. A degenerate (zero-area) control
// box returns Identity2D.
func ViewportFit(o *outline.Outline, boxWidth, boxHeight, padding float64) Matrix2D {
	cb := ControlBox(o)
	w := cb.MaxX - cb.MinX
	h := cb.MaxY - cb.MinY
	if w <= 0 || h <= 0 {
		return Identity2D()
	}

	availW := boxWidth - 2*padding
	availH := boxHeight - 2*padding
	if availW <= 0 || availH <= 0 {
		return Identity2D()
	}

	scale := availW / w
	if s := availH / h; s < scale {
		scale = s
	}

	scaledW := w * scale
	scaledH := h * scale
	offX := padding + (availW-scaledW)/2 - cb.MinX*scale
	offY := padding + (availH-scaledH)/2 - cb.MinY*scale

	return Matrix2D{A: scale, D: scale, TX: offX, TY: offY}
}
