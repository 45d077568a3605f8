package raster

import (
	"log"

	"github.com/MeKo-Christian/glyphcore/internal/bitmap"
	"github.com/MeKo-Christian/glyphcore/internal/config"
	"github.com/MeKo-Christian/glyphcore/internal/outline"
	"github.com/MeKo-Christian/glyphcore/internal/rasterizer"
)

// logDroppedBand is the default OnDroppedBand handler: a band that still
// overflows the cell pool at the bisection depth cap is pathological
// input, worth a warning but not a failed call.
func logDroppedBand(b Band) {
	log.Printf("raster: dropping band [%d,%d)x[%d,%d) at bisection depth %d: cell pool exhausted",
		b.MinX, b.MaxX, b.MinY, b.MaxY, b.Depth)
}

// Rasterize validates o, decomposes it into the subpixel integer domain
// under opt, and sweeps coverage into a freshly allocated Bitmap. Tall
// targets (Height above config.BandHeightThreshold) are rendered banded
// for bounded cell-pool memory; everything else is a single pass. An
// empty outline yields a blank bitmap rather than an error.
func Rasterize(o *Outline, opt RasterizeOptions) (*Bitmap, error) {
	if verr, _ := outline.Validate(o, true); verr == outline.InvalidOutline {
		return nil, verr
	}

	bm := bitmap.New(opt.Width, opt.Height, opt.PixelMode)
	bm.GammaFunc = opt.GammaFunc
	if len(o.Commands) == 0 {
		return bm, nil
	}

	rule := outline.SelectFillRule(o)
	dec := &outline.Decomposer{Scale: scaleOrOne(opt.Scale), OffsetX: opt.OffsetX, OffsetY: opt.OffsetY, FlipY: opt.FlipY}

	onDrop := opt.OnDroppedBand
	if onDrop == nil {
		onDrop = logDroppedBand
	}

	if opt.Height > config.BandHeightThreshold {
		r := rasterizer.New(0)
		r.SetFillRule(rule)
		rasterizer.RenderBanded(r, 0, 0, opt.Width, opt.Height,
			func(rr *rasterizer.Rasterizer) error { return dec.Decompose(rr, o) },
			bm, onDrop)
		return bm, nil
	}

	r := rasterizer.New(0)
	r.SetFillRule(rule)
	r.Cells().SetBandBounds(0, opt.Height)
	r.Cells().SetClip(0, 0, opt.Width, opt.Height)
	if err := dec.Decompose(r, o); err != nil {
		// A single-pass decomposition that overflows the cell pool falls
		// back to banded processing rather than failing the call.
		r2 := rasterizer.New(0)
		r2.SetFillRule(rule)
		rasterizer.RenderBanded(r2, 0, 0, opt.Width, opt.Height,
			func(rr *rasterizer.Rasterizer) error { return dec.Decompose(rr, o) },
			bm, onDrop)
		return bm, nil
	}
	r.Sweep(0, opt.Width, bm)
	return bm, nil
}

// RasterizeAuto sizes the bitmap to o's own bounds plus opt.Padding on
// every side and rasterizes into it, returning the glyph's bearings
// (BearingX from the outline's origin to the bitmap's left edge, BearingY
// from the origin up to the bitmap's top edge) so callers can composite
// it back at the correct pen position.
func RasterizeAuto(o *Outline, opt AutoOptions) (*RasterizedGlyph, error) {
	if verr, _ := outline.Validate(o, true); verr == outline.InvalidOutline {
		return nil, verr
	}

	if len(o.Commands) == 0 {
		bm := bitmap.New(2*opt.Padding, 2*opt.Padding, opt.PixelMode)
		return &RasterizedGlyph{Bitmap: bm, BearingX: -opt.Padding, BearingY: -opt.Padding}, nil
	}

	scale := scaleOrOne(opt.Scale)
	pb := outline.GetPathBounds(o, scale, opt.FlipY, false)
	width := pb.MaxX - pb.MinX + 2*opt.Padding
	height := pb.MaxY - pb.MinY + 2*opt.Padding
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	ropt := RasterizeOptions{
		Width:         width,
		Height:        height,
		Scale:         scale,
		OffsetX:       float64(opt.Padding - pb.MinX),
		OffsetY:       float64(opt.Padding - pb.MinY),
		PixelMode:     opt.PixelMode,
		FlipY:         opt.FlipY,
		GammaFunc:     opt.GammaFunc,
		OnDroppedBand: opt.OnDroppedBand,
	}
	bm, err := Rasterize(o, ropt)
	if err != nil {
		return nil, err
	}
	return &RasterizedGlyph{
		Bitmap:   bm,
		BearingX: pb.MinX - opt.Padding,
		BearingY: pb.MinY - opt.Padding,
	}, nil
}
