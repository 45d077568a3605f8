package raster

import (
	"github.com/MeKo-Christian/glyphcore/internal/outline"
	"github.com/MeKo-Christian/glyphcore/internal/sdf"
)

// RenderSDF produces a single-channel signed-distance-field buffer for o
//: Width*Height bytes, 128 at the outline boundary, Spread
// font-unit pixels mapped to one half of the encoding range. An empty or
// invalid outline yields an all-zero buffer rather than an error, since a
// blank SDF composites harmlessly.
func RenderSDF(o *Outline, opt SDFOptions) []byte {
	if verr, _ := outline.Validate(o, true); verr == outline.InvalidOutline {
		return make([]byte, opt.Width*opt.Height)
	}
	return sdf.RenderSDF(o, sdf.Options{
		Width: opt.Width, Height: opt.Height,
		Scale: scaleOrOne(opt.Scale), OffsetX: opt.OffsetX, OffsetY: opt.OffsetY,
		FlipY: opt.FlipY, Spread: opt.Spread,
	})
}

// RenderMSDF produces a 3-channel (R,G,B interleaved) multi-channel
// signed-distance-field buffer for o, the sharp-corner variant of
// RenderSDF: the median of the three channels reconstructs corners a
// single-channel field rounds off.
func RenderMSDF(o *Outline, opt SDFOptions) []byte {
	return sdf.RenderMSDF(o, sdf.Options{
		Width: opt.Width, Height: opt.Height,
		Scale: scaleOrOne(opt.Scale), OffsetX: opt.OffsetX, OffsetY: opt.OffsetY,
		FlipY: opt.FlipY, Spread: opt.Spread,
	})
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
