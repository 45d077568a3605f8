package sdf

import (
	"math"

	"github.com/MeKo-Christian/glyphcore/internal/outline"
)

// RenderMSDF produces a 3-channel (R,G,B) multi-channel signed-distance
// field buffer (width*height*3 bytes, interleaved). Each contour edge is
// assigned one of three colors by its position in traversal order, a
// turn-based assignment simpler than msdfgen's corner-angle search, and
// each channel tracks the minimum distance among edges of its color. The
// median of the three channels reconstructs the outline with sharper
// corners than a single-channel field.
func RenderMSDF(o *outline.Outline, opt Options) []byte {
	buf := make([]byte, opt.Width*opt.Height*3)
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
		spread = 8
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
			in := inside(rings, fx, fy)

			var chanDist [3]float64
			for c := range chanDist {
				chanDist[c] = math.Inf(1)
			}
			for _, edges := range contours {
				for i, e := range edges {
					d := e.distanceTo(fx, fy) * opt.Scale
					c := i % 3
					if d < chanDist[c] {
						chanDist[c] = d
					}
				}
			}

			off := (y*opt.Width + x) * 3
			for c := 0; c < 3; c++ {
				d := chanDist[c]
				if math.IsInf(d, 1) {
					d = spread
				}
				signed := d
				if !in {
					signed = -d
				}
				v := 128.0 + (signed/spread)*127.0
				if v < 0 {
					v = 0
				} else if v > 255 {
					v = 255
				}
				buf[off+c] = byte(math.Round(v))
			}
		}
	}
	return buf
}

