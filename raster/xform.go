package raster

import (
	"github.com/MeKo-Christian/glyphcore/internal/outline"
	"github.com/MeKo-Christian/glyphcore/internal/xform"
)

// Matrix2D and Matrix3x3 are xform's affine and perspective transforms,
// re-exported at the root.
type (
	Matrix2D  = xform.Matrix2D
	Matrix3x3 = xform.Matrix3x3
)

func Identity2D() Matrix2D                { return xform.Identity2D() }
func Translate2D(tx, ty float64) Matrix2D { return xform.Translate2D(tx, ty) }
func Scale2D(sx, sy float64) Matrix2D     { return xform.Scale2D(sx, sy) }
func Rotate2D(angle float64) Matrix2D     { return xform.Rotate2D(angle) }
func Identity3D() Matrix3x3               { return xform.Identity3D() }
func FromMatrix2D(m Matrix2D) Matrix3x3   { return xform.FromMatrix2D(m) }

// Transform2D and Transform3D apply a transform to every coordinate of a
// copy of o. Transform2D also recomputes the bounding box where present;
// Transform3D leaves the result's Bounds nil.
func Transform2D(o *Outline, m Matrix2D) *Outline  { return xform.Transform2D(o, m) }
func Transform3D(o *Outline, m Matrix3x3) *Outline { return xform.Transform3D(o, m) }

// Rotate90 rotates o 90 degrees counter-clockwise about (offX, offY) via a
// fast specialization that avoids a general matrix multiply.
func Rotate90(o *Outline, offX, offY float64) *Outline { return xform.Rotate90(o, offX, offY) }

// ScalePow2 multiplies every coordinate of o by 2^ordX on X and 2^ordY on Y.
func ScalePow2(o *Outline, ordX, ordY int) *Outline { return xform.ScalePow2(o, ordX, ordY) }

// ControlBox returns the fast (possibly slack for curves) envelope of o's
// endpoints and control points.
func ControlBox(o *Outline) Bounds { return xform.ControlBox(o) }

// TightBounds returns o's exact axis-aligned bounding box, including
// Bézier extrema.
func TightBounds(o *Outline) Bounds { return xform.TightBounds(o) }

// EmboldenOutline offsets every contour point along its estimated outward
// normal by strength font units; the bitmap-side counterpart is Embolden
// in blur.go.
func EmboldenOutline(o *Outline, strength float64) *Outline {
	return outline.EmboldenPath(o, strength)
}

// ViewportFit computes the uniform scale+translate transform that fits
// o's control box into a boxWidth x boxHeight pixel box with padding,
// preserving aspect ratio.
func ViewportFit(o *Outline, boxWidth, boxHeight, padding float64) Matrix2D {
	return xform.ViewportFit(o, boxWidth, boxHeight, padding)
}

// GetPathBounds computes o's pixel-space bounding box at the given scale,
// used internally by RasterizeAuto and available to callers that need to
// size their own buffers.
func GetPathBounds(o *Outline, scale float64, flipY, roundToGrid bool) PixelBounds {
	return outline.GetPathBounds(o, scale, flipY, roundToGrid)
}
