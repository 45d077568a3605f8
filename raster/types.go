// Package raster is the public API of the glyph rasterization core: it
// re-exports the data model (Outline, Bitmap, RasterizedGlyph) from their
// owning internal packages and exposes the top-level Rasterize/
// RasterizeAuto/RenderSDF/RenderMSDF/blur entry points, keeping the
// engine itself under internal/.
package raster

import (
	"golang.org/x/image/math/fixed"

	"github.com/MeKo-Christian/glyphcore/internal/bitmap"
	"github.com/MeKo-Christian/glyphcore/internal/outline"
	"github.com/MeKo-Christian/glyphcore/internal/rasterizer"
)

// Outline command tags.
type Op = outline.Op

const (
	MoveTo  = outline.OpMoveTo
	LineTo  = outline.OpLineTo
	QuadTo  = outline.OpQuadTo
	CubicTo = outline.OpCubicTo
	Close   = outline.OpClose
)

// Command, Outline, Bounds and the EvenOddFill flag are outline's public
// data model, re-exported at the root.
type (
	Command = outline.Command
	Outline = outline.Outline
	Bounds  = outline.Bounds
	Flag    = outline.Flag
)

const EvenOddFill = outline.EvenOddFill

// OutlineError is the three-valued error outline validation reports.
type OutlineError = outline.Error

const (
	Ok             = outline.Ok
	EmptyOutline   = outline.EmptyOutline
	InvalidOutline = outline.InvalidOutline
)

// PixelMode and Bitmap are bitmap's public data model.
type (
	PixelMode = bitmap.PixelMode
	Bitmap    = bitmap.Bitmap
)

const (
	Mono = bitmap.Mono
	Gray = bitmap.Gray
	LCD  = bitmap.LCD
	LCDV = bitmap.LCDV
	RGBA = bitmap.RGBA
)

// FillRule selects Non-zero or Even-odd winding interpretation.
type FillRule = rasterizer.FillRule

const (
	NonZero FillRule = rasterizer.FillNonZero
	EvenOdd FillRule = rasterizer.FillEvenOdd
)

// Band and PixelBounds are re-exported so callers of RasterizeOptions's
// OnDroppedBand hook and RasterizeAuto's sizing don't need to import the
// internal packages directly.
type (
	Band        = rasterizer.Band
	PixelBounds = outline.PixelBounds
)

// RasterizedGlyph is a bitmap plus its integer bearings: BearingX is the
// horizontal distance from the glyph origin to the bitmap's left edge
// (negative when that edge lies left of the origin), and BearingY is the
// distance from the glyph origin up to the bitmap's top edge.
type RasterizedGlyph struct {
	Bitmap             *Bitmap
	BearingX, BearingY int
}

// Bearing26_6 returns the bearing as a 26.6 fixed-point point, the unit
// upstream hinting and metrics code exchanges glyph positions in.
func (g *RasterizedGlyph) Bearing26_6() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(g.BearingX), Y: fixed.I(g.BearingY)}
}
