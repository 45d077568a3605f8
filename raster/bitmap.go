package raster

import "github.com/MeKo-Christian/glyphcore/internal/bitmap"

// NewBitmap allocates a zero-filled bitmap with a positive, tightly
// packed pitch.
func NewBitmap(width, rows int, mode PixelMode) *Bitmap { return bitmap.New(width, rows, mode) }

// CompositeOp selects the arithmetic Composite uses to combine a source
// bitmap onto a destination bitmap.
type CompositeOp = bitmap.CompositeOp

const (
	Over           = bitmap.Over
	Additive       = bitmap.Additive
	Subtractive    = bitmap.Subtractive
	Multiplicative = bitmap.Multiplicative
	Max            = bitmap.Max
)

// Composite blends src onto dst at (dstX, dstY) in place under op. Both
// bitmaps must share a pixel mode.
func Composite(dst, src *Bitmap, dstX, dstY int, op CompositeOp) {
	bitmap.Composite(dst, src, dstX, dstY, op)
}

// FillProducer and LinearGradient are the generic fill-sampling seam
//: color/gradient rendering proper is out of this core's scope,
// but downstream callers compositing a fill through a rasterized mask
// plug in through this interface.
type (
	FillProducer  = bitmap.FillProducer
	LinearGradient = bitmap.LinearGradient
)

// Pad returns a new bitmap with zero padding added around b.
func Pad(b *Bitmap, left, top, right, bottom int) *Bitmap {
	return bitmap.Pad(b, left, top, right, bottom)
}

// Shift translates b's content by (dx, dy) pixels and returns the bearing
// decreased by (dx, dy), as suits a bearing that locates the bitmap's
// top-left relative to the glyph origin with y pointing down.
func Shift(b *Bitmap, dx, dy, bearingX, bearingY int) (*Bitmap, int, int) {
	return bitmap.Shift(b, dx, dy, bearingX, bearingY)
}

// Resize scales b to newWidth x newHeight, nearest-neighbor or bilinear.
func Resize(b *Bitmap, newWidth, newHeight int, bilinear bool) *Bitmap {
	return bitmap.Resize(b, newWidth, newHeight, bilinear)
}

// ShearX and ShearY apply a 26.6 fixed-point per-row/per-column subpixel
// shear to b.
func ShearX(b *Bitmap, perRow26_6 int) *Bitmap { return bitmap.ShearX(b, perRow26_6) }
func ShearY(b *Bitmap, perCol26_6 int) *Bitmap { return bitmap.ShearY(b, perCol26_6) }
