// Package basics is the fixed-point domain of the rasterization core: the
// 8-bit subpixel coordinate constants and conversions everything above it
// (cell buffer, line stepper, curve flattener, decomposer) is written
// against, plus the small integer/float math helpers those hot paths use.
package basics

import "math"

// Poly subpixel scale enumeration: 8 bits of subpixel precision, 256
// subpixel units per pixel.
const (
	PolySubpixelShift = 8
	PolySubpixelScale = 1 << PolySubpixelShift
	PolySubpixelMask  = PolySubpixelScale - 1
)

// Rounding functions (from AGG's platform-specific optimizations)
func IRound(v float64) int {
	if v >= 0.0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func IFloor(v float64) int {
	return int(math.Floor(v))
}

func ICeil(v float64) int {
	return int(math.Ceil(v))
}

// ToSubpixel converts a real-valued font-unit coordinate to the
// rasterizer's 8-bit subpixel integer domain: round(v * scale * ONE_PIXEL).
func ToSubpixel(v, scale float64) int {
	return IRound(v * scale * PolySubpixelScale)
}

// TruncSubpixel returns the pixel index for a subpixel coordinate. Works
// identically for negative and nonnegative values: an arithmetic right
// shift truncates toward negative infinity, which is what "pixel index"
// means for a coordinate below the origin.
func TruncSubpixel(x int) int {
	return x >> PolySubpixelShift
}

// FracSubpixel returns the fractional part of a subpixel coordinate as a
// Euclidean (always non-negative) residue modulo ONE_PIXEL, so that
// TruncSubpixel(x)*PolySubpixelScale + FracSubpixel(x) == x for every x,
// including negative ones. A two's-complement `&` already has this
// property for power-of-two masks, but it is spelled out explicitly here
// because the property is easy to lose when porting to a language whose
// default `%` returns a signed remainder.
func FracSubpixel(x int) int {
	return x & PolySubpixelMask
}

// UpscaleToSubpixel converts a 26.6 fixed-point value (6 fractional bits,
// the hinting unit used upstream) into the rasterizer's 8-bit subpixel
// domain.
func UpscaleToSubpixel(x int) int {
	return x << (PolySubpixelShift - 6)
}

// DownscaleFromSubpixel is the inverse of UpscaleToSubpixel.
func DownscaleFromSubpixel(x int) int {
	return x >> (PolySubpixelShift - 6)
}
