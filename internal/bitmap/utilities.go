package bitmap

import "github.com/MeKo-Christian/glyphcore/internal/blur"

// ToPlane converts b into a blur.Plane of positive stride, expanding Mono
// to one byte per pixel (0/255) since the blur algorithms operate on
// byte-per-channel data.
func (b *Bitmap) ToPlane() *blur.Plane {
	mode := b.PixelMode
	channels := mode.BytesPerPixel()
	if mode == Mono {
		channels = 1
	}
	p := blur.NewPlane(b.Width, b.Rows, channels)
	for y := 0; y < b.Rows; y++ {
		row := b.Row(y)
		for x := 0; x < b.Width; x++ {
			switch mode {
			case Mono:
				byteIdx := x / 8
				bit := uint(7 - x%8)
				v := byte(0)
				if row[byteIdx]&(1<<bit) != 0 {
					v = 255
				}
				p.Pix[(y*p.Width+x)*p.Channels] = v
			default:
				for c := 0; c < channels; c++ {
					p.Pix[(y*p.Width+x)*p.Channels+c] = row[x*channels+c]
				}
			}
		}
	}
	return p
}

// FromPlane writes plane p back into b, re-packing to Mono (threshold 128)
// if that is b's mode.
func (b *Bitmap) FromPlane(p *blur.Plane) {
	for y := 0; y < b.Rows; y++ {
		row := b.Row(y)
		for x := 0; x < b.Width; x++ {
			switch b.PixelMode {
			case Mono:
				v := p.Pix[(y*p.Width+x)*p.Channels]
				byteIdx := x / 8
				bit := uint(7 - x%8)
				if v >= 128 {
					row[byteIdx] |= 1 << bit
				} else {
					row[byteIdx] &^= 1 << bit
				}
			default:
				channels := b.PixelMode.BytesPerPixel()
				for c := 0; c < channels; c++ {
					row[x*channels+c] = p.Pix[(y*p.Width+x)*p.Channels+c]
				}
			}
		}
	}
}

// Pad returns a new bitmap with `left`/`top`/`right`/`bottom` pixels of
// zero padding added around b, same pixel mode.
func Pad(b *Bitmap, left, top, right, bottom int) *Bitmap {
	nb := New(b.Width+left+right, b.Rows+top+bottom, b.PixelMode)
	for y := 0; y < b.Rows; y++ {
		for x := 0; x < b.Width; x++ {
			copyPixel(b, x, y, nb, x+left, y+top)
		}
	}
	return nb
}

// Shift translates b's content by (dx, dy) pixels into a same-size
// bitmap, dropping content that shifts out of bounds. bearingX/bearingY
// are returned as (bearingX-dx, bearingY-dy), which keeps a bearing that
// locates the bitmap's top-left relative to the glyph origin, with y
// pointing down, correct.
func Shift(b *Bitmap, dx, dy int, bearingX, bearingY int) (*Bitmap, int, int) {
	nb := New(b.Width, b.Rows, b.PixelMode)
	for y := 0; y < b.Rows; y++ {
		sy := y - dy
		if sy < 0 || sy >= b.Rows {
			continue
		}
		for x := 0; x < b.Width; x++ {
			sx := x - dx
			if sx < 0 || sx >= b.Width {
				continue
			}
			copyPixel(b, sx, sy, nb, x, y)
		}
	}
	return nb, bearingX - dx, bearingY - dy
}

func copyPixel(src *Bitmap, sx, sy int, dst *Bitmap, dx, dy int) {
	if sx < 0 || sy < 0 || sx >= src.Width || sy >= src.Rows {
		return
	}
	if dx < 0 || dy < 0 || dx >= dst.Width || dy >= dst.Rows {
		return
	}
	srow := src.Row(sy)
	drow := dst.Row(dy)
	switch src.PixelMode {
	case Mono:
		byteIdx := sx / 8
		bit := uint(7 - sx%8)
		on := srow[byteIdx]&(1<<bit) != 0
		dbyteIdx := dx / 8
		dbit := uint(7 - dx%8)
		if on {
			drow[dbyteIdx] |= 1 << dbit
		} else {
			drow[dbyteIdx] &^= 1 << dbit
		}
	default:
		n := src.PixelMode.BytesPerPixel()
		copy(drow[dx*n:dx*n+n], srow[sx*n:sx*n+n])
	}
}

// Resize scales b to newWidth x newHeight using nearest-neighbor sampling
// when bilinear is false, or bilinear interpolation otherwise. Mono is
// resized via nearest regardless, since interpolating a 1-bit mask isn't
// meaningful.
func Resize(b *Bitmap, newWidth, newHeight int, bilinear bool) *Bitmap {
	nb := New(newWidth, newHeight, b.PixelMode)
	if b.Width == 0 || b.Rows == 0 || newWidth == 0 || newHeight == 0 {
		return nb
	}

	if b.PixelMode == Mono || !bilinear {
		for y := 0; y < newHeight; y++ {
			sy := y * b.Rows / newHeight
			for x := 0; x < newWidth; x++ {
				sx := x * b.Width / newWidth
				copyPixel(b, sx, sy, nb, x, y)
			}
		}
		return nb
	}

	n := b.PixelMode.BytesPerPixel()
	for y := 0; y < newHeight; y++ {
		fy := (float64(y)+0.5)*float64(b.Rows)/float64(newHeight) - 0.5
		y0 := clamp(int(fy), 0, b.Rows-1)
		y1 := clamp(y0+1, 0, b.Rows-1)
		wy := fy - float64(y0)
		for x := 0; x < newWidth; x++ {
			fx := (float64(x)+0.5)*float64(b.Width)/float64(newWidth) - 0.5
			x0 := clamp(int(fx), 0, b.Width-1)
			x1 := clamp(x0+1, 0, b.Width-1)
			wx := fx - float64(x0)

			r00 := b.Row(y0)
			r01 := b.Row(y0)
			r10 := b.Row(y1)
			r11 := b.Row(y1)
			drow := nb.Row(y)
			for c := 0; c < n; c++ {
				v00 := float64(r00[x0*n+c])
				v01 := float64(r01[x1*n+c])
				v10 := float64(r10[x0*n+c])
				v11 := float64(r11[x1*n+c])
				top := v00 + wx*(v01-v00)
				bot := v10 + wx*(v11-v10)
				v := top + wy*(bot-top)
				drow[x*n+c] = clampByte(v)
			}
		}
	}
	return nb
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampByte(v float64) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
