package bitmap

// ShearX shears b horizontally: row y is shifted right by
// (perRow26_6 * y) >> 6 whole pixels plus a fractional bilinear blend of
// the remaining 26.6 fraction. Only Gray/LCD/LCD_V/RGBA are shifted with
// interpolation; Mono rounds the fraction to the nearest whole pixel.
func ShearX(b *Bitmap, perRow26_6 int) *Bitmap {
	nb := New(b.Width, b.Rows, b.PixelMode)
	n := b.PixelMode.BytesPerPixel()
	for y := 0; y < b.Rows; y++ {
		total := perRow26_6 * y
		whole := total >> 6
		frac := total & 63

		if b.PixelMode == Mono {
			if frac >= 32 {
				whole++
			}
			for x := 0; x < b.Width; x++ {
				copyPixel(b, x-whole, y, nb, x, y)
			}
			continue
		}

		srow := b.Row(y)
		drow := nb.Row(y)
		fw := float64(frac) / 64.0
		for x := 0; x < b.Width; x++ {
			sx0 := x - whole
			sx1 := sx0 - 1
			for c := 0; c < n; c++ {
				v0 := sampleOrZero(srow, sx0, c, n, b.Width)
				v1 := sampleOrZero(srow, sx1, c, n, b.Width)
				v := (1-fw)*v0 + fw*v1
				drow[x*n+c] = clampByte(v)
			}
		}
	}
	return nb
}

// ShearY is ShearX's vertical counterpart: column x is shifted down by
// (perCol26_6 * x) >> 6 whole pixels plus a fractional blend.
func ShearY(b *Bitmap, perCol26_6 int) *Bitmap {
	nb := New(b.Width, b.Rows, b.PixelMode)
	n := b.PixelMode.BytesPerPixel()
	for x := 0; x < b.Width; x++ {
		total := perCol26_6 * x
		whole := total >> 6
		frac := total & 63
		fw := float64(frac) / 64.0

		if b.PixelMode == Mono {
			w := whole
			if frac >= 32 {
				w++
			}
			for y := 0; y < b.Rows; y++ {
				copyPixel(b, x, y-w, nb, x, y)
			}
			continue
		}

		for y := 0; y < b.Rows; y++ {
			sy0 := y - whole
			sy1 := sy0 - 1
			drow := nb.Row(y)
			for c := 0; c < n; c++ {
				v0 := sampleRowOrZero(b, x, sy0, c, n)
				v1 := sampleRowOrZero(b, x, sy1, c, n)
				v := (1-fw)*v0 + fw*v1
				drow[x*n+c] = clampByte(v)
			}
		}
	}
	return nb
}

func sampleOrZero(row []byte, x, c, n, width int) float64 {
	if x < 0 || x >= width {
		return 0
	}
	return float64(row[x*n+c])
}

func sampleRowOrZero(b *Bitmap, x, y, c, n int) float64 {
	if y < 0 || y >= b.Rows {
		return 0
	}
	return float64(b.Row(y)[x*n+c])
}
