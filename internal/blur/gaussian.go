package blur

import "math"

// kernel1D builds a normalized 1D Gaussian kernel of radius r (sigma = r),
// size 2*ceil(2r)+1.
func kernel1D(r float64) []float64 {
	half := int(math.Ceil(2 * r))
	size := 2*half + 1
	k := make([]float64, size)
	sigma2 := 2 * r * r
	if sigma2 <= 0 {
		k[half] = 1
		return k
	}
	sum := 0.0
	for i := -half; i <= half; i++ {
		v := math.Exp(-float64(i*i) / sigma2)
		k[i+half] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Gaussian applies a separable Gaussian blur of radius r (both axes) to p
// in place. r <= 0 is a no-op.
func Gaussian(p *Plane, r float64) {
	GaussianXY(p, r, r)
}

// GaussianXY is Gaussian with independent horizontal/vertical radii: a
// horizontal pass with kernel1D(rx) into a temporary buffer, then a
// vertical pass with kernel1D(ry) back, clamping to the edge.
// An axis with radius <= 0 is skipped.
func GaussianXY(p *Plane, rx, ry float64) {
	if rx > 0 {
		k := kernel1D(rx)
		half := len(k) / 2
		tmp := NewPlane(p.Width, p.Height, p.Channels)
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				for c := 0; c < p.Channels; c++ {
					sum := 0.0
					for i, w := range k {
						sx := clampCoord(x+i-half, 0, p.Width-1)
						sum += w * float64(p.Pix[p.at(sx, y, c)])
					}
					tmp.Pix[p.at(x, y, c)] = clampByte(sum)
				}
			}
		}
		copy(p.Pix, tmp.Pix)
	}

	if ry > 0 {
		k := kernel1D(ry)
		half := len(k) / 2
		out := NewPlane(p.Width, p.Height, p.Channels)
		for y := 0; y < p.Height; y++ {
			for x := 0; x < p.Width; x++ {
				for c := 0; c < p.Channels; c++ {
					sum := 0.0
					for i, w := range k {
						sy := clampCoord(y+i-half, 0, p.Height-1)
						sum += w * float64(p.Pix[p.at(x, sy, c)])
					}
					out.Pix[p.at(x, y, c)] = clampByte(sum)
				}
			}
		}
		copy(p.Pix, out.Pix)
	}
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
