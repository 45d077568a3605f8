package blur

// Embolden dilates p by (xStrength, yStrength) subpixel-equivalent pixel
// amounts: each output pixel takes the maximum coverage found within a
// window of that half-size around it. Strengths of 0 are a
// no-op on that axis.
func Embolden(p *Plane, xStrength, yStrength int) {
	if xStrength <= 0 && yStrength <= 0 {
		return
	}
	if xStrength < 0 {
		xStrength = 0
	}
	if yStrength < 0 {
		yStrength = 0
	}

	out := NewPlane(p.Width, p.Height, p.Channels)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			for c := 0; c < p.Channels; c++ {
				best := byte(0)
				for dy := -yStrength; dy <= yStrength; dy++ {
					sy := y + dy
					if sy < 0 || sy >= p.Height {
						continue
					}
					for dx := -xStrength; dx <= xStrength; dx++ {
						sx := x + dx
						if sx < 0 || sx >= p.Width {
							continue
						}
						v := p.Pix[p.at(sx, sy, c)]
						if v > best {
							best = v
						}
					}
				}
				out.Pix[out.at(x, y, c)] = best
			}
		}
	}
	copy(p.Pix, out.Pix)
}
