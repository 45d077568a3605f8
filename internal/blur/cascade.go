package blur

import "math"

// shrinkTap is the fixed 6-tap pyramid shrink/expand kernel [1,5,10,10,5,1]/32
// used by every cascade level.
var shrinkTap = [6]float64{1.0 / 32, 5.0 / 32, 10.0 / 32, 10.0 / 32, 5.0 / 32, 1.0 / 32}

// chooseLevel selects the cascade level L and residual kernel radius K for
// a given blur-radius-squared r2: r2 < 0.5 uses L=0 with the minimum
// residual radius; otherwise L = floor(log2(sqrt(0.11569*r2 + 0.20591))) + 1,
// with K picked from [cascadeKernelMin, cascadeKernelMax] by the same
// fractional factor.
func chooseLevel(r2 float64) (level, k int) {
	if r2 < 0.5 {
		return 0, cascadeKernelMin
	}
	l := int(math.Floor(math.Log2(math.Sqrt(0.11569*r2+0.20591)))) + 1
	if l < 0 {
		l = 0
	}
	frac := math.Sqrt(0.11569*r2+0.20591) / math.Exp2(float64(l))
	kk := cascadeKernelMin + int(frac*float64(cascadeKernelMax-cascadeKernelMin))
	if kk < cascadeKernelMin {
		kk = cascadeKernelMin
	}
	if kk > cascadeKernelMax {
		kk = cascadeKernelMax
	}
	return l, kk
}

const (
	cascadeKernelMin = 4
	cascadeKernelMax = 8
)

// residualSigma maps a residual kernel radius K to the Gaussian sigma of
// the small residual blur run between the shrink and expand chains. The
// sigma is variance-matched to the radius rather than solved per level in
// the frequency domain, which keeps the residual kernel within the
// cascade's error tolerance at much less machinery.
func residualSigma(k int) float64 {
	return float64(k) / 3.0
}

func shrinkAxisH(p *Plane) *Plane {
	nw := (p.Width + 1) / 2
	out := NewPlane(nw, p.Height, p.Channels)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < nw; x++ {
			for c := 0; c < p.Channels; c++ {
				sum := 0.0
				for i, w := range shrinkTap {
					sx := clampCoord(2*x+i-2, 0, p.Width-1)
					sum += w * float64(p.Pix[p.at(sx, y, c)])
				}
				out.Pix[out.at(x, y, c)] = clampByte(sum)
			}
		}
	}
	return out
}

func shrinkAxisV(p *Plane) *Plane {
	nh := (p.Height + 1) / 2
	out := NewPlane(p.Width, nh, p.Channels)
	for y := 0; y < nh; y++ {
		for x := 0; x < p.Width; x++ {
			for c := 0; c < p.Channels; c++ {
				sum := 0.0
				for i, w := range shrinkTap {
					sy := clampCoord(2*y+i-2, 0, p.Height-1)
					sum += w * float64(p.Pix[p.at(x, sy, c)])
				}
				out.Pix[out.at(x, y, c)] = clampByte(sum)
			}
		}
	}
	return out
}

func expandAxisH(p *Plane, targetW int) *Plane {
	out := NewPlane(targetW, p.Height, p.Channels)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < targetW; x++ {
			srcX := float64(x) / 2
			x0 := clampCoord(int(math.Floor(srcX)), 0, p.Width-1)
			x1 := clampCoord(x0+1, 0, p.Width-1)
			f := srcX - float64(x0)
			for c := 0; c < p.Channels; c++ {
				v := (1-f)*float64(p.Pix[p.at(x0, y, c)]) + f*float64(p.Pix[p.at(x1, y, c)])
				out.Pix[out.at(x, y, c)] = clampByte(v)
			}
		}
	}
	return out
}

func expandAxisV(p *Plane, targetH int) *Plane {
	out := NewPlane(p.Width, targetH, p.Channels)
	for y := 0; y < targetH; y++ {
		srcY := float64(y) / 2
		y0 := clampCoord(int(math.Floor(srcY)), 0, p.Height-1)
		y1 := clampCoord(y0+1, 0, p.Height-1)
		f := srcY - float64(y0)
		for x := 0; x < p.Width; x++ {
			for c := 0; c < p.Channels; c++ {
				v := (1-f)*float64(p.Pix[p.at(x, y0, c)]) + f*float64(p.Pix[p.at(x, y1, c)])
				out.Pix[out.at(x, y, c)] = clampByte(v)
			}
		}
	}
	return out
}

// cascadeAxis runs the shrink(L)->residual->expand(L) pipeline along one
// axis for the given radius, returning a same-size result.
func cascadeAxis(p *Plane, r float64, horizontal bool) *Plane {
	if r <= 0 {
		return p
	}
	level, k := chooseLevel(r * r)

	shrink, expand := shrinkAxisV, expandAxisV
	dim := func(q *Plane) int { return q.Height }
	if horizontal {
		shrink, expand = shrinkAxisH, expandAxisH
		dim = func(q *Plane) int { return q.Width }
	}

	cur := p
	origDims := make([]int, level+1)
	origDims[0] = dim(p)
	for i := 0; i < level; i++ {
		cur = shrink(cur)
		origDims[i+1] = dim(cur)
	}

	sigma := residualSigma(k)
	kern := kernel1D(sigma)
	half := len(kern) / 2
	residual := NewPlane(cur.Width, cur.Height, cur.Channels)
	for y := 0; y < cur.Height; y++ {
		for x := 0; x < cur.Width; x++ {
			for c := 0; c < cur.Channels; c++ {
				sum := 0.0
				for i, w := range kern {
					if horizontal {
						sx := clampCoord(x+i-half, 0, cur.Width-1)
						sum += w * float64(cur.Pix[cur.at(sx, y, c)])
					} else {
						sy := clampCoord(y+i-half, 0, cur.Height-1)
						sum += w * float64(cur.Pix[cur.at(x, sy, c)])
					}
				}
				residual.Pix[residual.at(x, y, c)] = clampByte(sum)
			}
		}
	}
	cur = residual

	for i := level - 1; i >= 0; i-- {
		cur = expand(cur, origDims[i])
	}
	return cur
}

// Cascade applies the pyramid blur whose cost is independent of radius:
// separate horizontal and vertical shrink/residual/expand chains for rx
// and ry. For a Channels==4 plane (RGBA), it falls back to the separable
// Gaussian with r=(rx+ry)/2.
func Cascade(p *Plane, rx, ry float64) {
	if p.Channels == 4 {
		Gaussian(p, (rx+ry)/2)
		return
	}
	if rx > 0 {
		copyPlaneInto(p, cascadeAxis(p, rx, true))
	}
	if ry > 0 {
		copyPlaneInto(p, cascadeAxis(p, ry, false))
	}
}

func copyPlaneInto(dst, src *Plane) {
	if dst.Width == src.Width && dst.Height == src.Height {
		copy(dst.Pix, src.Pix)
		return
	}
	// Dimensions drifted by rounding in the shrink/expand chain; resample
	// nearest back to dst's size rather than silently truncating.
	for y := 0; y < dst.Height; y++ {
		sy := clampCoord(y*src.Height/dst.Height, 0, src.Height-1)
		for x := 0; x < dst.Width; x++ {
			sx := clampCoord(x*src.Width/dst.Width, 0, src.Width-1)
			for c := 0; c < dst.Channels; c++ {
				dst.Pix[dst.at(x, y, c)] = src.Pix[src.at(sx, sy, c)]
			}
		}
	}
}
