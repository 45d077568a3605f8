package raster

import "github.com/MeKo-Christian/glyphcore/internal/blur"

// BlurGaussian applies a separable Gaussian blur of radius r (both axes)
// to b's coverage in place.
func BlurGaussian(b *Bitmap, r float64) {
	p := b.ToPlane()
	blur.Gaussian(p, r)
	b.FromPlane(p)
}

// BlurGaussianXY is BlurGaussian with independent horizontal/vertical radii.
func BlurGaussianXY(b *Bitmap, rx, ry float64) {
	p := b.ToPlane()
	blur.GaussianXY(p, rx, ry)
	b.FromPlane(p)
}

// BlurBox applies a running-sum box blur of integer radius r to b in place.
func BlurBox(b *Bitmap, r int) {
	p := b.ToPlane()
	blur.Box(p, r)
	b.FromPlane(p)
}

// BlurCascade applies the radius-independent-cost pyramid blur to b in
// place. RGBA bitmaps fall back to BlurGaussian with
// r=(rx+ry)/2, per the package's documented cascade-fallback rule.
func BlurCascade(b *Bitmap, rx, ry float64) {
	p := b.ToPlane()
	blur.Cascade(p, rx, ry)
	b.FromPlane(p)
}

// BlurAdaptive dispatches to BlurGaussianXY for small radii
// (max(rx,ry) <= 3) and BlurCascade otherwise.
func BlurAdaptive(b *Bitmap, rx, ry float64) {
	p := b.ToPlane()
	blur.Adaptive(p, rx, ry)
	b.FromPlane(p)
}

// Embolden dilates b's coverage by (xStrength, yStrength) pixels: each
// output pixel takes the maximum coverage within that half-size window
// around it. EmboldenOutline is the outline-side counterpart.
func Embolden(b *Bitmap, xStrength, yStrength int) {
	p := b.ToPlane()
	blur.Embolden(p, xStrength, yStrength)
	b.FromPlane(p)
}
