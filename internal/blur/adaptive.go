package blur

// Adaptive chooses the separable Gaussian for small radii (max(rx,ry) <= 3)
// and the cascade blur otherwise.
func Adaptive(p *Plane, rx, ry float64) {
	m := rx
	if ry > m {
		m = ry
	}
	if m <= 3 {
		GaussianXY(p, rx, ry)
		return
	}
	Cascade(p, rx, ry)
}
