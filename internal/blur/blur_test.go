package blur

import "testing"

func flatPlane(w, h, channels int, v byte) *Plane {
	p := NewPlane(w, h, channels)
	for i := range p.Pix {
		p.Pix[i] = v
	}
	return p
}

func TestGaussianZeroRadiusIsIdentity(t *testing.T) {
	p := flatPlane(8, 8, 1, 100)
	p.Pix[p.at(4, 4, 0)] = 200
	before := p.Clone()
	Gaussian(p, 0)
	for i := range p.Pix {
		if p.Pix[i] != before.Pix[i] {
			t.Fatalf("Gaussian(r=0) changed pixel %d: %d -> %d", i, before.Pix[i], p.Pix[i])
		}
	}
}

func TestGaussianPreservesUniformPlane(t *testing.T) {
	p := flatPlane(10, 10, 1, 128)
	Gaussian(p, 2)
	for i, v := range p.Pix {
		if v != 128 {
			t.Fatalf("Gaussian blur of a uniform plane changed pixel %d to %d", i, v)
		}
	}
}

func TestGaussianSpreadsImpulse(t *testing.T) {
	p := NewPlane(21, 21, 1)
	p.Pix[p.at(10, 10, 0)] = 255
	Gaussian(p, 3)
	if p.Pix[p.at(10, 10, 0)] >= 255 {
		t.Error("blurred impulse center should have lost energy to neighbors")
	}
	if p.Pix[p.at(11, 10, 0)] == 0 {
		t.Error("blur should have spread some energy to a neighboring pixel")
	}
}

func TestBoxBlurUniformPlaneUnchanged(t *testing.T) {
	p := flatPlane(10, 10, 1, 64)
	Box(p, 3)
	for i, v := range p.Pix {
		if v != 64 {
			t.Fatalf("Box blur of a uniform plane changed pixel %d to %d", i, v)
		}
	}
}

func TestCascadeFallsBackToGaussianForRGBA(t *testing.T) {
	p1 := NewPlane(16, 16, 4)
	p1.Pix[p1.at(8, 8, 0)] = 255
	p2 := p1.Clone()

	Cascade(p1, 4, 4)
	GaussianXY(p2, 4, 4)

	for i := range p1.Pix {
		if p1.Pix[i] != p2.Pix[i] {
			t.Fatalf("Cascade(RGBA) diverged from Gaussian fallback at byte %d: %d vs %d", i, p1.Pix[i], p2.Pix[i])
		}
	}
}

func TestCascadeUniformPlaneUnchanged(t *testing.T) {
	p := flatPlane(64, 64, 1, 200)
	Cascade(p, 6, 6)
	for i, v := range p.Pix {
		if v != 200 {
			t.Fatalf("Cascade blur of a uniform plane changed pixel %d to %d", i, v)
		}
	}
}

func TestCascadeApproximatesGaussianOnImpulse(t *testing.T) {
	g := NewPlane(21, 21, 1)
	g.Pix[g.at(10, 10, 0)] = 255
	c := g.Clone()

	Gaussian(g, 1.5)
	Cascade(c, 1.5, 1.5)

	dg := int(g.Pix[g.at(10, 10, 0)])
	dc := int(c.Pix[c.at(10, 10, 0)])
	diff := dg - dc
	if diff < 0 {
		diff = -diff
	}
	if diff > 30 {
		t.Errorf("center pixel: Gaussian=%d Cascade=%d, differ by %d (> 30)", dg, dc, diff)
	}

	sum := func(p *Plane) int {
		s := 0
		for _, v := range p.Pix {
			s += int(v)
		}
		return s
	}
	sg, sc := sum(g), sum(c)
	hi, lo := sg, sc
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi-lo > hi/20 {
		t.Errorf("total energy: Gaussian=%d Cascade=%d, differ by more than 5%%", sg, sc)
	}
}

func TestAdaptiveDispatch(t *testing.T) {
	small := flatPlane(8, 8, 1, 50)
	Adaptive(small, 2, 2)
	for i, v := range small.Pix {
		if v != 50 {
			t.Fatalf("Adaptive(small radius) changed uniform pixel %d to %d", i, v)
		}
	}

	large := flatPlane(64, 64, 1, 50)
	Adaptive(large, 6, 6)
	for i, v := range large.Pix {
		if v != 50 {
			t.Fatalf("Adaptive(large radius) changed uniform pixel %d to %d", i, v)
		}
	}
}

func TestEmboldenDilatesMaximum(t *testing.T) {
	p := NewPlane(5, 5, 1)
	p.Pix[p.at(2, 2, 0)] = 255
	Embolden(p, 1, 1)
	if p.Pix[p.at(1, 2, 0)] != 255 {
		t.Error("Embolden should dilate the maximum into a neighboring pixel")
	}
}

func TestEmboldenZeroStrengthIsNoop(t *testing.T) {
	p := flatPlane(4, 4, 1, 10)
	p.Pix[p.at(1, 1, 0)] = 200
	before := p.Clone()
	Embolden(p, 0, 0)
	for i := range p.Pix {
		if p.Pix[i] != before.Pix[i] {
			t.Fatalf("Embolden(0,0) changed pixel %d", i)
		}
	}
}
