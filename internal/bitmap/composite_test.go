package bitmap

import "testing"

func TestCompositeMax(t *testing.T) {
	dst := New(2, 2, Gray)
	dst.Row(0)[0] = 50
	src := New(2, 2, Gray)
	src.Row(0)[0] = 200
	Composite(dst, src, 0, 0, Max)
	if dst.Row(0)[0] != 200 {
		t.Errorf("Max composite = %d, want 200", dst.Row(0)[0])
	}
}

func TestCompositeAdditiveClamps(t *testing.T) {
	dst := New(2, 2, Gray)
	dst.Row(0)[0] = 200
	src := New(2, 2, Gray)
	src.Row(0)[0] = 200
	Composite(dst, src, 0, 0, Additive)
	if dst.Row(0)[0] != 255 {
		t.Errorf("Additive composite = %d, want clamped 255", dst.Row(0)[0])
	}
}

func TestCompositeMismatchedModeIsNoop(t *testing.T) {
	dst := New(2, 2, Gray)
	dst.Row(0)[0] = 50
	src := New(2, 2, RGBA)
	Composite(dst, src, 0, 0, Over)
	if dst.Row(0)[0] != 50 {
		t.Error("Composite across mismatched pixel modes should be a no-op")
	}
}

func TestLinearGradientEndpoints(t *testing.T) {
	g := LinearGradient{
		StartX: 0, StartY: 0, EndX: 10, EndY: 0,
		C0: [4]uint8{0, 0, 0, 0}, C1: [4]uint8{255, 255, 255, 255},
	}
	r, _, _, _ := g.ColorAt(0, 0)
	if r != 0 {
		t.Errorf("ColorAt(start) r = %d, want 0", r)
	}
	r, _, _, _ = g.ColorAt(10, 0)
	if r != 255 {
		t.Errorf("ColorAt(end) r = %d, want 255", r)
	}
}

func TestLinearGradientClampsBeyondEndpoints(t *testing.T) {
	g := LinearGradient{
		StartX: 0, StartY: 0, EndX: 10, EndY: 0,
		C0: [4]uint8{0, 0, 0, 0}, C1: [4]uint8{255, 255, 255, 255},
	}
	r, _, _, _ := g.ColorAt(100, 0)
	if r != 255 {
		t.Errorf("ColorAt(past end) r = %d, want clamped 255", r)
	}
}
