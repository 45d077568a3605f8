package basics

import "testing"

func TestIRound(t *testing.T) {
	tests := []struct {
		input    float64
		expected int
	}{
		{0.0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.6, 2},
		{-0.4, 0},
		{-0.5, -1},
		{-1.6, -2},
	}
	for _, tt := range tests {
		if got := IRound(tt.input); got != tt.expected {
			t.Errorf("IRound(%v) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestTruncFracIdentity(t *testing.T) {
	// trunc*ONE_PIXEL + frac must reconstruct the original for negative
	// coordinates too: frac is a Euclidean residue, not a signed remainder.
	for _, x := range []int{0, 1, 255, 256, 257, 1000, -1, -255, -256, -257, -1000} {
		trunc := TruncSubpixel(x)
		frac := FracSubpixel(x)
		if frac < 0 || frac >= PolySubpixelScale {
			t.Errorf("FracSubpixel(%d) = %d, want in [0,%d)", x, frac, PolySubpixelScale)
		}
		if trunc*PolySubpixelScale+frac != x {
			t.Errorf("trunc(%d)*scale + frac(%d) = %d, want %d", x, x, trunc*PolySubpixelScale+frac, x)
		}
	}
}

func TestTruncSubpixelNegative(t *testing.T) {
	if got := TruncSubpixel(-1); got != -1 {
		t.Errorf("TruncSubpixel(-1) = %d, want -1 (floor division)", got)
	}
	if got := TruncSubpixel(-256); got != -1 {
		t.Errorf("TruncSubpixel(-256) = %d, want -1", got)
	}
	if got := TruncSubpixel(-257); got != -2 {
		t.Errorf("TruncSubpixel(-257) = %d, want -2", got)
	}
}

func TestToSubpixel(t *testing.T) {
	if got := ToSubpixel(1.0, 1.0); got != PolySubpixelScale {
		t.Errorf("ToSubpixel(1,1) = %d, want %d", got, PolySubpixelScale)
	}
	if got := ToSubpixel(2.5, 2.0); got != 5*PolySubpixelScale {
		t.Errorf("ToSubpixel(2.5,2) = %d, want %d", got, 5*PolySubpixelScale)
	}
	if got := ToSubpixel(-1.0, 1.0); got != -PolySubpixelScale {
		t.Errorf("ToSubpixel(-1,1) = %d, want %d", got, -PolySubpixelScale)
	}
}

func TestUpscaleDownscale26_6(t *testing.T) {
	// One pixel in 26.6 is 64; in the rasterizer's domain it is 256.
	if got := UpscaleToSubpixel(64); got != PolySubpixelScale {
		t.Errorf("UpscaleToSubpixel(64) = %d, want %d", got, PolySubpixelScale)
	}
	if got := DownscaleFromSubpixel(PolySubpixelScale); got != 64 {
		t.Errorf("DownscaleFromSubpixel(%d) = %d, want 64", PolySubpixelScale, got)
	}
	for _, v := range []int{0, 1, 63, 64, 100, -64, -100} {
		if got := DownscaleFromSubpixel(UpscaleToSubpixel(v)); got != v {
			t.Errorf("round-trip of %d through 26.6 upscale = %d", v, got)
		}
	}
}
