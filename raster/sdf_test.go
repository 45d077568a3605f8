package raster

import "testing"

func TestRenderSDFSquareBoundary(t *testing.T) {
	o := unitSquare()
	buf := RenderSDF(o, SDFOptions{Width: 12, Height: 12, Scale: 1, Spread: 8})
	if len(buf) != 12*12 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), 144)
	}
	interior := buf[5*12+5]
	if interior <= 128 {
		t.Errorf("interior SDF pixel = %d, want > 128", interior)
	}
}

func TestRenderMSDFThreeChannels(t *testing.T) {
	o := unitSquare()
	buf := RenderMSDF(o, SDFOptions{Width: 12, Height: 12, Scale: 1, Spread: 8})
	if len(buf) != 12*12*3 {
		t.Fatalf("len(buf) = %d, want %d", len(buf), 12*12*3)
	}
}

func TestRenderSDFEmptyOutlineZero(t *testing.T) {
	buf := RenderSDF(&Outline{}, SDFOptions{Width: 4, Height: 4, Scale: 1, Spread: 8})
	for _, v := range buf {
		if v != 0 {
			t.Fatal("empty outline should produce an all-zero SDF")
		}
	}
}
