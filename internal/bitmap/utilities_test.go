package bitmap

import "testing"

func TestToPlaneFromPlaneRoundTripGray(t *testing.T) {
	b := New(4, 4, Gray)
	b.Row(1)[2] = 99
	p := b.ToPlane()
	out := New(4, 4, Gray)
	out.FromPlane(p)
	if out.Row(1)[2] != 99 {
		t.Errorf("round-tripped pixel = %d, want 99", out.Row(1)[2])
	}
}

func TestToPlaneExpandsMonoToByteCoverage(t *testing.T) {
	b := New(8, 1, Mono)
	b.Row(0)[0] = 0x80 // bit 0 set
	p := b.ToPlane()
	if p.Pix[0] != 255 {
		t.Errorf("Mono bit set -> plane value %d, want 255", p.Pix[0])
	}
	if p.Pix[1] != 0 {
		t.Errorf("Mono bit clear -> plane value %d, want 0", p.Pix[1])
	}
}

func TestPadAddsBorder(t *testing.T) {
	b := New(2, 2, Gray)
	b.Row(0)[0] = 5
	padded := Pad(b, 1, 1, 1, 1)
	if padded.Width != 4 || padded.Rows != 4 {
		t.Fatalf("padded size = %dx%d, want 4x4", padded.Width, padded.Rows)
	}
	if padded.Row(1)[1] != 5 {
		t.Errorf("original content not found at padded offset")
	}
	if padded.Row(0)[0] != 0 {
		t.Error("padding border should be zero")
	}
}

func TestShiftAdjustsBearing(t *testing.T) {
	b := New(4, 4, Gray)
	b.Row(1)[1] = 42
	shifted, bx, by := Shift(b, 1, 1, 0, 0)
	if shifted.Row(2)[2] != 42 {
		t.Error("content should have moved by (1,1)")
	}
	if bx != -1 || by != -1 {
		t.Errorf("bearing = (%d,%d), want (-1,-1)", bx, by)
	}
}

func TestResizeNearestPreservesMonoMode(t *testing.T) {
	b := New(4, 4, Mono)
	out := Resize(b, 8, 8, true)
	if out.PixelMode != Mono {
		t.Error("Resize should preserve pixel mode")
	}
}

func TestResizeUpscalesDimensions(t *testing.T) {
	b := New(4, 4, Gray)
	out := Resize(b, 8, 8, true)
	if out.Width != 8 || out.Rows != 8 {
		t.Errorf("resized size = %dx%d, want 8x8", out.Width, out.Rows)
	}
}
