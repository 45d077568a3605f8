package outline

import "testing"

// recordingSink implements Sink, recording the calls it receives so tests
// can assert on the decomposed command stream.
type recordingSink struct {
	calls []string
}

func (s *recordingSink) MoveTo(x, y int) { s.calls = append(s.calls, "M") }
func (s *recordingSink) LineTo(x, y int) error {
	s.calls = append(s.calls, "L")
	return nil
}
func (s *recordingSink) QuadTo(cx, cy, x, y int) error {
	s.calls = append(s.calls, "Q")
	return nil
}
func (s *recordingSink) CubicTo(cx1, cy1, cx2, cy2, x, y int) error {
	s.calls = append(s.calls, "C")
	return nil
}

func TestDecomposeImplicitCloseOnMoveTo(t *testing.T) {
	o := &Outline{Commands: []Command{
		{Op: OpMoveTo, X: 0, Y: 0},
		{Op: OpLineTo, X: 10, Y: 0},
		{Op: OpMoveTo, X: 20, Y: 20}, // should close the first contour first
		{Op: OpLineTo, X: 30, Y: 20},
	}}
	s := &recordingSink{}
	d := &Decomposer{Scale: 1}
	if err := d.Decompose(s, o); err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	// M L (implicit close = L) M L (implicit close at end = L)
	want := "MLLMLL"
	got := ""
	for _, c := range s.calls {
		got += c
	}
	if got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}
}

func TestDecomposeScaleAndOffset(t *testing.T) {
	o := &Outline{Commands: []Command{
		{Op: OpMoveTo, X: 1, Y: 1},
		{Op: OpLineTo, X: 2, Y: 2},
	}}
	d := &Decomposer{Scale: 2, OffsetX: 10, OffsetY: 10}
	px, py := d.toSub(1, 1)
	// round((1*2 + 10) * 256) = 12*256
	if px != 12*256 || py != 12*256 {
		t.Errorf("toSub(1,1) = (%d,%d), want (%d,%d)", px, py, 12*256, 12*256)
	}
	s := &recordingSink{}
	if err := d.Decompose(s, o); err != nil {
		t.Fatalf("Decompose: %v", err)
	}
}

func TestDecomposeFlipY(t *testing.T) {
	d := &Decomposer{Scale: 1, FlipY: true}
	_, py := d.toSub(0, 5)
	if py != -5*256 {
		t.Errorf("toSub with FlipY: py = %d, want %d", py, -5*256)
	}
}

func TestDecomposeCurvesDispatch(t *testing.T) {
	o := &Outline{Commands: []Command{
		{Op: OpMoveTo, X: 0, Y: 0},
		{Op: OpQuadTo, CX1: 5, CY1: 5, X: 10, Y: 0},
		{Op: OpCubicTo, CX1: 12, CY1: 2, CX2: 14, CY2: 2, X: 16, Y: 0},
		{Op: OpClose},
	}}
	s := &recordingSink{}
	d := &Decomposer{Scale: 1}
	if err := d.Decompose(s, o); err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	want := "MQCL" // Close closes back to start via a line
	got := ""
	for _, c := range s.calls {
		got += c
	}
	if got != want {
		t.Errorf("calls = %q, want %q", got, want)
	}
}
