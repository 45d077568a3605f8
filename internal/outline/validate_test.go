package outline

import "testing"

func TestValidateEmptyOutline(t *testing.T) {
	err, _ := Validate(&Outline{}, true)
	if err != EmptyOutline {
		t.Errorf("Validate(empty, allowEmpty=true) = %v, want EmptyOutline", err)
	}
	err, _ = Validate(&Outline{}, false)
	if err != InvalidOutline {
		t.Errorf("Validate(empty, allowEmpty=false) = %v, want InvalidOutline", err)
	}
}

func TestValidateNilOutline(t *testing.T) {
	if err, _ := Validate(nil, true); err != InvalidOutline {
		t.Errorf("Validate(nil) = %v, want InvalidOutline", err)
	}
}

func TestValidateDrawBeforeMoveTo(t *testing.T) {
	o := &Outline{Commands: []Command{{Op: OpLineTo, X: 1, Y: 1}}}
	if err, _ := Validate(o, true); err != InvalidOutline {
		t.Errorf("Validate(LineTo-first) = %v, want InvalidOutline", err)
	}
}

func TestValidateNonFiniteCoordinate(t *testing.T) {
	o := &Outline{Commands: []Command{
		{Op: OpMoveTo, X: 0, Y: 0},
		{Op: OpLineTo, X: 1.0 / zero(), Y: 0},
	}}
	if err, _ := Validate(o, true); err != InvalidOutline {
		t.Errorf("Validate(Inf coordinate) = %v, want InvalidOutline", err)
	}
}

func TestValidateWellFormedSquare(t *testing.T) {
	o := &Outline{Commands: []Command{
		{Op: OpMoveTo, X: 0, Y: 0},
		{Op: OpLineTo, X: 10, Y: 0},
		{Op: OpLineTo, X: 10, Y: 10},
		{Op: OpLineTo, X: 0, Y: 10},
		{Op: OpClose},
	}}
	if err, msg := Validate(o, false); err != Ok {
		t.Errorf("Validate(square) = %v (%s), want Ok", err, msg)
	}
}

func TestValidateUnrecognizedTag(t *testing.T) {
	o := &Outline{Commands: []Command{
		{Op: OpMoveTo, X: 0, Y: 0},
		{Op: Op(99), X: 1, Y: 1},
	}}
	if err, _ := Validate(o, true); err != InvalidOutline {
		t.Errorf("Validate(bad tag) = %v, want InvalidOutline", err)
	}
}

func zero() float64 { return 0 }
