package outline

import (
	"math"
	"testing"
)

func TestEmboldenPathZeroStrengthIsNoop(t *testing.T) {
	o := square(10)
	out := EmboldenPath(o, 0)
	if out != o {
		t.Error("EmboldenPath(0) should return the input unchanged")
	}
}

func TestEmboldenPathExpandsOutward(t *testing.T) {
	o := square(10)
	out := EmboldenPath(o, 1)
	// Every endpoint should move away from the square's center (5,5).
	for i, c := range out.Commands {
		if c.Op == OpClose {
			continue
		}
		orig := o.Commands[i]
		dOrig := math.Hypot(orig.X-5, orig.Y-5)
		dNew := math.Hypot(c.X-5, c.Y-5)
		if dNew <= dOrig {
			t.Errorf("point %d: distance from center did not grow (%.3f -> %.3f)", i, dOrig, dNew)
		}
	}
}
