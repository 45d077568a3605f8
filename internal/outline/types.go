// Package outline holds the glyph outline data model and the decomposer
// that turns a path-command sequence in font units into rasterizer calls
// in subpixel integer units. The command sum type mirrors the
// MoveTo/LineTo/QuadTo/CubicTo segment shape glyph loaders such as
// golang.org/x/image/font/sfnt produce, with an explicit Close tag and an
// EvenOddFill flag bit.
package outline

// Op identifies which of the five path-command tags a Command carries.
type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Command is one step of an outline's path. Fields not used by Op are
// zero; MoveTo/LineTo/Close use only X,Y, QuadTo additionally uses CX1,CY1,
// and CubicTo uses CX1,CY1,CX2,CY2.
type Command struct {
	Op               Op
	X, Y             float64
	CX1, CY1         float64
	CX2, CY2         float64
}

// Flag bits carried by an Outline.
type Flag uint32

const (
	// EvenOddFill selects the even-odd fill rule; absent means non-zero.
	EvenOddFill Flag = 1 << iota
)

// Bounds is an axis-aligned bounding box in font units.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Outline is an ordered sequence of path commands over a 2D plane, plus an
// optional precomputed bounding box and a flag set. It is immutable for
// the lifetime of a rasterization call; nothing in this package or
// internal/rasterizer mutates it.
type Outline struct {
	Commands []Command
	Bounds   *Bounds
	Flags    Flag
}

// HasEvenOddFill reports whether the EvenOddFill bit is set.
func (o *Outline) HasEvenOddFill() bool {
	return o.Flags&EvenOddFill != 0
}
