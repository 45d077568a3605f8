// Package xform provides affine and perspective transforms over outlines,
// plus control-box and tight-bounds computation. Matrix2D follows the
// AGG trans_affine element order; Matrix3x3 is a plain row-major
// homogeneous matrix with a guarded perspective divide. Both are value
// types acting on font-unit outlines.
package xform

import "math"

// Matrix2D is a 2x3 affine transform [a b c d tx ty] mapping
// (x,y) -> (a*x + c*y + tx, b*x + d*y + ty).
type Matrix2D struct {
	A, B, C, D, TX, TY float64
}

// Identity2D returns the identity transform.
func Identity2D() Matrix2D {
	return Matrix2D{A: 1, D: 1}
}

// Apply transforms a single point.
func (m Matrix2D) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// Multiply returns m composed with n such that
// (m.Multiply(n)).Apply(p) == m.Apply(n.Apply(p)), i.e. n is applied first.
func (m Matrix2D) Multiply(n Matrix2D) Matrix2D {
	return Matrix2D{
		A:  n.A*m.A + n.B*m.C,
		B:  n.A*m.B + n.B*m.D,
		C:  n.C*m.A + n.D*m.C,
		D:  n.C*m.B + n.D*m.D,
		TX: n.TX*m.A + n.TY*m.C + m.TX,
		TY: n.TX*m.B + n.TY*m.D + m.TY,
	}
}

// Translate2D, Scale2D and Rotate2D build elementary transforms.
func Translate2D(tx, ty float64) Matrix2D { return Matrix2D{A: 1, D: 1, TX: tx, TY: ty} }
func Scale2D(sx, sy float64) Matrix2D     { return Matrix2D{A: sx, D: sy} }
func Rotate2D(angle float64) Matrix2D {
	ca, sa := math.Cos(angle), math.Sin(angle)
	return Matrix2D{A: ca, B: sa, C: -sa, D: ca}
}

// Matrix3x3 is a row-major homogeneous transform supporting perspective
// division.
type Matrix3x3 struct {
	M [3][3]float64
}

// Identity3D returns the identity transform.
func Identity3D() Matrix3x3 {
	return Matrix3x3{M: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// FromMatrix2D lifts an affine transform into homogeneous form.
func FromMatrix2D(m Matrix2D) Matrix3x3 {
	return Matrix3x3{M: [3][3]float64{
		{m.A, m.C, m.TX},
		{m.B, m.D, m.TY},
		{0, 0, 1},
	}}
}

// minPerspectiveW is the floor perspective-division implementations may
// clamp |w| to, avoiding coordinate explosion when a near-singular matrix
// embeds perspective in a downstream Canvas/SVG path.
const minPerspectiveW = 1e-6

// Apply transforms a point through the homogeneous matrix and performs the
// perspective divide. When |w| < 1e-10 the point is treated as being at
// infinity and (0,0) is returned; otherwise w is clamped away
// from zero by minPerspectiveW before dividing, bounding the coordinate
// magnitude for near-singular matrices.
func (m Matrix3x3) Apply(x, y float64) (float64, float64) {
	xp := m.M[0][0]*x + m.M[0][1]*y + m.M[0][2]
	yp := m.M[1][0]*x + m.M[1][1]*y + m.M[1][2]
	w := m.M[2][0]*x + m.M[2][1]*y + m.M[2][2]

	if math.Abs(w) < 1e-10 {
		return 0, 0
	}
	if w > 0 && w < minPerspectiveW {
		w = minPerspectiveW
	} else if w < 0 && w > -minPerspectiveW {
		w = -minPerspectiveW
	}
	return xp / w, yp / w
}
