package p256

import (
	"crypto/subtle"
	"fmt"
)

// GroupElementAffine represents a point on the P-256 curve in affine
// coordinates (x, y), or the point at infinity
type GroupElementAffine struct {
	x, y     FieldElement
	infinity bool
}

// GroupElementProjective represents a point on the P-256 curve in
// homogeneous projective coordinates (X:Y:Z), where the affine coordinates
// are (X/Z, Y/Z). Z = 0 is the point at infinity, normally (0:1:0).
//
// The zero value is not a valid point; use NewGroupElementProjective or
// SetInfinity.
type GroupElementProjective struct {
	x, y, z FieldElement
}

// NewGroupElementAffine creates a new affine group element set to infinity
func NewGroupElementAffine() *GroupElementAffine {
	return &GroupElementAffine{infinity: true}
}

// NewGroupElementProjective creates a new projective group element set to
// infinity
func NewGroupElementProjective() *GroupElementProjective {
	return new(GroupElementProjective).SetInfinity()
}

// NewAffinePoint builds an affine point from 32-byte big-endian coordinates.
// Coordinates not below p fail with ErrOutOfRange. If validate is set, a
// pair that does not satisfy y^2 = x^3 - 3x + b fails with
// ErrPointNotOnCurve.
func NewAffinePoint(x, y []byte, validate bool) (*GroupElementAffine, error) {
	var fx, fy FieldElement
	if _, err := fx.SetBytes(x); err != nil {
		return nil, fmt.Errorf("x coordinate: %w", err)
	}
	if _, err := fy.SetBytes(y); err != nil {
		return nil, fmt.Errorf("y coordinate: %w", err)
	}

	r := new(GroupElementAffine)
	r.setXY(&fx, &fy)
	if validate && !r.IsOnCurve() {
		return nil, ErrPointNotOnCurve
	}
	return r, nil
}

// setXY sets a group element to the point with given coordinates
func (r *GroupElementAffine) setXY(x, y *FieldElement) {
	r.x = *x
	r.y = *y
	r.infinity = false
}

// setXOVar sets r to the point with the given x coordinate and a y
// coordinate of the requested parity. Fails with ErrNoSquareRoot if x is not
// the x coordinate of any curve point.
func (r *GroupElementAffine) setXOVar(x *FieldElement, odd bool) error {
	var rhs, y FieldElement
	curveRHS(&rhs, x)
	if _, err := y.Sqrt(&rhs); err != nil {
		return err
	}

	var neg FieldElement
	neg.Negate(&y)
	want := 0
	if odd {
		want = 1
	}
	y.Select(&y, &neg, subtle.ConstantTimeEq(int32(y.IsOdd()), int32(want)))

	r.setXY(x, &y)
	return nil
}

// curveRHS sets r = x^3 - 3x + b
func curveRHS(r, x *FieldElement) {
	var x3, threeX FieldElement
	x3.Square(x)
	x3.Mul(&x3, x)

	threeX.Add(x, x)
	threeX.Add(&threeX, x)

	x3.Sub(&x3, &threeX)
	r.Add(&x3, &curveB)
}

// IsInfinity reports whether r is the point at infinity.
func (r *GroupElementAffine) IsInfinity() bool {
	return r.infinity
}

// IsOnCurve reports whether r satisfies the curve equation. The point at
// infinity is considered on the curve.
func (r *GroupElementAffine) IsOnCurve() bool {
	if r.infinity {
		return true
	}

	var lhs, rhs FieldElement
	lhs.Square(&r.y)
	curveRHS(&rhs, &r.x)
	return lhs.Equal(&rhs) == 1
}

// SetInfinity sets r to the point at infinity.
func (r *GroupElementAffine) SetInfinity() *GroupElementAffine {
	r.x = FieldElementZero
	r.y = FieldElementZero
	r.infinity = true
	return r
}

// Negate sets r = -a.
func (r *GroupElementAffine) Negate(a *GroupElementAffine) *GroupElementAffine {
	if a.infinity {
		return r.SetInfinity()
	}
	r.x = a.x
	r.y.Negate(&a.y)
	r.infinity = false
	return r
}

// Equal reports whether r and a are the same point.
func (r *GroupElementAffine) Equal(a *GroupElementAffine) bool {
	if r.infinity || a.infinity {
		return r.infinity == a.infinity
	}
	return r.x.Equal(&a.x)&r.y.Equal(&a.y) == 1
}

// Coordinates returns the 32-byte big-endian x and y coordinates of r. Both
// are zero for the point at infinity.
func (r *GroupElementAffine) Coordinates() (x, y [32]byte) {
	if r.infinity {
		return
	}
	r.x.getB32(x[:])
	r.y.getB32(y[:])
	return
}

// String returns the hex encoding of the uncompressed SEC1 form of r.
func (r *GroupElementAffine) String() string {
	return EncodeHex(r.SerializeUncompressed())
}

// SetInfinity sets r to the point at infinity (0:1:0).
func (r *GroupElementProjective) SetInfinity() *GroupElementProjective {
	r.x = FieldElementZero
	r.y = FieldElementOne
	r.z = FieldElementZero
	return r
}

// IsInfinity reports whether r is the point at infinity.
func (r *GroupElementProjective) IsInfinity() bool {
	return r.z.IsZero() == 1
}

// Set sets r = a.
func (r *GroupElementProjective) Set(a *GroupElementProjective) *GroupElementProjective {
	*r = *a
	return r
}

// SetAffine sets r to the projective form of a: (x:y:1), or (0:1:0) if a is
// the point at infinity.
func (r *GroupElementProjective) SetAffine(a *GroupElementAffine) *GroupElementProjective {
	inf := 0
	if a.infinity {
		inf = 1
	}
	r.x.Select(&FieldElementZero, &a.x, inf)
	r.y.Select(&FieldElementOne, &a.y, inf)
	r.z.Select(&FieldElementZero, &FieldElementOne, inf)
	return r
}

// Affine returns the affine form of r. Z = 0 maps to the point at infinity;
// otherwise one field inversion is performed.
func (r *GroupElementProjective) Affine() (*GroupElementAffine, error) {
	inf := r.z.IsZero()

	// Invert 1 in place of 0 so the inversion always runs
	var z, zinv FieldElement
	z.Select(&FieldElementOne, &r.z, inf)
	if _, err := zinv.Invert(&z); err != nil {
		return nil, fmt.Errorf("projective to affine: %w", err)
	}

	a := new(GroupElementAffine)
	a.x.Mul(&r.x, &zinv)
	a.y.Mul(&r.y, &zinv)
	if inf == 1 {
		a.SetInfinity()
	}
	return a, nil
}

// Negate sets r = -a.
func (r *GroupElementProjective) Negate(a *GroupElementProjective) *GroupElementProjective {
	r.x = a.x
	r.y.Negate(&a.y)
	r.z = a.z
	return r
}

// Select sets r to a if cond == 1, and to b if cond == 0.
func (r *GroupElementProjective) Select(a, b *GroupElementProjective, cond int) *GroupElementProjective {
	r.x.Select(&a.x, &b.x, cond)
	r.y.Select(&a.y, &b.y, cond)
	r.z.Select(&a.z, &b.z, cond)
	return r
}

// Equal returns 1 if r and a represent the same point, and 0 otherwise.
func (r *GroupElementProjective) Equal(a *GroupElementProjective) int {
	var lhs, rhs FieldElement

	// X1*Z2 == X2*Z1
	lhs.Mul(&r.x, &a.z)
	rhs.Mul(&a.x, &r.z)
	xEq := lhs.Equal(&rhs)

	// Y1*Z2 == Y2*Z1
	lhs.Mul(&r.y, &a.z)
	rhs.Mul(&a.y, &r.z)
	yEq := lhs.Equal(&rhs)

	infEq := subtle.ConstantTimeEq(int32(r.z.IsZero()), int32(a.z.IsZero()))
	return xEq & yEq & infEq
}

// Add sets r = a + b.
//
// This is the complete addition of Renes, Costello and Batina,
// "Complete addition formulas for prime order elliptic curves", Algorithm 4
// (a = -3). It is correct for all inputs, including a == b and infinity,
// and does not branch on the operands. r may alias a or b.
func (r *GroupElementProjective) Add(a, b *GroupElementProjective) *GroupElementProjective {
	var t0, t1, t2, t3, t4, x3, y3, z3 FieldElement

	t0.Mul(&a.x, &b.x)
	t1.Mul(&a.y, &b.y)
	t2.Mul(&a.z, &b.z)
	t3.Add(&a.x, &a.y)
	t4.Add(&b.x, &b.y)
	t3.Mul(&t3, &t4)
	t4.Add(&t0, &t1)
	t3.Sub(&t3, &t4)
	t4.Add(&a.y, &a.z)
	x3.Add(&b.y, &b.z)
	t4.Mul(&t4, &x3)
	x3.Add(&t1, &t2)
	t4.Sub(&t4, &x3)
	x3.Add(&a.x, &a.z)
	y3.Add(&b.x, &b.z)
	x3.Mul(&x3, &y3)
	y3.Add(&t0, &t2)
	y3.Sub(&x3, &y3)
	z3.Mul(&curveB, &t2)
	x3.Sub(&y3, &z3)
	z3.Add(&x3, &x3)
	x3.Add(&x3, &z3)
	z3.Sub(&t1, &x3)
	x3.Add(&t1, &x3)
	y3.Mul(&curveB, &y3)
	t1.Add(&t2, &t2)
	t2.Add(&t1, &t2)
	y3.Sub(&y3, &t2)
	y3.Sub(&y3, &t0)
	t1.Add(&y3, &y3)
	y3.Add(&t1, &y3)
	t1.Add(&t0, &t0)
	t0.Add(&t1, &t0)
	t0.Sub(&t0, &t2)
	t1.Mul(&t4, &y3)
	t2.Mul(&t0, &y3)
	y3.Mul(&x3, &z3)
	y3.Add(&y3, &t2)
	x3.Mul(&x3, &t3)
	x3.Sub(&x3, &t1)
	z3.Mul(&z3, &t4)
	t1.Mul(&t3, &t0)
	z3.Add(&z3, &t1)

	r.x = x3
	r.y = y3
	r.z = z3
	return r
}

// Double sets r = a + a.
//
// This is Algorithm 6 of Renes, Costello and Batina (a = -3), complete for
// all inputs. r may alias a.
func (r *GroupElementProjective) Double(a *GroupElementProjective) *GroupElementProjective {
	var t0, t1, t2, t3, x3, y3, z3 FieldElement

	t0.Square(&a.x)
	t1.Square(&a.y)
	t2.Square(&a.z)
	t3.Mul(&a.x, &a.y)
	t3.Add(&t3, &t3)
	z3.Mul(&a.x, &a.z)
	z3.Add(&z3, &z3)
	y3.Mul(&curveB, &t2)
	y3.Sub(&y3, &z3)
	x3.Add(&y3, &y3)
	y3.Add(&x3, &y3)
	x3.Sub(&t1, &y3)
	y3.Add(&t1, &y3)
	y3.Mul(&x3, &y3)
	x3.Mul(&x3, &t3)
	t3.Add(&t2, &t2)
	t2.Add(&t2, &t3)
	z3.Mul(&curveB, &z3)
	z3.Sub(&z3, &t2)
	z3.Sub(&z3, &t0)
	t3.Add(&z3, &z3)
	z3.Add(&z3, &t3)
	t3.Add(&t0, &t0)
	t0.Add(&t3, &t0)
	t0.Sub(&t0, &t2)
	t0.Mul(&t0, &z3)
	y3.Add(&y3, &t0)
	t0.Mul(&a.y, &a.z)
	t0.Add(&t0, &t0)
	z3.Mul(&t0, &z3)
	x3.Sub(&x3, &z3)
	z3.Mul(&t0, &t1)
	z3.Add(&z3, &z3)
	z3.Add(&z3, &z3)

	r.x = x3
	r.y = y3
	r.z = z3
	return r
}
