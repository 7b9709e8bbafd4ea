package p256

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"math/bits"
)

// FieldElement represents a field element modulo the P-256 field prime
// p = 2^256 - 2^224 + 2^192 + 2^96 - 1.
//
// The value is held as 4 uint64 limbs in little-endian order, in Montgomery
// form: n represents a*R mod p with R = 2^256. Every operation leaves the
// limbs fully reduced, so two elements are equal exactly when their limbs
// are equal. The zero value is the field element 0.
type FieldElement struct {
	n [4]uint64
}

// Field modulus limbs
const (
	fieldModulusLimb0 = 0xFFFFFFFFFFFFFFFF
	fieldModulusLimb1 = 0x00000000FFFFFFFF
	fieldModulusLimb2 = 0x0000000000000000
	fieldModulusLimb3 = 0xFFFFFFFF00000001
)

// Field element constants
var (
	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}

	// FieldElementOne represents the field element 1 (R mod p in Montgomery form)
	FieldElementOne = FieldElement{
		n: [4]uint64{0x0000000000000001, 0xFFFFFFFF00000000, 0xFFFFFFFFFFFFFFFF, 0x00000000FFFFFFFE},
	}

	// montgomeryR2 is R^2 mod p, multiplying by it moves a value into Montgomery form
	montgomeryR2 = [4]uint64{0x0000000000000003, 0xFFFFFFFBFFFFFFFF, 0xFFFFFFFFFFFFFFFE, 0x00000004FFFFFFFD}

	// fieldPMinus2 is the Fermat inversion exponent p-2
	fieldPMinus2 = [4]uint64{0xFFFFFFFFFFFFFFFD, 0x00000000FFFFFFFF, 0x0000000000000000, 0xFFFFFFFF00000001}

	// fieldSqrtExp is (p+1)/4; p = 3 mod 4 so a^((p+1)/4) is a square root when one exists
	fieldSqrtExp = [4]uint64{0x0000000000000000, 0x0000000040000000, 0x4000000000000000, 0x3FFFFFFFC0000000}
)

// NewFieldElement creates a field element from a 32-byte big-endian array.
func NewFieldElement(b32 []byte) (*FieldElement, error) {
	return new(FieldElement).SetBytes(b32)
}

// SetBytes sets r to the value of a 32-byte big-endian array. It fails with
// ErrOutOfRange if the value is not below p; r is left unchanged on error.
func (r *FieldElement) SetBytes(b []byte) (*FieldElement, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("field element must be 32 bytes, got %d: %w", len(b), ErrInvalidLength)
	}

	var x [4]uint64
	x[3] = binary.BigEndian.Uint64(b[0:8])
	x[2] = binary.BigEndian.Uint64(b[8:16])
	x[1] = binary.BigEndian.Uint64(b[16:24])
	x[0] = binary.BigEndian.Uint64(b[24:32])

	// x < p exactly when x - p borrows
	var borrow uint64
	_, borrow = bits.Sub64(x[0], fieldModulusLimb0, 0)
	_, borrow = bits.Sub64(x[1], fieldModulusLimb1, borrow)
	_, borrow = bits.Sub64(x[2], fieldModulusLimb2, borrow)
	_, borrow = bits.Sub64(x[3], fieldModulusLimb3, borrow)
	if borrow == 0 {
		return nil, fmt.Errorf("field element: %w", ErrOutOfRange)
	}

	r.n = fieldMontMul(&x, &montgomeryR2)
	return r, nil
}

// setInt sets r to a small integer value
func (r *FieldElement) setInt(a uint64) *FieldElement {
	x := [4]uint64{a, 0, 0, 0}
	r.n = fieldMontMul(&x, &montgomeryR2)
	return r
}

// Bytes returns the 32-byte big-endian encoding of r.
func (r *FieldElement) Bytes() []byte {
	var out [32]byte
	r.getB32(out[:])
	return out[:]
}

// getB32 writes the canonical value of r to a 32-byte big-endian buffer
func (r *FieldElement) getB32(b []byte) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}

	x := r.canonical()
	binary.BigEndian.PutUint64(b[0:8], x[3])
	binary.BigEndian.PutUint64(b[8:16], x[2])
	binary.BigEndian.PutUint64(b[16:24], x[1])
	binary.BigEndian.PutUint64(b[24:32], x[0])
}

// canonical returns the limbs of r taken out of Montgomery form
func (r *FieldElement) canonical() [4]uint64 {
	one := [4]uint64{1, 0, 0, 0}
	return fieldMontMul(&r.n, &one)
}

// String returns the big-endian hex encoding of r.
func (r *FieldElement) String() string {
	return EncodeHex(r.Bytes())
}

// Set sets r = a.
func (r *FieldElement) Set(a *FieldElement) *FieldElement {
	*r = *a
	return r
}

// IsZero returns 1 if r == 0, and 0 otherwise.
func (r *FieldElement) IsZero() int {
	return r.Equal(&FieldElementZero)
}

// Equal returns 1 if r == a, and 0 otherwise.
func (r *FieldElement) Equal(a *FieldElement) int {
	var x, y [32]byte
	r.putLimbs(&x)
	a.putLimbs(&y)
	return subtle.ConstantTimeCompare(x[:], y[:])
}

// putLimbs copies the raw limbs into a byte array for constant-time comparison
func (r *FieldElement) putLimbs(out *[32]byte) {
	binary.LittleEndian.PutUint64(out[0:8], r.n[0])
	binary.LittleEndian.PutUint64(out[8:16], r.n[1])
	binary.LittleEndian.PutUint64(out[16:24], r.n[2])
	binary.LittleEndian.PutUint64(out[24:32], r.n[3])
}

// IsOdd returns 1 if the canonical value of r is odd, and 0 otherwise.
func (r *FieldElement) IsOdd() int {
	x := r.canonical()
	return int(x[0] & 1)
}

// Select sets r to a if cond == 1, and to b if cond == 0.
func (r *FieldElement) Select(a, b *FieldElement, cond int) *FieldElement {
	mask := -uint64(cond & 1)
	r.n[0] = (a.n[0] & mask) | (b.n[0] &^ mask)
	r.n[1] = (a.n[1] & mask) | (b.n[1] &^ mask)
	r.n[2] = (a.n[2] & mask) | (b.n[2] &^ mask)
	r.n[3] = (a.n[3] & mask) | (b.n[3] &^ mask)
	return r
}

// Add sets r = a + b mod p.
func (r *FieldElement) Add(a, b *FieldElement) *FieldElement {
	t0, carry := bits.Add64(a.n[0], b.n[0], 0)
	t1, carry := bits.Add64(a.n[1], b.n[1], carry)
	t2, carry := bits.Add64(a.n[2], b.n[2], carry)
	t3, carry := bits.Add64(a.n[3], b.n[3], carry)

	r.n = fieldReduceOnce(t0, t1, t2, t3, carry)
	return r
}

// Sub sets r = a - b mod p.
func (r *FieldElement) Sub(a, b *FieldElement) *FieldElement {
	t0, borrow := bits.Sub64(a.n[0], b.n[0], 0)
	t1, borrow := bits.Sub64(a.n[1], b.n[1], borrow)
	t2, borrow := bits.Sub64(a.n[2], b.n[2], borrow)
	t3, borrow := bits.Sub64(a.n[3], b.n[3], borrow)

	// Add p back if the subtraction wrapped
	mask := -borrow
	var carry uint64
	t0, carry = bits.Add64(t0, fieldModulusLimb0&mask, 0)
	t1, carry = bits.Add64(t1, fieldModulusLimb1&mask, carry)
	t2, carry = bits.Add64(t2, fieldModulusLimb2&mask, carry)
	t3, _ = bits.Add64(t3, fieldModulusLimb3&mask, carry)

	r.n = [4]uint64{t0, t1, t2, t3}
	return r
}

// Negate sets r = -a mod p.
func (r *FieldElement) Negate(a *FieldElement) *FieldElement {
	return r.Sub(&FieldElementZero, a)
}

// Mul sets r = a * b mod p.
func (r *FieldElement) Mul(a, b *FieldElement) *FieldElement {
	r.n = fieldMontMul(&a.n, &b.n)
	return r
}

// Square sets r = a * a mod p.
func (r *FieldElement) Square(a *FieldElement) *FieldElement {
	r.n = fieldMontMul(&a.n, &a.n)
	return r
}

// Invert sets r = 1/a mod p, computed as a^(p-2). The exponentiation runs
// in full for every input; ErrDivisionByZero is reported if a == 0.
func (r *FieldElement) Invert(a *FieldElement) (*FieldElement, error) {
	var t FieldElement
	t.pow(a, &fieldPMinus2)
	if a.IsZero() == 1 {
		return nil, ErrDivisionByZero
	}
	*r = t
	return r, nil
}

// Sqrt sets r to a square root of a. It fails with ErrNoSquareRoot if a is
// not a quadratic residue, leaving r unchanged.
func (r *FieldElement) Sqrt(a *FieldElement) (*FieldElement, error) {
	var cand, check FieldElement
	cand.pow(a, &fieldSqrtExp)
	check.Square(&cand)
	if check.Equal(a) != 1 {
		return nil, ErrNoSquareRoot
	}
	*r = cand
	return r, nil
}

// pow sets r = a^e. The exponent is public, so its bits drive the schedule.
func (r *FieldElement) pow(a *FieldElement, e *[4]uint64) *FieldElement {
	x := *a
	z := FieldElementOne
	for i := 3; i >= 0; i-- {
		for j := 63; j >= 0; j-- {
			z.Square(&z)
			if (e[i]>>uint(j))&1 == 1 {
				z.Mul(&z, &x)
			}
		}
	}
	*r = z
	return r
}
