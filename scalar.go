package p256

import (
	"crypto/subtle"
	"encoding/binary"
	"math/bits"
)

// Scalar represents an integer modulo the group order n of the P-256 curve.
// This implementation uses 4 uint64 limbs in little-endian order and always
// holds a fully reduced value.
type Scalar struct {
	d [4]uint64
}

// Group order constants (P-256 curve order n)
const (
	// Limbs of the P-256 order
	scalarN0 = 0xF3B9CAC2FC632551
	scalarN1 = 0xBCE6FAADA7179E84
	scalarN2 = 0xFFFFFFFFFFFFFFFF
	scalarN3 = 0xFFFFFFFF00000000
)

// Scalar constants
var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{d: [4]uint64{0, 0, 0, 0}}

	// ScalarOne represents the scalar 1
	ScalarOne = Scalar{d: [4]uint64{1, 0, 0, 0}}
)

// NewScalar creates a scalar from a big-endian byte string of any length,
// reduced modulo the group order.
func NewScalar(b []byte) *Scalar {
	return new(Scalar).SetBytes(b)
}

// SetBytes sets r to the big-endian integer b reduced modulo n. Inputs of
// any length are accepted; values not below n are reduced silently.
func (r *Scalar) SetBytes(b []byte) *Scalar {
	if len(b) <= 32 {
		var b32 [32]byte
		copy(b32[32-len(b):], b)
		r.setB32(b32[:])
		return r
	}

	// Longer inputs are folded in one bit at a time
	var acc Scalar
	for _, c := range b {
		for j := 7; j >= 0; j-- {
			acc.shiftIn(uint64(c>>uint(j)) & 1)
		}
	}
	*r = acc
	return r
}

// setB32 sets a scalar from a 32-byte big-endian array, reducing modulo the
// group order, and reports whether the input was not below n
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	t3 := binary.BigEndian.Uint64(bin[0:8])
	t2 := binary.BigEndian.Uint64(bin[8:16])
	t1 := binary.BigEndian.Uint64(bin[16:24])
	t0 := binary.BigEndian.Uint64(bin[24:32])

	// 2^256 < 2n, so a single conditional subtraction reduces any 256-bit value
	var borrow uint64
	r.d, borrow = scalarReduceOnce(t0, t1, t2, t3, 0)
	return borrow == 0
}

// setB32Seckey sets a scalar from a 32-byte array and returns true if it is
// a valid secret key (0 < k < n)
func (r *Scalar) setB32Seckey(bin []byte) bool {
	overflow := r.setB32(bin)
	return !overflow && r.IsZero() == 0
}

// setInt sets a scalar to an unsigned integer value
func (r *Scalar) setInt(v uint64) *Scalar {
	r.d = [4]uint64{v, 0, 0, 0}
	return r
}

// Bytes returns the 32-byte big-endian encoding of r.
func (r *Scalar) Bytes() []byte {
	var out [32]byte
	r.getB32(out[:])
	return out[:]
}

// getB32 converts a scalar to a 32-byte big-endian array
func (r *Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("output buffer must be 32 bytes")
	}

	binary.BigEndian.PutUint64(bin[0:8], r.d[3])
	binary.BigEndian.PutUint64(bin[8:16], r.d[2])
	binary.BigEndian.PutUint64(bin[16:24], r.d[1])
	binary.BigEndian.PutUint64(bin[24:32], r.d[0])
}

// String returns the big-endian hex encoding of r.
func (r *Scalar) String() string {
	return EncodeHex(r.Bytes())
}

// shiftIn sets r = 2r + bit mod n. Since r < n, 2r + 1 < 2n.
func (r *Scalar) shiftIn(bit uint64) {
	top := r.d[3] >> 63
	t3 := r.d[3]<<1 | r.d[2]>>63
	t2 := r.d[2]<<1 | r.d[1]>>63
	t1 := r.d[1]<<1 | r.d[0]>>63
	t0 := r.d[0]<<1 | bit&1
	r.d, _ = scalarReduceOnce(t0, t1, t2, t3, top)
}

// scalarReduceOnce reduces t4:t3:t2:t1:t0 < 2n into [0, n) and returns the
// final borrow (1 when the input was already below n)
func scalarReduceOnce(t0, t1, t2, t3, t4 uint64) ([4]uint64, uint64) {
	s0, borrow := bits.Sub64(t0, scalarN0, 0)
	s1, borrow := bits.Sub64(t1, scalarN1, borrow)
	s2, borrow := bits.Sub64(t2, scalarN2, borrow)
	s3, borrow := bits.Sub64(t3, scalarN3, borrow)
	_, borrow = bits.Sub64(t4, 0, borrow)

	mask := -borrow
	return [4]uint64{
		(t0 & mask) | (s0 &^ mask),
		(t1 & mask) | (s1 &^ mask),
		(t2 & mask) | (s2 &^ mask),
		(t3 & mask) | (s3 &^ mask),
	}, borrow
}

// Add sets r = a + b mod n.
func (r *Scalar) Add(a, b *Scalar) *Scalar {
	t0, carry := bits.Add64(a.d[0], b.d[0], 0)
	t1, carry := bits.Add64(a.d[1], b.d[1], carry)
	t2, carry := bits.Add64(a.d[2], b.d[2], carry)
	t3, carry := bits.Add64(a.d[3], b.d[3], carry)

	r.d, _ = scalarReduceOnce(t0, t1, t2, t3, carry)
	return r
}

// Sub sets r = a - b mod n.
func (r *Scalar) Sub(a, b *Scalar) *Scalar {
	t0, borrow := bits.Sub64(a.d[0], b.d[0], 0)
	t1, borrow := bits.Sub64(a.d[1], b.d[1], borrow)
	t2, borrow := bits.Sub64(a.d[2], b.d[2], borrow)
	t3, borrow := bits.Sub64(a.d[3], b.d[3], borrow)

	mask := -borrow
	var carry uint64
	t0, carry = bits.Add64(t0, scalarN0&mask, 0)
	t1, carry = bits.Add64(t1, scalarN1&mask, carry)
	t2, carry = bits.Add64(t2, scalarN2&mask, carry)
	t3, _ = bits.Add64(t3, scalarN3&mask, carry)

	r.d = [4]uint64{t0, t1, t2, t3}
	return r
}

// Negate sets r = -a mod n.
func (r *Scalar) Negate(a *Scalar) *Scalar {
	return r.Sub(&ScalarZero, a)
}

// IsZero returns 1 if r == 0, and 0 otherwise.
func (r *Scalar) IsZero() int {
	return r.Equal(&ScalarZero)
}

// Equal returns 1 if r == a, and 0 otherwise.
func (r *Scalar) Equal(a *Scalar) int {
	var x, y [32]byte
	r.getB32(x[:])
	a.getB32(y[:])
	return subtle.ConstantTimeCompare(x[:], y[:])
}

// bit returns bit i of the scalar. The position is public; the value is not
// branched on by any caller.
func (r *Scalar) bit(i uint) uint64 {
	return (r.d[i/64] >> (i % 64)) & 1
}

// getBits extracts count bits starting at offset
func (r *Scalar) getBits(offset, count uint) uint32 {
	if count == 0 || count > 32 || offset+count > 256 {
		panic("invalid bit range")
	}

	limbIdx := offset / 64
	bitIdx := offset % 64

	if bitIdx+count <= 64 {
		// Bits are within a single limb
		return uint32((r.d[limbIdx] >> bitIdx) & ((1 << count) - 1))
	}

	// Bits span two limbs
	lowBits := 64 - bitIdx
	highBits := count - lowBits

	low := uint32((r.d[limbIdx] >> bitIdx) & ((1 << lowBits) - 1))
	high := uint32(r.d[limbIdx+1] & ((1 << highBits) - 1))

	return low | (high << lowBits)
}

// cmov conditionally moves a scalar. If flag is 1, r = a; otherwise r is unchanged.
func (r *Scalar) cmov(a *Scalar, flag int) {
	mask := -uint64(flag & 1)
	r.d[0] ^= mask & (r.d[0] ^ a.d[0])
	r.d[1] ^= mask & (r.d[1] ^ a.d[1])
	r.d[2] ^= mask & (r.d[2] ^ a.d[2])
	r.d[3] ^= mask & (r.d[3] ^ a.d[3])
}

// clear zeroes a scalar that held secret data
func (r *Scalar) clear() {
	r.d = [4]uint64{}
}
