package p256

import "crypto/subtle"

// Precomputed table configuration
const (
	// Window size for windowed multiplication (4 bits = 16 entries per window)
	EcmultWindowSize = 4
	EcmultTableSize  = 1 << EcmultWindowSize // 16

	// Number of windows needed for 256-bit scalars
	EcmultWindows = (256 + EcmultWindowSize - 1) / EcmultWindowSize // 64 windows
)

// ecmultTable holds the multiples 0*P, 1*P, ..., 15*P of a point
type ecmultTable [EcmultTableSize]GroupElementProjective

// build fills the table with the first 16 multiples of p
func (t *ecmultTable) build(p *GroupElementProjective) {
	t[0].SetInfinity()
	t[1] = *p
	for j := 2; j < EcmultTableSize; j++ {
		if j%2 == 0 {
			t[j].Double(&t[j/2])
		} else {
			t[j].Add(&t[j-1], p)
		}
	}
}

// selectInto sets r = t[idx], reading every entry so the access pattern
// does not depend on idx
func (t *ecmultTable) selectInto(r *GroupElementProjective, idx uint32) {
	r.SetInfinity()
	for j := 1; j < EcmultTableSize; j++ {
		cond := subtle.ConstantTimeEq(int32(j), int32(idx))
		r.Select(&t[j], r, cond)
	}
}

// ScalarMult sets r = k*p and returns r.
//
// The scalar is processed from the most significant of its 256 bits down.
// Every iteration doubles the accumulator, adds p, and keeps the sum only if
// the current bit is set, using a conditional move, so the sequence of field
// operations is the same for every k. k = 0 or p = infinity yields infinity.
func (r *GroupElementProjective) ScalarMult(k *Scalar, p *GroupElementProjective) *GroupElementProjective {
	base := *p

	var acc, sum GroupElementProjective
	acc.SetInfinity()
	for i := 255; i >= 0; i-- {
		acc.Double(&acc)
		sum.Add(&acc, &base)
		acc.Select(&sum, &acc, int(k.bit(uint(i))))
	}

	*r = acc
	return r
}

// ScalarMultWindowed sets r = k*p and returns r, using a 4-bit fixed window.
// It computes the same result as ScalarMult with 64 additions instead of 256;
// table lookups scan all entries.
func (r *GroupElementProjective) ScalarMultWindowed(k *Scalar, p *GroupElementProjective) *GroupElementProjective {
	var table ecmultTable
	table.build(p)

	var acc, t GroupElementProjective
	acc.SetInfinity()
	for i := EcmultWindows - 1; i >= 0; i-- {
		for j := 0; j < EcmultWindowSize; j++ {
			acc.Double(&acc)
		}
		table.selectInto(&t, k.getBits(uint(i*EcmultWindowSize), EcmultWindowSize))
		acc.Add(&acc, &t)
	}

	*r = acc
	return r
}
