package p256

import "math/bits"

// fieldMontMul returns a*b*R^-1 mod p for a, b < p in Montgomery form.
//
// This is word-by-word Montgomery multiplication (CIOS). The Montgomery
// constant -p^-1 mod 2^64 is 1 because the low limb of p is 2^64 - 1, so the
// per-round multiplier m is simply the low accumulator word. The loop count
// and the final conditional subtraction are independent of the operands.
func fieldMontMul(a, b *[4]uint64) [4]uint64 {
	var t0, t1, t2, t3, t4 uint64

	for i := 0; i < 4; i++ {
		bi := b[i]
		var hi, lo, c, cc uint64

		// t += a * b[i]
		hi, lo = bits.Mul64(a[0], bi)
		t0, cc = bits.Add64(t0, lo, 0)
		c = hi + cc

		hi, lo = bits.Mul64(a[1], bi)
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		t1, cc = bits.Add64(t1, lo, 0)
		c = hi + cc

		hi, lo = bits.Mul64(a[2], bi)
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		t2, cc = bits.Add64(t2, lo, 0)
		c = hi + cc

		hi, lo = bits.Mul64(a[3], bi)
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		t3, cc = bits.Add64(t3, lo, 0)
		c = hi + cc

		var t5 uint64
		t4, t5 = bits.Add64(t4, c, 0)

		// t = (t + m*p) / 2^64 with m = t0, which clears the low word
		m := t0

		hi, lo = bits.Mul64(m, fieldModulusLimb0)
		_, cc = bits.Add64(t0, lo, 0)
		c = hi + cc

		hi, lo = bits.Mul64(m, fieldModulusLimb1)
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		t0, cc = bits.Add64(t1, lo, 0)
		c = hi + cc

		hi, lo = bits.Mul64(m, fieldModulusLimb2)
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		t1, cc = bits.Add64(t2, lo, 0)
		c = hi + cc

		hi, lo = bits.Mul64(m, fieldModulusLimb3)
		lo, cc = bits.Add64(lo, c, 0)
		hi += cc
		t2, cc = bits.Add64(t3, lo, 0)
		c = hi + cc

		t3, cc = bits.Add64(t4, c, 0)
		t4 = t5 + cc
	}

	return fieldReduceOnce(t0, t1, t2, t3, t4)
}

// fieldReduceOnce reduces the 257-bit value t4:t3:t2:t1:t0 < 2p into [0, p)
// with a single masked subtraction.
func fieldReduceOnce(t0, t1, t2, t3, t4 uint64) [4]uint64 {
	s0, borrow := bits.Sub64(t0, fieldModulusLimb0, 0)
	s1, borrow := bits.Sub64(t1, fieldModulusLimb1, borrow)
	s2, borrow := bits.Sub64(t2, fieldModulusLimb2, borrow)
	s3, borrow := bits.Sub64(t3, fieldModulusLimb3, borrow)
	_, borrow = bits.Sub64(t4, 0, borrow)

	// borrow == 1 means t < p, keep t
	mask := -borrow
	return [4]uint64{
		(t0 & mask) | (s0 &^ mask),
		(t1 & mask) | (s1 &^ mask),
		(t2 & mask) | (s2 &^ mask),
		(t3 & mask) | (s3 &^ mask),
	}
}
