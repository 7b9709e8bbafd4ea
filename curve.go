// Package p256 provides a pure Go, constant-time implementation of point
// arithmetic on the NIST P-256 (secp256r1) elliptic curve
//
//	y^2 = x^3 - 3x + b  over GF(p), p = 2^256 - 2^224 + 2^192 + 2^96 - 1
//
// The package is layered the same way as the curve math: FieldElement for
// GF(p), GroupElementAffine and GroupElementProjective for points, Scalar
// for integers modulo the group order n, scalar multiplication on top, and
// SEC1/hex encoding at the edges.
package p256

// Constants of the P-256 curve, big-endian hex
const (
	// Field prime: 2^256 - 2^224 + 2^192 + 2^96 - 1
	FieldPrime = "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"

	// Curve coefficient a = -3 mod p
	CurveA = "ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"

	// Curve coefficient b
	CurveB = "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"

	// Group order (number of points on the curve)
	GroupOrder = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"

	// Generator coordinates
	GeneratorXHex = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	GeneratorYHex = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"

	// Cofactor
	Cofactor = 1

	// BitSize of the field and of the group order
	BitSize = 256
)

// CurveParams holds the parameters (p, a, b, G, n, h) of the curve as
// 32-byte big-endian values.
type CurveParams struct {
	Name    string
	P, A, B [32]byte
	Gx, Gy  [32]byte
	N       [32]byte
	H       int
	BitSize int
}

var (
	// curveB is the coefficient b in Montgomery form
	curveB FieldElement

	// Generator is the base point G in affine coordinates
	Generator GroupElementAffine

	curveParams CurveParams
)

func init() {
	curveB = mustFieldElementHex(CurveB)

	Generator = GroupElementAffine{
		x: mustFieldElementHex(GeneratorXHex),
		y: mustFieldElementHex(GeneratorYHex),
	}

	curveParams = CurveParams{
		Name:    "P-256",
		P:       mustB32Hex(FieldPrime),
		A:       mustB32Hex(CurveA),
		B:       mustB32Hex(CurveB),
		Gx:      mustB32Hex(GeneratorXHex),
		Gy:      mustB32Hex(GeneratorYHex),
		N:       mustB32Hex(GroupOrder),
		H:       Cofactor,
		BitSize: BitSize,
	}
}

// Params returns a copy of the curve parameters.
func Params() CurveParams {
	return curveParams
}

func mustB32Hex(s string) (b32 [32]byte) {
	b, err := DecodeHex(s)
	if err != nil || len(b) != 32 {
		panic("p256: bad constant " + s)
	}
	copy(b32[:], b)
	return
}

func mustFieldElementHex(s string) (fe FieldElement) {
	b32 := mustB32Hex(s)
	if _, err := fe.SetBytes(b32[:]); err != nil {
		panic("p256: bad field constant " + s)
	}
	return
}
