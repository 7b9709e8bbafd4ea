package p256

import "errors"

// Errors returned by the arithmetic and encoding layers. Callers should
// compare with errors.Is, since most are returned wrapped with context.
var (
	// ErrOutOfRange is returned when an integer is not below its modulus.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLength is returned when a fixed-size buffer has the wrong length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrPointNotOnCurve is returned when coordinates fail y^2 = x^3 - 3x + b.
	ErrPointNotOnCurve = errors.New("point not on curve")

	// ErrDivisionByZero is returned when inverting zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidEncoding is returned for malformed SEC1 point encodings.
	ErrInvalidEncoding = errors.New("invalid point encoding")

	// ErrNoSquareRoot is returned when a compressed x coordinate has no
	// matching y on the curve.
	ErrNoSquareRoot = errors.New("no square root")

	// ErrInvalidHex is returned for malformed hexadecimal text.
	ErrInvalidHex = errors.New("invalid hex")

	// ErrInvalidSeckey is returned when a secret key is zero or not below n.
	ErrInvalidSeckey = errors.New("invalid secret key")
)
