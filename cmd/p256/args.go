package main

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"p256.mleku.dev"
)

// parseNumber parses a decimal or 0x-prefixed hex argument into a 32-byte
// big-endian value
func parseNumber(s string) ([32]byte, error) {
	var b32 [32]byte
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := p256.DecodeHex(s)
		if err != nil {
			return b32, errors.Wrapf(err, "parsing %q", s)
		}
		if len(b) > 32 {
			return b32, errors.Errorf("parsing %q: longer than 32 bytes", s)
		}
		copy(b32[32-len(b):], b)
		return b32, nil
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return b32, errors.Wrapf(err, "parsing %q", s)
	}
	return v.Bytes32(), nil
}

// parsePoint parses a coordinate pair and checks it lies on the curve
func parsePoint(xs, ys string) (*p256.GroupElementAffine, error) {
	x, err := parseNumber(xs)
	if err != nil {
		return nil, err
	}
	y, err := parseNumber(ys)
	if err != nil {
		return nil, err
	}
	p, err := p256.NewAffinePoint(x[:], y[:], true)
	if err != nil {
		return nil, errors.Wrapf(err, "point (%s, %s)", xs, ys)
	}
	return p, nil
}

// parseScalar parses a scalar argument, reduced modulo n
func parseScalar(s string) (*p256.Scalar, error) {
	k, err := parseNumber(s)
	if err != nil {
		return nil, err
	}
	return p256.NewScalar(k[:]), nil
}
