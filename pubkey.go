package p256

import "fmt"

// SEC1 point encoding prefixes
const (
	ECInfinity      = 0x00
	ECCompressed    = 0x02
	ECCompressedOdd = 0x03
	ECUncompressed  = 0x04

	// Encoded lengths
	ECCompressedLen   = 33
	ECUncompressedLen = 65
)

// SerializeUncompressed returns the SEC1 uncompressed encoding 04 || x || y.
// The point at infinity encodes as the single byte 00.
func (r *GroupElementAffine) SerializeUncompressed() []byte {
	if r.infinity {
		return []byte{ECInfinity}
	}
	out := make([]byte, ECUncompressedLen)
	out[0] = ECUncompressed
	r.x.getB32(out[1:33])
	r.y.getB32(out[33:65])
	return out
}

// SerializeCompressed returns the SEC1 compressed encoding (02 | y&1) || x.
// The point at infinity encodes as the single byte 00.
func (r *GroupElementAffine) SerializeCompressed() []byte {
	if r.infinity {
		return []byte{ECInfinity}
	}
	out := make([]byte, ECCompressedLen)
	out[0] = ECCompressed | byte(r.y.IsOdd())
	r.x.getB32(out[1:33])
	return out
}

// ParsePoint decodes a SEC1 encoded point.
//
// Accepted forms are the single byte 00 (infinity), 33-byte compressed and
// 65-byte uncompressed points. Anything else, including the hybrid 06/07
// prefixes, fails with ErrInvalidEncoding. A coordinate not below p fails
// with ErrInvalidEncoding wrapping ErrOutOfRange. An uncompressed point off
// the curve fails with ErrPointNotOnCurve, and a compressed x with no
// matching y fails with ErrNoSquareRoot.
func ParsePoint(b []byte) (*GroupElementAffine, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty input: %w", ErrInvalidEncoding)
	}

	switch b[0] {
	case ECInfinity:
		if len(b) != 1 {
			return nil, fmt.Errorf("infinity with %d trailing bytes: %w", len(b)-1, ErrInvalidEncoding)
		}
		return NewGroupElementAffine(), nil

	case ECCompressed, ECCompressedOdd:
		if len(b) != ECCompressedLen {
			return nil, fmt.Errorf("compressed point of %d bytes: %w", len(b), ErrInvalidEncoding)
		}
		var x FieldElement
		if _, err := x.SetBytes(b[1:33]); err != nil {
			return nil, fmt.Errorf("%w: x: %w", ErrInvalidEncoding, err)
		}
		r := new(GroupElementAffine)
		if err := r.setXOVar(&x, b[0] == ECCompressedOdd); err != nil {
			return nil, fmt.Errorf("compressed point: %w", err)
		}
		return r, nil

	case ECUncompressed:
		if len(b) != ECUncompressedLen {
			return nil, fmt.Errorf("uncompressed point of %d bytes: %w", len(b), ErrInvalidEncoding)
		}
		var x, y FieldElement
		if _, err := x.SetBytes(b[1:33]); err != nil {
			return nil, fmt.Errorf("%w: x: %w", ErrInvalidEncoding, err)
		}
		if _, err := y.SetBytes(b[33:65]); err != nil {
			return nil, fmt.Errorf("%w: y: %w", ErrInvalidEncoding, err)
		}
		r := new(GroupElementAffine)
		r.setXY(&x, &y)
		if !r.IsOnCurve() {
			return nil, ErrPointNotOnCurve
		}
		return r, nil

	default:
		return nil, fmt.Errorf("unknown prefix 0x%02x: %w", b[0], ErrInvalidEncoding)
	}
}
