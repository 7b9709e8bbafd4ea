package p256

import (
	"fmt"
	"strings"

	fasthex "github.com/tmthrgd/go-hex"
)

// EncodeHex returns the lower-case hexadecimal encoding of b, without a
// prefix.
func EncodeHex(b []byte) string {
	return fasthex.EncodeToString(b)
}

// DecodeHex decodes hexadecimal text. An optional 0x or 0X prefix is
// accepted. Odd length or a non-hex character fails with ErrInvalidHex.
func DecodeHex(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	b, err := fasthex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return b, nil
}
