package p256

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	for _, b := range [][]byte{
		{},
		{0x00},
		{0xde, 0xad, 0xbe, 0xef},
		Generator.SerializeUncompressed(),
	} {
		s := EncodeHex(b)
		got, err := DecodeHex(s)
		require.NoError(t, err)
		require.Equal(t, len(b), len(got))
		require.Equal(t, s, EncodeHex(got))
	}
}

func TestDecodeHex(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{name: "lower", input: "0aff", want: []byte{0x0a, 0xff}},
		{name: "upper", input: "0AFF", want: []byte{0x0a, 0xff}},
		{name: "prefix", input: "0x0aff", want: []byte{0x0a, 0xff}},
		{name: "upper_prefix", input: "0X0aff", want: []byte{0x0a, 0xff}},
		{name: "non_hex", input: "zz", wantErr: true},
		{name: "odd_length", input: "abc", wantErr: true},
		{name: "prefix_odd", input: "0xabc", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeHex(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeHexLowerCase(t *testing.T) {
	require.Equal(t, "abcdef", EncodeHex([]byte{0xAB, 0xCD, 0xEF}))
}
