package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantLow byte
		wantErr bool
	}{
		{name: "decimal", input: "255", wantLow: 0xff},
		{name: "hex", input: "0xff", wantLow: 0xff},
		{name: "hex_upper_prefix", input: "0XFF", wantLow: 0xff},
		{name: "zero", input: "0", wantLow: 0},
		{name: "negative", input: "-1", wantErr: true},
		{name: "not_a_number", input: "abc", wantErr: true},
		{name: "odd_hex", input: "0xfff", wantErr: true},
		{name: "too_long_hex", input: "0x01" + repeat("00", 32), wantErr: true},
		{name: "too_large_decimal", input: "115792089237316195423570985008687907853269984665640564039457584007913129639936", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseNumber(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantLow, got[31])
			for _, b := range got[:31] {
				require.Zero(t, b)
			}
		})
	}
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
