package p256

import (
	"bytes"
	"crypto/sha256"
	"io"
	"testing"
)

func TestSHA256(t *testing.T) {
	testCases := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: []byte{}},
		{name: "abc", input: []byte("abc")},
		{name: "long_message", input: []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq")},
		{name: "multi_block", input: bytes.Repeat([]byte{0x5a}, 1000)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var output [32]byte
			h := NewSHA256()
			h.Write(tc.input)
			h.Finalize(output[:])

			// Compare with Go's crypto/sha256
			goHash := sha256.Sum256(tc.input)
			if !bytes.Equal(output[:], goHash[:]) {
				t.Errorf("SHA256 doesn't match Go's implementation.\nExpected: %x\nGot:      %x", goHash[:], output[:])
			}
		})
	}
}

func TestKeyStream(t *testing.T) {
	a := make([]byte, 96)
	b := make([]byte, 96)
	if _, err := io.ReadFull(newKeyStream([]byte("seed"), nil, []byte("info")), a); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := io.ReadFull(newKeyStream([]byte("seed"), nil, []byte("info")), b); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("key stream should be deterministic")
	}

	if _, err := io.ReadFull(newKeyStream([]byte("seed"), nil, []byte("other")), b); err != nil {
		t.Fatalf("read: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("different info should give a different stream")
	}
}

func BenchmarkSHA256(b *testing.B) {
	data := make([]byte, 64)
	var out [32]byte

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := NewSHA256()
		h.Write(data)
		h.Finalize(out[:])
	}
}
