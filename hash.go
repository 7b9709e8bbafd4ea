package p256

import (
	"hash"
	"io"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"
)

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	h := &SHA256{}
	h.hasher = sha256simd.New()
	return h
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize finalizes the hash and writes the result to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// newSHA256 adapts the SIMD SHA-256 to the hash constructor signature
func newSHA256() hash.Hash {
	return sha256simd.New()
}

// newKeyStream returns an HKDF-SHA256 output stream for the given seed,
// salt and info. The stream ends after 255*32 bytes.
func newKeyStream(seed, salt, info []byte) io.Reader {
	return hkdf.New(newSHA256, seed, salt, info)
}
