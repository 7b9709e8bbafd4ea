package p256

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
)

// Salt for seed-derived secret keys, SHA256("p256/seckey")
var (
	deriveSalt     [32]byte
	deriveSaltOnce sync.Once
)

func getDeriveSalt() []byte {
	deriveSaltOnce.Do(func() {
		h := NewSHA256()
		h.Write([]byte("p256/seckey"))
		h.Finalize(deriveSalt[:])
	})
	return deriveSalt[:]
}

// ECSeckeyVerify verifies that a 32-byte array is a valid secret key
func ECSeckeyVerify(seckey []byte) bool {
	if len(seckey) != 32 {
		return false
	}

	var scalar Scalar
	return scalar.setB32Seckey(seckey)
}

// ECSeckeyGenerate generates a new random secret key by rejection sampling
// from rnd. A nil rnd reads from crypto/rand.
func ECSeckeyGenerate(rnd io.Reader) ([]byte, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	return seckeyFromStream(rnd)
}

// ECSeckeyDerive deterministically derives a secret key from seed and info
// using HKDF-SHA256. Equal inputs always give the same key.
func ECSeckeyDerive(seed, info []byte) ([]byte, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("empty seed: %w", ErrInvalidLength)
	}
	return seckeyFromStream(newKeyStream(seed, getDeriveSalt(), info))
}

// seckeyFromStream reads 32-byte candidates from r until one is a valid
// secret key
func seckeyFromStream(r io.Reader) ([]byte, error) {
	seckey := make([]byte, 32)
	for {
		if _, err := io.ReadFull(r, seckey); err != nil {
			return nil, err
		}

		if ECSeckeyVerify(seckey) {
			return seckey, nil
		}
	}
}

// ECPubkeyCreate computes the public point seckey*G
func ECPubkeyCreate(seckey []byte) (*GroupElementAffine, error) {
	var k Scalar
	if len(seckey) != 32 || !k.setB32Seckey(seckey) {
		return nil, ErrInvalidSeckey
	}
	defer k.clear()

	var p GroupElementProjective
	p.ScalarBaseMult(&k)
	return p.Affine()
}

// KeyPair is a secret scalar and its public point
type KeyPair struct {
	Seckey [32]byte
	Pubkey GroupElementAffine
}

// keyPairJSON is the on-disk form of a KeyPair, 0x-prefixed 32-byte hex
type keyPairJSON struct {
	D string `json:"d"`
	X string `json:"x"`
	Y string `json:"y"`
}

// NewKeyPair builds a key pair from a secret key
func NewKeyPair(seckey []byte) (*KeyPair, error) {
	pub, err := ECPubkeyCreate(seckey)
	if err != nil {
		return nil, err
	}
	kp := &KeyPair{Pubkey: *pub}
	copy(kp.Seckey[:], seckey)
	return kp, nil
}

// ECKeyPairGenerate generates a new random key pair. A nil rnd reads from
// crypto/rand.
func ECKeyPairGenerate(rnd io.Reader) (*KeyPair, error) {
	seckey, err := ECSeckeyGenerate(rnd)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(seckey)
}

// ECKeyPairDerive derives a key pair from seed and info
func ECKeyPairDerive(seed, info []byte) (*KeyPair, error) {
	seckey, err := ECSeckeyDerive(seed, info)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(seckey)
}

// MarshalJSON encodes the key pair as {"d":"0x..","x":"0x..","y":"0x.."}.
func (kp KeyPair) MarshalJSON() ([]byte, error) {
	x, y := kp.Pubkey.Coordinates()
	return json.Marshal(keyPairJSON{
		D: hexutil.Encode(kp.Seckey[:]),
		X: hexutil.Encode(x[:]),
		Y: hexutil.Encode(y[:]),
	})
}

// UnmarshalJSON decodes a key pair and checks that the public point matches
// the secret key.
func (kp *KeyPair) UnmarshalJSON(data []byte) error {
	var enc keyPairJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return err
	}

	d, err := hexutil.Decode(enc.D)
	if err != nil {
		return fmt.Errorf("d: %w", err)
	}
	x, err := hexutil.Decode(enc.X)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := hexutil.Decode(enc.Y)
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}

	pub, err := NewAffinePoint(x, y, true)
	if err != nil {
		return err
	}
	derived, err := NewKeyPair(d)
	if err != nil {
		return err
	}
	if !derived.Pubkey.Equal(pub) {
		return fmt.Errorf("public point does not match secret key: %w", ErrInvalidSeckey)
	}

	*kp = *derived
	return nil
}
