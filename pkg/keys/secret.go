// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keys

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec"
	"gitlab.com/antelopenetwork/chaincore/pkg/base58"
)

// wifVersion tags a wallet-import-format secp256k1 secret key.
const wifVersion = 0x80

// SecretKey is a secp256k1 private scalar. It derives a PublicKey and signs
// digests; its only serialized form is the WIF text encoding.
type SecretKey struct {
	key *btcec.PrivateKey
}

// SecretKeyFromBytes wraps a 32-byte scalar. The zero scalar is rejected.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	if len(b) != btcec.PrivKeyBytesLen {
		return SecretKey{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, btcec.PrivKeyBytesLen, len(b))
	}
	if bytes.Equal(b, make([]byte, btcec.PrivKeyBytesLen)) {
		return SecretKey{}, fmt.Errorf("%w: zero scalar", ErrInvalidSecretKey)
	}

	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return SecretKey{key: priv}, nil
}

// GenerateSecretKey returns a new random secret key.
func GenerateSecretKey() (SecretKey, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{key: priv}, nil
}

// ParseWIF parses a wallet-import-format secret key, e.g. "5KQwr…".
func ParseWIF(s string) (SecretKey, error) {
	// Decode
	b, err := base58.Decode(s)
	if err != nil {
		return SecretKey{}, fmt.Errorf("invalid wif: %w", err)
	}

	// Check the length: version, scalar, checksum
	if len(b) != 1+btcec.PrivKeyBytesLen+4 {
		return SecretKey{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, 1+btcec.PrivKeyBytesLen+4, len(b))
	}

	// Check the version
	if b[0] != wifVersion {
		return SecretKey{}, fmt.Errorf("%w: wif version must be %#x, got %#x", ErrBadPrefix, wifVersion, b[0])
	}

	// Verify the checksum
	checksum := sha256.Sum256(b[:1+btcec.PrivKeyBytesLen])
	checksum = sha256.Sum256(checksum[:])
	if !bytes.Equal(b[1+btcec.PrivKeyBytesLen:], checksum[:4]) {
		return SecretKey{}, fmt.Errorf("invalid wif: bad checksum")
	}

	return SecretKeyFromBytes(b[1 : 1+btcec.PrivKeyBytesLen])
}

// WIF returns the wallet-import-format text form of the secret key.
func (k SecretKey) WIF() string {
	if k.key == nil {
		return ""
	}

	// Add the version
	b := make([]byte, 1+btcec.PrivKeyBytesLen+4)
	b[0] = wifVersion
	n := 1 + copy(b[1:], k.key.Serialize())

	// Add the checksum
	checksum := sha256.Sum256(b[:n])
	checksum = sha256.Sum256(checksum[:])
	copy(b[n:], checksum[:4])

	// Encode
	return base58.Encode(b)
}

// String renders the secret key in its WIF text form.
func (k SecretKey) String() string { return k.WIF() }

// Bytes returns the 32-byte scalar.
func (k SecretKey) Bytes() []byte {
	if k.key == nil {
		return nil
	}
	return k.key.Serialize()
}

// PublicKey derives the public key for the secret. Derivation always
// yields the compressed form; this is the only construction path
// guaranteed to produce a key matching a given secret.
func (k SecretKey) PublicKey() PublicKey {
	if k.key == nil {
		return PublicKey{}
	}
	return PublicKey{Compressed: true, Key: k.key.PubKey()}
}

// Sign signs the SHA-256 digest of message.
func (k SecretKey) Sign(message []byte) (Signature, error) {
	hash := sha256.Sum256(message)
	return k.SignHash(hash[:])
}

// SignHash produces a compact recoverable signature over a precomputed
// digest. Signing is deterministic: the same key and digest always produce
// the same signature.
func (k SecretKey) SignHash(hash []byte) (Signature, error) {
	if k.key == nil {
		return Signature{}, fmt.Errorf("%w: no key material", ErrInvalidSecretKey)
	}

	compact, err := btcec.SignCompact(btcec.S256(), k.key, hash, true)
	if err != nil {
		return Signature{}, fmt.Errorf("sign: %w", err)
	}

	sig := Signature{Type: CurveK1}
	copy(sig.Data[:], compact)
	return sig, nil
}
