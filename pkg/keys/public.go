// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package keys implements secp256k1 public keys, secret keys and compact
// recoverable signatures, together with their wire and checksummed text
// forms. Curve arithmetic is delegated to btcec; this package never
// implements curve math itself.
package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"gitlab.com/antelopenetwork/chaincore/pkg/base58"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// PublicKeyPrefix tags the text form of a public key.
const PublicKeyPrefix = "EOS"

// PublicKey is a secp256k1 public key. Compressed records which of the two
// canonical point encodings the key uses on the wire: 33 bytes when true,
// 65 when false. Keys are immutable once built and freely copyable.
type PublicKey struct {
	Compressed bool
	Key        *btcec.PublicKey
}

// PublicKeyFromBytes parses the compressed (33-byte) or uncompressed
// (65-byte) encoding of a curve point. Any other length fails with
// ErrInvalidLength; an off-curve or malformed point fails with
// ErrInvalidPublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	switch len(b) {
	case btcec.PubKeyBytesLenCompressed, btcec.PubKeyBytesLenUncompressed:
	default:
		return PublicKey{}, fmt.Errorf("%w: expected %d or %d bytes, got %d",
			ErrInvalidLength, btcec.PubKeyBytesLenCompressed, btcec.PubKeyBytesLenUncompressed, len(b))
	}

	key, err := btcec.ParsePubKey(b, btcec.S256())
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return PublicKey{Compressed: len(b) == btcec.PubKeyBytesLenCompressed, Key: key}, nil
}

// ParsePublicKey parses the checksummed text form of a compressed public
// key, e.g. "EOS8FdQ4…". Only the compressed encoding appears in text.
func ParsePublicKey(s string) (PublicKey, error) {
	// Check the prefix
	if !strings.HasPrefix(s, PublicKeyPrefix) {
		return PublicKey{}, fmt.Errorf("%w: public key must start with %q", ErrBadPrefix, PublicKeyPrefix)
	}

	// Decode and verify the checksum
	payload, err := base58.CheckDecode(s[len(PublicKeyPrefix):], btcec.PubKeyBytesLenCompressed, nil)
	if err != nil {
		return PublicKey{}, fmt.Errorf("invalid public key: %w", err)
	}

	return PublicKeyFromBytes(payload)
}

// Bytes returns the canonical point encoding selected by Compressed.
func (k PublicKey) Bytes() []byte {
	switch {
	case k.Key == nil:
		return nil
	case k.Compressed:
		return k.Key.SerializeCompressed()
	default:
		return k.Key.SerializeUncompressed()
	}
}

// Text returns the checksummed text form of the key's compressed encoding.
func (k PublicKey) Text() string {
	if k.Key == nil {
		return ""
	}
	return PublicKeyPrefix + base58.CheckEncode(k.Key.SerializeCompressed(), nil)
}

// String renders compressed keys in their text form and uncompressed keys
// as hex, since only the compressed encoding has a text form.
func (k PublicKey) String() string {
	switch {
	case k.Key == nil:
		return ""
	case k.Compressed:
		return k.Text()
	default:
		return hex.EncodeToString(k.Key.SerializeUncompressed())
	}
}

// Equal reports whether both keys are the same point in the same encoding.
func (k PublicKey) Equal(other PublicKey) bool {
	if k.Key == nil || other.Key == nil {
		return k.Key == other.Key && k.Compressed == other.Compressed
	}
	return k.Compressed == other.Compressed && k.Key.IsEqual(other.Key)
}

// Verify checks sig over the SHA-256 digest of message.
func (k PublicKey) Verify(message []byte, sig Signature) error {
	hash := sha256.Sum256(message)
	return k.VerifyHash(hash[:], sig)
}

// VerifyHash checks sig against a precomputed digest using the signature's
// standard form. Verification is deterministic and side-effect-free; a
// mismatch fails with ErrVerification.
func (k PublicKey) VerifyHash(hash []byte, sig Signature) error {
	if k.Key == nil {
		return fmt.Errorf("%w: no key material", ErrInvalidPublicKey)
	}
	std, err := sig.Standard()
	if err != nil {
		return err
	}
	if !std.Verify(hash, k.Key) {
		return ErrVerification
	}
	return nil
}

// BinarySize returns the wire size of the key: the bare point encoding,
// with no tag.
func (k *PublicKey) BinarySize() int {
	if !k.Compressed && k.Key != nil {
		return btcec.PubKeyBytesLenUncompressed
	}
	return btcec.PubKeyBytesLenCompressed
}

// MarshalBinaryTo writes the canonical point encoding.
func (k *PublicKey) MarshalBinaryTo(w *encoding.Writer) error {
	if k.Key == nil {
		return fmt.Errorf("%w: no key material", ErrInvalidPublicKey)
	}
	return w.WriteRaw(k.Bytes())
}

// UnmarshalBinaryFrom reads a point encoding. The point format byte is the
// wire discriminant: 0x02 and 0x03 introduce the 33-byte compressed form,
// 0x04 the 65-byte uncompressed form.
func (k *PublicKey) UnmarshalBinaryFrom(r *encoding.Reader) error {
	format, err := r.Peek()
	if err != nil {
		return err
	}

	var buf []byte
	switch format {
	case 0x02, 0x03:
		buf = make([]byte, btcec.PubKeyBytesLenCompressed)
	case 0x04:
		buf = make([]byte, btcec.PubKeyBytesLenUncompressed)
	default:
		return fmt.Errorf("%w: %#x is not a point format", encoding.ErrInvalidTag, format)
	}
	if err := r.ReadFull(buf); err != nil {
		return err
	}

	parsed, err := PublicKeyFromBytes(buf)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalJSON renders the key as its text form. Uncompressed keys have no
// text form and cannot be marshaled.
func (k PublicKey) MarshalJSON() ([]byte, error) {
	if k.Key == nil || !k.Compressed {
		return nil, fmt.Errorf("%w: only compressed keys have a text form", ErrInvalidPublicKey)
	}
	return json.Marshal(k.Text())
}

// UnmarshalJSON parses the text form of a key.
func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
