// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keys

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"gitlab.com/antelopenetwork/chaincore/pkg/base58"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// CurveType identifies the elliptic curve of a signature. It is written as
// a varuint tag ahead of the signature bytes.
type CurveType uint32

// CurveK1 is the secp256k1 curve, the only curve this package supports.
const CurveK1 CurveType = 0

func (t CurveType) String() string {
	switch t {
	case CurveK1:
		return "K1"
	default:
		return fmt.Sprintf("CurveType(%d)", uint32(t))
	}
}

// SignatureSize is the length of a compact recoverable signature: one
// recovery byte followed by the 32-byte R and S scalars.
const SignatureSize = 65

// SignaturePrefix tags the text form of a K1 signature.
const SignaturePrefix = "SIG_K1_"

// Signature is a compact recoverable secp256k1 signature. Data holds the
// recovery byte (27 + recovery id + 4 for the compressed convention)
// followed by R and S.
type Signature struct {
	Type CurveType
	Data [SignatureSize]byte
}

// ParseSignature parses the checksummed text form of a signature, e.g.
// "SIG_K1_KomV6…". The curve tag participates in the checksum.
func ParseSignature(s string) (Signature, error) {
	// Check the prefix
	if !strings.HasPrefix(s, SignaturePrefix) {
		return Signature{}, fmt.Errorf("%w: signature must start with %q", ErrBadPrefix, SignaturePrefix)
	}

	// Decode and verify the checksum
	payload, err := base58.CheckDecode(s[len(SignaturePrefix):], SignatureSize, []byte(CurveK1.String()))
	if err != nil {
		return Signature{}, fmt.Errorf("invalid signature: %w", err)
	}

	sig := Signature{Type: CurveK1}
	copy(sig.Data[:], payload)
	return sig, nil
}

// Standard returns the context-free (R, S) form used for verification,
// discarding the recovery byte.
func (s Signature) Standard() (*btcec.Signature, error) {
	if s.Type != CurveK1 {
		return nil, fmt.Errorf("%w: cannot verify a %v signature", ErrInvalidSignature, s.Type)
	}
	return &btcec.Signature{
		R: new(big.Int).SetBytes(s.Data[1:33]),
		S: new(big.Int).SetBytes(s.Data[33:]),
	}, nil
}

// RecoverPublicKey recovers the compressed public key that produced sig
// over hash. The recovery byte selects the candidate point, so recovery
// needs no key material.
func RecoverPublicKey(hash []byte, sig Signature) (PublicKey, error) {
	if sig.Type != CurveK1 {
		return PublicKey{}, fmt.Errorf("%w: cannot recover from a %v signature", ErrInvalidSignature, sig.Type)
	}
	key, compressed, err := btcec.RecoverCompact(btcec.S256(), sig.Data[:], hash)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return PublicKey{Compressed: compressed, Key: key}, nil
}

// IsCanonical reports whether the signature is in the canonical form block
// producers are required to emit: neither scalar may have its high bit set
// or begin with a zero-padded byte.
func (s Signature) IsCanonical() bool {
	return s.Data[1]&0x80 == 0 &&
		!(s.Data[1] == 0 && s.Data[2]&0x80 == 0) &&
		s.Data[33]&0x80 == 0 &&
		!(s.Data[33] == 0 && s.Data[34]&0x80 == 0)
}

// String returns the checksummed text form of the signature. The curve
// tag names both the prefix and the checksum suffix.
func (s Signature) String() string {
	tag := s.Type.String()
	return "SIG_" + tag + "_" + base58.CheckEncode(s.Data[:], []byte(tag))
}

// BinarySize returns the wire size of the signature: the curve tag plus
// the compact bytes.
func (s *Signature) BinarySize() int {
	return encoding.VaruintSize(uint32(s.Type)) + SignatureSize
}

// MarshalBinaryTo writes the curve tag and the compact signature bytes.
func (s *Signature) MarshalBinaryTo(w *encoding.Writer) error {
	if err := w.WriteVaruint32(uint32(s.Type)); err != nil {
		return err
	}
	return w.WriteRaw(s.Data[:])
}

// UnmarshalBinaryFrom reads the curve tag and the compact signature bytes.
// Tags other than K1 fail with encoding.ErrInvalidTag.
func (s *Signature) UnmarshalBinaryFrom(r *encoding.Reader) error {
	tag, err := r.ReadVaruint32()
	if err != nil {
		return err
	}
	if CurveType(tag) != CurveK1 {
		return fmt.Errorf("%w: %#x is not a known curve", encoding.ErrInvalidTag, tag)
	}
	s.Type = CurveType(tag)
	return r.ReadFull(s.Data[:])
}

// MarshalJSON renders the signature as its text form.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses the text form of a signature.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseSignature(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
