// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// Checksum256 is a 32 byte SHA-256 digest. Block digests and block IDs are
// both Checksum256 values.
type Checksum256 [32]byte

// Sha256 returns the SHA-256 digest of data.
func Sha256(data []byte) Checksum256 {
	return sha256.Sum256(data)
}

// DigestOf marshals v and returns the SHA-256 digest of its binary form.
func DigestOf(v encoding.BinaryValue) (Checksum256, error) {
	data, err := encoding.Marshal(v)
	if err != nil {
		return Checksum256{}, err
	}
	return Sha256(data), nil
}

// Checksum256FromBytes builds a checksum from a 32 byte slice.
func Checksum256FromBytes(b []byte) (Checksum256, error) {
	var c Checksum256
	if len(b) != len(c) {
		return c, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, len(c), len(b))
	}
	copy(c[:], b)
	return c, nil
}

// ParseChecksum256 parses a checksum from its hexadecimal form.
func ParseChecksum256(s string) (Checksum256, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Checksum256{}, fmt.Errorf("%w: %v", ErrInvalidChecksum, err)
	}
	return Checksum256FromBytes(b)
}

// Bytes returns the checksum as a new byte slice.
func (c Checksum256) Bytes() []byte {
	b := make([]byte, len(c))
	copy(b, c[:])
	return b
}

func (c Checksum256) String() string {
	return hex.EncodeToString(c[:])
}

// IsZero returns true if every byte of the checksum is zero.
func (c Checksum256) IsZero() bool {
	return c == Checksum256{}
}

// Hash0 returns the first eight bytes of the checksum as a little-endian
// integer. Block number embedding operates on this word.
func (c Checksum256) Hash0() uint64 {
	return binary.LittleEndian.Uint64(c[:8])
}

// WithHash0 returns a copy of the checksum with the first eight bytes
// replaced by the little-endian encoding of v. The receiver is not modified.
func (c Checksum256) WithHash0(v uint64) Checksum256 {
	binary.LittleEndian.PutUint64(c[:8], v)
	return c
}

// BinarySize returns the byte length of the checksum's binary form.
func (c *Checksum256) BinarySize() int {
	return len(c)
}

// MarshalBinaryTo writes the checksum to w.
func (c *Checksum256) MarshalBinaryTo(w *encoding.Writer) error {
	return w.WriteRaw(c[:])
}

// UnmarshalBinaryFrom reads the checksum from r.
func (c *Checksum256) UnmarshalBinaryFrom(r *encoding.Reader) error {
	return r.ReadFull(c[:])
}

func (c Checksum256) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Checksum256) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	v, err := ParseChecksum256(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
