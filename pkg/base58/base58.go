// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package base58 renders binary payloads as human-typable strings: plain
// Base58, and a checksummed form that appends the first four bytes of a
// RIPEMD-160 digest so that typos are caught on parse.
package base58

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // the wire format requires RIPEMD-160
)

// Encode returns the Base58 form of b, big-number style with leading zeros
// preserved.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode reverses Encode. Input containing a character outside the Base58
// alphabet fails with ErrInvalidBase58.
func Decode(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase58, err)
	}
	return b, nil
}

// CheckEncode appends the checksum of payload to payload and Base58-encodes
// the result. The suffix participates in the checksum but is not itself
// encoded; signature text forms use it to bind their curve tag into the
// checksum, key text forms pass nil.
func CheckEncode(payload, suffix []byte) string {
	// Add the checksum
	c := checksum(payload, suffix)
	b := make([]byte, len(payload)+4)
	n := copy(b, payload)
	copy(b[n:], c[:])

	// Encode
	return base58.Encode(b)
}

// CheckDecode reverses CheckEncode for a payload of known size: it
// Base58-decodes s, checks the length against size plus the four checksum
// bytes, recomputes the checksum over the payload and suffix, and returns
// the payload. A checksum mismatch fails with a *ChecksumError carrying
// both values.
func CheckDecode(s string, size int, suffix []byte) ([]byte, error) {
	// Decode
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}

	// Check the length
	if len(b) != size+4 {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidLength, size+4, len(b))
	}

	// Verify the checksum
	payload, got := b[:size], b[size:]
	want := checksum(payload, suffix)
	if !bytes.Equal(got, want[:]) {
		return nil, &ChecksumError{
			Expected: binary.LittleEndian.Uint32(want[:]),
			Actual:   binary.LittleEndian.Uint32(got),
		}
	}

	return payload, nil
}

// checksum returns the first four bytes of RIPEMD-160(payload ++ suffix).
func checksum(payload, suffix []byte) (c [4]byte) {
	h := ripemd160.New()
	h.Write(payload)
	h.Write(suffix)
	copy(c[:], h.Sum(nil))
	return c
}
