// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package base58

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBase58 means the input contains a character outside the
	// Base58 alphabet.
	ErrInvalidBase58 = errors.New("invalid base58")

	// ErrInvalidLength means the decoded payload is too short to carry a
	// checksum.
	ErrInvalidLength = errors.New("invalid length")
)

// ChecksumError is returned when a checksummed text form fails
// verification. Both checksums are carried, read as little-endian 32-bit
// integers, so a caller can report exactly what was expected.
type ChecksumError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("bad checksum: expected %08x, got %08x", e.Expected, e.Actual)
}
