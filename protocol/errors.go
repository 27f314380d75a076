// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import "errors"

var (
	// ErrInvalidLength means a fixed-size value was built from a slice of
	// the wrong size.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChecksum means a hex string did not parse as a checksum.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrMerkleTree classifies failures of the incremental Merkle
	// accumulator. The accumulator itself lives outside this package;
	// callers that unify its failures with decode failures match on this.
	ErrMerkleTree = errors.New("merkle tree error")
)
