// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import "errors"

var (
	// ErrReadPastEnd means a read needed more bytes than remain in the
	// buffer.
	ErrReadPastEnd = errors.New("read past end of buffer")

	// ErrWritePastEnd means the destination buffer is smaller than the
	// value's wire form. Callers are expected to preallocate via
	// BinarySize.
	ErrWritePastEnd = errors.New("write past end of buffer")

	// ErrInvalidTag means a tag byte is not a valid discriminant for the
	// field being read.
	ErrInvalidTag = errors.New("invalid tag byte")

	// ErrInvalidUTF8 means a string field does not contain valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 string")

	// ErrLengthMismatch means a sequence or byte blob declares more bytes
	// than remain in the buffer.
	ErrLengthMismatch = errors.New("declared length mismatch")

	// ErrVarintOverflow means a variable-length integer does not fit in 32
	// bits.
	ErrVarintOverflow = errors.New("varuint overflows 32 bits")
)
