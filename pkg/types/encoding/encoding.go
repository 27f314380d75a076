// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package encoding implements the canonical wire format shared by all chain
// value types: little-endian fixed-width integers, variable-length unsigned
// integers for length prefixes, and flat field-order concatenation with no
// padding or alignment. Block identity and signature verification depend on
// these bytes being identical across independent implementations.
package encoding

// BinaryValue is the codec contract implemented by every wire value. A
// composite type derives its implementation mechanically from its fields in
// declaration order.
type BinaryValue interface {
	// BinarySize returns the exact length of the value's wire form.
	BinarySize() int

	// MarshalBinaryTo writes the value's wire form at the writer's cursor,
	// advancing it by exactly BinarySize bytes.
	MarshalBinaryTo(w *Writer) error

	// UnmarshalBinaryFrom parses the value's wire form at the reader's
	// cursor, advancing it past the consumed bytes.
	UnmarshalBinaryFrom(r *Reader) error
}

// Marshal returns the canonical wire form of v in a new buffer sized with
// BinarySize.
func Marshal(v BinaryValue) ([]byte, error) {
	buf := make([]byte, v.BinarySize())
	w := NewWriter(buf)
	if err := v.MarshalBinaryTo(w); err != nil {
		return nil, err
	}
	return buf, nil
}

// Unmarshal parses v from the start of data. Trailing bytes are not an
// error; callers that require exact consumption should use a Reader and
// check Remaining.
func Unmarshal(data []byte, v BinaryValue) error {
	return v.UnmarshalBinaryFrom(NewReader(data))
}

// VaruintSize returns the encoded length of v as a variable-length unsigned
// integer.
func VaruintSize(v uint32) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// BytesSize returns the wire size of b as a length-prefixed byte sequence.
func BytesSize(b []byte) int {
	return VaruintSize(uint32(len(b))) + len(b)
}

// StringSize returns the wire size of s as a length-prefixed UTF-8 string.
func StringSize(s string) int {
	return VaruintSize(uint32(len(s))) + len(s)
}
