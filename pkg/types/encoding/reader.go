// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Reader parses wire values from a buffer, advancing a cursor with every
// read. Malformed input is a permanent failure for that input; the reader
// never retries or recovers.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Pos returns the number of bytes consumed so far.
func (r *Reader) Pos() int { return r.pos }

// Remaining returns the number of bytes left to read.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrReadPastEnd, n, r.pos, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Peek returns the next byte without advancing the cursor. Types whose
// wire form starts with a self-describing discriminant use this to size
// the rest of the read.
func (r *Reader) Peek() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, fmt.Errorf("%w: need 1 byte at offset %d, have 0", ErrReadPastEnd, r.pos)
	}
	return r.buf[r.pos], nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads 2 little-endian bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32 reads 4 little-endian bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadUint64 reads 8 little-endian bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadBool reads a presence tag byte. Any value other than 0 or 1 fails
// with ErrInvalidTag.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %#x is not a presence flag", ErrInvalidTag, b)
	}
}

// ReadVaruint32 reads a variable-length unsigned integer. Prefixes that do
// not fit in 32 bits fail with ErrVarintOverflow.
func (r *Reader) ReadVaruint32() (uint32, error) {
	var v uint32
	for shift := uint(0); ; shift += 7 {
		b, err := r.ReadUint8()
		if err != nil {
			return 0, err
		}
		if shift == 28 && b > 0x0f {
			return 0, fmt.Errorf("%w: prefix at offset %d", ErrVarintOverflow, r.pos-1)
		}
		v |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// ReadFull fills dst with the next len(dst) bytes. Fixed-width fields such
// as digests and key material use this.
func (r *Reader) ReadFull(dst []byte) error {
	b, err := r.take(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadBytes reads a varuint length prefix and returns a copy of that many
// bytes. A prefix that declares more bytes than remain fails with
// ErrLengthMismatch.
func (r *Reader) ReadBytes() ([]byte, error) {
	b, err := r.readPrefixed()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadString reads a varuint length prefix and that many bytes of UTF-8.
// Byte sequences that are not valid UTF-8 fail with ErrInvalidUTF8.
func (r *Reader) ReadString() (string, error) {
	b, err := r.readPrefixed()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w at offset %d", ErrInvalidUTF8, r.pos-len(b))
	}
	return string(b), nil
}

func (r *Reader) readPrefixed() ([]byte, error) {
	n, err := r.ReadVaruint32()
	if err != nil {
		return nil, err
	}
	if int64(n) > int64(r.Remaining()) {
		return nil, fmt.Errorf("%w: declared %d bytes at offset %d, have %d", ErrLengthMismatch, n, r.pos, r.Remaining())
	}
	return r.take(int(n))
}
