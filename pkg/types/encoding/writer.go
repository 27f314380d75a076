// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/binary"
	"fmt"
)

// Writer writes wire values into a caller-provided buffer, advancing a
// cursor with every write. The cursor is local to one encode pass and is
// never shared across goroutines.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter returns a Writer positioned at the start of buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.pos }

func (w *Writer) claim(n int) ([]byte, error) {
	if len(w.buf)-w.pos < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrWritePastEnd, n, w.pos, len(w.buf)-w.pos)
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) error {
	b, err := w.claim(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// WriteUint16 writes v as 2 little-endian bytes.
func (w *Writer) WriteUint16(v uint16) error {
	b, err := w.claim(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

// WriteUint32 writes v as 4 little-endian bytes.
func (w *Writer) WriteUint32(v uint32) error {
	b, err := w.claim(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

// WriteUint64 writes v as 8 little-endian bytes.
func (w *Writer) WriteUint64(v uint64) error {
	b, err := w.claim(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

// WriteBool writes v as a single 0 or 1 tag byte. Optional fields use this
// as their presence flag.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteUint8(1)
	}
	return w.WriteUint8(0)
}

// WriteVaruint32 writes v as a variable-length unsigned integer: seven bits
// per byte, least significant group first, high bit set on every byte but
// the last. All length prefixes in the wire format use this encoding.
func (w *Writer) WriteVaruint32(v uint32) error {
	for {
		b := uint8(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		if err := w.WriteUint8(b); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
}

// WriteRaw copies b verbatim with no length prefix. Fixed-width fields such
// as digests and key material use this.
func (w *Writer) WriteRaw(b []byte) error {
	dst, err := w.claim(len(b))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// WriteBytes writes a varuint length prefix followed by b.
func (w *Writer) WriteBytes(b []byte) error {
	if err := w.WriteVaruint32(uint32(len(b))); err != nil {
		return err
	}
	return w.WriteRaw(b)
}

// WriteString writes a varuint length prefix followed by the UTF-8 bytes of
// s.
func (w *Writer) WriteString(s string) error {
	if err := w.WriteVaruint32(uint32(len(s))); err != nil {
		return err
	}
	dst, err := w.claim(len(s))
	if err != nil {
		return err
	}
	copy(dst, s)
	return nil
}
