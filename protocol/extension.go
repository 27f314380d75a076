// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"fmt"

	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// Extension is a tagged blob attached to block headers. Tags are assigned
// by protocol upgrades; this layer carries them without interpretation.
type Extension struct {
	Type uint16
	Data []byte
}

// An extension with an empty payload is a tag and a zero length prefix.
const minExtensionSize = 3

// BinarySize returns the byte length of the extension's binary form.
func (e *Extension) BinarySize() int {
	return 2 + encoding.BytesSize(e.Data)
}

// MarshalBinaryTo writes the extension to w.
func (e *Extension) MarshalBinaryTo(w *encoding.Writer) error {
	err := w.WriteUint16(e.Type)
	if err != nil {
		return err
	}
	return w.WriteBytes(e.Data)
}

// UnmarshalBinaryFrom reads the extension from r.
func (e *Extension) UnmarshalBinaryFrom(r *encoding.Reader) error {
	var err error
	e.Type, err = r.ReadUint16()
	if err != nil {
		return err
	}
	e.Data, err = r.ReadBytes()
	return err
}

func extensionsSize(exts []Extension) int {
	n := encoding.VaruintSize(uint32(len(exts)))
	for i := range exts {
		n += exts[i].BinarySize()
	}
	return n
}

func marshalExtensions(w *encoding.Writer, exts []Extension) error {
	err := w.WriteVaruint32(uint32(len(exts)))
	if err != nil {
		return err
	}
	for i := range exts {
		err = exts[i].MarshalBinaryTo(w)
		if err != nil {
			return err
		}
	}
	return nil
}

func unmarshalExtensions(r *encoding.Reader) ([]Extension, error) {
	n, err := r.ReadVaruint32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	// Bound the allocation by what the buffer could actually hold
	if int64(n)*minExtensionSize > int64(r.Remaining()) {
		return nil, fmt.Errorf("%w: declared %d extensions at offset %d, have %d bytes", encoding.ErrLengthMismatch, n, r.Pos(), r.Remaining())
	}

	exts := make([]Extension, n)
	for i := range exts {
		err = exts[i].UnmarshalBinaryFrom(r)
		if err != nil {
			return nil, err
		}
	}
	return exts, nil
}
