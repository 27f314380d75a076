// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecodeHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFixedWidthLayout(t *testing.T) {
	buf := make([]byte, 15)
	w := NewWriter(buf)
	require.NoError(t, w.WriteUint8(0x01))
	require.NoError(t, w.WriteUint16(0x0302))
	require.NoError(t, w.WriteUint32(0x07060504))
	require.NoError(t, w.WriteUint64(0x0f0e0d0c0b0a0908))
	require.Equal(t, 15, w.Pos())
	require.Equal(t, mustDecodeHex(t, "0102030405060708090a0b0c0d0e0f"), buf,
		"Fixed-width integers must be little-endian")

	r := NewReader(buf)
	u8, err := r.ReadUint8()
	require.NoError(t, err)
	u16, err := r.ReadUint16()
	require.NoError(t, err)
	u32, err := r.ReadUint32()
	require.NoError(t, err)
	u64, err := r.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), u8)
	require.Equal(t, uint16(0x0302), u16)
	require.Equal(t, uint32(0x07060504), u32)
	require.Equal(t, uint64(0x0f0e0d0c0b0a0908), u64)
	require.Zero(t, r.Remaining())
}

func TestVaruint32(t *testing.T) {
	cases := map[string]struct {
		Value uint32
		Hex   string
	}{
		"zero":      {0, "00"},
		"one":       {1, "01"},
		"max1byte":  {127, "7f"},
		"min2bytes": {128, "8001"},
		"300":       {300, "ac02"},
		"min3bytes": {16384, "808001"},
		"max":       {4294967295, "ffffffff0f"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			expect := mustDecodeHex(t, c.Hex)
			require.Equal(t, len(expect), VaruintSize(c.Value))

			buf := make([]byte, len(expect))
			w := NewWriter(buf)
			require.NoError(t, w.WriteVaruint32(c.Value))
			require.Equal(t, expect, buf)

			r := NewReader(buf)
			v, err := r.ReadVaruint32()
			require.NoError(t, err)
			require.Equal(t, c.Value, v)
			require.Zero(t, r.Remaining())
		})
	}

	t.Run("overflow", func(t *testing.T) {
		for _, s := range []string{"ffffffff1f", "8080808080"} {
			_, err := NewReader(mustDecodeHex(t, s)).ReadVaruint32()
			require.ErrorIs(t, err, ErrVarintOverflow)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := NewReader(mustDecodeHex(t, "80")).ReadVaruint32()
		require.ErrorIs(t, err, ErrReadPastEnd)
	})
}

func TestBool(t *testing.T) {
	for _, v := range []bool{false, true} {
		buf := make([]byte, 1)
		require.NoError(t, NewWriter(buf).WriteBool(v))

		got, err := NewReader(buf).ReadBool()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	_, err := NewReader([]byte{2}).ReadBool()
	require.ErrorIs(t, err, ErrInvalidTag)
}

func TestBytes(t *testing.T) {
	cases := map[string][]byte{
		"empty": {},
		"short": mustDecodeHex(t, "deadbeef"),
	}

	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			buf := make([]byte, BytesSize(b))
			require.NoError(t, NewWriter(buf).WriteBytes(b))

			r := NewReader(buf)
			got, err := r.ReadBytes()
			require.NoError(t, err)
			require.Equal(t, b, got)
			require.Zero(t, r.Remaining())
		})
	}

	t.Run("declares too much", func(t *testing.T) {
		// Prefix declares 5 bytes, only 2 follow
		_, err := NewReader(mustDecodeHex(t, "05abcd")).ReadBytes()
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("does not alias the input", func(t *testing.T) {
		buf := mustDecodeHex(t, "02abcd")
		got, err := NewReader(buf).ReadBytes()
		require.NoError(t, err)
		buf[1] = 0
		require.Equal(t, mustDecodeHex(t, "abcd"), got)
	})
}

func TestString(t *testing.T) {
	for _, s := range []string{"", "eosio", "héllo ⊕ wörld"} {
		buf := make([]byte, StringSize(s))
		require.NoError(t, NewWriter(buf).WriteString(s))

		r := NewReader(buf)
		got, err := r.ReadString()
		require.NoError(t, err)
		require.Equal(t, s, got)
		require.Zero(t, r.Remaining())
	}

	t.Run("invalid UTF-8", func(t *testing.T) {
		_, err := NewReader(mustDecodeHex(t, "02fffe")).ReadString()
		require.ErrorIs(t, err, ErrInvalidUTF8)
	})
}

func TestWriterBounds(t *testing.T) {
	cases := map[string]func(w *Writer) error{
		"uint8":    func(w *Writer) error { return w.WriteUint8(1) },
		"uint16":   func(w *Writer) error { return w.WriteUint16(1) },
		"uint32":   func(w *Writer) error { return w.WriteUint32(1) },
		"uint64":   func(w *Writer) error { return w.WriteUint64(1) },
		"varuint":  func(w *Writer) error { return w.WriteVaruint32(1) },
		"raw":      func(w *Writer) error { return w.WriteRaw([]byte{1}) },
		"prefixed": func(w *Writer) error { return w.WriteBytes([]byte{1}) },
		"string":   func(w *Writer) error { return w.WriteString("x") },
	}

	for name, write := range cases {
		t.Run(name, func(t *testing.T) {
			err := write(NewWriter(nil))
			require.ErrorIs(t, err, ErrWritePastEnd)
		})
	}
}

func TestReaderBounds(t *testing.T) {
	r := NewReader(nil)

	_, err := r.ReadUint8()
	require.ErrorIs(t, err, ErrReadPastEnd)
	_, err = r.ReadUint64()
	require.ErrorIs(t, err, ErrReadPastEnd)
	err = r.ReadFull(make([]byte, 32))
	require.ErrorIs(t, err, ErrReadPastEnd)

	// Failed reads must not advance the cursor
	require.Zero(t, r.Pos())
}

// testRecord exercises the mechanical field-order derivation rule for
// composites: fixed ints, text, a blob, an optional, and a sequence.
type testRecord struct {
	Tag    uint16
	Label  string
	Body   []byte
	Weight *uint64
	Seq    []uint32
}

func (v *testRecord) BinarySize() int {
	n := 2 + StringSize(v.Label) + BytesSize(v.Body) + 1
	if v.Weight != nil {
		n += 8
	}
	n += VaruintSize(uint32(len(v.Seq))) + 4*len(v.Seq)
	return n
}

func (v *testRecord) MarshalBinaryTo(w *Writer) error {
	if err := w.WriteUint16(v.Tag); err != nil {
		return err
	}
	if err := w.WriteString(v.Label); err != nil {
		return err
	}
	if err := w.WriteBytes(v.Body); err != nil {
		return err
	}
	if err := w.WriteBool(v.Weight != nil); err != nil {
		return err
	}
	if v.Weight != nil {
		if err := w.WriteUint64(*v.Weight); err != nil {
			return err
		}
	}
	if err := w.WriteVaruint32(uint32(len(v.Seq))); err != nil {
		return err
	}
	for _, u := range v.Seq {
		if err := w.WriteUint32(u); err != nil {
			return err
		}
	}
	return nil
}

func (v *testRecord) UnmarshalBinaryFrom(r *Reader) error {
	var err error
	if v.Tag, err = r.ReadUint16(); err != nil {
		return err
	}
	if v.Label, err = r.ReadString(); err != nil {
		return err
	}
	if v.Body, err = r.ReadBytes(); err != nil {
		return err
	}
	present, err := r.ReadBool()
	if err != nil {
		return err
	}
	if present {
		v.Weight = new(uint64)
		if *v.Weight, err = r.ReadUint64(); err != nil {
			return err
		}
	} else {
		v.Weight = nil
	}
	n, err := r.ReadVaruint32()
	if err != nil {
		return err
	}
	v.Seq = make([]uint32, n)
	for i := range v.Seq {
		if v.Seq[i], err = r.ReadUint32(); err != nil {
			return err
		}
	}
	return nil
}

func TestCompositeRoundTrip(t *testing.T) {
	weight := uint64(900100)
	cases := map[string]*testRecord{
		"zero":     {Body: []byte{}, Seq: []uint32{}},
		"optional": {Tag: 7, Label: "producer", Body: []byte{1, 2, 3}, Weight: &weight, Seq: []uint32{}},
		"sequence": {Tag: 1, Body: []byte{}, Seq: []uint32{5, 4, 3, 2, 1}},
	}

	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			data, err := Marshal(v)
			require.NoError(t, err)
			require.Equal(t, v.BinarySize(), len(data),
				"BinarySize must equal the marshaled length")

			u := new(testRecord)
			require.NoError(t, Unmarshal(data, u))
			require.Equal(t, v, u)
		})
	}

	t.Run("short buffer", func(t *testing.T) {
		v := cases["sequence"]
		w := NewWriter(make([]byte, v.BinarySize()-1))
		require.ErrorIs(t, v.MarshalBinaryTo(w), ErrWritePastEnd)
	})

	t.Run("truncated input", func(t *testing.T) {
		data, err := Marshal(cases["optional"])
		require.NoError(t, err)
		err = Unmarshal(data[:len(data)-3], new(testRecord))
		require.ErrorIs(t, err, ErrReadPastEnd)
	})
}
