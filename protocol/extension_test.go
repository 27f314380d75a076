// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

func TestExtensionRoundTrip(t *testing.T) {
	cases := map[string]*Extension{
		"empty":   {Type: 0, Data: []byte{}},
		"tagged":  {Type: 0x0102, Data: []byte{}},
		"payload": {Type: 1, Data: mustDecodeHex(t, "deadbeef")},
	}

	for name, e := range cases {
		t.Run(name, func(t *testing.T) {
			data, err := encoding.Marshal(e)
			require.NoError(t, err)
			require.Equal(t, e.BinarySize(), len(data))

			read := new(Extension)
			require.NoError(t, encoding.Unmarshal(data, read))
			require.Equal(t, e, read)
		})
	}
}

func TestExtensionLayout(t *testing.T) {
	e := &Extension{Type: 0x0102, Data: []byte{0xaa, 0xbb, 0xcc}}

	data, err := encoding.Marshal(e)
	require.NoError(t, err)
	require.Equal(t, mustDecodeHex(t, "020103aabbcc"), data,
		"Little-endian type tag, varuint length prefix, payload")
}

func TestExtensionDecodeErrors(t *testing.T) {
	t.Run("truncated payload", func(t *testing.T) {
		// Declares 4 bytes, carries 2
		err := encoding.Unmarshal(mustDecodeHex(t, "010004aabb"), new(Extension))
		require.ErrorIs(t, err, encoding.ErrLengthMismatch)
	})

	t.Run("missing tag", func(t *testing.T) {
		err := encoding.Unmarshal([]byte{0x01}, new(Extension))
		require.ErrorIs(t, err, encoding.ErrReadPastEnd)
	})
}
