// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package keys

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/antelopenetwork/chaincore/pkg/base58"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

func mustDecodeHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPublicKeyTextRoundTrip(t *testing.T) {
	const text = "EOS8FdQ4gt16pFcSiXAYCcHnkHTS2nNLFWGZXW5sioAdvQuMxKhAm"

	key, err := ParsePublicKey(text)
	require.NoError(t, err)
	require.True(t, key.Compressed, "Text keys are always compressed")
	require.Equal(t, text, key.Text(), "Key must round-trip through its text form")
	require.Equal(t, text, key.String())

	again, err := ParsePublicKey(key.Text())
	require.NoError(t, err)
	require.True(t, key.Equal(again))
}

func TestParsePublicKeyErrors(t *testing.T) {
	t.Run("bad prefix", func(t *testing.T) {
		for _, s := range []string{
			"",
			"eos8FdQ4gt16pFcSiXAYCcHnkHTS2nNLFWGZXW5sioAdvQuMxKhAm",
			"PUB_K1_8FdQ4gt16pFcSiXAYCcHnkHTS2nNLFWGZXW5sioAdvQuMxKhAm",
			"8FdQ4gt16pFcSiXAYCcHnkHTS2nNLFWGZXW5sioAdvQuMxKhAm",
		} {
			_, err := ParsePublicKey(s)
			require.ErrorIs(t, err, ErrBadPrefix, "%q must not parse", s)
		}
	})

	t.Run("tampered checksum", func(t *testing.T) {
		const text = "EOS8FdQ4gt16pFcSiXAYCcHnkHTS2nNLFWGZXW5sioAdvQuMxKhAm"
		tampered := text[:len(text)-1] + "b"

		_, err := ParsePublicKey(tampered)
		chkErr := new(base58.ChecksumError)
		require.ErrorAs(t, err, &chkErr)
		require.NotEqual(t, chkErr.Expected, chkErr.Actual)
	})

	t.Run("wrong payload length", func(t *testing.T) {
		// A valid checksummed body that is 20 bytes instead of 33
		s := PublicKeyPrefix + base58.CheckEncode(make([]byte, 20), nil)

		_, err := ParsePublicKey(s)
		require.ErrorIs(t, err, base58.ErrInvalidLength)
	})

	t.Run("not base58", func(t *testing.T) {
		_, err := ParsePublicKey("EOS0OIl")
		require.ErrorIs(t, err, base58.ErrInvalidBase58)
	})
}

func TestPublicKeyFromBytes(t *testing.T) {
	t.Run("invalid length", func(t *testing.T) {
		for _, n := range []int{0, 1, 32, 34, 64, 66} {
			_, err := PublicKeyFromBytes(make([]byte, n))
			require.ErrorIs(t, err, ErrInvalidLength, "%d bytes must be rejected", n)
		}
	})

	t.Run("off-curve point", func(t *testing.T) {
		b := make([]byte, 33)
		b[0] = 0x02
		for i := 1; i < len(b); i++ {
			b[i] = 0xff
		}
		_, err := PublicKeyFromBytes(b)
		require.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("bad format byte", func(t *testing.T) {
		b := make([]byte, 33)
		b[0] = 0x05
		_, err := PublicKeyFromBytes(b)
		require.ErrorIs(t, err, ErrInvalidPublicKey)
	})

	t.Run("length dictates compression", func(t *testing.T) {
		sk, err := GenerateSecretKey()
		require.NoError(t, err)
		pub := sk.PublicKey()

		compressed, err := PublicKeyFromBytes(pub.Key.SerializeCompressed())
		require.NoError(t, err)
		require.True(t, compressed.Compressed)
		require.True(t, compressed.Equal(pub))

		uncompressed, err := PublicKeyFromBytes(pub.Key.SerializeUncompressed())
		require.NoError(t, err)
		require.False(t, uncompressed.Compressed)
		require.Equal(t, 65, len(uncompressed.Bytes()))
	})
}

func TestPublicKeyBinary(t *testing.T) {
	sk, err := GenerateSecretKey()
	require.NoError(t, err)

	cases := map[string]PublicKey{
		"compressed":   sk.PublicKey(),
		"uncompressed": {Compressed: false, Key: sk.PublicKey().Key},
	}

	for name, key := range cases {
		t.Run(name, func(t *testing.T) {
			data, err := encoding.Marshal(&key)
			require.NoError(t, err)
			require.Equal(t, key.BinarySize(), len(data))
			require.Equal(t, key.Bytes(), data, "Wire form is the bare point encoding")

			read := new(PublicKey)
			require.NoError(t, encoding.Unmarshal(data, read))
			require.True(t, key.Equal(*read))
		})
	}

	t.Run("bad discriminant", func(t *testing.T) {
		data := make([]byte, 33)
		data[0] = 0x07
		err := encoding.Unmarshal(data, new(PublicKey))
		require.ErrorIs(t, err, encoding.ErrInvalidTag)
	})

	t.Run("truncated", func(t *testing.T) {
		data := []byte{0x02, 0xaa}
		err := encoding.Unmarshal(data, new(PublicKey))
		require.ErrorIs(t, err, encoding.ErrReadPastEnd)
	})
}

func TestPublicKeyJSON(t *testing.T) {
	const text = "EOS8FdQ4gt16pFcSiXAYCcHnkHTS2nNLFWGZXW5sioAdvQuMxKhAm"

	key, err := ParsePublicKey(text)
	require.NoError(t, err)

	data, err := json.Marshal(key)
	require.NoError(t, err)
	require.Equal(t, `"`+text+`"`, string(data))

	var read PublicKey
	require.NoError(t, json.Unmarshal(data, &read))
	require.True(t, key.Equal(read))

	t.Run("uncompressed has no text form", func(t *testing.T) {
		_, err := json.Marshal(PublicKey{Compressed: false, Key: key.Key})
		require.Error(t, err)
	})
}
