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

func TestAccountNameString(t *testing.T) {
	cases := map[string]struct {
		Value AccountName
		Text  string
	}{
		"zero":       {0, ""},
		"eosio":      {0x5530ea0000000000, "eosio"},
		"dotted":     {0x5530ea033482a600, "eosio.token"},
		"tail char":  {1, "............1"},
		"max packed": {0xffffffffffffffff, "zzzzzzzzzzzzj"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.Text, c.Value.String())
		})
	}
}

func TestAccountNameBinary(t *testing.T) {
	n := eosioName

	data, err := encoding.Marshal(&n)
	require.NoError(t, err)
	require.Equal(t, n.BinarySize(), len(data))
	require.Equal(t, mustDecodeHex(t, "0000000000ea3055"), data,
		"Names are 8 little-endian bytes")

	read := new(AccountName)
	require.NoError(t, encoding.Unmarshal(data, read))
	require.Equal(t, n, *read)

	err = encoding.Unmarshal(data[:7], new(AccountName))
	require.ErrorIs(t, err, encoding.ErrReadPastEnd)
}
