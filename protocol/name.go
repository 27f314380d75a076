// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"strings"

	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// AccountName is a base-32 packed account name. The twelve leading
// characters take five bits each and the thirteenth takes the remaining
// four, most significant character first.
type AccountName uint64

const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

// String renders the packed name. Trailing dots are dropped, so the zero
// name renders as the empty string.
func (n AccountName) String() string {
	var str [13]byte
	tmp := uint64(n)
	for i := 0; i <= 12; i++ {
		mask := uint64(0x1f)
		if i == 0 {
			mask = 0x0f
		}
		str[12-i] = nameCharmap[tmp&mask]
		if i == 0 {
			tmp >>= 4
		} else {
			tmp >>= 5
		}
	}
	return strings.TrimRight(string(str[:]), ".")
}

// BinarySize returns the byte length of the name's binary form.
func (n *AccountName) BinarySize() int {
	return 8
}

// MarshalBinaryTo writes the name to w.
func (n *AccountName) MarshalBinaryTo(w *encoding.Writer) error {
	return w.WriteUint64(uint64(*n))
}

// UnmarshalBinaryFrom reads the name from r.
func (n *AccountName) UnmarshalBinaryFrom(r *encoding.Reader) error {
	v, err := r.ReadUint64()
	if err != nil {
		return err
	}
	*n = AccountName(v)
	return nil
}
