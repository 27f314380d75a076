// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"
	"time"

	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// BlockTimestamp counts half-second block slots since the start of the year
// 2000 UTC.
type BlockTimestamp uint32

const (
	blockIntervalMs       = 500
	blockTimestampEpochMs = 946684800000 // 2000-01-01T00:00:00 UTC

	blockTimestampFormat = "2006-01-02T15:04:05.000"
)

// NewBlockTimestamp returns the block slot containing t. Times before the
// slot epoch are not representable and yield slot zero.
func NewBlockTimestamp(t time.Time) BlockTimestamp {
	ms := t.UnixMilli() - blockTimestampEpochMs
	if ms < 0 {
		return 0
	}
	return BlockTimestamp(ms / blockIntervalMs)
}

// Time returns the start of the block slot.
func (t BlockTimestamp) Time() time.Time {
	ms := blockTimestampEpochMs + int64(t)*blockIntervalMs
	return time.UnixMilli(ms).UTC()
}

// Next returns the following block slot.
func (t BlockTimestamp) Next() BlockTimestamp {
	return t + 1
}

func (t BlockTimestamp) String() string {
	return t.Time().Format(blockTimestampFormat)
}

// BinarySize returns the byte length of the timestamp's binary form.
func (t *BlockTimestamp) BinarySize() int {
	return 4
}

// MarshalBinaryTo writes the timestamp to w.
func (t *BlockTimestamp) MarshalBinaryTo(w *encoding.Writer) error {
	return w.WriteUint32(uint32(*t))
}

// UnmarshalBinaryFrom reads the timestamp from r.
func (t *BlockTimestamp) UnmarshalBinaryFrom(r *encoding.Reader) error {
	v, err := r.ReadUint32()
	if err != nil {
		return err
	}
	*t = BlockTimestamp(v)
	return nil
}

func (t BlockTimestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *BlockTimestamp) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	v, err := time.ParseInLocation(blockTimestampFormat, s, time.UTC)
	if err != nil {
		return err
	}
	*t = NewBlockTimestamp(v)
	return nil
}
