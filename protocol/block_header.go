// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"math/bits"

	"gitlab.com/antelopenetwork/chaincore/pkg/keys"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// BlockHeader is the current block header. Schedule changes carry a
// ProducerScheduleV2.
type BlockHeader struct {
	Timestamp        BlockTimestamp
	Producer         AccountName
	Confirmed        uint16
	Previous         Checksum256
	TransactionMroot Checksum256
	ActionMroot      Checksum256
	ScheduleVersion  uint32
	NewProducers     *ProducerScheduleV2
	HeaderExtensions []Extension
}

// BlockHeaderV1 is the legacy block header. It matches BlockHeader except
// that schedule changes carry a ProducerSchedule.
type BlockHeaderV1 struct {
	Timestamp        BlockTimestamp
	Producer         AccountName
	Confirmed        uint16
	Previous         Checksum256
	TransactionMroot Checksum256
	ActionMroot      Checksum256
	ScheduleVersion  uint32
	NewProducers     *ProducerSchedule
	HeaderExtensions []Extension
}

// SignedBlockHeader is a block header plus the producer's signature over
// it. Identity queries are those of the inner header.
type SignedBlockHeader struct {
	BlockHeader
	ProducerSignature keys.Signature
}

// BlockNumFromID extracts the block height embedded in a block ID. The
// height occupies the ID's first four bytes in big-endian order.
func BlockNumFromID(id Checksum256) uint32 {
	return bits.ReverseBytes32(uint32(id.Hash0()))
}

// idFromDigest splices blockNum into the low half of the digest's leading
// word. The other 28 bytes keep their hash entropy.
func idFromDigest(digest Checksum256, blockNum uint32) Checksum256 {
	hash0 := digest.Hash0()
	hash0 &^= 0xffffffff
	hash0 += uint64(bits.ReverseBytes32(blockNum))
	return digest.WithHash0(hash0)
}

// Digest returns the SHA-256 digest of the header's binary form. It is
// recomputed on every call.
func (h *BlockHeader) Digest() (Checksum256, error) {
	return DigestOf(h)
}

// BlockNum returns the header's height, one past the height embedded in
// Previous.
func (h *BlockHeader) BlockNum() uint32 {
	return BlockNumFromID(h.Previous) + 1
}

// ID returns the header's block ID, its digest with the block height
// spliced into the leading word.
func (h *BlockHeader) ID() (Checksum256, error) {
	digest, err := h.Digest()
	if err != nil {
		return Checksum256{}, err
	}
	return idFromDigest(digest, h.BlockNum()), nil
}

// Digest returns the SHA-256 digest of the header's binary form. It is
// recomputed on every call.
func (h *BlockHeaderV1) Digest() (Checksum256, error) {
	return DigestOf(h)
}

// BlockNum returns the header's height, one past the height embedded in
// Previous.
func (h *BlockHeaderV1) BlockNum() uint32 {
	return BlockNumFromID(h.Previous) + 1
}

// ID returns the header's block ID, its digest with the block height
// spliced into the leading word.
func (h *BlockHeaderV1) ID() (Checksum256, error) {
	digest, err := h.Digest()
	if err != nil {
		return Checksum256{}, err
	}
	return idFromDigest(digest, h.BlockNum()), nil
}

// BinarySize returns the byte length of the header's binary form.
func (h *BlockHeader) BinarySize() int {
	n := 4 + 8 + 2 + 32 + 32 + 32 + 4
	n++ // presence flag
	if h.NewProducers != nil {
		n += h.NewProducers.BinarySize()
	}
	return n + extensionsSize(h.HeaderExtensions)
}

// MarshalBinaryTo writes the header to w.
func (h *BlockHeader) MarshalBinaryTo(w *encoding.Writer) error {
	err := marshalHeaderFields(w, h.Timestamp, h.Producer, h.Confirmed, &h.Previous, &h.TransactionMroot, &h.ActionMroot, h.ScheduleVersion)
	if err != nil {
		return err
	}
	err = w.WriteBool(h.NewProducers != nil)
	if err != nil {
		return err
	}
	if h.NewProducers != nil {
		err = h.NewProducers.MarshalBinaryTo(w)
		if err != nil {
			return err
		}
	}
	return marshalExtensions(w, h.HeaderExtensions)
}

// UnmarshalBinaryFrom reads the header from r.
func (h *BlockHeader) UnmarshalBinaryFrom(r *encoding.Reader) error {
	err := unmarshalHeaderFields(r, &h.Timestamp, &h.Producer, &h.Confirmed, &h.Previous, &h.TransactionMroot, &h.ActionMroot, &h.ScheduleVersion)
	if err != nil {
		return err
	}
	present, err := r.ReadBool()
	if err != nil {
		return err
	}
	if present {
		h.NewProducers = new(ProducerScheduleV2)
		err = h.NewProducers.UnmarshalBinaryFrom(r)
		if err != nil {
			return err
		}
	} else {
		h.NewProducers = nil
	}
	h.HeaderExtensions, err = unmarshalExtensions(r)
	return err
}

// BinarySize returns the byte length of the header's binary form.
func (h *BlockHeaderV1) BinarySize() int {
	n := 4 + 8 + 2 + 32 + 32 + 32 + 4
	n++ // presence flag
	if h.NewProducers != nil {
		n += h.NewProducers.BinarySize()
	}
	return n + extensionsSize(h.HeaderExtensions)
}

// MarshalBinaryTo writes the header to w.
func (h *BlockHeaderV1) MarshalBinaryTo(w *encoding.Writer) error {
	err := marshalHeaderFields(w, h.Timestamp, h.Producer, h.Confirmed, &h.Previous, &h.TransactionMroot, &h.ActionMroot, h.ScheduleVersion)
	if err != nil {
		return err
	}
	err = w.WriteBool(h.NewProducers != nil)
	if err != nil {
		return err
	}
	if h.NewProducers != nil {
		err = h.NewProducers.MarshalBinaryTo(w)
		if err != nil {
			return err
		}
	}
	return marshalExtensions(w, h.HeaderExtensions)
}

// UnmarshalBinaryFrom reads the header from r.
func (h *BlockHeaderV1) UnmarshalBinaryFrom(r *encoding.Reader) error {
	err := unmarshalHeaderFields(r, &h.Timestamp, &h.Producer, &h.Confirmed, &h.Previous, &h.TransactionMroot, &h.ActionMroot, &h.ScheduleVersion)
	if err != nil {
		return err
	}
	present, err := r.ReadBool()
	if err != nil {
		return err
	}
	if present {
		h.NewProducers = new(ProducerSchedule)
		err = h.NewProducers.UnmarshalBinaryFrom(r)
		if err != nil {
			return err
		}
	} else {
		h.NewProducers = nil
	}
	h.HeaderExtensions, err = unmarshalExtensions(r)
	return err
}

// BinarySize returns the byte length of the signed header's binary form.
func (h *SignedBlockHeader) BinarySize() int {
	return h.BlockHeader.BinarySize() + h.ProducerSignature.BinarySize()
}

// MarshalBinaryTo writes the signed header to w.
func (h *SignedBlockHeader) MarshalBinaryTo(w *encoding.Writer) error {
	err := h.BlockHeader.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	return h.ProducerSignature.MarshalBinaryTo(w)
}

// UnmarshalBinaryFrom reads the signed header from r.
func (h *SignedBlockHeader) UnmarshalBinaryFrom(r *encoding.Reader) error {
	err := h.BlockHeader.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	return h.ProducerSignature.UnmarshalBinaryFrom(r)
}

func marshalHeaderFields(w *encoding.Writer, ts BlockTimestamp, producer AccountName, confirmed uint16, previous, txMroot, actMroot *Checksum256, version uint32) error {
	err := ts.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	err = producer.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	err = w.WriteUint16(confirmed)
	if err != nil {
		return err
	}
	err = previous.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	err = txMroot.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	err = actMroot.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	return w.WriteUint32(version)
}

func unmarshalHeaderFields(r *encoding.Reader, ts *BlockTimestamp, producer *AccountName, confirmed *uint16, previous, txMroot, actMroot *Checksum256, version *uint32) error {
	err := ts.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	err = producer.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	*confirmed, err = r.ReadUint16()
	if err != nil {
		return err
	}
	err = previous.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	err = txMroot.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	err = actMroot.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	*version, err = r.ReadUint32()
	return err
}
