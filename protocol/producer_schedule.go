// Copyright 2025 The Chaincore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"fmt"

	"gitlab.com/antelopenetwork/chaincore/pkg/keys"
	"gitlab.com/antelopenetwork/chaincore/pkg/types/encoding"
)

// ProducerKey pairs a producer account with its block signing key.
type ProducerKey struct {
	ProducerName    AccountName
	BlockSigningKey keys.PublicKey
}

// A name plus a compressed public key.
const minProducerKeySize = 8 + 33

// BinarySize returns the byte length of the producer key's binary form.
func (p *ProducerKey) BinarySize() int {
	return p.ProducerName.BinarySize() + p.BlockSigningKey.BinarySize()
}

// MarshalBinaryTo writes the producer key to w.
func (p *ProducerKey) MarshalBinaryTo(w *encoding.Writer) error {
	err := p.ProducerName.MarshalBinaryTo(w)
	if err != nil {
		return err
	}
	return p.BlockSigningKey.MarshalBinaryTo(w)
}

// UnmarshalBinaryFrom reads the producer key from r.
func (p *ProducerKey) UnmarshalBinaryFrom(r *encoding.Reader) error {
	err := p.ProducerName.UnmarshalBinaryFrom(r)
	if err != nil {
		return err
	}
	return p.BlockSigningKey.UnmarshalBinaryFrom(r)
}

// ProducerSchedule is the original producer schedule carried by pre-WTMsig
// chains.
type ProducerSchedule struct {
	Version   uint32
	Producers []ProducerKey
}

// BinarySize returns the byte length of the schedule's binary form.
func (s *ProducerSchedule) BinarySize() int {
	return 4 + producersSize(s.Producers)
}

// MarshalBinaryTo writes the schedule to w.
func (s *ProducerSchedule) MarshalBinaryTo(w *encoding.Writer) error {
	err := w.WriteUint32(s.Version)
	if err != nil {
		return err
	}
	return marshalProducers(w, s.Producers)
}

// UnmarshalBinaryFrom reads the schedule from r.
func (s *ProducerSchedule) UnmarshalBinaryFrom(r *encoding.Reader) error {
	var err error
	s.Version, err = r.ReadUint32()
	if err != nil {
		return err
	}
	s.Producers, err = unmarshalProducers(r)
	return err
}

// ProducerScheduleV2 is the WTMsig-era producer schedule. Its wire layout
// matches ProducerSchedule, but the two are distinct types and never
// interchange.
type ProducerScheduleV2 struct {
	Version   uint32
	Producers []ProducerKey
}

// BinarySize returns the byte length of the schedule's binary form.
func (s *ProducerScheduleV2) BinarySize() int {
	return 4 + producersSize(s.Producers)
}

// MarshalBinaryTo writes the schedule to w.
func (s *ProducerScheduleV2) MarshalBinaryTo(w *encoding.Writer) error {
	err := w.WriteUint32(s.Version)
	if err != nil {
		return err
	}
	return marshalProducers(w, s.Producers)
}

// UnmarshalBinaryFrom reads the schedule from r.
func (s *ProducerScheduleV2) UnmarshalBinaryFrom(r *encoding.Reader) error {
	var err error
	s.Version, err = r.ReadUint32()
	if err != nil {
		return err
	}
	s.Producers, err = unmarshalProducers(r)
	return err
}

func producersSize(producers []ProducerKey) int {
	n := encoding.VaruintSize(uint32(len(producers)))
	for i := range producers {
		n += producers[i].BinarySize()
	}
	return n
}

func marshalProducers(w *encoding.Writer, producers []ProducerKey) error {
	err := w.WriteVaruint32(uint32(len(producers)))
	if err != nil {
		return err
	}
	for i := range producers {
		err = producers[i].MarshalBinaryTo(w)
		if err != nil {
			return err
		}
	}
	return nil
}

func unmarshalProducers(r *encoding.Reader) ([]ProducerKey, error) {
	n, err := r.ReadVaruint32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	// Bound the allocation by what the buffer could actually hold
	if int64(n)*minProducerKeySize > int64(r.Remaining()) {
		return nil, fmt.Errorf("%w: declared %d producers at offset %d, have %d bytes", encoding.ErrLengthMismatch, n, r.Pos(), r.Remaining())
	}

	producers := make([]ProducerKey, n)
	for i := range producers {
		err = producers[i].UnmarshalBinaryFrom(r)
		if err != nil {
			return nil, err
		}
	}
	return producers, nil
}
