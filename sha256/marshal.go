//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// StateSize is the size of the raw state layout used by the
// libsecp256k1 secp256k1_sha256 structure: eight 32-bit words, the
// 64-byte block buffer, and the 64-bit byte counter.
const StateSize = 8*4 + chunk + 8

const (
	magic         = "sha\x03"
	marshaledSize = len(magic) + 8*4 + chunk + 8
)

func (s *State) marshalCheck() error {
	switch s.phase {
	case phaseNone:
		return ErrUninitialized
	case phaseDone:
		return ErrFinalized
	}
	return nil
}

// MarshalBinary encodes the state so that the computation can be
// resumed later with UnmarshalBinary.
func (s *State) MarshalBinary() ([]byte, error) {
	if err := s.marshalCheck(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, v := range s.h {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, s.x[:s.nx]...)
	b = append(b, make([]byte, len(s.x)-s.nx)...)
	b = binary.BigEndian.AppendUint64(b, s.len)
	return b, nil
}

// UnmarshalBinary restores a state encoded with MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("sha256: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return fmt.Errorf("sha256: invalid hash state size %d", len(b))
	}
	b = b[len(magic):]
	for i := range s.h {
		s.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	copy(s.x[:], b[:chunk])
	b = b[chunk:]
	s.len = binary.BigEndian.Uint64(b)
	s.nx = int(s.len % chunk)
	s.phase = phaseReady
	return nil
}

// MarshalRaw encodes the state in the StateSize byte layout of the
// secp256k1_sha256 structure in little-endian memory.
func (s *State) MarshalRaw() ([]byte, error) {
	if err := s.marshalCheck(); err != nil {
		return nil, err
	}
	b := make([]byte, 0, StateSize)
	for _, v := range s.h {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	b = append(b, s.x[:]...)
	b = binary.LittleEndian.AppendUint64(b, s.len)
	return b, nil
}

// UnmarshalRaw restores a state from the layout produced by
// MarshalRaw. The buffered length is derived from the byte counter.
func (s *State) UnmarshalRaw(b []byte) error {
	if len(b) != StateSize {
		return fmt.Errorf("sha256: invalid raw state size %d", len(b))
	}
	for i := range s.h {
		s.h[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	copy(s.x[:], b[32:32+chunk])
	s.len = binary.LittleEndian.Uint64(b[32+chunk:])
	s.nx = int(s.len % chunk)
	s.phase = phaseReady
	return nil
}
