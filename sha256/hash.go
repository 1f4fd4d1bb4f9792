//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"hash"
)

type digest struct {
	s State
}

// New returns a new hash.Hash computing the SHA-256 checksum. The
// Hash also implements encoding.BinaryMarshaler and
// encoding.BinaryUnmarshaler to checkpoint its internal state.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Reset() { d.s.Initialize() }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) { return d.s.Write(p) }

func (d *digest) Sum(in []byte) []byte {
	// Finalize a copy so that caller can keep writing and summing.
	s0 := d.s
	hash := s0.Finalize()
	return append(in, hash[:]...)
}

func (d *digest) MarshalBinary() ([]byte, error) {
	return d.s.MarshalBinary()
}

func (d *digest) UnmarshalBinary(b []byte) error {
	return d.s.UnmarshalBinary(b)
}
