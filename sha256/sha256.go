//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = 32

// BlockSize is the block size of SHA-256 in bytes.
const BlockSize = 64

const (
	chunk = BlockSize
	init0 = 0x6a09e667
	init1 = 0xbb67ae85
	init2 = 0x3c6ef372
	init3 = 0xa54ff53a
	init4 = 0x510e527f
	init5 = 0x9b05688c
	init6 = 0x1f83d9ab
	init7 = 0x5be0cd19
)

var (
	// ErrUninitialized is the panic value when a state is used
	// before Initialize.
	ErrUninitialized = errors.New("sha256: state not initialized")

	// ErrFinalized is the panic value when a state is used after
	// Finalize without a new Initialize.
	ErrFinalized = errors.New("sha256: state already finalized")
)

type phase uint8

const (
	phaseNone phase = iota
	phaseReady
	phaseDone
)

// State holds the intermediate value of an incremental SHA-256
// computation. The zero value is not usable; call Initialize first.
// A State must not be used concurrently from multiple goroutines.
type State struct {
	h     [8]uint32
	x     [chunk]byte
	nx    int
	len   uint64
	phase phase
}

// NewState returns a new initialized state.
func NewState() *State {
	s := new(State)
	s.Initialize()
	return s
}

// Initialize resets the state to the SHA-256 initial hash value with
// an empty buffer and a zero length counter.
func (s *State) Initialize() {
	s.h[0] = init0
	s.h[1] = init1
	s.h[2] = init2
	s.h[3] = init3
	s.h[4] = init4
	s.h[5] = init5
	s.h[6] = init6
	s.h[7] = init7
	s.x = [chunk]byte{}
	s.nx = 0
	s.len = 0
	s.phase = phaseReady
}

func (s *State) check() {
	switch s.phase {
	case phaseNone:
		panic(ErrUninitialized)
	case phaseDone:
		panic(ErrFinalized)
	}
}

// Len returns the number of message bytes written since Initialize.
func (s *State) Len() uint64 {
	return s.len
}

// Words returns the current intermediate hash value.
func (s *State) Words() [8]uint32 {
	return s.h
}

// Buffered returns the number of bytes waiting for a full block.
func (s *State) Buffered() int {
	return s.nx
}

// Write adds p to the message. It always returns len(p), nil.
func (s *State) Write(p []byte) (nn int, err error) {
	s.check()

	nn = len(p)
	s.len += uint64(nn)
	if s.nx > 0 {
		n := copy(s.x[s.nx:], p)
		s.nx += n
		if s.nx == chunk {
			blocks(&s.h, s.x[:])
			s.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= chunk {
		n := len(p) &^ (chunk - 1)
		blocks(&s.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		s.nx = copy(s.x[:], p)
	}
	return
}

// Finalize pads the message, compresses the final block(s), and
// returns the digest. The state is consumed.
func (s *State) Finalize() [Size]byte {
	s.check()

	var tmp [chunk + 8]byte
	s.Write(padding(&tmp, s.len))

	if s.nx != 0 {
		panic("sha256: s.nx != 0")
	}

	var digest [Size]byte
	for i, v := range s.h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	s.phase = phaseDone

	return digest
}

// Padding returns the padding that completes a message of length
// bytes to a multiple of BlockSize: 0x80, zero bytes up to 56 mod
// 64, and the big-endian message length in bits.
func Padding(length uint64) []byte {
	var tmp [chunk + 8]byte
	return append([]byte(nil), padding(&tmp, length)...)
}

func padding(tmp *[chunk + 8]byte, length uint64) []byte {
	// Add a 1 bit and 0 bits until 56 bytes mod 64.
	tmp[0] = 0x80
	var t uint64
	if length%64 < 56 {
		t = 56 - length%64
	} else {
		t = 64 + 56 - length%64
	}

	// Length in bits.
	binary.BigEndian.PutUint64(tmp[t:], length<<3)
	return tmp[:t+8]
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var s State
	s.Initialize()
	s.Write(data)
	return s.Finalize()
}

// Digest is a SHA-256 digest value.
type Digest [Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses a hex encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != Size*2 {
		return d, fmt.Errorf("sha256: invalid digest length %d", len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("sha256: invalid digest: %w", err)
	}
	return d, nil
}
