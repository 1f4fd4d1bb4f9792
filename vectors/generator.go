//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vectors

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Generator produces deterministic pseudorandom data from the
// ChaCha20 keystream of a seed.
type Generator struct {
	c *chacha20.Cipher
}

// NewGenerator creates a generator for the seed. Generators with the
// same seed produce the same sequence.
func NewGenerator(seed uint64) *Generator {
	var key [chacha20.KeySize]byte
	binary.BigEndian.PutUint64(key[:], seed)

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &Generator{
		c: c,
	}
}

// Read fills p with keystream bytes. It never fails.
func (g *Generator) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	g.c.XORKeyStream(p, p)
	return len(p), nil
}

// Message returns n pseudorandom bytes.
func (g *Generator) Message(n int) []byte {
	buf := make([]byte, n)
	g.Read(buf)
	return buf
}

// Intn returns a pseudorandom number in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("vectors: invalid argument to Intn")
	}
	var buf [8]byte
	g.Read(buf[:])
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}

// Partition splits msg into consecutive chunks of sizes in [0, max].
// Empty chunks are included so that zero-length writes are
// exercised.
func (g *Generator) Partition(msg []byte, max int) [][]byte {
	if max < 1 {
		max = 1
	}
	var result [][]byte
	for len(msg) > 0 {
		n := g.Intn(max + 1)
		if n > len(msg) {
			n = len(msg)
		}
		result = append(result, msg[:n])
		msg = msg[n:]
	}
	return result
}
