//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package vectors provides SHA-256 known-answer vectors and a
// deterministic generator for randomized messages and write
// partitions.
package vectors

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
)

// KnownAnswer is a published SHA-256 test vector.
type KnownAnswer struct {
	Name   string
	Input  []byte
	Digest string
}

// BoundaryLengths are message lengths around the padding block
// boundaries.
var BoundaryLengths = []int{
	0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128, 129,
}

// KnownAnswers returns the FIPS 180-2 and NIST example vectors.
func KnownAnswers() []KnownAnswer {
	return []KnownAnswer{
		{
			Name:   "empty",
			Input:  []byte{},
			Digest: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			Name:   "abc",
			Input:  []byte("abc"),
			Digest: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			Name:   "448-bit",
			Input:  []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
			Digest: "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
		},
		{
			Name: "896-bit",
			Input: []byte("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
				"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
			Digest: "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
		},
		{
			Name:   "million-a",
			Input:  []byte(strings.Repeat("a", 1000000)),
			Digest: "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		},
	}
}

// Check verifies the hash constructor h against the reference digest
// function ref. It hashes the known answers, every boundary length,
// and rounds random messages, each written in a random partition.
func Check(h func() hash.Hash, ref func([]byte) []byte, g *Generator,
	rounds int) error {

	for _, ka := range KnownAnswers() {
		want, err := hex.DecodeString(ka.Digest)
		if err != nil {
			return fmt.Errorf("vectors: %s: %w", ka.Name, err)
		}
		got := sum(h(), g.Partition(ka.Input, 1024))
		if !bytes.Equal(got, want) {
			return fmt.Errorf("vectors: %s: got %x, expected %x",
				ka.Name, got, want)
		}
	}
	for _, l := range BoundaryLengths {
		if err := compare(h, ref, g, g.Message(l)); err != nil {
			return err
		}
	}
	for i := 0; i < rounds; i++ {
		if err := compare(h, ref, g, g.Message(g.Intn(1024))); err != nil {
			return err
		}
	}
	return nil
}

func compare(h func() hash.Hash, ref func([]byte) []byte, g *Generator,
	msg []byte) error {

	want := ref(msg)
	got := sum(h(), [][]byte{msg})
	if !bytes.Equal(got, want) {
		return fmt.Errorf("vectors: len=%d: got %x, expected %x",
			len(msg), got, want)
	}
	parts := g.Partition(msg, 130)
	got = sum(h(), parts)
	if !bytes.Equal(got, want) {
		return fmt.Errorf("vectors: len=%d in %d writes: got %x, expected %x",
			len(msg), len(parts), got, want)
	}
	return nil
}

func sum(h hash.Hash, parts [][]byte) []byte {
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
