//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"bytes"
	ref "crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"testing"

	"github.com/markkurossi/streamhash/vectors"
)

func refSum(data []byte) []byte {
	sum := ref.Sum256(data)
	return sum[:]
}

func hashParts(parts ...[]byte) [Size]byte {
	var s State
	s.Initialize()
	for _, p := range parts {
		s.Write(p)
	}
	return s.Finalize()
}

func TestKnownAnswers(t *testing.T) {
	for _, ka := range vectors.KnownAnswers() {
		t.Run(ka.Name, func(t *testing.T) {
			sum := Sum256(ka.Input)
			if got := hex.EncodeToString(sum[:]); got != ka.Digest {
				t.Errorf("got %s, expected %s", got, ka.Digest)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	var s State
	s.Initialize()
	s.Write(nil)
	s.Write([]byte{})
	sum := s.Finalize()
	expected := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Digest(sum).String(); got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}
}

func TestABCSplit(t *testing.T) {
	one := hashParts([]byte("abc"))
	split := hashParts([]byte("a"), []byte("b"), nil, []byte("c"))
	if one != split {
		t.Errorf("split digest %x != %x", split, one)
	}
}

func TestBoundaryLengths(t *testing.T) {
	g := vectors.NewGenerator(1)
	for _, l := range vectors.BoundaryLengths {
		msg := g.Message(l)
		sum := Sum256(msg)
		if want := refSum(msg); !bytes.Equal(sum[:], want) {
			t.Errorf("len=%d: got %x, expected %x", l, sum, want)
		}
	}
}

// TestAllSplits hashes every message length up to three blocks with
// every two-way split point.
func TestAllSplits(t *testing.T) {
	g := vectors.NewGenerator(2)
	for l := 0; l <= 3*BlockSize; l++ {
		msg := g.Message(l)
		want := refSum(msg)
		for i := 0; i <= l; i++ {
			sum := hashParts(msg[:i], msg[i:])
			if !bytes.Equal(sum[:], want) {
				t.Fatalf("len=%d split=%d: got %x, expected %x",
					l, i, sum, want)
			}
		}
	}
}

func TestRandomPartitions(t *testing.T) {
	g := vectors.NewGenerator(3)
	for i := 0; i < 500; i++ {
		msg := g.Message(g.Intn(2048))
		want := refSum(msg)
		for _, max := range []int{1, 3, 63, 64, 65, 200} {
			sum := hashParts(g.Partition(msg, max)...)
			if !bytes.Equal(sum[:], want) {
				t.Fatalf("len=%d max=%d: got %x, expected %x",
					len(msg), max, sum, want)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	msg := vectors.NewGenerator(4).Message(1000)
	a := Sum256(msg)
	b := Sum256(msg)
	if a != b {
		t.Errorf("digests differ: %x != %x", a, b)
	}
}

func TestReinitialize(t *testing.T) {
	var s State
	s.Initialize()
	s.Write([]byte("garbage that is discarded"))
	s.Finalize()

	s.Initialize()
	s.Write([]byte("abc"))
	sum := s.Finalize()
	if want := Sum256([]byte("abc")); sum != want {
		t.Errorf("got %x, expected %x", sum, want)
	}
}

func TestCounters(t *testing.T) {
	s := NewState()
	s.Write(make([]byte, 70))
	if s.Len() != 70 {
		t.Errorf("Len()=%d, expected 70", s.Len())
	}
	if s.Buffered() != 6 {
		t.Errorf("Buffered()=%d, expected 6", s.Buffered())
	}
	s.Write(make([]byte, 58))
	if s.Buffered() != 0 {
		t.Errorf("Buffered()=%d, expected 0", s.Buffered())
	}
}

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	f()
}

func TestMisuse(t *testing.T) {
	expectPanic(t, ErrUninitialized, func() {
		var s State
		s.Write([]byte("abc"))
	})
	expectPanic(t, ErrUninitialized, func() {
		var s State
		s.Finalize()
	})
	expectPanic(t, ErrFinalized, func() {
		s := NewState()
		s.Finalize()
		s.Write([]byte("abc"))
	})
	expectPanic(t, ErrFinalized, func() {
		s := NewState()
		s.Finalize()
		s.Finalize()
	})
}

func TestHashInterface(t *testing.T) {
	err := vectors.Check(New, refSum, vectors.NewGenerator(5), 200)
	if err != nil {
		t.Fatal(err)
	}

	h := New()
	if h.Size() != Size || h.BlockSize() != BlockSize {
		t.Fatalf("Size()=%d BlockSize()=%d", h.Size(), h.BlockSize())
	}

	// Sum must not consume the state.
	h.Write([]byte("ab"))
	h.Sum(nil)
	h.Write([]byte("c"))
	if got, want := h.Sum(nil), refSum([]byte("abc")); !bytes.Equal(got, want) {
		t.Errorf("got %x, expected %x", got, want)
	}

	prefix := []byte("prefix")
	out := h.Sum(prefix)
	if !bytes.HasPrefix(out, prefix) || len(out) != len(prefix)+Size {
		t.Errorf("Sum did not append to its argument: %x", out)
	}

	h.Reset()
	if got, want := h.Sum(nil), refSum(nil); !bytes.Equal(got, want) {
		t.Errorf("after Reset: got %x, expected %x", got, want)
	}
}

var _ hash.Hash = New()

func TestParseDigest(t *testing.T) {
	sum := Digest(Sum256([]byte("abc")))
	d, err := ParseDigest(sum.String())
	if err != nil {
		t.Fatal(err)
	}
	if d != sum {
		t.Errorf("got %v, expected %v", d, sum)
	}
	for _, bad := range []string{"", "abc", sum.String()[:62] + "zz"} {
		if _, err := ParseDigest(bad); err == nil {
			t.Errorf("ParseDigest(%q) succeeded", bad)
		}
	}
}

func FuzzWrite(f *testing.F) {
	f.Add([]byte(""), 0)
	f.Add([]byte("abc"), 1)
	f.Add(bytes.Repeat([]byte{0x5a}, 119), 56)
	f.Fuzz(func(t *testing.T, data []byte, split int) {
		i := int(uint(split) % uint(len(data)+1))
		sum := hashParts(data[:i], data[i:])
		if want := refSum(data); !bytes.Equal(sum[:], want) {
			t.Errorf("got %x, expected %x", sum, want)
		}
	})
}

func BenchmarkWrite(b *testing.B) {
	for _, size := range []int{8, 1024, 8192} {
		buf := make([]byte, size)
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			s := NewState()
			for i := 0; i < b.N; i++ {
				s.Write(buf)
			}
		})
	}
}

func BenchmarkSum256(b *testing.B) {
	buf := make([]byte, 1024)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		Sum256(buf)
	}
}
