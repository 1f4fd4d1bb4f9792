//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements an incremental SHA-256 engine as defined
// in FIPS 180-4. The engine state is an explicit value that the
// caller threads through three operations:
//
//	var s sha256.State
//	s.Initialize()
//	s.Write([]byte("ab"))
//	s.Write([]byte("c"))
//	digest := s.Finalize()
//
// The message may be split into any number of writes of any size;
// the digest depends only on the concatenated bytes. Finalize
// consumes the state and it must be initialized again before reuse.
// Using a state before Initialize or after Finalize panics with
// ErrUninitialized or ErrFinalized.
//
// The block compression function is available as the pure function
// Block so that it can be verified against published intermediate
// values independently of the buffering logic.
package sha256
