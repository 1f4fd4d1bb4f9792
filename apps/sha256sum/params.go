//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
)

// Params specify sha256sum parameters.
type Params struct {
	Verbose bool
	Timing  bool
	Trace   bool
	Check   bool

	// ChunkSize specifies the read buffer size and thus the size of
	// the writes into the hash state.
	ChunkSize int
}

// NewParams returns new params object, initialized with the default
// values.
func NewParams() *Params {
	return &Params{
		ChunkSize: 32 * 1024,
	}
}

// Validate checks the parameter values.
func (p *Params) Validate() error {
	if p.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk size %d", p.ChunkSize)
	}
	if p.Trace && p.Check {
		return fmt.Errorf("-trace and -c are mutually exclusive")
	}
	return nil
}
