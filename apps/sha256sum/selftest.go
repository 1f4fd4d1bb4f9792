//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	ref "crypto/sha256"
	"fmt"
	"io"

	"github.com/markkurossi/streamhash/sha256"
	"github.com/markkurossi/streamhash/vectors"
)

func refSum(data []byte) []byte {
	sum := ref.Sum256(data)
	return sum[:]
}

// selfTest checks the engine against the known answers and against
// the standard library implementation.
func selfTest(out io.Writer, seed uint64, rounds int, verbose bool) error {
	for _, ka := range vectors.KnownAnswers() {
		digest := sha256.Digest(sha256.Sum256(ka.Input))
		if digest.String() != ka.Digest {
			return fmt.Errorf("%s: got %s, expected %s",
				ka.Name, digest, ka.Digest)
		}
		if verbose {
			fmt.Fprintf(out, "%-10s %s\n", ka.Name, digest)
		}
	}
	err := vectors.Check(sha256.New, refSum, vectors.NewGenerator(seed),
		rounds)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "self-test passed: %d known answers, %d boundary lengths, %d random messages\n",
		len(vectors.KnownAnswers()), len(vectors.BoundaryLengths), rounds)
	return nil
}
