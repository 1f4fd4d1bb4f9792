//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	params := NewParams()

	flag.IntVar(&params.ChunkSize, "b", params.ChunkSize,
		"Read buffer size, in bytes")
	flag.BoolVar(&params.Check, "c", false,
		"Read checksums from files and verify them")
	flag.BoolVar(&params.Timing, "t", false, "Print timing report")
	flag.BoolVar(&params.Verbose, "v", false, "Verbose output")
	flag.BoolVar(&params.Trace, "trace", false,
		"Print compression rounds of every block")
	selftest := flag.Bool("selftest", false, "Run self-test and exit")
	rounds := flag.Int("rounds", 1000, "Random self-test rounds")
	seed := flag.Uint64("seed", 1, "Self-test generator seed")
	flag.Parse()

	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	log.SetFlags(0)
	log.SetPrefix("sha256sum: ")

	if *selftest {
		if err := selfTest(os.Stdout, *seed, *rounds, params.Verbose); err != nil {
			log.Fatal(err)
		}
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	var failed bool
	var err error
	if params.Check {
		failed, err = checkFiles(os.Stdout, params, args)
	} else {
		failed, err = sumFiles(os.Stdout, params, args)
	}
	if err != nil {
		log.Fatal(err)
	}
	if failed {
		os.Exit(1)
	}
}

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
