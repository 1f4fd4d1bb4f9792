//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/markkurossi/streamhash/report"
	"github.com/markkurossi/streamhash/sha256"
)

// hashReader hashes r with writes of at most chunkSize bytes.
func hashReader(r io.Reader, chunkSize int) (sha256.Digest, uint64, error) {
	var s sha256.State
	s.Initialize()

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return sha256.Digest{}, s.Len(), err
		}
	}
	length := s.Len()
	return sha256.Digest(s.Finalize()), length, nil
}

// traceReader hashes r block by block, printing the compression
// rounds of each block.
func traceReader(out io.Writer, r io.Reader) (sha256.Digest, uint64, error) {
	msg, err := io.ReadAll(r)
	if err != nil {
		return sha256.Digest{}, 0, err
	}
	length := uint64(len(msg))
	msg = append(msg, sha256.Padding(length)...)

	h := sha256.NewState().Words()
	for i := 0; len(msg) > 0; i++ {
		var rounds [][8]uint32
		h = sha256.BlockTrace(h, (*[sha256.BlockSize]byte)(msg),
			func(t int, regs [8]uint32) {
				rounds = append(rounds, regs)
			})
		report.PrintRounds(out, i, rounds, h)
		msg = msg[sha256.BlockSize:]
	}

	var digest sha256.Digest
	for i, v := range h {
		binary.BigEndian.PutUint32(digest[i*4:], v)
	}
	return digest, length, nil
}

func sumFile(out io.Writer, params *Params, name string) (
	sha256.Digest, uint64, error) {

	in, err := openInput(name)
	if err != nil {
		return sha256.Digest{}, 0, err
	}
	defer in.Close()

	if params.Trace {
		return traceReader(out, in)
	}
	return hashReader(in, params.ChunkSize)
}

// sumFiles prints the digest of each file. It returns true if some
// files could not be read.
func sumFiles(out io.Writer, params *Params, files []string) (bool, error) {
	var failed bool

	timing := report.NewTiming()
	for _, file := range files {
		digest, n, err := sumFile(out, params, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sha256sum: %s\n", err)
			failed = true
			continue
		}
		timing.Sample(file, n)
		if params.Verbose {
			fmt.Fprintf(os.Stderr, "%s: %d bytes\n", file, n)
		}
		fmt.Fprintf(out, "%s  %s\n", digest, file)
	}
	if params.Timing {
		timing.Print(out)
	}
	return failed, nil
}

// checkFiles verifies the checksum lists in files. It returns true if
// any entry did not match.
func checkFiles(out io.Writer, params *Params, files []string) (bool, error) {
	var failed bool
	for _, file := range files {
		in, err := openInput(file)
		if err != nil {
			return false, err
		}
		f, err := checkList(out, params, in)
		in.Close()
		if err != nil {
			return false, fmt.Errorf("%s: %w", file, err)
		}
		failed = failed || f
	}
	return failed, nil
}

var errFormat = errors.New("invalid checksum line")

func parseLine(line string) (sha256.Digest, string, error) {
	idx := strings.IndexByte(line, ' ')
	if idx < 0 || idx+2 > len(line) {
		return sha256.Digest{}, "", errFormat
	}
	digest, err := sha256.ParseDigest(line[:idx])
	if err != nil {
		return digest, "", err
	}
	name := line[idx+1:]
	// Binary mode marker or the second separator space.
	if name[0] == ' ' || name[0] == '*' {
		name = name[1:]
	}
	if len(name) == 0 {
		return digest, "", errFormat
	}
	return digest, name, nil
}

func checkList(out io.Writer, params *Params, in io.Reader) (bool, error) {
	var failed bool

	scanner := bufio.NewScanner(in)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) == 0 {
			continue
		}
		expected, name, err := parseLine(line)
		if err != nil {
			return false, fmt.Errorf("line %d: %w", lineno, err)
		}
		digest, _, err := sumFile(out, params, name)
		if err != nil {
			fmt.Fprintf(out, "%s: FAILED open or read\n", name)
			failed = true
			continue
		}
		if digest != expected {
			fmt.Fprintf(out, "%s: FAILED\n", name)
			failed = true
		} else {
			fmt.Fprintf(out, "%s: OK\n", name)
		}
	}
	return failed, scanner.Err()
}
