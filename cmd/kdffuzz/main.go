// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command kdffuzz drives the KDF oracle outside of a coverage guided engine.
//
// Without arguments it reads one input from stdin. Arguments name input files
// or corpus directories to replay. With -loop it generates random inputs
// until interrupted. Any failure is logged, optionally written as a CBOR
// report, and then aborts the process.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	mrand "math/rand/v2"
	"os"
	"path/filepath"

	"github.com/dark-bio/kdf-oracle-go/oracle"
)

var (
	reportFlag  = flag.String("report", "", "directory to write CBOR failure reports into")
	loopFlag    = flag.Bool("loop", false, "run random inputs until interrupted")
	maxLenFlag  = flag.Int("maxlen", 4096, "maximum random input length in -loop mode")
	verboseFlag = flag.Bool("v", false, "log every input")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := validateMaxLen(*maxLenFlag); err != nil {
		slog.Error("Invalid flags", "err", err)
		os.Exit(2)
	}
	o := oracle.New(oracle.Reference(), oracle.Standard())

	switch {
	case *loopFlag:
		loop(o, *maxLenFlag)
	case flag.NArg() == 0:
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("Failed to read stdin", "err", err)
			os.Exit(1)
		}
		check(o, *reportFlag, "stdin", input)
	default:
		for _, path := range flag.Args() {
			if err := replay(o, path); err != nil {
				slog.Error("Failed to replay corpus", "path", path, "err", err)
				os.Exit(1)
			}
		}
	}
}

// validateMaxLen rejects random input length limits IntN cannot serve.
func validateMaxLen(n int) error {
	if n < 0 {
		return fmt.Errorf("-maxlen must not be negative, got %d", n)
	}
	return nil
}

// replay runs every file under path through the oracle.
func replay(o *oracle.Oracle, path string) error {
	return filepath.WalkDir(path, func(file string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		input, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		check(o, *reportFlag, file, input)
		return nil
	})
}

// loop feeds random inputs into the oracle forever.
func loop(o *oracle.Oracle, maxLen int) {
	for runs := 1; ; runs++ {
		input := make([]byte, mrand.IntN(maxLen+1))
		rand.Read(input)

		check(o, *reportFlag, fmt.Sprintf("random #%d", runs), input)
		if runs%1000 == 0 {
			slog.Info("Fuzzing in progress", "runs", runs)
		}
	}
}

// check runs a single input and aborts the process on failure, so that an
// external engine wrapping this binary records the input as a crash. If
// reportDir is set, a failure report is written there first.
func check(o *oracle.Oracle, reportDir, name string, input []byte) {
	slog.Debug("Checking input", "name", name, "len", len(input))

	err := o.Run(input)
	if err == nil {
		return
	}
	slog.Error("Oracle failed", "name", name, "len", len(input), "err", err)
	if reportDir != "" {
		if path, werr := writeReport(reportDir, input, err); werr != nil {
			slog.Error("Failed to write report", "err", werr)
		} else {
			slog.Info("Wrote failure report", "path", path)
		}
	}
	panic(err)
}

// writeReport stores the failure report under a name derived from the input
// hash, so reruns of the same crasher overwrite each other.
func writeReport(dir string, input []byte, failure error) (string, error) {
	blob, err := oracle.EncodeReport(oracle.NewReport(input, failure))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	sum := sha256.Sum256(input)
	path := filepath.Join(dir, "crash-"+hex.EncodeToString(sum[:8])+".cbor")
	return path, os.WriteFile(path, blob, 0o644)
}
