// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracle runs HKDF and PBKDF2 derivations through two independent
// implementations and reports any disagreement.
//
// A fuzz input is expanded into derivation parameters by kdfcase, after which
// both implementations must produce byte identical outputs. A rejected
// parameter set is reported as well, since the parameters are always clamped
// into the valid domain.
package oracle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dark-bio/kdf-oracle-go/kdfcase"
)

// KDF families and derivation paths named in errors
const (
	FamilyHKDF   = "hkdf"
	FamilyPBKDF2 = "pbkdf2"

	PathSplit  = "extract+expand"
	PathFused  = "derive"
	PathPBKDF2 = "pbkdf2"
)

// Error types for oracle failures
var (
	ErrDivergence   = errors.New("oracle: implementations diverged")
	ErrConstruction = errors.New("oracle: parameters rejected")
)

// DivergenceError is returned when two implementations produce different
// outputs for the same parameters.
type DivergenceError struct {
	Family     string // KDF family, FamilyHKDF or FamilyPBKDF2
	Path       string // Derivation path within the family
	Reference  string // Name of the reference implementation
	Comparison string // Name of the comparison implementation
	Want       []byte // Reference output
	Got        []byte // Comparison output
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("oracle: %s %s output diverged between %s and %s at byte %d of %d",
		e.Family, e.Path, e.Reference, e.Comparison, firstDiff(e.Want, e.Got), len(e.Want))
}

// Is reports whether target is ErrDivergence.
func (e *DivergenceError) Is(target error) bool {
	return target == ErrDivergence
}

// ConstructionError is returned when an implementation rejects a clamped
// parameter set.
type ConstructionError struct {
	Impl string // Name of the failing implementation
	Op   string // Operation that failed
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("oracle: %s rejected %s: %v", e.Impl, e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// Oracle compares a reference implementation against a comparison one.
type Oracle struct {
	ref Implementation
	cmp Implementation
}

// New creates an oracle checking cmp against ref.
func New(ref, cmp Implementation) *Oracle {
	return &Oracle{ref: ref, cmp: cmp}
}

// std is the oracle used by the package level Run.
var std = New(Reference(), Standard())

// Run checks x/crypto against the standard library for one fuzz input.
func Run(input []byte) error {
	return std.Run(input)
}

// Run builds the HKDF and PBKDF2 cases for a single fuzz input and checks
// both. Nothing is retained between calls.
func (o *Oracle) Run(input []byte) error {
	h, p := kdfcase.Build(input)

	if err := o.CheckHKDF(h); err != nil {
		return err
	}
	return o.CheckPBKDF2(p)
}

// MustRun is Run, but panics on any failure so that a fuzzing engine records
// the input as a crash.
func (o *Oracle) MustRun(input []byte) {
	if err := o.Run(input); err != nil {
		panic(err)
	}
}

// CheckHKDF derives the case's output with extract followed by expand in
// both implementations and compares them, then does the same with the fused
// derivation.
//
// The pseudorandom keys are not compared with each other, only the final
// outputs of each path.
func (o *Oracle) CheckHKDF(c *kdfcase.HKDF) error {
	var (
		want = make([]byte, c.Length)
		got  = make([]byte, c.Length)
	)
	if err := splitHKDF(o.ref, c, want); err != nil {
		return err
	}
	if err := splitHKDF(o.cmp, c, got); err != nil {
		return err
	}
	if err := o.compare(FamilyHKDF, PathSplit, want, got); err != nil {
		return err
	}
	clear(want)
	clear(got)

	if err := o.ref.HKDFDerive(c.Salt, c.Secret, c.Info, want); err != nil {
		return &ConstructionError{Impl: o.ref.Name(), Op: "hkdf derive", Err: err}
	}
	if err := o.cmp.HKDFDerive(c.Salt, c.Secret, c.Info, got); err != nil {
		return &ConstructionError{Impl: o.cmp.Name(), Op: "hkdf derive", Err: err}
	}
	return o.compare(FamilyHKDF, PathFused, want, got)
}

// CheckPBKDF2 derives the case's key in both implementations and compares
// them.
func (o *Oracle) CheckPBKDF2(c *kdfcase.PBKDF2) error {
	var (
		want = make([]byte, c.Length)
		got  = make([]byte, c.Length)
	)
	if err := o.ref.PBKDF2Derive(c.Password, c.Salt, c.Iterations, want); err != nil {
		return &ConstructionError{Impl: o.ref.Name(), Op: "pbkdf2 derive", Err: err}
	}
	if err := o.cmp.PBKDF2Derive(c.Password, c.Salt, c.Iterations, got); err != nil {
		return &ConstructionError{Impl: o.cmp.Name(), Op: "pbkdf2 derive", Err: err}
	}
	return o.compare(FamilyPBKDF2, PathPBKDF2, want, got)
}

func splitHKDF(impl Implementation, c *kdfcase.HKDF, out []byte) error {
	prk, err := impl.HKDFExtract(c.Salt, c.Secret)
	if err != nil {
		return &ConstructionError{Impl: impl.Name(), Op: "hkdf extract", Err: err}
	}
	if err := impl.HKDFExpand(prk, c.Info, out); err != nil {
		return &ConstructionError{Impl: impl.Name(), Op: "hkdf expand", Err: err}
	}
	return nil
}

func (o *Oracle) compare(family, path string, want, got []byte) error {
	if bytes.Equal(want, got) {
		return nil
	}
	return &DivergenceError{
		Family:     family,
		Path:       path,
		Reference:  o.ref.Name(),
		Comparison: o.cmp.Name(),
		Want:       bytes.Clone(want),
		Got:        bytes.Clone(got),
	}
}

// firstDiff returns the index of the first differing byte, or the shorter
// length if one is a prefix of the other.
func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
