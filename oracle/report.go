// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"errors"

	"github.com/dark-bio/kdf-oracle-go/kdfcase"
	"github.com/fxamacker/cbor/v2"
)

// Report captures a failing fuzz input together with the cases derived from
// it and the failure, so the divergence can be reproduced and inspected
// without re-running the fuzzer.
type Report struct {
	Input  []byte          `cbor:"1,keyasint"`
	HKDF   *kdfcase.HKDF   `cbor:"2,keyasint"`
	PBKDF2 *kdfcase.PBKDF2 `cbor:"3,keyasint"`
	Error  string          `cbor:"4,keyasint"`

	// Set only for divergences
	Family     string `cbor:"5,keyasint,omitempty"`
	Path       string `cbor:"6,keyasint,omitempty"`
	Reference  []byte `cbor:"7,keyasint,omitempty"`
	Comparison []byte `cbor:"8,keyasint,omitempty"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err) // cannot fail, options are static
	}
	if decMode, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		panic(err) // cannot fail, options are static
	}
}

// NewReport describes the failure of input. The cases are rebuilt from the
// input, which yields the exact parameters the failing run used.
func NewReport(input []byte, err error) *Report {
	h, p := kdfcase.Build(input)

	r := &Report{
		Input:  input,
		HKDF:   h,
		PBKDF2: p,
		Error:  err.Error(),
	}
	var div *DivergenceError
	if errors.As(err, &div) {
		r.Family = div.Family
		r.Path = div.Path
		r.Reference = div.Want
		r.Comparison = div.Got
	}
	return r
}

// EncodeReport serializes a report into deterministic CBOR.
func EncodeReport(r *Report) ([]byte, error) {
	return encMode.Marshal(r)
}

// DecodeReport parses a CBOR report.
func DecodeReport(data []byte) (*Report, error) {
	r := new(Report)
	if err := decMode.Unmarshal(data, r); err != nil {
		return nil, err
	}
	return r, nil
}
