// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracle

import (
	"github.com/dark-bio/kdf-oracle-go/hkdf"
	"github.com/dark-bio/kdf-oracle-go/internal/stdkdf"
	"github.com/dark-bio/kdf-oracle-go/pbkdf2"
)

// Implementation is one HKDF-SHA512 and PBKDF2-HMAC-SHA512 codebase under
// comparison. All output methods must fill the whole of out or fail.
type Implementation interface {
	// Name identifies the implementation in errors and reports.
	Name() string

	HKDFExtract(salt, secret []byte) ([]byte, error)
	HKDFExpand(prk, info, out []byte) error
	HKDFDerive(salt, secret, info, out []byte) error
	PBKDF2Derive(password, salt []byte, iterations int, out []byte) error
}

// Reference returns the golang.org/x/crypto backed implementation.
func Reference() Implementation { return reference{} }

// Standard returns the standard library backed implementation.
func Standard() Implementation { return standard{} }

type reference struct{}

func (reference) Name() string { return "x/crypto" }

func (reference) HKDFExtract(salt, secret []byte) ([]byte, error) {
	return hkdf.Extract(salt, secret), nil
}

func (reference) HKDFExpand(prk, info, out []byte) error {
	return hkdf.Expand(prk, info, out)
}

func (reference) HKDFDerive(salt, secret, info, out []byte) error {
	return hkdf.Derive(salt, secret, info, out)
}

func (reference) PBKDF2Derive(password, salt []byte, iterations int, out []byte) error {
	return pbkdf2.Derive(password, salt, iterations, out)
}

type standard struct{}

func (standard) Name() string { return "stdlib" }

func (standard) HKDFExtract(salt, secret []byte) ([]byte, error) {
	return stdkdf.Extract(salt, secret)
}

func (standard) HKDFExpand(prk, info, out []byte) error {
	return stdkdf.Expand(prk, info, out)
}

func (standard) HKDFDerive(salt, secret, info, out []byte) error {
	return stdkdf.Derive(salt, secret, info, out)
}

func (standard) PBKDF2Derive(password, salt []byte, iterations int, out []byte) error {
	return stdkdf.PBKDF2(password, salt, iterations, out)
}
