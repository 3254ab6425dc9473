// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pbkdf2 provides the reference PBKDF2-HMAC-SHA512 key derivation,
// built on golang.org/x/crypto/pbkdf2.
//
// https://datatracker.ietf.org/doc/html/rfc8018#section-5.2
package pbkdf2

import (
	"crypto/sha512"
	"errors"

	"golang.org/x/crypto/pbkdf2"
)

// Error types for rejected derivation parameters
var (
	ErrInvalidIterations = errors.New("pbkdf2: iteration count must be positive")
	ErrInvalidLength     = errors.New("pbkdf2: invalid output length")
)

// Derive fills out with a key derived from the password and salt using
// PBKDF2-HMAC-SHA512 with the given iteration count.
//
// The iteration count specifies how many times HMAC is chained per output
// block, so the cost scales with both iterations and len(out)/64.
func Derive(password, salt []byte, iterations int, out []byte) error {
	if iterations < 1 {
		return ErrInvalidIterations
	}
	if len(out) == 0 {
		return ErrInvalidLength
	}
	copy(out, pbkdf2.Key(password, salt, iterations, len(out), sha512.New))
	return nil
}

// Key derives a key of length n from the password and salt. For example, a
// key for AES-256 (which needs 32 bytes) with a random salt:
//
//	key := pbkdf2.Key([]byte("password"), salt, 600000, 32)
//
// Panics if iterations or n is not positive.
func Key(password, salt []byte, iterations, n int) []byte {
	out := make([]byte, max(n, 0))
	if err := Derive(password, salt, iterations, out); err != nil {
		panic(err)
	}
	return out
}
