// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stdkdf exposes the standard library's HKDF-SHA512 and
// PBKDF2-HMAC-SHA512 (backed by the crypto/internal/fips140 module) through
// the same buffer-filling surface as the reference packages, so the two can
// be compared byte for byte.
package stdkdf

import (
	"crypto/hkdf"
	"crypto/pbkdf2"
	"crypto/sha512"
	"fmt"
)

// Extract derives a pseudorandom key from the salt and input key material.
func Extract(salt, secret []byte) ([]byte, error) {
	prk, err := hkdf.Extract(sha512.New, secret, salt)
	if err != nil {
		return nil, fmt.Errorf("stdkdf: hkdf extract: %w", err)
	}
	return prk, nil
}

// Expand fills out with output key material derived from the pseudorandom
// key and info.
func Expand(prk, info, out []byte) error {
	okm, err := hkdf.Expand(sha512.New, prk, string(info), len(out))
	if err != nil {
		return fmt.Errorf("stdkdf: hkdf expand: %w", err)
	}
	return fill(out, okm)
}

// Derive runs extract and expand in one call.
func Derive(salt, secret, info, out []byte) error {
	okm, err := hkdf.Key(sha512.New, secret, salt, string(info), len(out))
	if err != nil {
		return fmt.Errorf("stdkdf: hkdf key: %w", err)
	}
	return fill(out, okm)
}

// PBKDF2 fills out with a PBKDF2-HMAC-SHA512 derived key.
func PBKDF2(password, salt []byte, iterations int, out []byte) error {
	dk, err := pbkdf2.Key(sha512.New, string(password), salt, iterations, len(out))
	if err != nil {
		return fmt.Errorf("stdkdf: pbkdf2: %w", err)
	}
	return fill(out, dk)
}

func fill(out, src []byte) error {
	if len(src) != len(out) {
		return fmt.Errorf("stdkdf: produced %d bytes, want %d", len(src), len(out))
	}
	copy(out, src)
	return nil
}
