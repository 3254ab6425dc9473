// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hkdf provides the reference HKDF-SHA512 key derivation, built on
// golang.org/x/crypto/hkdf.
//
// https://datatracker.ietf.org/doc/html/rfc5869
package hkdf

import (
	"crypto/sha512"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// MaxSize is the maximum output length of HKDF-SHA512, 255 * 64 bytes.
const MaxSize = 255 * sha512.Size

// ErrInvalidLength is returned if the requested output is empty or longer
// than MaxSize.
var ErrInvalidLength = errors.New("hkdf: invalid output length")

// Extract derives a pseudorandom key from the salt and input key material.
// The salt may be nil or empty.
func Extract(salt, secret []byte) []byte {
	return hkdf.Extract(sha512.New, secret, salt)
}

// Expand fills out with output key material derived from the pseudorandom
// key and the optional info.
func Expand(prk, info, out []byte) error {
	if len(out) == 0 || len(out) > MaxSize {
		return ErrInvalidLength
	}
	return fill(hkdf.Expand(sha512.New, prk, info), out)
}

// Derive runs extract and expand in one call, filling out with output key
// material.
func Derive(salt, secret, info, out []byte) error {
	if len(out) == 0 || len(out) > MaxSize {
		return ErrInvalidLength
	}
	return fill(hkdf.New(sha512.New, secret, salt, info), out)
}

// Key derives a key of length n from the secret, salt, and info using
// HKDF-SHA512. The salt and info may be nil or empty.
//
// Panics if n is zero or exceeds MaxSize.
func Key(secret, salt, info []byte, n int) []byte {
	out := make([]byte, n)
	if err := Derive(salt, secret, info, out); err != nil {
		panic(err)
	}
	return out
}

func fill(r io.Reader, out []byte) error {
	if _, err := io.ReadFull(r, out); err != nil {
		return errors.New("hkdf: " + err.Error())
	}
	return nil
}
