// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdfcase turns a single fuzzer supplied buffer into HKDF and PBKDF2
// derivation parameters.
//
// Buffer lengths follow the fuzz input's length, while the secret and salt
// contents come from a stream seeded by the input. Every size is clamped into
// the range the KDF defines, so any input, including an empty one, yields a
// valid case.
package kdfcase

import (
	"crypto/sha512"

	"github.com/dark-bio/kdf-oracle-go/internal/chacharng"
)

const (
	// HashSize is the digest size of the hash underlying both KDFs (SHA-512).
	HashSize = sha512.Size

	// MaxHKDFLength is the largest output HKDF can expand to, 255 * HashSize.
	MaxHKDFLength = 255 * HashSize

	// FallbackHKDFLength is the HKDF output length used when the natural
	// length is zero or above MaxHKDFLength.
	FallbackHKDFLength = 256

	// MaxPBKDF2Param bounds both the PBKDF2 iteration count and derived key
	// length, keeping the per-input CPU cost small.
	MaxPBKDF2Param = 1<<16 - 1

	// FallbackPBKDF2Length replaces a zero derived key length.
	FallbackPBKDF2Length = 64

	// FallbackPBKDF2Iterations replaces a zero iteration count.
	FallbackPBKDF2Iterations = 1
)

// Stream is a deterministic source of bytes and integers.
type Stream interface {
	Fill(b []byte)
	Uint32() uint32
}

// HKDF holds the parameters of one HKDF comparison.
type HKDF struct {
	Secret []byte `cbor:"1,keyasint"`
	Salt   []byte `cbor:"2,keyasint"`
	Info   []byte `cbor:"3,keyasint"`
	Length int    `cbor:"4,keyasint"`
}

// PBKDF2 holds the parameters of one PBKDF2 comparison.
type PBKDF2 struct {
	Password   []byte `cbor:"1,keyasint"`
	Salt       []byte `cbor:"2,keyasint"`
	Iterations int    `cbor:"3,keyasint"`
	Length     int    `cbor:"4,keyasint"`
}

// ClampLength returns natural if it lies in [1, limit], otherwise fallback.
func ClampLength(natural, limit, fallback int) int {
	if natural < 1 || natural > limit {
		return fallback
	}
	return natural
}

// NewHKDF derives the HKDF parameters for the input, drawing the secret and
// then the salt from the stream.
//
//   - secret: len(input)/2 stream bytes
//   - salt:   len(input)/4 stream bytes
//   - info:   input[0] zero bytes, or none for an empty input
//   - length: len(input)/2, or FallbackHKDFLength if outside [1, MaxHKDFLength]
func NewHKDF(input []byte, s Stream) *HKDF {
	c := &HKDF{
		Secret: make([]byte, len(input)/2),
		Salt:   make([]byte, len(input)/4),
		Length: ClampLength(len(input)/2, MaxHKDFLength, FallbackHKDFLength),
	}
	s.Fill(c.Secret)
	s.Fill(c.Salt)

	// Only the info length matters for the comparison, not its content
	if len(input) > 0 {
		c.Info = make([]byte, input[0])
	} else {
		c.Info = []byte{}
	}
	return c
}

// NewPBKDF2 derives the PBKDF2 parameters for the input, drawing the
// password, the salt, the key length and the iteration count from the stream
// in that order.
//
// The 32 bit draws are truncated to 16 bits, which skews the distribution but
// bounds the cost.
func NewPBKDF2(input []byte, s Stream) *PBKDF2 {
	c := &PBKDF2{
		Password: make([]byte, len(input)/2),
		Salt:     make([]byte, len(input)/4),
	}
	s.Fill(c.Password)
	s.Fill(c.Salt)

	c.Length = ClampLength(int(uint16(s.Uint32())), MaxPBKDF2Param, FallbackPBKDF2Length)
	c.Iterations = ClampLength(int(uint16(s.Uint32())), MaxPBKDF2Param, FallbackPBKDF2Iterations)
	return c
}

// Build seeds a fresh stream from the input and derives both cases from it,
// HKDF first. Equal inputs always build equal cases.
func Build(input []byte) (*HKDF, *PBKDF2) {
	s := chacharng.New(input)

	h := NewHKDF(input, s)
	p := NewPBKDF2(input, s)
	return h, p
}
