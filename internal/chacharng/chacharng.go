// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chacharng provides a deterministic byte stream seeded from an
// arbitrary buffer. The seed is compressed with BLAKE2s-256 into a ChaCha20
// key, and the stream is the raw keystream under an all-zero nonce.
//
// This is not a secure random generator, only a reproducible one.
package chacharng

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/chacha20"
)

// Stream is a seeded ChaCha20 keystream reader. It is not safe for
// concurrent use.
type Stream struct {
	cipher *chacha20.Cipher
}

// New creates a stream seeded from the given buffer. Equal seeds always
// produce equal streams.
func New(seed []byte) *Stream {
	key := blake2s.Sum256(seed)
	var nonce [chacha20.NonceSize]byte

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err) // cannot fail, sizes are fixed
	}
	return &Stream{cipher: cipher}
}

// Fill overwrites b with the next len(b) bytes of the stream.
func (s *Stream) Fill(b []byte) {
	clear(b)
	s.cipher.XORKeyStream(b, b)
}

// Uint32 consumes the next 4 bytes of the stream as a little endian integer.
func (s *Stream) Uint32() uint32 {
	var b [4]byte
	s.Fill(b[:])
	return binary.LittleEndian.Uint32(b[:])
}
