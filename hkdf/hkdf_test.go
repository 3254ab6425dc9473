// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hkdf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// Inputs from RFC 5869 A.1 and A.3, run through SHA-512 instead of SHA-256.
// There are no official SHA-512 vectors, so this only checks that the split
// and fused paths agree with each other.
func TestExtractExpandMatchesDerive(t *testing.T) {
	tests := []struct {
		secret string
		salt   string
		info   string
		size   int
	}{
		{
			secret: "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
			salt:   "000102030405060708090a0b0c",
			info:   "f0f1f2f3f4f5f6f7f8f9",
			size:   42,
		},
		{
			secret: "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
			size:   42,
		},
		{
			size: 1,
		},
		{
			secret: "00",
			size:   MaxSize,
		},
	}
	for _, tc := range tests {
		secret, _ := hex.DecodeString(tc.secret)
		salt, _ := hex.DecodeString(tc.salt)
		info, _ := hex.DecodeString(tc.info)

		split := make([]byte, tc.size)
		if err := Expand(Extract(salt, secret), info, split); err != nil {
			t.Fatalf("Expand(size=%d) failed: %v", tc.size, err)
		}
		fused := Key(secret, salt, info, tc.size)
		if !bytes.Equal(split, fused) {
			t.Errorf("size %d: split = %x, fused %x", tc.size, split, fused)
		}
	}
}

// Tests that shorter outputs are prefixes of longer ones.
func TestExpandPrefix(t *testing.T) {
	prk := Extract([]byte("salt"), []byte("secret"))

	long := make([]byte, 1000)
	if err := Expand(prk, nil, long); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	for _, n := range []int{1, 63, 64, 65, 128, 999} {
		short := make([]byte, n)
		if err := Expand(prk, nil, short); err != nil {
			t.Fatalf("Expand(%d) failed: %v", n, err)
		}
		if !bytes.Equal(short, long[:n]) {
			t.Errorf("Expand(%d) is not a prefix of the longer output", n)
		}
	}
}

func TestInvalidLength(t *testing.T) {
	prk := Extract(nil, nil)
	for _, n := range []int{0, MaxSize + 1} {
		if err := Expand(prk, nil, make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Expand(%d) error = %v, want %v", n, err, ErrInvalidLength)
		}
		if err := Derive(nil, nil, nil, make([]byte, n)); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Derive(%d) error = %v, want %v", n, err, ErrInvalidLength)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected Key to panic on oversized output")
		}
	}()
	Key(nil, nil, nil, MaxSize+1)
}
