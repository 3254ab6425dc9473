// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz

package oracle

// Fuzz is the go-fuzz and libFuzzer entry point. Any divergence or rejected
// parameter set panics, so the engine stores the input as a crasher.
func Fuzz(data []byte) int {
	std.MustRun(data)

	// All inputs build valid cases, none deserve extra priority
	return 0
}
