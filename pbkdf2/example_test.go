// kdf-oracle-go: differential fuzzing of key derivation functions
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbkdf2_test

import (
	"fmt"

	"github.com/dark-bio/kdf-oracle-go/pbkdf2"
)

func ExampleKey() {
	key := pbkdf2.Key([]byte("password"), []byte("salt"), 4096, 32)
	fmt.Println(len(key))
	// Output: 32
}
