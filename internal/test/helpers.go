// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package test

import (
	"golang.org/x/crypto/blake2b"
)

// DeterministicSeed derives a stable 32-byte keypair seed from a label.
// It lets tests name their keypairs while keeping signatures
// reproducible across runs.
func DeterministicSeed(label string) []byte {
	seed := blake2b.Sum256([]byte(label))
	return seed[:]
}
