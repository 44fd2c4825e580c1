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

package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/blinklabs-io/gsolana/common"
)

// SeedSize is the size of the seed a Keypair is derived from
const SeedSize = ed25519.SeedSize

// Keypair is an ed25519 signing identity
type Keypair struct {
	privKey ed25519.PrivateKey
}

// NewKeypair generates a keypair from the platform CSPRNG
func NewKeypair() (*Keypair, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &Keypair{privKey: privKey}, nil
}

// NewKeypairFromSeed derives a keypair from a 32-byte seed. The same
// seed always yields the same keypair
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf(
			"seed must be %d bytes, got %d",
			SeedSize,
			len(seed),
		)
	}
	return &Keypair{privKey: ed25519.NewKeyFromSeed(seed)}, nil
}

func (k *Keypair) Pubkey() common.Pubkey {
	return common.NewPubkey(k.privKey.Public().(ed25519.PublicKey))
}

func (k *Keypair) SignMessage(message []byte) (common.Signature, error) {
	return common.NewSignature(ed25519.Sign(k.privKey, message)), nil
}
