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

package common

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	PubkeySize    = 32
	SignatureSize = 64
	HashSize      = 32
)

// Pubkey is an ed25519 public key identifying an account
type Pubkey [PubkeySize]byte

func NewPubkey(data []byte) Pubkey {
	p := Pubkey{}
	copy(p[:], data)
	return p
}

// NewPubkeyFromString decodes a base58-encoded public key
func NewPubkeyFromString(s string) (Pubkey, error) {
	decoded := base58.Decode(s)
	if len(decoded) != PubkeySize {
		return Pubkey{}, fmt.Errorf(
			"decoded pubkey must be %d bytes, got %d",
			PubkeySize,
			len(decoded),
		)
	}
	return NewPubkey(decoded), nil
}

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Bytes() []byte {
	return p[:]
}

func (p Pubkey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// IsOnCurve returns whether the key decompresses to a point on the
// ed25519 curve. Program-derived addresses are constructed to fail
// this check, so they can never have a matching private key.
func (p Pubkey) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}

// Signature is a fixed-width ed25519 signature
type Signature [SignatureSize]byte

func NewSignature(data []byte) Signature {
	s := Signature{}
	copy(s[:], data)
	return s
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Verify checks the signature against the given public key and message
// bytes. A malformed public key yields false rather than an error
func (s Signature) Verify(pubKey []byte, message []byte) bool {
	if len(pubKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey), message, s[:])
}

// Hash is a SHA-256 digest
type Hash [HashSize]byte

func NewHash(data []byte) Hash {
	h := Hash{}
	copy(h[:], data)
	return h
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// Sha256Hash generates a SHA-256 hash from the provided data
func Sha256Hash(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}
