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

// Package signer defines the signing capability consumed by the
// transaction envelope and an ed25519 keypair implementing it.
package signer

import (
	"github.com/blinklabs-io/gsolana/common"
)

// Signer is a single signing identity
type Signer interface {
	Pubkey() common.Pubkey
	SignMessage(message []byte) (common.Signature, error)
}

// Signers is an ordered set of signing identities. Implementations
// report public keys and signatures in the same intrinsic order, one
// signature per signer
type Signers interface {
	Pubkeys() ([]common.Pubkey, error)
	SignMessage(message []byte) ([]common.Signature, error)
}

// Set implements Signers over a slice of individual signers
type Set []Signer

func (s Set) Pubkeys() ([]common.Pubkey, error) {
	pubkeys := make([]common.Pubkey, 0, len(s))
	for _, tmpSigner := range s {
		pubkeys = append(pubkeys, tmpSigner.Pubkey())
	}
	return pubkeys, nil
}

func (s Set) SignMessage(message []byte) ([]common.Signature, error) {
	signatures := make([]common.Signature, 0, len(s))
	for _, tmpSigner := range s {
		signature, err := tmpSigner.SignMessage(message)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, signature)
	}
	return signatures, nil
}
