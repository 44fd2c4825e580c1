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
	"errors"
	"fmt"
)

var (
	// ErrTooManySigners indicates more signers were supplied than the
	// message requires
	ErrTooManySigners = errors.New("too many signers")
	// ErrNotEnoughSigners indicates fewer signers were supplied than the
	// message requires
	ErrNotEnoughSigners = errors.New("not enough signers")
	// ErrKeypairPubkeyMismatch indicates the supplied signers do not cover
	// the message's required signers, e.g. a duplicate or wrong keypair
	ErrKeypairPubkeyMismatch = errors.New("keypair-pubkey mismatch")
)

// InvalidInputError indicates input that cannot be signed as supplied
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
