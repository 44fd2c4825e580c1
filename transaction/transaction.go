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

// Package transaction implements the signed transaction envelope: an
// ordered list of signatures paired with a message whose leading
// account keys declare the required signers. Signatures are matched to
// signers by position, never by content.
package transaction

import (
	"bytes"

	"github.com/blinklabs-io/gsolana/common"
	"github.com/blinklabs-io/gsolana/message"
	"github.com/blinklabs-io/gsolana/shortvec"
)

// Transaction is a legacy (unversioned) transaction. The signature at
// index i covers the serialized message and corresponds to the account
// key at index i
type Transaction struct {
	Signatures []common.Signature `json:"signatures"`
	Message    message.Message    `json:"message"`
}

// Serialize encodes the transaction for the wire: a compact-length
// signature count, the fixed-width signatures, then the message bytes
func (t *Transaction) Serialize() ([]byte, error) {
	msgBytes, err := t.Message.Serialize()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := shortvec.WriteLength(buf, len(t.Signatures)); err != nil {
		return nil, err
	}
	for _, signature := range t.Signatures {
		buf.Write(signature.Bytes())
	}
	buf.Write(msgBytes)
	return buf.Bytes(), nil
}
