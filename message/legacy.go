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

package message

import (
	"bytes"

	"github.com/blinklabs-io/gsolana/common"
)

// Message is the legacy message shape. Its serialization carries no
// version prefix
type Message struct {
	MessageHeader   `json:"header"`
	AccountKeys     []common.Pubkey       `json:"accountKeys"`
	RecentBlockhash common.Hash           `json:"recentBlockhash"`
	Instructions    []CompiledInstruction `json:"instructions"`
}

func (*Message) isVersionedMessage() {}

// NewMessageFromBytes parses a serialized legacy message
func NewMessageFromBytes(data []byte) (*Message, error) {
	r := bytes.NewReader(data)
	msg, err := readMessageBody(r)
	if err != nil {
		return nil, err
	}
	if err := checkTrailingBytes(r); err != nil {
		return nil, err
	}
	return msg, nil
}

func (m *Message) Header() MessageHeader {
	return m.MessageHeader
}

func (m *Message) StaticAccountKeys() []common.Pubkey {
	return m.AccountKeys
}

func (m *Message) Serialize() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := writeMessageBody(
		buf,
		m.MessageHeader,
		m.AccountKeys,
		m.RecentBlockhash,
		m.Instructions,
	)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sanitize performs the structural checks required before any trust
// decision is made about the message. The flag only applies to shapes
// with dynamically loaded keys
func (m *Message) Sanitize(requireStaticProgramIds bool) error {
	numKeys := len(m.AccountKeys)
	// The signing area and the read-only non-signing area must not overlap
	if int(m.MessageHeader.NumRequiredSignatures)+
		int(m.MessageHeader.NumReadonlyUnsignedAccounts) > numKeys {
		return common.ErrIndexOutOfBounds
	}
	// At least one writable signer to pay fees
	if m.MessageHeader.NumReadonlySignedAccounts >=
		m.MessageHeader.NumRequiredSignatures {
		return common.ErrIndexOutOfBounds
	}
	for _, instruction := range m.Instructions {
		if int(instruction.ProgramIdIndex) >= numKeys {
			return common.ErrIndexOutOfBounds
		}
		// A program cannot be the fee payer
		if instruction.ProgramIdIndex == 0 {
			return common.ErrIndexOutOfBounds
		}
		for _, accountIndex := range instruction.Accounts {
			if int(accountIndex) >= numKeys {
				return common.ErrIndexOutOfBounds
			}
		}
	}
	return nil
}
