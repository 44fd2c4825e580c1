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
	"io"

	"github.com/blinklabs-io/gsolana/common"
	"github.com/blinklabs-io/gsolana/shortvec"
)

// MessageV0 is the prefixed message shape. It extends the legacy
// layout with address table lookups that load additional account keys
// at execution time
type MessageV0 struct {
	MessageHeader       `json:"header"`
	AccountKeys         []common.Pubkey       `json:"accountKeys"`
	RecentBlockhash     common.Hash           `json:"recentBlockhash"`
	Instructions        []CompiledInstruction `json:"instructions"`
	AddressTableLookups []AddressTableLookup  `json:"addressTableLookups"`
}

func (*MessageV0) isVersionedMessage() {}

// NewMessageV0FromBytes parses a serialized v0 message, including its
// version prefix byte
func NewMessageV0FromBytes(data []byte) (*MessageV0, error) {
	if len(data) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	r := bytes.NewReader(data[1:])
	body, err := readMessageBody(r)
	if err != nil {
		return nil, err
	}
	numLookups, err := shortvec.ReadLength(r)
	if err != nil {
		return nil, err
	}
	lookups := make([]AddressTableLookup, numLookups)
	for i := range lookups {
		if _, err := io.ReadFull(r, lookups[i].AccountKey[:]); err != nil {
			return nil, err
		}
		numWritable, err := shortvec.ReadLength(r)
		if err != nil {
			return nil, err
		}
		lookups[i].WritableIndexes = make([]uint8, numWritable)
		if _, err := io.ReadFull(r, lookups[i].WritableIndexes); err != nil {
			return nil, err
		}
		numReadonly, err := shortvec.ReadLength(r)
		if err != nil {
			return nil, err
		}
		lookups[i].ReadonlyIndexes = make([]uint8, numReadonly)
		if _, err := io.ReadFull(r, lookups[i].ReadonlyIndexes); err != nil {
			return nil, err
		}
	}
	if err := checkTrailingBytes(r); err != nil {
		return nil, err
	}
	return &MessageV0{
		MessageHeader:       body.MessageHeader,
		AccountKeys:         body.AccountKeys,
		RecentBlockhash:     body.RecentBlockhash,
		Instructions:        body.Instructions,
		AddressTableLookups: lookups,
	}, nil
}

func (m *MessageV0) Header() MessageHeader {
	return m.MessageHeader
}

func (m *MessageV0) StaticAccountKeys() []common.Pubkey {
	return m.AccountKeys
}

func (m *MessageV0) Serialize() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte(versionFlag)
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
	if err := shortvec.WriteLength(buf, len(m.AddressTableLookups)); err != nil {
		return nil, err
	}
	for _, lookup := range m.AddressTableLookups {
		buf.Write(lookup.AccountKey.Bytes())
		if err := shortvec.WriteLength(buf, len(lookup.WritableIndexes)); err != nil {
			return nil, err
		}
		buf.Write(lookup.WritableIndexes)
		if err := shortvec.WriteLength(buf, len(lookup.ReadonlyIndexes)); err != nil {
			return nil, err
		}
		buf.Write(lookup.ReadonlyIndexes)
	}
	return buf.Bytes(), nil
}

// Sanitize performs the structural checks required before any trust
// decision is made about the message. When requireStaticProgramIds is
// true, instruction program ids must reference static account keys;
// looked-up keys are never valid program ids in that mode
func (m *MessageV0) Sanitize(requireStaticProgramIds bool) error {
	numStaticKeys := len(m.AccountKeys)
	// The signing area and the read-only non-signing area must not overlap
	if int(m.MessageHeader.NumRequiredSignatures)+
		int(m.MessageHeader.NumReadonlyUnsignedAccounts) > numStaticKeys {
		return common.ErrIndexOutOfBounds
	}
	// At least one writable signer to pay fees
	if m.MessageHeader.NumReadonlySignedAccounts >=
		m.MessageHeader.NumRequiredSignatures {
		return common.ErrInvalidValue
	}
	if m.MessageHeader.NumRequiredSignatures == 0 {
		return common.ErrInvalidValue
	}
	numDynamicKeys := 0
	for _, lookup := range m.AddressTableLookups {
		numIndexes := len(lookup.WritableIndexes) + len(lookup.ReadonlyIndexes)
		if numIndexes == 0 {
			return common.ErrInvalidValue
		}
		numDynamicKeys += numIndexes
	}
	totalKeys := numStaticKeys + numDynamicKeys
	if totalKeys > MaxAccountKeys {
		return common.ErrValueOutOfBounds
	}
	for _, instruction := range m.Instructions {
		programIdBound := totalKeys
		if requireStaticProgramIds {
			programIdBound = numStaticKeys
		}
		if int(instruction.ProgramIdIndex) >= programIdBound {
			return common.ErrIndexOutOfBounds
		}
		for _, accountIndex := range instruction.Accounts {
			if int(accountIndex) >= totalKeys {
				return common.ErrIndexOutOfBounds
			}
		}
	}
	return nil
}
