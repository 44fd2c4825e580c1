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

// Package message implements the two wire-compatible message shapes
// carried by a versioned transaction: the original fixed-format legacy
// shape and the prefixed v0 shape that adds address table lookups.
package message

import (
	"bytes"
	"fmt"
	"io"

	"github.com/blinklabs-io/gsolana/common"
	"github.com/blinklabs-io/gsolana/shortvec"
)

const (
	// versionFlag marks a prefixed (non-legacy) message. A legacy message
	// starts with its required-signature count, which can never have the
	// high bit set
	versionFlag = byte(0x80)
	versionMask = byte(0x7f)

	// MaxAccountKeys is the most account keys (static plus looked-up)
	// addressable by a single message
	MaxAccountKeys = 256
)

// MessageHeader describes how the leading account keys are used
type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

// CompiledInstruction references its program and accounts by index into
// the message's account keys
type CompiledInstruction struct {
	ProgramIdIndex uint8
	Accounts       []uint8
	Data           []byte
}

// AddressTableLookup selects additional account keys from an on-chain
// address lookup table
type AddressTableLookup struct {
	AccountKey      common.Pubkey
	WritableIndexes []uint8
	ReadonlyIndexes []uint8
}

// VersionedMessage is the closed set of message shapes. Exactly
// *Message and *MessageV0 implement it
type VersionedMessage interface {
	Header() MessageHeader
	StaticAccountKeys() []common.Pubkey
	Serialize() ([]byte, error)
	Sanitize(requireStaticProgramIds bool) error
	isVersionedMessage()
}

// Decode parses a serialized message, dispatching on the version
// discriminant. Trailing bytes are rejected
func Decode(data []byte) (VersionedMessage, error) {
	if len(data) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if data[0]&versionFlag == 0 {
		return NewMessageFromBytes(data)
	}
	version := data[0] & versionMask
	switch version {
	case 0:
		return NewMessageV0FromBytes(data)
	}
	return nil, fmt.Errorf("unsupported message version: %d", version)
}

// HashRawMessage generates the identity hash over serialized message
// bytes. Independent verifiers derive transaction identity from the
// same bytes, which pins the digest to SHA-256
func HashRawMessage(data []byte) common.Hash {
	return common.Sha256Hash(data)
}

// writeMessageBody serializes the fields common to both message shapes
func writeMessageBody(
	buf *bytes.Buffer,
	header MessageHeader,
	accountKeys []common.Pubkey,
	recentBlockhash common.Hash,
	instructions []CompiledInstruction,
) error {
	buf.Write([]byte{
		header.NumRequiredSignatures,
		header.NumReadonlySignedAccounts,
		header.NumReadonlyUnsignedAccounts,
	})
	if err := shortvec.WriteLength(buf, len(accountKeys)); err != nil {
		return err
	}
	for _, accountKey := range accountKeys {
		buf.Write(accountKey.Bytes())
	}
	buf.Write(recentBlockhash.Bytes())
	if err := shortvec.WriteLength(buf, len(instructions)); err != nil {
		return err
	}
	for _, instruction := range instructions {
		buf.WriteByte(instruction.ProgramIdIndex)
		if err := shortvec.WriteLength(buf, len(instruction.Accounts)); err != nil {
			return err
		}
		buf.Write(instruction.Accounts)
		if err := shortvec.WriteLength(buf, len(instruction.Data)); err != nil {
			return err
		}
		buf.Write(instruction.Data)
	}
	return nil
}

// readMessageBody parses the fields common to both message shapes into
// a legacy Message value
func readMessageBody(r *bytes.Reader) (*Message, error) {
	var ret Message
	headerBytes := make([]byte, 3)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return nil, err
	}
	ret.MessageHeader = MessageHeader{
		NumRequiredSignatures:       headerBytes[0],
		NumReadonlySignedAccounts:   headerBytes[1],
		NumReadonlyUnsignedAccounts: headerBytes[2],
	}
	numAccountKeys, err := shortvec.ReadLength(r)
	if err != nil {
		return nil, err
	}
	ret.AccountKeys = make([]common.Pubkey, numAccountKeys)
	for i := range ret.AccountKeys {
		if _, err := io.ReadFull(r, ret.AccountKeys[i][:]); err != nil {
			return nil, err
		}
	}
	if _, err := io.ReadFull(r, ret.RecentBlockhash[:]); err != nil {
		return nil, err
	}
	numInstructions, err := shortvec.ReadLength(r)
	if err != nil {
		return nil, err
	}
	ret.Instructions = make([]CompiledInstruction, numInstructions)
	for i := range ret.Instructions {
		programIdIndex, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		numAccounts, err := shortvec.ReadLength(r)
		if err != nil {
			return nil, err
		}
		accounts := make([]uint8, numAccounts)
		if _, err := io.ReadFull(r, accounts); err != nil {
			return nil, err
		}
		dataLen, err := shortvec.ReadLength(r)
		if err != nil {
			return nil, err
		}
		data := make([]byte, dataLen)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, err
		}
		ret.Instructions[i] = CompiledInstruction{
			ProgramIdIndex: programIdIndex,
			Accounts:       accounts,
			Data:           data,
		}
	}
	return &ret, nil
}

func checkTrailingBytes(r *bytes.Reader) error {
	if r.Len() > 0 {
		return fmt.Errorf(
			"%d trailing bytes after message",
			r.Len(),
		)
	}
	return nil
}
