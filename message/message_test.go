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
	"testing"

	"github.com/blinklabs-io/gsolana/common"
	"github.com/stretchr/testify/require"
)

func testLegacyMessage() *Message {
	return &Message{
		MessageHeader: MessageHeader{
			NumRequiredSignatures:       1,
			NumReadonlySignedAccounts:   0,
			NumReadonlyUnsignedAccounts: 1,
		},
		AccountKeys: []common.Pubkey{
			common.NewPubkey(bytes.Repeat([]byte{0x01}, common.PubkeySize)),
			common.NewPubkey(bytes.Repeat([]byte{0x02}, common.PubkeySize)),
		},
		RecentBlockhash: common.NewHash(
			bytes.Repeat([]byte{0x03}, common.HashSize),
		),
		Instructions: []CompiledInstruction{
			{
				ProgramIdIndex: 1,
				Accounts:       []uint8{0},
				Data:           []byte{0xaa, 0xbb},
			},
		},
	}
}

func testLegacyMessageBytes() []byte {
	expected := []byte{0x01, 0x00, 0x01, 0x02}
	expected = append(
		expected,
		bytes.Repeat([]byte{0x01}, common.PubkeySize)...,
	)
	expected = append(
		expected,
		bytes.Repeat([]byte{0x02}, common.PubkeySize)...,
	)
	expected = append(
		expected,
		bytes.Repeat([]byte{0x03}, common.HashSize)...,
	)
	expected = append(
		expected,
		0x01, // instruction count
		0x01, // program id index
		0x01, 0x00, // account indexes
		0x02, 0xaa, 0xbb, // data
	)
	return expected
}

func testMessageV0() *MessageV0 {
	legacy := testLegacyMessage()
	return &MessageV0{
		MessageHeader:   legacy.MessageHeader,
		AccountKeys:     legacy.AccountKeys,
		RecentBlockhash: legacy.RecentBlockhash,
		Instructions:    legacy.Instructions,
		AddressTableLookups: []AddressTableLookup{
			{
				AccountKey: common.NewPubkey(
					bytes.Repeat([]byte{0x04}, common.PubkeySize),
				),
				WritableIndexes: []uint8{0},
				ReadonlyIndexes: []uint8{1},
			},
		},
	}
}

func TestLegacySerialize(t *testing.T) {
	data, err := testLegacyMessage().Serialize()
	require.NoError(t, err, "Serialize failed")
	require.Equal(t, testLegacyMessageBytes(), data, "serialization mismatch")
}

func TestMessageV0Serialize(t *testing.T) {
	expected := append([]byte{0x80}, testLegacyMessageBytes()...)
	expected = append(expected, 0x01) // lookup count
	expected = append(
		expected,
		bytes.Repeat([]byte{0x04}, common.PubkeySize)...,
	)
	expected = append(
		expected,
		0x01, 0x00, // writable indexes
		0x01, 0x01, // readonly indexes
	)
	data, err := testMessageV0().Serialize()
	require.NoError(t, err, "Serialize failed")
	require.Equal(t, expected, data, "serialization mismatch")
}

func TestDecodeLegacy(t *testing.T) {
	msg, err := Decode(testLegacyMessageBytes())
	require.NoError(t, err, "Decode failed")
	require.IsType(t, &Message{}, msg, "expected legacy message")
	require.Equal(t, testLegacyMessage(), msg, "decoded message mismatch")
}

func TestDecodeV0RoundTrip(t *testing.T) {
	expected := testMessageV0()
	data, err := expected.Serialize()
	require.NoError(t, err, "Serialize failed")
	msg, err := Decode(data)
	require.NoError(t, err, "Decode failed")
	require.IsType(t, &MessageV0{}, msg, "expected v0 message")
	require.Equal(t, expected, msg, "round trip mismatch")
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	data, err := testMessageV0().Serialize()
	require.NoError(t, err, "Serialize failed")
	data[0] = 0x81
	_, err = Decode(data)
	require.ErrorContains(t, err, "unsupported message version: 1")
}

func TestDecodeTrailingBytes(t *testing.T) {
	data := append(testLegacyMessageBytes(), 0xff)
	_, err := Decode(data)
	require.ErrorContains(t, err, "trailing bytes")
}

func TestDecodeTruncated(t *testing.T) {
	data := testLegacyMessageBytes()
	_, err := Decode(data[:len(data)-1])
	require.Error(t, err, "expected error for truncated message")
	_, err = Decode(nil)
	require.Error(t, err, "expected error for empty message")
}

func TestLegacySanitize(t *testing.T) {
	require.NoError(t, testLegacyMessage().Sanitize(true))

	// Signing area overlaps read-only non-signing area
	msg := testLegacyMessage()
	msg.NumReadonlyUnsignedAccounts = 2
	require.ErrorIs(t, msg.Sanitize(true), common.ErrIndexOutOfBounds)

	// No writable signer
	msg = testLegacyMessage()
	msg.NumReadonlySignedAccounts = 1
	require.ErrorIs(t, msg.Sanitize(true), common.ErrIndexOutOfBounds)

	// Program id out of bounds
	msg = testLegacyMessage()
	msg.Instructions[0].ProgramIdIndex = 2
	require.ErrorIs(t, msg.Sanitize(true), common.ErrIndexOutOfBounds)

	// Program cannot be the fee payer
	msg = testLegacyMessage()
	msg.Instructions[0].ProgramIdIndex = 0
	require.ErrorIs(t, msg.Sanitize(true), common.ErrIndexOutOfBounds)

	// Instruction account index out of bounds
	msg = testLegacyMessage()
	msg.Instructions[0].Accounts = []uint8{2}
	require.ErrorIs(t, msg.Sanitize(true), common.ErrIndexOutOfBounds)
}

func TestMessageV0Sanitize(t *testing.T) {
	require.NoError(t, testMessageV0().Sanitize(true))

	// No required signatures
	msg := testMessageV0()
	msg.NumRequiredSignatures = 0
	msg.NumReadonlySignedAccounts = 0
	require.ErrorIs(t, msg.Sanitize(true), common.ErrInvalidValue)

	// No writable signer
	msg = testMessageV0()
	msg.NumReadonlySignedAccounts = 1
	require.ErrorIs(t, msg.Sanitize(true), common.ErrInvalidValue)

	// Empty lookup
	msg = testMessageV0()
	msg.AddressTableLookups[0].WritableIndexes = nil
	msg.AddressTableLookups[0].ReadonlyIndexes = nil
	require.ErrorIs(t, msg.Sanitize(true), common.ErrInvalidValue)

	// Too many total account keys
	msg = testMessageV0()
	msg.AddressTableLookups[0].WritableIndexes = make([]uint8, 255)
	require.ErrorIs(t, msg.Sanitize(true), common.ErrValueOutOfBounds)
}

func TestMessageV0SanitizeProgramIdBounds(t *testing.T) {
	// Program id referencing a looked-up key: static keys are 0-1,
	// lookup indexes extend the key space to 0-3
	msg := testMessageV0()
	msg.Instructions[0].ProgramIdIndex = 2
	require.ErrorIs(
		t,
		msg.Sanitize(true),
		common.ErrIndexOutOfBounds,
		"looked-up program id allowed with static program ids required",
	)
	require.NoError(
		t,
		msg.Sanitize(false),
		"looked-up program id rejected without static requirement",
	)

	// Out of bounds even against the combined key space
	msg.Instructions[0].ProgramIdIndex = 4
	require.ErrorIs(t, msg.Sanitize(false), common.ErrIndexOutOfBounds)
}

func TestHashRawMessage(t *testing.T) {
	data, err := testLegacyMessage().Serialize()
	require.NoError(t, err, "Serialize failed")
	require.Equal(
		t,
		common.Sha256Hash(data),
		HashRawMessage(data),
		"hash mismatch",
	)
}
