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

package transaction

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/blinklabs-io/gsolana/common"
	"github.com/blinklabs-io/gsolana/message"
	"github.com/blinklabs-io/gsolana/shortvec"
	"github.com/blinklabs-io/gsolana/signer"
)

// VersionedTransaction is a transaction whose message may be any of
// the supported message shapes. Values are constructed once and never
// mutated; verification is safe to run concurrently across
// transactions without locking
type VersionedTransaction struct {
	Signatures []common.Signature       `json:"signatures"`
	Message    message.VersionedMessage `json:"message"`
}

// NewVersionedTransactionFromLegacy wraps a legacy transaction without
// validating it. This is a representation change only; signatures and
// message bytes are preserved exactly
func NewVersionedTransactionFromLegacy(tx Transaction) VersionedTransaction {
	return VersionedTransaction{
		Signatures: tx.Signatures,
		Message:    &tx.Message,
	}
}

// NewSignedTransaction signs msg with the supplied signers and returns
// a transaction whose signatures are ordered to match the message's
// required-signer prefix, regardless of the order the signers were
// supplied in. The message is signed once over the full signer set and
// the resulting signatures are permuted into place; when a signer is
// supplied more than once the leftmost match is used
func NewSignedTransaction(
	msg message.VersionedMessage,
	signers signer.Signers,
) (*VersionedTransaction, error) {
	staticAccountKeys := msg.StaticAccountKeys()
	numRequired := int(msg.Header().NumRequiredSignatures)
	if len(staticAccountKeys) < numRequired {
		return nil, signer.InvalidInputError{Reason: "invalid message"}
	}

	signerKeys, err := signers.Pubkeys()
	if err != nil {
		return nil, err
	}
	expectedSignerKeys := staticAccountKeys[:numRequired]

	switch {
	case len(signerKeys) > len(expectedSignerKeys):
		return nil, signer.ErrTooManySigners
	case len(signerKeys) < len(expectedSignerKeys):
		return nil, signer.ErrNotEnoughSigners
	}

	msgBytes, err := msg.Serialize()
	if err != nil {
		return nil, err
	}

	signatureIndexes := make([]int, 0, len(expectedSignerKeys))
	for _, expectedKey := range expectedSignerKeys {
		signerIndex := slices.Index(signerKeys, expectedKey)
		if signerIndex < 0 {
			return nil, signer.ErrKeypairPubkeyMismatch
		}
		signatureIndexes = append(signatureIndexes, signerIndex)
	}

	unorderedSignatures, err := signers.SignMessage(msgBytes)
	if err != nil {
		return nil, err
	}
	signatures := make([]common.Signature, 0, len(signatureIndexes))
	for _, signatureIndex := range signatureIndexes {
		if signatureIndex >= len(unorderedSignatures) {
			return nil, signer.InvalidInputError{Reason: "invalid keypairs"}
		}
		signatures = append(signatures, unorderedSignatures[signatureIndex])
	}

	return &VersionedTransaction{
		Signatures: signatures,
		Message:    msg,
	}, nil
}

// NewVersionedTransactionFromBytes parses a serialized transaction
func NewVersionedTransactionFromBytes(
	data []byte,
) (*VersionedTransaction, error) {
	r := bytes.NewReader(data)
	numSignatures, err := shortvec.ReadLength(r)
	if err != nil {
		return nil, err
	}
	signatures := make([]common.Signature, numSignatures)
	for i := range signatures {
		if _, err := io.ReadFull(r, signatures[i][:]); err != nil {
			return nil, err
		}
	}
	msg, err := message.Decode(data[len(data)-r.Len():])
	if err != nil {
		return nil, err
	}
	return &VersionedTransaction{
		Signatures: signatures,
		Message:    msg,
	}, nil
}

// Serialize encodes the transaction for the wire: a compact-length
// signature count, the fixed-width signatures, then the message's own
// encoding. The version discriminant is part of the message encoding,
// not a separate field
func (t *VersionedTransaction) Serialize() ([]byte, error) {
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

// Sanitize performs the structural checks required before the
// transaction can be trusted: the message's own checks, then the
// signature count invariants
func (t *VersionedTransaction) Sanitize(requireStaticProgramIds bool) error {
	if err := t.Message.Sanitize(requireStaticProgramIds); err != nil {
		return err
	}
	return t.sanitizeSignatures()
}

func (t *VersionedTransaction) sanitizeSignatures() error {
	numRequired := int(t.Message.Header().NumRequiredSignatures)
	switch {
	case numRequired > len(t.Signatures):
		return common.ErrIndexOutOfBounds
	case numRequired < len(t.Signatures):
		return common.ErrInvalidValue
	}
	// Signatures are verified before any address lookups are resolved,
	// so every signer must be among the static account keys
	if len(t.Signatures) > len(t.Message.StaticAccountKeys()) {
		return common.ErrIndexOutOfBounds
	}
	return nil
}

// Version returns the version of the transaction
func (t *VersionedTransaction) Version() TransactionVersion {
	switch t.Message.(type) {
	case *message.Message:
		return TransactionVersionLegacy
	case *message.MessageV0:
		return NewTransactionVersion(0)
	}
	// The message shape set is closed; see message.VersionedMessage
	panic(fmt.Sprintf("unknown message shape: %T", t.Message))
}

// ToLegacyTransaction returns the equivalent legacy transaction and
// true if the message is legacy-shaped, or false when the conversion
// does not apply
func (t *VersionedTransaction) ToLegacyTransaction() (*Transaction, bool) {
	if msg, ok := t.Message.(*message.Message); ok {
		return &Transaction{
			Signatures: t.Signatures,
			Message:    *msg,
		}, true
	}
	return nil, false
}

// VerifyAndHashMessage verifies every signature and returns the
// message identity hash. This is the entry point used before admitting
// a transaction into downstream processing
func (t *VersionedTransaction) VerifyAndHashMessage() (common.Hash, error) {
	msgBytes, err := t.Message.Serialize()
	if err != nil {
		return common.Hash{}, err
	}
	for _, verified := range t.verifyWithResults(msgBytes) {
		if !verified {
			return common.Hash{}, ErrSignatureFailure
		}
	}
	return message.HashRawMessage(msgBytes), nil
}

// VerifyWithResults checks each signature against the account key at
// the same index and returns the per-index results. Callers must have
// sanitized the transaction first: when there are more signatures than
// static account keys the excess signatures are not checked and the
// result vector is truncated to the key count
func (t *VersionedTransaction) VerifyWithResults() []bool {
	msgBytes, err := t.Message.Serialize()
	if err != nil {
		// A message that cannot serialize can never have been signed
		return make([]bool, len(t.Signatures))
	}
	return t.verifyWithResults(msgBytes)
}

func (t *VersionedTransaction) verifyWithResults(msgBytes []byte) []bool {
	staticAccountKeys := t.Message.StaticAccountKeys()
	numChecks := min(len(t.Signatures), len(staticAccountKeys))
	results := make([]bool, 0, numChecks)
	for i := 0; i < numChecks; i++ {
		results = append(
			results,
			t.Signatures[i].Verify(staticAccountKeys[i].Bytes(), msgBytes),
		)
	}
	return results
}
