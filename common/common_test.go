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
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPubkeyStringZero(t *testing.T) {
	// The all-zero key renders as 32 base58 "ones"
	p := Pubkey{}
	require.Equal(t, strings.Repeat("1", 32), p.String())
}

func TestPubkeyStringRoundTrip(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "GenerateKey failed")
	p := NewPubkey(pub)
	decoded, err := NewPubkeyFromString(p.String())
	require.NoError(t, err, "NewPubkeyFromString failed")
	require.Equal(t, p, decoded, "base58 round trip mismatch")
}

func TestNewPubkeyFromStringInvalid(t *testing.T) {
	_, err := NewPubkeyFromString("tooshort")
	require.Error(t, err, "expected error for short pubkey string")
	// Invalid base58 characters decode to nothing
	_, err = NewPubkeyFromString(strings.Repeat("0", 44))
	require.Error(t, err, "expected error for invalid base58")
}

func TestPubkeyMarshalJSON(t *testing.T) {
	p := Pubkey{}
	data, err := p.MarshalJSON()
	require.NoError(t, err, "MarshalJSON failed")
	require.Equal(t, `"`+strings.Repeat("1", 32)+`"`, string(data))
}

func TestPubkeyIsOnCurve(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "GenerateKey failed")
	require.True(
		t,
		NewPubkey(pub).IsOnCurve(),
		"generated key not on curve",
	)
}

func TestSignatureVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "GenerateKey failed")
	message := []byte("test message")
	sig := NewSignature(ed25519.Sign(priv, message))
	require.True(t, sig.Verify(pub, message), "signature did not verify")
	require.False(
		t,
		sig.Verify(pub, []byte("other message")),
		"signature verified against wrong message",
	)
}

func TestSignatureVerifyBadPubkeyLength(t *testing.T) {
	sig := Signature{}
	require.False(
		t,
		sig.Verify([]byte{0x01, 0x02}, []byte("test")),
		"verify succeeded with malformed pubkey",
	)
}

func TestSha256Hash(t *testing.T) {
	// SHA-256 of the empty input
	expected := "GKot5hBsd81kMupNCXHaqbhv3huEbxAFMLnpcX2hniwn"
	require.Equal(t, expected, Sha256Hash(nil).String())
	require.Equal(
		t,
		Sha256Hash([]byte("test")),
		Sha256Hash([]byte("test")),
		"hash not deterministic",
	)
}
