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

// Package shortvec implements the compact-u16 length encoding used to
// prefix variable-length sequences in the transaction wire format. A
// length is encoded in 1-3 bytes, 7 bits per byte starting with the
// lowest bits, with the high bit of each byte set when another byte
// follows.
package shortvec

import (
	"errors"
	"fmt"
	"io"
)

// MaxValue is the largest length representable by the encoding
const MaxValue = 0xFFFF

const maxEncodedLen = 3

var (
	// ErrValueOutOfRange indicates a length outside [0, MaxValue]
	ErrValueOutOfRange = errors.New("shortvec: length out of range")
	// ErrNonCanonical indicates an encoding with a redundant trailing byte.
	// Each value has exactly one valid encoding; anything longer is rejected
	// so that serialized data cannot alias.
	ErrNonCanonical = errors.New("shortvec: non-canonical length encoding")
)

// WriteLength encodes length and writes it to w
func WriteLength(w io.Writer, length int) error {
	if length < 0 || length > MaxValue {
		return fmt.Errorf("%w: %d", ErrValueOutOfRange, length)
	}
	rem := uint16(length) // #nosec G115
	for {
		b := byte(rem & 0x7f)
		rem >>= 7
		if rem != 0 {
			b |= 0x80
		}
		if _, err := w.Write([]byte{b}); err != nil {
			return err
		}
		if rem == 0 {
			return nil
		}
	}
}

// ReadLength decodes a length from r. It consumes only the bytes that
// make up the encoding and rejects encodings longer than three bytes,
// values above MaxValue, and non-canonical forms
func ReadLength(r io.ByteReader) (int, error) {
	value := 0
	for i := 0; i < maxEncodedLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if i > 0 && b == 0 {
			return 0, ErrNonCanonical
		}
		value |= int(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if value > MaxValue {
				return 0, fmt.Errorf("%w: %d", ErrValueOutOfRange, value)
			}
			return value, nil
		}
	}
	return 0, fmt.Errorf(
		"shortvec: length encoding exceeds %d bytes",
		maxEncodedLen,
	)
}
