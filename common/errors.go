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

import "errors"

// Structural sanitization errors shared by message and transaction
// sanitize checks. Any of these means the value must be rejected
// outright before signature verification is attempted.
var (
	// ErrIndexOutOfBounds indicates a count or index referencing past the
	// end of the data it describes
	ErrIndexOutOfBounds = errors.New("sanitize: index out of bounds")
	// ErrValueOutOfBounds indicates a value exceeding its allowed range
	ErrValueOutOfBounds = errors.New("sanitize: value out of bounds")
	// ErrInvalidValue indicates a value that is structurally inconsistent
	// with the rest of the message
	ErrInvalidValue = errors.New("sanitize: invalid value")
)
