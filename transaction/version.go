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
	"encoding/json"
	"strconv"
)

// TransactionVersion identifies the shape of a transaction's message:
// the legacy marker or a numbered version. The legacy marker and
// version 0 are distinct values even though both currently refer to
// the same underlying layout
type TransactionVersion struct {
	legacy bool
	number uint8
}

// TransactionVersionLegacy is the marker for legacy-shaped messages
var TransactionVersionLegacy = TransactionVersion{legacy: true}

// NewTransactionVersion returns the numbered version tag
func NewTransactionVersion(number uint8) TransactionVersion {
	return TransactionVersion{number: number}
}

func (v TransactionVersion) IsLegacy() bool {
	return v.legacy
}

// Number returns the numbered version and true, or false for the
// legacy marker
func (v TransactionVersion) Number() (uint8, bool) {
	if v.legacy {
		return 0, false
	}
	return v.number, true
}

func (v TransactionVersion) String() string {
	if v.legacy {
		return "legacy"
	}
	return strconv.Itoa(int(v.number))
}

// MarshalJSON renders the legacy marker as the string "legacy" and a
// numbered version as a bare number
func (v TransactionVersion) MarshalJSON() ([]byte, error) {
	if v.legacy {
		return json.Marshal("legacy")
	}
	return json.Marshal(v.number)
}
