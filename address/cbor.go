// Copyright 2025 Blink Labs Software
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

package address

import "github.com/blinklabs-io/cardano-ledger/cbor"

// ToCbor wraps a's wire bytes in a plain CBOR byte string, the shape
// every ledger entity that embeds an address uses.
func (a Address) ToCbor() (cbor.Value, error) {
	raw, err := a.Bytes()
	if err != nil {
		return cbor.Value{}, err
	}
	return cbor.Bytes(raw), nil
}

// FromCborValue is the inverse of ToCbor.
func FromCborValue(v cbor.Value) (Address, error) {
	if v.Kind != cbor.KindBytes && v.Kind != cbor.KindBytesChunked {
		return Address{}, errBadHeader("address CBOR representation must be a byte string")
	}
	return FromBytes(v.Bytes)
}
