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

package cbor

import "github.com/blinklabs-io/cardano-ledger/bytestring"

// EncodeHex is Encode followed by lowercase hex encoding, for callers that
// move CBOR through text-oriented transports (logs, JSON fields, CLI
// output).
func EncodeHex(v Value, opts Options) (string, error) {
	b, err := Encode(v, opts)
	if err != nil {
		return "", err
	}
	return bytestring.EncodeHex(b), nil
}

// DecodeHex hex-decodes s and parses a single top-level CBOR value from
// it, rejecting trailing bytes the same way Decode does.
func DecodeHex(s string, opts Options) (Value, error) {
	b, err := bytestring.DecodeHex(s)
	if err != nil {
		return Value{}, err
	}
	return Decode(b, opts)
}
