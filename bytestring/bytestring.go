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

// Package bytestring provides the bounded byte-string and hex primitives
// every fixed-length hash and variable-length payload type in this module
// builds on: fixed-length validation for hash-shaped values, bounded
// variable-length validation for payloads like asset names, and a
// lowercase/even-length hex encoding symmetric with both.
package bytestring

import (
	"encoding/hex"
	"strings"

	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

const module = "bytestring"

// Fixed is an immutable byte string of exactly one validated length. It is
// used for every hash-shaped type (KeyHash, ScriptHash, Blake2b256, ...).
type Fixed struct {
	data []byte
}

// NewFixed validates that data is exactly wantLen bytes and returns an
// immutable copy.
func NewFixed(data []byte, wantLen int) (Fixed, error) {
	if len(data) != wantLen {
		return Fixed{}, ledgererr.Newf(
			ledgererr.InvalidLength,
			module,
			"expected %d bytes, got %d",
			wantLen,
			len(data),
		)
	}
	cp := make([]byte, wantLen)
	copy(cp, data)
	return Fixed{data: cp}, nil
}

// Bytes returns a defensive copy of the underlying bytes.
func (f Fixed) Bytes() []byte {
	cp := make([]byte, len(f.data))
	copy(cp, f.data)
	return cp
}

// Len returns the fixed length of this byte string.
func (f Fixed) Len() int {
	return len(f.data)
}

// Equal reports byte-for-byte equality.
func (f Fixed) Equal(other Fixed) bool {
	if len(f.data) != len(other.data) {
		return false
	}
	for i := range f.data {
		if f.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Hex returns the lowercase hex encoding.
func (f Fixed) Hex() string {
	return hex.EncodeToString(f.data)
}

// FixedFromHex decodes a hex string into a Fixed of exactly wantLen bytes.
func FixedFromHex(s string, wantLen int) (Fixed, error) {
	raw, err := DecodeHex(s)
	if err != nil {
		return Fixed{}, err
	}
	return NewFixed(raw, wantLen)
}

// Variable is an immutable byte string bounded between a minimum and
// maximum length (inclusive), used for payloads like Plutus asset names
// (0..32) and Plutus bytes chunks (0..64).
type Variable struct {
	data []byte
}

// NewVariable validates that data's length falls in [minLen, maxLen].
func NewVariable(data []byte, minLen, maxLen int) (Variable, error) {
	if len(data) < minLen || len(data) > maxLen {
		return Variable{}, ledgererr.Newf(
			ledgererr.InvalidLength,
			module,
			"expected between %d and %d bytes, got %d",
			minLen,
			maxLen,
			len(data),
		)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return Variable{data: cp}, nil
}

// Bytes returns a defensive copy of the underlying bytes.
func (v Variable) Bytes() []byte {
	cp := make([]byte, len(v.data))
	copy(cp, v.data)
	return cp
}

// Len returns the byte length.
func (v Variable) Len() int {
	return len(v.data)
}

// Equal reports byte-for-byte equality.
func (v Variable) Equal(other Variable) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Hex returns the lowercase hex encoding.
func (v Variable) Hex() string {
	return hex.EncodeToString(v.data)
}

// DecodeHex parses a lowercase or uppercase, even-length, unprefixed hex
// string into raw bytes. The decoder tolerates uppercase; the encoder
// (Fixed.Hex/Variable.Hex/EncodeHex) always emits lowercase.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, ledgererr.Newf(ledgererr.InvalidHex, module, "odd-length hex string %q", s)
	}
	raw, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return nil, ledgererr.Wrap(ledgererr.InvalidHex, module, "invalid hex string", err)
	}
	return raw, nil
}

// EncodeHex emits the lowercase hex form of data.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}
