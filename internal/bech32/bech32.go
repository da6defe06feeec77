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

// Package bech32 implements the original BCH32 checksum algorithm (BIP-173,
// not the bech32m variant) with no ceiling on the overall string length.
// Cardano base addresses with native assets folded in routinely exceed
// BIP-173's 90-character guidance, which is why upstream Cardano tooling
// (gouroboros) carries its own copy instead of an off-the-shelf bech32
// library such as btcsuite/btcd/btcutil/bech32, and why this package does
// the same (see DESIGN.md).
package bech32

import "strings"

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i, c := range charset {
		rev[c] = int8(i)
	}
	return rev
}()

func polymod(values []byte) uint32 {
	gen := [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, len(hrp)*2+1)
	for _, c := range hrp {
		ret = append(ret, byte(c)>>5)
	}
	ret = append(ret, 0)
	for _, c := range hrp {
		ret = append(ret, byte(c)&31)
	}
	return ret
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ 1
	ret := make([]byte, 6)
	for i := 0; i < 6; i++ {
		ret[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return ret
}

func verifyChecksum(hrp string, data []byte) bool {
	values := append(hrpExpand(hrp), data...)
	return polymod(values) == 1
}

// Encode produces the bech32 string for the given HRP and 5-bit group
// data (already converted via ConvertBits(data, 8, 5, true)).
func Encode(hrp string, data []byte) (string, error) {
	if hrp == "" {
		return "", errNonEmptyHrp
	}
	checksum := createChecksum(hrp, data)
	combined := append(append([]byte{}, data...), checksum...)
	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range combined {
		if int(b) >= len(charset) {
			return "", errInvalidGroupValue
		}
		sb.WriteByte(charset[b])
	}
	return sb.String(), nil
}

// DecodeNoLimit decodes a bech32 string without enforcing BIP-173's
// 90-character ceiling, returning the HRP and the raw 5-bit group data
// (still needing ConvertBits(data, 5, 8, false) to recover byte payloads).
func DecodeNoLimit(s string) (string, []byte, error) {
	if strings.ToLower(s) != s && strings.ToUpper(s) != s {
		return "", nil, errMixedCase
	}
	s = strings.ToLower(s)
	pos := strings.LastIndexByte(s, '1')
	if pos < 1 || pos+7 > len(s) {
		return "", nil, errInvalidSeparator
	}
	hrp := s[:pos]
	for _, c := range hrp {
		if c < 33 || c > 126 {
			return "", nil, errInvalidHrpChar
		}
	}
	data := make([]byte, len(s)-pos-1)
	for i, c := range s[pos+1:] {
		v := int8(-1)
		if c < 128 {
			v = charsetRev[c]
		}
		if v == -1 {
			return "", nil, errInvalidDataChar
		}
		data[i] = byte(v)
	}
	if len(data) < 6 {
		return "", nil, errTooShort
	}
	payload := data[:len(data)-6]
	if !verifyChecksum(hrp, data) {
		return "", nil, errChecksumFail
	}
	return hrp, payload, nil
}

// ConvertBits regroups a slice of fromBits-wide values into toBits-wide
// values, padding the final group when pad is true.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc := uint32(0)
	bits := uint(0)
	maxVal := uint32(1)<<toBits - 1
	var ret []byte
	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, errInvalidGroupValue
		}
		acc = (acc << fromBits) | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			ret = append(ret, byte((acc>>bits)&maxVal))
		}
	}
	if pad {
		if bits > 0 {
			ret = append(ret, byte((acc<<(toBits-bits))&maxVal))
		}
	} else if bits >= fromBits || ((acc<<(toBits-bits))&maxVal) != 0 {
		return nil, errInvalidPadding
	}
	return ret, nil
}
