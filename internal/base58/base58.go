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

// Package base58 implements the Bitcoin/Byron alphabet used for legacy
// Byron-era Cardano address display, the way gouroboros's Address.String()
// falls back to base58 for Byron addresses instead of bech32.
package base58

import "math/big"

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var alphabetRev = func() map[byte]int64 {
	m := make(map[byte]int64, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = int64(i)
	}
	return m
}()

// Encode returns the base58 representation of data, preserving leading
// zero bytes as leading '1' characters.
func Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}
	num := new(big.Int).SetBytes(data)
	base := big.NewInt(58)
	mod := new(big.Int)
	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, base, mod)
		out = append(out, alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	// reverse
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode parses a base58 string back into bytes, the inverse of Encode.
func Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}
	num := new(big.Int)
	base := big.NewInt(58)
	for i := 0; i < len(s); i++ {
		v, ok := alphabetRev[s[i]]
		if !ok {
			return nil, errInvalidChar
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(v))
	}
	decoded := num.Bytes()
	out := make([]byte, zeros+len(decoded))
	copy(out[zeros:], decoded)
	return out, nil
}
