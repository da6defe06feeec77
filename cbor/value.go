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

// Package cbor is a self-contained CBOR encoder/decoder for the subset of
// RFC 8949 that Cardano's Conway-era ledger CDDL uses: definite and
// indefinite containers, canonical (deterministic) encoding with sorted
// map keys, tags, big integers and configurable length thresholds. It is
// deliberately independent of any third-party CBOR library.
package cbor

import "math/big"

// Kind discriminates the variants of Value.
type Kind uint8

const (
	KindUint Kind = iota
	KindNegInt
	KindBigInt
	KindBytes
	KindBytesChunked
	KindText
	KindArray
	KindMap
	KindTag
	KindBool
	KindNull
	KindUndefined
	KindFloat
)

// Pair is one entry of a CBOR map value. Order is preserved from input (or
// construction) and only reordered at encode time in canonical mode.
type Pair struct {
	Key   Value
	Value Value
}

// Value is the tagged union this codec encodes and decodes. Exactly one
// field group is meaningful for a given Kind; see the constructor
// functions below for the supported combinations.
type Value struct {
	Kind Kind

	// KindUint: the value itself. KindNegInt: n, where the represented
	// integer is -1-n (CBOR major type 1 semantics).
	Uint uint64

	// KindBigInt: arbitrary-precision integer outside [0, 2^64-1] range
	// representation convenience (may also hold values that fit in 64
	// bits; encoders should prefer KindUint/KindNegInt for those, but
	// decode may still produce a BigInt for tag 2/3 input of any size).
	BigInt *big.Int

	// KindBytes: a single definite-length byte string.
	// KindBytesChunked: Bytes holds the full logical content, chunked
	// into indefinite-length pieces of ChunkSize bytes at encode time
	// (Plutus Data's bytes/bigint chunking rule).
	Bytes     []byte
	ChunkSize int

	Text string

	Array []Value

	MapPairs []Pair

	// LengthMode overrides the Options-driven definite/indefinite choice
	// for KindArray and KindMap: LenAuto defers to Options (generic CBOR
	// values), LenDefinite/LenIndefinite force the choice regardless of
	// threshold (used by the plutusdata package, whose chunking rule is
	// independent of the generic array/map threshold).
	LengthMode LengthMode

	Tag   uint64
	Inner *Value

	Bool bool

	// KindFloat: Bits is 16, 32 or 64 and records the source width for
	// re-encoding fidelity; Float always holds the widened float64 value.
	Float float64
	Bits  int
}

func Uint(n uint64) Value { return Value{Kind: KindUint, Uint: n} }

// NegInt constructs the CBOR major-type-1 value representing -1-n.
func NegInt(n uint64) Value { return Value{Kind: KindNegInt, Uint: n} }

// Int constructs the shortest-fitting signed integer value for n: a
// KindUint for n >= 0, a KindNegInt for n < 0.
func Int(n int64) Value {
	if n >= 0 {
		return Uint(uint64(n))
	}
	return NegInt(uint64(-1 - n))
}

func NewBigInt(n *big.Int) Value {
	return Value{Kind: KindBigInt, BigInt: new(big.Int).Set(n)}
}

func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{Kind: KindBytes, Bytes: cp}
}

// BytesChunked constructs an indefinite-length byte string split into
// chunkSize-byte pieces, per the Plutus Data bytes-chunking rule.
func BytesChunked(b []byte, chunkSize int) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{Kind: KindBytesChunked, Bytes: cp, ChunkSize: chunkSize}
}

func Text(s string) Value { return Value{Kind: KindText, Text: s} }

func Array(items []Value) Value { return Value{Kind: KindArray, Array: items} }

func Map(pairs []Pair) Value { return Value{Kind: KindMap, MapPairs: pairs} }

// LengthMode is documented on Value.LengthMode.
type LengthMode uint8

const (
	LenAuto LengthMode = iota
	LenDefinite
	LenIndefinite
)

// ArrayForced constructs an array whose definite/indefinite encoding is
// fixed regardless of Options thresholds.
func ArrayForced(items []Value, indefinite bool) Value {
	v := Array(items)
	if indefinite {
		v.LengthMode = LenIndefinite
	} else {
		v.LengthMode = LenDefinite
	}
	return v
}

// MapForced constructs a map whose definite/indefinite encoding is fixed
// regardless of Options thresholds. Canonical key sorting still applies
// whenever Options.Mode is Canonical, independent of this override.
func MapForced(pairs []Pair, indefinite bool) Value {
	v := Map(pairs)
	if indefinite {
		v.LengthMode = LenIndefinite
	} else {
		v.LengthMode = LenDefinite
	}
	return v
}

func TagValue(tag uint64, inner Value) Value {
	return Value{Kind: KindTag, Tag: tag, Inner: &inner}
}

func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

func Null() Value { return Value{Kind: KindNull} }

func Undefined() Value { return Value{Kind: KindUndefined} }

func Float64(f float64) Value { return Value{Kind: KindFloat, Float: f, Bits: 64} }

func Float32(f float32) Value { return Value{Kind: KindFloat, Float: float64(f), Bits: 32} }

func Float16(f float64) Value { return Value{Kind: KindFloat, Float: f, Bits: 16} }

// Equal reports deep structural equality between two Values. Map key
// order is significant (encode with canonical mode first if you want an
// order-insensitive comparison of canonical forms).
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindUint, KindNegInt:
		return a.Uint == b.Uint
	case KindBigInt:
		return a.BigInt.Cmp(b.BigInt) == 0
	case KindBytes:
		return bytesEqual(a.Bytes, b.Bytes)
	case KindBytesChunked:
		return bytesEqual(a.Bytes, b.Bytes) && a.ChunkSize == b.ChunkSize
	case KindText:
		return a.Text == b.Text
	case KindArray:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Equal(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.MapPairs) != len(b.MapPairs) {
			return false
		}
		for i := range a.MapPairs {
			if !Equal(a.MapPairs[i].Key, b.MapPairs[i].Key) ||
				!Equal(a.MapPairs[i].Value, b.MapPairs[i].Value) {
				return false
			}
		}
		return true
	case KindTag:
		return a.Tag == b.Tag && Equal(*a.Inner, *b.Inner)
	case KindBool:
		return a.Bool == b.Bool
	case KindNull, KindUndefined:
		return true
	case KindFloat:
		return a.Float == b.Float
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
