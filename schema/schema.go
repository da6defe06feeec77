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

// Package schema provides the small set of generic combinators entity
// codecs in the ledger package compose by hand: compose, tuple, sum and
// option. There is no reflection-driven dispatch here — each ledger
// entity still writes its own ToCbor/FromCbor pair by hand, built out of
// these combinators.
package schema

import (
	"fmt"

	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

const module = "schema"

// Schema is a bidirectional transform between T and cbor.Value. Both the
// fallible surface (Decode/Encode) and the throwing surface (MustDecode/
// MustEncode) are generated from the same pair of functions.
type Schema[T any] struct {
	Decode func(cbor.Value) (T, error)
	Encode func(T) (cbor.Value, error)
}

// MustDecode panics if Decode fails. Intended for call sites that have
// already validated the input (tests, trusted internal callers).
func (s Schema[T]) MustDecode(v cbor.Value) T {
	t, err := s.Decode(v)
	if err != nil {
		panic(err)
	}
	return t
}

// MustEncode panics if Encode fails.
func (s Schema[T]) MustEncode(t T) cbor.Value {
	v, err := s.Encode(t)
	if err != nil {
		panic(err)
	}
	return v
}

// Compose chains a Schema[A] with a pair of pure conversions to build a
// Schema[B] over a richer type — e.g. wrapping a raw fixed-length-bytes
// schema into a branded hash type (ledger's hashSchema).
func Compose[A, B any](s Schema[A], forward func(A) (B, error), backward func(B) A) Schema[B] {
	return Schema[B]{
		Decode: func(v cbor.Value) (B, error) {
			a, err := s.Decode(v)
			if err != nil {
				var zero B
				return zero, err
			}
			return forward(a)
		},
		Encode: func(b B) (cbor.Value, error) {
			return s.Encode(backward(b))
		},
	}
}

// TupleDecode validates that v is an array (definite or indefinite) of
// exactly n items and
// returns its elements. Per-field typed decoding is the caller's job;
// this only establishes tuple shape.
func TupleDecode(v cbor.Value, n int) ([]cbor.Value, error) {
	if v.Kind != cbor.KindArray {
		return nil, ledgererr.New(ledgererr.StructuralMismatch, module, "expected array for tuple")
	}
	if len(v.Array) != n {
		return nil, ledgererr.Newf(
			ledgererr.StructuralMismatch,
			module,
			"expected tuple of %d fields, got %d",
			n,
			len(v.Array),
		)
	}
	return v.Array, nil
}

// TupleEncode packs pre-encoded fields into a fixed-shape CBOR array.
func TupleEncode(fields ...cbor.Value) cbor.Value {
	return cbor.Array(fields)
}

// SumCase is one alternative of a Sum schema: a constructor tag plus a
// decode/encode pair over the fields following the tag in the array.
type SumCase[T any] struct {
	Tag          uint64
	DecodeFields func(fields []cbor.Value) (T, error)
	EncodeFields func(T) []cbor.Value
}

// SumDecode dispatches on the small-integer discriminator in v's first
// array element to the matching case's field decoder.
func SumDecode[T any](v cbor.Value, cases []SumCase[T]) (T, error) {
	var zero T
	if v.Kind != cbor.KindArray || len(v.Array) == 0 {
		return zero, ledgererr.New(ledgererr.StructuralMismatch, module, "expected non-empty array for sum")
	}
	head := v.Array[0]
	if head.Kind != cbor.KindUint {
		return zero, ledgererr.New(ledgererr.StructuralMismatch, module, "sum discriminator must be a small uint")
	}
	for _, c := range cases {
		if c.Tag == head.Uint {
			return c.DecodeFields(v.Array[1:])
		}
	}
	return zero, ledgererr.Newf(ledgererr.UnknownDiscriminator, module, "unknown sum discriminator %d", head.Uint)
}

// SumEncode builds the `[tag, ...fields]` array for one sum alternative.
func SumEncode(tag uint64, fields []cbor.Value) cbor.Value {
	items := make([]cbor.Value, 0, len(fields)+1)
	items = append(items, cbor.Uint(tag))
	items = append(items, fields...)
	return cbor.Array(items)
}

// OptionDecode maps CBOR null to a nil *T, and any other value through
// decode into a non-nil *T.
func OptionDecode[T any](v cbor.Value, decode func(cbor.Value) (T, error)) (*T, error) {
	if v.Kind == cbor.KindNull {
		return nil, nil
	}
	t, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("option: %w", err)
	}
	return &t, nil
}

// OptionEncode maps a nil *T to CBOR null, and a non-nil *T through encode.
func OptionEncode[T any](t *T, encode func(T) (cbor.Value, error)) (cbor.Value, error) {
	if t == nil {
		return cbor.Null(), nil
	}
	return encode(*t)
}
