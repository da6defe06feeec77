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

package schema

import (
	"testing"

	"github.com/blinklabs-io/cardano-ledger/cbor"
)

type label struct{ s string }

var uintSchema = Schema[uint64]{
	Decode: func(v cbor.Value) (uint64, error) {
		if v.Kind != cbor.KindUint {
			return 0, errNotUint
		}
		return v.Uint, nil
	},
	Encode: func(n uint64) (cbor.Value, error) {
		return cbor.Uint(n), nil
	},
}

var errNotUint = &testErr{"not a uint"}

type testErr struct{ msg string }

func (e *testErr) Error() string { return e.msg }

func TestComposeWrapsUnderlyingSchema(t *testing.T) {
	labelSchema := Compose(uintSchema,
		func(n uint64) (label, error) { return label{s: "n"}, nil },
		func(l label) uint64 { return 7 },
	)
	v, err := labelSchema.Encode(label{s: "n"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if v.Uint != 7 {
		t.Errorf("got %+v, want Uint(7)", v)
	}
	l, err := labelSchema.Decode(cbor.Uint(42))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if l.s != "n" {
		t.Errorf("got %+v", l)
	}
}

func TestTupleRoundTrip(t *testing.T) {
	v := TupleEncode(cbor.Uint(1), cbor.Text("x"))
	fields, err := TupleDecode(v, 2)
	if err != nil {
		t.Fatalf("TupleDecode: %v", err)
	}
	if fields[0].Uint != 1 || fields[1].Text != "x" {
		t.Errorf("unexpected fields: %+v", fields)
	}
}

func TestTupleDecodeRejectsWrongArity(t *testing.T) {
	v := TupleEncode(cbor.Uint(1))
	_, err := TupleDecode(v, 2)
	if err == nil {
		t.Fatal("expected arity mismatch error")
	}
}

type shape struct {
	kind string
	n    uint64
}

func TestSumRoundTrip(t *testing.T) {
	cases := []SumCase[shape]{
		{
			Tag: 0,
			DecodeFields: func(fields []cbor.Value) (shape, error) {
				return shape{kind: "zero"}, nil
			},
			EncodeFields: func(s shape) []cbor.Value { return nil },
		},
		{
			Tag: 1,
			DecodeFields: func(fields []cbor.Value) (shape, error) {
				if len(fields) != 1 {
					return shape{}, errNotUint
				}
				return shape{kind: "n", n: fields[0].Uint}, nil
			},
			EncodeFields: func(s shape) []cbor.Value { return []cbor.Value{cbor.Uint(s.n)} },
		},
	}

	v := SumEncode(1, cases[1].EncodeFields(shape{kind: "n", n: 9}))
	got, err := SumDecode(v, cases)
	if err != nil {
		t.Fatalf("SumDecode: %v", err)
	}
	if got.kind != "n" || got.n != 9 {
		t.Errorf("got %+v", got)
	}
}

func TestSumDecodeUnknownDiscriminator(t *testing.T) {
	cases := []SumCase[shape]{
		{Tag: 0, DecodeFields: func(fields []cbor.Value) (shape, error) { return shape{}, nil }},
	}
	v := cbor.Array([]cbor.Value{cbor.Uint(99)})
	_, err := SumDecode(v, cases)
	if err == nil {
		t.Fatal("expected unknown discriminator error")
	}
}

func TestOptionRoundTrip(t *testing.T) {
	encode := func(n uint64) (cbor.Value, error) { return cbor.Uint(n), nil }
	decode := func(v cbor.Value) (uint64, error) { return v.Uint, nil }

	n := uint64(5)
	v, err := OptionEncode(&n, encode)
	if err != nil {
		t.Fatalf("OptionEncode: %v", err)
	}
	got, err := OptionDecode(v, decode)
	if err != nil {
		t.Fatalf("OptionDecode: %v", err)
	}
	if got == nil || *got != 5 {
		t.Errorf("got %+v", got)
	}

	nilV, err := OptionEncode[uint64](nil, encode)
	if err != nil {
		t.Fatalf("OptionEncode(nil): %v", err)
	}
	if nilV.Kind != cbor.KindNull {
		t.Errorf("expected null, got %+v", nilV)
	}
	nilGot, err := OptionDecode(nilV, decode)
	if err != nil {
		t.Fatalf("OptionDecode(null): %v", err)
	}
	if nilGot != nil {
		t.Errorf("expected nil, got %+v", nilGot)
	}
}

func TestMustDecodeEncodeRoundTrip(t *testing.T) {
	v := uintSchema.MustEncode(3)
	if uintSchema.MustDecode(v) != 3 {
		t.Errorf("MustDecode/MustEncode round trip failed")
	}
}
