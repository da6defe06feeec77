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

// Package plutusdata implements Plutus Data: the recursive sum type
// Plutus scripts consume on-chain, and its binding to CBOR — which is
// not vanilla CBOR. Constructor indices map to specific tag ranges,
// oversized integers and byte strings chunk at a 64-byte boundary
// independent of the generic cbor package's own length thresholds, and
// canonical emission is deterministic.
package plutusdata

import (
	"math/big"

	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

const module = "plutusdata"

const chunkSize = 64

// Kind discriminates the Data variants.
type Kind uint8

const (
	KindConstr Kind = iota
	KindMap
	KindList
	KindInteger
	KindBytes
)

// Pair is one entry of a Data Map; key uniqueness is not enforced at
// construction, only ordered at canonical encode time.
type Pair struct {
	Key   Data
	Value Data
}

// Data is the Plutus Data recursive sum type.
type Data struct {
	Kind Kind

	ConstrIndex uint64
	Fields      []Data // KindConstr, KindList

	Pairs []Pair // KindMap

	Integer *big.Int // KindInteger

	Bytes []byte // KindBytes
}

func Constr(index uint64, fields []Data) Data {
	return Data{Kind: KindConstr, ConstrIndex: index, Fields: fields}
}

func MapOf(pairs []Pair) Data {
	return Data{Kind: KindMap, Pairs: pairs}
}

func ListOf(items []Data) Data {
	return Data{Kind: KindList, Fields: items}
}

func IntegerOf(n *big.Int) Data {
	return Data{Kind: KindInteger, Integer: new(big.Int).Set(n)}
}

func Int64(n int64) Data {
	return IntegerOf(big.NewInt(n))
}

func BytesOf(b []byte) Data {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Data{Kind: KindBytes, Bytes: cp}
}

// Equal reports recursive structural equality.
func Equal(a, b Data) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindConstr:
		if a.ConstrIndex != b.ConstrIndex || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !Equal(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case KindList:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !Equal(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if !Equal(a.Pairs[i].Key, b.Pairs[i].Key) || !Equal(a.Pairs[i].Value, b.Pairs[i].Value) {
				return false
			}
		}
		return true
	case KindInteger:
		return a.Integer.Cmp(b.Integer) == 0
	case KindBytes:
		if len(a.Bytes) != len(b.Bytes) {
			return false
		}
		for i := range a.Bytes {
			if a.Bytes[i] != b.Bytes[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToCbor encodes d per the Plutus Data binding rules: constructor tags
// derived from the index, list/map definiteness governed by opts.Mode
// independent of the generic array/map thresholds, and integer/byte
// chunking at the 64-byte boundary.
func ToCbor(d Data, opts cbor.Options) (cbor.Value, error) {
	switch d.Kind {
	case KindConstr:
		return encodeConstr(d, opts)
	case KindList:
		return encodeList(d.Fields, opts)
	case KindMap:
		return encodeMap(d.Pairs, opts)
	case KindInteger:
		return encodeInteger(d.Integer), nil
	case KindBytes:
		return cbor.BytesChunked(d.Bytes, chunkSize), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown data kind")
	}
}

func encodeConstr(d Data, opts cbor.Options) (cbor.Value, error) {
	fieldsValue, err := encodeList(d.Fields, opts)
	if err != nil {
		return cbor.Value{}, err
	}
	switch {
	case d.ConstrIndex <= 6:
		return cbor.TagValue(121+d.ConstrIndex, fieldsValue), nil
	case d.ConstrIndex <= 127:
		return cbor.TagValue(1280+(d.ConstrIndex-7), fieldsValue), nil
	default:
		wrapped := cbor.ArrayForced([]cbor.Value{cbor.Uint(d.ConstrIndex), fieldsValue}, false)
		return cbor.TagValue(102, wrapped), nil
	}
}

func encodeList(items []Data, opts cbor.Options) (cbor.Value, error) {
	encoded := make([]cbor.Value, len(items))
	for i, item := range items {
		v, err := ToCbor(item, opts)
		if err != nil {
			return cbor.Value{}, err
		}
		encoded[i] = v
	}
	if opts.Mode == cbor.Canonical {
		return cbor.ArrayForced(encoded, false), nil
	}
	return cbor.ArrayForced(encoded, len(items) > 0), nil
}

func encodeMap(pairs []Pair, opts cbor.Options) (cbor.Value, error) {
	encoded := make([]cbor.Pair, len(pairs))
	for i, p := range pairs {
		k, err := ToCbor(p.Key, opts)
		if err != nil {
			return cbor.Value{}, err
		}
		v, err := ToCbor(p.Value, opts)
		if err != nil {
			return cbor.Value{}, err
		}
		encoded[i] = cbor.Pair{Key: k, Value: v}
	}
	if opts.Mode == cbor.Canonical {
		return cbor.MapForced(encoded, false), nil
	}
	return cbor.MapForced(encoded, true), nil
}

var maxUint64Big = new(big.Int).SetUint64(^uint64(0))

// encodeInteger emits a plain CBOR integer when n fits in 64 bits,
// otherwise tag 2/3 wrapping the magnitude, itself chunked at 64 bytes
// when it exceeds that length — independent of the generic cbor
// package's bigint encoding, which never chunks the magnitude.
func encodeInteger(n *big.Int) cbor.Value {
	if n.Sign() >= 0 && n.Cmp(maxUint64Big) <= 0 {
		return cbor.Uint(n.Uint64())
	}
	if n.Sign() < 0 {
		m := new(big.Int).Neg(n)
		m.Sub(m, big.NewInt(1))
		if m.Cmp(maxUint64Big) <= 0 {
			return cbor.NegInt(m.Uint64())
		}
		return cbor.TagValue(3, cbor.BytesChunked(m.Bytes(), chunkSize))
	}
	return cbor.TagValue(2, cbor.BytesChunked(n.Bytes(), chunkSize))
}

// FromCbor decodes v per the same binding rules ToCbor follows. It
// accepts both canonical and non-canonical (indefinite-length) shapes
// and produces the same Data value either way.
func FromCbor(v cbor.Value) (Data, error) {
	switch v.Kind {
	case cbor.KindTag:
		return decodeConstr(v)
	case cbor.KindArray:
		items, err := decodeDataSlice(v.Array)
		if err != nil {
			return Data{}, err
		}
		return ListOf(items), nil
	case cbor.KindMap:
		pairs := make([]Pair, len(v.MapPairs))
		for i, p := range v.MapPairs {
			k, err := FromCbor(p.Key)
			if err != nil {
				return Data{}, err
			}
			val, err := FromCbor(p.Value)
			if err != nil {
				return Data{}, err
			}
			pairs[i] = Pair{Key: k, Value: val}
		}
		return MapOf(pairs), nil
	case cbor.KindUint:
		return IntegerOf(new(big.Int).SetUint64(v.Uint)), nil
	case cbor.KindNegInt:
		n := new(big.Int).SetUint64(v.Uint)
		n.Neg(n)
		n.Sub(n, big.NewInt(1))
		return IntegerOf(n), nil
	case cbor.KindBigInt:
		return IntegerOf(v.BigInt), nil
	case cbor.KindBytes, cbor.KindBytesChunked:
		return BytesOf(v.Bytes), nil
	default:
		return Data{}, ledgererr.New(ledgererr.StructuralMismatch, module, "cbor value has no Data representation")
	}
}

// MustFromCbor decodes v or panics. Intended for call sites that have
// already validated the input (tests, trusted internal callers), not for
// decoding untrusted wire data.
func MustFromCbor(v cbor.Value) Data {
	d, err := FromCbor(v)
	if err != nil {
		panic(err)
	}
	return d
}

func decodeDataSlice(values []cbor.Value) ([]Data, error) {
	out := make([]Data, len(values))
	for i, v := range values {
		d, err := FromCbor(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func decodeConstr(v cbor.Value) (Data, error) {
	tag := v.Tag
	switch {
	case tag >= 121 && tag <= 127:
		fields, err := decodeFieldsArray(*v.Inner)
		if err != nil {
			return Data{}, err
		}
		return Constr(tag-121, fields), nil
	case tag >= 1280 && tag <= 1400:
		fields, err := decodeFieldsArray(*v.Inner)
		if err != nil {
			return Data{}, err
		}
		return Constr(tag-1280+7, fields), nil
	case tag == 102:
		inner := *v.Inner
		if inner.Kind != cbor.KindArray || len(inner.Array) != 2 {
			return Data{}, ledgererr.New(ledgererr.CborTagMismatch, module, "tag 102 must wrap a 2-element [index, fields] array")
		}
		idxValue := inner.Array[0]
		if idxValue.Kind != cbor.KindUint {
			return Data{}, ledgererr.New(ledgererr.StructuralMismatch, module, "constr index must be a non-negative integer")
		}
		fields, err := decodeFieldsArray(inner.Array[1])
		if err != nil {
			return Data{}, err
		}
		return Constr(idxValue.Uint, fields), nil
	default:
		return Data{}, ledgererr.Newf(ledgererr.CborTagMismatch, module, "tag %d is not a valid constructor tag", tag)
	}
}

func decodeFieldsArray(v cbor.Value) ([]Data, error) {
	if v.Kind != cbor.KindArray {
		return nil, ledgererr.New(ledgererr.StructuralMismatch, module, "constructor fields must be a CBOR array")
	}
	return decodeDataSlice(v.Array)
}

// ToHex encodes d and hex-encodes the result.
func ToHex(d Data, opts cbor.Options) (string, error) {
	v, err := ToCbor(d, opts)
	if err != nil {
		return "", err
	}
	return cbor.EncodeHex(v, opts)
}

// FromHex hex-decodes s and parses a Data value from it.
func FromHex(s string, opts cbor.Options) (Data, error) {
	v, err := cbor.DecodeHex(s, opts)
	if err != nil {
		return Data{}, err
	}
	return FromCbor(v)
}
