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

package ledger

import (
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
	"github.com/blinklabs-io/cardano-ledger/schema"
)

// NonceKind discriminates the two Nonce alternatives.
type NonceKind uint8

const (
	NonceNeutral NonceKind = iota
	NonceHash
)

// Nonce is `[0] | [1, hash32]`, the epoch-randomness seed carried in the
// protocol parameter update and header bodies.
type Nonce struct {
	Kind NonceKind
	Hash [32]byte
}

func NeutralNonce() Nonce { return Nonce{Kind: NonceNeutral} }

func NewHashNonce(b []byte) (Nonce, error) {
	if len(b) != 32 {
		return Nonce{}, ledgererr.Newf(ledgererr.InvalidLength, module, "nonce hash must be 32 bytes, got %d", len(b))
	}
	var h [32]byte
	copy(h[:], b)
	return Nonce{Kind: NonceHash, Hash: h}, nil
}

func (n Nonce) ToCbor() (cbor.Value, error) {
	switch n.Kind {
	case NonceNeutral:
		return schema.SumEncode(0, nil), nil
	case NonceHash:
		return schema.SumEncode(1, []cbor.Value{cbor.Bytes(n.Hash[:])}), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown nonce kind")
	}
}

func NonceFromCbor(v cbor.Value) (Nonce, error) {
	return schema.SumDecode(v, []schema.SumCase[Nonce]{
		{
			Tag: 0,
			DecodeFields: func(fields []cbor.Value) (Nonce, error) {
				if len(fields) != 0 {
					return Nonce{}, ledgererr.New(ledgererr.StructuralMismatch, module, "neutral nonce expects no fields")
				}
				return NeutralNonce(), nil
			},
		},
		{
			Tag: 1,
			DecodeFields: func(fields []cbor.Value) (Nonce, error) {
				if len(fields) != 1 {
					return Nonce{}, ledgererr.New(ledgererr.StructuralMismatch, module, "hash nonce expects one field")
				}
				if fields[0].Kind != cbor.KindBytes && fields[0].Kind != cbor.KindBytesChunked {
					return Nonce{}, ledgererr.New(ledgererr.StructuralMismatch, module, "nonce hash field must be a byte string")
				}
				return NewHashNonce(fields[0].Bytes)
			},
		},
	})
}
