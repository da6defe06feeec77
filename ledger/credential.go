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

// CredentialKind discriminates the two Credential alternatives.
type CredentialKind uint8

const (
	CredentialKeyHash CredentialKind = iota
	CredentialScriptHash
)

// Credential is `[0, key_hash] | [1, script_hash]`.
type Credential struct {
	Kind   CredentialKind
	Key    KeyHash
	Script ScriptHash
}

func NewKeyCredential(h KeyHash) Credential {
	return Credential{Kind: CredentialKeyHash, Key: h}
}

func NewScriptCredential(h ScriptHash) Credential {
	return Credential{Kind: CredentialScriptHash, Script: h}
}

// Equal reports tag-equality plus byte equality of the wrapped hash.
func (c Credential) Equal(o Credential) bool {
	if c.Kind != o.Kind {
		return false
	}
	if c.Kind == CredentialKeyHash {
		return c.Key.Equal(o.Key)
	}
	return c.Script.Equal(o.Script)
}

func (c Credential) ToCbor() (cbor.Value, error) {
	switch c.Kind {
	case CredentialKeyHash:
		return schema.SumEncode(0, []cbor.Value{c.Key.ToCbor()}), nil
	case CredentialScriptHash:
		return schema.SumEncode(1, []cbor.Value{c.Script.ToCbor()}), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown credential kind")
	}
}

func CredentialFromCbor(v cbor.Value) (Credential, error) {
	return schema.SumDecode(v, []schema.SumCase[Credential]{
		{
			Tag: 0,
			DecodeFields: func(fields []cbor.Value) (Credential, error) {
				if len(fields) != 1 {
					return Credential{}, ledgererr.New(ledgererr.StructuralMismatch, module, "key credential expects one field")
				}
				h, err := KeyHashFromCbor(fields[0])
				if err != nil {
					return Credential{}, err
				}
				return NewKeyCredential(h), nil
			},
		},
		{
			Tag: 1,
			DecodeFields: func(fields []cbor.Value) (Credential, error) {
				if len(fields) != 1 {
					return Credential{}, ledgererr.New(ledgererr.StructuralMismatch, module, "script credential expects one field")
				}
				h, err := ScriptHashFromCbor(fields[0])
				if err != nil {
					return Credential{}, err
				}
				return NewScriptCredential(h), nil
			},
		},
	})
}
