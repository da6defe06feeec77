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

// DRepKind discriminates the four DRep alternatives.
type DRepKind uint8

const (
	DRepKeyHash DRepKind = iota
	DRepScriptHash
	DRepAlwaysAbstain
	DRepAlwaysNoConfidence
)

// DRep is `[0,key_hash] | [1,script_hash] | [2] | [3]`: a delegated
// representative, or one of the two always-vote sentinels.
type DRep struct {
	Kind   DRepKind
	Key    KeyHash
	Script ScriptHash
}

func NewKeyDRep(h KeyHash) DRep       { return DRep{Kind: DRepKeyHash, Key: h} }
func NewScriptDRep(h ScriptHash) DRep { return DRep{Kind: DRepScriptHash, Script: h} }
func AlwaysAbstain() DRep             { return DRep{Kind: DRepAlwaysAbstain} }
func AlwaysNoConfidence() DRep        { return DRep{Kind: DRepAlwaysNoConfidence} }

func (d DRep) ToCbor() (cbor.Value, error) {
	switch d.Kind {
	case DRepKeyHash:
		return schema.SumEncode(0, []cbor.Value{d.Key.ToCbor()}), nil
	case DRepScriptHash:
		return schema.SumEncode(1, []cbor.Value{d.Script.ToCbor()}), nil
	case DRepAlwaysAbstain:
		return schema.SumEncode(2, nil), nil
	case DRepAlwaysNoConfidence:
		return schema.SumEncode(3, nil), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown drep kind")
	}
}

func DRepFromCbor(v cbor.Value) (DRep, error) {
	return schema.SumDecode(v, []schema.SumCase[DRep]{
		{Tag: 0, DecodeFields: func(f []cbor.Value) (DRep, error) {
			if len(f) != 1 {
				return DRep{}, ledgererr.New(ledgererr.StructuralMismatch, module, "key drep expects one field")
			}
			h, err := KeyHashFromCbor(f[0])
			if err != nil {
				return DRep{}, err
			}
			return NewKeyDRep(h), nil
		}},
		{Tag: 1, DecodeFields: func(f []cbor.Value) (DRep, error) {
			if len(f) != 1 {
				return DRep{}, ledgererr.New(ledgererr.StructuralMismatch, module, "script drep expects one field")
			}
			h, err := ScriptHashFromCbor(f[0])
			if err != nil {
				return DRep{}, err
			}
			return NewScriptDRep(h), nil
		}},
		{Tag: 2, DecodeFields: func(f []cbor.Value) (DRep, error) {
			if len(f) != 0 {
				return DRep{}, ledgererr.New(ledgererr.StructuralMismatch, module, "always-abstain drep expects no fields")
			}
			return AlwaysAbstain(), nil
		}},
		{Tag: 3, DecodeFields: func(f []cbor.Value) (DRep, error) {
			if len(f) != 0 {
				return DRep{}, ledgererr.New(ledgererr.StructuralMismatch, module, "always-no-confidence drep expects no fields")
			}
			return AlwaysNoConfidence(), nil
		}},
	})
}
