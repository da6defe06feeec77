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

// NativeScriptKind discriminates the six native-script alternatives.
type NativeScriptKind uint8

const (
	NativeScriptPubKey NativeScriptKind = iota
	NativeScriptAll
	NativeScriptAny
	NativeScriptAtLeast
	NativeScriptBefore
	NativeScriptAfter
)

// NativeScript is the multisig/timelock script sum: `[0,key_hash]`,
// `[1,[scripts]]`, `[2,[scripts]]`, `[3,m,[scripts]]`, `[4,slot]`,
// `[5,slot]`.
type NativeScript struct {
	Kind     NativeScriptKind
	KeyHash  KeyHash
	Scripts  []NativeScript
	Required uint64 // at-least-m threshold
	Slot     uint64 // before/after slot bound
}

func NewPubKeyScript(h KeyHash) NativeScript {
	return NativeScript{Kind: NativeScriptPubKey, KeyHash: h}
}
func NewAllScript(scripts []NativeScript) NativeScript {
	return NativeScript{Kind: NativeScriptAll, Scripts: scripts}
}
func NewAnyScript(scripts []NativeScript) NativeScript {
	return NativeScript{Kind: NativeScriptAny, Scripts: scripts}
}
func NewAtLeastScript(m uint64, scripts []NativeScript) NativeScript {
	return NativeScript{Kind: NativeScriptAtLeast, Required: m, Scripts: scripts}
}
func NewBeforeScript(slot uint64) NativeScript {
	return NativeScript{Kind: NativeScriptBefore, Slot: slot}
}
func NewAfterScript(slot uint64) NativeScript {
	return NativeScript{Kind: NativeScriptAfter, Slot: slot}
}

func encodeScriptList(scripts []NativeScript) (cbor.Value, error) {
	vals := make([]cbor.Value, len(scripts))
	for i, s := range scripts {
		v, err := s.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		vals[i] = v
	}
	return cbor.Array(vals), nil
}

func (s NativeScript) ToCbor() (cbor.Value, error) {
	switch s.Kind {
	case NativeScriptPubKey:
		return schema.SumEncode(0, []cbor.Value{s.KeyHash.ToCbor()}), nil
	case NativeScriptAll:
		list, err := encodeScriptList(s.Scripts)
		if err != nil {
			return cbor.Value{}, err
		}
		return schema.SumEncode(1, []cbor.Value{list}), nil
	case NativeScriptAny:
		list, err := encodeScriptList(s.Scripts)
		if err != nil {
			return cbor.Value{}, err
		}
		return schema.SumEncode(2, []cbor.Value{list}), nil
	case NativeScriptAtLeast:
		list, err := encodeScriptList(s.Scripts)
		if err != nil {
			return cbor.Value{}, err
		}
		return schema.SumEncode(3, []cbor.Value{cbor.Uint(s.Required), list}), nil
	case NativeScriptBefore:
		return schema.SumEncode(4, []cbor.Value{cbor.Uint(s.Slot)}), nil
	case NativeScriptAfter:
		return schema.SumEncode(5, []cbor.Value{cbor.Uint(s.Slot)}), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown native script kind")
	}
}

func decodeScriptList(v cbor.Value) ([]NativeScript, error) {
	if v.Kind != cbor.KindArray {
		return nil, ledgererr.New(ledgererr.StructuralMismatch, module, "native script list must be an array")
	}
	out := make([]NativeScript, len(v.Array))
	for i, item := range v.Array {
		s, err := NativeScriptFromCbor(item)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func NativeScriptFromCbor(v cbor.Value) (NativeScript, error) {
	return schema.SumDecode(v, []schema.SumCase[NativeScript]{
		{Tag: 0, DecodeFields: func(f []cbor.Value) (NativeScript, error) {
			if len(f) != 1 {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "pubkey script expects one field")
			}
			h, err := KeyHashFromCbor(f[0])
			if err != nil {
				return NativeScript{}, err
			}
			return NewPubKeyScript(h), nil
		}},
		{Tag: 1, DecodeFields: func(f []cbor.Value) (NativeScript, error) {
			if len(f) != 1 {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "all script expects one field")
			}
			scripts, err := decodeScriptList(f[0])
			if err != nil {
				return NativeScript{}, err
			}
			return NewAllScript(scripts), nil
		}},
		{Tag: 2, DecodeFields: func(f []cbor.Value) (NativeScript, error) {
			if len(f) != 1 {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "any script expects one field")
			}
			scripts, err := decodeScriptList(f[0])
			if err != nil {
				return NativeScript{}, err
			}
			return NewAnyScript(scripts), nil
		}},
		{Tag: 3, DecodeFields: func(f []cbor.Value) (NativeScript, error) {
			if len(f) != 2 {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "at-least script expects two fields")
			}
			if f[0].Kind != cbor.KindUint {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "at-least threshold must be a uint")
			}
			scripts, err := decodeScriptList(f[1])
			if err != nil {
				return NativeScript{}, err
			}
			return NewAtLeastScript(f[0].Uint, scripts), nil
		}},
		{Tag: 4, DecodeFields: func(f []cbor.Value) (NativeScript, error) {
			if len(f) != 1 || f[0].Kind != cbor.KindUint {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "before script expects one uint field")
			}
			return NewBeforeScript(f[0].Uint), nil
		}},
		{Tag: 5, DecodeFields: func(f []cbor.Value) (NativeScript, error) {
			if len(f) != 1 || f[0].Kind != cbor.KindUint {
				return NativeScript{}, ledgererr.New(ledgererr.StructuralMismatch, module, "after script expects one uint field")
			}
			return NewAfterScript(f[0].Uint), nil
		}},
	})
}

// ScriptKind discriminates the outer Script sum's four alternatives.
type ScriptKind uint8

const (
	ScriptNative ScriptKind = iota
	ScriptPlutusV1
	ScriptPlutusV2
	ScriptPlutusV3
)

// Script is `[0, native] | [1, v1_bytes] | [2, v2_bytes] | [3, v3_bytes]`.
// Plutus scripts are carried as their raw serialized bytes; this library
// does not evaluate or disassemble them.
type Script struct {
	Kind        ScriptKind
	Native      NativeScript
	PlutusBytes []byte
}

func NewNativeScriptWrapper(s NativeScript) Script {
	return Script{Kind: ScriptNative, Native: s}
}
func NewPlutusV1Script(b []byte) Script { return Script{Kind: ScriptPlutusV1, PlutusBytes: b} }
func NewPlutusV2Script(b []byte) Script { return Script{Kind: ScriptPlutusV2, PlutusBytes: b} }
func NewPlutusV3Script(b []byte) Script { return Script{Kind: ScriptPlutusV3, PlutusBytes: b} }

func (s Script) ToCbor() (cbor.Value, error) {
	switch s.Kind {
	case ScriptNative:
		native, err := s.Native.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		return schema.SumEncode(0, []cbor.Value{native}), nil
	case ScriptPlutusV1:
		return schema.SumEncode(1, []cbor.Value{cbor.Bytes(s.PlutusBytes)}), nil
	case ScriptPlutusV2:
		return schema.SumEncode(2, []cbor.Value{cbor.Bytes(s.PlutusBytes)}), nil
	case ScriptPlutusV3:
		return schema.SumEncode(3, []cbor.Value{cbor.Bytes(s.PlutusBytes)}), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown script kind")
	}
}

func ScriptFromCbor(v cbor.Value) (Script, error) {
	return schema.SumDecode(v, []schema.SumCase[Script]{
		{Tag: 0, DecodeFields: func(f []cbor.Value) (Script, error) {
			if len(f) != 1 {
				return Script{}, ledgererr.New(ledgererr.StructuralMismatch, module, "native script wrapper expects one field")
			}
			native, err := NativeScriptFromCbor(f[0])
			if err != nil {
				return Script{}, err
			}
			return NewNativeScriptWrapper(native), nil
		}},
		{Tag: 1, DecodeFields: func(f []cbor.Value) (Script, error) { return plutusBytesCase(f, NewPlutusV1Script) }},
		{Tag: 2, DecodeFields: func(f []cbor.Value) (Script, error) { return plutusBytesCase(f, NewPlutusV2Script) }},
		{Tag: 3, DecodeFields: func(f []cbor.Value) (Script, error) { return plutusBytesCase(f, NewPlutusV3Script) }},
	})
}

func plutusBytesCase(f []cbor.Value, ctor func([]byte) Script) (Script, error) {
	if len(f) != 1 {
		return Script{}, ledgererr.New(ledgererr.StructuralMismatch, module, "plutus script wrapper expects one field")
	}
	if f[0].Kind != cbor.KindBytes && f[0].Kind != cbor.KindBytesChunked {
		return Script{}, ledgererr.New(ledgererr.StructuralMismatch, module, "plutus script payload must be a byte string")
	}
	return ctor(f[0].Bytes), nil
}
