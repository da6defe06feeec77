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

// TransactionInput is `[tx_hash, index]`, a UTxO reference.
type TransactionInput struct {
	TransactionId BlockHeaderHash
	Index         uint64
}

func NewTransactionInput(txID BlockHeaderHash, index uint64) TransactionInput {
	return TransactionInput{TransactionId: txID, Index: index}
}

func (i TransactionInput) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(i.TransactionId.ToCbor(), cbor.Uint(i.Index)), nil
}

func TransactionInputFromCbor(v cbor.Value) (TransactionInput, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return TransactionInput{}, err
	}
	txID, err := BlockHeaderHashFromCbor(fields[0])
	if err != nil {
		return TransactionInput{}, err
	}
	if fields[1].Kind != cbor.KindUint {
		return TransactionInput{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction input index must be a uint")
	}
	return NewTransactionInput(txID, fields[1].Uint), nil
}

// TransactionOutput is `[address, value]`, the post-Alonzo two-field
// shape (datum/script-ref extensions belong to a fuller output schema
// outside this catalogue's scope).
type TransactionOutput struct {
	Address cbor.Value // pre-encoded via address.Address.ToCbor
	Value   Value
}

func NewTransactionOutput(addr cbor.Value, value Value) TransactionOutput {
	return TransactionOutput{Address: addr, Value: value}
}

func (o TransactionOutput) ToCbor() (cbor.Value, error) {
	valueVal, err := o.Value.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	return schema.TupleEncode(o.Address, valueVal), nil
}

func TransactionOutputFromCbor(v cbor.Value) (TransactionOutput, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return TransactionOutput{}, err
	}
	value, err := ValueFromCbor(fields[1])
	if err != nil {
		return TransactionOutput{}, err
	}
	return NewTransactionOutput(fields[0], value), nil
}

// TransactionBody is the core signable transaction content: inputs,
// outputs, fee, and the Conway-era optional hashes ScriptDataHash and
// AuxiliaryDataHash.
type TransactionBody struct {
	Inputs            []TransactionInput
	Outputs           []TransactionOutput
	Fee               Coin
	Ttl               *uint64
	ScriptDataHash    *ScriptDataHash
	AuxiliaryDataHash *AuxiliaryDataHash
}

func NewTransactionBody(
	inputs []TransactionInput,
	outputs []TransactionOutput,
	fee Coin,
	ttl *uint64,
	scriptDataHash *ScriptDataHash,
	auxDataHash *AuxiliaryDataHash,
) TransactionBody {
	return TransactionBody{
		Inputs: inputs, Outputs: outputs, Fee: fee, Ttl: ttl,
		ScriptDataHash: scriptDataHash, AuxiliaryDataHash: auxDataHash,
	}
}

// mapKey helpers: the transaction body CBOR shape is a map keyed by
// small integers (0=inputs, 1=outputs, 2=fee, 3=ttl,
// 7=auxiliaryDataHash, 11=scriptDataHash), matching the real Conway CDDL
// field numbering rather than a positional tuple.
const (
	tbKeyInputs            = 0
	tbKeyOutputs           = 1
	tbKeyFee               = 2
	tbKeyTtl               = 3
	tbKeyScriptDataHash    = 11
	tbKeyAuxiliaryDataHash = 7
)

func (b TransactionBody) ToCbor() (cbor.Value, error) {
	pairs := []cbor.Pair{}

	inputVals := make([]cbor.Value, len(b.Inputs))
	for i, in := range b.Inputs {
		v, err := in.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		inputVals[i] = v
	}
	pairs = append(pairs, cbor.Pair{Key: cbor.Uint(tbKeyInputs), Value: cbor.Array(inputVals)})

	outputVals := make([]cbor.Value, len(b.Outputs))
	for i, out := range b.Outputs {
		v, err := out.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		outputVals[i] = v
	}
	pairs = append(pairs, cbor.Pair{Key: cbor.Uint(tbKeyOutputs), Value: cbor.Array(outputVals)})

	pairs = append(pairs, cbor.Pair{Key: cbor.Uint(tbKeyFee), Value: b.Fee.ToCbor()})

	if b.Ttl != nil {
		pairs = append(pairs, cbor.Pair{Key: cbor.Uint(tbKeyTtl), Value: cbor.Uint(*b.Ttl)})
	}
	if b.ScriptDataHash != nil {
		pairs = append(pairs, cbor.Pair{Key: cbor.Uint(tbKeyScriptDataHash), Value: b.ScriptDataHash.ToCbor()})
	}
	if b.AuxiliaryDataHash != nil {
		pairs = append(pairs, cbor.Pair{Key: cbor.Uint(tbKeyAuxiliaryDataHash), Value: b.AuxiliaryDataHash.ToCbor()})
	}

	return cbor.Map(pairs), nil
}

func TransactionBodyFromCbor(v cbor.Value) (TransactionBody, error) {
	if v.Kind != cbor.KindMap {
		return TransactionBody{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction body must be a CBOR map")
	}
	body := TransactionBody{}
	sawInputs, sawOutputs, sawFee := false, false, false

	for _, p := range v.MapPairs {
		if p.Key.Kind != cbor.KindUint {
			return TransactionBody{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction body keys must be small uints")
		}
		switch p.Key.Uint {
		case tbKeyInputs:
			if p.Value.Kind != cbor.KindArray {
				return TransactionBody{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction body inputs must be an array")
			}
			inputs := make([]TransactionInput, len(p.Value.Array))
			for i, item := range p.Value.Array {
				in, err := TransactionInputFromCbor(item)
				if err != nil {
					return TransactionBody{}, err
				}
				inputs[i] = in
			}
			body.Inputs = inputs
			sawInputs = true
		case tbKeyOutputs:
			if p.Value.Kind != cbor.KindArray {
				return TransactionBody{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction body outputs must be an array")
			}
			outputs := make([]TransactionOutput, len(p.Value.Array))
			for i, item := range p.Value.Array {
				out, err := TransactionOutputFromCbor(item)
				if err != nil {
					return TransactionBody{}, err
				}
				outputs[i] = out
			}
			body.Outputs = outputs
			sawOutputs = true
		case tbKeyFee:
			fee, err := CoinFromCbor(p.Value)
			if err != nil {
				return TransactionBody{}, err
			}
			body.Fee = fee
			sawFee = true
		case tbKeyTtl:
			if p.Value.Kind != cbor.KindUint {
				return TransactionBody{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction body ttl must be a uint")
			}
			ttl := p.Value.Uint
			body.Ttl = &ttl
		case tbKeyScriptDataHash:
			h, err := ScriptDataHashFromCbor(p.Value)
			if err != nil {
				return TransactionBody{}, err
			}
			body.ScriptDataHash = &h
		case tbKeyAuxiliaryDataHash:
			h, err := AuxiliaryDataHashFromCbor(p.Value)
			if err != nil {
				return TransactionBody{}, err
			}
			body.AuxiliaryDataHash = &h
		}
	}

	if !sawInputs || !sawOutputs || !sawFee {
		return TransactionBody{}, ledgererr.New(ledgererr.StructuralMismatch, module, "transaction body missing required field (inputs, outputs or fee)")
	}
	return body, nil
}

// transactionBodySchema gives TransactionBody the same dual throwing/
// fallible surface every Schema[T] carries: Decode/Encode wrap
// TransactionBodyFromCbor/ToCbor directly, MustDecode/MustEncode panic.
var transactionBodySchema = schema.Schema[TransactionBody]{
	Decode: TransactionBodyFromCbor,
	Encode: TransactionBody.ToCbor,
}

// MustTransactionBodyFromCbor decodes v into a TransactionBody or panics.
// Intended for call sites that have already validated the input (tests,
// trusted internal callers), not for decoding untrusted wire data.
func MustTransactionBodyFromCbor(v cbor.Value) TransactionBody {
	return transactionBodySchema.MustDecode(v)
}

// MustToCbor encodes b or panics.
func (b TransactionBody) MustToCbor() cbor.Value {
	return transactionBodySchema.MustEncode(b)
}
