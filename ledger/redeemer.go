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
	"github.com/blinklabs-io/cardano-ledger/plutusdata"
	"github.com/blinklabs-io/cardano-ledger/schema"
)

// RedeemerTag discriminates what a Redeemer's index points into.
type RedeemerTag uint8

const (
	RedeemerSpend RedeemerTag = iota
	RedeemerMint
	RedeemerCert
	RedeemerReward
)

// ExUnits is `[mem, steps]`, the Plutus execution budget a redeemer was
// evaluated against.
type ExUnits struct {
	Memory uint64
	Steps  uint64
}

func NewExUnits(mem, steps uint64) ExUnits { return ExUnits{Memory: mem, Steps: steps} }

func (e ExUnits) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(cbor.Uint(e.Memory), cbor.Uint(e.Steps)), nil
}

func ExUnitsFromCbor(v cbor.Value) (ExUnits, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return ExUnits{}, err
	}
	if fields[0].Kind != cbor.KindUint || fields[1].Kind != cbor.KindUint {
		return ExUnits{}, ledgererr.New(ledgererr.StructuralMismatch, module, "ex units fields must be uints")
	}
	return NewExUnits(fields[0].Uint, fields[1].Uint), nil
}

// Redeemer is `[tag, index, data, [mem, steps]]`.
type Redeemer struct {
	Tag     RedeemerTag
	Index   uint64
	Data    plutusdata.Data
	ExUnits ExUnits
}

func NewRedeemer(tag RedeemerTag, index uint64, data plutusdata.Data, exUnits ExUnits) Redeemer {
	return Redeemer{Tag: tag, Index: index, Data: data, ExUnits: exUnits}
}

func (r Redeemer) ToCbor(opts cbor.Options) (cbor.Value, error) {
	dataVal, err := plutusdata.ToCbor(r.Data, opts)
	if err != nil {
		return cbor.Value{}, err
	}
	exUnitsVal, err := r.ExUnits.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	if r.Tag > RedeemerReward {
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown redeemer tag")
	}
	return schema.TupleEncode(
		cbor.Uint(uint64(r.Tag)),
		cbor.Uint(r.Index),
		dataVal,
		exUnitsVal,
	), nil
}

func RedeemerFromCbor(v cbor.Value) (Redeemer, error) {
	fields, err := schema.TupleDecode(v, 4)
	if err != nil {
		return Redeemer{}, err
	}
	if fields[0].Kind != cbor.KindUint || fields[0].Uint > uint64(RedeemerReward) {
		return Redeemer{}, ledgererr.New(ledgererr.UnknownDiscriminator, module, "unknown redeemer tag")
	}
	if fields[1].Kind != cbor.KindUint {
		return Redeemer{}, ledgererr.New(ledgererr.StructuralMismatch, module, "redeemer index must be a uint")
	}
	data, err := plutusdata.FromCbor(fields[2])
	if err != nil {
		return Redeemer{}, err
	}
	exUnits, err := ExUnitsFromCbor(fields[3])
	if err != nil {
		return Redeemer{}, err
	}
	return NewRedeemer(RedeemerTag(fields[0].Uint), fields[1].Uint, data, exUnits), nil
}
