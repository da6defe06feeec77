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
	"bytes"
	"testing"

	"github.com/blinklabs-io/cardano-ledger/address"
)

func TestTransactionInputRoundTrip(t *testing.T) {
	txID, _ := NewBlockHeaderHash(bytes.Repeat([]byte{1}, 32))
	in := NewTransactionInput(txID, 2)
	v, err := in.ToCbor()
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	back, err := TransactionInputFromCbor(v)
	if err != nil {
		t.Fatalf("TransactionInputFromCbor: %v", err)
	}
	if back.Index != 2 || !back.TransactionId.Equal(txID) {
		t.Fatalf("round trip changed value: %+v", back)
	}
}

func TestTransactionOutputRoundTrip(t *testing.T) {
	addr, err := address.NewEnterpriseAddress(address.Mainnet, bytes.Repeat([]byte{2}, 28), false)
	if err != nil {
		t.Fatalf("NewEnterpriseAddress: %v", err)
	}
	addrVal, err := addr.ToCbor()
	if err != nil {
		t.Fatalf("address.ToCbor: %v", err)
	}
	out := NewTransactionOutput(addrVal, OnlyCoin(Coin(5_000_000)))
	v, err := out.ToCbor()
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	back, err := TransactionOutputFromCbor(v)
	if err != nil {
		t.Fatalf("TransactionOutputFromCbor: %v", err)
	}
	if back.Value.Coin != Coin(5_000_000) {
		t.Fatalf("round trip changed value: %+v", back)
	}
}

func TestTransactionBodyRoundTripWithOptionalHashes(t *testing.T) {
	txID, _ := NewBlockHeaderHash(bytes.Repeat([]byte{3}, 32))
	addr, _ := address.NewEnterpriseAddress(address.Mainnet, bytes.Repeat([]byte{4}, 28), false)
	addrVal, _ := addr.ToCbor()
	scriptDataHash := mustScriptDataHash(t, 5)
	auxHash, _ := NewAuxiliaryDataHash(bytes.Repeat([]byte{6}, 32))
	ttl := uint64(1000)

	body := NewTransactionBody(
		[]TransactionInput{NewTransactionInput(txID, 0)},
		[]TransactionOutput{NewTransactionOutput(addrVal, OnlyCoin(Coin(1)))},
		Coin(200000),
		&ttl,
		&scriptDataHash,
		&auxHash,
	)

	v, err := body.ToCbor()
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	back, err := TransactionBodyFromCbor(v)
	if err != nil {
		t.Fatalf("TransactionBodyFromCbor: %v", err)
	}
	if len(back.Inputs) != 1 || len(back.Outputs) != 1 || back.Fee != Coin(200000) {
		t.Fatalf("round trip changed core fields: %+v", back)
	}
	if back.Ttl == nil || *back.Ttl != ttl {
		t.Fatalf("expected ttl to survive round trip, got %+v", back.Ttl)
	}
	if back.ScriptDataHash == nil || !back.ScriptDataHash.Equal(scriptDataHash) {
		t.Fatalf("expected script data hash to survive round trip, got %+v", back.ScriptDataHash)
	}
	if back.AuxiliaryDataHash == nil || !back.AuxiliaryDataHash.Equal(auxHash) {
		t.Fatalf("expected auxiliary data hash to survive round trip, got %+v", back.AuxiliaryDataHash)
	}
}

func TestTransactionBodyMissingRequiredFieldRejected(t *testing.T) {
	txID, _ := NewBlockHeaderHash(bytes.Repeat([]byte{7}, 32))
	body := NewTransactionBody([]TransactionInput{NewTransactionInput(txID, 0)}, nil, Coin(0), nil, nil, nil)
	v, err := body.ToCbor()
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	// Outputs were nil (zero-length, still emitted as key 1): keep only
	// the inputs pair, dropping the outputs and fee pairs, to simulate
	// genuinely missing required fields.
	trimmed := v
	trimmed.MapPairs = trimmed.MapPairs[:1]
	if _, err := TransactionBodyFromCbor(trimmed); err == nil {
		t.Fatal("expected error: outputs and fee fields missing")
	}
}
