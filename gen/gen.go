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

// Package gen provides small seeded arbitrary-value generators for the
// round-trip property tests across cbor, plutusdata, address and ledger.
// Every generator takes a *rand.Rand so callers control reproducibility
// explicitly — there is no package-level seed, matching the rest of this
// module's no-global-state design.
package gen

import (
	"math/big"
	"math/rand"

	"github.com/blinklabs-io/cardano-ledger/address"
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledger"
	"github.com/blinklabs-io/cardano-ledger/plutusdata"
)

// Bytes returns n pseudo-random bytes.
func Bytes(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	r.Read(b)
	return b
}

// SmallUint returns a uint64 in [0, max).
func SmallUint(r *rand.Rand, max uint64) uint64 {
	if max == 0 {
		return 0
	}
	return uint64(r.Int63n(int64(max)))
}

// CborValue generates an arbitrary cbor.Value of bounded depth and
// width: unsigned and negative integers, byte strings, ASCII text,
// arrays, maps, tags other than the bignum tags 2 and 3, booleans, null
// and 64-bit floats. BigInt, chunked bytes, undefined and 16/32-bit
// floats are not generated.
func CborValue(r *rand.Rand, maxDepth int) cbor.Value {
	if maxDepth <= 0 {
		return cbor.Uint(SmallUint(r, 1<<20))
	}
	switch r.Intn(10) {
	case 0:
		return cbor.Uint(SmallUint(r, 1<<32))
	case 1:
		return cbor.NegInt(SmallUint(r, 1<<32))
	case 2:
		return cbor.Bytes(Bytes(r, r.Intn(40)))
	case 3:
		b := Bytes(r, r.Intn(20))
		for i := range b {
			b[i] = 'a' + b[i]%26
		}
		return cbor.Text(string(b))
	case 4:
		n := r.Intn(4)
		items := make([]cbor.Value, n)
		for i := range items {
			items[i] = CborValue(r, maxDepth-1)
		}
		return cbor.Array(items)
	case 5:
		n := r.Intn(3)
		pairs := make([]cbor.Pair, n)
		for i := range pairs {
			pairs[i] = cbor.Pair{Key: cbor.Uint(uint64(i)), Value: CborValue(r, maxDepth-1)}
		}
		return cbor.Map(pairs)
	case 6:
		return cbor.TagValue(uint64(4+r.Intn(196)), CborValue(r, maxDepth-1))
	case 7:
		return cbor.Bool(r.Intn(2) == 0)
	case 8:
		return cbor.Null()
	default:
		return cbor.Float64(r.Float64())
	}
}

// PlutusData generates an arbitrary plutusdata.Data of bounded depth.
func PlutusData(r *rand.Rand, maxDepth int) plutusdata.Data {
	if maxDepth <= 0 {
		return plutusdata.Int64(r.Int63())
	}
	switch r.Intn(5) {
	case 0:
		n := r.Intn(3)
		fields := make([]plutusdata.Data, n)
		for i := range fields {
			fields[i] = PlutusData(r, maxDepth-1)
		}
		return plutusdata.Constr(SmallUint(r, 200), fields)
	case 1:
		n := r.Intn(3)
		pairs := make([]plutusdata.Pair, n)
		for i := range pairs {
			pairs[i] = plutusdata.Pair{Key: PlutusData(r, maxDepth-1), Value: PlutusData(r, maxDepth-1)}
		}
		return plutusdata.MapOf(pairs)
	case 2:
		n := r.Intn(3)
		items := make([]plutusdata.Data, n)
		for i := range items {
			items[i] = PlutusData(r, maxDepth-1)
		}
		return plutusdata.ListOf(items)
	case 3:
		magnitude := new(big.Int).SetInt64(r.Int63())
		if r.Intn(2) == 0 {
			magnitude.Neg(magnitude)
		}
		return plutusdata.IntegerOf(magnitude)
	default:
		return plutusdata.BytesOf(Bytes(r, r.Intn(100)))
	}
}

// Address generates a random valid address across all kinds this
// library supports (Base, Enterprise, Reward, Pointer, Byron).
func Address(r *rand.Rand) address.Address {
	network := address.Testnet
	if r.Intn(2) == 0 {
		network = address.Mainnet
	}
	payment := Bytes(r, 28)
	stake := Bytes(r, 28)

	switch r.Intn(5) {
	case 0:
		a, _ := address.NewBaseAddress(network, payment, stake, r.Intn(2) == 0, r.Intn(2) == 0)
		return a
	case 1:
		a, _ := address.NewEnterpriseAddress(network, payment, r.Intn(2) == 0)
		return a
	case 2:
		a, _ := address.NewRewardAddress(network, stake, r.Intn(2) == 0)
		return a
	case 3:
		ptr := address.Pointer{
			Slot:      1 + SmallUint(r, 1<<20),
			TxIndex:   1 + SmallUint(r, 1<<10),
			CertIndex: 1 + SmallUint(r, 1<<10),
		}
		a, _ := address.NewPointerAddress(network, payment, r.Intn(2) == 0, ptr)
		return a
	default:
		return address.NewByronAddress(Bytes(r, 1+r.Intn(40)))
	}
}

// Coin generates a random Coin value in [0, 2^63) (kept below the full
// 64-bit range so two generated Coins can always be added without
// overflow in additive property tests).
func Coin(r *rand.Rand) ledger.Coin {
	return ledger.Coin(r.Uint64() >> 1)
}

// KeyHash generates a random 28-byte KeyHash.
func KeyHash(r *rand.Rand) ledger.KeyHash {
	h, _ := ledger.NewKeyHash(Bytes(r, 28))
	return h
}

// ScriptHash generates a random 28-byte ScriptHash.
func ScriptHash(r *rand.Rand) ledger.ScriptHash {
	h, _ := ledger.NewScriptHash(Bytes(r, 28))
	return h
}

// Credential generates a random key- or script-backed Credential.
func Credential(r *rand.Rand) ledger.Credential {
	if r.Intn(2) == 0 {
		return ledger.NewKeyCredential(KeyHash(r))
	}
	return ledger.NewScriptCredential(ScriptHash(r))
}
