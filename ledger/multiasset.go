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
	"sort"

	"github.com/blinklabs-io/cardano-ledger/bytestring"
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

// PolicyId is the 28-byte minting policy hash that keys the outer
// MultiAsset map.
type PolicyId struct{ hashBrand }

func NewPolicyId(b []byte) (PolicyId, error) {
	h, err := newHashBrand(b, 28)
	return PolicyId{h}, err
}
func (p PolicyId) ToCbor() cbor.Value { return p.toCbor() }
func (p PolicyId) Equal(o PolicyId) bool { return p.hashBrand.equal(o.hashBrand) }
func PolicyIdFromCbor(v cbor.Value) (PolicyId, error) {
	h, err := hashBrandFromCbor(v, 28)
	return PolicyId{h}, err
}

// AssetName is a variable-length (0..32 byte) name within a policy.
type AssetName struct {
	data bytestring.Variable
}

func NewAssetName(b []byte) (AssetName, error) {
	v, err := bytestring.NewVariable(b, 0, 32)
	return AssetName{data: v}, err
}
func (a AssetName) Bytes() []byte       { return a.data.Bytes() }
func (a AssetName) Equal(o AssetName) bool { return a.data.Equal(o.data) }
func (a AssetName) ToCbor() cbor.Value  { return cbor.Bytes(a.data.Bytes()) }
func AssetNameFromCbor(v cbor.Value) (AssetName, error) {
	if v.Kind != cbor.KindBytes && v.Kind != cbor.KindBytesChunked {
		return AssetName{}, ledgererr.New(ledgererr.StructuralMismatch, module, "asset name must be a byte string")
	}
	return NewAssetName(v.Bytes)
}

type assetEntry struct {
	name   AssetName
	amount PositiveCoin
}

type policyEntry struct {
	policy PolicyId
	assets []assetEntry
}

// MultiAsset maps PolicyId -> AssetName -> PositiveCoin. Empty inner maps
// are forbidden by construction and by every operation (merge/add/subtract
// strip zero-amount assets and then empty policies).
type MultiAsset struct {
	policies []policyEntry
}

// NewMultiAsset builds a MultiAsset from policy -> asset -> amount triples,
// rejecting any policy whose asset map is empty.
func NewMultiAsset(entries map[PolicyId]map[AssetName]PositiveCoin) (MultiAsset, error) {
	var ma MultiAsset
	for policy, assets := range entries {
		if len(assets) == 0 {
			return MultiAsset{}, ledgererr.New(ledgererr.StructuralMismatch, module, "multi-asset policy entry must not be empty")
		}
		pe := policyEntry{policy: policy}
		for name, amt := range assets {
			pe.assets = append(pe.assets, assetEntry{name: name, amount: amt})
		}
		ma.policies = append(ma.policies, pe)
	}
	return ma, nil
}

func (m MultiAsset) IsEmpty() bool { return len(m.policies) == 0 }

func (m MultiAsset) findPolicy(p PolicyId) int {
	for i, pe := range m.policies {
		if pe.policy.Equal(p) {
			return i
		}
	}
	return -1
}

func findAsset(assets []assetEntry, name AssetName) int {
	for i, a := range assets {
		if a.name.Equal(name) {
			return i
		}
	}
	return -1
}

// Merge adds matching asset amounts, removing any asset whose amount
// becomes zero and any policy left with no assets.
func Merge(a, b MultiAsset) (MultiAsset, error) {
	raw := map[string]map[string]int64{}
	order := map[string]PolicyId{}
	nameOrder := map[string]map[string]AssetName{}

	add := func(src MultiAsset, sign int64) error {
		for _, pe := range src.policies {
			pkey := string(pe.policy.Bytes())
			order[pkey] = pe.policy
			if raw[pkey] == nil {
				raw[pkey] = map[string]int64{}
				nameOrder[pkey] = map[string]AssetName{}
			}
			for _, ae := range pe.assets {
				akey := string(ae.name.Bytes())
				nameOrder[pkey][akey] = ae.name
				raw[pkey][akey] += sign * int64(ae.amount.Coin())
			}
		}
		return nil
	}
	if err := add(a, 1); err != nil {
		return MultiAsset{}, err
	}
	if err := add(b, 1); err != nil {
		return MultiAsset{}, err
	}

	return buildFromSigned(raw, order, nameOrder)
}

// Subtract computes a - b, failing if b has any asset entry a is missing
// (regardless of resulting sign), since that would require representing
// a negative holding that does not exist in a.
func Subtract(a, b MultiAsset) (MultiAsset, error) {
	raw := map[string]map[string]int64{}
	order := map[string]PolicyId{}
	nameOrder := map[string]map[string]AssetName{}

	for _, pe := range a.policies {
		pkey := string(pe.policy.Bytes())
		order[pkey] = pe.policy
		raw[pkey] = map[string]int64{}
		nameOrder[pkey] = map[string]AssetName{}
		for _, ae := range pe.assets {
			akey := string(ae.name.Bytes())
			nameOrder[pkey][akey] = ae.name
			raw[pkey][akey] = int64(ae.amount.Coin())
		}
	}

	for _, pe := range b.policies {
		pkey := string(pe.policy.Bytes())
		policyAssets, ok := raw[pkey]
		if !ok {
			return MultiAsset{}, ledgererr.New(ledgererr.StructuralMismatch, module, "subtract: policy missing from minuend")
		}
		for _, ae := range pe.assets {
			akey := string(ae.name.Bytes())
			if _, ok := policyAssets[akey]; !ok {
				return MultiAsset{}, ledgererr.New(ledgererr.StructuralMismatch, module, "subtract: asset missing from minuend")
			}
			policyAssets[akey] -= int64(ae.amount.Coin())
		}
	}

	return buildFromSigned(raw, order, nameOrder)
}

func buildFromSigned(raw map[string]map[string]int64, order map[string]PolicyId, nameOrder map[string]map[string]AssetName) (MultiAsset, error) {
	var ma MultiAsset
	policyKeys := make([]string, 0, len(raw))
	for k := range raw {
		policyKeys = append(policyKeys, k)
	}
	sort.Strings(policyKeys)

	for _, pkey := range policyKeys {
		assetKeys := make([]string, 0, len(raw[pkey]))
		for k := range raw[pkey] {
			assetKeys = append(assetKeys, k)
		}
		sort.Strings(assetKeys)

		var assets []assetEntry
		for _, akey := range assetKeys {
			n := raw[pkey][akey]
			if n < 0 {
				return MultiAsset{}, ledgererr.New(ledgererr.NumericOutOfRange, module, "asset amount went negative")
			}
			if n == 0 {
				continue
			}
			pc, err := NewPositiveCoin(Coin(uint64(n)))
			if err != nil {
				return MultiAsset{}, err
			}
			assets = append(assets, assetEntry{name: nameOrder[pkey][akey], amount: pc})
		}
		if len(assets) == 0 {
			continue
		}
		ma.policies = append(ma.policies, policyEntry{policy: order[pkey], assets: assets})
	}
	return ma, nil
}

func (m MultiAsset) ToCbor() (cbor.Value, error) {
	pairs := make([]cbor.Pair, len(m.policies))
	for i, pe := range m.policies {
		innerPairs := make([]cbor.Pair, len(pe.assets))
		for j, ae := range pe.assets {
			innerPairs[j] = cbor.Pair{Key: ae.name.ToCbor(), Value: ae.amount.Coin().ToCbor()}
		}
		pairs[i] = cbor.Pair{Key: pe.policy.ToCbor(), Value: cbor.Map(innerPairs)}
	}
	return cbor.Map(pairs), nil
}

func MultiAssetFromCbor(v cbor.Value) (MultiAsset, error) {
	if v.Kind != cbor.KindMap {
		return MultiAsset{}, ledgererr.New(ledgererr.StructuralMismatch, module, "multi-asset must be a CBOR map")
	}
	var ma MultiAsset
	for _, p := range v.MapPairs {
		policy, err := PolicyIdFromCbor(p.Key)
		if err != nil {
			return MultiAsset{}, err
		}
		if p.Value.Kind != cbor.KindMap || len(p.Value.MapPairs) == 0 {
			return MultiAsset{}, ledgererr.New(ledgererr.StructuralMismatch, module, "multi-asset policy entry must be a non-empty map")
		}
		var assets []assetEntry
		for _, ap := range p.Value.MapPairs {
			name, err := AssetNameFromCbor(ap.Key)
			if err != nil {
				return MultiAsset{}, err
			}
			coin, err := CoinFromCbor(ap.Value)
			if err != nil {
				return MultiAsset{}, err
			}
			pc, err := NewPositiveCoin(coin)
			if err != nil {
				return MultiAsset{}, err
			}
			assets = append(assets, assetEntry{name: name, amount: pc})
		}
		ma.policies = append(ma.policies, policyEntry{policy: policy, assets: assets})
	}
	return ma, nil
}
