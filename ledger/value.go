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

// Value is a Coin optionally paired with a MultiAsset of native tokens.
// A Value with no assets encodes as a bare coin integer; one with assets
// encodes as the two-element [coin, multiAsset] array.
type Value struct {
	Coin   Coin
	Assets MultiAsset
}

func OnlyCoin(c Coin) Value { return Value{Coin: c} }

func WithAssets(c Coin, assets MultiAsset) Value { return Value{Coin: c, Assets: assets} }

func (v Value) HasAssets() bool { return !v.Assets.IsEmpty() }

// Add is pointwise: coins add, and multi-assets merge (matching entries
// summed, zero results and emptied policies dropped).
func Add(a, b Value) (Value, error) {
	coin, err := a.Coin.Add(b.Coin)
	if err != nil {
		return Value{}, err
	}
	assets, err := Merge(a.Assets, b.Assets)
	if err != nil {
		return Value{}, err
	}
	return Value{Coin: coin, Assets: assets}, nil
}

// SubtractValue computes a - b, failing if the coin subtraction
// underflows or b carries an asset a does not hold.
func SubtractValue(a, b Value) (Value, error) {
	coin, err := a.Coin.Subtract(b.Coin)
	if err != nil {
		return Value{}, err
	}
	assets, err := Subtract(a.Assets, b.Assets)
	if err != nil {
		return Value{}, err
	}
	return Value{Coin: coin, Assets: assets}, nil
}

func (v Value) ToCbor() (cbor.Value, error) {
	if !v.HasAssets() {
		return v.Coin.ToCbor(), nil
	}
	assetsVal, err := v.Assets.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	return schema.TupleEncode(v.Coin.ToCbor(), assetsVal), nil
}

func ValueFromCbor(v cbor.Value) (Value, error) {
	switch v.Kind {
	case cbor.KindUint:
		coin, err := CoinFromCbor(v)
		if err != nil {
			return Value{}, err
		}
		return OnlyCoin(coin), nil
	case cbor.KindArray:
		if len(v.Array) != 2 {
			return Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "value array must have exactly two elements")
		}
		coin, err := CoinFromCbor(v.Array[0])
		if err != nil {
			return Value{}, err
		}
		assets, err := MultiAssetFromCbor(v.Array[1])
		if err != nil {
			return Value{}, err
		}
		return WithAssets(coin, assets), nil
	default:
		return Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "value must be a coin integer or [coin, multiAsset] array")
	}
}
