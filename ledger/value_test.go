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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/cardano-ledger/cbor"
)

func TestOnlyCoinEncodesAsBareInteger(t *testing.T) {
	v := OnlyCoin(Coin(5))
	encoded, err := v.ToCbor()
	require.NoError(t, err)
	require.Equal(t, cbor.KindUint, encoded.Kind)

	back, err := ValueFromCbor(encoded)
	require.NoError(t, err)
	require.False(t, back.HasAssets())
	require.Equal(t, Coin(5), back.Coin)
}

func TestWithAssetsEncodesAsPair(t *testing.T) {
	p := mustPolicy(t, 10)
	name := mustAssetName(t, "tok")
	ma, err := NewMultiAsset(map[PolicyId]map[AssetName]PositiveCoin{p: {name: mustPositive(t, 1)}})
	require.NoError(t, err)
	v := WithAssets(Coin(3), ma)

	encoded, err := v.ToCbor()
	require.NoError(t, err)
	require.Equal(t, cbor.KindArray, encoded.Kind)
	require.Len(t, encoded.Array, 2)

	back, err := ValueFromCbor(encoded)
	require.NoError(t, err)
	require.True(t, back.HasAssets())
	require.Equal(t, Coin(3), back.Coin)
}

func TestValueAddSubtractRoundTrip(t *testing.T) {
	p := mustPolicy(t, 11)
	name := mustAssetName(t, "u")
	ma, err := NewMultiAsset(map[PolicyId]map[AssetName]PositiveCoin{p: {name: mustPositive(t, 2)}})
	require.NoError(t, err)
	a := WithAssets(Coin(10), ma)
	b := OnlyCoin(Coin(4))

	sum, err := Add(a, b)
	require.NoError(t, err)
	require.Equal(t, Coin(14), sum.Coin)

	back, err := SubtractValue(sum, b)
	require.NoError(t, err)
	require.Equal(t, a.Coin, back.Coin, "subtract(add(a,b),b) must equal a")
}

func TestSubtractValueFailsOnMissingAsset(t *testing.T) {
	p := mustPolicy(t, 12)
	name := mustAssetName(t, "v")
	ma, err := NewMultiAsset(map[PolicyId]map[AssetName]PositiveCoin{p: {name: mustPositive(t, 1)}})
	require.NoError(t, err)
	a := OnlyCoin(Coin(100))
	b := WithAssets(Coin(1), ma)

	_, err = SubtractValue(a, b)
	require.Error(t, err, "b carries an asset a does not have")
}
