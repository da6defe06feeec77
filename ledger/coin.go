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
	"math"

	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

// Coin is a non-negative integer in [0, 2^64-1].
type Coin uint64

// Add fails on overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	if c > math.MaxUint64-o {
		return 0, ledgererr.New(ledgererr.NumericOutOfRange, module, "coin addition overflows uint64")
	}
	return c + o, nil
}

// Subtract fails on underflow.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if o > c {
		return 0, ledgererr.New(ledgererr.NumericOutOfRange, module, "coin subtraction underflows")
	}
	return c - o, nil
}

func (c Coin) ToCbor() cbor.Value { return cbor.Uint(uint64(c)) }

func CoinFromCbor(v cbor.Value) (Coin, error) {
	if v.Kind != cbor.KindUint {
		return 0, ledgererr.New(ledgererr.StructuralMismatch, module, "coin must be a non-negative CBOR integer")
	}
	return Coin(v.Uint), nil
}

// PositiveCoin is a Coin known to be > 0, the quantity type every
// MultiAsset leaf amount uses.
type PositiveCoin struct {
	value Coin
}

func NewPositiveCoin(c Coin) (PositiveCoin, error) {
	if c == 0 {
		return PositiveCoin{}, ledgererr.New(ledgererr.NumericOutOfRange, module, "positive coin must be > 0")
	}
	return PositiveCoin{value: c}, nil
}

func (p PositiveCoin) Coin() Coin { return p.value }

func (p PositiveCoin) Add(o PositiveCoin) (PositiveCoin, error) {
	sum, err := p.value.Add(o.value)
	if err != nil {
		return PositiveCoin{}, err
	}
	return NewPositiveCoin(sum)
}
