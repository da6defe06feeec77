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

import "testing"

func TestCoinAddWithinRange(t *testing.T) {
	sum, err := Coin(0).Add(Coin(^uint64(0)))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum != Coin(^uint64(0)) {
		t.Fatalf("unexpected sum: %d", sum)
	}
}

func TestCoinAddOverflowFails(t *testing.T) {
	if _, err := Coin(1).Add(Coin(^uint64(0))); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestCoinSubtractUnderflowFails(t *testing.T) {
	if _, err := Coin(1).Subtract(Coin(2)); err == nil {
		t.Fatal("expected underflow error")
	}
}

func TestCoinCborRoundTrip(t *testing.T) {
	c := Coin(42)
	back, err := CoinFromCbor(c.ToCbor())
	if err != nil {
		t.Fatalf("CoinFromCbor: %v", err)
	}
	if back != c {
		t.Fatalf("round trip changed value: got %d want %d", back, c)
	}
}

func TestNewPositiveCoinRejectsZero(t *testing.T) {
	if _, err := NewPositiveCoin(Coin(0)); err == nil {
		t.Fatal("expected error for zero positive coin")
	}
}

func TestPositiveCoinAdd(t *testing.T) {
	a, _ := NewPositiveCoin(Coin(3))
	b, _ := NewPositiveCoin(Coin(4))
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sum.Coin() != Coin(7) {
		t.Fatalf("unexpected sum: %d", sum.Coin())
	}
}
