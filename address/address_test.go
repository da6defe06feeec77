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

package address

import (
	"bytes"
	"testing"
)

func hash28(seed byte) []byte {
	b := make([]byte, 28)
	for i := range b {
		b[i] = seed
	}
	return b
}

func TestBaseAddressBytesRoundTrip(t *testing.T) {
	a, err := NewBaseAddress(Mainnet, hash28(1), hash28(2), false, false)
	if err != nil {
		t.Fatalf("NewBaseAddress: %v", err)
	}
	raw, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if raw[0]>>4 != byte(KindBaseKeyKey) {
		t.Errorf("expected header kind bits 0000, got %#x", raw[0])
	}
	got, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.Kind != a.Kind || got.Network != a.Network ||
		!bytes.Equal(got.PaymentCredential, a.PaymentCredential) ||
		!bytes.Equal(got.StakeCredential, a.StakeCredential) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestBaseAddressScriptCombinations(t *testing.T) {
	cases := []struct {
		paymentScript, stakeScript bool
		want                       Kind
	}{
		{false, false, KindBaseKeyKey},
		{true, false, KindBaseScriptKey},
		{false, true, KindBaseKeyScript},
		{true, true, KindBaseScriptScript},
	}
	for _, c := range cases {
		a, err := NewBaseAddress(Testnet, hash28(1), hash28(2), c.paymentScript, c.stakeScript)
		if err != nil {
			t.Fatalf("NewBaseAddress: %v", err)
		}
		if a.Kind != c.want {
			t.Errorf("paymentScript=%v stakeScript=%v: got kind %v, want %v", c.paymentScript, c.stakeScript, a.Kind, c.want)
		}
	}
}

func TestEnterpriseAddressRoundTrip(t *testing.T) {
	a, err := NewEnterpriseAddress(Mainnet, hash28(7), true)
	if err != nil {
		t.Fatalf("NewEnterpriseAddress: %v", err)
	}
	raw, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.Kind != KindEnterpriseScript || !bytes.Equal(got.PaymentCredential, hash28(7)) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestRewardAddressRoundTrip(t *testing.T) {
	a, err := NewRewardAddress(Testnet, hash28(9), false)
	if err != nil {
		t.Fatalf("NewRewardAddress: %v", err)
	}
	raw, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.Kind != KindRewardKey || !bytes.Equal(got.StakeCredential, hash28(9)) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestPointerAddressRoundTrip(t *testing.T) {
	ptr := Pointer{Slot: 123456789, TxIndex: 7, CertIndex: 2}
	a, err := NewPointerAddress(Mainnet, hash28(3), false, ptr)
	if err != nil {
		t.Fatalf("NewPointerAddress: %v", err)
	}
	raw, err := a.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	got, err := FromBytes(raw)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if got.Pointer != ptr {
		t.Errorf("pointer round trip mismatch: got %+v, want %+v", got.Pointer, ptr)
	}
}

func TestPointerAddressRejectsZeroField(t *testing.T) {
	_, err := NewPointerAddress(Mainnet, hash28(3), false, Pointer{Slot: 0, TxIndex: 1, CertIndex: 1})
	if err == nil {
		t.Fatal("expected error for zero-valued pointer field")
	}
}

func TestVarIntRoundTripLargeValue(t *testing.T) {
	var buf []byte
	buf = putVarInt(buf, 999999999999)
	v, n, err := readVarInt(buf, 0)
	if err != nil {
		t.Fatalf("readVarInt: %v", err)
	}
	if n != len(buf) || v != 999999999999 {
		t.Errorf("got (%d, %d), want (999999999999, %d)", v, n, len(buf))
	}
}

func TestVarIntUnterminatedSequenceRejected(t *testing.T) {
	_, _, err := readVarInt([]byte{0x80, 0x80}, 0)
	if err == nil {
		t.Fatal("expected error for unterminated variable-length integer")
	}
}

func TestVarIntZeroValueRejected(t *testing.T) {
	_, _, err := readVarInt([]byte{0x00}, 0)
	if err == nil {
		t.Fatal("expected error for zero-valued pointer field")
	}
}

func TestByronAddressBase58RoundTrip(t *testing.T) {
	a := NewByronAddress([]byte{1, 2, 3, 4, 5})
	s, err := a.Base58()
	if err != nil {
		t.Fatalf("Base58: %v", err)
	}
	got, err := FromBase58(s)
	if err != nil {
		t.Fatalf("FromBase58: %v", err)
	}
	if got.Kind != KindByron || !bytes.Equal(got.ByronPayload, a.ByronPayload) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestByronAddressHasNoBech32Form(t *testing.T) {
	a := NewByronAddress([]byte{1, 2, 3})
	_, err := a.Bech32()
	if err == nil {
		t.Fatal("expected error encoding Byron address as bech32")
	}
}

func TestBech32RoundTripMainnetBase(t *testing.T) {
	a, err := NewBaseAddress(Mainnet, hash28(1), hash28(2), false, false)
	if err != nil {
		t.Fatalf("NewBaseAddress: %v", err)
	}
	s, err := a.Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}
	if s[:5] != "addr1" {
		t.Errorf("expected mainnet addr HRP, got %q", s)
	}
	got, err := FromBech32(s)
	if err != nil {
		t.Fatalf("FromBech32: %v", err)
	}
	if !bytes.Equal(got.PaymentCredential, a.PaymentCredential) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestBech32RoundTripTestnetReward(t *testing.T) {
	a, err := NewRewardAddress(Testnet, hash28(5), false)
	if err != nil {
		t.Fatalf("NewRewardAddress: %v", err)
	}
	s, err := a.Bech32()
	if err != nil {
		t.Fatalf("Bech32: %v", err)
	}
	if s[:11] != "stake_test1" {
		t.Errorf("expected stake_test HRP, got %q", s)
	}
	got, err := FromBech32(s)
	if err != nil {
		t.Fatalf("FromBech32: %v", err)
	}
	if !bytes.Equal(got.StakeCredential, a.StakeCredential) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestHexRoundTrip(t *testing.T) {
	a, err := NewEnterpriseAddress(Mainnet, hash28(4), false)
	if err != nil {
		t.Fatalf("NewEnterpriseAddress: %v", err)
	}
	s, err := a.Hex()
	if err != nil {
		t.Fatalf("Hex: %v", err)
	}
	got, err := FromHex(s)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !bytes.Equal(got.PaymentCredential, a.PaymentCredential) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestFromBytesShortInputRejected(t *testing.T) {
	_, err := FromBytes([]byte{})
	if err == nil {
		t.Fatal("expected error for empty address bytes")
	}
}

func TestFromBytesUnknownKindRejected(t *testing.T) {
	_, err := FromBytes([]byte{0x90, 0x00})
	if err == nil {
		t.Fatal("expected error for reserved kind nibble")
	}
}
