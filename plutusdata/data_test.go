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

package plutusdata

import (
	"math/big"
	"testing"

	"github.com/blinklabs-io/cardano-ledger/cbor"
)

func TestConstrSmallIndexRoundTrip(t *testing.T) {
	d := Constr(0, []Data{BytesOf([]byte{0xbe, 0xef}), Int64(19)})
	for _, opts := range []cbor.Options{cbor.DefaultOptions(), cbor.ConwayOptions()} {
		v, err := ToCbor(d, opts)
		if err != nil {
			t.Fatalf("ToCbor: %v", err)
		}
		if v.Kind != cbor.KindTag || v.Tag != 121 {
			t.Fatalf("expected tag 121, got %+v", v)
		}
		enc, err := cbor.Encode(v, opts)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		dec, err := cbor.Decode(enc, opts)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		got, err := FromCbor(dec)
		if err != nil {
			t.Fatalf("FromCbor: %v", err)
		}
		if !Equal(d, got) {
			t.Errorf("round trip mismatch for mode %v: got %+v", opts.Mode, got)
		}
	}
}

func TestConstrMidRangeIndexUsesExtendedTag(t *testing.T) {
	d := Constr(7, nil)
	v, err := ToCbor(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	if v.Tag != 1280 {
		t.Errorf("expected tag 1280 for index 7, got %d", v.Tag)
	}
	got, err := FromCbor(v)
	if err != nil {
		t.Fatalf("FromCbor: %v", err)
	}
	if !Equal(d, got) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestConstrLargeIndexUsesTag102(t *testing.T) {
	d := Constr(200, []Data{Int64(1)})
	v, err := ToCbor(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	if v.Tag != 102 {
		t.Errorf("expected tag 102 for index 200, got %d", v.Tag)
	}
	enc, err := cbor.Encode(v, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := cbor.Decode(enc, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, err := FromCbor(dec)
	if err != nil {
		t.Fatalf("FromCbor: %v", err)
	}
	if !Equal(d, got) {
		t.Errorf("round trip mismatch: got %+v", got)
	}
}

func TestListEmptyStaysDefiniteInConwayMode(t *testing.T) {
	d := ListOf(nil)
	v, err := ToCbor(d, cbor.ConwayOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	enc, err := cbor.Encode(v, cbor.ConwayOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc[0] != 0x80 {
		t.Errorf("expected definite empty array 0x80, got %#x", enc[0])
	}
}

func TestListNonEmptyGoesIndefiniteInConwayMode(t *testing.T) {
	d := ListOf([]Data{Int64(1), Int64(2)})
	v, err := ToCbor(d, cbor.ConwayOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	enc, err := cbor.Encode(v, cbor.ConwayOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc[0] != 0x9f {
		t.Errorf("expected indefinite array 0x9f, got %#x", enc[0])
	}
}

func TestMapAlwaysIndefiniteInConwayModeEvenEmpty(t *testing.T) {
	d := MapOf(nil)
	v, err := ToCbor(d, cbor.ConwayOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	enc, err := cbor.Encode(v, cbor.ConwayOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc[0] != 0xbf {
		t.Errorf("expected indefinite empty map 0xbf, got %#x", enc[0])
	}
}

func TestMapCanonicalKeysSorted(t *testing.T) {
	d := MapOf([]Pair{
		{Key: Int64(5), Value: Int64(1)},
		{Key: Int64(1), Value: Int64(2)},
	})
	v, err := ToCbor(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	enc, err := cbor.Encode(v, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := cbor.Decode(enc, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.MapPairs[0].Key.Uint != 1 || dec.MapPairs[1].Key.Uint != 5 {
		t.Errorf("expected sorted keys, got %+v", dec.MapPairs)
	}
}

func TestIntegerFitsIn64BitsEncodesPlain(t *testing.T) {
	d := Int64(19)
	v, err := ToCbor(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	if v.Kind != cbor.KindUint {
		t.Errorf("expected plain uint, got %+v", v)
	}
}

func TestIntegerOversizedMagnitudeChunksAt64Bytes(t *testing.T) {
	mag := make([]byte, 130)
	for i := range mag {
		mag[i] = byte(i + 1)
	}
	n := new(big.Int).SetBytes(mag)
	d := IntegerOf(n)
	v, err := ToCbor(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	if v.Kind != cbor.KindTag || v.Tag != 2 {
		t.Fatalf("expected tag 2 for oversized positive integer, got %+v", v)
	}
	if v.Inner.Kind != cbor.KindBytesChunked {
		t.Fatalf("expected chunked bytes for oversized magnitude, got %+v", v.Inner)
	}
	enc, err := cbor.Encode(v, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := cbor.Decode(enc, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, err := FromCbor(dec)
	if err != nil {
		t.Fatalf("FromCbor: %v", err)
	}
	if !Equal(d, got) {
		t.Errorf("round trip mismatch for oversized integer")
	}
}

func TestIntegerOversizedNegative(t *testing.T) {
	mag := make([]byte, 70)
	for i := range mag {
		mag[i] = byte(i + 1)
	}
	magInt := new(big.Int).SetBytes(mag)
	n := new(big.Int).Neg(magInt)
	n.Sub(n, big.NewInt(1))
	d := IntegerOf(n)
	v, err := ToCbor(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	if v.Tag != 3 {
		t.Fatalf("expected tag 3 for negative oversized integer, got %d", v.Tag)
	}
	enc, err := cbor.Encode(v, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := cbor.Decode(enc, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, err := FromCbor(dec)
	if err != nil {
		t.Fatalf("FromCbor: %v", err)
	}
	if !Equal(d, got) {
		t.Errorf("round trip mismatch for negative oversized integer")
	}
}

func TestBytesChunkAt64ByteBoundary(t *testing.T) {
	small := BytesOf(make([]byte, 64))
	large := BytesOf(make([]byte, 65))

	smallV, err := ToCbor(small, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	smallEnc, err := cbor.Encode(smallV, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if smallEnc[0]>>5 != 2 || smallEnc[0] == 0x5f {
		t.Errorf("expected definite byte string for 64-byte value, got head %#x", smallEnc[0])
	}

	largeV, err := ToCbor(large, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	largeEnc, err := cbor.Encode(largeV, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if largeEnc[0] != 0x5f {
		t.Errorf("expected indefinite byte string for 65-byte value, got head %#x", largeEnc[0])
	}
}

func TestHexRoundTrip(t *testing.T) {
	d := Constr(0, []Data{BytesOf([]byte("hello")), Int64(42)})
	s, err := ToHex(d, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("ToHex: %v", err)
	}
	got, err := FromHex(s, cbor.DefaultOptions())
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !Equal(d, got) {
		t.Errorf("hex round trip mismatch: got %+v", got)
	}
}

func TestUnknownTagRejected(t *testing.T) {
	v := cbor.TagValue(999, cbor.Array(nil))
	_, err := FromCbor(v)
	if err == nil {
		t.Fatal("expected error for unrecognized constructor tag")
	}
}
