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
)

func TestPubKeyScriptRoundTrip(t *testing.T) {
	h, _ := NewKeyHash(bytes.Repeat([]byte{1}, 28))
	s := NewPubKeyScript(h)
	v, err := s.ToCbor()
	if err != nil {
		t.Fatalf("ToCbor: %v", err)
	}
	back, err := NativeScriptFromCbor(v)
	if err != nil {
		t.Fatalf("NativeScriptFromCbor: %v", err)
	}
	if back.Kind != NativeScriptPubKey || !back.KeyHash.Equal(h) {
		t.Fatalf("round trip changed value: %+v", back)
	}
}

func TestAllAnyAtLeastScriptRoundTrip(t *testing.T) {
	h1, _ := NewKeyHash(bytes.Repeat([]byte{2}, 28))
	h2, _ := NewKeyHash(bytes.Repeat([]byte{3}, 28))
	inner := []NativeScript{NewPubKeyScript(h1), NewPubKeyScript(h2)}

	for _, s := range []NativeScript{
		NewAllScript(inner),
		NewAnyScript(inner),
		NewAtLeastScript(1, inner),
	} {
		v, err := s.ToCbor()
		if err != nil {
			t.Fatalf("ToCbor: %v", err)
		}
		back, err := NativeScriptFromCbor(v)
		if err != nil {
			t.Fatalf("NativeScriptFromCbor: %v", err)
		}
		if back.Kind != s.Kind || len(back.Scripts) != 2 {
			t.Fatalf("round trip changed value: %+v", back)
		}
	}
}

func TestBeforeAfterScriptRoundTrip(t *testing.T) {
	before := NewBeforeScript(1000)
	v, _ := before.ToCbor()
	back, err := NativeScriptFromCbor(v)
	if err != nil {
		t.Fatalf("NativeScriptFromCbor: %v", err)
	}
	if back.Kind != NativeScriptBefore || back.Slot != 1000 {
		t.Fatalf("round trip changed value: %+v", back)
	}

	after := NewAfterScript(2000)
	v, _ = after.ToCbor()
	back, err = NativeScriptFromCbor(v)
	if err != nil {
		t.Fatalf("NativeScriptFromCbor: %v", err)
	}
	if back.Kind != NativeScriptAfter || back.Slot != 2000 {
		t.Fatalf("round trip changed value: %+v", back)
	}
}

func TestScriptOuterSumRoundTrip(t *testing.T) {
	h, _ := NewKeyHash(bytes.Repeat([]byte{4}, 28))
	native := NewNativeScriptWrapper(NewPubKeyScript(h))
	v1 := NewPlutusV1Script([]byte{0xde, 0xad})
	v3 := NewPlutusV3Script([]byte{0xbe, 0xef})

	for _, s := range []Script{native, v1, v3} {
		v, err := s.ToCbor()
		if err != nil {
			t.Fatalf("ToCbor: %v", err)
		}
		back, err := ScriptFromCbor(v)
		if err != nil {
			t.Fatalf("ScriptFromCbor: %v", err)
		}
		if back.Kind != s.Kind {
			t.Fatalf("expected kind %v, got %v", s.Kind, back.Kind)
		}
	}
}
