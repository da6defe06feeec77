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
	"strings"
	"testing"
)

func TestAssetFingerprintHasAssetHrp(t *testing.T) {
	policy, err := NewPolicyId(bytes.Repeat([]byte{0xaa}, 28))
	if err != nil {
		t.Fatalf("NewPolicyId: %v", err)
	}
	name, err := NewAssetName([]byte("mytoken"))
	if err != nil {
		t.Fatalf("NewAssetName: %v", err)
	}
	fp, err := NewAssetFingerprint(policy, name)
	if err != nil {
		t.Fatalf("NewAssetFingerprint: %v", err)
	}
	if !strings.HasPrefix(fp.String(), "asset1") {
		t.Fatalf("expected asset1 prefix, got %q", fp.String())
	}
}

func TestAssetFingerprintIsDeterministic(t *testing.T) {
	policy, _ := NewPolicyId(bytes.Repeat([]byte{0xbb}, 28))
	name, _ := NewAssetName([]byte("tok"))
	a, err := NewAssetFingerprint(policy, name)
	if err != nil {
		t.Fatalf("NewAssetFingerprint: %v", err)
	}
	b, err := NewAssetFingerprint(policy, name)
	if err != nil {
		t.Fatalf("NewAssetFingerprint: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("expected deterministic fingerprint, got %q vs %q", a.String(), b.String())
	}
}

func TestAssetFingerprintDiffersByName(t *testing.T) {
	policy, _ := NewPolicyId(bytes.Repeat([]byte{0xcc}, 28))
	nameA, _ := NewAssetName([]byte("a"))
	nameB, _ := NewAssetName([]byte("b"))
	fpA, _ := NewAssetFingerprint(policy, nameA)
	fpB, _ := NewAssetFingerprint(policy, nameB)
	if fpA.String() == fpB.String() {
		t.Fatal("expected distinct fingerprints for distinct asset names")
	}
}
