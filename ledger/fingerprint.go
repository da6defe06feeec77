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
	"golang.org/x/crypto/blake2b"

	"github.com/blinklabs-io/cardano-ledger/internal/bech32"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
)

// AssetFingerprint is the CIP-14 bech32 identifier for a (policyId,
// assetName) pair: the "asset1..." string minted explorers display
// instead of the raw policy/name bytes.
type AssetFingerprint struct {
	value string
}

func (f AssetFingerprint) String() string { return f.value }

// NewAssetFingerprint computes the CIP-14 fingerprint: blake2b-160 of
// policyId || assetName, bech32-encoded with HRP "asset".
func NewAssetFingerprint(policy PolicyId, name AssetName) (AssetFingerprint, error) {
	h, err := blake2b.New(20, nil)
	if err != nil {
		return AssetFingerprint{}, ledgererr.Wrap(ledgererr.StructuralMismatch, module, "blake2b-160 init failed", err)
	}
	h.Write(policy.Bytes())
	h.Write(name.Bytes())
	digest := h.Sum(nil)

	data, err := bech32.ConvertBits(digest, 8, 5, true)
	if err != nil {
		return AssetFingerprint{}, ledgererr.Wrap(ledgererr.StructuralMismatch, module, "asset fingerprint bit conversion failed", err)
	}
	encoded, err := bech32.Encode("asset", data)
	if err != nil {
		return AssetFingerprint{}, ledgererr.Wrap(ledgererr.StructuralMismatch, module, "asset fingerprint bech32 encoding failed", err)
	}
	return AssetFingerprint{value: encoded}, nil
}
