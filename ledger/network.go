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

import "github.com/blinklabs-io/cardano-ledger/ledgererr"

// TestnetMagic and MainnetMagic are the only two network ids an
// application-level caller may request when building an address by
// name. The codec edge (address package) is more permissive: it accepts
// the header's full 0..15 low nibble with no validation beyond fitting
// in 4 bits.
const (
	TestnetMagic uint8 = 0
	MainnetMagic uint8 = 1
)

// ValidateNetworkMagic rejects any network id other than TestnetMagic or
// MainnetMagic, for callers constructing an address for a named network
// rather than decoding one off the wire.
func ValidateNetworkMagic(id uint8) error {
	if id != TestnetMagic && id != MainnetMagic {
		return ledgererr.Newf(ledgererr.UnknownDiscriminator, module, "unknown network magic %d, expected 0 (testnet) or 1 (mainnet)", id)
	}
	return nil
}
