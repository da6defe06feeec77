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

import "github.com/blinklabs-io/cardano-ledger/ledgererr"

const module = "address"

func errBadHeader(msg string) error {
	return ledgererr.New(ledgererr.BadHeader, module, msg)
}

func errNetworkMismatch(msg string) error {
	return ledgererr.New(ledgererr.NumericOutOfRange, module, msg)
}

func errShortInput(msg string) error {
	return ledgererr.New(ledgererr.InvalidLength, module, msg)
}

func errVarIntOverflow(msg string) error {
	return ledgererr.New(ledgererr.VarIntOverflow, module, msg)
}

func errBech32ChecksumFail(cause error) error {
	return ledgererr.Wrap(ledgererr.InvalidBech32, module, "bech32 checksum verification failed", cause)
}

func errHrpMismatch(msg string) error {
	return ledgererr.New(ledgererr.InvalidBech32, module, msg)
}

func errUnknownKind(msg string) error {
	return ledgererr.New(ledgererr.UnknownDiscriminator, module, msg)
}
