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

package cbor

import "github.com/blinklabs-io/cardano-ledger/ledgererr"

const module = "cbor"

func errUnexpectedEnd(msg string) error {
	return ledgererr.New(ledgererr.CborUnexpectedEnd, module, msg)
}

func errInvalidHead(msg string) error {
	return ledgererr.New(ledgererr.CborInvalidHead, module, msg)
}

func errUnknownMajor(major byte) error {
	return ledgererr.Newf(ledgererr.CborInvalidHead, module, "unknown major type %d", major)
}

func errNonCanonical(msg string) error {
	return ledgererr.New(ledgererr.CborNonCanonical, module, msg)
}

func errTagMismatch(msg string) error {
	return ledgererr.New(ledgererr.CborTagMismatch, module, msg)
}

func errOverlongUtf8() error {
	return ledgererr.New(ledgererr.CborInvalidHead, module, "invalid or overlong utf-8 in text string")
}

func errTooLarge(msg string) error {
	return ledgererr.New(ledgererr.StructuralMismatch, module, msg)
}
