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

// Package ledgererr defines the shared error taxonomy used across the
// cbor, plutusdata, address, schema and ledger packages. Every leaf
// failure is tagged with a Kind from this file's closed set; composed
// schemas wrap subordinate errors so the top-most error still identifies
// the originating module.
package ledgererr

import "fmt"

// Kind identifies the category of failure. The set is closed; callers
// switch on Kind rather than matching error strings.
type Kind string

const (
	InvalidLength       Kind = "invalid_length"
	InvalidHex          Kind = "invalid_hex"
	InvalidBech32       Kind = "invalid_bech32"
	BadHeader           Kind = "bad_header"
	UnknownDiscriminator Kind = "unknown_discriminator"
	CborUnexpectedEnd   Kind = "cbor_unexpected_end"
	CborInvalidHead     Kind = "cbor_invalid_head"
	CborTagMismatch     Kind = "cbor_tag_mismatch"
	CborNonCanonical    Kind = "cbor_non_canonical"
	VarIntOverflow      Kind = "varint_overflow"
	NumericOutOfRange   Kind = "numeric_out_of_range"
	StructuralMismatch  Kind = "structural_mismatch"
	UnsupportedEra      Kind = "unsupported_era"
)

// Error is the concrete error type returned by every fallible operation in
// this module. Module names the package that raised or last rewrapped the
// error (e.g. "cbor", "address", "plutusdata", "ledger").
type Error struct {
	Kind   Kind
	Module string
	Msg    string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %s", e.Module, e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Module, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a leaf error with no wrapped cause.
func New(kind Kind, module, msg string) *Error {
	return &Error{Kind: kind, Module: module, Msg: msg}
}

// Newf builds a leaf error with a formatted message.
func Newf(kind Kind, module, format string, args ...any) *Error {
	return &Error{Kind: kind, Module: module, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags an existing error with a kind and the module that observed it,
// preserving it as the cause chain.
func Wrap(kind Kind, module, msg string, cause error) *Error {
	return &Error{Kind: kind, Module: module, Msg: msg, Cause: cause}
}

// Is reports whether err is a *Error with the given Kind, following the
// cause chain. Callers either switch on the tag or re-raise.
func Is(err error, kind Kind) bool {
	for err != nil {
		if le, ok := err.(*Error); ok {
			if le.Kind == kind {
				return true
			}
			err = le.Cause
			continue
		}
		type unwrapper interface{ Unwrap() error }
		u, ok := err.(unwrapper)
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
