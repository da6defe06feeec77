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

// Package address implements Cardano's header-byte-encoded address
// family: Base, Enterprise, Pointer, Reward and (opaque) Byron addresses,
// the pointer-address variable-length integer encoding, and the
// bech32/hex/Byron-base58 text forms. Extended with Pointer-kind support
// on top of the usual Base/Enterprise/Reward/Byron set.
package address

import (
	"bytes"

	"github.com/blinklabs-io/cardano-ledger/bytestring"
	"github.com/blinklabs-io/cardano-ledger/internal/base58"
	"github.com/blinklabs-io/cardano-ledger/internal/bech32"
)

const credentialSize = 28

// Network is the 4-bit network discriminator carried in every non-Byron
// address header's low nibble.
type Network uint8

const (
	Testnet Network = 0
	Mainnet Network = 1
)

// Kind is the 4-bit address kind carried in the header byte's high
// nibble.
type Kind uint8

const (
	KindBaseKeyKey Kind = iota
	KindBaseScriptKey
	KindBaseKeyScript
	KindBaseScriptScript
	KindPointerKey
	KindPointerScript
	KindEnterpriseKey
	KindEnterpriseScript
	KindByron
	_reserved9
	_reserved10
	_reserved11
	_reserved12
	_reserved13
	KindRewardKey
	KindRewardScript
)

// Pointer is the certificate-pointer payload of a Pointer-kind address.
type Pointer struct {
	Slot      uint64
	TxIndex   uint64
	CertIndex uint64
}

// Address is the immutable, decoded form of any address in the family.
// Exactly the fields relevant to Kind are populated; see the NewXxx
// constructors.
type Address struct {
	Kind    Kind
	Network Network

	PaymentCredential []byte
	StakeCredential   []byte
	Pointer           Pointer

	// ByronPayload holds the opaque bytes of a Byron-kind address; real
	// Byron addresses are themselves CBOR-wrapped structures with a CRC,
	// which is out of scope here (see Non-goals) — only the header +
	// opaque-payload round trip through bytes/hex/base58 is supported.
	ByronPayload []byte
}

// Equal reports whether a and o carry the same kind, network and
// credential bytes. Address holds its credentials as []byte, which makes
// the struct itself incomparable with ==; this is the idiomatic
// substitute, matching every other entity type's Equal method.
func (a Address) Equal(o Address) bool {
	return a.Kind == o.Kind &&
		a.Network == o.Network &&
		bytes.Equal(a.PaymentCredential, o.PaymentCredential) &&
		bytes.Equal(a.StakeCredential, o.StakeCredential) &&
		a.Pointer == o.Pointer &&
		bytes.Equal(a.ByronPayload, o.ByronPayload)
}

func isScriptPayment(k Kind) bool {
	return k == KindBaseScriptKey || k == KindBaseScriptScript || k == KindPointerScript || k == KindEnterpriseScript
}

func isScriptStake(k Kind) bool {
	return k == KindBaseKeyScript || k == KindBaseScriptScript || k == KindRewardScript
}

// NewBaseAddress builds a Base address from 28-byte payment and stake
// credentials, each independently a key or a script hash.
func NewBaseAddress(network Network, payment, stake []byte, paymentIsScript, stakeIsScript bool) (Address, error) {
	if len(payment) != credentialSize || len(stake) != credentialSize {
		return Address{}, errShortInput("base address credentials must each be 28 bytes")
	}
	kind := KindBaseKeyKey
	switch {
	case paymentIsScript && stakeIsScript:
		kind = KindBaseScriptScript
	case paymentIsScript:
		kind = KindBaseScriptKey
	case stakeIsScript:
		kind = KindBaseKeyScript
	}
	return Address{
		Kind:              kind,
		Network:           network,
		PaymentCredential: copyBytes(payment),
		StakeCredential:   copyBytes(stake),
	}, nil
}

// NewEnterpriseAddress builds an Enterprise address from a single 28-byte
// payment credential.
func NewEnterpriseAddress(network Network, payment []byte, isScript bool) (Address, error) {
	if len(payment) != credentialSize {
		return Address{}, errShortInput("enterprise address credential must be 28 bytes")
	}
	kind := KindEnterpriseKey
	if isScript {
		kind = KindEnterpriseScript
	}
	return Address{Kind: kind, Network: network, PaymentCredential: copyBytes(payment)}, nil
}

// NewRewardAddress builds a Reward address from a single 28-byte stake
// credential.
func NewRewardAddress(network Network, stake []byte, isScript bool) (Address, error) {
	if len(stake) != credentialSize {
		return Address{}, errShortInput("reward address credential must be 28 bytes")
	}
	kind := KindRewardKey
	if isScript {
		kind = KindRewardScript
	}
	return Address{Kind: kind, Network: network, StakeCredential: copyBytes(stake)}, nil
}

// NewPointerAddress builds a Pointer address from a 28-byte payment
// credential and a certificate pointer; every Pointer field must be > 0.
func NewPointerAddress(network Network, payment []byte, isScript bool, ptr Pointer) (Address, error) {
	if len(payment) != credentialSize {
		return Address{}, errShortInput("pointer address credential must be 28 bytes")
	}
	if ptr.Slot == 0 || ptr.TxIndex == 0 || ptr.CertIndex == 0 {
		return Address{}, errVarIntOverflow("pointer fields must each be a positive integer")
	}
	kind := KindPointerKey
	if isScript {
		kind = KindPointerScript
	}
	return Address{Kind: kind, Network: network, PaymentCredential: copyBytes(payment), Pointer: ptr}, nil
}

// NewByronAddress wraps opaque legacy address bytes.
func NewByronAddress(payload []byte) Address {
	return Address{Kind: KindByron, ByronPayload: copyBytes(payload)}
}

func copyBytes(b []byte) []byte {
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

// Bytes serializes a to its header-plus-payload wire form.
func (a Address) Bytes() ([]byte, error) {
	if a.Kind == KindByron {
		header := byte(KindByron) << 4
		return append([]byte{header}, a.ByronPayload...), nil
	}

	header := byte(a.Kind)<<4 | byte(a.Network)&0x0f
	out := []byte{header}

	switch a.Kind {
	case KindBaseKeyKey, KindBaseScriptKey, KindBaseKeyScript, KindBaseScriptScript:
		out = append(out, a.PaymentCredential...)
		out = append(out, a.StakeCredential...)
	case KindEnterpriseKey, KindEnterpriseScript:
		out = append(out, a.PaymentCredential...)
	case KindRewardKey, KindRewardScript:
		out = append(out, a.StakeCredential...)
	case KindPointerKey, KindPointerScript:
		out = append(out, a.PaymentCredential...)
		out = putVarInt(out, a.Pointer.Slot)
		out = putVarInt(out, a.Pointer.TxIndex)
		out = putVarInt(out, a.Pointer.CertIndex)
	default:
		return nil, errUnknownKind("unrecognized address kind")
	}
	return out, nil
}

// FromBytes parses the header-plus-payload wire form produced by Bytes.
func FromBytes(data []byte) (Address, error) {
	if len(data) == 0 {
		return Address{}, errShortInput("empty address bytes")
	}
	header := data[0]
	kind := Kind(header >> 4)
	network := Network(header & 0x0f)
	payload := data[1:]

	switch kind {
	case KindByron:
		return Address{Kind: KindByron, ByronPayload: copyBytes(payload)}, nil
	case KindBaseKeyKey, KindBaseScriptKey, KindBaseKeyScript, KindBaseScriptScript:
		if len(payload) != 2*credentialSize {
			return Address{}, errShortInput("base address payload must be 56 bytes")
		}
		return Address{
			Kind:              kind,
			Network:           network,
			PaymentCredential: copyBytes(payload[:credentialSize]),
			StakeCredential:   copyBytes(payload[credentialSize:]),
		}, nil
	case KindEnterpriseKey, KindEnterpriseScript:
		if len(payload) != credentialSize {
			return Address{}, errShortInput("enterprise address payload must be 28 bytes")
		}
		return Address{Kind: kind, Network: network, PaymentCredential: copyBytes(payload)}, nil
	case KindRewardKey, KindRewardScript:
		if len(payload) != credentialSize {
			return Address{}, errShortInput("reward address payload must be 28 bytes")
		}
		return Address{Kind: kind, Network: network, StakeCredential: copyBytes(payload)}, nil
	case KindPointerKey, KindPointerScript:
		if len(payload) < credentialSize {
			return Address{}, errShortInput("pointer address payload shorter than credential")
		}
		cred := copyBytes(payload[:credentialSize])
		rest := payload[credentialSize:]
		slot, n, err := readVarInt(rest, 0)
		if err != nil {
			return Address{}, err
		}
		rest2 := rest[n:]
		txIndex, n2, err := readVarInt(rest2, 0)
		if err != nil {
			return Address{}, err
		}
		rest3 := rest2[n2:]
		certIndex, n3, err := readVarInt(rest3, 0)
		if err != nil {
			return Address{}, err
		}
		if n3 != len(rest3) {
			return Address{}, errBadHeader("trailing bytes after pointer address fields")
		}
		return Address{
			Kind:              kind,
			Network:           network,
			PaymentCredential: cred,
			Pointer:           Pointer{Slot: slot, TxIndex: txIndex, CertIndex: certIndex},
		}, nil
	default:
		return Address{}, errUnknownKind("unrecognized address kind nibble")
	}
}

func (a Address) isPaymentCapable() bool {
	switch a.Kind {
	case KindBaseKeyKey, KindBaseScriptKey, KindBaseKeyScript, KindBaseScriptScript,
		KindPointerKey, KindPointerScript, KindEnterpriseKey, KindEnterpriseScript:
		return true
	default:
		return false
	}
}

func (a Address) isReward() bool {
	return a.Kind == KindRewardKey || a.Kind == KindRewardScript
}

// hrp returns the bech32 HRP for a's (kind, network) pair.
func (a Address) hrp() (string, error) {
	switch {
	case a.isPaymentCapable():
		if a.Network == Mainnet {
			return "addr", nil
		}
		return "addr_test", nil
	case a.isReward():
		if a.Network == Mainnet {
			return "stake", nil
		}
		return "stake_test", nil
	default:
		return "", errUnknownKind("address kind has no bech32 HRP")
	}
}

// Bech32 encodes a as a bech32 string with the HRP its (kind, network)
// pair selects. Byron addresses have no bech32 form; use Base58 instead.
func (a Address) Bech32() (string, error) {
	if a.Kind == KindByron {
		return "", errBadHeader("Byron addresses have no bech32 form, use Base58")
	}
	hrp, err := a.hrp()
	if err != nil {
		return "", err
	}
	raw, err := a.Bytes()
	if err != nil {
		return "", err
	}
	conv, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, conv)
}

// FromBech32 decodes a bech32 address string, verifying its checksum and
// that its HRP matches the decoded header's (kind, network) pair.
func FromBech32(s string) (Address, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return Address{}, errBech32ChecksumFail(err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, err
	}
	a, err := FromBytes(raw)
	if err != nil {
		return Address{}, err
	}
	wantHrp, err := a.hrp()
	if err != nil {
		return Address{}, err
	}
	if wantHrp != hrp {
		return Address{}, errHrpMismatch("bech32 HRP does not match decoded address kind/network")
	}
	return a, nil
}

// MustFromBech32 decodes s or panics. Intended for call sites that have
// already validated the input (tests, trusted internal callers), not for
// decoding untrusted wire data.
func MustFromBech32(s string) Address {
	a, err := FromBech32(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Base58 encodes a Byron address using the legacy Bitcoin/Byron alphabet.
func (a Address) Base58() (string, error) {
	if a.Kind != KindByron {
		return "", errBadHeader("only Byron addresses have a base58 form")
	}
	raw, err := a.Bytes()
	if err != nil {
		return "", err
	}
	return base58.Encode(raw), nil
}

// FromBase58 decodes a legacy Byron address string.
func FromBase58(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Address{}, err
	}
	a, err := FromBytes(raw)
	if err != nil {
		return Address{}, err
	}
	if a.Kind != KindByron {
		return Address{}, errBadHeader("base58 string does not decode to a Byron address header")
	}
	return a, nil
}

// Hex encodes a's wire bytes as lowercase hex.
func (a Address) Hex() (string, error) {
	raw, err := a.Bytes()
	if err != nil {
		return "", err
	}
	return bytestring.EncodeHex(raw), nil
}

// FromHex decodes a hex-encoded address's wire bytes.
func FromHex(s string) (Address, error) {
	raw, err := bytestring.DecodeHex(s)
	if err != nil {
		return Address{}, err
	}
	return FromBytes(raw)
}
