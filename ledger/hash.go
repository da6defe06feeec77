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

// Package ledger implements the ledger entity catalogue: credentials,
// fixed-length hash/key/signature brands, Coin/MultiAsset/Value
// arithmetic, certificates, DRep, scripts, governance actions, proposal
// procedures, pool parameters, redeemers and transaction bodies — each
// bound to CBOR using the schema package's combinators.
package ledger

import (
	"github.com/blinklabs-io/cardano-ledger/bytestring"
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
	"github.com/blinklabs-io/cardano-ledger/schema"
)

const module = "ledger"

// hashBrand is the shared representation for every fixed-length
// hash/key/signature type in this file: an immutable byte string of a
// statically known width, with injective bytes/hex conversion.
type hashBrand struct {
	data bytestring.Fixed
}

func newHashBrand(b []byte, wantLen int) (hashBrand, error) {
	f, err := bytestring.NewFixed(b, wantLen)
	if err != nil {
		return hashBrand{}, err
	}
	return hashBrand{data: f}, nil
}

func (h hashBrand) Bytes() []byte          { return h.data.Bytes() }
func (h hashBrand) Hex() string            { return h.data.Hex() }
func (h hashBrand) equal(o hashBrand) bool { return h.data.Equal(o.data) }
func (h hashBrand) toCbor() cbor.Value     { return cbor.Bytes(h.data.Bytes()) }

func hashBrandFromCbor(v cbor.Value, wantLen int) (hashBrand, error) {
	if v.Kind != cbor.KindBytes && v.Kind != cbor.KindBytesChunked {
		return hashBrand{}, ledgererr.New(ledgererr.StructuralMismatch, module, "expected byte string for hash value")
	}
	return newHashBrand(v.Bytes, wantLen)
}

// hashSchema builds the Schema[T] for one branded hash type by composing
// the raw fixed-length-bytes schema with the brand's wrap/unwrap pair.
// Every KeyHash/ScriptHash/... FromCbor and MustFromCbor below is this
// schema's Decode/MustDecode, so the throwing and fallible surfaces never
// drift apart.
func hashSchema[T any](wantLen int, wrap func(hashBrand) T, unwrap func(T) hashBrand) schema.Schema[T] {
	base := schema.Schema[hashBrand]{
		Decode: func(v cbor.Value) (hashBrand, error) { return hashBrandFromCbor(v, wantLen) },
		Encode: func(h hashBrand) (cbor.Value, error) { return h.toCbor(), nil },
	}
	return schema.Compose(base, func(h hashBrand) (T, error) { return wrap(h), nil }, unwrap)
}

// The macro below is spelled out per type (no generics-over-constants in
// Go) — each is a distinct brand so KeyHash and ScriptHash, though both
// 28 bytes, are not assignable to one another.

type KeyHash struct{ hashBrand }

var keyHashSchema = hashSchema(28,
	func(h hashBrand) KeyHash { return KeyHash{h} },
	func(k KeyHash) hashBrand { return k.hashBrand },
)

func NewKeyHash(b []byte) (KeyHash, error) {
	h, err := newHashBrand(b, 28)
	return KeyHash{h}, err
}
func (k KeyHash) ToCbor() cbor.Value   { return k.toCbor() }
func (k KeyHash) Equal(o KeyHash) bool { return k.hashBrand.equal(o.hashBrand) }
func KeyHashFromCbor(v cbor.Value) (KeyHash, error) { return keyHashSchema.Decode(v) }
func MustKeyHashFromCbor(v cbor.Value) KeyHash      { return keyHashSchema.MustDecode(v) }

type ScriptHash struct{ hashBrand }

var scriptHashSchema = hashSchema(28,
	func(h hashBrand) ScriptHash { return ScriptHash{h} },
	func(k ScriptHash) hashBrand { return k.hashBrand },
)

func NewScriptHash(b []byte) (ScriptHash, error) {
	h, err := newHashBrand(b, 28)
	return ScriptHash{h}, err
}
func (k ScriptHash) ToCbor() cbor.Value   { return k.toCbor() }
func (k ScriptHash) Equal(o ScriptHash) bool { return k.hashBrand.equal(o.hashBrand) }
func ScriptHashFromCbor(v cbor.Value) (ScriptHash, error) { return scriptHashSchema.Decode(v) }
func MustScriptHashFromCbor(v cbor.Value) ScriptHash      { return scriptHashSchema.MustDecode(v) }

type PoolKeyHash struct{ hashBrand }

var poolKeyHashSchema = hashSchema(28,
	func(h hashBrand) PoolKeyHash { return PoolKeyHash{h} },
	func(k PoolKeyHash) hashBrand { return k.hashBrand },
)

func NewPoolKeyHash(b []byte) (PoolKeyHash, error) {
	h, err := newHashBrand(b, 28)
	return PoolKeyHash{h}, err
}
func (k PoolKeyHash) ToCbor() cbor.Value      { return k.toCbor() }
func (k PoolKeyHash) Equal(o PoolKeyHash) bool { return k.hashBrand.equal(o.hashBrand) }
func PoolKeyHashFromCbor(v cbor.Value) (PoolKeyHash, error) { return poolKeyHashSchema.Decode(v) }
func MustPoolKeyHashFromCbor(v cbor.Value) PoolKeyHash      { return poolKeyHashSchema.MustDecode(v) }

type VrfKeyHash struct{ hashBrand }

var vrfKeyHashSchema = hashSchema(32,
	func(h hashBrand) VrfKeyHash { return VrfKeyHash{h} },
	func(k VrfKeyHash) hashBrand { return k.hashBrand },
)

func NewVrfKeyHash(b []byte) (VrfKeyHash, error) {
	h, err := newHashBrand(b, 32)
	return VrfKeyHash{h}, err
}
func (k VrfKeyHash) ToCbor() cbor.Value     { return k.toCbor() }
func (k VrfKeyHash) Equal(o VrfKeyHash) bool { return k.hashBrand.equal(o.hashBrand) }
func VrfKeyHashFromCbor(v cbor.Value) (VrfKeyHash, error) { return vrfKeyHashSchema.Decode(v) }
func MustVrfKeyHashFromCbor(v cbor.Value) VrfKeyHash      { return vrfKeyHashSchema.MustDecode(v) }

type BlockHeaderHash struct{ hashBrand }

var blockHeaderHashSchema = hashSchema(32,
	func(h hashBrand) BlockHeaderHash { return BlockHeaderHash{h} },
	func(k BlockHeaderHash) hashBrand { return k.hashBrand },
)

func NewBlockHeaderHash(b []byte) (BlockHeaderHash, error) {
	h, err := newHashBrand(b, 32)
	return BlockHeaderHash{h}, err
}
func (k BlockHeaderHash) ToCbor() cbor.Value         { return k.toCbor() }
func (k BlockHeaderHash) Equal(o BlockHeaderHash) bool { return k.hashBrand.equal(o.hashBrand) }
func BlockHeaderHashFromCbor(v cbor.Value) (BlockHeaderHash, error) {
	return blockHeaderHashSchema.Decode(v)
}
func MustBlockHeaderHashFromCbor(v cbor.Value) BlockHeaderHash {
	return blockHeaderHashSchema.MustDecode(v)
}

type AuxiliaryDataHash struct{ hashBrand }

var auxiliaryDataHashSchema = hashSchema(32,
	func(h hashBrand) AuxiliaryDataHash { return AuxiliaryDataHash{h} },
	func(k AuxiliaryDataHash) hashBrand { return k.hashBrand },
)

func NewAuxiliaryDataHash(b []byte) (AuxiliaryDataHash, error) {
	h, err := newHashBrand(b, 32)
	return AuxiliaryDataHash{h}, err
}
func (k AuxiliaryDataHash) ToCbor() cbor.Value           { return k.toCbor() }
func (k AuxiliaryDataHash) Equal(o AuxiliaryDataHash) bool { return k.hashBrand.equal(o.hashBrand) }
func AuxiliaryDataHashFromCbor(v cbor.Value) (AuxiliaryDataHash, error) {
	return auxiliaryDataHashSchema.Decode(v)
}
func MustAuxiliaryDataHashFromCbor(v cbor.Value) AuxiliaryDataHash {
	return auxiliaryDataHashSchema.MustDecode(v)
}

type ScriptDataHash struct{ hashBrand }

var scriptDataHashSchema = hashSchema(32,
	func(h hashBrand) ScriptDataHash { return ScriptDataHash{h} },
	func(k ScriptDataHash) hashBrand { return k.hashBrand },
)

func NewScriptDataHash(b []byte) (ScriptDataHash, error) {
	h, err := newHashBrand(b, 32)
	return ScriptDataHash{h}, err
}
func (k ScriptDataHash) ToCbor() cbor.Value       { return k.toCbor() }
func (k ScriptDataHash) Equal(o ScriptDataHash) bool { return k.hashBrand.equal(o.hashBrand) }
func ScriptDataHashFromCbor(v cbor.Value) (ScriptDataHash, error) {
	return scriptDataHashSchema.Decode(v)
}
func MustScriptDataHashFromCbor(v cbor.Value) ScriptDataHash {
	return scriptDataHashSchema.MustDecode(v)
}

type Ed25519Signature struct{ hashBrand }

var ed25519SignatureSchema = hashSchema(64,
	func(h hashBrand) Ed25519Signature { return Ed25519Signature{h} },
	func(k Ed25519Signature) hashBrand { return k.hashBrand },
)

func NewEd25519Signature(b []byte) (Ed25519Signature, error) {
	h, err := newHashBrand(b, 64)
	return Ed25519Signature{h}, err
}
func (k Ed25519Signature) ToCbor() cbor.Value          { return k.toCbor() }
func (k Ed25519Signature) Equal(o Ed25519Signature) bool { return k.hashBrand.equal(o.hashBrand) }
func Ed25519SignatureFromCbor(v cbor.Value) (Ed25519Signature, error) {
	return ed25519SignatureSchema.Decode(v)
}
func MustEd25519SignatureFromCbor(v cbor.Value) Ed25519Signature {
	return ed25519SignatureSchema.MustDecode(v)
}

// KesSignature is 448 bytes: a fixed-depth KES signature chain.
type KesSignature struct{ hashBrand }

var kesSignatureSchema = hashSchema(448,
	func(h hashBrand) KesSignature { return KesSignature{h} },
	func(k KesSignature) hashBrand { return k.hashBrand },
)

func NewKesSignature(b []byte) (KesSignature, error) {
	h, err := newHashBrand(b, 448)
	return KesSignature{h}, err
}
func (k KesSignature) ToCbor() cbor.Value     { return k.toCbor() }
func (k KesSignature) Equal(o KesSignature) bool { return k.hashBrand.equal(o.hashBrand) }
func KesSignatureFromCbor(v cbor.Value) (KesSignature, error) { return kesSignatureSchema.Decode(v) }
func MustKesSignatureFromCbor(v cbor.Value) KesSignature      { return kesSignatureSchema.MustDecode(v) }

type KESVkey struct{ hashBrand }

var kesVkeySchema = hashSchema(32,
	func(h hashBrand) KESVkey { return KESVkey{h} },
	func(k KESVkey) hashBrand { return k.hashBrand },
)

func NewKESVkey(b []byte) (KESVkey, error) {
	h, err := newHashBrand(b, 32)
	return KESVkey{h}, err
}
func (k KESVkey) ToCbor() cbor.Value   { return k.toCbor() }
func (k KESVkey) Equal(o KESVkey) bool { return k.hashBrand.equal(o.hashBrand) }
func KESVkeyFromCbor(v cbor.Value) (KESVkey, error) { return kesVkeySchema.Decode(v) }
func MustKESVkeyFromCbor(v cbor.Value) KESVkey      { return kesVkeySchema.MustDecode(v) }

type VKey struct{ hashBrand }

var vKeySchema = hashSchema(32,
	func(h hashBrand) VKey { return VKey{h} },
	func(k VKey) hashBrand { return k.hashBrand },
)

func NewVKey(b []byte) (VKey, error) {
	h, err := newHashBrand(b, 32)
	return VKey{h}, err
}
func (k VKey) ToCbor() cbor.Value   { return k.toCbor() }
func (k VKey) Equal(o VKey) bool { return k.hashBrand.equal(o.hashBrand) }
func VKeyFromCbor(v cbor.Value) (VKey, error) { return vKeySchema.Decode(v) }
func MustVKeyFromCbor(v cbor.Value) VKey      { return vKeySchema.MustDecode(v) }

// PoolMetadataHash is the blake2b-256 hash of a stake pool's off-chain
// metadata JSON, as referenced by its anchor URL.
type PoolMetadataHash struct{ hashBrand }

var poolMetadataHashSchema = hashSchema(32,
	func(h hashBrand) PoolMetadataHash { return PoolMetadataHash{h} },
	func(k PoolMetadataHash) hashBrand { return k.hashBrand },
)

func NewPoolMetadataHash(b []byte) (PoolMetadataHash, error) {
	h, err := newHashBrand(b, 32)
	return PoolMetadataHash{h}, err
}
func (k PoolMetadataHash) ToCbor() cbor.Value          { return k.toCbor() }
func (k PoolMetadataHash) Equal(o PoolMetadataHash) bool { return k.hashBrand.equal(o.hashBrand) }
func PoolMetadataHashFromCbor(v cbor.Value) (PoolMetadataHash, error) {
	return poolMetadataHashSchema.Decode(v)
}
func MustPoolMetadataHashFromCbor(v cbor.Value) PoolMetadataHash {
	return poolMetadataHashSchema.MustDecode(v)
}
