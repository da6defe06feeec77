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
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
	"github.com/blinklabs-io/cardano-ledger/schema"
)

// ProtocolVersion is `[major, minor]`.
type ProtocolVersion struct {
	Major uint64
	Minor uint64
}

func NewProtocolVersion(major, minor uint64) ProtocolVersion {
	return ProtocolVersion{Major: major, Minor: minor}
}

func (p ProtocolVersion) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(cbor.Uint(p.Major), cbor.Uint(p.Minor)), nil
}

func ProtocolVersionFromCbor(v cbor.Value) (ProtocolVersion, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return ProtocolVersion{}, err
	}
	if fields[0].Kind != cbor.KindUint || fields[1].Kind != cbor.KindUint {
		return ProtocolVersion{}, ledgererr.New(ledgererr.StructuralMismatch, module, "protocol version fields must be uints")
	}
	return NewProtocolVersion(fields[0].Uint, fields[1].Uint), nil
}

// OperationalCert is `[hot_vkey, sequence_no, kes_period, sigma]`: the
// block-producer's delegation from its cold key to its current KES key.
type OperationalCert struct {
	HotVKey   KESVkey
	Sequence  uint64
	KesPeriod uint64
	Sigma     Ed25519Signature
}

func NewOperationalCert(hot KESVkey, sequence, kesPeriod uint64, sigma Ed25519Signature) OperationalCert {
	return OperationalCert{HotVKey: hot, Sequence: sequence, KesPeriod: kesPeriod, Sigma: sigma}
}

func (c OperationalCert) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(
		c.HotVKey.ToCbor(),
		cbor.Uint(c.Sequence),
		cbor.Uint(c.KesPeriod),
		c.Sigma.ToCbor(),
	), nil
}

func OperationalCertFromCbor(v cbor.Value) (OperationalCert, error) {
	fields, err := schema.TupleDecode(v, 4)
	if err != nil {
		return OperationalCert{}, err
	}
	hot, err := KESVkeyFromCbor(fields[0])
	if err != nil {
		return OperationalCert{}, err
	}
	if fields[1].Kind != cbor.KindUint || fields[2].Kind != cbor.KindUint {
		return OperationalCert{}, ledgererr.New(ledgererr.StructuralMismatch, module, "operational cert sequence/kesPeriod must be uints")
	}
	sigma, err := Ed25519SignatureFromCbor(fields[3])
	if err != nil {
		return OperationalCert{}, err
	}
	return NewOperationalCert(hot, fields[1].Uint, fields[2].Uint, sigma), nil
}

// Header is `[header_body, body_signature]`. header_body is carried as
// opaque pre-encoded CBOR: this library does not model the full block
// header body schema (it belongs to a consensus package outside this
// library's scope), only the outer envelope and its KES signature.
type Header struct {
	HeaderBody    cbor.Value
	BodySignature KesSignature
}

func NewHeader(body cbor.Value, sig KesSignature) Header {
	return Header{HeaderBody: body, BodySignature: sig}
}

func (h Header) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(h.HeaderBody, h.BodySignature.ToCbor()), nil
}

func HeaderFromCbor(v cbor.Value) (Header, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return Header{}, err
	}
	sig, err := KesSignatureFromCbor(fields[1])
	if err != nil {
		return Header{}, err
	}
	return NewHeader(fields[0], sig), nil
}
