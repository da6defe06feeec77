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
	"github.com/blinklabs-io/cardano-ledger/address"
	"github.com/blinklabs-io/cardano-ledger/cbor"
	"github.com/blinklabs-io/cardano-ledger/ledgererr"
	"github.com/blinklabs-io/cardano-ledger/schema"
)

// UnitInterval is a non-negative rational `num/den`, used for pool
// margins and other bounded-fraction protocol parameters.
type UnitInterval struct {
	Numerator   uint64
	Denominator uint64
}

func NewUnitInterval(num, den uint64) (UnitInterval, error) {
	if den == 0 {
		return UnitInterval{}, ledgererr.New(ledgererr.NumericOutOfRange, module, "unit interval denominator must not be zero")
	}
	return UnitInterval{Numerator: num, Denominator: den}, nil
}

func (u UnitInterval) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(cbor.Uint(u.Numerator), cbor.Uint(u.Denominator)), nil
}

func UnitIntervalFromCbor(v cbor.Value) (UnitInterval, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return UnitInterval{}, err
	}
	if fields[0].Kind != cbor.KindUint || fields[1].Kind != cbor.KindUint {
		return UnitInterval{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unit interval fields must be uints")
	}
	return NewUnitInterval(fields[0].Uint, fields[1].Uint)
}

// RelayKind discriminates the three Relay shapes (address, hostname, multi-host).
type RelayKind uint8

const (
	RelaySingleHostAddr RelayKind = iota
	RelaySingleHostName
	RelayMultiHostName
)

// Relay is `[0,port?,ipv4?,ipv6?] | [1,port?,dns] | [2,dns]`.
type Relay struct {
	Kind RelayKind
	Port *uint16
	IPv4 *[4]byte
	IPv6 *[16]byte
	Dns  string
}

func NewSingleHostAddrRelay(port *uint16, ipv4 *[4]byte, ipv6 *[16]byte) Relay {
	return Relay{Kind: RelaySingleHostAddr, Port: port, IPv4: ipv4, IPv6: ipv6}
}
func NewSingleHostNameRelay(port *uint16, dns string) Relay {
	return Relay{Kind: RelaySingleHostName, Port: port, Dns: dns}
}
func NewMultiHostNameRelay(dns string) Relay {
	return Relay{Kind: RelayMultiHostName, Dns: dns}
}

func encodeOptionalPort(p *uint16) cbor.Value {
	if p == nil {
		return cbor.Null()
	}
	return cbor.Uint(uint64(*p))
}

func decodeOptionalPort(v cbor.Value) (*uint16, error) {
	if v.Kind == cbor.KindNull {
		return nil, nil
	}
	if v.Kind != cbor.KindUint || v.Uint > 65535 {
		return nil, ledgererr.New(ledgererr.NumericOutOfRange, module, "relay port must be a uint16 or null")
	}
	port := uint16(v.Uint)
	return &port, nil
}

func (r Relay) ToCbor() (cbor.Value, error) {
	switch r.Kind {
	case RelaySingleHostAddr:
		ipv4Val := cbor.Null()
		if r.IPv4 != nil {
			ipv4Val = cbor.Bytes(r.IPv4[:])
		}
		ipv6Val := cbor.Null()
		if r.IPv6 != nil {
			ipv6Val = cbor.Bytes(r.IPv6[:])
		}
		return schema.SumEncode(0, []cbor.Value{encodeOptionalPort(r.Port), ipv4Val, ipv6Val}), nil
	case RelaySingleHostName:
		return schema.SumEncode(1, []cbor.Value{encodeOptionalPort(r.Port), cbor.Text(r.Dns)}), nil
	case RelayMultiHostName:
		return schema.SumEncode(2, []cbor.Value{cbor.Text(r.Dns)}), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown relay kind")
	}
}

func RelayFromCbor(v cbor.Value) (Relay, error) {
	return schema.SumDecode(v, []schema.SumCase[Relay]{
		{Tag: 0, DecodeFields: func(f []cbor.Value) (Relay, error) {
			if len(f) != 3 {
				return Relay{}, ledgererr.New(ledgererr.StructuralMismatch, module, "single-host-addr relay expects three fields")
			}
			port, err := decodeOptionalPort(f[0])
			if err != nil {
				return Relay{}, err
			}
			var ipv4 *[4]byte
			if f[1].Kind != cbor.KindNull {
				if f[1].Kind != cbor.KindBytes && f[1].Kind != cbor.KindBytesChunked || len(f[1].Bytes) != 4 {
					return Relay{}, ledgererr.New(ledgererr.InvalidLength, module, "relay ipv4 must be 4 bytes or null")
				}
				var a [4]byte
				copy(a[:], f[1].Bytes)
				ipv4 = &a
			}
			var ipv6 *[16]byte
			if f[2].Kind != cbor.KindNull {
				if f[2].Kind != cbor.KindBytes && f[2].Kind != cbor.KindBytesChunked || len(f[2].Bytes) != 16 {
					return Relay{}, ledgererr.New(ledgererr.InvalidLength, module, "relay ipv6 must be 16 bytes or null")
				}
				var a [16]byte
				copy(a[:], f[2].Bytes)
				ipv6 = &a
			}
			return NewSingleHostAddrRelay(port, ipv4, ipv6), nil
		}},
		{Tag: 1, DecodeFields: func(f []cbor.Value) (Relay, error) {
			if len(f) != 2 {
				return Relay{}, ledgererr.New(ledgererr.StructuralMismatch, module, "single-host-name relay expects two fields")
			}
			port, err := decodeOptionalPort(f[0])
			if err != nil {
				return Relay{}, err
			}
			if f[1].Kind != cbor.KindText {
				return Relay{}, ledgererr.New(ledgererr.StructuralMismatch, module, "relay dns name must be text")
			}
			return NewSingleHostNameRelay(port, f[1].Text), nil
		}},
		{Tag: 2, DecodeFields: func(f []cbor.Value) (Relay, error) {
			if len(f) != 1 || f[0].Kind != cbor.KindText {
				return Relay{}, ledgererr.New(ledgererr.StructuralMismatch, module, "multi-host-name relay expects one text field")
			}
			return NewMultiHostNameRelay(f[0].Text), nil
		}},
	})
}

// PoolParams is `[operator, vrfKeyhash, pledge, cost, margin, rewardAccount,
// [owners], [relays], metadata?]`.
type PoolParams struct {
	Operator      PoolKeyHash
	VrfKeyHash    VrfKeyHash
	Pledge        Coin
	Cost          Coin
	Margin        UnitInterval
	RewardAccount address.Address
	Owners        []KeyHash
	Relays        []Relay
	Metadata      *PoolMetadata
}

func NewPoolParams(
	operator PoolKeyHash,
	vrf VrfKeyHash,
	pledge, cost Coin,
	margin UnitInterval,
	rewardAccount address.Address,
	owners []KeyHash,
	relays []Relay,
	metadata *PoolMetadata,
) PoolParams {
	return PoolParams{
		Operator: operator, VrfKeyHash: vrf, Pledge: pledge, Cost: cost,
		Margin: margin, RewardAccount: rewardAccount, Owners: owners,
		Relays: relays, Metadata: metadata,
	}
}

func (p PoolParams) ToCbor() (cbor.Value, error) {
	marginVal, err := p.Margin.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	rewardVal, err := p.RewardAccount.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	owners := make([]cbor.Value, len(p.Owners))
	for i, o := range p.Owners {
		owners[i] = o.ToCbor()
	}
	relays := make([]cbor.Value, len(p.Relays))
	for i, r := range p.Relays {
		rv, err := r.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		relays[i] = rv
	}
	metadataVal, err := schema.OptionEncode(p.Metadata, PoolMetadata.ToCbor)
	if err != nil {
		return cbor.Value{}, err
	}
	return schema.TupleEncode(
		p.Operator.ToCbor(),
		p.VrfKeyHash.ToCbor(),
		p.Pledge.ToCbor(),
		p.Cost.ToCbor(),
		marginVal,
		rewardVal,
		cbor.Array(owners),
		cbor.Array(relays),
		metadataVal,
	), nil
}

func PoolParamsFromCbor(v cbor.Value) (PoolParams, error) {
	fields, err := schema.TupleDecode(v, 9)
	if err != nil {
		return PoolParams{}, err
	}
	operator, err := PoolKeyHashFromCbor(fields[0])
	if err != nil {
		return PoolParams{}, err
	}
	vrf, err := VrfKeyHashFromCbor(fields[1])
	if err != nil {
		return PoolParams{}, err
	}
	pledge, err := CoinFromCbor(fields[2])
	if err != nil {
		return PoolParams{}, err
	}
	cost, err := CoinFromCbor(fields[3])
	if err != nil {
		return PoolParams{}, err
	}
	margin, err := UnitIntervalFromCbor(fields[4])
	if err != nil {
		return PoolParams{}, err
	}
	rewardAccount, err := address.FromCborValue(fields[5])
	if err != nil {
		return PoolParams{}, err
	}
	if fields[6].Kind != cbor.KindArray {
		return PoolParams{}, ledgererr.New(ledgererr.StructuralMismatch, module, "pool params owners must be an array")
	}
	owners := make([]KeyHash, len(fields[6].Array))
	for i, item := range fields[6].Array {
		owners[i], err = KeyHashFromCbor(item)
		if err != nil {
			return PoolParams{}, err
		}
	}
	if fields[7].Kind != cbor.KindArray {
		return PoolParams{}, ledgererr.New(ledgererr.StructuralMismatch, module, "pool params relays must be an array")
	}
	relays := make([]Relay, len(fields[7].Array))
	for i, item := range fields[7].Array {
		relays[i], err = RelayFromCbor(item)
		if err != nil {
			return PoolParams{}, err
		}
	}
	metadata, err := schema.OptionDecode(fields[8], PoolMetadataFromCbor)
	if err != nil {
		return PoolParams{}, err
	}
	return NewPoolParams(operator, vrf, pledge, cost, margin, rewardAccount, owners, relays, metadata), nil
}
