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

// Anchor is `[url, data_hash]`: a URL plus the hash of its content,
// pinned on-chain alongside a vote, proposal or DRep registration.
type Anchor struct {
	Url      string
	DataHash ScriptDataHash
}

func NewAnchor(url string, hash ScriptDataHash) Anchor {
	return Anchor{Url: url, DataHash: hash}
}

func (a Anchor) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(cbor.Text(a.Url), a.DataHash.ToCbor()), nil
}

func AnchorFromCbor(v cbor.Value) (Anchor, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return Anchor{}, err
	}
	if fields[0].Kind != cbor.KindText {
		return Anchor{}, ledgererr.New(ledgererr.StructuralMismatch, module, "anchor url must be a text string")
	}
	hash, err := ScriptDataHashFromCbor(fields[1])
	if err != nil {
		return Anchor{}, err
	}
	return NewAnchor(fields[0].Text, hash), nil
}

// PoolMetadata is `[url, hash]`, a stake pool's off-chain metadata
// pointer.
type PoolMetadata struct {
	Url  string
	Hash PoolMetadataHash
}

func NewPoolMetadata(url string, hash PoolMetadataHash) PoolMetadata {
	return PoolMetadata{Url: url, Hash: hash}
}

func (p PoolMetadata) ToCbor() (cbor.Value, error) {
	return schema.TupleEncode(cbor.Text(p.Url), p.Hash.ToCbor()), nil
}

func PoolMetadataFromCbor(v cbor.Value) (PoolMetadata, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return PoolMetadata{}, err
	}
	if fields[0].Kind != cbor.KindText {
		return PoolMetadata{}, ledgererr.New(ledgererr.StructuralMismatch, module, "pool metadata url must be a text string")
	}
	hash, err := PoolMetadataHashFromCbor(fields[1])
	if err != nil {
		return PoolMetadata{}, err
	}
	return NewPoolMetadata(fields[0].Text, hash), nil
}

// Constitution is `[anchor, script_hash?]`: the off-chain constitution
// document plus an optional guardrail script.
type Constitution struct {
	Anchor       Anchor
	GuardrailScript *ScriptHash
}

func NewConstitution(anchor Anchor, guardrail *ScriptHash) Constitution {
	return Constitution{Anchor: anchor, GuardrailScript: guardrail}
}

func (c Constitution) ToCbor() (cbor.Value, error) {
	anchorVal, err := c.Anchor.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	scriptVal, err := schema.OptionEncode(c.GuardrailScript, func(h ScriptHash) (cbor.Value, error) {
		return h.ToCbor(), nil
	})
	if err != nil {
		return cbor.Value{}, err
	}
	return schema.TupleEncode(anchorVal, scriptVal), nil
}

func ConstitutionFromCbor(v cbor.Value) (Constitution, error) {
	fields, err := schema.TupleDecode(v, 2)
	if err != nil {
		return Constitution{}, err
	}
	anchor, err := AnchorFromCbor(fields[0])
	if err != nil {
		return Constitution{}, err
	}
	guardrail, err := schema.OptionDecode(fields[1], ScriptHashFromCbor)
	if err != nil {
		return Constitution{}, err
	}
	return NewConstitution(anchor, guardrail), nil
}

// GovernanceActionKind discriminates the seven Conway governance action
// alternatives. spec.md names GovernanceAction only as "a tagged sum with
// small-integer discriminator, payload per entity"; this catalogue
// adopts the real Conway CDDL variant set as the Open Question
// resolution recorded in DESIGN.md.
type GovernanceActionKind uint8

const (
	GovernanceActionParameterChange GovernanceActionKind = iota
	GovernanceActionHardForkInitiation
	GovernanceActionTreasuryWithdrawals
	GovernanceActionNoConfidence
	GovernanceActionNewCommittee
	GovernanceActionNewConstitution
	GovernanceActionInfo
)

// GovernanceAction carries only the fields this library models end to
// end (protocol version for hard-fork initiation, constitution for the
// new-constitution action); the remaining variants are structurally
// parameterless here and are distinguished by Kind alone, since their
// full payload (protocol parameter deltas, treasury withdrawal maps)
// belongs to a protocol-parameters package outside this library's scope.
type GovernanceAction struct {
	Kind             GovernanceActionKind
	ProtocolVersion  ProtocolVersion
	NewConstitution  Constitution
}

func NewHardForkInitiationAction(pv ProtocolVersion) GovernanceAction {
	return GovernanceAction{Kind: GovernanceActionHardForkInitiation, ProtocolVersion: pv}
}

func NewNewConstitutionAction(c Constitution) GovernanceAction {
	return GovernanceAction{Kind: GovernanceActionNewConstitution, NewConstitution: c}
}

func NewNoConfidenceAction() GovernanceAction {
	return GovernanceAction{Kind: GovernanceActionNoConfidence}
}

func NewInfoAction() GovernanceAction {
	return GovernanceAction{Kind: GovernanceActionInfo}
}

func (g GovernanceAction) ToCbor() (cbor.Value, error) {
	switch g.Kind {
	case GovernanceActionHardForkInitiation:
		pv, err := g.ProtocolVersion.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		return schema.SumEncode(uint64(g.Kind), []cbor.Value{pv}), nil
	case GovernanceActionNewConstitution:
		c, err := g.NewConstitution.ToCbor()
		if err != nil {
			return cbor.Value{}, err
		}
		return schema.SumEncode(uint64(g.Kind), []cbor.Value{c}), nil
	case GovernanceActionParameterChange, GovernanceActionTreasuryWithdrawals,
		GovernanceActionNoConfidence, GovernanceActionNewCommittee, GovernanceActionInfo:
		return schema.SumEncode(uint64(g.Kind), nil), nil
	default:
		return cbor.Value{}, ledgererr.New(ledgererr.StructuralMismatch, module, "unknown governance action kind")
	}
}

func GovernanceActionFromCbor(v cbor.Value) (GovernanceAction, error) {
	return schema.SumDecode(v, []schema.SumCase[GovernanceAction]{
		{Tag: uint64(GovernanceActionParameterChange), DecodeFields: noPayloadCase(GovernanceAction{Kind: GovernanceActionParameterChange})},
		{Tag: uint64(GovernanceActionHardForkInitiation), DecodeFields: func(f []cbor.Value) (GovernanceAction, error) {
			if len(f) != 1 {
				return GovernanceAction{}, ledgererr.New(ledgererr.StructuralMismatch, module, "hard-fork-initiation action expects one field")
			}
			pv, err := ProtocolVersionFromCbor(f[0])
			if err != nil {
				return GovernanceAction{}, err
			}
			return NewHardForkInitiationAction(pv), nil
		}},
		{Tag: uint64(GovernanceActionTreasuryWithdrawals), DecodeFields: noPayloadCase(GovernanceAction{Kind: GovernanceActionTreasuryWithdrawals})},
		{Tag: uint64(GovernanceActionNoConfidence), DecodeFields: noPayloadCase(GovernanceAction{Kind: GovernanceActionNoConfidence})},
		{Tag: uint64(GovernanceActionNewCommittee), DecodeFields: noPayloadCase(GovernanceAction{Kind: GovernanceActionNewCommittee})},
		{Tag: uint64(GovernanceActionNewConstitution), DecodeFields: func(f []cbor.Value) (GovernanceAction, error) {
			if len(f) != 1 {
				return GovernanceAction{}, ledgererr.New(ledgererr.StructuralMismatch, module, "new-constitution action expects one field")
			}
			c, err := ConstitutionFromCbor(f[0])
			if err != nil {
				return GovernanceAction{}, err
			}
			return NewNewConstitutionAction(c), nil
		}},
		{Tag: uint64(GovernanceActionInfo), DecodeFields: noPayloadCase(GovernanceAction{Kind: GovernanceActionInfo})},
	})
}

func noPayloadCase(result GovernanceAction) func([]cbor.Value) (GovernanceAction, error) {
	return func(f []cbor.Value) (GovernanceAction, error) {
		if len(f) != 0 {
			return GovernanceAction{}, ledgererr.New(ledgererr.StructuralMismatch, module, "governance action variant expects no fields")
		}
		return result, nil
	}
}

// ProposalProcedure is `[deposit, rewardAccount, governanceAction,
// anchor?]`.
type ProposalProcedure struct {
	Deposit         Coin
	RewardAccount   address.Address
	Action          GovernanceAction
	Anchor          *Anchor
}

func NewProposalProcedure(deposit Coin, rewardAccount address.Address, action GovernanceAction, anchor *Anchor) ProposalProcedure {
	return ProposalProcedure{Deposit: deposit, RewardAccount: rewardAccount, Action: action, Anchor: anchor}
}

func (p ProposalProcedure) ToCbor() (cbor.Value, error) {
	rewardVal, err := p.RewardAccount.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	actionVal, err := p.Action.ToCbor()
	if err != nil {
		return cbor.Value{}, err
	}
	anchorVal, err := schema.OptionEncode(p.Anchor, Anchor.ToCbor)
	if err != nil {
		return cbor.Value{}, err
	}
	return schema.TupleEncode(p.Deposit.ToCbor(), rewardVal, actionVal, anchorVal), nil
}

func ProposalProcedureFromCbor(v cbor.Value) (ProposalProcedure, error) {
	fields, err := schema.TupleDecode(v, 4)
	if err != nil {
		return ProposalProcedure{}, err
	}
	deposit, err := CoinFromCbor(fields[0])
	if err != nil {
		return ProposalProcedure{}, err
	}
	rewardAccount, err := address.FromCborValue(fields[1])
	if err != nil {
		return ProposalProcedure{}, err
	}
	action, err := GovernanceActionFromCbor(fields[2])
	if err != nil {
		return ProposalProcedure{}, err
	}
	anchor, err := schema.OptionDecode(fields[3], AnchorFromCbor)
	if err != nil {
		return ProposalProcedure{}, err
	}
	return NewProposalProcedure(deposit, rewardAccount, action, anchor), nil
}
