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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/cardano-ledger/address"
)

func mustScriptDataHash(t *testing.T, b byte) ScriptDataHash {
	t.Helper()
	h, err := NewScriptDataHash(bytes.Repeat([]byte{b}, 32))
	require.NoError(t, err)
	return h
}

func TestAnchorRoundTrip(t *testing.T) {
	a := NewAnchor("https://example.com/anchor.json", mustScriptDataHash(t, 1))
	v, err := a.ToCbor()
	require.NoError(t, err)

	back, err := AnchorFromCbor(v)
	require.NoError(t, err)
	require.Equal(t, a.Url, back.Url)
	require.True(t, back.DataHash.Equal(a.DataHash))
}

func TestConstitutionWithAndWithoutGuardrail(t *testing.T) {
	anchor := NewAnchor("https://example.com/constitution", mustScriptDataHash(t, 2))
	guardrail, err := NewScriptHash(bytes.Repeat([]byte{3}, 28))
	require.NoError(t, err)

	withGuardrail := NewConstitution(anchor, &guardrail)
	v, err := withGuardrail.ToCbor()
	require.NoError(t, err)
	back, err := ConstitutionFromCbor(v)
	require.NoError(t, err)
	require.NotNil(t, back.GuardrailScript)
	require.True(t, back.GuardrailScript.Equal(guardrail))

	withoutGuardrail := NewConstitution(anchor, nil)
	v2, err := withoutGuardrail.ToCbor()
	require.NoError(t, err)
	back2, err := ConstitutionFromCbor(v2)
	require.NoError(t, err)
	require.Nil(t, back2.GuardrailScript)
}

func TestGovernanceActionHardForkInitiationRoundTrip(t *testing.T) {
	action := NewHardForkInitiationAction(NewProtocolVersion(10, 0))
	v, err := action.ToCbor()
	require.NoError(t, err)

	back, err := GovernanceActionFromCbor(v)
	require.NoError(t, err)
	require.Equal(t, GovernanceActionHardForkInitiation, back.Kind)
	require.Equal(t, action.ProtocolVersion, back.ProtocolVersion)
}

func TestGovernanceActionParameterlessVariantsRoundTrip(t *testing.T) {
	for _, action := range []GovernanceAction{
		NewNoConfidenceAction(),
		NewInfoAction(),
	} {
		v, err := action.ToCbor()
		require.NoError(t, err)
		back, err := GovernanceActionFromCbor(v)
		require.NoError(t, err)
		require.Equal(t, action.Kind, back.Kind)
	}
}

func TestProposalProcedureRoundTrip(t *testing.T) {
	stake := bytes.Repeat([]byte{9}, 28)
	rewardAccount, err := address.NewRewardAddress(address.Mainnet, stake, false)
	require.NoError(t, err)
	anchor := NewAnchor("https://example.com/proposal.json", mustScriptDataHash(t, 4))
	action := NewNoConfidenceAction()
	proposal := NewProposalProcedure(Coin(5_000_000), rewardAccount, action, &anchor)

	v, err := proposal.ToCbor()
	require.NoError(t, err)
	back, err := ProposalProcedureFromCbor(v)
	require.NoError(t, err)
	require.Equal(t, proposal.Deposit, back.Deposit)
	require.True(t, back.RewardAccount.Equal(proposal.RewardAccount))
	require.Equal(t, action.Kind, back.Action.Kind)
	require.NotNil(t, back.Anchor)
	require.Equal(t, anchor.Url, back.Anchor.Url)

	withoutAnchor := NewProposalProcedure(Coin(1), rewardAccount, action, nil)
	v2, err := withoutAnchor.ToCbor()
	require.NoError(t, err)
	back2, err := ProposalProcedureFromCbor(v2)
	require.NoError(t, err)
	require.Nil(t, back2.Anchor)
}
