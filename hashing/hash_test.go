// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/quorum/types"
)

func testProposal() *types.Proposal {
	now := time.Unix(1_700_000_000, 0).UTC()
	p := &types.Proposal{
		ProposalID:     1,
		Name:           "upgrade-network",
		Payload:        []byte("payload"),
		ExpectedVoters: 3,
		CreatedAt:      now,
		ExpiresAt:      now.Add(60 * time.Second),
		TieBreakYes:    true,
		Config:         types.FromScope(types.DefaultScopeConfig(), 3),
	}
	p.ProposalHash = ProposalHash(p)
	return p
}

func TestProposalHashDeterministic(t *testing.T) {
	require := require.New(t)

	p1 := testProposal()
	p2 := testProposal()
	require.Equal(ProposalHash(p1), ProposalHash(p2))
}

func TestProposalHashChangesWithField(t *testing.T) {
	require := require.New(t)

	p1 := testProposal()
	p2 := testProposal()
	p2.Name = "different-name"
	require.NotEqual(ProposalHash(p1), ProposalHash(p2))
}

func TestProposalHashChangesWithConfig(t *testing.T) {
	require := require.New(t)

	p1 := testProposal()
	p2 := testProposal()
	p2.Config.ConsensusThreshold = 0.99
	require.NotEqual(ProposalHash(p1), ProposalHash(p2))
}

func TestVoteIDDeterministicAndExcludesSignature(t *testing.T) {
	require := require.New(t)

	p := testProposal()
	now := p.CreatedAt.Add(time.Second)
	v1 := types.Vote{
		ProposalID:           p.ProposalID,
		Value:                true,
		Timestamp:            now,
		ParentHash:           types.ZeroHash,
		ReceivedProposalHash: p.ProposalHash,
		Signature:            []byte{1, 2, 3},
	}
	v2 := v1
	v2.Signature = []byte{9, 9, 9, 9}

	require.Equal(VoteID(&v1), VoteID(&v2))

	v3 := v1
	v3.Value = false
	require.NotEqual(VoteID(&v1), VoteID(&v3))
}
