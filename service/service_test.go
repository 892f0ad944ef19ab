// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/quorum/crypto"
	"github.com/luxfi/quorum/eventbus"
	"github.com/luxfi/quorum/storage"
	"github.com/luxfi/quorum/types"
)

func newTestService(t *testing.T) (*Service, types.ScopeID) {
	t.Helper()
	svc := New(storage.NewMemory(), eventbus.NewMemory(nil))
	scope := types.ScopeID("test-scope")
	require.NoError(t, svc.Scope(scope).MaxSessions(10).Initialize(context.Background()))
	return svc, scope
}

func TestScopeInitializeAndUpdate(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc := New(storage.NewMemory(), eventbus.NewMemory(nil))

	scope := types.ScopeID("s")
	require.ErrorIs(svc.Scope(scope).StrictConsensus().Update(ctx), ErrScopeNotInitialized)

	require.NoError(svc.Scope(scope).StrictConsensus().Initialize(ctx))
	require.ErrorIs(svc.Scope(scope).Initialize(ctx), ErrScopeAlreadyInitialized)

	require.NoError(svc.Scope(scope).FastConsensus().Update(ctx))
}

func TestCreateProposalAssignsMonotoneIDs(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	p1, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "a", ExpectedVoters: 3})
	require.NoError(err)
	require.Equal(uint32(1), p1.ProposalID)

	p2, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "b", ExpectedVoters: 3})
	require.NoError(err)
	require.Equal(uint32(2), p2.ProposalID)
}

func TestCreateProposalRequiresInitializedScope(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc := New(storage.NewMemory(), eventbus.NewMemory(nil))

	_, err := svc.CreateProposal(ctx, "never-initialized", CreateRequest{Name: "a", ExpectedVoters: 1})
	require.ErrorIs(err, ErrScopeNotInitialized)
}

func TestCreateProposalRejectsZeroExpectedVoters(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	_, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "a", ExpectedVoters: 0})
	require.ErrorIs(err, ErrInvalidRequest)
}

func TestCastVoteAndReachConsensus(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	p, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "a", ExpectedVoters: 3})
	require.NoError(err)

	a, err := crypto.GenerateSigner()
	require.NoError(err)
	b, err := crypto.GenerateSigner()
	require.NoError(err)

	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, a)
	require.NoError(err)

	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, b)
	require.NoError(err)

	status, err := svc.GetConsensusResult(ctx, scope, p.ProposalID)
	require.NoError(err)
	require.Equal(types.StatusConsensusReached, status.Kind)
	require.True(status.Result)
}

func TestCastVoteUnknownProposal(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	signer, err := crypto.GenerateSigner()
	require.NoError(err)

	_, err = svc.CastVote(ctx, scope, 999, true, signer)
	require.ErrorIs(err, ErrUnknownProposal)
}

func TestCastVoteRejectsDoubleVote(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	p, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "a", ExpectedVoters: 5})
	require.NoError(err)

	signer, err := crypto.GenerateSigner()
	require.NoError(err)

	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, signer)
	require.NoError(err)

	_, err = svc.CastVote(ctx, scope, p.ProposalID, false, signer)
	require.Error(err)
}

func TestProcessIncomingProposalIdempotentAndConflict(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	p, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "a", ExpectedVoters: 3})
	require.NoError(err)

	require.NoError(svc.ProcessIncomingProposal(ctx, scope, p))

	conflicting := p
	conflicting.ProposalHash[0] ^= 0xff
	require.ErrorIs(svc.ProcessIncomingProposal(ctx, scope, conflicting), ErrProposalConflict)
}

func TestHasSufficientVotesForProposal(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	p, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "a", ExpectedVoters: 5})
	require.NoError(err)

	ok, err := svc.HasSufficientVotesForProposal(ctx, scope, p.ProposalID)
	require.NoError(err)
	require.False(ok)

	signer, err := crypto.GenerateSigner()
	require.NoError(err)
	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, signer)
	require.NoError(err)

	signer2, err := crypto.GenerateSigner()
	require.NoError(err)
	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, signer2)
	require.NoError(err)

	signer3, err := crypto.GenerateSigner()
	require.NoError(err)
	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, signer3)
	require.NoError(err)

	// required = ceil(2/3 * 5) = 4; three votes are still insufficient.
	ok, err = svc.HasSufficientVotesForProposal(ctx, scope, p.ProposalID)
	require.NoError(err)
	require.False(ok)

	signer4, err := crypto.GenerateSigner()
	require.NoError(err)
	_, err = svc.CastVote(ctx, scope, p.ProposalID, true, signer4)
	require.NoError(err)

	ok, err = svc.HasSufficientVotesForProposal(ctx, scope, p.ProposalID)
	require.NoError(err)
	require.True(ok)
}

func TestGetActiveAndReachedProposals(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	active, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "active", ExpectedVoters: 5})
	require.NoError(err)

	decided, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "decided", ExpectedVoters: 1})
	require.NoError(err)

	signer, err := crypto.GenerateSigner()
	require.NoError(err)
	_, err = svc.CastVote(ctx, scope, decided.ProposalID, true, signer)
	require.NoError(err)

	activeList, err := svc.GetActiveProposals(ctx, scope)
	require.NoError(err)
	require.Len(activeList, 1)
	require.Equal(active.ProposalID, activeList[0].ProposalID)

	reachedList, err := svc.GetReachedProposals(ctx, scope)
	require.NoError(err)
	require.Len(reachedList, 1)
	require.Equal(decided.ProposalID, reachedList[0].ProposalID)
}

func TestGetScopeStats(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc, scope := newTestService(t)

	_, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "active", ExpectedVoters: 5})
	require.NoError(err)

	decided, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "decided", ExpectedVoters: 1})
	require.NoError(err)
	signer, err := crypto.GenerateSigner()
	require.NoError(err)
	_, err = svc.CastVote(ctx, scope, decided.ProposalID, true, signer)
	require.NoError(err)

	stats, err := svc.GetScopeStats(ctx, scope)
	require.NoError(err)
	require.Equal(1, stats.Active)
	require.Equal(1, stats.ConsensusReached)
	require.Equal(0, stats.Failed)
}

// TestEviction mirrors scenario S8: max_sessions=2, two Active sessions
// exist; creating a third evicts the older Active session (no non-Active
// available).
func TestEviction(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	svc := New(storage.NewMemory(), eventbus.NewMemory(nil))
	scope := types.ScopeID("s8")
	require.NoError(svc.Scope(scope).MaxSessions(2).Initialize(ctx))

	p1, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "first", ExpectedVoters: 5})
	require.NoError(err)
	_, err = svc.CreateProposal(ctx, scope, CreateRequest{Name: "second", ExpectedVoters: 5})
	require.NoError(err)

	third, err := svc.CreateProposal(ctx, scope, CreateRequest{Name: "third", ExpectedVoters: 5})
	require.NoError(err)

	_, err = svc.GetConsensusResult(ctx, scope, p1.ProposalID)
	require.ErrorIs(err, ErrUnknownProposal) // evicted

	_, err = svc.GetConsensusResult(ctx, scope, third.ProposalID)
	require.NoError(err)

	active, err := svc.GetActiveProposals(ctx, scope)
	require.NoError(err)
	require.Len(active, 2)
}
