// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"context"

	"github.com/luxfi/log"

	"github.com/luxfi/quorum/crypto"
	"github.com/luxfi/quorum/hashing"
	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// CastVote implements cast_vote (§4.6): loads the session, derives
// parent_hash from the signer's own last accepted vote, stamps the
// current time, computes vote_id, signs, and appends through the same
// §4.2 ingestion path process_incoming_vote uses.
func (s *Service) CastVote(ctx context.Context, scope types.ScopeID, proposalID uint32, value bool, signer crypto.Signer) (types.Vote, error) {
	rt := s.runtime(scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	sess, found, err := s.storage.GetSession(ctx, scope, proposalID)
	if err != nil {
		return types.Vote{}, wrapStorageErr(err)
	}
	if !found {
		return types.Vote{}, ErrUnknownProposal
	}
	if sess.Status.IsTerminal() {
		return types.Vote{}, session.ErrSessionClosed
	}

	now := types.Now()
	v := types.Vote{
		ProposalID:           proposalID,
		VoterAddress:         signer.Address(),
		Value:                value,
		Timestamp:            now,
		ParentHash:           sess.PreviousVoteID(signer.Address()),
		ReceivedProposalHash: sess.Proposal.ProposalHash,
	}
	v.VoteID = hashing.VoteID(&v)

	sig, err := signer.Sign(v.VoteID)
	if err != nil {
		return types.Vote{}, err
	}
	v.Signature = sig

	if _, err := sess.AcceptVote(v, s.verifier, now); err != nil {
		return types.Vote{}, err
	}

	if err := s.storage.SaveSession(ctx, scope, sess); err != nil {
		return types.Vote{}, wrapStorageErr(err)
	}
	s.publishPending(scope, sess)
	s.updateActiveGauge(sess)
	s.metrics.VotesAccepted.Inc()
	s.log.Debug("cast vote", log.Uint32("proposal_id", proposalID))
	return v, nil
}

// ProcessIncomingVote implements process_incoming_vote (§4.6): validates,
// appends, advances the round and evaluates the decision; idempotent on
// an already-seen vote_id.
func (s *Service) ProcessIncomingVote(ctx context.Context, scope types.ScopeID, v types.Vote) error {
	rt := s.runtime(scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	sess, found, err := s.storage.GetSession(ctx, scope, v.ProposalID)
	if err != nil {
		return wrapStorageErr(err)
	}
	if !found {
		return ErrUnknownProposal
	}

	appended, err := sess.AcceptVote(v, s.verifier, types.Now())
	if err != nil {
		s.metrics.VotesRejected.WithLabelValues(rejectionLabel(err)).Inc()
		return err
	}
	if !appended {
		return nil // idempotent duplicate (§8 invariant 8)
	}

	if err := s.storage.SaveSession(ctx, scope, sess); err != nil {
		return wrapStorageErr(err)
	}
	s.publishPending(scope, sess)
	s.updateActiveGauge(sess)
	s.metrics.VotesAccepted.Inc()
	return nil
}

func (s *Service) updateActiveGauge(sess *session.Session) {
	if sess.Status.IsTerminal() {
		s.metrics.ActiveSessions.Dec()
	}
}

func rejectionLabel(err error) string {
	switch err {
	case session.ErrSessionClosed:
		return "session_closed"
	case session.ErrDoubleVote:
		return "double_vote"
	default:
		return "invalid"
	}
}
