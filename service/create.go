// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"context"

	"github.com/luxfi/log"

	"github.com/luxfi/quorum/hashing"
	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
	"github.com/luxfi/quorum/validation"
)

// CreateRequest is the caller-supplied half of a new Proposal; the
// Service fills in ProposalID, CreatedAt/ExpiresAt, Config and
// ProposalHash.
type CreateRequest struct {
	Name           string
	Payload        []byte
	OwnerAddress   types.Address
	ExpectedVoters uint32
	TieBreakYes    bool
	// ConfigOverride, if non-nil, replaces the scope's inherited
	// ConsensusConfig wholesale (§3 "ConsensusConfig (per proposal,
	// optional override)").
	ConfigOverride *types.ConsensusConfig
}

// CreateProposal implements create_proposal (§4.6): assigns the next
// proposal_id, computes proposal_hash, constructs an Active session with
// round 0 and no votes, enforces max_sessions via eviction, persists, and
// returns the Proposal.
func (s *Service) CreateProposal(ctx context.Context, scope types.ScopeID, req CreateRequest) (types.Proposal, error) {
	scopeCfg, err := s.loadScopeConfig(ctx, scope)
	if err != nil {
		return types.Proposal{}, err
	}
	if req.ExpectedVoters == 0 {
		return types.Proposal{}, ErrInvalidRequest
	}

	rt := s.runtime(scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	now := types.Now()
	cfg := types.FromScope(scopeCfg, req.ExpectedVoters)
	if req.ConfigOverride != nil {
		cfg = *req.ConfigOverride
	}

	rt.nextProposalID++
	p := types.Proposal{
		ProposalID:     rt.nextProposalID,
		Name:           req.Name,
		Payload:        req.Payload,
		OwnerAddress:   req.OwnerAddress,
		ExpectedVoters: req.ExpectedVoters,
		CreatedAt:      now,
		ExpiresAt:      now.Add(secondsToDuration(scopeCfg.TimeoutSeconds)),
		TieBreakYes:    req.TieBreakYes,
		Config:         cfg,
	}
	p.ProposalHash = hashing.ProposalHash(&p)

	if err := validation.ValidateProposal(&p); err != nil {
		rt.nextProposalID-- // the id was never observably committed
		return types.Proposal{}, ErrInvalidRequest
	}

	if err := s.evictIfNeeded(ctx, scope, scopeCfg.MaxSessions); err != nil {
		return types.Proposal{}, err
	}

	sess := session.New(p, now)
	if err := s.storage.SaveSession(ctx, scope, sess); err != nil {
		return types.Proposal{}, wrapStorageErr(err)
	}

	s.metrics.SessionsCreated.Inc()
	s.metrics.ActiveSessions.Inc()
	s.log.Debug("created proposal", log.Uint32("proposal_id", p.ProposalID))
	return p, nil
}

// ProcessIncomingProposal implements process_incoming_proposal (§4.6): a
// network-delivered proposal is idempotent if already known with a
// matching hash, conflicts if known with a different hash, and otherwise
// is validated and seated as a new session (subject to eviction).
func (s *Service) ProcessIncomingProposal(ctx context.Context, scope types.ScopeID, p types.Proposal) error {
	scopeCfg, err := s.loadScopeConfig(ctx, scope)
	if err != nil {
		return err
	}

	rt := s.runtime(scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	existing, found, err := s.storage.GetSession(ctx, scope, p.ProposalID)
	if err != nil {
		return wrapStorageErr(err)
	}
	if found {
		if existing.Proposal.ProposalHash == p.ProposalHash {
			return nil // idempotent (§8 invariant 8)
		}
		return ErrProposalConflict
	}

	if err := validation.ValidateProposal(&p); err != nil {
		return validation.ErrInvalidProposal
	}

	if err := s.evictIfNeeded(ctx, scope, scopeCfg.MaxSessions); err != nil {
		return err
	}

	sess := session.New(p, types.Now())
	if err := s.storage.SaveSession(ctx, scope, sess); err != nil {
		return wrapStorageErr(err)
	}

	s.metrics.SessionsCreated.Inc()
	s.metrics.ActiveSessions.Inc()
	return nil
}
