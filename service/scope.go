// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"context"

	"github.com/luxfi/quorum/types"
)

// ScopeBuilder accumulates a ScopeConfig for a single scope before it is
// committed with Initialize or Update, the way the teacher's own config
// builders chain setters ahead of a final Apply/Build call.
type ScopeBuilder struct {
	service *Service
	scope   types.ScopeID
	cfg     types.ScopeConfig
}

// Scope starts building the configuration for scope id, seeded with the
// documented defaults (§3).
func (s *Service) Scope(id types.ScopeID) *ScopeBuilder {
	return &ScopeBuilder{
		service: s,
		scope:   id,
		cfg:     types.DefaultScopeConfig(),
	}
}

// NetworkType overrides the scope's transport regime.
func (b *ScopeBuilder) NetworkType(n types.NetworkType) *ScopeBuilder {
	b.cfg.NetworkType = n
	return b
}

// ConsensusThreshold overrides the scope's decision fraction.
func (b *ScopeBuilder) ConsensusThreshold(t float64) *ScopeBuilder {
	b.cfg.ConsensusThreshold = t
	return b
}

// TimeoutSeconds overrides the scope's per-proposal deadline.
func (b *ScopeBuilder) TimeoutSeconds(seconds uint32) *ScopeBuilder {
	b.cfg.TimeoutSeconds = seconds
	return b
}

// LivenessCriteriaYes toggles the §4.4 step 4 partial-turnout branch.
func (b *ScopeBuilder) LivenessCriteriaYes(enabled bool) *ScopeBuilder {
	b.cfg.LivenessCriteriaYes = enabled
	return b
}

// MaxSessions overrides the scope's bound on concurrent sessions.
func (b *ScopeBuilder) MaxSessions(n int) *ScopeBuilder {
	b.cfg.MaxSessions = n
	return b
}

// StrictConsensus applies the "strict_consensus" preset (t=0.9).
func (b *ScopeBuilder) StrictConsensus() *ScopeBuilder {
	types.StrictConsensus(&b.cfg)
	return b
}

// FastConsensus applies the "fast_consensus" preset (t=0.6, timeout=30s).
func (b *ScopeBuilder) FastConsensus() *ScopeBuilder {
	types.FastConsensus(&b.cfg)
	return b
}

// Initialize implements initialize_scope (§4.6): creates a scope's
// configuration, failing if one already exists.
func (b *ScopeBuilder) Initialize(ctx context.Context) error {
	if err := b.cfg.Validate(); err != nil {
		return err
	}

	rt := b.service.runtime(b.scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	_, ok, err := b.service.storage.GetConfig(ctx, b.scope)
	if err != nil {
		return wrapStorageErr(err)
	}
	if ok {
		return ErrScopeAlreadyInitialized
	}

	return wrapStorageErr(b.service.storage.PutConfig(ctx, b.scope, b.cfg))
}

// Update implements update_scope_config (§4.6): replaces an existing
// scope's configuration, failing if the scope was never initialized. Only
// proposals created after the update observe the new defaults (§3) —
// sessions already in flight keep the ConsensusConfig captured at their
// own creation time.
func (b *ScopeBuilder) Update(ctx context.Context) error {
	if err := b.cfg.Validate(); err != nil {
		return err
	}

	rt := b.service.runtime(b.scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	_, ok, err := b.service.storage.GetConfig(ctx, b.scope)
	if err != nil {
		return wrapStorageErr(err)
	}
	if !ok {
		return ErrScopeNotInitialized
	}

	return wrapStorageErr(b.service.storage.PutConfig(ctx, b.scope, b.cfg))
}
