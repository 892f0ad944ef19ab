// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"context"
	"time"

	"github.com/luxfi/quorum/types"
)

// ScopeStats is a typed snapshot of a scope's session table, mirroring the
// teacher's preference for small typed accessors (chainState.Stage,
// .Preference, .Finalized) over an untyped map of counters.
type ScopeStats struct {
	Active           int
	ConsensusReached int
	Failed           int
	LastEviction     time.Time
}

// GetScopeStats implements get_scope_stats (§4.6): tallies every session
// currently on record for scope by terminal status, running the same
// deadline branch the other read accessors do so counts reflect sessions
// whose clock has already run out.
func (s *Service) GetScopeStats(ctx context.Context, scope types.ScopeID) (ScopeStats, error) {
	rt := s.runtime(scope)
	rt.mu.Lock()
	defer rt.mu.Unlock()

	sessions, err := s.storage.ListSessions(ctx, scope)
	if err != nil {
		return ScopeStats{}, wrapStorageErr(err)
	}

	stats := ScopeStats{LastEviction: rt.lastEviction}
	for _, sess := range sessions {
		if err := s.evaluateDeadlineAndPersist(ctx, scope, sess); err != nil {
			return ScopeStats{}, err
		}
		switch sess.Status.Kind {
		case types.StatusActive:
			stats.Active++
		case types.StatusConsensusReached:
			stats.ConsensusReached++
		case types.StatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}
