// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"context"

	"github.com/luxfi/log"

	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// evictIfNeeded implements the §3 eviction policy: when a new session
// would exceed max_sessions, evict the oldest non-Active session first;
// if none, evict the oldest Active session. Eviction publishes no event.
// Must be called while holding the scope's runtime lock, before the new
// session is persisted.
func (s *Service) evictIfNeeded(ctx context.Context, scope types.ScopeID, maxSessions int) error {
	existing, err := s.storage.ListSessions(ctx, scope)
	if err != nil {
		return wrapStorageErr(err)
	}
	if len(existing) < maxSessions {
		return nil
	}

	victim := oldestEvictable(existing)
	if victim == nil {
		return nil
	}
	if err := s.storage.RemoveSession(ctx, scope, victim.Proposal.ProposalID); err != nil {
		return wrapStorageErr(err)
	}
	s.runtime(scope).lastEviction = types.Now()
	s.metrics.SessionsEvicted.Inc()
	if !victim.Status.IsTerminal() {
		s.metrics.ActiveSessions.Dec()
	}
	s.log.Debug("evicted session", log.Uint32("proposal_id", victim.Proposal.ProposalID))
	return nil
}

// oldestEvictable picks the oldest non-Active session in insertion order,
// falling back to the oldest session overall (necessarily Active, since a
// non-Active one would have been picked first) if every session is Active.
func oldestEvictable(sessions []*session.Session) *session.Session {
	for _, sess := range sessions {
		if sess.Status.IsTerminal() {
			return sess
		}
	}
	if len(sessions) > 0 {
		return sessions[0]
	}
	return nil
}
