// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"sync"

	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// scopeState is one scope's session table, mirroring §3's "Scope state":
// a map plus the insertion order the eviction policy walks.
type scopeState struct {
	config     types.ScopeConfig
	hasConfig  bool
	sessions   map[uint32]*session.Session
	order      []uint32 // insertion order, oldest first
}

func newScopeState() *scopeState {
	return &scopeState{sessions: make(map[uint32]*session.Session)}
}

// Memory is the default in-memory Storage (§6 "the default implementation
// is an in-memory mapping"), guarded by a single mutex the way the
// teacher's poll.set guards its polls map — held only for the duration of
// the map access, never across a caller's later work.
type Memory struct {
	mu     sync.Mutex
	scopes map[types.ScopeID]*scopeState
}

// NewMemory constructs an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{scopes: make(map[types.ScopeID]*scopeState)}
}

func (m *Memory) scope(id types.ScopeID) *scopeState {
	s, ok := m.scopes[id]
	if !ok {
		s = newScopeState()
		m.scopes[id] = s
	}
	return s
}

func (m *Memory) SaveSession(_ context.Context, scope types.ScopeID, sess *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.scope(scope)
	id := sess.Proposal.ProposalID
	if _, exists := st.sessions[id]; !exists {
		st.order = append(st.order, id)
	}
	st.sessions[id] = sess
	return nil
}

func (m *Memory) GetSession(_ context.Context, scope types.ScopeID, proposalID uint32) (*session.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.scopes[scope]
	if !ok {
		return nil, false, nil
	}
	sess, ok := st.sessions[proposalID]
	return sess, ok, nil
}

// ListSessions returns the scope's sessions in insertion order, the order
// the eviction policy (§3) relies on to find the oldest session.
func (m *Memory) ListSessions(_ context.Context, scope types.ScopeID) ([]*session.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.scopes[scope]
	if !ok {
		return nil, nil
	}
	out := make([]*session.Session, 0, len(st.order))
	for _, id := range st.order {
		if sess, ok := st.sessions[id]; ok {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (m *Memory) RemoveSession(_ context.Context, scope types.ScopeID, proposalID uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.scopes[scope]
	if !ok {
		return nil
	}
	delete(st.sessions, proposalID)
	for i, id := range st.order {
		if id == proposalID {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) GetConfig(_ context.Context, scope types.ScopeID) (types.ScopeConfig, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.scopes[scope]
	if !ok || !st.hasConfig {
		return types.ScopeConfig{}, false, nil
	}
	return st.config, true, nil
}

func (m *Memory) PutConfig(_ context.Context, scope types.ScopeID, cfg types.ScopeConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.scope(scope)
	st.config = cfg
	st.hasConfig = true
	return nil
}
