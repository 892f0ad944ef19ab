// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package service implements the Service orchestrator of §4.6: per-scope
// session creation and lookup, vote ingestion, eviction, configuration
// inheritance and event publication. It is the only place that knows
// about all three external capabilities (Storage, EventBus, Signer
// capability boundary) at once — everything below it is a closed set of
// pure state machines.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/luxfi/log"

	"github.com/luxfi/quorum/crypto"
	"github.com/luxfi/quorum/eventbus"
	noop "github.com/luxfi/quorum/internal/log"
	"github.com/luxfi/quorum/metrics"
	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/storage"
	"github.com/luxfi/quorum/types"
)

// scopeRuntime is the Service-local, non-persisted half of §3's "Scope
// state": the proposal id counter and the mutex serializing operations
// within one scope (§5). ScopeConfig and the session table themselves
// live behind Storage so they can be backed by something other than this
// process's memory. lastEviction backs GetScopeStats and is zero until the
// scope's first eviction.
type scopeRuntime struct {
	mu             sync.Mutex
	nextProposalID uint32
	lastEviction   time.Time
}

// Service is the engine's orchestrator (§4.6).
type Service struct {
	storage  storage.Storage
	bus      eventbus.EventBus
	verifier crypto.Verifier
	log      log.Logger
	metrics  *metrics.Metrics

	runtimesMu sync.Mutex
	runtimes   map[types.ScopeID]*scopeRuntime
}

// Option configures a Service at construction time.
type Option func(*Service)

// WithLogger overrides the default no-op logger.
func WithLogger(l log.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithVerifier overrides the default secp256k1 Verifier.
func WithVerifier(v crypto.Verifier) Option {
	return func(s *Service) { s.verifier = v }
}

// WithMetrics overrides the default (self-registering) metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs a Service over the given Storage and EventBus
// capabilities (§6). Both are required; everything else has a default.
func New(store storage.Storage, bus eventbus.EventBus, opts ...Option) *Service {
	s := &Service{
		storage:  store,
		bus:      bus,
		verifier: crypto.DefaultVerifier{},
		log:      noop.New(),
		metrics:  metrics.New(nil),
		runtimes: make(map[types.ScopeID]*scopeRuntime),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) runtime(scope types.ScopeID) *scopeRuntime {
	s.runtimesMu.Lock()
	defer s.runtimesMu.Unlock()

	rt, ok := s.runtimes[scope]
	if !ok {
		rt = &scopeRuntime{}
		s.runtimes[scope] = rt
	}
	return rt
}

// loadScopeConfig fetches a scope's ScopeConfig, the way every mutating
// operation needs to before it can build or validate a ConsensusConfig.
func (s *Service) loadScopeConfig(ctx context.Context, scope types.ScopeID) (types.ScopeConfig, error) {
	cfg, ok, err := s.storage.GetConfig(ctx, scope)
	if err != nil {
		return types.ScopeConfig{}, wrapStorageErr(err)
	}
	if !ok {
		return types.ScopeConfig{}, ErrScopeNotInitialized
	}
	return cfg, nil
}

func wrapStorageErr(err error) error {
	if err == nil {
		return nil
	}
	return storage.ErrStorage
}

// publishPending hands off a session's pending terminal event, if any, to
// the event bus and clears it — called after every operation that may
// have transitioned a session (§5 event publication happens after state
// transition and persistence).
func (s *Service) publishPending(scope types.ScopeID, sess *session.Session) {
	evt := sess.TakePendingEvent()
	if evt == nil {
		return
	}
	s.bus.Publish(scope, *evt)
	switch evt.Kind {
	case session.EventConsensusReached:
		result := "no"
		if evt.Result {
			result = "yes"
		}
		s.metrics.DecisionsReached.WithLabelValues(result).Inc()
	case session.EventConsensusFailed:
		s.metrics.SessionsFailed.WithLabelValues(evt.Reason.String()).Inc()
	}
}
