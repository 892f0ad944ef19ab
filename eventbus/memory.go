// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package eventbus

import (
	"sync"

	"github.com/luxfi/log"

	noop "github.com/luxfi/quorum/internal/log"
	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// subscriberBuffer is the per-subscriber channel capacity. A publish that
// finds a full channel drops the event for that subscriber rather than
// blocking the publisher — best-effort delivery (§6).
const subscriberBuffer = 64

// Memory is the default in-memory EventBus.
type Memory struct {
	mu   sync.Mutex
	subs map[*memoryReceiver]struct{}
	log  log.Logger
}

// NewMemory constructs an in-memory event bus. A nil logger defaults to
// the package's no-op logger.
func NewMemory(logger log.Logger) *Memory {
	if logger == nil {
		logger = noop.New()
	}
	return &Memory{subs: make(map[*memoryReceiver]struct{}), log: logger}
}

type memoryReceiver struct {
	bus *Memory
	ch  chan ScopedEvent
}

func (r *memoryReceiver) C() <-chan ScopedEvent {
	return r.ch
}

func (r *memoryReceiver) Close() {
	r.bus.mu.Lock()
	defer r.bus.mu.Unlock()
	if _, ok := r.bus.subs[r]; ok {
		delete(r.bus.subs, r)
		close(r.ch)
	}
}

// Subscribe registers a new receiver.
func (m *Memory) Subscribe() Receiver {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := &memoryReceiver{bus: m, ch: make(chan ScopedEvent, subscriberBuffer)}
	m.subs[r] = struct{}{}
	return r
}

// Publish fans the event out to every live subscriber, non-blocking: a
// subscriber whose channel is full simply misses this event (§6).
func (m *Memory) Publish(scope types.ScopeID, evt session.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scoped := ScopedEvent{Scope: scope, Event: evt}
	for r := range m.subs {
		select {
		case r.ch <- scoped:
		default:
			m.log.Debug("dropping event for slow subscriber",
				log.Uint32("proposal_id", evt.ProposalID))
		}
	}
}
