// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package eventbus declares the event bus capability (§6): best-effort
// fan-out of terminal session events. A slow subscriber may miss events —
// this is documented, not a bug, the same tradeoff the teacher's own
// NotificationForwarder makes by cancelling and resubscribing rather than
// queuing unboundedly.
package eventbus

import (
	"github.com/luxfi/quorum/session"
	"github.com/luxfi/quorum/types"
)

// ScopedEvent pairs a terminal session.Event with the scope it happened
// in, since a single bus instance may back many scopes.
type ScopedEvent struct {
	Scope types.ScopeID
	Event session.Event
}

// Receiver is a best-effort delivery channel handed out by Subscribe.
type Receiver interface {
	C() <-chan ScopedEvent
	Close()
}

// EventBus is the engine's event fan-out capability (§6).
type EventBus interface {
	Subscribe() Receiver
	Publish(scope types.ScopeID, evt session.Event)
}
