// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"time"

	"github.com/luxfi/quorum/types"
)

// EventKind distinguishes the two terminal events a session can emit.
type EventKind uint8

const (
	// EventConsensusReached carries the decided YES/NO result.
	EventConsensusReached EventKind = iota
	// EventConsensusFailed carries the failure reason.
	EventConsensusFailed
)

// Event is the terminal notification a Session hands to its owner for
// publication (§4.5, §6). A session emits at most one (invariant 9).
type Event struct {
	Kind       EventKind
	ProposalID uint32
	Result     bool
	Reason     types.FailureReason
	Timestamp  time.Time
}
