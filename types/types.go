// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the data model shared by every layer of the
// consensus engine: scopes, proposals, votes, sessions and their status.
package types

import (
	"encoding/hex"
	"time"

	"github.com/luxfi/ids"
)

// Hash is the 32-byte canonical identifier of a proposal or a vote.
// Reuses the teacher's own Hash = ids.ID aliasing convention so hashes can
// flow through any luxfi/ids-aware tooling without a conversion step.
type Hash = ids.ID

// ZeroHash is the distinguished root of a voter's vote chain.
var ZeroHash Hash

// Address is a 20-byte account address recovered from a vote signature.
type Address [20]byte

// String renders the address as a 0x-prefixed hex string.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether the address is the zero value.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Signature is an opaque, recoverable signature over a 32-byte digest.
type Signature []byte

// ScopeID is an opaque, stable grouping identifier (e.g. a gossip topic).
type ScopeID string

// NetworkType selects the transport regime a scope's sessions run under.
type NetworkType uint8

const (
	// Gossipsub is the fixed 2-round broadcast regime.
	Gossipsub NetworkType = iota
	// P2P is the dynamic, per-vote round-advance regime.
	P2P
)

// String implements fmt.Stringer, matching the teacher's pervasive
// (x X) String() string convention on small enums (choices.Status).
func (n NetworkType) String() string {
	switch n {
	case Gossipsub:
		return "Gossipsub"
	case P2P:
		return "P2P"
	default:
		return "Unknown"
	}
}

// SessionStatusKind distinguishes the three states a session can be in.
type SessionStatusKind uint8

const (
	// StatusActive is the only state votes can be appended in.
	StatusActive SessionStatusKind = iota
	// StatusConsensusReached is terminal; Result holds the decision.
	StatusConsensusReached
	// StatusFailed is terminal; Reason holds the failure kind.
	StatusFailed
)

func (k SessionStatusKind) String() string {
	switch k {
	case StatusActive:
		return "Active"
	case StatusConsensusReached:
		return "ConsensusReached"
	case StatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// FailureReason enumerates the ways a session can terminate without a
// decision.
type FailureReason uint8

const (
	// ReasonNone is the zero value; only meaningful alongside StatusFailed.
	ReasonNone FailureReason = iota
	// ReasonTimeout: the deadline passed without sufficient votes and
	// liveness did not salvage a decision.
	ReasonTimeout
	// ReasonRoundCapExhausted: the P2P round cap was reached undecided.
	ReasonRoundCapExhausted
)

func (r FailureReason) String() string {
	switch r {
	case ReasonTimeout:
		return "Timeout"
	case ReasonRoundCapExhausted:
		return "RoundCapExhausted"
	default:
		return "None"
	}
}

// SessionStatus is the sum-typed state of a ConsensusSession (§3, §4.5).
type SessionStatus struct {
	Kind   SessionStatusKind
	Result bool          // valid iff Kind == StatusConsensusReached
	Reason FailureReason // valid iff Kind == StatusFailed
}

// Active constructs the initial session status.
func Active() SessionStatus {
	return SessionStatus{Kind: StatusActive}
}

// Reached constructs a ConsensusReached status.
func Reached(result bool) SessionStatus {
	return SessionStatus{Kind: StatusConsensusReached, Result: result}
}

// Failed constructs a Failed status with the given reason.
func Failed(reason FailureReason) SessionStatus {
	return SessionStatus{Kind: StatusFailed, Reason: reason}
}

// IsTerminal reports whether no further votes may be appended.
func (s SessionStatus) IsTerminal() bool {
	return s.Kind != StatusActive
}

func (s SessionStatus) String() string {
	switch s.Kind {
	case StatusConsensusReached:
		if s.Result {
			return "ConsensusReached(YES)"
		}
		return "ConsensusReached(NO)"
	case StatusFailed:
		return "Failed(" + s.Reason.String() + ")"
	default:
		return "Active"
	}
}

// Now returns the current wall-clock time. It is the engine's single
// indirection point for "now" — timer/clock sources are an external
// collaborator per §1, but a Go library without one concrete caller-
// supplied clock still needs a single call site to swap in tests.
func Now() time.Time {
	return time.Now()
}

