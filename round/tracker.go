// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package round implements the per-session round counter and its two
// advance rules (§4.3): a fixed 2-round broadcast for Gossipsub, and a
// dynamic per-vote counter, capped, for P2P.
package round

import "github.com/luxfi/quorum/types"

// Tracker is a session's bounded round counter. Zero value is not usable;
// construct with New.
type Tracker struct {
	network types.NetworkType
	cap     uint32
	current uint32
}

// New builds a Tracker initialized to round 0 (§4.3).
func New(network types.NetworkType, roundCap uint32) *Tracker {
	return &Tracker{network: network, cap: roundCap}
}

// Current returns current_round.
func (t *Tracker) Current() uint32 {
	return t.current
}

// Cap returns round_cap.
func (t *Tracker) Cap() uint32 {
	return t.cap
}

// OnVoteAccepted advances the counter for one newly accepted vote,
// honoring the network type's rule, and reports whether the counter is at
// the cap after this vote, including when it was already there (relevant
// only to P2P: Gossipsub never fails on round exhaustion, it is bounded by
// construction).
func (t *Tracker) OnVoteAccepted() (capReached bool) {
	switch t.network {
	case types.Gossipsub:
		// Fixed two rounds: the proposal itself is round 1, the first
		// accepted vote moves straight into the aggregation round, 2.
		// No further advance past that (§4.3).
		if t.current == 0 {
			t.current = 2
		}
		return false
	default: // P2P
		if t.current < t.cap {
			t.current++
		}
		return t.current >= t.cap
	}
}
