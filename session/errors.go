// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import "errors"

// Sentinel errors owned by the session state machine (§7).
var (
	// ErrSessionClosed: the session is no longer Active (§4.5 terminal row).
	ErrSessionClosed = errors.New("session: closed")
	// ErrDoubleVote: a second, distinct vote from a voter who already has
	// an accepted vote (§4.2 duplicate policy, §8 invariant 1).
	ErrDoubleVote = errors.New("session: double vote")
)
