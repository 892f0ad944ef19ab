// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package threshold evaluates YES/NO/undecided from a session's current
// votes (§4.4). Decision evaluation never fails (§7): it always returns an
// Outcome, possibly VerdictUndecided.
package threshold

import "math"

// Verdict is the three-way result of one evaluation pass.
type Verdict uint8

const (
	// VerdictUndecided: neither sufficiency nor a liveness-salvaged
	// deadline decision applies yet.
	VerdictUndecided Verdict = iota
	// VerdictDecided: Outcome.Result carries the YES/NO value.
	VerdictDecided
	// VerdictTimeout: the deadline passed, liveness did not salvage a
	// decision; the session should transition to Failed(Timeout).
	VerdictTimeout
)

// Outcome is the result of one Evaluate call.
type Outcome struct {
	Verdict Verdict
	Result  bool // valid iff Verdict == VerdictDecided
}

// Tally is the minimal vote count view Evaluate needs — how many votes
// are YES vs NO. Callers (session.AcceptVote) derive it from their
// accepted-vote bag; threshold stays agnostic of how votes are stored.
type Tally struct {
	Yes int
	No  int
}

// Total returns the number of counted votes.
func (t Tally) Total() int {
	return t.Yes + t.No
}

// RequiredVotes returns ceil(threshold * expectedVoters), the minimum vote
// count for count-based sufficiency (§4.4 step 2).
func RequiredVotes(threshold float64, expectedVoters uint32) int {
	return int(math.Ceil(threshold * float64(expectedVoters)))
}

// Evaluate implements §4.4 steps 1-5.
func Evaluate(tally Tally, expectedVoters uint32, threshold float64, tieBreakYes, livenessYes, deadlinePassed bool) Outcome {
	required := RequiredVotes(threshold, expectedVoters)
	sufficient := tally.Total() >= required

	if sufficient {
		switch {
		case tally.Yes > tally.No:
			return Outcome{Verdict: VerdictDecided, Result: true}
		case tally.No > tally.Yes:
			return Outcome{Verdict: VerdictDecided, Result: false}
		default:
			return Outcome{Verdict: VerdictDecided, Result: tieBreakYes}
		}
	}

	if deadlinePassed {
		if livenessYes && tally.Yes >= required {
			return Outcome{Verdict: VerdictDecided, Result: true}
		}
		if livenessYes && tally.No >= required {
			return Outcome{Verdict: VerdictDecided, Result: false}
		}
		return Outcome{Verdict: VerdictTimeout}
	}

	return Outcome{Verdict: VerdictUndecided}
}
