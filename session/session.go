// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package session implements ConsensusSession, the per-proposal state
// machine of §3 and §4.5: it owns a Proposal, its accumulated Votes, a
// round.Tracker, and a SessionStatus, and is the sole place votes are
// appended, deduplicated and chain-validated.
package session

import (
	"time"

	"github.com/luxfi/math/set"

	"github.com/luxfi/quorum/crypto"
	"github.com/luxfi/quorum/round"
	"github.com/luxfi/quorum/threshold"
	"github.com/luxfi/quorum/types"
	"github.com/luxfi/quorum/validation"
)

// Session is the per-proposal state machine (§3 ConsensusSession).
// Not safe for concurrent use by multiple goroutines without an external
// lock — the owning Service serializes per-proposal_id operations (§5).
type Session struct {
	Proposal types.Proposal
	Votes    []types.Vote
	// votersSeen is §3's "voters_seen: set of addresses" verbatim, using
	// the teacher's own set.Set[T] the way engine/core/interfaces.go uses
	// set.Set[ids.NodeID] for request/gossip recipient sets.
	votersSeen   set.Set[types.Address]
	voterIndex   map[types.Address]int // voter -> index into Votes; set.Set can't serve this lookup
	voteIDsSeen  set.Set[types.Hash]
	round        *round.Tracker
	Status       types.SessionStatus
	LastActivity time.Time
	pending      *Event
}

// New creates a session for a freshly created or first-observed proposal,
// with current_round = 0 and no votes (§3 lifecycles).
func New(p types.Proposal, now time.Time) *Session {
	return &Session{
		Proposal:     p,
		votersSeen:   set.NewSet[types.Address](int(p.ExpectedVoters)),
		voterIndex:   make(map[types.Address]int),
		voteIDsSeen:  set.NewSet[types.Hash](0),
		round:        round.New(p.Config.NetworkType, p.Config.RoundCap),
		Status:       types.Active(),
		LastActivity: now,
	}
}

// CurrentRound exposes the round tracker's counter (§4.3, §8 invariant 5).
func (s *Session) CurrentRound() uint32 {
	return s.round.Current()
}

// RoundCap exposes the round tracker's cap.
func (s *Session) RoundCap() uint32 {
	return s.round.Cap()
}

// TakePendingEvent returns and clears any event not yet handed to the
// event bus, so a cancelled publish step can be retried by the next
// touching operation without losing or duplicating it (§5, §8 invariant 9).
func (s *Session) TakePendingEvent() *Event {
	e := s.pending
	s.pending = nil
	return e
}

// previousVote returns the voter's last accepted vote, if any.
func (s *Session) previousVote(addr types.Address) (types.Vote, bool) {
	if !s.votersSeen.Contains(addr) {
		return types.Vote{}, false
	}
	idx, ok := s.voterIndex[addr]
	if !ok {
		return types.Vote{}, false
	}
	return s.Votes[idx], true
}

// PreviousVoteID returns the voter's last accepted vote_id, or
// types.ZeroHash if the voter has no accepted vote yet — exactly the
// parent_hash cast_vote (§4.6) must stamp on a newly cast vote.
func (s *Session) PreviousVoteID(addr types.Address) types.Hash {
	if prev, ok := s.previousVote(addr); ok {
		return prev.VoteID
	}
	return types.ZeroHash
}

// Tally exposes the session's current YES/NO vote counts for read-only
// accessors (Service.HasSufficientVotesForProposal) without leaking the
// internal vote-storage representation.
func (s *Session) Tally() threshold.Tally {
	return s.tally()
}

// AcceptVote runs the full §4.2 ingestion path for one incoming vote:
// dedup, terminal-session rejection, double-vote rejection, structural
// and chain validation, append, round advance, and decision evaluation
// (§4.4, §4.5).
//
// Returns (appended, err). appended is false both for an idempotent
// duplicate and for a rejected vote; callers distinguish the two by err.
func (s *Session) AcceptVote(v types.Vote, verifier crypto.Verifier, now time.Time) (appended bool, err error) {
	if s.voteIDsSeen.Contains(v.VoteID) {
		return false, nil // idempotent success, no mutation (§4.2, §8 invariant 8)
	}

	if s.Status.IsTerminal() {
		return false, ErrSessionClosed
	}

	if prev, ok := s.previousVote(v.VoterAddress); ok && prev.VoteID != v.VoteID {
		return false, ErrDoubleVote
	}

	if err := validation.ValidateVote(&v, &s.Proposal, verifier); err != nil {
		return false, err
	}

	link := validation.ChainLink{}
	if prev, ok := s.previousVote(v.VoterAddress); ok {
		link = validation.ChainLink{HasPrevious: true, PreviousID: prev.VoteID}
	}
	if err := validation.ValidateVoteChain(link, &v); err != nil {
		return false, err
	}

	s.Votes = append(s.Votes, v)
	s.voterIndex[v.VoterAddress] = len(s.Votes) - 1
	s.votersSeen.Add(v.VoterAddress)
	s.voteIDsSeen.Add(v.VoteID)
	s.LastActivity = now

	capReached := s.round.OnVoteAccepted()
	s.evaluate(now, capReached)
	return true, nil
}

// tally counts the session's currently accepted votes.
func (s *Session) tally() threshold.Tally {
	var t threshold.Tally
	for _, v := range s.Votes {
		if v.Value {
			t.Yes++
		} else {
			t.No++
		}
	}
	return t
}

// EvaluateDeadline re-runs decision evaluation for the deadline timer tick
// scheduled at Proposal.ExpiresAt (§4.4, §5). It is a no-op on a terminal
// session.
func (s *Session) EvaluateDeadline(now time.Time) {
	if s.Status.IsTerminal() {
		return
	}
	s.evaluate(now, false)
}

// evaluate implements the transition table of §4.5 driven by threshold
// Evaluate. Decision takes priority over round-cap exhaustion: a vote that
// both decides the proposal and reaches the round cap still finalizes as a
// decision, not a RoundCapExhausted failure.
func (s *Session) evaluate(now time.Time, capReached bool) {
	cfg := s.Proposal.Config
	outcome := threshold.Evaluate(
		s.tally(),
		s.Proposal.ExpectedVoters,
		cfg.ConsensusThreshold,
		s.Proposal.TieBreakYes,
		cfg.LivenessCriteriaYes,
		!now.Before(s.Proposal.ExpiresAt),
	)

	switch outcome.Verdict {
	case threshold.VerdictDecided:
		s.Status = types.Reached(outcome.Result)
		s.pending = &Event{
			Kind:       EventConsensusReached,
			ProposalID: s.Proposal.ProposalID,
			Result:     outcome.Result,
			Timestamp:  now,
		}
	case threshold.VerdictTimeout:
		s.fail(types.ReasonTimeout, now)
	default: // VerdictUndecided
		if capReached {
			s.fail(types.ReasonRoundCapExhausted, now)
		}
	}
}

func (s *Session) fail(reason types.FailureReason, now time.Time) {
	s.Status = types.Failed(reason)
	s.pending = &Event{
		Kind:       EventConsensusFailed,
		ProposalID: s.Proposal.ProposalID,
		Reason:     reason,
		Timestamp:  now,
	}
}
