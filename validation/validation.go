// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validation implements the structural, cryptographic and
// hash-chain checks of §4.2. Validation never mutates a session: callers
// (session.AcceptVote, service operations) decide what to do with the
// returned error.
package validation

import (
	"errors"

	"github.com/luxfi/quorum/crypto"
	"github.com/luxfi/quorum/hashing"
	"github.com/luxfi/quorum/types"
)

// Sentinel error kinds (§7). Each is returned as-is — the taxonomy is
// small and closed, so a plain sentinel beats a custom error struct here.
var (
	ErrInvalidProposal = errors.New("validation: invalid proposal")
	ErrInvalidVote     = errors.New("validation: invalid vote")
	ErrChainBroken     = errors.New("validation: vote chain broken")
	ErrSignatureError  = errors.New("validation: signature verification failed")
)

// ValidateProposal performs the structural checks of §4.2.
func ValidateProposal(p *types.Proposal) error {
	if p.ExpectedVoters == 0 {
		return ErrInvalidProposal
	}
	if !p.ExpiresAt.After(p.CreatedAt) {
		return ErrInvalidProposal
	}
	// owner_address is a fixed [20]byte array: the "length != 20" check
	// from the abstract spec is satisfied unconditionally by the type.
	if hashing.ProposalHash(p) != p.ProposalHash {
		return ErrInvalidProposal
	}
	if err := p.Config.ValidateRoundCap(p.ExpectedVoters); err != nil {
		return ErrInvalidProposal
	}
	return nil
}

// ValidateVote performs the structural, chain-agnostic checks of §4.2:
// proposal binding, hash determinism, signature, and deadline.
func ValidateVote(v *types.Vote, p *types.Proposal, verifier crypto.Verifier) error {
	if v.ProposalID != p.ProposalID {
		return ErrInvalidVote
	}
	if v.ReceivedProposalHash != p.ProposalHash {
		return ErrInvalidVote
	}
	if hashing.VoteID(v) != v.VoteID {
		return ErrInvalidVote
	}
	recovered, err := verifier.Recover(v.VoteID, v.Signature)
	if err != nil || recovered != v.VoterAddress {
		return ErrSignatureError
	}
	if v.Timestamp.After(p.ExpiresAt) {
		return ErrInvalidVote
	}
	return nil
}

// ChainLink is the minimal view of prior per-voter history validate_vote_chain
// needs: the vote_id of that voter's previously accepted vote, if any.
type ChainLink struct {
	HasPrevious bool
	PreviousID  types.Hash
}

// ValidateVoteChain implements validate_vote_chain (§4.2): a previous
// vote's parent_hash must chain to it, or, absent one, must be the zero
// hash.
func ValidateVoteChain(link ChainLink, v *types.Vote) error {
	if link.HasPrevious {
		if v.ParentHash != link.PreviousID {
			return ErrChainBroken
		}
		return nil
	}
	if v.ParentHash != types.ZeroHash {
		return ErrChainBroken
	}
	return nil
}
