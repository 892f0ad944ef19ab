// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"math"

	"github.com/luxfi/crypto"

	"github.com/luxfi/quorum/types"
)

// H is the engine's collision-resistant 32-byte hash (§4.1). Keccak256 is
// the hash primitive the rest of the retrieval pack reaches for whenever
// it needs a content digest over arbitrary byte strings (see the
// crypto.Keccak256 calls building a merkle root in the pack's op-stack
// integration example) — reused here rather than rolled by hand.
func H(parts ...[]byte) types.Hash {
	digest := crypto.Keccak256(parts...)
	var h types.Hash
	copy(h[:], digest)
	return h
}

func encodeConfig(c types.ConsensusConfig) []byte {
	e := newEncoder()
	e.u8(uint8(c.NetworkType)).
		u64(math.Float64bits(c.ConsensusThreshold)).
		u32(c.TimeoutSeconds).
		boolean(c.LivenessCriteriaYes).
		u32(uint32(c.MaxSessions)).
		u32(c.RoundCap)
	return e.buf
}

// ProposalHash recomputes proposal_hash over every field except the hash
// itself (§4.1):
//
//	H(name, payload, owner_address, expected_voters, created_at,
//	  expires_at, tie_break_yes, serialized(config))
func ProposalHash(p *types.Proposal) types.Hash {
	e := newEncoder()
	e.str(p.Name).
		bytes(p.Payload).
		bytes(p.OwnerAddress[:]).
		u32(p.ExpectedVoters).
		i64(p.CreatedAt.UnixNano()).
		i64(p.ExpiresAt.UnixNano()).
		boolean(p.TieBreakYes).
		bytes(encodeConfig(p.Config))
	return H(e.buf)
}

// VoteID recomputes vote_id over every field except the signature (§4.1):
//
//	H(proposal_id, voter_address, value, timestamp, parent_hash,
//	  received_proposal_hash)
func VoteID(v *types.Vote) types.Hash {
	e := newEncoder()
	e.u32(v.ProposalID).
		bytes(v.VoterAddress[:]).
		boolean(v.Value).
		i64(v.Timestamp.UnixNano()).
		bytes(v.ParentHash[:]).
		bytes(v.ReceivedProposalHash[:])
	return H(e.buf)
}
