// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire implements the on-the-wire serialization of Proposal and
// Vote (§6: "any network transport ... is out of scope", but the byte
// layout a transport would carry is this package's concern). It is
// deliberately distinct from hashing's canonical hash-input encoding:
// hashing/encode.go fixes the exact bytes that go into proposal_hash and
// vote_id, while this package only has to round-trip a value across a
// wire, the way the teacher's pb/validatorstate messages do over gRPC.
//
// Encoding uses protowire directly rather than generated .pb.go structs:
// both Proposal and Vote are plain Go structs already, so hand-rolling
// field numbers over protowire's tag/varint/bytes primitives gives a
// byte-exact, self-describing wire format without introducing a second,
// generated copy of the data model.
package wire

import (
	"errors"
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/luxfi/quorum/types"
)

// ErrMalformed is returned when a wire-format buffer cannot be decoded
// into a Proposal or a Vote.
var ErrMalformed = errors.New("wire: malformed message")

const (
	fieldVoteID               = 1
	fieldVoteProposalID       = 2
	fieldVoteVoterAddress     = 3
	fieldVoteValue            = 4
	fieldVoteTimestamp        = 5
	fieldVoteParentHash       = 6
	fieldVoteReceivedPropHash = 7
	fieldVoteSignature        = 8
)

// MarshalVote encodes a Vote into its wire form.
func MarshalVote(v *types.Vote) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldVoteID, protowire.BytesType)
	b = protowire.AppendBytes(b, v.VoteID[:])
	b = protowire.AppendTag(b, fieldVoteProposalID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.ProposalID))
	b = protowire.AppendTag(b, fieldVoteVoterAddress, protowire.BytesType)
	b = protowire.AppendBytes(b, v.VoterAddress[:])
	b = protowire.AppendTag(b, fieldVoteValue, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(v.Value))
	b = protowire.AppendTag(b, fieldVoteTimestamp, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.Timestamp.UnixNano()))
	b = protowire.AppendTag(b, fieldVoteParentHash, protowire.BytesType)
	b = protowire.AppendBytes(b, v.ParentHash[:])
	b = protowire.AppendTag(b, fieldVoteReceivedPropHash, protowire.BytesType)
	b = protowire.AppendBytes(b, v.ReceivedProposalHash[:])
	b = protowire.AppendTag(b, fieldVoteSignature, protowire.BytesType)
	b = protowire.AppendBytes(b, v.Signature)
	return b
}

// UnmarshalVote decodes a wire-format Vote. Unknown fields are skipped;
// a truncated field, or a known field with the wrong wire type, is
// rejected with ErrMalformed.
func UnmarshalVote(b []byte) (types.Vote, error) {
	var v types.Vote
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return types.Vote{}, ErrMalformed
		}
		b = b[n:]

		switch num {
		case fieldVoteID:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			copy(v.VoteID[:], raw)
			b = b[m:]
		case fieldVoteProposalID:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			v.ProposalID = uint32(val)
			b = b[m:]
		case fieldVoteVoterAddress:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			copy(v.VoterAddress[:], raw)
			b = b[m:]
		case fieldVoteValue:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			v.Value = val != 0
			b = b[m:]
		case fieldVoteTimestamp:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			v.Timestamp = time.Unix(0, int64(val)).UTC()
			b = b[m:]
		case fieldVoteParentHash:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			copy(v.ParentHash[:], raw)
			b = b[m:]
		case fieldVoteReceivedPropHash:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			copy(v.ReceivedProposalHash[:], raw)
			b = b[m:]
		case fieldVoteSignature:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			v.Signature = append(types.Signature(nil), raw...)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return types.Vote{}, ErrMalformed
			}
			b = b[m:]
		}
	}
	return v, nil
}

const (
	fieldProposalID             = 1
	fieldProposalName           = 2
	fieldProposalPayload        = 3
	fieldProposalOwnerAddress   = 4
	fieldProposalExpectedVoters = 5
	fieldProposalCreatedAt      = 6
	fieldProposalExpiresAt      = 7
	fieldProposalTieBreakYes    = 8
	fieldProposalConfig         = 9
	fieldProposalHash           = 10
)

const (
	fieldConfigNetworkType = 1
	fieldConfigThreshold   = 2
	fieldConfigTimeout     = 3
	fieldConfigLiveness    = 4
	fieldConfigMaxSessions = 5
	fieldConfigRoundCap    = 6
)

// MarshalProposal encodes a Proposal into its wire form.
func MarshalProposal(p *types.Proposal) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldProposalID, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.ProposalID))
	b = protowire.AppendTag(b, fieldProposalName, protowire.BytesType)
	b = protowire.AppendString(b, p.Name)
	b = protowire.AppendTag(b, fieldProposalPayload, protowire.BytesType)
	b = protowire.AppendBytes(b, p.Payload)
	b = protowire.AppendTag(b, fieldProposalOwnerAddress, protowire.BytesType)
	b = protowire.AppendBytes(b, p.OwnerAddress[:])
	b = protowire.AppendTag(b, fieldProposalExpectedVoters, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.ExpectedVoters))
	b = protowire.AppendTag(b, fieldProposalCreatedAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.CreatedAt.UnixNano()))
	b = protowire.AppendTag(b, fieldProposalExpiresAt, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.ExpiresAt.UnixNano()))
	b = protowire.AppendTag(b, fieldProposalTieBreakYes, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(p.TieBreakYes))
	b = protowire.AppendTag(b, fieldProposalConfig, protowire.BytesType)
	b = protowire.AppendBytes(b, marshalConfig(p.Config))
	b = protowire.AppendTag(b, fieldProposalHash, protowire.BytesType)
	b = protowire.AppendBytes(b, p.ProposalHash[:])
	return b
}

// UnmarshalProposal decodes a wire-format Proposal.
func UnmarshalProposal(b []byte) (types.Proposal, error) {
	var p types.Proposal
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return types.Proposal{}, ErrMalformed
		}
		b = b[n:]

		switch num {
		case fieldProposalID:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.ProposalID = uint32(val)
			b = b[m:]
		case fieldProposalName:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.Name = string(raw)
			b = b[m:]
		case fieldProposalPayload:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.Payload = append([]byte(nil), raw...)
			b = b[m:]
		case fieldProposalOwnerAddress:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			copy(p.OwnerAddress[:], raw)
			b = b[m:]
		case fieldProposalExpectedVoters:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.ExpectedVoters = uint32(val)
			b = b[m:]
		case fieldProposalCreatedAt:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.CreatedAt = time.Unix(0, int64(val)).UTC()
			b = b[m:]
		case fieldProposalExpiresAt:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.ExpiresAt = time.Unix(0, int64(val)).UTC()
			b = b[m:]
		case fieldProposalTieBreakYes:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			p.TieBreakYes = val != 0
			b = b[m:]
		case fieldProposalConfig:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			cfg, err := unmarshalConfig(raw)
			if err != nil {
				return types.Proposal{}, err
			}
			p.Config = cfg
			b = b[m:]
		case fieldProposalHash:
			raw, m := consumeBytes(b, typ)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			copy(p.ProposalHash[:], raw)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return types.Proposal{}, ErrMalformed
			}
			b = b[m:]
		}
	}
	return p, nil
}

func marshalConfig(c types.ConsensusConfig) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldConfigNetworkType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.NetworkType))
	b = protowire.AppendTag(b, fieldConfigThreshold, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, doubleBits(c.ConsensusThreshold))
	b = protowire.AppendTag(b, fieldConfigTimeout, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.TimeoutSeconds))
	b = protowire.AppendTag(b, fieldConfigLiveness, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(c.LivenessCriteriaYes))
	b = protowire.AppendTag(b, fieldConfigMaxSessions, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.MaxSessions))
	b = protowire.AppendTag(b, fieldConfigRoundCap, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(c.RoundCap))
	return b
}

func unmarshalConfig(b []byte) (types.ConsensusConfig, error) {
	var c types.ConsensusConfig
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return types.ConsensusConfig{}, ErrMalformed
		}
		b = b[n:]

		switch num {
		case fieldConfigNetworkType:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			c.NetworkType = types.NetworkType(val)
			b = b[m:]
		case fieldConfigThreshold:
			val, m := protowire.ConsumeFixed64(b)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			c.ConsensusThreshold = bitsToDouble(val)
			b = b[m:]
		case fieldConfigTimeout:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			c.TimeoutSeconds = uint32(val)
			b = b[m:]
		case fieldConfigLiveness:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			c.LivenessCriteriaYes = val != 0
			b = b[m:]
		case fieldConfigMaxSessions:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			c.MaxSessions = int(val)
			b = b[m:]
		case fieldConfigRoundCap:
			val, m := consumeVarint(b, typ)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			c.RoundCap = uint32(val)
			b = b[m:]
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return types.ConsensusConfig{}, ErrMalformed
			}
			b = b[m:]
		}
	}
	return c, nil
}

func consumeVarint(b []byte, typ protowire.Type) (uint64, int) {
	if typ != protowire.VarintType {
		return 0, -1
	}
	return protowire.ConsumeVarint(b)
}

func consumeBytes(b []byte, typ protowire.Type) ([]byte, int) {
	if typ != protowire.BytesType {
		return nil, -1
	}
	return protowire.ConsumeBytes(b)
}

func boolToVarint(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

func doubleBits(f float64) uint64  { return math.Float64bits(f) }
func bitsToDouble(u uint64) float64 { return math.Float64frombits(u) }
