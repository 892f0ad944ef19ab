// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "time"

// Vote is a signed YES/NO statement by one voter on a proposal, linked to
// that voter's previous vote by ParentHash and to the proposal by
// ReceivedProposalHash (§3, GLOSSARY "Hashgraph link").
type Vote struct {
	VoteID               Hash
	ProposalID           uint32
	VoterAddress         Address
	Value                bool
	Timestamp            time.Time
	ParentHash           Hash
	ReceivedProposalHash Hash
	Signature            Signature
}
