// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "time"

// Proposal is a binary question bound to a scope, identified by a
// monotone per-scope id and a content hash (§3).
type Proposal struct {
	ProposalID     uint32
	Name           string
	Payload        []byte
	OwnerAddress   Address
	ExpectedVoters uint32
	CreatedAt      time.Time
	ExpiresAt      time.Time
	TieBreakYes    bool
	Config         ConsensusConfig
	ProposalHash   Hash
}

// Expired reports whether the proposal's deadline has passed as of t.
func (p *Proposal) Expired(t time.Time) bool {
	return !t.Before(p.ExpiresAt)
}
