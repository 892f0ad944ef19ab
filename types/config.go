// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"errors"
	"math"
)

// Sentinel configuration errors, grouped the way the teacher's
// parameters.go groups ErrInvalidK / ErrInvalidAlpha / ErrInvalidBeta.
var (
	ErrInvalidThreshold   = errors.New("consensus_threshold must be in (0, 1]")
	ErrInvalidTimeout     = errors.New("timeout_seconds must be >= 1")
	ErrInvalidMaxSessions = errors.New("max_sessions must be >= 1")
	ErrInvalidRoundCap    = errors.New("round_cap does not match network type rule")
	ErrInvalidExpectedVoters = errors.New("expected_voters must be >= 1")
)

// ScopeConfig holds the per-scope defaults applied to proposals created
// without an explicit ConsensusConfig override (§3).
type ScopeConfig struct {
	NetworkType         NetworkType
	ConsensusThreshold  float64
	TimeoutSeconds      uint32
	LivenessCriteriaYes bool
	MaxSessions         int
}

// DefaultScopeConfig returns the spec's documented defaults: Gossipsub,
// 2/3 threshold, 60s timeout, liveness on, 10 sessions.
func DefaultScopeConfig() ScopeConfig {
	return ScopeConfig{
		NetworkType:         Gossipsub,
		ConsensusThreshold:  2.0 / 3.0,
		TimeoutSeconds:      60,
		LivenessCriteriaYes: true,
		MaxSessions:         10,
	}
}

// Validate clamps threshold and timeout to valid ranges and rejects
// max_sessions < 1, matching "threshold and timeout are clamped to valid
// ranges at construction" (§3).
func (c *ScopeConfig) Validate() error {
	if c.ConsensusThreshold <= 0 {
		c.ConsensusThreshold = math.SmallestNonzeroFloat64
	}
	if c.ConsensusThreshold > 1 {
		c.ConsensusThreshold = 1
	}
	if c.TimeoutSeconds < 1 {
		c.TimeoutSeconds = 1
	}
	if c.MaxSessions < 1 {
		return ErrInvalidMaxSessions
	}
	return nil
}

// ConsensusConfig is the per-proposal override of a ScopeConfig, adding
// the round cap (§3).
type ConsensusConfig struct {
	NetworkType         NetworkType
	ConsensusThreshold  float64
	TimeoutSeconds      uint32
	LivenessCriteriaYes bool
	MaxSessions         int
	RoundCap            uint32
}

// RoundCapFor computes the round cap rule for a network type given the
// number of expected voters (§3): 2 for Gossipsub, ceil(2n/3) (min 1) for
// P2P.
func RoundCapFor(network NetworkType, expectedVoters uint32) uint32 {
	if network == Gossipsub {
		return 2
	}
	cap := uint32(math.Ceil(2 * float64(expectedVoters) / 3))
	if cap < 1 {
		cap = 1
	}
	return cap
}

// FromScope builds a ConsensusConfig from a ScopeConfig and the proposal's
// expected voter count, applying the round-cap rule for the scope's
// network type.
func FromScope(scope ScopeConfig, expectedVoters uint32) ConsensusConfig {
	return ConsensusConfig{
		NetworkType:         scope.NetworkType,
		ConsensusThreshold:  scope.ConsensusThreshold,
		TimeoutSeconds:      scope.TimeoutSeconds,
		LivenessCriteriaYes: scope.LivenessCriteriaYes,
		MaxSessions:         scope.MaxSessions,
		RoundCap:            RoundCapFor(scope.NetworkType, expectedVoters),
	}
}

// ValidateRoundCap checks the embedded round_cap against the network
// type's rule, used by validation.ValidateProposal (§4.2).
func (c ConsensusConfig) ValidateRoundCap(expectedVoters uint32) error {
	if c.RoundCap != RoundCapFor(c.NetworkType, expectedVoters) {
		return ErrInvalidRoundCap
	}
	return nil
}

// StrictConsensus is the "strict_consensus" preset (t=0.9), applied by the
// scope builder before finalization (§4.6).
func StrictConsensus(c *ScopeConfig) {
	c.ConsensusThreshold = 0.9
}

// FastConsensus is the "fast_consensus" preset (t=0.6, timeout=30s).
func FastConsensus(c *ScopeConfig) {
	c.ConsensusThreshold = 0.6
	c.TimeoutSeconds = 30
}
