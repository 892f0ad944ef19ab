// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressString(t *testing.T) {
	var a Address
	a[0] = 0xde
	a[1] = 0xad
	require.True(t, len(a.String()) > 2)
	require.Equal(t, "0x", a.String()[:2])
	require.True(t, Address{}.IsZero())
	require.False(t, a.IsZero())
}

func TestNetworkTypeString(t *testing.T) {
	require.Equal(t, "Gossipsub", Gossipsub.String())
	require.Equal(t, "P2P", P2P.String())
	require.Equal(t, "Unknown", NetworkType(99).String())
}

func TestSessionStatusConstructorsAndTerminal(t *testing.T) {
	require := require.New(t)

	active := Active()
	require.False(active.IsTerminal())
	require.Equal("Active", active.String())

	reached := Reached(true)
	require.True(reached.IsTerminal())
	require.Equal("ConsensusReached(YES)", reached.String())

	reached = Reached(false)
	require.Equal("ConsensusReached(NO)", reached.String())

	failed := Failed(ReasonTimeout)
	require.True(failed.IsTerminal())
	require.Equal("Failed(Timeout)", failed.String())
}

func TestFailureReasonString(t *testing.T) {
	require.Equal(t, "None", ReasonNone.String())
	require.Equal(t, "Timeout", ReasonTimeout.String())
	require.Equal(t, "RoundCapExhausted", ReasonRoundCapExhausted.String())
}
