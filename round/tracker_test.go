// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package round

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/quorum/types"
)

func TestGossipsubJumpsToTwoOnFirstVote(t *testing.T) {
	require := require.New(t)

	tr := New(types.Gossipsub, 2)
	require.Equal(uint32(0), tr.Current())

	capReached := tr.OnVoteAccepted()
	require.False(capReached)
	require.Equal(uint32(2), tr.Current())

	capReached = tr.OnVoteAccepted()
	require.False(capReached)
	require.Equal(uint32(2), tr.Current())
}

func TestP2PAdvancesPerVoteAndCaps(t *testing.T) {
	require := require.New(t)

	tr := New(types.P2P, 3)
	require.Equal(uint32(3), tr.Cap())

	require.False(tr.OnVoteAccepted())
	require.Equal(uint32(1), tr.Current())

	require.False(tr.OnVoteAccepted())
	require.Equal(uint32(2), tr.Current())

	require.True(tr.OnVoteAccepted())
	require.Equal(uint32(3), tr.Current())

	// further votes never exceed the cap
	require.True(tr.OnVoteAccepted())
	require.Equal(uint32(3), tr.Current())
}
