// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package threshold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiredVotes(t *testing.T) {
	require := require.New(t)

	require.Equal(2, RequiredVotes(2.0/3.0, 3))
	require.Equal(2, RequiredVotes(0.5, 4))
	require.Equal(3, RequiredVotes(0.6, 5))
}

func TestEvaluateDecidesOnMajority(t *testing.T) {
	require := require.New(t)

	o := Evaluate(Tally{Yes: 3, No: 0}, 3, 2.0/3.0, false, true, false)
	require.Equal(VerdictDecided, o.Verdict)
	require.True(o.Result)
}

func TestEvaluateTieBreak(t *testing.T) {
	require := require.New(t)

	o := Evaluate(Tally{Yes: 2, No: 2}, 4, 0.5, true, true, false)
	require.Equal(VerdictDecided, o.Verdict)
	require.True(o.Result)

	o = Evaluate(Tally{Yes: 2, No: 2}, 4, 0.5, false, true, false)
	require.Equal(VerdictDecided, o.Verdict)
	require.False(o.Result)
}

func TestEvaluateUndecidedBeforeDeadline(t *testing.T) {
	require := require.New(t)

	o := Evaluate(Tally{Yes: 1, No: 0}, 5, 0.6, false, true, false)
	require.Equal(VerdictUndecided, o.Verdict)
}

func TestEvaluateTimeoutWithoutLiveness(t *testing.T) {
	require := require.New(t)

	o := Evaluate(Tally{Yes: 2, No: 0}, 5, 0.6, false, false, true)
	require.Equal(VerdictTimeout, o.Verdict)
}

func TestEvaluateTimeoutWithLivenessButInsufficientAbsoluteCount(t *testing.T) {
	require := require.New(t)

	o := Evaluate(Tally{Yes: 2, No: 0}, 5, 0.6, false, true, true)
	require.Equal(VerdictTimeout, o.Verdict)
}
