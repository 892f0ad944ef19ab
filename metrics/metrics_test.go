// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersAllCollectors(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SessionsCreated.Inc()
	m.VotesAccepted.Inc()
	m.VotesRejected.WithLabelValues("double_vote").Inc()
	m.DecisionsReached.WithLabelValues("yes").Inc()
	m.SessionsFailed.WithLabelValues("Timeout").Inc()
	m.SessionsEvicted.Inc()
	m.ActiveSessions.Set(3)

	families, err := reg.Gather()
	require.NoError(err)
	require.NotEmpty(families)
}

func TestNewToleratesNilRegisterer(t *testing.T) {
	require := require.New(t)
	require.NotPanics(func() {
		New(nil)
	})
}
