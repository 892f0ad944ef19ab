// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics wraps the Service's prometheus collectors behind a
// small constructor, the way the teacher's metrics.NewMetrics(reg) and
// poll.NewSet(factory, log, registerer) both take a prometheus.Registerer
// rather than reaching for the global default registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every collector the Service updates.
type Metrics struct {
	SessionsCreated  prometheus.Counter
	VotesAccepted    prometheus.Counter
	VotesRejected    *prometheus.CounterVec // labeled by rejection reason
	DecisionsReached *prometheus.CounterVec // labeled by result (yes/no)
	SessionsFailed   *prometheus.CounterVec // labeled by failure reason
	SessionsEvicted  prometheus.Counter
	ActiveSessions   prometheus.Gauge
}

// New registers and returns the Service's collectors. A nil registerer is
// valid — New then uses a private registry, matching the teacher's
// pattern of tolerating a nil prometheus.Registerer in test wiring.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "sessions_created_total",
			Help:      "Number of consensus sessions created.",
		}),
		VotesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "votes_accepted_total",
			Help:      "Number of votes appended to a session.",
		}),
		VotesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "votes_rejected_total",
			Help:      "Number of votes rejected, labeled by reason.",
		}, []string{"reason"}),
		DecisionsReached: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "decisions_reached_total",
			Help:      "Number of sessions that reached consensus, labeled by result.",
		}, []string{"result"}),
		SessionsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "sessions_failed_total",
			Help:      "Number of sessions that failed, labeled by reason.",
		}, []string{"reason"}),
		SessionsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quorum",
			Name:      "sessions_evicted_total",
			Help:      "Number of sessions evicted under capacity pressure.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quorum",
			Name:      "active_sessions",
			Help:      "Current number of Active sessions across all scopes.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.SessionsCreated, m.VotesAccepted, m.VotesRejected,
		m.DecisionsReached, m.SessionsFailed, m.SessionsEvicted, m.ActiveSessions,
	} {
		_ = reg.Register(c) // duplicate registration is a caller bug, not fatal here
	}

	return m
}
