// Copyright 2013-2016 Adam Presley. All rights reserved
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package mailparse

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parse is instrumented unconditionally: parse durations and S/MIME
// outcomes are recorded regardless of whether anyone scrapes /metrics.
var (
	metricParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mailparse_parse_duration_seconds",
			Help:    "Time spent parsing a single raw message.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	metricSmimeOutcome = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mailparse_smime_total",
			Help: "Outcomes of S/MIME evaluation during parsing, by property.",
		},
		[]string{"property"},
	)
)

func observeParseDuration(start time.Time) {
	metricParseDuration.Observe(time.Since(start).Seconds())
}

func observeSmimeOutcome(msg *ParsedMessage) {
	if msg.SmimeSigned {
		metricSmimeOutcome.WithLabelValues("signed").Inc()
	}
	if msg.SmimeEncryptedEnvelope {
		metricSmimeOutcome.WithLabelValues("encrypted").Inc()
	}
	if msg.SmimeTripleWrapped {
		metricSmimeOutcome.WithLabelValues("triple_wrapped").Inc()
	}
}
