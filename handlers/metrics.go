// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	countSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "stockcount",
		Name:      "count_submissions_total",
		Help:      "Count submission attempts by outcome.",
	}, []string{"outcome"})

	countDiscrepancies = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "stockcount",
		Name:      "count_discrepant_lines",
		Help:      "Discrepant lines per recorded count.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
)

// Submission outcome labels
const (
	outcomeSubmitted  = "submitted"
	outcomeAwaiting   = "awaiting_confirmation"
	outcomeIncomplete = "incomplete"
	outcomeFailed     = "storage_unavailable"
)
