/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import "github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"

var (
	evaluationsReceived = metrics.CounterOpts{
		Namespace:  "gateway",
		Name:       "evaluations_received",
		Help:       "The number of transaction evaluations received.",
		LabelNames: []string{"chaincode", "Fcn"},
	}
	evaluationsFailed = metrics.CounterOpts{
		Namespace:  "gateway",
		Name:       "evaluations_failed",
		Help:       "The number of transaction evaluations that failed (timeouts excluded).",
		LabelNames: []string{"chaincode", "Fcn", "fail"},
	}
	evaluationTimeouts = metrics.CounterOpts{
		Namespace:  "gateway",
		Name:       "evaluation_timeouts",
		Help:       "The number of transaction evaluations that have failed due to time out.",
		LabelNames: []string{"chaincode", "Fcn", "fail"},
	}
	evaluationDuration = metrics.HistogramOpts{
		Namespace:  "gateway",
		Name:       "evaluation_duration",
		Help:       "The time to complete a transaction evaluation.",
		LabelNames: []string{"chaincode", "Fcn"},
	}
	submissionsReceived = metrics.CounterOpts{
		Namespace:  "gateway",
		Name:       "submissions_received",
		Help:       "The number of transaction submissions received.",
		LabelNames: []string{"chaincode", "Fcn"},
	}
	submissionsFailed = metrics.CounterOpts{
		Namespace:  "gateway",
		Name:       "submissions_failed",
		Help:       "The number of transaction submissions that failed (timeouts excluded).",
		LabelNames: []string{"chaincode", "Fcn", "fail"},
	}
	submissionTimeouts = metrics.CounterOpts{
		Namespace:  "gateway",
		Name:       "submission_timeouts",
		Help:       "The number of transaction submissions that have failed due to time out.",
		LabelNames: []string{"chaincode", "Fcn", "fail"},
	}
	submissionDuration = metrics.HistogramOpts{
		Namespace:  "gateway",
		Name:       "submission_duration",
		Help:       "The time to complete a transaction submission.",
		LabelNames: []string{"chaincode", "Fcn"},
	}
	inflightInvocations = metrics.GaugeOpts{
		Namespace: "gateway",
		Name:      "inflight_invocations",
		Help:      "The number of invocations currently being processed.",
	}
)

// ClientMetrics contains the metrics recorded for gateway invocations
type ClientMetrics struct {
	EvaluationsReceived metrics.Counter
	EvaluationsFailed   metrics.Counter
	EvaluationDuration  metrics.Histogram
	EvaluationTimeouts  metrics.Counter
	SubmissionsReceived metrics.Counter
	SubmissionsFailed   metrics.Counter
	SubmissionDuration  metrics.Histogram
	SubmissionTimeouts  metrics.Counter
	Inflight            metrics.Gauge
}

// NewClientMetrics builds a new instance of ClientMetrics
func NewClientMetrics(p metrics.Provider) *ClientMetrics {
	return &ClientMetrics{
		EvaluationsReceived: p.NewCounter(evaluationsReceived),
		EvaluationsFailed:   p.NewCounter(evaluationsFailed),
		EvaluationDuration:  p.NewHistogram(evaluationDuration),
		EvaluationTimeouts:  p.NewCounter(evaluationTimeouts),
		SubmissionsReceived: p.NewCounter(submissionsReceived),
		SubmissionsFailed:   p.NewCounter(submissionsFailed),
		SubmissionDuration:  p.NewHistogram(submissionDuration),
		SubmissionTimeouts:  p.NewCounter(submissionTimeouts),
		Inflight:            p.NewGauge(inflightInvocations),
	}
}

type invocationMetrics struct {
	received metrics.Counter
	failed   metrics.Counter
	timeouts metrics.Counter
	duration metrics.Histogram
}

func (m *ClientMetrics) forEvaluate() invocationMetrics {
	return invocationMetrics{
		received: m.EvaluationsReceived,
		failed:   m.EvaluationsFailed,
		timeouts: m.EvaluationTimeouts,
		duration: m.EvaluationDuration,
	}
}

func (m *ClientMetrics) forSubmit() invocationMetrics {
	return invocationMetrics{
		received: m.SubmissionsReceived,
		failed:   m.SubmissionsFailed,
		timeouts: m.SubmissionTimeouts,
		duration: m.SubmissionDuration,
	}
}
