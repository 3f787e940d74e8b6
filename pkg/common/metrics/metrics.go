/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metrics defines the metric instruments used by the trust registry.
// Implementations live in the prometheus and disabled subpackages.
package metrics

import (
	kitmetrics "github.com/go-kit/kit/metrics"
)

// Counter is a monotonically increasing value. With takes label name/value
// pairs and returns a counter bound to them.
type Counter = kitmetrics.Counter

// Gauge is a value that can go up and down
type Gauge = kitmetrics.Gauge

// Histogram records observations into buckets
type Histogram = kitmetrics.Histogram

// Provider creates metric instruments
type Provider interface {
	NewCounter(CounterOpts) Counter
	NewGauge(GaugeOpts) Gauge
	NewHistogram(HistogramOpts) Histogram
}

// CounterOpts describes a counter. The fully qualified name is
// Namespace_Subsystem_Name.
type CounterOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

// GaugeOpts describes a gauge
type GaugeOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

// HistogramOpts describes a histogram. Nil Buckets selects the
// implementation's defaults.
type HistogramOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	Buckets    []float64
	LabelNames []string
}

// Provider names accepted by the metrics.provider config key
const (
	ProviderPrometheus = "prometheus"
	ProviderDisabled   = "disabled"
)
