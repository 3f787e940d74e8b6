/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package disabled

import (
	"github.com/go-kit/kit/metrics/discard"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
)

// Provider hands out instruments that drop every observation
type Provider struct{}

// NewCounter returns a no-op counter
func (p *Provider) NewCounter(metrics.CounterOpts) metrics.Counter {
	return discard.NewCounter()
}

// NewGauge returns a no-op gauge
func (p *Provider) NewGauge(metrics.GaugeOpts) metrics.Gauge {
	return discard.NewGauge()
}

// NewHistogram returns a no-op histogram
func (p *Provider) NewHistogram(metrics.HistogramOpts) metrics.Histogram {
	return discard.NewHistogram()
}
