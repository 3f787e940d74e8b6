/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
)

var logger = logging.NewLogger("trustregistry/metrics")

// Provider creates instruments registered with a Prometheus registerer.
// Asking twice for the same metric returns an instrument backed by the
// collector registered first.
type Provider struct {
	Registerer prom.Registerer
}

// NewProvider returns a provider registering with reg, or with the default
// registerer when reg is nil
func NewProvider(reg prom.Registerer) *Provider {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	return &Provider{Registerer: reg}
}

// NewCounter creates and registers a counter vector
func (p *Provider) NewCounter(o metrics.CounterOpts) metrics.Counter {
	cv := prom.NewCounterVec(prom.CounterOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
	}, o.LabelNames)

	return kitprometheus.NewCounter(register(p.Registerer, cv).(*prom.CounterVec))
}

// NewGauge creates and registers a gauge vector
func (p *Provider) NewGauge(o metrics.GaugeOpts) metrics.Gauge {
	gv := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
	}, o.LabelNames)

	return kitprometheus.NewGauge(register(p.Registerer, gv).(*prom.GaugeVec))
}

// NewHistogram creates and registers a histogram vector
func (p *Provider) NewHistogram(o metrics.HistogramOpts) metrics.Histogram {
	hv := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
		Buckets:   o.Buckets,
	}, o.LabelNames)

	return kitprometheus.NewHistogram(register(p.Registerer, hv).(*prom.HistogramVec))
}

func register(reg prom.Registerer, c prom.Collector) prom.Collector {
	err := reg.Register(c)
	if err == nil {
		return c
	}

	var are prom.AlreadyRegisteredError
	if errors.As(err, &are) {
		logger.Debugf("reusing registered collector: %s", err)
		return are.ExistingCollector
	}
	// invalid names or label sets are programming errors
	panic(err)
}
