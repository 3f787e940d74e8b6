/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
)

var counterOpts = metrics.CounterOpts{
	Namespace:  "trustregistry",
	Subsystem:  "gateway",
	Name:       "evaluations_received",
	Help:       "test counter",
	LabelNames: []string{"chaincode", "Fcn"},
}

func TestCounter(t *testing.T) {
	reg := prom.NewRegistry()
	p := NewProvider(reg)

	c := p.NewCounter(counterOpts)
	c.With("chaincode", "trustregistry", "Fcn", "ReadTrustRecord").Add(1)
	c.With("chaincode", "trustregistry", "Fcn", "ReadTrustRecord").Add(2)
	c.With("chaincode", "trustregistry", "Fcn", "GetAllTrustRecords").Add(1)

	n, err := testutil.GatherAndCount(reg, "trustregistry_gateway_evaluations_received")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per label set")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	var total float64
	for _, m := range families[0].GetMetric() {
		total += m.GetCounter().GetValue()
	}
	assert.Equal(t, 4.0, total)
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prom.NewRegistry()
	p := NewProvider(reg)

	first := p.NewCounter(counterOpts)
	second := p.NewCounter(counterOpts)

	first.With("chaincode", "cc", "Fcn", "f").Add(1)
	second.With("chaincode", "cc", "Fcn", "f").Add(1)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, 2.0, families[0].GetMetric()[0].GetCounter().GetValue())
}

func TestHistogramAndGauge(t *testing.T) {
	reg := prom.NewRegistry()
	p := NewProvider(reg)

	h := p.NewHistogram(metrics.HistogramOpts{
		Namespace:  "trustregistry",
		Name:       "duration_seconds",
		Help:       "test histogram",
		Buckets:    []float64{0.1, 1},
		LabelNames: []string{"Fcn"},
	})
	h.With("Fcn", "InitLedger").Observe(0.5)

	g := p.NewGauge(metrics.GaugeOpts{Namespace: "trustregistry", Name: "state", Help: "test gauge"})
	g.Set(3)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 2)
	for _, f := range families {
		switch f.GetName() {
		case "trustregistry_duration_seconds":
			assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
		case "trustregistry_state":
			assert.Equal(t, 3.0, f.GetMetric()[0].GetGauge().GetValue())
		default:
			t.Fatalf("unexpected metric family %s", f.GetName())
		}
	}
}

func TestInvalidMetricPanics(t *testing.T) {
	p := NewProvider(prom.NewRegistry())
	assert.Panics(t, func() {
		p.NewCounter(metrics.CounterOpts{Name: "invalid name", Help: "x"})
	})
}
