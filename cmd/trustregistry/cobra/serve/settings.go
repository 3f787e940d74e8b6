/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package serve

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics/disabled"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics/prometheus"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config/lookup"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/logging/modlog"
)

// Config keys of the HTTP server and metrics
const (
	AddressKey         = "server.address"
	ShutdownTimeoutKey = "server.shutdown-timeout"
	MetricsProviderKey = "metrics.provider"
)

// Defaults applied when a key is not configured
const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
)

// Settings holds the process level configuration of the server
type Settings struct {
	Address         string
	ShutdownTimeout time.Duration
	MetricsProvider string
	LogFormat       string
}

// SettingsFromBackend reads the server settings, applying defaults
func SettingsFromBackend(backends ...core.ConfigBackend) (*Settings, error) {
	l := lookup.New(backends...)

	s := &Settings{
		Address:         l.GetStringOr(AddressKey, DefaultAddress),
		ShutdownTimeout: l.GetDurationOr(ShutdownTimeoutKey, DefaultShutdownTimeout),
		MetricsProvider: l.GetStringOr(MetricsProviderKey, metrics.ProviderPrometheus),
		LogFormat:       l.GetStringOr(config.LogFormatKey, modlog.FormatConsole),
	}

	switch s.MetricsProvider {
	case metrics.ProviderPrometheus, metrics.ProviderDisabled:
	default:
		return nil, errors.Errorf("unsupported %s: %s", MetricsProviderKey, s.MetricsProvider)
	}

	return s, nil
}

// newMetricsProvider returns the provider selected by name and the handler
// serving its metrics, nil when metrics are disabled
func newMetricsProvider(name string, reg *prom.Registry) (metrics.Provider, http.Handler) {
	if name == metrics.ProviderDisabled {
		return &disabled.Provider{}, nil
	}
	return prometheus.NewProvider(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
