/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/providers/core"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config/lookup"
)

// Config keys read by WithConfig
const (
	networkKey           = "fabric.network"
	evaluateDeadlineKey  = "fabric.deadlines.evaluate"
	endorseDeadlineKey   = "fabric.deadlines.endorse"
	submitDeadlineKey    = "fabric.deadlines.submit"
	commitStatusDeadline = "fabric.deadlines.commit-status"
)

// WithConfig configures the gateway from the fabric.network and
// fabric.deadlines sections of a config provider.
func WithConfig(config core.ConfigProvider) ConfigOption {
	return func(gw *Gateway, o *gatewayOptions) error {
		backends, err := config()
		if err != nil {
			return errors.WithMessage(err, "unable to load config")
		}

		cfg, err := NetworkConfigFromBackend(backends...)
		if err != nil {
			return err
		}
		o.Network = cfg
		o.Deadlines = DeadlinesFromBackend(backends...)
		return nil
	}
}

// WithNetworkConfig configures the gateway from an in-memory network config
func WithNetworkConfig(cfg NetworkConfig) ConfigOption {
	return func(gw *Gateway, o *gatewayOptions) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		o.Network = &cfg
		return nil
	}
}

// NetworkConfigFromBackend reads and validates the fabric.network section.
// Keys are looked up one by one so that environment overrides of single
// keys apply.
func NetworkConfigFromBackend(backends ...core.ConfigBackend) (*NetworkConfig, error) {
	l := lookup.New(backends...)

	cfg := &NetworkConfig{
		ChannelName:       l.GetString(networkKey + ".channel-name"),
		ChaincodeName:     l.GetString(networkKey + ".chaincode-name"),
		MSPID:             l.GetString(networkKey + ".msp-id"),
		CryptoBasePath:    l.GetString(networkKey + ".crypto-base-path"),
		PeerEndpoint:      l.GetString(networkKey + ".peer-endpoint"),
		OverrideAuthority: l.GetString(networkKey + ".override-authority"),
	}
	if err := l.UnmarshalKey(networkKey+".grpc-options", &cfg.GRPCOptions); err != nil {
		return nil, errors.Wrapf(err, "invalid %s.grpc-options", networkKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DeadlinesFromBackend reads fabric.deadlines, using DefaultDeadlines for
// every phase that is absent or not a positive duration
func DeadlinesFromBackend(backends ...core.ConfigBackend) Deadlines {
	l := lookup.New(backends...)
	return Deadlines{
		Evaluate:     l.GetDurationOr(evaluateDeadlineKey, DefaultDeadlines.Evaluate),
		Endorse:      l.GetDurationOr(endorseDeadlineKey, DefaultDeadlines.Endorse),
		Submit:       l.GetDurationOr(submitDeadlineKey, DefaultDeadlines.Submit),
		CommitStatus: l.GetDurationOr(commitStatusDeadline, DefaultDeadlines.CommitStatus),
	}
}
