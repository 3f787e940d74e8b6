/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"time"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics"
)

// ErrNotReady is wrapped by the GatewayFailure returned for invocations
// made before Connect succeeded or after Close
var ErrNotReady = errors.New("gateway is not ready")

// State is the lifecycle state of a Gateway
type State int32

// Gateway states. Closed and FailedInit are terminal.
const (
	Uninitialized State = iota
	Initializing
	Ready
	Closed
	FailedInit
)

var stateNames = map[State]string{
	Uninitialized: "Uninitialized",
	Initializing:  "Initializing",
	Ready:         "Ready",
	Closed:        "Closed",
	FailedInit:    "FailedInit",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Deadlines bounds each phase of an invocation. Evaluate applies to
// EvaluateTransaction; Endorse, Submit and CommitStatus apply to the three
// phases of SubmitTransaction.
type Deadlines struct {
	Evaluate     time.Duration `mapstructure:"evaluate" yaml:"evaluate"`
	Endorse      time.Duration `mapstructure:"endorse" yaml:"endorse"`
	Submit       time.Duration `mapstructure:"submit" yaml:"submit"`
	CommitStatus time.Duration `mapstructure:"commit-status" yaml:"commit-status"`
}

// DefaultDeadlines are used for any phase without a configured deadline
var DefaultDeadlines = Deadlines{
	Evaluate:     5 * time.Second,
	Endorse:      15 * time.Second,
	Submit:       5 * time.Second,
	CommitStatus: time.Minute,
}

// withDefaults fills zero or negative phases from DefaultDeadlines
func (d Deadlines) withDefaults() Deadlines {
	if d.Evaluate <= 0 {
		d.Evaluate = DefaultDeadlines.Evaluate
	}
	if d.Endorse <= 0 {
		d.Endorse = DefaultDeadlines.Endorse
	}
	if d.Submit <= 0 {
		d.Submit = DefaultDeadlines.Submit
	}
	if d.CommitStatus <= 0 {
		d.CommitStatus = DefaultDeadlines.CommitStatus
	}
	return d
}

// NetworkConfig identifies the peer, the client identity and the
// channel/chaincode pair the gateway binds to
type NetworkConfig struct {
	ChannelName       string `mapstructure:"channel-name" yaml:"channel-name"`
	ChaincodeName     string `mapstructure:"chaincode-name" yaml:"chaincode-name"`
	MSPID             string `mapstructure:"msp-id" yaml:"msp-id"`
	CryptoBasePath    string `mapstructure:"crypto-base-path" yaml:"crypto-base-path"`
	PeerEndpoint      string `mapstructure:"peer-endpoint" yaml:"peer-endpoint"`
	OverrideAuthority string `mapstructure:"override-authority" yaml:"override-authority"`
	// GRPCOptions tunes the peer connection: keep-alive-time,
	// keep-alive-timeout, keep-alive-permit, fail-fast, connect-timeout
	GRPCOptions map[string]interface{} `mapstructure:"grpc-options" yaml:"grpc-options"`
}

// Validate checks that every required field is set
func (c *NetworkConfig) Validate() error {
	required := []struct{ key, value string }{
		{"channel-name", c.ChannelName},
		{"chaincode-name", c.ChaincodeName},
		{"msp-id", c.MSPID},
		{"crypto-base-path", c.CryptoBasePath},
		{"peer-endpoint", c.PeerEndpoint},
	}
	for _, r := range required {
		if r.value == "" {
			return errors.Errorf("network config: %s is required", r.key)
		}
	}
	return nil
}

type gatewayOptions struct {
	Network   *NetworkConfig
	Deadlines Deadlines
	Metrics   metrics.Provider
	connector connector
}

// Option functional arguments can be supplied when creating the gateway.
type Option = func(*Gateway, *gatewayOptions) error

// ConfigOption specifies the gateway configuration source.
type ConfigOption = func(*Gateway, *gatewayOptions) error

// WithDeadlines sets the per-phase deadlines. Zero phases keep their default.
func WithDeadlines(d Deadlines) Option {
	return func(gw *Gateway, o *gatewayOptions) error {
		o.Deadlines = d.withDefaults()
		return nil
	}
}

// WithMetricsProvider records invocation metrics through p
func WithMetricsProvider(p metrics.Provider) Option {
	return func(gw *Gateway, o *gatewayOptions) error {
		if p == nil {
			return errors.New("metrics provider is nil")
		}
		o.Metrics = p
		return nil
	}
}

// withConnector replaces the Fabric Gateway client used over the connection
func withConnector(c connector) Option {
	return func(gw *Gateway, o *gatewayOptions) error {
		o.connector = c
		return nil
	}
}
