/*
Copyright 2020 IBM All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package gateway holds the connection of the trust registry to a Fabric
// peer and invokes chaincode transactions through the Fabric Gateway service.
//
// A Gateway is created in the Uninitialized state and becomes Ready once
// Connect has loaded the client identity, opened the TLS connection to the
// peer and bound the configured channel and chaincode. It is safe for
// concurrent use; all invocations share the one connection.
package gateway

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/multi"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/metrics/disabled"
	"github.com/trustregistry/fabric-trust-registry/pkg/fab/comm"
	"github.com/trustregistry/fabric-trust-registry/pkg/msp"
)

var logger = logging.NewLogger("trustregistry/gateway")

// Gateway is the shared handle used to invoke transactions on the ledger
type Gateway struct {
	options gatewayOptions
	metrics *ClientMetrics

	mu       sync.RWMutex
	state    State
	inflight sync.WaitGroup

	conn     *comm.GRPCConnection
	session  session
	identity *msp.SigningIdentity
}

// New creates a gateway from a configuration source. The returned gateway is
// not connected; call Connect before invoking transactions.
func New(config ConfigOption, options ...Option) (*Gateway, error) {
	g := &Gateway{
		options: gatewayOptions{
			Deadlines: DefaultDeadlines,
			Metrics:   &disabled.Provider{},
			connector: connectFabric,
		},
	}

	if config == nil {
		return nil, errors.New("a configuration option is required")
	}
	if err := config(g, &g.options); err != nil {
		return nil, errors.WithMessage(err, "failed to apply config option")
	}

	for _, option := range options {
		if err := option(g, &g.options); err != nil {
			return nil, errors.WithMessage(err, "failed to apply gateway option")
		}
	}

	if g.options.Network == nil {
		return nil, errors.New("network configuration is required")
	}

	g.options.Deadlines = g.options.Deadlines.withDefaults()
	g.metrics = NewClientMetrics(g.options.Metrics)
	return g, nil
}

// Connect establishes the connection to the peer. It may be called once; a
// failure leaves the gateway in the terminal FailedInit state with nothing
// left open.
func (g *Gateway) Connect() error {
	g.mu.Lock()
	if g.state != Uninitialized {
		st := g.state
		g.mu.Unlock()
		return errors.Errorf("gateway cannot connect in state %s", st)
	}
	g.state = Initializing
	g.mu.Unlock()

	cfg := g.options.Network
	logger.Infow("connecting gateway", "peer", cfg.PeerEndpoint, "channel", cfg.ChannelName, "chaincode", cfg.ChaincodeName, "mspID", cfg.MSPID)

	conn, sess, id, err := g.initialize()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		if g.state != Closed {
			g.state = FailedInit
		}
		logger.Errorw("gateway initialization failed", "error", err)
		return err
	}

	if g.state == Closed {
		release(sess, conn)
		return status.Wrap(status.GatewayFailure, errors.New("gateway was closed during initialization"))
	}

	g.conn, g.session, g.identity = conn, sess, id
	g.state = Ready
	logger.Infow("gateway ready", "peer", conn.Target(), "mspID", id.MSPID())
	return nil
}

func (g *Gateway) initialize() (*comm.GRPCConnection, session, *msp.SigningIdentity, error) {
	cfg := g.options.Network

	paths := msp.ResolveCredentialPaths(cfg.CryptoBasePath)
	if err := paths.Validate(); err != nil {
		return nil, nil, nil, err
	}

	tlsCert, err := msp.LoadTLSCertificate(paths.TLSCertPath)
	if err != nil {
		return nil, nil, nil, err
	}

	conn, err := comm.NewConnection(cfg.PeerEndpoint, comm.OptsFromGRPCOptions(tlsCert, cfg.OverrideAuthority, cfg.GRPCOptions)...)
	if err != nil {
		return nil, nil, nil, status.Wrap(status.GatewayFailure, err)
	}

	id, err := msp.NewSigningIdentity(cfg.MSPID, paths)
	if err != nil {
		release(nil, conn)
		return nil, nil, nil, err
	}

	sess, err := g.options.connector(conn.ClientConn(), id, cfg, g.options.Deadlines)
	if err != nil {
		release(nil, conn)
		return nil, nil, nil, status.Wrap(status.GatewayFailure, err)
	}

	return conn, sess, id, nil
}

// Close stops admitting invocations, waits for those in flight and releases
// the connection. It is safe to call in any state and more than once.
func (g *Gateway) Close() {
	g.mu.Lock()
	switch g.state {
	case Ready:
		g.state = Closed
	case Uninitialized, Initializing:
		// Connect releases anything it opened once it observes Closed
		g.state = Closed
		g.mu.Unlock()
		return
	default:
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	g.inflight.Wait()

	release(g.session, g.conn)
	logger.Info("gateway closed")
}

// State returns the current lifecycle state
func (g *Gateway) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Ready reports whether the gateway accepts invocations
func (g *Gateway) Ready() bool {
	return g.State() == Ready
}

// Identity returns the signing identity, nil until the gateway is Ready
func (g *Gateway) Identity() *msp.SigningIdentity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.identity
}

// acquire registers an in-flight invocation. The caller must call
// inflight.Done when it returns true.
func (g *Gateway) acquire() (session, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != Ready {
		return nil, status.Wrap(status.GatewayFailure, errors.Wrapf(ErrNotReady, "state %s", g.state))
	}
	g.inflight.Add(1)
	return g.session, nil
}

// release closes the session and then the connection, continuing past a
// failure of either
func release(sess session, conn *comm.GRPCConnection) {
	var errs error
	if sess != nil {
		errs = multi.Append(errs, errors.WithMessage(sess.Close(), "failed to close gateway session"))
	}
	if conn != nil {
		errs = multi.Append(errs, errors.WithMessage(conn.Close(), "failed to close peer connection"))
	}
	if errs != nil {
		logger.Warnw("failed to release gateway resources", "error", errs)
	}
}
