/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/options"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config/comm"
	"github.com/trustregistry/fabric-trust-registry/pkg/core/config/urlutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

var logger = logging.NewLogger("trustregistry/fab/comm")

// GRPCConnection owns the client connection to a single peer endpoint.
// The connection is shared by all callers and multiplexes their calls.
type GRPCConnection struct {
	target string
	conn   *grpc.ClientConn
	done   int32
}

// NewConnection creates the client connection to url. No network traffic
// happens here: the channel connects on first use and reconnects on its own.
// A url without a scheme, or with grpcs://, is dialled over TLS using the
// certificate and host override options.
func NewConnection(url string, opts ...options.Opt) (*GRPCConnection, error) {
	if url == "" {
		return nil, errors.New("server URL not specified")
	}

	params := defaultParams()
	options.Apply(params, opts)

	dialOpts, err := newDialOpts(url, params)
	if err != nil {
		return nil, err
	}

	target := urlutil.ToAddress(url)
	grpcconn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create connection to %s", url)
	}

	logger.Debugf("Created connection to [%s]", target)
	return &GRPCConnection{target: target, conn: grpcconn}, nil
}

// ClientConn returns the underlying connection
func (c *GRPCConnection) ClientConn() *grpc.ClientConn {
	return c.conn
}

// Target returns the address the connection dials
func (c *GRPCConnection) Target() string {
	return c.target
}

// State returns the connectivity state of the channel
func (c *GRPCConnection) State() connectivity.State {
	return c.conn.GetState()
}

// Close closes the connection. Only the first call has an effect.
func (c *GRPCConnection) Close() error {
	if !c.setClosed() {
		logger.Debugf("Already closed")
		return nil
	}

	logger.Debugf("Closing connection to [%s]....", c.target)
	if err := c.conn.Close(); err != nil {
		logger.Warnf("error closing GRPC connection: %s", err)
		return errors.Wrap(err, "closing GRPC connection")
	}
	return nil
}

// Closed returns true if the connection has been closed
func (c *GRPCConnection) Closed() bool {
	return atomic.LoadInt32(&c.done) == 1
}

func (c *GRPCConnection) setClosed() bool {
	return atomic.CompareAndSwapInt32(&c.done, 0, 1)
}

func newDialOpts(url string, params *params) ([]grpc.DialOption, error) {
	var dialOpts []grpc.DialOption

	if params.keepAliveParams.Time > 0 || params.keepAliveParams.Timeout > 0 {
		dialOpts = append(dialOpts, grpc.WithKeepaliveParams(params.keepAliveParams))
	}

	dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(grpc.WaitForReady(!params.failFast)))

	if params.connectTimeout > 0 {
		dialOpts = append(dialOpts, grpc.WithConnectParams(grpc.ConnectParams{
			Backoff:           backoff.DefaultConfig,
			MinConnectTimeout: params.connectTimeout,
		}))
	}

	if urlutil.AttemptSecured(url) {
		tlsConfig, err := comm.TLSConfig(params.certificate, params.hostOverride)
		if err != nil {
			return nil, err
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(credentials.NewTLS(tlsConfig)))
		logger.Debugf("Creating a secure connection to [%s] with TLS HostOverride [%s]", url, params.hostOverride)
		return dialOpts, nil
	}

	if !params.insecure {
		return nil, errors.Errorf("insecure connection to %s is not allowed", url)
	}
	logger.Warnf("Creating an insecure connection [%s]", url)
	dialOpts = append(dialOpts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	return dialOpts, nil
}
