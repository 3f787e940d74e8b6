/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"crypto/x509"
	"time"

	"github.com/spf13/cast"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/options"
	"google.golang.org/grpc/keepalive"
)

type params struct {
	hostOverride    string
	certificate     *x509.Certificate
	keepAliveParams keepalive.ClientParameters
	failFast        bool
	insecure        bool
	connectTimeout  time.Duration
}

func defaultParams() *params {
	return &params{
		failFast:       true,
		connectTimeout: 3 * time.Second,
	}
}

// WithHostOverride sets the host name that will be used to resolve the TLS certificate
func WithHostOverride(value string) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(hostOverrideSetter); ok {
			setter.SetHostOverride(value)
		}
	}
}

// WithCertificate sets the X509 certificate trusted for the TLS connection
func WithCertificate(value *x509.Certificate) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(certificateSetter); ok {
			setter.SetCertificate(value)
		}
	}
}

// WithKeepAliveParams sets the GRPC keep-alive parameters
func WithKeepAliveParams(value keepalive.ClientParameters) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(keepAliveParamsSetter); ok {
			setter.SetKeepAliveParams(value)
		}
	}
}

// WithFailFast sets the GRPC fail-fast parameter. When false, calls wait for
// the channel to become ready instead of failing while it is reconnecting.
func WithFailFast(value bool) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(failFastSetter); ok {
			setter.SetFailFast(value)
		}
	}
}

// WithConnectTimeout sets the minimum time allowed for each connection attempt
func WithConnectTimeout(value time.Duration) options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(connectTimeoutSetter); ok {
			setter.SetConnectTimeout(value)
		}
	}
}

// WithInsecure allows plaintext connections to grpc:// URLs
func WithInsecure() options.Opt {
	return func(p options.Params) {
		if setter, ok := p.(insecureSetter); ok {
			setter.SetInsecure(true)
		}
	}
}

func (p *params) SetHostOverride(value string) {
	logger.Debugf("HostOverride: %s", value)
	p.hostOverride = value
}

func (p *params) SetCertificate(value *x509.Certificate) {
	if value != nil {
		logger.Debugf("setting certificate [subject: %s, serial: %s]", value.Subject, value.SerialNumber)
	} else {
		logger.Debug("setting nil certificate")
	}
	p.certificate = value
}

func (p *params) SetKeepAliveParams(value keepalive.ClientParameters) {
	logger.Debugf("KeepAliveParams: %#v", value)
	p.keepAliveParams = value
}

func (p *params) SetFailFast(value bool) {
	logger.Debugf("FailFast: %t", value)
	p.failFast = value
}

func (p *params) SetConnectTimeout(value time.Duration) {
	logger.Debugf("ConnectTimeout: %s", value)
	p.connectTimeout = value
}

func (p *params) SetInsecure(value bool) {
	logger.Debugf("Insecure: %t", value)
	p.insecure = value
}

type hostOverrideSetter interface {
	SetHostOverride(value string)
}

type certificateSetter interface {
	SetCertificate(value *x509.Certificate)
}

type keepAliveParamsSetter interface {
	SetKeepAliveParams(value keepalive.ClientParameters)
}

type failFastSetter interface {
	SetFailFast(value bool)
}

type insecureSetter interface {
	SetInsecure(value bool)
}

type connectTimeoutSetter interface {
	SetConnectTimeout(value time.Duration)
}

// OptsFromGRPCOptions returns connection options for a peer from its
// trust anchor, authority override and the free-form grpc options of the
// network config (keep-alive-time, keep-alive-timeout, keep-alive-permit,
// fail-fast, connect-timeout, allow-insecure).
func OptsFromGRPCOptions(tlsCACert *x509.Certificate, hostOverride string, grpcOptions map[string]interface{}) []options.Opt {

	opts := []options.Opt{
		WithHostOverride(hostOverride),
		WithCertificate(tlsCACert),
		WithKeepAliveParams(getKeepAliveOptions(grpcOptions)),
	}
	if ff, ok := grpcOptions["fail-fast"]; ok {
		opts = append(opts, WithFailFast(cast.ToBool(ff)))
	}
	if ct, ok := grpcOptions["connect-timeout"]; ok {
		opts = append(opts, WithConnectTimeout(cast.ToDuration(ct)))
	}
	if cast.ToBool(grpcOptions["allow-insecure"]) {
		opts = append(opts, WithInsecure())
	}

	return opts
}

func getKeepAliveOptions(grpcOptions map[string]interface{}) keepalive.ClientParameters {
	var kap keepalive.ClientParameters
	if kaTime, ok := grpcOptions["keep-alive-time"]; ok {
		kap.Time = cast.ToDuration(kaTime)
	}
	if kaTimeout, ok := grpcOptions["keep-alive-timeout"]; ok {
		kap.Timeout = cast.ToDuration(kaTimeout)
	}
	if kaPermit, ok := grpcOptions["keep-alive-permit"]; ok {
		kap.PermitWithoutStream = cast.ToBool(kaPermit)
	}
	return kap
}
