/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package comm

import (
	"crypto/tls"
	"crypto/x509"

	"github.com/pkg/errors"
)

// TLSConfig returns the client TLS config for a peer connection. cert is
// the only trusted root; the system trust store is not consulted. serverName
// is the name expected in the peer certificate, which lets the endpoint be
// dialled by an address that differs from the certificate's host name.
// Optional client certificates enable mutual TLS.
func TLSConfig(cert *x509.Certificate, serverName string, clientCerts ...tls.Certificate) (*tls.Config, error) {
	if cert == nil {
		return nil, errors.New("TLS root certificate is required")
	}

	certPool := x509.NewCertPool()
	certPool.AddCert(cert)

	return &tls.Config{
		RootCAs:      certPool,
		Certificates: clientCerts,
		ServerName:   serverName,
		MinVersion:   tls.VersionTLS12,
	}, nil
}
