/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package msp

import (
	"crypto/x509"

	"github.com/hyperledger/fabric-gateway/pkg/identity"
	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/logging"
)

var logger = logging.NewLogger("trustregistry/msp")

// SigningIdentity pairs the client identity with the signer for its private key.
// The key itself is not retained.
type SigningIdentity struct {
	identity *identity.X509Identity
	sign     identity.Sign
}

// NewSigningIdentity loads the signing certificate and private key found
// through paths and binds them to mspID.
func NewSigningIdentity(mspID string, paths CredentialPaths) (*SigningIdentity, error) {
	if mspID == "" {
		return nil, status.New(status.CredentialParseError, "MSP ID is required", nil)
	}

	cert, err := LoadCertificate(paths.SignCertDir)
	if err != nil {
		return nil, err
	}

	id, err := identity.NewX509Identity(mspID, cert)
	if err != nil {
		return nil, status.Wrap(status.CredentialParseError, errors.Wrap(err, "creating X.509 identity"))
	}

	key, err := LoadPrivateKey(paths.KeyDir)
	if err != nil {
		return nil, err
	}

	sign, err := identity.NewPrivateKeySign(key)
	if err != nil {
		return nil, status.Wrap(status.CredentialParseError, errors.Wrap(err, "creating signer"))
	}

	logger.Infow("loaded signing identity", "mspID", mspID, "subject", cert.Subject.CommonName, "expires", cert.NotAfter)
	return &SigningIdentity{identity: id, sign: sign}, nil
}

// Identity returns the client identity presented to the gateway
func (s *SigningIdentity) Identity() *identity.X509Identity {
	return s.identity
}

// Sign returns the signing function backed by the private key
func (s *SigningIdentity) Sign() identity.Sign {
	return s.sign
}

// MSPID returns the membership service provider the identity belongs to
func (s *SigningIdentity) MSPID() string {
	return s.identity.MspID()
}

// Certificate returns the parsed signing certificate
func (s *SigningIdentity) Certificate() (*x509.Certificate, error) {
	return identity.CertificateFromPEM(s.identity.Credentials())
}
