/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package msp

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"

	"github.com/hyperledger/fabric-gateway/pkg/identity"
	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
)

// LoadCertificate parses the single PEM certificate stored directly in dir.
func LoadCertificate(dir string) (*x509.Certificate, error) {
	path, err := singleFile(dir)
	if err != nil {
		return nil, err
	}
	return readCertificate(path)
}

// LoadPrivateKey parses the single PEM private key stored directly in dir.
// PKCS#8, SEC1 ("EC PRIVATE KEY") and PKCS#1 encodings are accepted.
func LoadPrivateKey(dir string) (crypto.PrivateKey, error) {
	path, err := singleFile(dir)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, status.Wrap(status.CredentialParseError, errors.Wrapf(err, "reading private key %s", path))
	}

	key, err := parsePrivateKey(raw)
	if err != nil {
		return nil, status.Wrap(status.CredentialParseError, errors.WithMessagef(err, "parsing private key %s", path))
	}
	return key, nil
}

// LoadTLSCertificate parses the PEM trust anchor at path.
func LoadTLSCertificate(path string) (*x509.Certificate, error) {
	return readCertificate(path)
}

func readCertificate(path string) (*x509.Certificate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, status.Wrap(status.CredentialParseError, errors.Wrapf(err, "reading certificate %s", path))
	}

	cert, err := identity.CertificateFromPEM(raw)
	if err != nil {
		return nil, status.Wrap(status.CredentialParseError, errors.Wrapf(err, "parsing certificate %s", path))
	}
	return cert, nil
}

func parsePrivateKey(raw []byte) (crypto.PrivateKey, error) {
	if key, err := identity.PrivateKeyFromPEM(raw); err == nil {
		return key, nil
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, errors.New("no PEM data found")
	}
	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	return nil, errors.Errorf("unsupported private key encoding [%s]", block.Type)
}

// singleFile returns the one regular file directly inside dir. Subdirectories
// are ignored; zero or several files is an error since the credential would
// be ambiguous.
func singleFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", status.Wrap(status.CredentialParseError, errors.Wrapf(err, "listing %s", dir))
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}

	switch len(files) {
	case 0:
		return "", status.Newf(status.CredentialParseError, "no credential file in %s", dir)
	case 1:
		return filepath.Join(dir, files[0]), nil
	default:
		return "", status.Newf(status.CredentialParseError, "expected one credential file in %s, found %d", dir, len(files))
	}
}
