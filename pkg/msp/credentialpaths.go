/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package msp

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/trustregistry/fabric-trust-registry/pkg/common/errors/status"
	"github.com/trustregistry/fabric-trust-registry/pkg/util/pathvar"
)

const (
	userMSPPath   = "users/User1@org1.example.com/msp"
	peerTLSCAPath = "peers/peer0.org1.example.com/tls/ca.crt"
)

// CredentialPaths locates the credential material inside a credential store
type CredentialPaths struct {
	// SignCertDir holds the single PEM signing certificate of the client identity
	SignCertDir string
	// KeyDir holds the single PEM private key matching the signing certificate
	KeyDir string
	// TLSCertPath is the CA certificate trusted for the peer TLS connection
	TLSCertPath string
}

// ResolveCredentialPaths derives the credential locations from the store root.
// ${VAR} references in root are expanded first.
func ResolveCredentialPaths(root string) CredentialPaths {
	root = pathvar.Subst(root)
	mspDir := filepath.Join(root, filepath.FromSlash(userMSPPath))
	return CredentialPaths{
		SignCertDir: filepath.Join(mspDir, "signcerts"),
		KeyDir:      filepath.Join(mspDir, "keystore"),
		TLSCertPath: filepath.Join(root, filepath.FromSlash(peerTLSCAPath)),
	}
}

// Validate checks that both credential directories exist and the TLS
// certificate is a regular file. Nothing is read or parsed.
func (p CredentialPaths) Validate() error {
	if err := checkDir(p.SignCertDir); err != nil {
		return err
	}
	if err := checkDir(p.KeyDir); err != nil {
		return err
	}
	return checkFile(p.TLSCertPath)
}

func checkDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return status.Wrap(status.CredentialNotFound, errors.Wrapf(err, "credential directory %s", path))
	}
	if !fi.IsDir() {
		return status.Newf(status.CredentialNotFound, "credential path %s is not a directory", path)
	}
	return nil
}

func checkFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return status.Wrap(status.CredentialNotFound, errors.Wrapf(err, "credential file %s", path))
	}
	if !fi.Mode().IsRegular() {
		return status.Newf(status.CredentialNotFound, "credential path %s is not a regular file", path)
	}
	return nil
}
