/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mockmsp generates throwaway certificate authorities and on-disk
// credential stores laid out like a test network organization.
package mockmsp

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Credential store layout relative to the store root
const (
	SignCertsDir = "users/User1@org1.example.com/msp/signcerts"
	KeystoreDir  = "users/User1@org1.example.com/msp/keystore"
	TLSCAFile    = "peers/peer0.org1.example.com/tls/ca.crt"

	// PeerHostname is the name the peer TLS certificate is issued for
	PeerHostname = "peer0.org1.example.com"
)

// CA is an in-memory certificate authority
type CA struct {
	Cert    *x509.Certificate
	CertPEM []byte
	key     *ecdsa.PrivateKey
}

// Credential is a certificate issued by a CA together with its key
type Credential struct {
	Cert    *x509.Certificate
	CertPEM []byte
	Key     *ecdsa.PrivateKey
	KeyPEM  []byte
}

// NewCA creates a self-signed P-256 certificate authority
func NewCA(t testing.TB, commonName string) *CA {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          serial(t),
		Subject:               pkix.Name{CommonName: commonName, Organization: []string{"org1.example.com"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return &CA{Cert: cert, CertPEM: encodeCert(der), key: key}
}

// Issue signs a leaf certificate for commonName. dnsNames are added as
// subject alternative names, which makes the certificate usable by a TLS server.
func (ca *CA) Issue(t testing.TB, commonName string, dnsNames ...string) *Credential {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: serial(t),
		Subject:      pkix.Name{CommonName: commonName, OrganizationalUnit: []string{"client"}},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		DNSNames:     dnsNames,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, ca.Cert, &key.PublicKey, ca.key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	return &Credential{
		Cert:    cert,
		CertPEM: encodeCert(der),
		Key:     key,
		KeyPEM:  pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8}),
	}
}

// SEC1KeyPEM returns the key in the "EC PRIVATE KEY" encoding
func (c *Credential) SEC1KeyPEM(t testing.TB) []byte {
	der, err := x509.MarshalECPrivateKey(c.Key)
	require.NoError(t, err)
	return pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
}

// TLSCertificate returns the credential as a tls.Certificate
func (c *Credential) TLSCertificate(t testing.TB) tls.Certificate {
	pair, err := tls.X509KeyPair(c.CertPEM, c.KeyPEM)
	require.NoError(t, err)
	return pair
}

// CredentialStore is a credential store written to a temporary directory
type CredentialStore struct {
	Root string
	// CA issued the user credential
	CA *CA
	// TLSCA issued the peer TLS certificate; its certificate is the trust anchor
	TLSCA *CA
	// User is the signing identity
	User *Credential
	// Peer is the TLS server credential of the peer
	Peer *Credential
}

// NewCredentialStore writes a complete credential store under t.TempDir()
func NewCredentialStore(t testing.TB) *CredentialStore {
	root := t.TempDir()

	s := &CredentialStore{
		Root:  root,
		CA:    NewCA(t, "ca.org1.example.com"),
		TLSCA: NewCA(t, "tlsca.org1.example.com"),
	}
	s.User = s.CA.Issue(t, "User1@org1.example.com")
	s.Peer = s.TLSCA.Issue(t, PeerHostname, PeerHostname, "localhost")

	s.WriteFile(t, filepath.Join(SignCertsDir, "User1@org1.example.com-cert.pem"), s.User.CertPEM)
	s.WriteFile(t, filepath.Join(KeystoreDir, "priv_sk"), s.User.KeyPEM)
	s.WriteFile(t, TLSCAFile, s.TLSCA.CertPEM)

	return s
}

// Path returns the absolute path of rel inside the store
func (s *CredentialStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

// WriteFile writes data to rel inside the store, creating parent directories
func (s *CredentialStore) WriteFile(t testing.TB, rel string, data []byte) {
	p := s.Path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o600))
}

// Remove deletes rel inside the store
func (s *CredentialStore) Remove(t testing.TB, rel string) {
	require.NoError(t, os.RemoveAll(s.Path(rel)))
}

func encodeCert(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}

func serial(t testing.TB) *big.Int {
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	require.NoError(t, err)
	return n
}
