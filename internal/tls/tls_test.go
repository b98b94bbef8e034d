// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDomains(t *testing.T) {
	cfg := &Config{
		BaseDomain: "mapa.example.org",
		Extra:      []string{"Lluvia.example.org", " mapa.example.org ", ""},
	}
	assert.Equal(t, []string{"mapa.example.org", "lluvia.example.org"}, cfg.Domains())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.Error(t, (&Config{Enabled: true, BaseDomain: "mapa.example.org"}).Validate())
	assert.Error(t, (&Config{Enabled: true, Email: "ops@example.org", BaseDomain: "localhost"}).Validate())
	assert.NoError(t, (&Config{Enabled: true, Email: "ops@example.org", BaseDomain: "mapa.example.org"}).Validate())
}

func writeTestCert(t *testing.T, dir, ca, domain string, notAfter time.Time) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: domain},
		Issuer:       pkix.Name{CommonName: domain},
		DNSNames:     []string{domain},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	certDir := filepath.Join(dir, "certificates", ca, domain)
	require.NoError(t, os.MkdirAll(certDir, 0700))
	data := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(filepath.Join(certDir, domain+".crt"), data, 0600))
}

func TestCertificateStatus(t *testing.T) {
	dir := t.TempDir()
	writeTestCert(t, dir, caDirs[1], "mapa.example.org", time.Now().Add(30*24*time.Hour+time.Hour))

	cfg := &Config{CertDir: dir, BaseDomain: "mapa.example.org", Extra: []string{"pending.example.org"}}
	statuses := cfg.CertificateStatus()

	require.Len(t, statuses, 1)
	assert.Equal(t, "mapa.example.org", statuses[0].Domain)
	assert.Equal(t, "mapa.example.org", statuses[0].Issuer)
	assert.Equal(t, 30, statuses[0].DaysUntilExpiry)
}
