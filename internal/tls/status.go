// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"time"
)

// CA directory names certmagic uses under {certDir}/certificates
var caDirs = []string{
	"acme-v02.api.letsencrypt.org-directory",
	"acme-staging-v02.api.letsencrypt.org-directory",
}

// CertificateStatus represents the status of a managed certificate
type CertificateStatus struct {
	Domain          string
	Issuer          string
	NotBefore       time.Time
	NotAfter        time.Time
	DaysUntilExpiry int
}

// CertificateStatus reads the stored certificates for every configured
// domain. Domains without a certificate yet are left out.
func (c *Config) CertificateStatus() []CertificateStatus {
	var statuses []CertificateStatus
	for _, domain := range c.Domains() {
		if st, ok := readCertificate(c.CertDir, domain); ok {
			statuses = append(statuses, st)
		}
	}
	return statuses
}

// readCertificate looks for domain under the production CA first
func readCertificate(certDir, domain string) (CertificateStatus, bool) {
	for _, ca := range caDirs {
		certPEM, err := os.ReadFile(filepath.Join(certDir, "certificates", ca, domain, domain+".crt"))
		if err != nil {
			continue
		}

		block, _ := pem.Decode(certPEM)
		if block == nil {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}

		return CertificateStatus{
			Domain:          domain,
			Issuer:          cert.Issuer.CommonName,
			NotBefore:       cert.NotBefore,
			NotAfter:        cert.NotAfter,
			DaysUntilExpiry: int(time.Until(cert.NotAfter).Hours() / 24),
		}, true
	}
	return CertificateStatus{}, false
}
