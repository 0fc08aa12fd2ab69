package security

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nodescope/nodescope/pkg/report"
)

type sshdConfig struct {
	RootLoginAllowed    bool
	PasswordAuthEnabled bool
}

// parseSSHDConfig reads the effective values of PermitRootLogin and
// PasswordAuthentication. sshd honors the first occurrence of a keyword;
// later duplicates are ignored, and this parser does the same.
func parseSSHDConfig(data string) sshdConfig {
	// sshd_config(5) defaults
	cfg := sshdConfig{RootLoginAllowed: false, PasswordAuthEnabled: true}
	seenRoot, seenPassword := false, false

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "permitrootlogin":
			if !seenRoot {
				cfg.RootLoginAllowed = strings.EqualFold(fields[1], "yes")
				seenRoot = true
			}
		case "passwordauthentication":
			if !seenPassword {
				cfg.PasswordAuthEnabled = !strings.EqualFold(fields[1], "no")
				seenPassword = true
			}
		}
	}
	return cfg
}

// parseAuthorizedKeys returns "type comment" descriptors for each key in
// authorized_keys content. The key material itself is dropped.
func parseAuthorizedKeys(data string) []string {
	var keys []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		// options may precede the key type; find the field that looks
		// like a key type
		start := -1
		for i, field := range fields {
			if strings.HasPrefix(field, "ssh-") || strings.HasPrefix(field, "ecdsa-") || strings.HasPrefix(field, "sk-") {
				start = i
				break
			}
		}
		if start < 0 || start+1 >= len(fields) {
			continue
		}

		descriptor := fields[start]
		if comment := strings.Join(fields[start+2:], " "); comment != "" {
			descriptor += " " + comment
		}
		keys = append(keys, descriptor)
	}
	return keys
}

// certStatus reads the first certificate in a PEM file and reports its
// expiry.
func certStatus(path string) (report.CertStatus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.CertStatus{}, err
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return report.CertStatus{}, fmt.Errorf("no PEM block in %s", path)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return report.CertStatus{}, fmt.Errorf("failed to parse certificate %s: %w", path, err)
	}

	domain := cert.Subject.CommonName
	if len(cert.DNSNames) > 0 {
		domain = cert.DNSNames[0]
	}

	expiry := cert.NotAfter
	return report.CertStatus{
		Domain:          domain,
		Expiry:          &expiry,
		DaysUntilExpiry: int64(time.Until(cert.NotAfter).Hours() / 24),
		Issuer:          cert.Issuer.CommonName,
	}, nil
}

// countNFTRules counts rule lines in `nft list ruleset` output, skipping
// structural lines (table/chain declarations and braces).
func countNFTRules(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "}" ||
			strings.HasPrefix(line, "table ") ||
			strings.HasPrefix(line, "chain ") ||
			strings.HasPrefix(line, "type ") {
			continue
		}
		count++
	}
	return count
}

// countIptablesRules counts appended rules in `iptables -S` output,
// ignoring the chain policy lines.
func countIptablesRules(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "-A ") {
			count++
		}
	}
	return count
}
