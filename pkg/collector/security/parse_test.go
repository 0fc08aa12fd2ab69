package security

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

func TestParseSSHDConfig(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		rootLogin    bool
		passwordAuth bool
	}{
		{
			name:         "defaults on empty config",
			data:         "",
			rootLogin:    false,
			passwordAuth: true,
		},
		{
			name:         "hardened",
			data:         "PermitRootLogin no\nPasswordAuthentication no\n",
			rootLogin:    false,
			passwordAuth: false,
		},
		{
			name:         "permissive",
			data:         "PermitRootLogin yes\nPasswordAuthentication yes\n",
			rootLogin:    true,
			passwordAuth: true,
		},
		{
			name:         "prohibit-password does not allow root login",
			data:         "PermitRootLogin prohibit-password\n",
			rootLogin:    false,
			passwordAuth: true,
		},
		{
			name:         "first occurrence wins",
			data:         "PasswordAuthentication no\nPasswordAuthentication yes\n",
			rootLogin:    false,
			passwordAuth: false,
		},
		{
			name:         "comments and case ignored",
			data:         "# PermitRootLogin yes\npermitrootlogin YES\n",
			rootLogin:    true,
			passwordAuth: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := parseSSHDConfig(tt.data)
			assert.Equal(t, tt.rootLogin, cfg.RootLoginAllowed)
			assert.Equal(t, tt.passwordAuth, cfg.PasswordAuthEnabled)
		})
	}
}

func TestParseAuthorizedKeys(t *testing.T) {
	data := `# comment line
ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIHx7 ada@laptop
command="uptime" ssh-rsa AAAAB3NzaC1yc2EAAA backup@cron
ecdsa-sha2-nistp256 AAAAE2VjZHNh
sk-ssh-ed25519@openssh.com AAAAGnNr key@yubikey

garbage line without a key
`
	keys := parseAuthorizedKeys(data)
	require.Len(t, keys, 4)
	assert.Equal(t, "ssh-ed25519 ada@laptop", keys[0])
	assert.Equal(t, "ssh-rsa backup@cron", keys[1], "options prefix is skipped")
	assert.Equal(t, "ecdsa-sha2-nistp256", keys[2], "comment is optional")
	assert.Equal(t, "sk-ssh-ed25519@openssh.com key@yubikey", keys[3])
}

func TestCertStatus(t *testing.T) {
	path := writeSelfSigned(t, "grafana.lan", 90*24*time.Hour)

	status, err := certStatus(path)
	require.NoError(t, err)

	assert.Equal(t, "grafana.lan", status.Domain)
	assert.Equal(t, "test-ca", status.Issuer)
	require.NotNil(t, status.Expiry)
	assert.InDelta(t, 89, status.DaysUntilExpiry, 1)
}

func TestCertStatusErrors(t *testing.T) {
	_, err := certStatus(filepath.Join(t.TempDir(), "missing.pem"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.pem")
	require.NoError(t, os.WriteFile(bad, []byte("not pem"), 0o600))
	_, err = certStatus(bad)
	assert.Error(t, err)
}

func TestCountNFTRules(t *testing.T) {
	out := `table inet filter {
	chain input {
		type filter hook input priority filter; policy drop;
		iif "lo" accept
		ct state established,related accept
		tcp dport 22 accept
	}
}
`
	assert.Equal(t, 3, countNFTRules(out), "structural lines do not count")
	assert.Zero(t, countNFTRules(""))
}

func TestCountIptablesRules(t *testing.T) {
	out := `-P INPUT DROP
-P FORWARD DROP
-P OUTPUT ACCEPT
-A INPUT -i lo -j ACCEPT
-A INPUT -p tcp --dport 22 -j ACCEPT
`
	assert.Equal(t, 2, countIptablesRules(out))
}

// writeSelfSigned creates a self-signed certificate valid for the given
// duration and returns its PEM path.
func writeSelfSigned(t *testing.T, dnsName string, validFor time.Duration) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: dnsName},
		Issuer:       pkix.Name{CommonName: "test-ca"},
		DNSNames:     []string{dnsName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(validFor),
	}
	// self-signed, so the issuer fields come from the template subject of
	// the parent; use a distinct parent to keep issuer and subject apart
	parent := template
	parent.Subject = pkix.Name{CommonName: "test-ca"}

	der, err := x509.CreateCertificate(rand.Reader, &template, &parent, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	return path
}
