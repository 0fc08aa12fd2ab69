// Copyright (c) 2025, the nodescope authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package security probes the node's security posture: firewall state,
// sshd configuration, deployed SSH keys, and TLS certificate expiry.
package security

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/report"

	sysdbus "github.com/coreos/go-systemd/v22/dbus"
)

const sshdConfigPath = "/etc/ssh/sshd_config"

// Probe collects the security section.
type Probe struct {
	// CertFiles are PEM certificates checked for expiry.
	CertFiles []string

	// AuthorizedKeysFiles are scanned for deployed public keys. Only key
	// type and comment are reported, never key material.
	AuthorizedKeysFiles []string
}

// DefaultAuthorizedKeysFiles returns the conventional authorized_keys
// locations for the current user and root.
func DefaultAuthorizedKeysFiles() []string {
	files := []string{"/root/.ssh/authorized_keys"}
	if home, err := os.UserHomeDir(); err == nil && home != "/root" {
		files = append(files, filepath.Join(home, ".ssh", "authorized_keys"))
	}
	return files
}

// Collect inspects firewall, sshd, keys, and certificates. Each source
// degrades independently.
func (p *Probe) Collect(ctx context.Context) (report.Security, error) {
	var sect report.Security

	sect.FirewallBackend, sect.FirewallRulesCount = firewallState(ctx)
	sect.FirewallActive = sect.FirewallRulesCount > 0

	sect.SSHDRunning = sshdRunning(ctx)

	// sshd defaults per sshd_config(5): root login prohibited with
	// password, password auth enabled
	sect.RootLoginAllowed = false
	sect.PasswordAuthEnabled = true
	if data, err := os.ReadFile(sshdConfigPath); err == nil {
		cfg := parseSSHDConfig(string(data))
		sect.RootLoginAllowed = cfg.RootLoginAllowed
		sect.PasswordAuthEnabled = cfg.PasswordAuthEnabled
	}

	for _, path := range p.AuthorizedKeysFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		sect.SSHKeysDeployed = append(sect.SSHKeysDeployed, parseAuthorizedKeys(string(data))...)
	}

	for _, path := range p.CertFiles {
		status, err := certStatus(path)
		if err != nil {
			slog.Warn("failed to inspect certificate",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		sect.TLSCertificates = append(sect.TLSCertificates, status)
	}

	return sect, nil
}

// firewallState prefers nftables and falls back to iptables.
func firewallState(ctx context.Context) (backend string, rules int) {
	if out, err := shell.Run(ctx, "nft", "list", "ruleset"); err == nil {
		if count := countNFTRules(out); count > 0 {
			return "nftables", count
		}
	}
	if out, err := shell.Run(ctx, "iptables", "-S"); err == nil {
		if count := countIptablesRules(out); count > 0 {
			return "iptables", count
		}
	}
	return "", 0
}

// sshdRunning checks unit state over D-Bus; Debian derivatives name the
// unit ssh.service instead of sshd.service.
func sshdRunning(ctx context.Context) bool {
	conn, err := sysdbus.NewWithContext(ctx)
	if err != nil {
		slog.Debug("systemd dbus unavailable", slog.String("error", err.Error()))
		return false
	}
	defer conn.Close()

	for _, unit := range []string{"sshd.service", "ssh.service"} {
		props, err := conn.GetUnitPropertiesContext(ctx, unit)
		if err != nil {
			continue
		}
		if state, ok := props["ActiveState"].(string); ok && state == "active" {
			return true
		}
	}
	return false
}
