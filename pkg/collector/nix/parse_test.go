package nix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNixVersion(t *testing.T) {
	assert.Equal(t, "2.18.1", parseNixVersion("nix (Nix) 2.18.1"))
	assert.Equal(t, "2.24.9", parseNixVersion("nix (Nix) 2.24.9\nSystem type: x86_64-linux"))
	assert.Equal(t, "", parseNixVersion(""))
}

func TestParseNixConfig(t *testing.T) {
	out := `allowed-users = *
max-jobs = 8
sandbox = true
substituters = https://cache.nixos.org https://nix-community.cachix.org
trusted-users = root ada
`
	cfg := parseNixConfig(out)

	assert.Equal(t, []string{"https://cache.nixos.org", "https://nix-community.cachix.org"}, cfg.Substituters)
	assert.Equal(t, []string{"root", "ada"}, cfg.TrustedUsers)
	assert.Equal(t, "8", cfg.MaxJobs)
	assert.True(t, cfg.Sandbox)
}

func TestParseNixConfigSandbox(t *testing.T) {
	assert.True(t, parseNixConfig("sandbox = relaxed\n").Sandbox)
	assert.False(t, parseNixConfig("sandbox = false\n").Sandbox)
	assert.False(t, parseNixConfig("").Sandbox)
}

func TestParseDU(t *testing.T) {
	assert.Equal(t, uint64(53687091200), parseDU("53687091200\t/nix/store"))
	assert.Equal(t, uint64(0), parseDU(""))
}

func TestCountGCRoots(t *testing.T) {
	out := `/nix/var/nix/profiles/system-42-link -> /nix/store/abc-nixos-system
/nix/var/nix/gcroots/auto/xyz -> /nix/store/def-home
/proc/1234/maps -> /nix/store/ghi-glibc
{censored}
`
	assert.Equal(t, uint64(2), countGCRoots(out))
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, uint64(3), countLines("  40   2024-05-01\n  41   2024-05-08\n  42   2024-05-15 (current)\n"))
	assert.Equal(t, uint64(0), countLines("\n\n"))
}

func TestParseChannels(t *testing.T) {
	out := "nixos https://nixos.org/channels/nixos-24.05\nhome-manager https://github.com/nix-community/home-manager/archive/master.tar.gz\n"
	assert.Equal(t, []string{"nixos", "home-manager"}, parseChannels(out))
}
