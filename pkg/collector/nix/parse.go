package nix

import (
	"context"
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/collector/shell"
)

type nixSettings struct {
	Substituters []string
	TrustedUsers []string
	MaxJobs      string
	Sandbox      bool
}

// nixConfig reads the effective settings. Newer releases spell the command
// `nix config show`, older ones `nix show-config`.
func nixConfig(ctx context.Context) (nixSettings, error) {
	out, err := shell.Run(ctx, "nix", "config", "show")
	if err != nil {
		out, err = shell.Run(ctx, "nix", "show-config")
		if err != nil {
			return nixSettings{}, err
		}
	}
	return parseNixConfig(out), nil
}

// parseNixConfig reads `key = value` lines from nix config output.
func parseNixConfig(output string) nixSettings {
	var cfg nixSettings
	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "substituters":
			cfg.Substituters = strings.Fields(value)
		case "trusted-users":
			cfg.TrustedUsers = strings.Fields(value)
		case "max-jobs":
			cfg.MaxJobs = value
		case "sandbox":
			// "relaxed" still sandboxes most builds
			cfg.Sandbox = value == "true" || value == "relaxed"
		}
	}
	return cfg
}

// parseNixVersion extracts the bare version from `nix --version` output
// such as "nix (Nix) 2.18.1".
func parseNixVersion(output string) string {
	line, _, _ := strings.Cut(output, "\n")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// parseDU reads the byte count from `du -s -B1` output.
func parseDU(output string) uint64 {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return 0
	}
	n, _ := strconv.ParseUint(fields[0], 10, 64)
	return n
}

// countGCRoots counts persistent roots, excluding in-memory roots held by
// running processes and censored entries.
func countGCRoots(output string) uint64 {
	var count uint64
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "/proc/") || strings.HasPrefix(line, "{censored}") {
			continue
		}
		count++
	}
	return count
}

func countLines(output string) uint64 {
	var count uint64
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// parseChannels keeps the channel names from `nix-channel --list` lines of
// the form "nixos https://nixos.org/channels/nixos-24.05".
func parseChannels(output string) []string {
	var channels []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 1 && fields[0] != "" {
			channels = append(channels, fields[0])
		}
	}
	return channels
}
