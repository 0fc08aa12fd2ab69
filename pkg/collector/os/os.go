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

// Package os probes the operating system: distribution release, kernel,
// uptime, virtualization, and the running systemd version.
package os

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/report"

	sysdbus "github.com/coreos/go-systemd/v22/dbus"
)

// Probe collects the operating system section.
type Probe struct{}

// Collect gathers release, kernel, and runtime facts. Individual sources
// that are unavailable leave their fields at zero values.
func (p *Probe) Collect(ctx context.Context) (report.OS, error) {
	var sect report.OS
	sect.Architecture = runtime.GOARCH

	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		release := parseOSRelease(string(data))
		sect.Distribution = release["NAME"]
		sect.Version = firstNonEmpty(release["VERSION_ID"], release["VERSION"])
		sect.BuildID = release["BUILD_ID"]
	} else {
		slog.Warn("failed to read os-release", slog.String("error", err.Error()))
	}

	if kernel, err := shell.Run(ctx, "uname", "-r"); err == nil {
		sect.KernelVersion = kernel
	}

	if hostname, err := os.Hostname(); err == nil {
		sect.Hostname = hostname
	}

	if data, err := os.ReadFile("/proc/uptime"); err == nil {
		if uptime, ok := parseUptime(string(data)); ok {
			sect.UptimeSeconds = uptime
			boot := time.Now().UTC().Add(-time.Duration(uptime) * time.Second)
			sect.BootTime = &boot
		}
	}

	sect.SystemdVersion = systemdVersion(ctx)
	sect.Virtualization = detectVirtualization(ctx)
	sect.IsWSL = detectWSL()
	sect.Timezone = detectTimezone()

	return sect, nil
}

// systemdVersion asks the systemd manager over D-Bus. Empty on systems
// without systemd or without D-Bus access.
func systemdVersion(ctx context.Context) string {
	conn, err := sysdbus.NewWithContext(ctx)
	if err != nil {
		slog.Debug("systemd dbus unavailable", slog.String("error", err.Error()))
		return ""
	}
	defer conn.Close()

	version, err := conn.GetManagerProperty("Version")
	if err != nil {
		return ""
	}
	// property values arrive quoted, e.g. "255.4"
	return strings.Trim(version, `"`)
}

// detectVirtualization wraps systemd-detect-virt, which exits nonzero on
// bare metal.
func detectVirtualization(ctx context.Context) string {
	out, err := shell.Run(ctx, "systemd-detect-virt")
	if err != nil {
		return ""
	}
	if out == "none" {
		return ""
	}
	return out
}

func detectWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

func detectTimezone() string {
	if data, err := os.ReadFile("/etc/timezone"); err == nil {
		return strings.TrimSpace(string(data))
	}
	if target, err := os.Readlink("/etc/localtime"); err == nil {
		if _, zone, found := strings.Cut(target, "zoneinfo/"); found {
			return zone
		}
	}
	return ""
}

// parseUptime reads the first field of /proc/uptime, whole seconds.
func parseUptime(data string) (uint64, bool) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return uint64(seconds), true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
