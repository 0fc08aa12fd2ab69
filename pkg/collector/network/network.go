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

// Package network probes interfaces, routes, DNS configuration, and
// listening sockets.
package network

import (
	"context"
	"log/slog"
	"net"
	"os"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/report"
)

// Probe collects the network section.
type Probe struct{}

// Collect enumerates interfaces through the netlink-backed stdlib API and
// shells out for routes and sockets. Loopback is included; it is part of
// the node's real configuration.
func (p *Probe) Collect(ctx context.Context) (report.Network, error) {
	var sect report.Network

	if hostname, err := os.Hostname(); err == nil {
		sect.Hostname = hostname
	}

	counters := map[string]ifaceCounters{}
	if data, err := os.ReadFile("/proc/net/dev"); err == nil {
		counters = parseNetDev(string(data))
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		slog.Warn("failed to enumerate interfaces", slog.String("error", err.Error()))
	}
	for _, iface := range ifaces {
		entry := report.Interface{
			Name: iface.Name,
			MTU:  iface.MTU,
			MAC:  iface.HardwareAddr.String(),
		}
		entry.State = "down"
		if iface.Flags&net.FlagUp != 0 {
			entry.State = "up"
		}
		if addrs, err := iface.Addrs(); err == nil {
			for _, addr := range addrs {
				entry.Addresses = append(entry.Addresses, addr.String())
			}
		}
		if c, ok := counters[iface.Name]; ok {
			entry.RxBytes = c.RxBytes
			entry.TxBytes = c.TxBytes
		}
		sect.Interfaces = append(sect.Interfaces, entry)
	}

	if out, err := shell.Run(ctx, "ip", "route", "show"); err == nil {
		sect.Routes, sect.DefaultGateway = parseIPRoutes(out)
	} else {
		slog.Warn("failed to read routing table", slog.String("error", err.Error()))
	}

	if data, err := os.ReadFile("/etc/resolv.conf"); err == nil {
		sect.DNSResolvers = parseResolvConf(string(data))
	}

	if out, err := shell.Run(ctx, "ss", "-H", "-lntu"); err == nil {
		sect.ListeningPorts = parseSS(out)
	} else {
		slog.Warn("failed to list listening sockets", slog.String("error", err.Error()))
	}

	return sect, nil
}
