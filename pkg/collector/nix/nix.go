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

// Package nix probes the Nix store: daemon version, store size, GC roots,
// generations, and the effective nix configuration.
package nix

import (
	"context"
	"log/slog"
	"os"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/defaults"
	"github.com/nodescope/nodescope/pkg/report"
)

const (
	storeDir      = "/nix/store"
	systemProfile = "/nix/var/nix/profiles/system"
	currentSystem = "/run/current-system"

	// du over a populated store is the slowest probe in the daemon
	storeSizeTimeout = defaults.NixStoreSizeTimeout
)

// Probe collects the Nix section.
type Probe struct{}

// Collect inspects the store via the nix CLI tools. A machine without Nix
// yields an empty section rather than an error.
func (p *Probe) Collect(ctx context.Context) (report.NixStore, error) {
	var sect report.NixStore

	out, err := shell.Run(ctx, "nix", "--version")
	if err != nil {
		slog.Debug("nix not available", slog.String("error", err.Error()))
		return sect, nil
	}
	sect.Version = parseNixVersion(out)

	if cfg, err := nixConfig(ctx); err == nil {
		sect.Substituters = cfg.Substituters
		sect.TrustedUsers = cfg.TrustedUsers
		sect.MaxJobs = cfg.MaxJobs
		sect.SandboxEnabled = cfg.Sandbox
	} else {
		slog.Warn("failed to read nix configuration", slog.String("error", err.Error()))
	}

	if entries, err := os.ReadDir(storeDir); err == nil {
		sect.StorePathCount = uint64(len(entries))
	}

	if out, err := shell.RunTimeout(ctx, storeSizeTimeout, "du", "-s", "-B1", storeDir); err == nil {
		sect.StoreSizeBytes = parseDU(out)
	} else {
		slog.Warn("failed to measure store size", slog.String("error", err.Error()))
	}

	if out, err := shell.Run(ctx, "nix-store", "--gc", "--print-roots"); err == nil {
		sect.GCRootsCount = countGCRoots(out)
	}

	if out, err := shell.Run(ctx, "nix-env", "--list-generations", "--profile", systemProfile); err == nil {
		sect.SystemGenerations = countLines(out)
	}

	if out, err := shell.Run(ctx, "nix-channel", "--list"); err == nil {
		sect.Channels = parseChannels(out)
	}

	if target, err := os.Readlink(currentSystem); err == nil {
		sect.CurrentSystemPath = target
	}

	return sect, nil
}
