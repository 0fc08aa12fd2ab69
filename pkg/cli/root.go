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

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name           = "nodescoped"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Version: version,
		Usage:   "nodescope node inventory daemon",
		Description: fmt.Sprintf(`nodescope - node inventory daemon

Version: %s
Commit:  %s
Built:   %s

Collects a point-in-time report of the machine it runs on (hardware, OS,
network, Nix store, Kubernetes membership, health, processes, security
posture), persists it with an integrity checksum, and serves it over a
local HTTP API.`, version, commit, date),
		Commands: []*cli.Command{
			daemonCmd(),
			snapshotCmd(),
			identityCmd(),
		},
	}
}

// Execute runs the CLI. SIGINT and SIGTERM cancel the command context so
// the daemon shuts down gracefully.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
