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

	"github.com/urfave/cli/v3"

	"github.com/nodescope/nodescope/pkg/collector"
	"github.com/nodescope/nodescope/pkg/report"
	"github.com/nodescope/nodescope/pkg/serializer"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Collect a one-shot node report",
		Description: `Collect a single node inventory report without starting the daemon,
including:
  - CPU, memory, disk, GPU, and sensor readings
  - OS release, kernel, systemd, and virtualization detection
  - Network interfaces, routes, DNS, and listening ports
  - Nix store and generation state
  - Kubernetes cluster membership (when the node is part of one)
  - Health metrics, top processes, and security posture

Probe failures degrade their section to zero values rather than failing
the snapshot. The report can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
			outputFlag,
			formatFlag,
			&cli.BoolFlag{
				Name:  "seal",
				Usage: "Wrap the report in a checksummed envelope",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := loadConfig(cmd); err != nil {
				return err
			}

			format, err := parseFormat(cmd)
			if err != nil {
				return err
			}

			rep := collector.New(version).Collect(ctx)

			var payload any = rep
			if cmd.Bool("seal") {
				env, err := report.Wrap(*rep, version)
				if err != nil {
					return err
				}
				payload = env
			}

			writer := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() { _ = writer.Close() }()
			return writer.Serialize(payload)
		},
	}
}
