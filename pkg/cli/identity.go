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
	"errors"

	"github.com/urfave/cli/v3"

	"github.com/nodescope/nodescope/pkg/identity"
	"github.com/nodescope/nodescope/pkg/node"
	"github.com/nodescope/nodescope/pkg/serializer"
)

func identityCmd() *cli.Command {
	return &cli.Command{
		Name:  "identity",
		Usage: "Inspect the declared node identity",
		Commands: []*cli.Command{
			identityShowCmd(),
		},
	}
}

func identityShowCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Show the merged node identity",
		Description: `Load the base identity document, apply overlay fragments in file-name
order, and print the merged result. Secret-bearing fields are redacted
unless --full is given.`,
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:  "path",
				Usage: "identity file path (default is the configured or standard location)",
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Include secret-bearing fields",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			format, err := parseFormat(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("path")
			if path == "" {
				path = identityPath(cfg)
			}
			if path == "" {
				return errors.New("no identity file found; set identity.path in the config or pass --path")
			}

			id, err := identity.LoadWithOverlays(path, cfg.Identity.OverlayDirs)
			if err != nil {
				return err
			}

			if !cmd.Bool("full") {
				redact := cfg.Identity.RedactPaths
				if redact == nil {
					redact = node.DefaultRedactPaths()
				}
				if id, err = identity.Redact(id, redact); err != nil {
					return err
				}
			}

			writer := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() { _ = writer.Close() }()
			return writer.Serialize(id)
		},
	}
}
