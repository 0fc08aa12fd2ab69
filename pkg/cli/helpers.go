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
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nodescope/nodescope/pkg/config"
	"github.com/nodescope/nodescope/pkg/identity"
	"github.com/nodescope/nodescope/pkg/logging"
	"github.com/nodescope/nodescope/pkg/serializer"
)

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Usage:   "config file path (default is <user config dir>/nodescope/config.yaml)",
		Sources: cli.EnvVars("NODESCOPE_CONFIG"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error)",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default is stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value: string(serializer.FormatJSON),
	}
)

// loadConfig builds the effective configuration and installs the default
// logger. The --log-level flag wins over file and environment.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	return cfg, nil
}

// parseFormat validates the --format flag.
func parseFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			format, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// identityPath resolves the identity file for a configuration. An
// unconfigured path falls back to the default location when that file
// exists; empty means identity is disabled.
func identityPath(cfg *config.Config) string {
	if cfg.Identity.Path != "" {
		return cfg.Identity.Path
	}
	path := identity.DefaultPath()
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
