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
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/nodescope/nodescope/pkg/config"
	"github.com/nodescope/nodescope/pkg/serializer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
		},
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
		},
		{
			name:    "invalid format xml",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "invalid format csv",
			format:  "csv",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFormat serializer.Format
			var gotErr error

			cmd := &cli.Command{
				Name:  "test",
				Flags: []cli.Flag{formatFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gotFormat, gotErr = parseFormat(cmd)
					return nil
				},
			}

			err := cmd.Run(context.Background(), []string{"test", "--format", tt.format})
			require.NoError(t, err)

			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantFormat, gotFormat)
		})
	}
}

func TestParseFormatDefaultsToJSON(t *testing.T) {
	var gotFormat serializer.Format

	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var err error
			gotFormat, err = parseFormat(cmd)
			return err
		},
	}

	require.NoError(t, cmd.Run(context.Background(), []string{"test"}))
	assert.Equal(t, serializer.FormatJSON, gotFormat)
}

func TestIdentityPathResolution(t *testing.T) {
	// keep the default location out of the real user config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.Default()
	assert.Empty(t, identityPath(cfg), "no configured path and no default file")

	cfg.Identity.Path = "/etc/nodescope/node.yaml"
	assert.Equal(t, "/etc/nodescope/node.yaml", identityPath(cfg))
}
