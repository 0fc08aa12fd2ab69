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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestIdentity(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "node.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
version: "1"
profile: server
hostname: cli-test-node
secrets:
  provider: age
  ageKeys:
    - AGE-SECRET-KEY-TEST
`), 0o600))
	return path
}

func runIdentityShow(t *testing.T, args ...string) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "out.json")

	argv := append([]string{name, "identity", "show", "--output", out}, args...)
	require.NoError(t, rootCmd().Run(context.Background(), argv))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	return string(data)
}

func TestIdentityShowRedactsByDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	idPath := writeTestIdentity(t)

	got := runIdentityShow(t, "--path", idPath)
	assert.Contains(t, got, "cli-test-node")
	assert.Contains(t, got, `"provider": "age"`)
	assert.NotContains(t, got, "AGE-SECRET-KEY-TEST")
}

func TestIdentityShowFull(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	idPath := writeTestIdentity(t)

	got := runIdentityShow(t, "--path", idPath, "--full")
	assert.Contains(t, got, "AGE-SECRET-KEY-TEST")
}

func TestIdentityShowMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := rootCmd().Run(context.Background(),
		[]string{name, "identity", "show", "--path", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
