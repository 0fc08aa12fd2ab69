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

package identity

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default base identity file path,
// <user config dir>/nodescope/node.yaml.
func DefaultPath() string {
	return filepath.Join(configDir(), "nodescope", "node.yaml")
}

// DefaultOverlayDir returns the default overlay fragment directory,
// <user config dir>/nodescope/identity.d.
func DefaultOverlayDir() string {
	return filepath.Join(configDir(), "nodescope", "identity.d")
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Load reads and decodes a base identity file. An unreadable or unparsable
// base file is a hard error; there is nothing to fall back to.
func Load(path string) (*Identity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity from %s: %w", path, err)
	}
	return decodeStrict(data, path)
}

// LoadWithOverlays loads the base identity document, then deep-merges every
// overlay fragment found in the default overlay directory plus extraDirs.
//
// Overlays from all directories are pooled and applied in file-name order
// (byte order of the name only; which directory a fragment came from does
// not influence ordering). A malformed overlay is skipped with a warning;
// a malformed base file, or a merged tree that no longer decodes into the
// identity schema, is a hard error.
func LoadWithOverlays(basePath string, extraDirs []string) (*Identity, error) {
	data, err := os.ReadFile(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base identity from %s: %w", basePath, err)
	}

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse base identity from %s: %w", basePath, err)
	}

	dirs := append([]string{DefaultOverlayDir()}, extraDirs...)
	for _, path := range overlayFiles(dirs) {
		overlayData, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("skipping unreadable overlay file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		var overlay any
		if err := yaml.Unmarshal(overlayData, &overlay); err != nil {
			slog.Warn("skipping invalid overlay file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("applying identity overlay", slog.String("path", path))
		tree = deepMerge(tree, overlay)
	}

	return decodeTree(tree)
}

// Redact returns a copy of the identity with each dot-separated field path
// structurally removed. Removed fields are absent in the result, not masked.
// Redacting a path that does not exist is a no-op.
func Redact(id *Identity, fieldPaths []string) (*Identity, error) {
	data, err := yaml.Marshal(id)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize identity for redaction: %w", err)
	}

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to rebuild identity tree: %w", err)
	}

	for _, path := range fieldPaths {
		removePath(tree, path)
	}

	return decodeTree(tree)
}

// overlayFiles collects *.yaml / *.yml fragments across all directories and
// sorts the pooled list by file name. Missing directories are skipped.
func overlayFiles(dirs []string) []string {
	var files []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if ext == ".yaml" || ext == ".yml" {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Slice(files, func(i, j int) bool {
		ni, nj := filepath.Base(files[i]), filepath.Base(files[j])
		if ni != nj {
			return ni < nj
		}
		return files[i] < files[j]
	})
	return files
}

// decodeTree marshals an untyped tree back to YAML and strictly decodes it
// into the typed schema.
func decodeTree(tree any) (*Identity, error) {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize merged identity: %w", err)
	}
	return decodeStrict(data, "merged identity")
}

// decodeStrict decodes YAML into the Identity schema, rejecting fields that
// do not exist in the schema rather than silently dropping them.
func decodeStrict(data []byte, source string) (*Identity, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var id Identity
	if err := dec.Decode(&id); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}
	return &id, nil
}
