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

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/nodescope/nodescope/pkg/report"
)

// ErrChecksumMismatch is returned by Read when the persisted envelope fails
// integrity verification. Callers must not use a report behind this error.
var ErrChecksumMismatch = errors.New("report file checksum mismatch")

// Store persists a single report envelope to one JSON file.
//
// Writes are serialized by an in-process mutex and performed as
// marshal → temp sibling file → fsync → rename, so readers observe either
// the previous complete file or the new complete file, never a partial one.
type Store struct {
	path    string
	writeMu sync.Mutex
}

// New creates a Store bound to the given target file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the target file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the target file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Write atomically persists the envelope.
func (s *Store) Write(env *report.Envelope) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize envelope: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Temp file must live in the same directory as the target so the
	// rename stays within one filesystem and remains atomic.
	tmpPath := s.path + ".tmp"
	if err := writeAndSync(tmpPath, data); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		// best effort, the next write overwrites the temp file anyway
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s to %s: %w", tmpPath, s.path, err)
	}

	slog.Debug("report persisted",
		slog.String("path", s.path),
		slog.String("checksum", env.Checksum),
	)
	return nil
}

// Read loads the persisted envelope and verifies its checksum.
// A missing file is an error here; the orchestrator treats it as
// "cache starts empty" via Exists.
func (s *Store) Read() (*report.Envelope, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var env report.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}

	if !env.Verify() {
		slog.Warn("persisted report failed integrity verification", slog.String("path", s.path))
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, s.path)
	}

	return &env, nil
}

func writeAndSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create temp file %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %s: %w", path, err)
	}
	return nil
}
