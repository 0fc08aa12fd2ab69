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

package node

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nodescope/nodescope/pkg/identity"
	"github.com/nodescope/nodescope/pkg/report"
	"github.com/nodescope/nodescope/pkg/store"
)

// defaultRedactPaths are stripped from the identity on redacted reads.
var defaultRedactPaths = []string{
	"secrets.ageKeyFile",
	"secrets.ageKeys",
	"secrets.sshAuthorizedKeys",
	"secrets.tlsCertificates",
}

// DefaultRedactPaths returns the identity field paths redacted when no
// override is configured.
func DefaultRedactPaths() []string {
	return append([]string(nil), defaultRedactPaths...)
}

// ReportCollector produces one report per call. It never fails; degraded
// sections carry zero values.
type ReportCollector interface {
	Collect(ctx context.Context) *report.Report
}

// Options configures a Service.
type Options struct {
	// Collector gathers reports. Required.
	Collector ReportCollector

	// Store persists report envelopes. Required.
	Store *store.Store

	// Version is recorded as the collector version on new envelopes.
	Version string

	// MaxAgeSeconds is the staleness boundary for cached reports.
	MaxAgeSeconds int64

	// IdentityPath is the base identity file. Empty disables identity.
	IdentityPath string

	// OverlayDirs are extra identity overlay directories beyond the
	// default one.
	OverlayDirs []string

	// RedactPaths overrides the default redacted field paths.
	RedactPaths []string
}

// Service is the daemon's orchestrator. It owns two cache slots, the
// latest report envelope and the declared identity, both replaced
// wholesale and guarded by one read-write mutex.
type Service struct {
	collector ReportCollector
	store     *store.Store
	version   string
	maxAge    int64

	identityPath string
	overlayDirs  []string
	redactPaths  []string

	// refreshMu serializes refresh cycles so the store write and the
	// cache swap of one cycle are never interleaved with another's.
	refreshMu sync.Mutex

	mu       sync.RWMutex
	cached   *report.Envelope
	identity *identity.Identity
}

// NewService creates a Service. The cache slots start empty; callers
// typically LoadFromDisk and ReloadIdentity before serving.
func NewService(opts Options) *Service {
	redact := opts.RedactPaths
	if redact == nil {
		redact = defaultRedactPaths
	}
	return &Service{
		collector:    opts.Collector,
		store:        opts.Store,
		version:      opts.Version,
		maxAge:       opts.MaxAgeSeconds,
		identityPath: opts.IdentityPath,
		overlayDirs:  opts.OverlayDirs,
		redactPaths:  redact,
	}
}

// Refresh collects a new report, persists it, and swaps it into the
// cache. Collection runs outside any lock; the write and the swap are one
// critical section, so a reader never observes a cache newer than the
// store or vice versa. On store failure the previous cache entry stays.
func (s *Service) Refresh(ctx context.Context) (*report.Envelope, error) {
	rep := s.collector.Collect(ctx)

	env, err := report.Wrap(*rep, s.version)
	if err != nil {
		return nil, fmt.Errorf("failed to seal report: %w", err)
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if err := s.store.Write(&env); err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}

	s.mu.Lock()
	s.cached = &env
	s.mu.Unlock()

	slog.Info("report refreshed",
		slog.String("checksum", env.Checksum),
		slog.String("path", s.store.Path()))
	return &env, nil
}

// LoadFromDisk reads the persisted envelope, verifies it, and installs it
// as the cached report. Nothing on disk is not an error; the cache slot
// simply stays empty.
func (s *Service) LoadFromDisk() (*report.Envelope, error) {
	if !s.store.Exists() {
		return nil, nil
	}

	env, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = env
	s.mu.Unlock()

	slog.Info("report loaded from disk",
		slog.String("checksum", env.Checksum),
		slog.Int64("ageSeconds", env.AgeSeconds()))
	return env, nil
}

// CachedReport returns the cached envelope, or nil when none has been
// collected or loaded yet.
func (s *Service) CachedReport() *report.Envelope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

// ReportAge returns the cached report's age. The second value is false
// when the cache is empty.
func (s *Service) ReportAge() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil {
		return 0, false
	}
	return s.cached.AgeSeconds(), true
}

// IsStale reports whether the cached report is older than the configured
// maximum age. An empty cache is always stale.
func (s *Service) IsStale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil {
		return true
	}
	return s.cached.IsStale(s.maxAge)
}

// Identity returns the full declared identity, or nil when none is
// loaded.
func (s *Service) Identity() *identity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// RedactedIdentity returns the identity with private field paths removed,
// or nil when none is loaded.
func (s *Service) RedactedIdentity() (*identity.Identity, error) {
	s.mu.RLock()
	id := s.identity
	s.mu.RUnlock()

	if id == nil {
		return nil, nil
	}
	return identity.Redact(id, s.redactPaths)
}

// ReloadIdentity reloads the base identity and its overlays. On failure
// the previously loaded identity stays in place.
func (s *Service) ReloadIdentity() error {
	if s.identityPath == "" {
		return nil
	}

	id, err := identity.LoadWithOverlays(s.identityPath, s.overlayDirs)
	if err != nil {
		return fmt.Errorf("failed to load identity: %w", err)
	}

	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()

	slog.Info("identity loaded",
		slog.String("path", s.identityPath),
		slog.String("profile", id.Profile))
	return nil
}
