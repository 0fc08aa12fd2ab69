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

package collector

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	nerrors "github.com/nodescope/nodescope/pkg/errors"
	"github.com/nodescope/nodescope/pkg/report"

	"golang.org/x/sync/errgroup"
)

// Collector gathers one complete node report per call. Probes run in
// parallel; a failed probe is logged and its section keeps the zero value,
// so Collect itself never fails.
type Collector struct {
	// Version is the daemon version recorded on each report.
	Version string

	// Factory is the probe factory to use. If nil, the default factory is used.
	Factory Factory
}

// New creates a Collector using the default probe factory.
func New(version string) *Collector {
	return &Collector{Version: version, Factory: NewDefaultFactory()}
}

// Collect runs every probe and assembles the report. The timestamp is set
// once, after all probes have returned, so it reflects the completed
// collection rather than its start.
func (c *Collector) Collect(ctx context.Context) *report.Report {
	if c.Factory == nil {
		c.Factory = NewDefaultFactory()
	}

	slog.Debug("starting report collection")

	start := time.Now()
	defer func() {
		collectionDuration.Observe(time.Since(start).Seconds())
		collectionTotal.Inc()
	}()

	var mu sync.Mutex
	var rep report.Report

	// Probe goroutines always return nil; errgroup is used for its
	// bounded fan-out and context plumbing, not for error aggregation.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hw := c.Factory.CreateHardwareProbe()
		section := probe(gctx, "hardware", hw.Collect)
		mu.Lock()
		rep.Hardware = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		op := c.Factory.CreateOSProbe()
		section := probe(gctx, "os", op.Collect)
		mu.Lock()
		rep.OS = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		np := c.Factory.CreateNetworkProbe()
		section := probe(gctx, "network", np.Collect)
		mu.Lock()
		rep.Network = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		nx := c.Factory.CreateNixProbe()
		section := probe(gctx, "nix", nx.Collect)
		mu.Lock()
		rep.Nix = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		cp := c.Factory.CreateClusterProbe()
		section := probe(gctx, "cluster", cp.Collect)
		mu.Lock()
		rep.Cluster = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		hp := c.Factory.CreateHealthProbe()
		section := probe(gctx, "health", hp.Collect)
		mu.Lock()
		rep.Health = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		pp := c.Factory.CreateProcessProbe()
		section := probe(gctx, "processes", pp.Collect)
		mu.Lock()
		rep.Procs = section
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		sp := c.Factory.CreateSecurityProbe()
		section := probe(gctx, "security", sp.Collect)
		mu.Lock()
		rep.Security = section
		mu.Unlock()
		return nil
	})

	// Cannot fail; see above.
	_ = g.Wait()

	rep.Timestamp = time.Now().UTC()
	rep.DaemonVersion = c.Version
	if hostname, err := os.Hostname(); err == nil {
		rep.Hostname = hostname
	} else {
		slog.Warn("failed to resolve hostname", slog.String("error", err.Error()))
	}

	slog.Debug("report collection complete",
		slog.Duration("elapsed", time.Since(start)))

	return &rep
}

// probe runs a single section probe, records its duration, and degrades to
// the section's zero value on failure.
func probe[T any](ctx context.Context, name string, collect func(context.Context) (T, error)) T {
	start := time.Now()
	defer func() {
		probeDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	section, err := collect(ctx)
	if err != nil {
		probeFailures.WithLabelValues(name).Inc()
		slog.Warn("probe failed, section degraded to defaults",
			slog.String("probe", name),
			slog.String("code", string(nerrors.CodeOf(err))),
			slog.String("error", err.Error()))
		var zero T
		return zero
	}
	return section
}
