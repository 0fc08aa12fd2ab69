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
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nodescope/nodescope/pkg/api"
	"github.com/nodescope/nodescope/pkg/collector"
	"github.com/nodescope/nodescope/pkg/node"
	"github.com/nodescope/nodescope/pkg/store"
)

func daemonCmd() *cli.Command {
	return &cli.Command{
		Name:                  "daemon",
		EnableShellCompletion: true,
		Usage:                 "Run the node inventory daemon",
		Description: `Run the collection scheduler and the HTTP API.

The daemon loads the persisted report and the declared identity at startup,
starts serving immediately, and fires the first collection in the background
if the cached report is missing or stale. A periodic ticker keeps the report
fresh; collection failures are logged and retried on the next tick.

The API binds loopback by default and serves:
  GET  /v1/report           cached report envelope
  GET  /v1/report/age       report age and staleness
  POST /v1/refresh          force a collection cycle
  GET  /v1/identity         declared identity (redacted; ?full=true for raw)
  POST /v1/identity/reload  re-read identity from disk
plus /health, /ready, and Prometheus /metrics.`,
		Flags: []cli.Flag{
			configFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			svc := node.NewService(node.Options{
				Collector:     collector.New(version),
				Store:         store.New(cfg.Report.CachePath),
				Version:       version,
				MaxAgeSeconds: cfg.Report.MaxAgeSeconds,
				IdentityPath:  identityPath(cfg),
				OverlayDirs:   cfg.Identity.OverlayDirs,
				RedactPaths:   cfg.Identity.RedactPaths,
			})

			// both are warnings: the daemon serves what it has and
			// collects the rest
			if _, err := svc.LoadFromDisk(); err != nil {
				slog.Warn("failed to load persisted report", "error", err)
			}
			if err := svc.ReloadIdentity(); err != nil {
				slog.Warn("failed to load identity", "error", err)
			}

			apiCfg := api.DefaultConfig()
			apiCfg.Name = name
			apiCfg.Version = version
			apiCfg.Address = cfg.Server.Address
			apiCfg.Port = cfg.Server.Port
			apiCfg.RateLimit = rate.Limit(cfg.Server.RateLimit)
			apiCfg.RateLimitBurst = cfg.Server.RateLimitBurst
			server := api.NewServer(apiCfg, svc)

			interval := time.Duration(cfg.Report.RefreshIntervalSeconds) * time.Second
			slog.Info("starting daemon",
				"addr", server.Addr(),
				"refreshInterval", interval.String(),
				"cachePath", cfg.Report.CachePath)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return server.Start(gctx)
			})
			g.Go(func() error {
				svc.RunScheduler(gctx, interval)
				return nil
			})
			return g.Wait()
		},
	}
}
