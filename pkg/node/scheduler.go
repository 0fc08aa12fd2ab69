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
	"log/slog"
	"time"
)

// RunScheduler refreshes the report on the given interval until the
// context is canceled. A refresh that fails is logged and retried on the
// next tick; the scheduler itself never gives up.
//
// The first refresh runs immediately when the cache is stale on startup,
// so a freshly booted daemon does not serve an old report for a full
// interval.
func (s *Service) RunScheduler(ctx context.Context, interval time.Duration) {
	slog.Info("scheduler started", slog.Duration("interval", interval))

	if s.IsStale() {
		s.refreshOnce(ctx)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.refreshOnce(ctx)
		}
	}
}

func (s *Service) refreshOnce(ctx context.Context) {
	if _, err := s.Refresh(ctx); err != nil {
		slog.Error("scheduled refresh failed", slog.String("error", err.Error()))
	}
}
