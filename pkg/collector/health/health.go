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

// Package health probes point-in-time utilization: load, CPU, memory,
// swap, disk fill, and file descriptor pressure.
package health

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/defaults"
	"github.com/nodescope/nodescope/pkg/report"
)

// cpuSampleInterval is the delta window for CPU usage. Long enough to
// smooth scheduler jitter, short enough not to dominate collection time.
const cpuSampleInterval = defaults.CPUSampleInterval

// Probe collects the health section.
type Probe struct{}

// Collect samples procfs. CPU usage needs two /proc/stat reads spaced by
// cpuSampleInterval; everything else is a single read.
func (p *Probe) Collect(ctx context.Context) (report.Health, error) {
	var sect report.Health

	if data, err := os.ReadFile("/proc/loadavg"); err == nil {
		sect.LoadAverage1m, sect.LoadAverage5m, sect.LoadAverage15m = parseLoadAvg(string(data))
	} else {
		slog.Warn("failed to read loadavg", slog.String("error", err.Error()))
	}

	if usage, err := sampleCPUUsage(ctx); err == nil {
		sect.CPUUsagePercent = usage
	}

	if data, err := os.ReadFile("/proc/meminfo"); err == nil {
		sect.MemoryUsagePercent, sect.SwapUsagePercent = parseMemUsage(string(data))
	}

	if out, err := shell.Run(ctx, "df", "-P", "-k"); err == nil {
		sect.DiskUsage = parseDFUsage(out)
	}

	if data, err := os.ReadFile("/proc/sys/fs/file-nr"); err == nil {
		sect.OpenFileDescs, sect.MaxFileDescs = parseFileNR(string(data))
	}

	return sect, nil
}

// sampleCPUUsage derives usage from the busy-time delta between two
// /proc/stat snapshots.
func sampleCPUUsage(ctx context.Context) (float64, error) {
	first, err := readCPUTimes()
	if err != nil {
		return 0, err
	}

	select {
	case <-time.After(cpuSampleInterval):
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	second, err := readCPUTimes()
	if err != nil {
		return 0, err
	}
	return cpuUsageBetween(first, second), nil
}

func readCPUTimes() (cpuTimes, error) {
	data, err := os.ReadFile("/proc/stat")
	if err != nil {
		return cpuTimes{}, err
	}
	return parseProcStat(string(data))
}
