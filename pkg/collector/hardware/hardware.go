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

// Package hardware probes CPU, memory, storage, GPU, thermal, and power
// state. Linux proc and sysfs files are the primary sources, with external
// utilities for disks and GPUs.
package hardware

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/report"
)

// Probe collects the hardware section.
type Probe struct{}

// Collect reads CPU and memory state from procfs and shells out for disks
// and GPUs. Missing sources degrade their own fields only.
func (p *Probe) Collect(ctx context.Context) (report.Hardware, error) {
	var hw report.Hardware
	hw.CPUArchitecture = runtime.GOARCH

	if data, err := os.ReadFile("/proc/cpuinfo"); err == nil {
		cpu := parseCPUInfo(string(data))
		hw.CPUModel = cpu.Model
		hw.CPUVendor = cpu.Vendor
		hw.CPUCores = cpu.Cores
		hw.CPUThreads = cpu.Threads
		hw.CPUFrequencyMHz = cpu.FrequencyMHz
	} else {
		slog.Warn("failed to read cpuinfo", slog.String("error", err.Error()))
	}

	if data, err := os.ReadFile("/proc/meminfo"); err == nil {
		mem := parseMemInfo(string(data))
		hw.RAMTotalBytes = mem.TotalBytes
		hw.RAMAvailBytes = mem.AvailableBytes
		hw.SwapTotalBytes = mem.SwapTotalBytes
		hw.SwapUsedBytes = mem.SwapTotalBytes - mem.SwapFreeBytes
	} else {
		slog.Warn("failed to read meminfo", slog.String("error", err.Error()))
	}

	if out, err := shell.Run(ctx, "df", "-P", "-k", "-T"); err == nil {
		hw.Disks = parseDF(out)
	} else {
		slog.Warn("failed to list filesystems", slog.String("error", err.Error()))
	}

	hw.GPUs = collectGPUs(ctx)
	hw.Temperatures = readTemperatures("/sys/class/thermal")
	hw.Power = readPower("/sys/class/power_supply")

	return hw, nil
}
