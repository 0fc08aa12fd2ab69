package health

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/report"
)

type cpuTimes struct {
	Idle  uint64
	Total uint64
}

// parseProcStat reads the aggregate cpu line of /proc/stat. Idle includes
// iowait; both count as not-busy.
func parseProcStat(data string) (cpuTimes, error) {
	for _, line := range strings.Split(data, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}

		var times cpuTimes
		for i, field := range fields[1:] {
			value, err := strconv.ParseUint(field, 10, 64)
			if err != nil {
				return cpuTimes{}, fmt.Errorf("bad cpu field %q: %w", field, err)
			}
			times.Total += value
			// fields 4 and 5 are idle and iowait
			if i == 3 || i == 4 {
				times.Idle += value
			}
		}
		return times, nil
	}
	return cpuTimes{}, fmt.Errorf("no aggregate cpu line")
}

// cpuUsageBetween computes busy percentage across two snapshots.
func cpuUsageBetween(first, second cpuTimes) float64 {
	totalDelta := float64(second.Total) - float64(first.Total)
	if totalDelta <= 0 {
		return 0
	}
	idleDelta := float64(second.Idle) - float64(first.Idle)
	usage := (totalDelta - idleDelta) / totalDelta * 100
	if usage < 0 {
		return 0
	}
	return usage
}

// parseLoadAvg reads the three load averages from /proc/loadavg.
func parseLoadAvg(data string) (one, five, fifteen float64) {
	fields := strings.Fields(data)
	if len(fields) < 3 {
		return 0, 0, 0
	}
	one, _ = strconv.ParseFloat(fields[0], 64)
	five, _ = strconv.ParseFloat(fields[1], 64)
	fifteen, _ = strconv.ParseFloat(fields[2], 64)
	return one, five, fifteen
}

// parseMemUsage derives memory and swap usage percentages from
// /proc/meminfo content. Memory usage counts MemAvailable, not MemFree,
// so reclaimable cache is not reported as pressure.
func parseMemUsage(data string) (memPercent, swapPercent float64) {
	values := map[string]uint64{}
	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields := strings.Fields(value)
		if len(fields) == 0 {
			continue
		}
		if kb, err := strconv.ParseUint(fields[0], 10, 64); err == nil {
			values[key] = kb
		}
	}

	if total := values["MemTotal"]; total > 0 {
		memPercent = float64(total-values["MemAvailable"]) / float64(total) * 100
	}
	if swapTotal := values["SwapTotal"]; swapTotal > 0 {
		swapPercent = float64(swapTotal-values["SwapFree"]) / float64(swapTotal) * 100
	}
	return memPercent, swapPercent
}

// parseDFUsage reads per-mount usage percentages from `df -P -k` output.
func parseDFUsage(output string) []report.DiskUsage {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return nil
	}

	var usage []report.DiskUsage
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 6 || !strings.HasPrefix(fields[0], "/dev/") {
			continue
		}
		pct, err := strconv.ParseFloat(strings.TrimSuffix(fields[4], "%"), 64)
		if err != nil {
			continue
		}
		usage = append(usage, report.DiskUsage{
			MountPoint:   strings.Join(fields[5:], " "),
			UsagePercent: pct,
		})
	}
	return usage
}

// parseFileNR reads allocated and maximum file handles from
// /proc/sys/fs/file-nr (allocated, unused, max).
func parseFileNR(data string) (open, max uint64) {
	fields := strings.Fields(data)
	if len(fields) < 3 {
		return 0, 0
	}
	open, _ = strconv.ParseUint(fields[0], 10, 64)
	max, _ = strconv.ParseUint(fields[2], 10, 64)
	return open, max
}
