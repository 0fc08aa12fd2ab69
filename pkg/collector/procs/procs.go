// Package procs summarizes the process table: totals by state and the top
// CPU and memory consumers.
package procs

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/report"
)

// topCount bounds the top-consumer lists.
const topCount = 5

// Probe collects the processes section.
type Probe struct{}

// Collect shells out to ps once and derives all summary fields from the
// single listing.
func (p *Probe) Collect(ctx context.Context) (report.Processes, error) {
	out, err := shell.Run(ctx, "ps", "-eo", "pid,comm,stat,pcpu,pmem", "--no-headers")
	if err != nil {
		return report.Processes{}, err
	}
	return summarize(parsePS(out)), nil
}

type process struct {
	PID        int
	Name       string
	State      string
	CPUPercent float64
	MemPercent float64
}

// parsePS parses headerless `ps -eo pid,comm,stat,pcpu,pmem` output.
func parsePS(output string) []process {
	var procs []process
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		cpu, err1 := strconv.ParseFloat(fields[len(fields)-2], 64)
		mem, err2 := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err1 != nil || err2 != nil {
			continue
		}

		procs = append(procs, process{
			PID: pid,
			// comm may contain spaces; stat, pcpu, pmem never do
			Name:       strings.Join(fields[1:len(fields)-3], " "),
			State:      fields[len(fields)-3],
			CPUPercent: cpu,
			MemPercent: mem,
		})
	}
	return procs
}

func summarize(procs []process) report.Processes {
	sect := report.Processes{Total: len(procs)}
	for _, proc := range procs {
		switch {
		case strings.HasPrefix(proc.State, "R"):
			sect.Running++
		case strings.HasPrefix(proc.State, "Z"):
			sect.Zombie++
		}
	}
	sect.TopCPU = top(procs, func(p process) float64 { return p.CPUPercent })
	sect.TopMemory = top(procs, func(p process) float64 { return p.MemPercent })
	return sect
}

// top returns the topCount heaviest processes by the given measure.
func top(procs []process, measure func(process) float64) []report.ProcessInfo {
	sorted := make([]process, len(procs))
	copy(sorted, procs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return measure(sorted[i]) > measure(sorted[j])
	})

	count := topCount
	if count > len(sorted) {
		count = len(sorted)
	}

	infos := make([]report.ProcessInfo, 0, count)
	for _, proc := range sorted[:count] {
		infos = append(infos, report.ProcessInfo{
			PID:           proc.PID,
			Name:          proc.Name,
			CPUPercent:    proc.CPUPercent,
			MemoryPercent: proc.MemPercent,
		})
	}
	return infos
}
