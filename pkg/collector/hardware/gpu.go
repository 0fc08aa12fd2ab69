package hardware

import (
	"context"
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/collector/shell"
	"github.com/nodescope/nodescope/pkg/report"
)

// collectGPUs prefers nvidia-smi for detail and falls back to scanning
// lspci for display controllers. No GPU tooling at all yields an empty
// list, not an error.
func collectGPUs(ctx context.Context) []report.GPU {
	if out, err := shell.Run(ctx, "nvidia-smi",
		"--query-gpu=name,memory.total", "--format=csv,noheader,nounits"); err == nil {
		if gpus := parseNvidiaSMI(out); len(gpus) > 0 {
			return gpus
		}
	}

	out, err := shell.Run(ctx, "lspci")
	if err != nil {
		return nil
	}
	return parseLSPCI(out)
}

// parseNvidiaSMI parses `nvidia-smi --query-gpu=name,memory.total
// --format=csv,noheader,nounits` output. Memory is reported in MiB.
func parseNvidiaSMI(output string) []report.GPU {
	var gpus []report.GPU
	for _, line := range strings.Split(output, "\n") {
		name, mem, found := strings.Cut(line, ",")
		if !found {
			continue
		}
		gpu := report.GPU{
			Name:   strings.TrimSpace(name),
			Vendor: "NVIDIA",
		}
		if gpu.Name == "" {
			continue
		}
		if mib, err := strconv.ParseUint(strings.TrimSpace(mem), 10, 64); err == nil {
			gpu.VRAMBytes = mib * 1024 * 1024
		}
		gpus = append(gpus, gpu)
	}
	return gpus
}

// parseLSPCI picks VGA and 3D controller lines out of plain lspci output.
func parseLSPCI(output string) []report.GPU {
	var gpus []report.GPU
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") {
			continue
		}
		_, desc, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		gpus = append(gpus, report.GPU{
			Name:   strings.TrimSpace(desc),
			Vendor: pciVendor(desc),
		})
	}
	return gpus
}

func pciVendor(desc string) string {
	switch {
	case strings.Contains(desc, "NVIDIA"):
		return "NVIDIA"
	case strings.Contains(desc, "Advanced Micro Devices"), strings.Contains(desc, "AMD"):
		return "AMD"
	case strings.Contains(desc, "Intel"):
		return "Intel"
	default:
		return ""
	}
}
