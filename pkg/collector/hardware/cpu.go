package hardware

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type cpuInfo struct {
	Model        string
	Vendor       string
	Cores        int
	Threads      int
	FrequencyMHz uint64
}

// vendorNames maps /proc/cpuinfo vendor_id strings to display names.
var vendorNames = map[string]string{
	"GenuineIntel": "Intel",
	"AuthenticAMD": "AMD",
}

// parseCPUInfo extracts the CPU topology from /proc/cpuinfo content.
// Threads count processor entries; cores count distinct (physical id,
// core id) pairs, falling back to the thread count when topology fields
// are absent (common on ARM and in VMs).
func parseCPUInfo(data string) cpuInfo {
	var info cpuInfo
	physicalCores := map[string]bool{}
	var physicalID, coreID string

	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			info.Threads++
			physicalID, coreID = "", ""
		case "model name":
			if info.Model == "" {
				info.Model = value
			}
		case "vendor_id":
			if info.Vendor == "" {
				info.Vendor = displayVendor(value)
			}
		case "cpu MHz":
			if info.FrequencyMHz == 0 {
				if mhz, err := strconv.ParseFloat(value, 64); err == nil {
					info.FrequencyMHz = uint64(mhz)
				}
			}
		case "physical id":
			physicalID = value
		case "core id":
			coreID = value
			physicalCores[physicalID+":"+coreID] = true
		}
	}

	info.Cores = len(physicalCores)
	if info.Cores == 0 {
		info.Cores = info.Threads
	}
	return info
}

func displayVendor(vendorID string) string {
	if name, ok := vendorNames[vendorID]; ok {
		return name
	}
	return cases.Title(language.English).String(strings.ToLower(vendorID))
}
