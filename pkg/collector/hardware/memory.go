package hardware

import (
	"strconv"
	"strings"
)

type memInfo struct {
	TotalBytes     uint64
	AvailableBytes uint64
	SwapTotalBytes uint64
	SwapFreeBytes  uint64
}

// parseMemInfo extracts sizes from /proc/meminfo content. Values are
// reported by the kernel in kB.
func parseMemInfo(data string) memInfo {
	var mem memInfo
	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		kb := parseKB(value)
		switch key {
		case "MemTotal":
			mem.TotalBytes = kb * 1024
		case "MemAvailable":
			mem.AvailableBytes = kb * 1024
		case "SwapTotal":
			mem.SwapTotalBytes = kb * 1024
		case "SwapFree":
			mem.SwapFreeBytes = kb * 1024
		}
	}
	return mem
}

func parseKB(value string) uint64 {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0
	}
	n, _ := strconv.ParseUint(fields[0], 10, 64)
	return n
}
