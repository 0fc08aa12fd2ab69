package hardware

import (
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/report"
)

// pseudoFilesystems are virtual mounts excluded from disk inventory.
var pseudoFilesystems = map[string]bool{
	"tmpfs":       true,
	"devtmpfs":    true,
	"squashfs":    true,
	"overlay":     true,
	"ramfs":       true,
	"efivarfs":    true,
	"proc":        true,
	"sysfs":       true,
	"devpts":      true,
	"cgroup":      true,
	"cgroup2":     true,
	"securityfs":  true,
	"debugfs":     true,
	"tracefs":     true,
	"fusectl":     true,
	"configfs":    true,
	"bpf":         true,
	"pstore":      true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"binfmt_misc": true,
	"autofs":      true,
	"rpc_pipefs":  true,
	"nsfs":        true,
}

// parseDF turns `df -P -k -T` output into disk entries, skipping pseudo
// filesystems. Sizes in the output are 1K blocks.
func parseDF(output string) []report.Disk {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return nil
	}

	var disks []report.Disk
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 7 {
			continue
		}

		fsType := fields[1]
		if pseudoFilesystems[fsType] {
			continue
		}

		total, err1 := strconv.ParseUint(fields[2], 10, 64)
		used, err2 := strconv.ParseUint(fields[3], 10, 64)
		avail, err3 := strconv.ParseUint(fields[4], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		disks = append(disks, report.Disk{
			Device:         fields[0],
			Filesystem:     fsType,
			MountPoint:     strings.Join(fields[6:], " "),
			TotalBytes:     total * 1024,
			UsedBytes:      used * 1024,
			AvailableBytes: avail * 1024,
		})
	}
	return disks
}
