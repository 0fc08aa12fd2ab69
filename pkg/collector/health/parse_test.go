package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcStat(t *testing.T) {
	data := `cpu  100 0 100 700 100 0 0 0 0 0
cpu0 50 0 50 350 50 0 0 0 0 0
intr 12345
`
	times, err := parseProcStat(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), times.Total)
	// idle + iowait
	assert.Equal(t, uint64(800), times.Idle)
}

func TestParseProcStatMissing(t *testing.T) {
	_, err := parseProcStat("intr 12345\n")
	assert.Error(t, err)
}

func TestCPUUsageBetween(t *testing.T) {
	first := cpuTimes{Idle: 800, Total: 1000}
	second := cpuTimes{Idle: 850, Total: 1100}
	// 100 total delta, 50 idle delta
	assert.InDelta(t, 50.0, cpuUsageBetween(first, second), 0.001)

	// no progress between samples
	assert.Zero(t, cpuUsageBetween(first, first))
}

func TestParseLoadAvg(t *testing.T) {
	one, five, fifteen := parseLoadAvg("0.52 1.04 2.08 2/1234 5678\n")
	assert.Equal(t, 0.52, one)
	assert.Equal(t, 1.04, five)
	assert.Equal(t, 2.08, fifteen)
}

func TestParseMemUsage(t *testing.T) {
	data := `MemTotal:       1000 kB
MemFree:         100 kB
MemAvailable:    400 kB
SwapTotal:       500 kB
SwapFree:        250 kB
`
	mem, swap := parseMemUsage(data)
	assert.InDelta(t, 60.0, mem, 0.001, "usage counts MemAvailable, not MemFree")
	assert.InDelta(t, 50.0, swap, 0.001)
}

func TestParseMemUsageNoSwap(t *testing.T) {
	_, swap := parseMemUsage("MemTotal: 1000 kB\nMemAvailable: 500 kB\nSwapTotal: 0 kB\nSwapFree: 0 kB\n")
	assert.Zero(t, swap)
}

func TestParseDFUsage(t *testing.T) {
	out := `Filesystem     1024-blocks      Used Available Capacity Mounted on
/dev/nvme0n1p2   487652352 214478052 248305212      47% /
tmpfs              8157472       124   8157348       1% /run
/dev/nvme0n1p1      523244      6196    517048       2% /boot
`
	usage := parseDFUsage(out)
	require.Len(t, usage, 2)
	assert.Equal(t, "/", usage[0].MountPoint)
	assert.Equal(t, 47.0, usage[0].UsagePercent)
	assert.Equal(t, "/boot", usage[1].MountPoint)
}

func TestParseFileNR(t *testing.T) {
	open, max := parseFileNR("12345\t0\t9223372036854775807\n")
	assert.Equal(t, uint64(12345), open)
	assert.Equal(t, uint64(9223372036854775807), max)

	open, max = parseFileNR("bad")
	assert.Zero(t, open)
	assert.Zero(t, max)
}
