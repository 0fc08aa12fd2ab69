package procs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePS = `      1 systemd         Ss    0.0  0.1
    312 nodescoped      Ssl   1.5  0.8
    801 firefox         R    25.0 12.4
    802 Web Content     S    10.0  8.0
    999 defunct-worker  Zs    0.0  0.0
   1204 nix-daemon      S     3.2  0.5
`

func TestParsePS(t *testing.T) {
	procs := parsePS(samplePS)
	require.Len(t, procs, 6)

	assert.Equal(t, 1, procs[0].PID)
	assert.Equal(t, "systemd", procs[0].Name)
	assert.Equal(t, "Ss", procs[0].State)
	assert.Equal(t, 25.0, procs[2].CPUPercent)
	assert.Equal(t, "Web Content", procs[3].Name, "command names may contain spaces")
}

func TestParsePSGarbage(t *testing.T) {
	assert.Empty(t, parsePS("not a process line\n"))
	assert.Empty(t, parsePS(""))
}

func TestSummarize(t *testing.T) {
	sect := summarize(parsePS(samplePS))

	assert.Equal(t, 6, sect.Total)
	assert.Equal(t, 1, sect.Running)
	assert.Equal(t, 1, sect.Zombie)

	require.Len(t, sect.TopCPU, 5)
	assert.Equal(t, "firefox", sect.TopCPU[0].Name)
	assert.Equal(t, "Web Content", sect.TopCPU[1].Name)

	require.Len(t, sect.TopMemory, 5)
	assert.Equal(t, "firefox", sect.TopMemory[0].Name)
	assert.Equal(t, 12.4, sect.TopMemory[0].MemoryPercent)
}

func TestSummarizeFewerThanTop(t *testing.T) {
	sect := summarize(parsePS("1 systemd Ss 0.0 0.1\n"))
	assert.Len(t, sect.TopCPU, 1)
	assert.Len(t, sect.TopMemory, 1)
}
