package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetDev(t *testing.T) {
	data := `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo: 1234567    9876    0    0    0     0          0         0  1234567    9876    0    0    0     0       0          0
  eth0: 987654321 765432    0    1    0     0          0       100 123456789 234567    0    0    0     0       0          0
`
	counters := parseNetDev(data)
	require.Len(t, counters, 2)
	assert.Equal(t, uint64(1234567), counters["lo"].RxBytes)
	assert.Equal(t, uint64(987654321), counters["eth0"].RxBytes)
	assert.Equal(t, uint64(123456789), counters["eth0"].TxBytes)
}

func TestParseIPRoutes(t *testing.T) {
	out := `default via 192.168.1.1 dev eth0 proto dhcp src 192.168.1.50 metric 100
10.42.0.0/24 dev cni0 proto kernel scope link src 10.42.0.1
192.168.1.0/24 dev eth0 proto kernel scope link src 192.168.1.50
`
	routes, gateway := parseIPRoutes(out)
	require.Len(t, routes, 3)

	assert.Equal(t, "192.168.1.1", gateway)
	assert.Equal(t, "default", routes[0].Destination)
	assert.Equal(t, "192.168.1.1", routes[0].Gateway)
	assert.Equal(t, "eth0", routes[0].Interface)
	assert.Equal(t, "10.42.0.0/24", routes[1].Destination)
	assert.Equal(t, "", routes[1].Gateway)
	assert.Equal(t, "cni0", routes[1].Interface)
}

func TestParseIPRoutesNoDefault(t *testing.T) {
	routes, gateway := parseIPRoutes("10.0.0.0/8 dev wg0 scope link\n")
	require.Len(t, routes, 1)
	assert.Empty(t, gateway)
}

func TestParseResolvConf(t *testing.T) {
	data := `# Generated by resolvconf
nameserver 1.1.1.1
nameserver 2606:4700:4700::1111
search lan
options edns0
`
	assert.Equal(t, []string{"1.1.1.1", "2606:4700:4700::1111"}, parseResolvConf(data))
}

func TestParseSS(t *testing.T) {
	out := `tcp   LISTEN 0      4096         127.0.0.1:9100       0.0.0.0:*    users:(("nodescoped",pid=312,fd=7))
tcp   LISTEN 0      128              [::1]:631            [::]:*
udp   UNCONN 0      0              0.0.0.0:5353       0.0.0.0:*    users:(("avahi-daemon",pid=801,fd=12))
`
	ports := parseSS(out)
	require.Len(t, ports, 3)

	assert.Equal(t, 9100, ports[0].Port)
	assert.Equal(t, "tcp", ports[0].Protocol)
	assert.Equal(t, "127.0.0.1", ports[0].Address)
	assert.Equal(t, "nodescoped", ports[0].Process)

	assert.Equal(t, 631, ports[1].Port)
	assert.Equal(t, "::1", ports[1].Address)
	assert.Empty(t, ports[1].Process)

	assert.Equal(t, "udp", ports[2].Protocol)
	assert.Equal(t, "avahi-daemon", ports[2].Process)
}

func TestSplitHostPort(t *testing.T) {
	host, port, ok := splitHostPort("[::]:22")
	require.True(t, ok)
	assert.Equal(t, "::", host)
	assert.Equal(t, "22", port)

	_, _, ok = splitHostPort("no-port")
	assert.False(t, ok)
}
