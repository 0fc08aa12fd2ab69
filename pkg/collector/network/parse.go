package network

import (
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/report"
)

type ifaceCounters struct {
	RxBytes uint64
	TxBytes uint64
}

// parseNetDev reads per-interface byte counters from /proc/net/dev.
// The first two lines are headers; receive bytes is the first value after
// the interface name and transmit bytes the ninth.
func parseNetDev(data string) map[string]ifaceCounters {
	counters := map[string]ifaceCounters{}
	for _, line := range strings.Split(data, "\n") {
		name, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) < 9 {
			continue
		}
		rx, err1 := strconv.ParseUint(fields[0], 10, 64)
		tx, err2 := strconv.ParseUint(fields[8], 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		counters[strings.TrimSpace(name)] = ifaceCounters{RxBytes: rx, TxBytes: tx}
	}
	return counters
}

// parseIPRoutes parses `ip route show` output into route entries and picks
// the gateway of the default route.
func parseIPRoutes(output string) ([]report.Route, string) {
	var routes []report.Route
	var gateway string

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		route := report.Route{Destination: fields[0]}
		for i := 1; i+1 < len(fields); i++ {
			switch fields[i] {
			case "via":
				route.Gateway = fields[i+1]
			case "dev":
				route.Interface = fields[i+1]
			}
		}
		if route.Destination == "default" && gateway == "" {
			gateway = route.Gateway
		}
		routes = append(routes, route)
	}
	return routes, gateway
}

// parseResolvConf extracts nameserver entries from resolv.conf content.
func parseResolvConf(data string) []string {
	var resolvers []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			resolvers = append(resolvers, fields[1])
		}
	}
	return resolvers
}

// parseSS parses headerless `ss -H -lntu` output. Each line is
//
//	tcp LISTEN 0 4096 127.0.0.1:9100 0.0.0.0:* users:(("proc",pid=1,fd=3))
//
// with the process column present only under root.
func parseSS(output string) []report.ListeningPort {
	var ports []report.ListeningPort
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		addr, portStr, found := splitHostPort(fields[4])
		if !found {
			continue
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			continue
		}

		entry := report.ListeningPort{
			Protocol: fields[0],
			Address:  addr,
			Port:     port,
		}
		if len(fields) >= 7 {
			entry.Process = ssProcessName(fields[6])
		}
		ports = append(ports, entry)
	}
	return ports
}

// splitHostPort splits on the last colon so bracketed and unbracketed IPv6
// literals both work.
func splitHostPort(s string) (host, port string, ok bool) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return "", "", false
	}
	host = strings.Trim(s[:i], "[]")
	return host, s[i+1:], true
}

// ssProcessName pulls the first process name out of a users:(("x",pid=1,fd=2))
// column.
func ssProcessName(col string) string {
	_, rest, found := strings.Cut(col, `(("`)
	if !found {
		return ""
	}
	name, _, found := strings.Cut(rest, `"`)
	if !found {
		return ""
	}
	return name
}
