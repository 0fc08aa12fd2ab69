package os

import "strings"

// parseOSRelease parses os-release(5) content into a key/value map.
// Values may be quoted; comments and malformed lines are ignored.
func parseOSRelease(data string) map[string]string {
	release := map[string]string{}
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(value, `"'`)
		release[key] = value
	}
	return release
}
