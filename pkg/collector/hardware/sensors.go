package hardware

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nodescope/nodescope/pkg/report"
)

// readTemperatures samples every thermal zone under the given sysfs root.
// Zone temperatures are exposed in millidegrees Celsius.
func readTemperatures(root string) []report.TemperatureReading {
	zones, err := filepath.Glob(filepath.Join(root, "thermal_zone*"))
	if err != nil {
		return nil
	}

	var readings []report.TemperatureReading
	for _, zone := range zones {
		raw, err := os.ReadFile(filepath.Join(zone, "temp"))
		if err != nil {
			continue
		}
		milli, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil {
			continue
		}

		label := filepath.Base(zone)
		if t, err := os.ReadFile(filepath.Join(zone, "type")); err == nil {
			label = strings.TrimSpace(string(t))
		}

		readings = append(readings, report.TemperatureReading{
			Label:   label,
			Celsius: float64(milli) / 1000,
		})
	}
	return readings
}

// readPower reports battery state from the power_supply sysfs tree, or nil
// on machines without a battery.
func readPower(root string) *report.Power {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	for _, entry := range entries {
		supply := filepath.Join(root, entry.Name())
		kind, err := os.ReadFile(filepath.Join(supply, "type"))
		if err != nil || strings.TrimSpace(string(kind)) != "Battery" {
			continue
		}

		power := &report.Power{}
		if status, err := os.ReadFile(filepath.Join(supply, "status")); err == nil {
			s := strings.TrimSpace(string(status))
			power.Charging = s == "Charging"
			power.OnBattery = s == "Discharging"
		}
		if capacity, err := os.ReadFile(filepath.Join(supply, "capacity")); err == nil {
			if pct, err := strconv.ParseFloat(strings.TrimSpace(string(capacity)), 64); err == nil {
				power.ChargePercent = pct
			}
		}
		return power
	}
	return nil
}
