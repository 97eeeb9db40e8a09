package parsers

import (
	"math"
	"strconv"
	"strings"
)

// currentNoiseFloorUA is the minimum absolute instantaneous current in µA
// accepted as a real power reading; smaller magnitudes are sensor noise.
const currentNoiseFloorUA = 100.0

// BatteryStats holds the values extracted from a dumpsys battery dump.
// Either field may be nil when the device omits it.
type BatteryStats struct {
	Level *float64 // Battery level in percent.
	TempC *float64 // Battery temperature in Celsius.
}

// Battery parses battery level and temperature from a dumpsys battery dump.
// The device reports temperature in tenths of a degree. It fails only when
// neither field is present.
func Battery(raw string) (*BatteryStats, error) {
	var stats BatteryStats

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "level:"); ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64); err == nil {
				stats.Level = &v
			}
		} else if rest, ok := strings.CutPrefix(line, "temperature:"); ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64); err == nil {
				temp := v / 10.0
				stats.TempC = &temp
			}
		}
	}

	if stats.Level == nil && stats.TempC == nil {
		return nil, newParseError("battery level and temperature")
	}
	return &stats, nil
}

// PowerUse extracts the estimated per-package power use in mAh from a
// dumpsys batterystats dump. It first looks for the labeled value on an
// "Estimated power use" line, then falls back to any bare numeral on a line
// mentioning power use.
func PowerUse(raw string) (float64, error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if strings.Contains(line, "Estimated power use") {
			if _, rest, ok := strings.Cut(line, ":"); ok {
				value, _, _ := strings.Cut(rest, "mAh")
				if v, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
					return v, nil
				}
			}
		}

		if strings.Contains(line, "power use") || strings.Contains(line, "Power use") {
			for _, token := range strings.Fields(line) {
				if v, err := strconv.ParseFloat(token, 64); err == nil {
					return v, nil
				}
			}
		}
	}
	return 0, newParseError("estimated power use")
}

// CurrentNow extracts the instantaneous battery current from a dumpsys
// battery dump and converts it from µA to mA. Readings at or below the
// noise floor are rejected rather than reported as a bogus near-zero draw.
func CurrentNow(raw string) (float64, error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, "current now:")
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			continue
		}
		if math.Abs(value) > currentNoiseFloorUA {
			return value / 1000.0, nil
		}
	}
	return 0, newParseError("current now")
}
