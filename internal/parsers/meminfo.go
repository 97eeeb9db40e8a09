package parsers

import (
	"strconv"
	"strings"
)

// Memory extracts the total memory usage in MB from dumpsys meminfo output.
// The value is the first numeric token on a line containing the TOTAL
// marker, reported by the device in KB.
func Memory(raw string) (float64, error) {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, "TOTAL") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if value, err := strconv.ParseFloat(token, 64); err == nil {
				return value / 1024.0, nil
			}
		}
	}
	return 0, newParseError("meminfo TOTAL line")
}
