package parsers

import (
	"strconv"
	"strings"
)

// PID extracts the first process id from pidof output.
func PID(raw string) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", newParseError("process id")
	}
	return fields[0], nil
}

// CPU extracts the CPU usage percentage of the process with the given pid
// from a batch-mode top listing. The row format is typically:
//
//	PID USER PR NI VIRT RES SHR S %CPU %MEM TIME+ ARGS
//
// The result is clamped to [0,100]; some top versions report per-core
// percentages above 100.
func CPU(raw string, pid string) (float64, error) {
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.Fields(line)
		if len(parts) < 9 || parts[0] != pid {
			continue
		}
		value, err := strconv.ParseFloat(parts[8], 64)
		if err != nil {
			continue
		}
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		return value, nil
	}
	return 0, newParseError("cpu usage row")
}
