package parsers

import (
	"strconv"
	"strings"
)

// trafficIfacePrefixes lists interface name prefixes counted as external
// traffic. Loopback is always excluded.
var trafficIfacePrefixes = []string{
	"wlan", "rmnet", "rmnet_data", "ccmni", "eth", "usb", "pdp", "cell",
}

// Network extracts a cumulative traffic total in KB from a device-wide
// /proc/net/dev dump. Only the first wlan0 or rmnet line is considered.
//
// This is the legacy single-sample figure: one read of cumulative counters
// cannot produce a rate. Traffic together with the history store supersedes
// it with real bytes-per-second values.
func Network(raw string) (float64, error) {
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, "wlan0") && !strings.Contains(line, "rmnet") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 17 {
			continue
		}
		rx, _ := strconv.ParseFloat(parts[1], 64)
		tx, _ := strconv.ParseFloat(parts[9], 64)
		return (rx + tx) / 1024.0, nil
	}
	return 0, newParseError("network interface line")
}

// Traffic sums the cumulative receive and transmit byte counters of all
// external interfaces in a per-process /proc/<pid>/net/dev dump. It fails
// when no allow-listed interface carried any traffic, so a first sample of
// zero is indistinguishable from a missing interface and is rejected.
func Traffic(raw string) (rxBytes, txBytes int64, err error) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Inter-") || strings.HasPrefix(line, "face") {
			continue
		}

		iface, payload, _ := strings.Cut(line, ":")
		iface = strings.TrimSpace(iface)
		payload = strings.TrimSpace(payload)

		if !isTrafficIface(iface) {
			continue
		}

		cols := strings.Fields(payload)
		if len(cols) < 16 {
			continue
		}
		if v, parseErr := strconv.ParseInt(cols[0], 10, 64); parseErr == nil {
			rxBytes += v
		}
		if v, parseErr := strconv.ParseInt(cols[8], 10, 64); parseErr == nil {
			txBytes += v
		}
	}

	if rxBytes == 0 && txBytes == 0 {
		return 0, 0, newParseError("external traffic interface")
	}
	return rxBytes, txBytes, nil
}

func isTrafficIface(iface string) bool {
	if strings.HasPrefix(iface, "lo") {
		return false
	}
	for _, prefix := range trafficIfacePrefixes {
		if strings.HasPrefix(iface, prefix) {
			return true
		}
	}
	return false
}
