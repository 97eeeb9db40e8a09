package parsers

import (
	"strconv"
	"strings"
)

// GfxStats holds the frame counters extracted from a dumpsys gfxinfo dump.
// TotalFrames is mandatory; the remaining fields are nil when the device
// omits them.
type GfxStats struct {
	TotalFrames  int64    // Cumulative frames rendered since process start.
	JankyFrames  *int64   // Cumulative janky frames, if reported.
	Percentile90 *float64 // 90th percentile frame time in ms, if reported.
	Percentile95 *float64 // 95th percentile frame time in ms, if reported.
}

// GfxInfo parses the labeled counter block of a dumpsys gfxinfo dump:
//
//	Total frames rendered: 11055
//	Janky frames: 50 (4.17%)
//	90th percentile: 19ms
//	95th percentile: 24ms
//
// The total frame count is mandatory and its absence is a hard failure;
// everything else is best effort.
func GfxInfo(raw string) (*GfxStats, error) {
	var stats GfxStats
	haveTotal := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(line, "Total frames rendered:"); ok {
			if v, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64); err == nil {
				stats.TotalFrames = v
				haveTotal = true
			}
		}

		if rest, ok := strings.CutPrefix(line, "Janky frames:"); ok {
			// The count is followed by a parenthesised percentage.
			count, _, _ := strings.Cut(rest, "(")
			if v, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64); err == nil {
				stats.JankyFrames = &v
			}
		}

		if rest, ok := strings.CutPrefix(line, "90th percentile:"); ok {
			if ms, ok := strings.CutSuffix(rest, "ms"); ok {
				if v, err := strconv.ParseFloat(strings.TrimSpace(ms), 64); err == nil {
					stats.Percentile90 = &v
				}
			}
		}

		if rest, ok := strings.CutPrefix(line, "95th percentile:"); ok {
			if ms, ok := strings.CutSuffix(rest, "ms"); ok {
				if v, err := strconv.ParseFloat(strings.TrimSpace(ms), 64); err == nil {
					stats.Percentile95 = &v
				}
			}
		}
	}

	if !haveTotal {
		return nil, newParseError("total frames rendered")
	}
	return &stats, nil
}
