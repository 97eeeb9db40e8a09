package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sbilibin2017/adbperf/internal/models"
	"github.com/sbilibin2017/adbperf/internal/parsers"
)

// DeviceRunner executes a diagnostic command against a device and returns
// its textual output.
type DeviceRunner interface {
	RunDevice(ctx context.Context, deviceID string, args ...string) (string, error)
}

// RateHistory derives instantaneous rates from successive cumulative
// counter samples keyed by device and subject.
type RateHistory interface {
	FrameRate(deviceID, pkg string, totalFrames int64) float64
	TrafficRate(deviceID, pid string, rxBytes, txBytes int64) (rxBps, txBps float64, ok bool)
}

// CollectorService assembles telemetry snapshots by fetching and parsing
// the diagnostic source of each requested metric kind.
type CollectorService struct {
	runner  DeviceRunner
	history RateHistory
	logger  *zap.Logger
}

// NewCollectorService creates a new CollectorService with the given
// transport, rate history and logger. A nil logger disables logging.
func NewCollectorService(
	runner DeviceRunner,
	history RateHistory,
	logger *zap.Logger,
) *CollectorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectorService{
		runner:  runner,
		history: history,
		logger:  logger,
	}
}

// Collect fetches the requested metric kinds for one package on one device
// and merges them into a single snapshot. Kinds are treated as a set:
// duplicates and ordering are irrelevant. Each metric's failure is isolated
// and leaves its field absent; Collect itself never fails, even when every
// individual metric does. An empty kind set issues no device commands.
func (svc *CollectorService) Collect(
	ctx context.Context,
	deviceID string,
	pkg string,
	kinds []models.MetricKind,
) *models.Snapshot {
	snapshot := &models.Snapshot{
		DeviceID:  deviceID,
		Package:   pkg,
		CreatedAt: time.Now(),
	}

	needPID := false
	for _, kind := range kinds {
		if kind == models.KindCPU || kind == models.KindTraffic {
			needPID = true
			break
		}
	}

	var pid string
	if needPID {
		resolved, err := svc.resolvePID(ctx, deviceID, pkg)
		if err != nil {
			// Metrics depending on the pid stay absent for this cycle.
			svc.logDropped(deviceID, pkg, "pid", err)
		} else {
			pid = resolved
		}
	}

	batteryFetched := false
	seen := make(map[models.MetricKind]bool, len(kinds))

	for _, kind := range kinds {
		if seen[kind] {
			continue
		}
		seen[kind] = true

		switch kind {
		case models.KindCPU:
			if pid == "" {
				continue
			}
			value, err := svc.fetchCPU(ctx, deviceID, pid)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			snapshot.CPU = &value

		case models.KindMemory:
			value, err := svc.fetchMemory(ctx, deviceID, pkg)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			snapshot.MemoryMB = &value

		case models.KindNetwork:
			value, err := svc.fetchNetwork(ctx, deviceID)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			// The derived traffic rate wins over this legacy cumulative figure.
			if snapshot.NetworkKBps == nil {
				snapshot.NetworkKBps = &value
			}

		case models.KindTraffic:
			if pid == "" {
				continue
			}
			stats, err := svc.fetchTraffic(ctx, deviceID, pid)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			snapshot.RxBytes = &stats.rxBytes
			snapshot.TxBytes = &stats.txBytes
			snapshot.RxBps = stats.rxBps
			snapshot.TxBps = stats.txBps
			if total, ok := stats.totalBps(); ok {
				kbps := total / 1024.0
				snapshot.NetworkBps = &total
				snapshot.NetworkKBps = &kbps
			}

		case models.KindFPS:
			frameStats, err := svc.fetchFrameStats(ctx, deviceID, pkg)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			snapshot.FPS = &frameStats.FPS
			snapshot.FrameStats = frameStats

		case models.KindPower:
			value, err := svc.fetchPower(ctx, deviceID, pkg)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			snapshot.Power = &value

		case models.KindBattery, models.KindBatteryTemp:
			// One battery dump serves both kinds.
			if batteryFetched {
				continue
			}
			batteryFetched = true
			stats, err := svc.fetchBattery(ctx, deviceID)
			if err != nil {
				svc.logDropped(deviceID, pkg, string(kind), err)
				continue
			}
			snapshot.BatteryLevel = stats.Level
			snapshot.BatteryTempC = stats.TempC
		}
	}

	return snapshot
}

func (svc *CollectorService) logDropped(deviceID, pkg, metric string, err error) {
	svc.logger.Debug("metric unavailable this cycle",
		zap.String("device", deviceID),
		zap.String("package", pkg),
		zap.String("metric", metric),
		zap.Error(err),
	)
}

// resolvePID finds the process id of the package on the device.
func (svc *CollectorService) resolvePID(ctx context.Context, deviceID, pkg string) (string, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "pidof", pkg)
	if err != nil {
		return "", err
	}
	return parsers.PID(raw)
}

func (svc *CollectorService) fetchCPU(ctx context.Context, deviceID, pid string) (float64, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "top", "-b", "-n", "1", "-q", "-p", pid)
	if err != nil {
		return 0, err
	}
	return parsers.CPU(raw, pid)
}

func (svc *CollectorService) fetchMemory(ctx context.Context, deviceID, pkg string) (float64, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "dumpsys", "meminfo", pkg)
	if err != nil {
		return 0, err
	}
	return parsers.Memory(raw)
}

func (svc *CollectorService) fetchNetwork(ctx context.Context, deviceID string) (float64, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "cat", "/proc/net/dev")
	if err != nil {
		return 0, err
	}
	return parsers.Network(raw)
}

// fetchFrameStats parses a gfxinfo dump and derives the frame rate from the
// cumulative frame counter via the rate history.
func (svc *CollectorService) fetchFrameStats(ctx context.Context, deviceID, pkg string) (*models.FrameStats, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "dumpsys", "gfxinfo", pkg)
	if err != nil {
		return nil, err
	}

	gfx, err := parsers.GfxInfo(raw)
	if err != nil {
		return nil, err
	}

	fps := svc.history.FrameRate(deviceID, pkg, gfx.TotalFrames)

	avgFrameTime := 1000.0 / fps
	if gfx.Percentile90 != nil {
		avgFrameTime = *gfx.Percentile90
	}

	frameTimes := []float64{avgFrameTime}
	if gfx.Percentile95 != nil {
		frameTimes = append(frameTimes, *gfx.Percentile95)
	}

	var jankCount int64
	if gfx.JankyFrames != nil {
		jankCount = *gfx.JankyFrames
	}

	return &models.FrameStats{
		FPS:          fps,
		AvgFrameTime: avgFrameTime,
		FrameTimes:   frameTimes,
		JankCount:    jankCount,
	}, nil
}

// fetchPower tries the per-package batterystats estimate first and falls
// back to the instantaneous current of the generic battery dump.
func (svc *CollectorService) fetchPower(ctx context.Context, deviceID, pkg string) (float64, error) {
	if raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "dumpsys", "batterystats", pkg); err == nil {
		if value, err := parsers.PowerUse(raw); err == nil {
			return value, nil
		}
	}

	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "dumpsys", "battery")
	if err != nil {
		return 0, err
	}
	return parsers.CurrentNow(raw)
}

func (svc *CollectorService) fetchBattery(ctx context.Context, deviceID string) (*parsers.BatteryStats, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "dumpsys", "battery")
	if err != nil {
		return nil, err
	}
	return parsers.Battery(raw)
}

// trafficStats is one fetched traffic sample with the rates derived from it.
type trafficStats struct {
	rxBytes int64
	txBytes int64
	rxBps   *float64
	txBps   *float64
}

// totalBps returns the combined throughput when at least one direction is known.
func (t *trafficStats) totalBps() (float64, bool) {
	switch {
	case t.rxBps != nil && t.txBps != nil:
		return *t.rxBps + *t.txBps, true
	case t.rxBps != nil:
		return *t.rxBps, true
	case t.txBps != nil:
		return *t.txBps, true
	default:
		return 0, false
	}
}

func (svc *CollectorService) fetchTraffic(ctx context.Context, deviceID, pid string) (*trafficStats, error) {
	raw, err := svc.runner.RunDevice(ctx, deviceID, "shell", "cat", "/proc/"+pid+"/net/dev")
	if err != nil {
		return nil, err
	}

	rxBytes, txBytes, err := parsers.Traffic(raw)
	if err != nil {
		return nil, err
	}

	stats := &trafficStats{rxBytes: rxBytes, txBytes: txBytes}
	if rxBps, txBps, ok := svc.history.TrafficRate(deviceID, pid, rxBytes, txBytes); ok {
		stats.rxBps = &rxBps
		stats.txBps = &txBps
	}
	return stats, nil
}
