package models

import "time"

// MetricKind selects one telemetry metric for collection.
type MetricKind string

// Supported metric kinds.
const (
	KindFPS         MetricKind = "fps"          // frames per second derived from gfxinfo frame counters
	KindCPU         MetricKind = "cpu"          // process CPU usage in percent
	KindPower       MetricKind = "power"        // power draw in mA (or estimated mAh from batterystats)
	KindMemory      MetricKind = "memory"       // process memory in MB
	KindNetwork     MetricKind = "network"      // legacy cumulative network counter in KB
	KindBattery     MetricKind = "battery"      // battery level in percent
	KindBatteryTemp MetricKind = "battery_temp" // battery temperature in Celsius
	KindTraffic     MetricKind = "traffic"      // per-process traffic counters and rates
)

// SnapshotKey identifies the device and package a snapshot was collected for.
type SnapshotKey struct {
	DeviceID string `json:"device_id"` // Device serial as reported by adb.
	Package  string `json:"package"`   // Application package under measurement.
}

// FrameStats holds detailed frame timing data derived from a single
// gfxinfo sample. It is computed per collection call and never persisted.
type FrameStats struct {
	FPS          float64   `json:"fps"`            // Instantaneous frame rate.
	AvgFrameTime float64   `json:"avg_frame_time"` // Average frame time in ms.
	FrameTimes   []float64 `json:"frame_times"`    // Recent frame time samples in ms.
	JankCount    int64     `json:"jank_count"`     // Number of janky frames.
}

// Snapshot represents one assembled telemetry result. Every numeric field is
// optional: a nil pointer means the metric was not requested or was
// unavailable this cycle, never zero.
// CPU is clamped to [0,100] percent. NetworkKBps holds the derived KB/s rate
// when traffic rates are known, or the legacy cumulative KB counter otherwise.
type Snapshot struct {
	DeviceID     string      `json:"device_id" db:"device_id"`
	Package      string      `json:"package" db:"package"`
	FPS          *float64    `json:"fps,omitempty" db:"fps"`
	CPU          *float64    `json:"cpu,omitempty" db:"cpu"`
	Power        *float64    `json:"power,omitempty" db:"power"`
	MemoryMB     *float64    `json:"memory_mb,omitempty" db:"memory_mb"`
	NetworkKBps  *float64    `json:"network_kbps,omitempty" db:"network_kbps"`
	NetworkBps   *float64    `json:"network_bps,omitempty" db:"network_bps"`
	RxBytes      *int64      `json:"rx_bytes,omitempty" db:"rx_bytes"`
	TxBytes      *int64      `json:"tx_bytes,omitempty" db:"tx_bytes"`
	RxBps        *float64    `json:"rx_bps,omitempty" db:"rx_bps"`
	TxBps        *float64    `json:"tx_bps,omitempty" db:"tx_bps"`
	BatteryLevel *float64    `json:"battery_level,omitempty" db:"battery_level"`
	BatteryTempC *float64    `json:"battery_temp_c,omitempty" db:"battery_temp_c"`
	FrameStats   *FrameStats `json:"frame_stats,omitempty" db:"-"`
	Raw          *string     `json:"raw,omitempty" db:"-"`
	CreatedAt    time.Time   `json:"created_at,omitempty" db:"created_at"`
}

// Key returns the SnapshotKey of the snapshot.
func (s *Snapshot) Key() SnapshotKey {
	return SnapshotKey{DeviceID: s.DeviceID, Package: s.Package}
}
