package configs

import (
	"strings"
)

// Agent defaults.
const (
	DefaultServerAddress  = "http://localhost:8080"
	DefaultPollInterval   = 2
	DefaultReportInterval = 10
	DefaultADBPath        = "adb"
)

// DefaultMetrics is the metric set collected when none is configured.
var DefaultMetrics = []string{"fps", "cpu", "memory", "battery", "battery_temp", "traffic"}

// AgentConfig holds configuration parameters for the collection agent.
type AgentConfig struct {
	Address        string   `json:"address"`         // Snapshot server base URL
	DeviceID       string   `json:"device_id"`       // Device serial; empty picks the first attached device
	Package        string   `json:"package"`         // Package under measurement
	Metrics        []string `json:"metrics"`         // Metric kinds to collect each poll
	ADBPath        string   `json:"adb_path"`        // Path to the adb binary
	Key            string   `json:"key"`             // Key for request body signing
	PollInterval   int      `json:"poll_interval"`   // Poll interval in seconds
	ReportInterval int      `json:"report_interval"` // Report interval in seconds
}

// AgentOpt applies a configuration option to AgentConfig.
type AgentOpt func(*AgentConfig)

// NewAgentConfig creates an AgentConfig with defaults and applies the given
// options on top.
func NewAgentConfig(opts ...AgentOpt) *AgentConfig {
	cfg := &AgentConfig{
		Address:        DefaultServerAddress,
		Metrics:        DefaultMetrics,
		ADBPath:        DefaultADBPath,
		PollInterval:   DefaultPollInterval,
		ReportInterval: DefaultReportInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAgentServerAddress sets Address to the first non-empty value.
func WithAgentServerAddress(addrs ...string) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, addr := range addrs {
			if strings.TrimSpace(addr) != "" {
				cfg.Address = addr
				break
			}
		}
	}
}

// WithAgentDeviceID sets DeviceID to the first non-empty value.
func WithAgentDeviceID(ids ...string) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, id := range ids {
			if strings.TrimSpace(id) != "" {
				cfg.DeviceID = id
				break
			}
		}
	}
}

// WithAgentPackage sets Package to the first non-empty value.
func WithAgentPackage(packages ...string) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, pkg := range packages {
			if strings.TrimSpace(pkg) != "" {
				cfg.Package = pkg
				break
			}
		}
	}
}

// WithAgentMetrics sets Metrics to the first non-empty list.
func WithAgentMetrics(lists ...[]string) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, list := range lists {
			if len(list) > 0 {
				cfg.Metrics = list
				break
			}
		}
	}
}

// WithAgentADBPath sets ADBPath to the first non-empty value.
func WithAgentADBPath(paths ...string) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, path := range paths {
			if strings.TrimSpace(path) != "" {
				cfg.ADBPath = path
				break
			}
		}
	}
}

// WithAgentKey sets Key to the first non-empty value.
func WithAgentKey(keys ...string) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, key := range keys {
			if strings.TrimSpace(key) != "" {
				cfg.Key = key
				break
			}
		}
	}
}

// WithAgentPollInterval sets PollInterval to the first positive value.
func WithAgentPollInterval(intervals ...int) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, interval := range intervals {
			if interval > 0 {
				cfg.PollInterval = interval
				break
			}
		}
	}
}

// WithAgentReportInterval sets ReportInterval to the first positive value.
func WithAgentReportInterval(intervals ...int) AgentOpt {
	return func(cfg *AgentConfig) {
		for _, interval := range intervals {
			if interval > 0 {
				cfg.ReportInterval = interval
				break
			}
		}
	}
}
