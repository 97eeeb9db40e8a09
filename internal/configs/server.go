package configs

import (
	"strings"
)

// Server defaults.
const (
	DefaultListenAddress = "localhost:8080"
	DefaultStoreInterval = 300
	DefaultStoragePath   = "snapshots.jsonl"
)

// ServerConfig holds configuration settings for the snapshot server.
type ServerConfig struct {
	Address         string `json:"address"`           // Listen address
	StoreInterval   int    `json:"store_interval"`    // Interval in seconds between file flushes
	FileStoragePath string `json:"file_storage_path"` // File path for snapshot persistence, empty disables it
	Restore         bool   `json:"restore"`           // Restore snapshots from file on startup
	DatabaseDSN     string `json:"database_dsn"`      // Database DSN, empty keeps snapshots in memory
	Key             string `json:"key"`               // Key for request body verification
	TrustedSubnet   string `json:"trusted_subnet"`    // CIDR of clients allowed to reach the server
}

// ServerOpt applies a configuration option to ServerConfig.
type ServerOpt func(*ServerConfig)

// NewServerConfig creates a ServerConfig with defaults and applies the given
// options on top.
func NewServerConfig(opts ...ServerOpt) *ServerConfig {
	cfg := &ServerConfig{
		Address:       DefaultListenAddress,
		StoreInterval: DefaultStoreInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithServerAddress sets Address to the first non-empty value.
func WithServerAddress(addrs ...string) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, addr := range addrs {
			if strings.TrimSpace(addr) != "" {
				cfg.Address = addr
				break
			}
		}
	}
}

// WithServerStoreInterval sets StoreInterval to the first positive value.
func WithServerStoreInterval(intervals ...int) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, interval := range intervals {
			if interval > 0 {
				cfg.StoreInterval = interval
				break
			}
		}
	}
}

// WithServerFileStoragePath sets FileStoragePath to the first non-empty value.
func WithServerFileStoragePath(paths ...string) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, path := range paths {
			if strings.TrimSpace(path) != "" {
				cfg.FileStoragePath = path
				break
			}
		}
	}
}

// WithServerRestore enables restore when any value is true.
func WithServerRestore(restores ...bool) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, r := range restores {
			if r {
				cfg.Restore = true
				break
			}
		}
	}
}

// WithServerDatabaseDSN sets DatabaseDSN to the first non-empty value.
func WithServerDatabaseDSN(dsns ...string) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, dsn := range dsns {
			if strings.TrimSpace(dsn) != "" {
				cfg.DatabaseDSN = dsn
				break
			}
		}
	}
}

// WithServerKey sets Key to the first non-empty value.
func WithServerKey(keys ...string) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, key := range keys {
			if strings.TrimSpace(key) != "" {
				cfg.Key = key
				break
			}
		}
	}
}

// WithServerTrustedSubnet sets TrustedSubnet to the first non-empty value.
func WithServerTrustedSubnet(subnets ...string) ServerOpt {
	return func(cfg *ServerConfig) {
		for _, subnet := range subnets {
			if strings.TrimSpace(subnet) != "" {
				cfg.TrustedSubnet = subnet
				break
			}
		}
	}
}
