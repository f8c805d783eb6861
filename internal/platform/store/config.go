package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	// AppName is sent as application_name and in ClickHouse client info
	AppName string
	// Role names the binary opening the store, e.g. "cli" or "api"
	Role string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the ping loop on open; 0 means the default
	ConnectRetries int
	// PingTimeout bounds each ping; 0 means the default
	PingTimeout time.Duration
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled     bool
	URL         string
	DialTimeout time.Duration
}
