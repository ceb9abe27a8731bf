package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to postgres as application_name
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled   bool
	URL       string
	MaxConns  int32
	LogSQL    bool
	SlowQuery time.Duration // zero disables slow flagging

	ConnectRetries int           // default 6
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	// ClientName, ClientVersion and Component are reported as client info
	ClientName    string
	ClientVersion string
	Component     string

	ConnectRetries int
	PingTimeout    time.Duration
}
