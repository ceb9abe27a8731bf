package module

import (
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/platform/config"
	"ingestlab/internal/services/api/sessions/repo"
	"ingestlab/internal/services/api/sessions/service"
)

// Options controls session limits, history and remote sink delivery
type Options struct {
	Sync          configsync.Options
	MaxSessions   int
	HistorySize   int
	Table         string
	RetryAttempts uint64
	RetryBase     time.Duration
	SchemaTimeout time.Duration
}

// FromConfig reads SESSIONS_* and SYNC_* values from the service config
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SESSIONS_")
	return Options{
		Sync:          configsync.OptionsFromConfig(cfg),
		MaxSessions:   sc.MayInt("MAX", service.DefaultMaxSessions),
		HistorySize:   sc.MayInt("HISTORY", service.DefaultHistory),
		Table:         sc.MayString("TABLE", repo.DefaultTable),
		RetryAttempts: uint64(max(sc.MayInt("RETRIES", 3), 1)),
		RetryBase:     sc.MayDuration("RETRY_BASE", 100*time.Millisecond),
		SchemaTimeout: sc.MayDuration("SCHEMA_TIMEOUT", 5*time.Second),
	}
}
