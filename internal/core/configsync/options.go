package configsync

import (
	"time"

	"ingestlab/internal/core/multimodal"
	"ingestlab/internal/platform/config"
	"ingestlab/internal/platform/logger"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

const (
	// DefaultSpacing is the minimum gap between two processed queue entries
	DefaultSpacing = 50 * time.Millisecond

	// DefaultQuiet is the emitter quiet window
	DefaultQuiet = 100 * time.Millisecond
)

// Options configures a Session
type Options struct {
	// ID identifies the session, a UUIDv7 is generated when empty
	ID string

	// Initial is the starting configuration
	Initial multimodal.Config

	// PriorityWindow shields assistant updates from user/system updates, <=0 uses the default
	PriorityWindow time.Duration

	// Spacing is the minimum gap between processed queue entries, 0 disables it
	Spacing time.Duration

	// Quiet is the emitter debounce window, <=0 uses the default
	Quiet time.Duration

	// Clock drives all delays, nil uses the wall clock
	Clock clock.Clock

	// Sink receives settled configurations, nil discards them
	Sink Sink

	// Logger is the base logger, nil uses logger.Named("configsync")
	Logger *logger.Logger
}

// DefaultOptions returns options with the reference tuning constants
func DefaultOptions() Options {
	return Options{
		Initial:        multimodal.Default(),
		PriorityWindow: multimodal.DefaultPriorityWindow,
		Spacing:        DefaultSpacing,
		Quiet:          DefaultQuiet,
	}
}

// withDefaults fills unset fields
func (o Options) withDefaults() Options {
	if o.ID == "" {
		o.ID = uuid.Must(uuid.NewV7()).String()
	}
	if o.PriorityWindow <= 0 {
		o.PriorityWindow = multimodal.DefaultPriorityWindow
	}
	if o.Spacing < 0 {
		o.Spacing = 0
	}
	if o.Quiet <= 0 {
		o.Quiet = DefaultQuiet
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Sink == nil {
		o.Sink = Discard
	}
	if o.Logger == nil {
		o.Logger = logger.Named("configsync")
	}
	return o
}

// OptionsFromConfig reads the engine tuning from c, falling back to DefaultOptions
// keys: SYNC_PRIORITY_WINDOW, SYNC_SPACING, SYNC_QUIET
func OptionsFromConfig(c config.Conf) Options {
	o := DefaultOptions()
	o.PriorityWindow = c.MayDuration("SYNC_PRIORITY_WINDOW", o.PriorityWindow)
	o.Spacing = c.MayDuration("SYNC_SPACING", o.Spacing)
	o.Quiet = c.MayDuration("SYNC_QUIET", o.Quiet)
	return o
}
