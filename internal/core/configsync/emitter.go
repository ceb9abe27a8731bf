package configsync

import (
	"context"
	"sync"
	"time"

	"ingestlab/internal/core/multimodal"
	"ingestlab/internal/platform/logger"

	"github.com/benbjohnson/clock"
)

// Emitter is a trailing-edge debouncer with change de-duplication
// each Notify restarts the quiet window; when the window passes untouched the
// latest config is emitted unless it serializes the same as the last emission
type Emitter struct {
	sessionID string
	clock     clock.Clock
	quiet     time.Duration
	sink      Sink
	log       *logger.Logger
	task      *DelayedTask

	// emitMu serializes sink delivery
	emitMu  sync.Mutex
	mu      sync.Mutex
	lastKey string
	seq     uint64

	// notified counts Notify calls, a fire for an older call is stale
	notified uint64
}

// NewEmitter builds an emitter for one session
func NewEmitter(sessionID string, c clock.Clock, quiet time.Duration, sink Sink, log *logger.Logger) *Emitter {
	if c == nil {
		c = clock.New()
	}
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	if sink == nil {
		sink = Discard
	}
	if log == nil {
		log = logger.Named("configsync")
	}
	return &Emitter{
		sessionID: sessionID,
		clock:     c,
		quiet:     quiet,
		sink:      sink,
		log:       log,
		task:      NewDelayedTask(c),
	}
}

// Notify records cfg as the latest state and restarts the quiet window
func (e *Emitter) Notify(cfg multimodal.Config) {
	// held across Schedule so the task always runs the newest call
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notified++
	n := e.notified
	e.task.Schedule(e.quiet, func() { e.fire(n, cfg) })
}

// Pending reports whether an emission is waiting for the quiet window
func (e *Emitter) Pending() bool { return e.task.Pending() }

// Stop drops any pending emission, including one already waiting to deliver
func (e *Emitter) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notified++
	e.task.Cancel()
}

// LastEmitted returns the serialized form of the last emission, empty if none
func (e *Emitter) LastEmitted() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastKey
}

func (e *Emitter) fire(n uint64, cfg multimodal.Config) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	key := cfg.Key()
	e.mu.Lock()
	if n != e.notified {
		// a newer Notify superseded this fire while it waited for emitMu
		e.mu.Unlock()
		e.log.Debug().Uint64("notify", n).Msg("stale emission dropped")
		return
	}
	if key == e.lastKey {
		e.mu.Unlock()
		e.log.Debug().Str("config", key).Msg("emission suppressed, config unchanged")
		return
	}
	e.lastKey = key
	e.seq++
	em := Emission{
		SessionID: e.sessionID,
		Seq:       e.seq,
		Config:    cfg,
		At:        e.clock.Now(),
	}
	e.mu.Unlock()

	if err := e.sink.Emit(context.Background(), em); err != nil {
		e.log.Warn().Err(err).Uint64("seq", em.Seq).Msg("config emission sink failed")
	}
}
