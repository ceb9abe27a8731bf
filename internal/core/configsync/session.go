package configsync

import (
	"context"
	"sync"

	"ingestlab/internal/core/multimodal"
	"ingestlab/internal/platform/logger"

	"github.com/benbjohnson/clock"
)

// Session is one configuration editing context
// it owns the value store and the priority state; no state is shared between sessions
type Session struct {
	id    string
	clock clock.Clock
	log   *logger.Logger

	store    *ValueStore
	arbiter  multimodal.Arbiter
	priority priority
	queue    *Queue
	emitter  *Emitter
	merger   *Merger

	closeOnce sync.Once
}

// New builds a session and starts its queue consumer
func New(opts Options) *Session {
	o := opts.withDefaults()
	log := o.Logger.With().Str("session_id", o.ID).Logger()

	s := &Session{
		id:      o.ID,
		clock:   o.Clock,
		log:     &log,
		store:   NewValueStore(o.Initial),
		arbiter: multimodal.NewArbiter(o.PriorityWindow),
	}
	s.emitter = NewEmitter(o.ID, o.Clock, o.Quiet, o.Sink, s.log)
	s.queue = NewQueue(o.Clock, o.Spacing, s.apply)
	s.merger = NewMerger(o.Clock, s.queue)
	return s
}

// ID returns the session id
func (s *Session) ID() string { return s.id }

// Config returns the current configuration snapshot
func (s *Session) Config() multimodal.Config { return s.store.Load() }

// Priority returns the source and instant of the last applied update
func (s *Session) Priority() multimodal.PriorityState { return s.priority.load() }

// Reconcile merges a partial update from src
func (s *Session) Reconcile(ctx context.Context, p *multimodal.Partial, src multimodal.Source) (Outcome, error) {
	return s.merger.Reconcile(ctx, p, src)
}

// ReconcileRecommendations applies analyzer recommendations as an assistant update
func (s *Session) ReconcileRecommendations(ctx context.Context, recs []multimodal.Recommendation) (Outcome, error) {
	return s.merger.ReconcileRecommendations(ctx, recs)
}

// Submit hands a prebuilt envelope to the queue and waits for its verdict
func (s *Session) Submit(ctx context.Context, env multimodal.Envelope) (Outcome, error) {
	if env.At.IsZero() {
		env.At = s.clock.Now()
	}
	return s.queue.Submit(ctx, env)
}

// Enqueue hands a prebuilt envelope to the queue without waiting
func (s *Session) Enqueue(env multimodal.Envelope) error {
	if env.At.IsZero() {
		env.At = s.clock.Now()
	}
	return s.queue.Enqueue(env)
}

// Pending reports whether updates are queued or an emission is waiting
func (s *Session) Pending() bool { return s.queue.Len() > 0 || s.emitter.Pending() }

// Close stops the consumer and drops any pending emission, safe to call twice
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.queue.Close()
		s.emitter.Stop()
		s.log.Debug().Msg("config session closed")
	})
}

// apply runs on the queue consumer only
func (s *Session) apply(env multimodal.Envelope) Outcome {
	if !s.arbiter.CanApply(s.priority.load(), env.Source, env.At) {
		s.log.Debug().
			Str("source", env.Source.String()).
			Time("at", env.At).
			Msg("update dropped inside assistant priority window")
		return Outcome{Applied: false, Config: s.store.Load(), Source: env.Source.String()}
	}

	cfg := s.store.apply(env.Partial)
	s.priority.record(env.Source, env.At)
	s.emitter.Notify(cfg)
	return Outcome{Applied: true, Config: cfg, Source: env.Source.String()}
}
