// Package service contains sessions workflows
package service

import (
	"context"
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/multimodal"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"
	ptime "ingestlab/internal/platform/time"
	"ingestlab/internal/services/api/sessions/domain"
	"ingestlab/internal/services/api/sessions/repo"
)

// Service defines the sessions service contract
type Service interface {
	domain.ServicePort
	Len() int
	Close()
}

// Publisher delivers a keyed change notification to a broker
type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
}

// Options configures the sessions service
type Options struct {
	// Sync is the template for every session; ID, Sink and Logger are set per session
	Sync configsync.Options

	MaxSessions int
	HistorySize int

	// Telemetry records emissions in clickhouse, nil disables it
	Telemetry repo.Repo

	// Publisher announces emissions on a broker, nil disables it
	Publisher Publisher

	// remote sinks are retried with exponential backoff
	RetryAttempts uint64
	RetryBase     time.Duration

	Logger *logger.Logger
}

// Svc implements the sessions service
type Svc struct {
	opts Options
	reg  *Registry
	log  *logger.Logger
}

// New constructs a sessions service
func New(opts Options) (*Svc, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Named("sessions")
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistory
	}
	if opts.RetryAttempts == 0 {
		opts.RetryAttempts = 3
	}
	if opts.RetryBase <= 0 {
		opts.RetryBase = 100 * time.Millisecond
	}
	reg, err := NewRegistry(opts.MaxSessions, opts.Logger)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "sessions registry")
	}
	return &Svc{opts: opts, reg: reg, log: opts.Logger}, nil
}

// Create opens a session seeded from the template config and the optional partial
func (s *Svc) Create(_ context.Context, in domain.CreateInput) (domain.SessionView, error) {
	o := s.opts.Sync
	o.ID = ""
	if in.Initial != nil {
		o.Initial = multimodal.Apply(o.Initial, *in.Initial)
	}

	hist := NewHistory(s.opts.HistorySize)
	o.Sink = s.sinks(hist)
	o.Logger = s.log

	sess := configsync.New(o)
	s.reg.Put(&live{session: sess, history: hist})
	s.log.Info().Str("session_id", sess.ID()).Msg("session opened")
	return view(sess), nil
}

// Get returns the current state of a session
func (s *Svc) Get(_ context.Context, id string) (domain.SessionView, error) {
	l, err := s.lookup(id)
	if err != nil {
		return domain.SessionView{}, err
	}
	return view(l.session), nil
}

// Update reconciles a partial from the named source
func (s *Svc) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.UpdateResult, error) {
	src, err := multimodal.ParseSource(in.Source)
	if err != nil {
		return domain.UpdateResult{}, perr.WithField(err, "source")
	}
	l, err := s.lookup(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	out, err := l.session.Reconcile(ctx, in.Partial, src)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	logger.C(ctx).Debug().
		Str("component", "sessions").
		Str("source", out.Source).
		Bool("applied", out.Applied).
		Msg("update reconciled")
	return out, nil
}

// Recommend applies analyzer recommendations as an assistant update
func (s *Svc) Recommend(ctx context.Context, id string, recs []multimodal.Recommendation) (domain.UpdateResult, error) {
	l, err := s.lookup(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return l.session.ReconcileRecommendations(ctx, recs)
}

// Emissions returns the retained emissions of a live session
// sessions that are no longer live are answered from telemetry when it is enabled
func (s *Svc) Emissions(ctx context.Context, id string) (domain.EmissionsOutput, error) {
	if l, ok := s.reg.Get(id); ok {
		return domain.EmissionsOutput{ID: id, Emissions: l.history.Snapshot()}, nil
	}
	if s.opts.Telemetry == nil {
		return domain.EmissionsOutput{}, perr.NotFoundf("session %q not found", id)
	}
	rows, err := s.opts.Telemetry.Recent(ctx, id, s.opts.HistorySize)
	if err != nil {
		return domain.EmissionsOutput{}, err
	}
	if len(rows) == 0 {
		return domain.EmissionsOutput{}, perr.NotFoundf("session %q not found", id)
	}
	return domain.EmissionsOutput{ID: id, Emissions: rows}, nil
}

// Delete closes and forgets a session
func (s *Svc) Delete(_ context.Context, id string) error {
	if !s.reg.Remove(id) {
		return perr.NotFoundf("session %q not found", id)
	}
	s.log.Info().Str("session_id", id).Msg("session closed")
	return nil
}

// Len reports the number of live sessions
func (s *Svc) Len() int { return s.reg.Len() }

// Close closes every live session
func (s *Svc) Close() { s.reg.Purge() }

func (s *Svc) lookup(id string) (*live, error) {
	l, ok := s.reg.Get(id)
	if !ok {
		return nil, perr.NotFoundf("session %q not found", id)
	}
	return l, nil
}

// sinks builds the fan-out for one session: history, log, then the optional remote sinks
func (s *Svc) sinks(hist *History) configsync.Sink {
	out := configsync.MultiSink{hist, configsync.LogSink(s.log)}
	if s.opts.Telemetry != nil {
		out = append(out, configsync.Retrying(configsync.SinkFunc(s.opts.Telemetry.Record), s.opts.RetryAttempts, s.opts.RetryBase))
	}
	if p := s.opts.Publisher; p != nil {
		publish := configsync.SinkFunc(func(ctx context.Context, e configsync.Emission) error {
			return p.Publish(ctx, e.SessionID, e)
		})
		out = append(out, configsync.Retrying(publish, s.opts.RetryAttempts, s.opts.RetryBase))
	}
	return out
}

func view(sess *configsync.Session) domain.SessionView {
	v := domain.SessionView{
		ID:      sess.ID(),
		Config:  sess.Config(),
		Pending: sess.Pending(),
	}
	if ps := sess.Priority(); ps.Set {
		v.LastSource = ps.Source.String()
		v.LastAppliedAt = ptime.Ptr(ps.At.UTC())
	}
	return v
}
