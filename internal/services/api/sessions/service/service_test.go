package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/multimodal"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"
	"ingestlab/internal/services/api/sessions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTelemetry struct {
	mu     sync.Mutex
	rows   []configsync.Emission
	recent []configsync.Emission
}

func (f *fakeTelemetry) EnsureSchema(context.Context) error { return nil }

func (f *fakeTelemetry) Record(_ context.Context, e configsync.Emission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, e)
	return nil
}

func (f *fakeTelemetry) Recent(context.Context, string, int) ([]configsync.Emission, error) {
	return f.recent, nil
}

func (f *fakeTelemetry) recorded() []configsync.Emission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]configsync.Emission(nil), f.rows...)
}

type fakePublisher struct {
	mu    sync.Mutex
	fails int
	calls int
	keys  []string
}

func (f *fakePublisher) Publish(_ context.Context, key string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.fails {
		return perr.Unavailablef("broker down")
	}
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakePublisher) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

func newSvc(t *testing.T, mut func(*Options)) *Svc {
	t.Helper()
	so := configsync.DefaultOptions()
	so.Spacing = 0
	so.Quiet = 10 * time.Millisecond
	o := Options{
		Sync:      so,
		RetryBase: time.Millisecond,
		Logger:    logger.Named("sessions-test"),
	}
	if mut != nil {
		mut(&o)
	}
	s, err := New(o)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestCreate_AppliesInitialPartial(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	v, err := s.Create(context.Background(), domain.CreateInput{
		Initial: &multimodal.Partial{OCR: multimodal.Bool(true)},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, multimodal.Config{OCR: true}, v.Config)
	assert.Empty(t, v.LastSource)
	assert.Nil(t, v.LastAppliedAt)
	assert.Equal(t, 1, s.Len())
}

func TestUpdate_AppliesAndRecordsSource(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	ctx := context.Background()
	v, _ := s.Create(ctx, domain.CreateInput{})

	res, err := s.Update(ctx, v.ID, domain.UpdateInput{
		Source:  "user",
		Partial: &multimodal.Partial{Transcription: multimodal.Bool(true)},
	})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.True(t, res.Config.Transcription)

	got, err := s.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "user", got.LastSource)
	assert.NotNil(t, got.LastAppliedAt)
}

func TestUpdate_UserYieldsToRecentAssistant(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	ctx := context.Background()
	v, _ := s.Create(ctx, domain.CreateInput{})

	res, err := s.Update(ctx, v.ID, domain.UpdateInput{Source: "ai_assistant", Partial: &multimodal.Partial{OCR: multimodal.Bool(false)}})
	require.NoError(t, err)
	assert.Equal(t, multimodal.Config{Transcription: true, ImageCaption: true, VisualAnalysis: true}, res.Config)

	res, err = s.Update(ctx, v.ID, domain.UpdateInput{Source: "user", Partial: &multimodal.Partial{Transcription: multimodal.Bool(false)}})
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.True(t, res.Config.Transcription)
}

func TestUpdate_InvalidSource(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	v, _ := s.Create(context.Background(), domain.CreateInput{})
	_, err := s.Update(context.Background(), v.ID, domain.UpdateInput{Source: "robot"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestRecommend_SetsOnlyImpliedFlags(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	v, _ := s.Create(context.Background(), domain.CreateInput{})
	res, err := s.Recommend(context.Background(), v.ID, []multimodal.Recommendation{
		{ProcessingType: multimodal.StructuredExtraction, Priority: "high"},
	})
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, "ai_assistant", res.Source)
	assert.Equal(t, multimodal.Config{Transcription: true, OCR: true}, res.Config)
}

func TestUnknownSession_IsNotFound(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	ctx := context.Background()

	_, err := s.Get(ctx, "nope")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	_, err = s.Update(ctx, "nope", domain.UpdateInput{Source: "user"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	_, err = s.Recommend(ctx, "nope", nil)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	_, err = s.Emissions(ctx, "nope")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	assert.True(t, perr.IsCode(s.Delete(ctx, "nope"), perr.ErrorCodeNotFound))
}

func TestEmissions_FanOutToEverySink(t *testing.T) {
	t.Parallel()

	tel := &fakeTelemetry{}
	pub := &fakePublisher{fails: 1}
	s := newSvc(t, func(o *Options) {
		o.Telemetry = tel
		o.Publisher = pub
	})
	ctx := context.Background()
	v, _ := s.Create(ctx, domain.CreateInput{})

	_, err := s.Update(ctx, v.ID, domain.UpdateInput{Source: "system", Partial: &multimodal.Partial{ImageCaption: multimodal.Bool(true)}})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(pub.delivered()) == 1 }, 2*time.Second, 5*time.Millisecond)

	out, err := s.Emissions(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, out.Emissions, 1)
	assert.Equal(t, multimodal.Config{ImageCaption: true}, out.Emissions[0].Config)
	assert.Equal(t, uint64(1), out.Emissions[0].Seq)

	assert.Len(t, tel.recorded(), 1)
	assert.Equal(t, []string{v.ID}, pub.delivered())
}

func TestEmissions_FromTelemetryAfterDelete(t *testing.T) {
	t.Parallel()

	tel := &fakeTelemetry{recent: []configsync.Emission{{SessionID: "gone", Seq: 3}}}
	s := newSvc(t, func(o *Options) { o.Telemetry = tel })
	ctx := context.Background()

	out, err := s.Emissions(ctx, "gone")
	require.NoError(t, err)
	assert.Equal(t, "gone", out.ID)
	assert.Len(t, out.Emissions, 1)

	tel.recent = nil
	_, err = s.Emissions(ctx, "gone")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestDelete_ClosesSession(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	ctx := context.Background()
	v, _ := s.Create(ctx, domain.CreateInput{})

	require.NoError(t, s.Delete(ctx, v.ID))
	assert.Equal(t, 0, s.Len())
	_, err := s.Get(ctx, v.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
}

func TestRegistry_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	s := newSvc(t, func(o *Options) { o.MaxSessions = 2 })
	ctx := context.Background()
	a, _ := s.Create(ctx, domain.CreateInput{})
	b, _ := s.Create(ctx, domain.CreateInput{})

	// touch a so b is the eviction candidate
	_, err := s.Get(ctx, a.ID)
	require.NoError(t, err)

	c, _ := s.Create(ctx, domain.CreateInput{})
	assert.Equal(t, 2, s.Len())

	_, err = s.Get(ctx, b.ID)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeNotFound))
	_, err = s.Get(ctx, a.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, c.ID)
	assert.NoError(t, err)
}

func TestRegistry_EvictionClosesSession(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(1, nil)
	require.NoError(t, err)

	first := configsync.New(configsync.Options{})
	reg.Put(&live{session: first, history: NewHistory(1)})
	reg.Put(&live{session: configsync.New(configsync.Options{}), history: NewHistory(1)})
	t.Cleanup(reg.Purge)

	_, err = first.Submit(context.Background(), multimodal.Envelope{Source: multimodal.User})
	assert.True(t, errors.Is(err, configsync.ErrClosed))
}

func TestClose_PurgesEverySession(t *testing.T) {
	t.Parallel()

	s := newSvc(t, nil)
	for range 3 {
		_, _ = s.Create(context.Background(), domain.CreateInput{})
	}
	s.Close()
	assert.Equal(t, 0, s.Len())
}
