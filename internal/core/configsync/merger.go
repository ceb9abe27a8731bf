package configsync

import (
	"context"

	"ingestlab/internal/core/multimodal"
	perr "ingestlab/internal/platform/errors"

	"github.com/benbjohnson/clock"
)

// Submitter accepts envelopes for serialized application
type Submitter interface {
	Submit(ctx context.Context, env multimodal.Envelope) (Outcome, error)
}

// Merger turns partial updates from the UI or the assistant into envelopes
type Merger struct {
	clock clock.Clock
	queue Submitter
}

// NewMerger returns a merger that stamps envelopes with c and submits to q
func NewMerger(c clock.Clock, q Submitter) *Merger {
	if c == nil {
		c = clock.New()
	}
	return &Merger{clock: c, queue: q}
}

// Prepare normalizes p for src without submitting it
// a nil partial is an empty one; assistant partials get the assistant fill-in
func Prepare(p *multimodal.Partial, src multimodal.Source) multimodal.Partial {
	var out multimodal.Partial
	if p != nil {
		out = *p
	}
	if src == multimodal.AIAssistant {
		out = multimodal.FillForAssistant(out)
	}
	return out
}

// Reconcile normalizes p, submits it, and returns the verdict
// Applied is false when the arbiter dropped the update
func (m *Merger) Reconcile(ctx context.Context, p *multimodal.Partial, src multimodal.Source) (Outcome, error) {
	if !src.Valid() {
		return Outcome{}, perr.InvalidArgf("unknown update source %d", uint8(src))
	}
	return m.queue.Submit(ctx, multimodal.Envelope{
		Partial: Prepare(p, src),
		Source:  src,
		At:      m.clock.Now(),
	})
}

// ReconcileRecommendations applies analyzer recommendations as an assistant update
func (m *Merger) ReconcileRecommendations(ctx context.Context, recs []multimodal.Recommendation) (Outcome, error) {
	p := multimodal.PartialFromRecommendations(recs)
	return m.Reconcile(ctx, &p, multimodal.AIAssistant)
}
