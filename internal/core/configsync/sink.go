package configsync

import (
	"context"
	"errors"
	"time"

	"ingestlab/internal/core/multimodal"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"

	"github.com/sethvargo/go-retry"
)

// Emission is one externally visible settled configuration
type Emission struct {
	SessionID string            `json:"sessionId" example:"0199f2c1-7c1e-7b4a-9d0e-2f7b1c9a0e11"`
	Seq       uint64            `json:"seq"       example:"3"`
	Config    multimodal.Config `json:"config"`
	At        time.Time         `json:"at"        example:"2025-09-03T13:05:00Z"`
}

// Sink receives settled configurations
type Sink interface {
	Emit(ctx context.Context, e Emission) error
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ctx context.Context, e Emission) error

// Emit implements Sink
func (f SinkFunc) Emit(ctx context.Context, e Emission) error { return f(ctx, e) }

// Discard drops every emission
var Discard Sink = SinkFunc(func(context.Context, Emission) error { return nil })

// MultiSink fans an emission out to every sink and joins their errors
type MultiSink []Sink

// Emit implements Sink
func (m MultiSink) Emit(ctx context.Context, e Emission) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogSink writes each emission as a structured info line
func LogSink(log *logger.Logger) Sink {
	return SinkFunc(func(_ context.Context, e Emission) error {
		log.Info().
			Str("session_id", e.SessionID).
			Uint64("seq", e.Seq).
			Bool("transcription", e.Config.Transcription).
			Bool("ocr", e.Config.OCR).
			Bool("image_caption", e.Config.ImageCaption).
			Bool("visual_analysis", e.Config.VisualAnalysis).
			Msg("config settled")
		return nil
	})
}

// Retrying re-delivers an emission to s with exponential backoff
// at most attempts deliveries are made and input errors are returned at once
func Retrying(s Sink, attempts uint64, base time.Duration) Sink {
	if attempts == 0 {
		attempts = 1
	}
	return SinkFunc(func(ctx context.Context, e Emission) error {
		b := retry.WithMaxRetries(attempts-1, retry.NewExponential(base))
		return retry.Do(ctx, b, func(ctx context.Context) error {
			err := s.Emit(ctx, e)
			if err == nil || permanent(err) {
				return err
			}
			return retry.RetryableError(err)
		})
	})
}

func permanent(err error) bool {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeJSON, perr.ErrorCodeValidation, perr.ErrorCodeInvalidArgument:
		return true
	default:
		return false
	}
}
