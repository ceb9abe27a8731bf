// Package service contains analysis workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"ingestlab/internal/core/normalize"
	perr "ingestlab/internal/platform/errors"
	"ingestlab/internal/platform/logger"
	"ingestlab/internal/services/api/analysis/domain"
	"ingestlab/internal/services/api/analysis/repo"

	"github.com/google/uuid"
)

// DefaultRecent is the history page size when none is requested
const DefaultRecent = 20

// Service defines the analysis service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the analysis service
type Svc struct {
	Repo     repo.Repo
	sessions domain.SessionPort
	now      func() time.Time
	log      *logger.Logger
}

// New constructs an analysis service; sessions may be nil
func New(r repo.Repo, sessions domain.SessionPort) *Svc {
	if r == nil {
		r = repo.Noop{}
	}
	return &Svc{Repo: r, sessions: sessions, now: time.Now, log: logger.Named("analysis")}
}

// Analyze fabricates an analysis, records it, and forwards the recommendations to a session when asked
func (s *Svc) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.Analysis, error) {
	name := normalize.FileName(in.FileName)
	if name == "" {
		return domain.Analysis{}, perr.WithField(perr.InvalidArgf("file name is empty after normalization"), "fileName")
	}
	if in.FileSize < 0 {
		return domain.Analysis{}, perr.WithField(perr.InvalidArgf("file size must not be negative"), "fileSize")
	}

	a := Fabricate(name, in.FileType, in.FileSize)
	a.ID = uuid.Must(uuid.NewV7()).String()
	a.AnalyzedAt = s.now().UTC()

	// an analysis without recommendations still settles the session to transcription only
	if in.SessionID != "" && s.sessions != nil {
		out, err := s.sessions.Recommend(ctx, in.SessionID, a.Recommendations)
		if err != nil {
			return domain.Analysis{}, err
		}
		a.Session = &out
	}

	body, err := json.Marshal(a)
	if err != nil {
		return domain.Analysis{}, perr.Wrap(err, perr.ErrorCodeJSON, "encode analysis")
	}
	row := repo.Row{
		ID:              a.ID,
		FileName:        a.FileName,
		FileType:        in.FileType,
		FileSize:        in.FileSize,
		DocumentType:    a.DocumentType,
		Confidence:      a.Confidence,
		Recommendations: len(a.Recommendations),
		Result:          body,
	}
	// history is best effort, the caller still gets the analysis
	if err := s.Repo.Insert(ctx, row); err != nil {
		s.log.Warn().Err(err).Str("analysis_id", a.ID).Msg("analysis history not recorded")
	}

	s.log.Debug().
		Str("analysis_id", a.ID).
		Str("document_type", a.DocumentType).
		Int("recommendations", len(a.Recommendations)).
		Msg("document analyzed")
	return a, nil
}

// Recent lists persisted analyses, newest first
func (s *Svc) Recent(ctx context.Context, q domain.RecentQuery) ([]domain.RecentRow, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultRecent
	}
	rows, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "list analyses")
	}
	out := make([]domain.RecentRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RecentRow{
			ID:              r.ID,
			FileName:        r.FileName,
			FileType:        r.FileType,
			FileSize:        r.FileSize,
			DocumentType:    r.DocumentType,
			Confidence:      r.Confidence,
			Recommendations: r.Recommendations,
			CreatedAt:       r.CreatedAt,
		})
	}
	return out, nil
}
