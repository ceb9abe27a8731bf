package domain

import (
	"context"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/multimodal"
)

// ServicePort is the interface implemented by the analysis service
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (Analysis, error)
	Recent(ctx context.Context, q RecentQuery) ([]RecentRow, error)
}

// SessionPort receives recommendations for a live configuration session
type SessionPort interface {
	Recommend(ctx context.Context, id string, recs []multimodal.Recommendation) (configsync.Outcome, error)
}
