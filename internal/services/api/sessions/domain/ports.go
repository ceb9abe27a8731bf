package domain

import (
	"context"

	"ingestlab/internal/core/multimodal"
)

// ServicePort is the interface implemented by the sessions service
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (SessionView, error)
	Get(ctx context.Context, id string) (SessionView, error)
	Update(ctx context.Context, id string, in UpdateInput) (UpdateResult, error)
	Recommend(ctx context.Context, id string, recs []multimodal.Recommendation) (UpdateResult, error)
	Emissions(ctx context.Context, id string) (EmissionsOutput, error)
	Delete(ctx context.Context, id string) error
}
