// Package domain holds DTOs for sessions http and service contracts
package domain

import (
	"time"

	"ingestlab/internal/core/configsync"
	"ingestlab/internal/core/multimodal"
)

// CreateInput opens a session, optionally seeded with an initial partial
type CreateInput struct {
	Initial *multimodal.Partial `json:"initial,omitempty"`
}

// SessionView is the current state of one session
type SessionView struct {
	ID            string            `json:"id"                        example:"0199f2c1-7c1e-7b4a-9d0e-2f7b1c9a0e11"`
	Config        multimodal.Config `json:"config"`
	LastSource    string            `json:"last_source,omitempty"     example:"ai_assistant"`
	LastAppliedAt *time.Time        `json:"last_applied_at,omitempty" example:"2025-09-03T13:05:00Z"`
	Pending       bool              `json:"pending"                   example:"false"`
}

// UpdateInput is one partial configuration change from a producer
type UpdateInput struct {
	Source  string              `json:"source"            validate:"required,oneof=user ai_assistant system" example:"user"`
	Partial *multimodal.Partial `json:"partial,omitempty"`
}

// RecommendationsInput applies analyzer recommendations as an assistant update
type RecommendationsInput struct {
	Recommendations []multimodal.Recommendation `json:"recommendations" validate:"required,min=1,dive"`
}

// UpdateResult is the verdict for one update
// applied is false when the update fell inside the assistant priority window
type UpdateResult = configsync.Outcome

// EmissionView is one settled configuration as delivered to consumers
type EmissionView = configsync.Emission

// EmissionsOutput lists the most recent emissions, oldest first
type EmissionsOutput struct {
	ID        string         `json:"id"        example:"0199f2c1-7c1e-7b4a-9d0e-2f7b1c9a0e11"`
	Emissions []EmissionView `json:"emissions"`
}
