package multimodal

import "time"

// DefaultPriorityWindow is how long a just-applied assistant update is shielded
// from user and system updates
const DefaultPriorityWindow = time.Second

// Envelope wraps a partial update with its origin and submission instant
type Envelope struct {
	Partial Partial
	Source  Source
	At      time.Time
}

// PriorityState records the source and instant of the last applied update
// the zero value means nothing has been applied yet
type PriorityState struct {
	Source Source
	At     time.Time
	Set    bool
}

// Record returns the state after applying an update from src at at
func (PriorityState) Record(src Source, at time.Time) PriorityState {
	return PriorityState{Source: src, At: at, Set: true}
}

// Arbiter decides whether an update may apply given the last applied one
type Arbiter struct {
	Window time.Duration
}

// NewArbiter returns an Arbiter; a non-positive window falls back to the default
func NewArbiter(window time.Duration) Arbiter {
	if window <= 0 {
		window = DefaultPriorityWindow
	}
	return Arbiter{Window: window}
}

// CanApply reports whether an update from candidate at now may be applied
// assistant updates always pass; user and system updates are denied while the
// last applied update came from the assistant less than Window ago
func (a Arbiter) CanApply(state PriorityState, candidate Source, now time.Time) bool {
	if !state.Set {
		return true
	}
	switch candidate {
	case AIAssistant:
		return true
	case User, System:
		if state.Source == AIAssistant && now.Sub(state.At) < a.Window {
			return false
		}
		return true
	default:
		return true
	}
}
