package configsync

import (
	"sync"
	"time"

	"ingestlab/internal/core/multimodal"
)

// ValueStore holds the current configuration snapshot of a session
// readers call Load, only the queue consumer mutates it
type ValueStore struct {
	mu  sync.RWMutex
	cfg multimodal.Config
}

// NewValueStore returns a store seeded with initial
func NewValueStore(initial multimodal.Config) *ValueStore {
	return &ValueStore{cfg: initial}
}

// Load returns the current snapshot
func (s *ValueStore) Load() multimodal.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// apply merges p into the snapshot and returns the new value
func (s *ValueStore) apply(p multimodal.Partial) multimodal.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = multimodal.Apply(s.cfg, p)
	return s.cfg
}

// priority guards the last applied source and instant
type priority struct {
	mu    sync.RWMutex
	state multimodal.PriorityState
}

func (p *priority) load() multimodal.PriorityState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *priority) record(src multimodal.Source, at time.Time) {
	p.mu.Lock()
	p.state = p.state.Record(src, at)
	p.mu.Unlock()
}
