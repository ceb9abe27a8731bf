package service

import (
	"ingestlab/internal/core/configsync"
	"ingestlab/internal/platform/logger"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxSessions bounds the number of live sessions
const DefaultMaxSessions = 256

// live is a registered session and its in-memory history
type live struct {
	session *configsync.Session
	history *History
}

// Registry holds live sessions; the least recently used one is closed when full
type Registry struct {
	cache *lru.Cache[string, *live]
}

// NewRegistry returns a registry holding at most size sessions
func NewRegistry(size int, log *logger.Logger) (*Registry, error) {
	if size <= 0 {
		size = DefaultMaxSessions
	}
	if log == nil {
		log = logger.Named("sessions")
	}
	cache, err := lru.NewWithEvict(size, func(id string, l *live) {
		l.session.Close()
		log.Debug().Str("session_id", id).Msg("session released")
	})
	if err != nil {
		return nil, err
	}
	return &Registry{cache: cache}, nil
}

// Put registers l under its session id
func (r *Registry) Put(l *live) { r.cache.Add(l.session.ID(), l) }

// Get returns the live session for id and marks it recently used
func (r *Registry) Get(id string) (*live, bool) { return r.cache.Get(id) }

// Remove closes and forgets id, reporting whether it was live
func (r *Registry) Remove(id string) bool { return r.cache.Remove(id) }

// Len reports the number of live sessions
func (r *Registry) Len() int { return r.cache.Len() }

// Purge closes every live session
func (r *Registry) Purge() { r.cache.Purge() }
