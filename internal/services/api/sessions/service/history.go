package service

import (
	"context"
	"sync"

	"ingestlab/internal/core/configsync"
)

// DefaultHistory is how many emissions a session keeps in memory
const DefaultHistory = 50

// History is a fixed size ring of the latest emissions for one session
type History struct {
	mu   sync.Mutex
	buf  []configsync.Emission
	next int
	full bool
}

// NewHistory returns a ring holding at most size emissions
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistory
	}
	return &History{buf: make([]configsync.Emission, size)}
}

// Emit implements configsync.Sink
func (h *History) Emit(_ context.Context, e configsync.Emission) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf[h.next] = e
	h.next = (h.next + 1) % len(h.buf)
	if h.next == 0 {
		h.full = true
	}
	return nil
}

// Snapshot copies the retained emissions, oldest first
func (h *History) Snapshot() []configsync.Emission {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.full {
		return append([]configsync.Emission(nil), h.buf[:h.next]...)
	}
	out := make([]configsync.Emission, 0, len(h.buf))
	out = append(out, h.buf[h.next:]...)
	return append(out, h.buf[:h.next]...)
}
