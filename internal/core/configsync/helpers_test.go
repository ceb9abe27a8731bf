package configsync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordingSink captures emissions and signals each one on ch
type recordingSink struct {
	mu  sync.Mutex
	got []Emission
	ch  chan Emission
}

func newRecordingSink() *recordingSink {
	return &recordingSink{ch: make(chan Emission, 64)}
}

func (r *recordingSink) Emit(_ context.Context, e Emission) error {
	r.mu.Lock()
	r.got = append(r.got, e)
	r.mu.Unlock()
	r.ch <- e
	return nil
}

func (r *recordingSink) all() []Emission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Emission(nil), r.got...)
}

// mock timer callbacks run on their own goroutine, so waits use wall time
func (r *recordingSink) wait(t *testing.T) Emission {
	t.Helper()
	select {
	case e := <-r.ch:
		return e
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out waiting for emission")
		return Emission{}
	}
}

func (r *recordingSink) none(t *testing.T) {
	t.Helper()
	select {
	case e := <-r.ch:
		require.FailNowf(t, "unexpected emission", "%+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}
