package configsync

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ingestlab/internal/core/multimodal"
	perr "ingestlab/internal/platform/errors"

	"github.com/benbjohnson/clock"
)

// ErrClosed is returned when submitting to a closed session
var ErrClosed = perr.New(perr.ErrorCodeUnavailable, "config session closed")

// Outcome is the verdict for one processed envelope
type Outcome struct {
	Applied bool              `json:"applied" example:"true"`
	Config  multimodal.Config `json:"config"`
	Source  string            `json:"source"  example:"ai_assistant"`
}

// Handler processes one envelope on the consumer goroutine
type Handler func(multimodal.Envelope) Outcome

// item states, a waiter and the consumer race to move an item out of pending
const (
	itemPending int32 = iota
	itemTaken
	itemAbandoned
)

type item struct {
	env   multimodal.Envelope
	reply chan Outcome
	state *atomic.Int32 // nil for fire-and-forget entries
}

// take claims it for the consumer, false when its waiter gave up first
func (it item) take() bool {
	return it.state == nil || it.state.CompareAndSwap(itemPending, itemTaken)
}

// Queue is an unbounded FIFO drained by exactly one consumer goroutine
// entries are handled one at a time in submission order
type Queue struct {
	clock   clock.Clock
	spacing time.Duration
	handle  Handler

	mu      sync.Mutex
	pending []item
	closed  bool

	wake      chan struct{}
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue starts the consumer goroutine; Close stops it
func NewQueue(c clock.Clock, spacing time.Duration, h Handler) *Queue {
	if c == nil {
		c = clock.New()
	}
	q := &Queue{
		clock:   c,
		spacing: spacing,
		handle:  h,
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go q.run()
	return q
}

// Enqueue appends env without waiting for the verdict
func (q *Queue) Enqueue(env multimodal.Envelope) error {
	return q.push(item{env: env})
}

// Submit appends env and waits until the consumer has handled it
// when ctx ends before the consumer reaches env, env is withdrawn and ctx.Err is returned;
// once the consumer has taken env, Submit waits for its verdict
func (q *Queue) Submit(ctx context.Context, env multimodal.Envelope) (Outcome, error) {
	it := item{env: env, reply: make(chan Outcome, 1), state: new(atomic.Int32)}
	if err := q.push(it); err != nil {
		return Outcome{}, err
	}
	select {
	case out := <-it.reply:
		return out, nil
	case <-ctx.Done():
		if it.state.CompareAndSwap(itemPending, itemAbandoned) {
			return Outcome{}, ctx.Err()
		}
		return q.await(it.reply)
	case <-q.done:
		return q.verdict(it.reply)
	}
}

// await waits for a verdict the consumer already committed to
func (q *Queue) await(reply chan Outcome) (Outcome, error) {
	select {
	case out := <-reply:
		return out, nil
	case <-q.done:
		return q.verdict(reply)
	}
}

// verdict drains a reply that raced with shutdown
func (q *Queue) verdict(reply chan Outcome) (Outcome, error) {
	// the verdict may have landed right before shutdown
	select {
	case out := <-reply:
		return out, nil
	default:
		return Outcome{}, ErrClosed
	}
}

// Len returns the number of entries waiting for the consumer
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close stops the consumer and waits for it; pending entries are dropped
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.pending = nil
		q.mu.Unlock()
		close(q.quit)
	})
	<-q.done
}

func (q *Queue) push(it item) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.pending = append(q.pending, it)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

func (q *Queue) next() (item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return item{}, false
	}
	it := q.pending[0]
	q.pending[0] = item{}
	q.pending = q.pending[1:]
	return it, true
}

func (q *Queue) run() {
	defer close(q.done)

	var last time.Time
	for {
		it, ok := q.next()
		if !ok {
			select {
			case <-q.quit:
				return
			case <-q.wake:
				continue
			}
		}
		if it.state != nil && it.state.Load() == itemAbandoned {
			continue
		}

		if q.spacing > 0 && !last.IsZero() {
			if wait := q.spacing - q.clock.Since(last); wait > 0 {
				t := q.clock.Timer(wait)
				select {
				case <-t.C:
				case <-q.quit:
					t.Stop()
					return
				}
			}
		}

		select {
		case <-q.quit:
			return
		default:
		}
		if !it.take() {
			continue
		}

		out := q.handle(it.env)
		last = q.clock.Now()
		if it.reply != nil {
			it.reply <- out
		}
	}
}
