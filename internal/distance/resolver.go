package distance

import (
	"sync"
	"time"

	"github.com/UnknownOlympus/mesafe/internal/models"
)

// Querier answers distance queries. *Calculator implements it.
type Querier interface {
	Query(query models.DistanceQuery) models.DistanceResult
}

// Resolver delivers query results after a fixed delay, the way the calculator widget
// shows a spinner before the answer. Only the most recently submitted query can
// become the current result: an older query whose timer fires late is dropped.
type Resolver struct {
	querier  Querier
	delay    time.Duration
	onResult func(models.DistanceResult)

	// deliverMu serialises deliveries so callbacks run in submission order.
	deliverMu sync.Mutex

	mu         sync.Mutex
	seq        uint64
	timer      *time.Timer
	current    models.DistanceResult
	hasCurrent bool
	pending    bool
	closed     bool
}

// NewResolver creates a Resolver. A non-positive delay delivers synchronously inside Submit.
// onResult, when not nil, is called with every delivered result; it must not call Submit.
func NewResolver(querier Querier, delay time.Duration, onResult func(models.DistanceResult)) *Resolver {
	return &Resolver{querier: querier, delay: delay, onResult: onResult}
}

// Submit starts a new query and returns its sequence number. Any earlier query still
// waiting for its delay is superseded. Submit on a closed Resolver returns 0.
func (r *Resolver) Submit(fromName, toName string) uint64 {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return 0
	}
	r.seq++
	seq := r.seq
	r.stopTimerLocked()
	r.pending = true
	r.mu.Unlock()

	result := r.querier.Query(models.DistanceQuery{Seq: seq, From: fromName, To: toName})

	if r.delay <= 0 {
		r.deliver(result)
		return seq
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || seq != r.seq {
		return seq
	}
	r.timer = time.AfterFunc(r.delay, func() { r.deliver(result) })

	return seq
}

// Current returns the last delivered result.
func (r *Resolver) Current() (models.DistanceResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current, r.hasCurrent
}

// Pending reports whether the latest query is still waiting to be delivered.
func (r *Resolver) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pending
}

// Close stops the pending timer. Results that arrive afterwards are discarded.
func (r *Resolver) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.pending = false
	r.stopTimerLocked()
}

func (r *Resolver) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// deliver installs result unless a newer query has been submitted since.
func (r *Resolver) deliver(result models.DistanceResult) {
	r.deliverMu.Lock()
	defer r.deliverMu.Unlock()

	r.mu.Lock()
	if r.closed || result.Query.Seq != r.seq {
		r.mu.Unlock()
		return
	}
	r.current = result
	r.hasCurrent = true
	r.pending = false
	r.timer = nil
	r.mu.Unlock()

	if r.onResult != nil {
		r.onResult(result)
	}
}
