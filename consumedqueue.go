package toolbox

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/SebastienArnold/ToolBox/internal/contract"
	"github.com/SebastienArnold/ToolBox/internal/deque"
)

var (
	// ErrInvalidWorkerCount is returned when a queue is constructed with
	// fewer than one worker.
	ErrInvalidWorkerCount = errors.New("worker count must be at least 1")
	// ErrNilProcess is returned when a queue is constructed without a
	// processing callback.
	ErrNilProcess = errors.New("process callback must not be nil")
)

// ConsumedQueue is a generic work queue consumed by a fixed pool of worker
// goroutines.  Callers Submit items; each item is claimed by exactly one
// worker, in submission order, and handed to the processing callback the
// queue was constructed with.  The buffer is unbounded, so Submit never
// blocks the caller.
//
// The buffer and the control flags share one mutex, and workers block on a
// condition variable derived from it, so a worker checking "empty, go idle"
// can never miss a concurrent Submit.  The callback itself always runs
// outside the lock; a slow callback stalls only its own worker.
type ConsumedQueue[T any] struct {
	mu     sync.Mutex
	wake   *sync.Cond
	buffer contract.Container[T]

	// control flags, guarded by mu.  closed dominates paused: a closing
	// queue never resumes processing, it only drains in-flight work.
	paused bool
	closed bool

	workers int
	process func(T)
	wg      sync.WaitGroup

	// counters, guarded by mu.
	inFlight  int
	submitted uint64
	processed uint64
	failed    uint64
	dropped   uint64

	logger *zap.Logger
}

// Ensure ConsumedQueue implements Queuer
var _ contract.Queuer[any] = (*ConsumedQueue[any])(nil)

// New instantiates a new ConsumedQueue, applies the appropriate functional
// options to it and starts workerCount workers, all consuming immediately.
// Returns an error wrapping ErrInvalidWorkerCount or ErrNilProcess when the
// configuration is unusable; no goroutine is started in that case.
func New[T any](workerCount int, process func(T), opts ...Option) (*ConsumedQueue[T], error) {
	if workerCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workerCount)
	}
	if process == nil {
		return nil, ErrNilProcess
	}
	s := newSettings()
	for _, opt := range opts {
		opt(s)
	}
	logger := s.logger
	if s.name != "" {
		logger = logger.With(zap.String("queue", s.name))
	}
	q := &ConsumedQueue[T]{
		buffer:  deque.New[T](),
		workers: workerCount,
		process: process,
		logger:  logger,
	}
	q.wake = sync.NewCond(&q.mu)
	q.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go q.consume(i)
	}
	q.logger.Info("queue started", zap.Int("workers", workerCount))
	return q, nil
}

// Submit appends item at the tail of the buffer and wakes an idle worker.
// It never blocks and never guarantees the item has been processed by the
// time it returns.  Submitting to a closed queue discards the item.
func (q *ConsumedQueue[T]) Submit(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.dropped++
		q.logger.Debug("item dropped, queue is closed")
		return
	}
	q.buffer.PushBack(item)
	q.submitted++
	if !q.paused {
		q.wake.Signal()
	}
}

// Pause stops workers from claiming new items.  A worker already inside the
// processing callback finishes that item uninterrupted; idle workers block
// without polling.  Pausing an already paused or closed queue has no effect.
func (q *ConsumedQueue[T]) Pause() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || q.paused {
		return
	}
	q.paused = true
	q.logger.Debug("queue paused")
}

// Resume lets workers claim items again, starting with whatever accumulated
// while paused, still in submission order.  It never blocks, whatever the
// buffer state.  Resuming a running or closed queue has no effect.
func (q *ConsumedQueue[T]) Resume() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || !q.paused {
		return
	}
	q.paused = false
	q.wake.Broadcast()
	q.logger.Debug("queue resumed")
}

// ItemsCount returns the number of items currently waiting in the buffer.
// The value is a snapshot: concurrent submissions and claims move it
// immediately, so treat it as advisory, e.g. when polling for a drained
// queue.
func (q *ConsumedQueue[T]) ItemsCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buffer.Len()
}

// Stats returns a point-in-time snapshot of the queue state and counters.
func (q *ConsumedQueue[T]) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{
		Workers:   q.workers,
		Pending:   q.buffer.Len(),
		InFlight:  q.inFlight,
		Submitted: q.submitted,
		Processed: q.processed,
		Failed:    q.failed,
		Dropped:   q.dropped,
	}
}

// Stats is a point-in-time snapshot of queue state and counters.
type Stats struct {
	// Workers is the fixed size of the pool.
	Workers int
	// Pending is the number of items waiting in the buffer, the same value
	// ItemsCount reports.
	Pending int
	// InFlight is the number of claimed items currently inside the
	// processing callback.
	InFlight int
	// Submitted counts items accepted by Submit.
	Submitted uint64
	// Processed counts callback invocations that returned normally.
	Processed uint64
	// Failed counts callback invocations that panicked.
	Failed uint64
	// Dropped counts items rejected because the queue was already closed.
	Dropped uint64
}

// Drained reports whether the buffer is empty and no worker currently holds
// a claimed item.
func (s Stats) Drained() bool {
	return s.Pending == 0 && s.InFlight == 0
}

// Close signals every worker to exit and blocks until they all have.  A
// worker inside the processing callback finishes that item first; items
// still waiting in the buffer are not claimed and stay visible through
// ItemsCount.  Close is idempotent and safe to call concurrently: every
// call returns only once all workers are gone.
//
// Close must not be called from inside the processing callback, the worker
// would be joining itself.
func (q *ConsumedQueue[T]) Close() {
	q.mu.Lock()
	first := !q.closed
	if first {
		q.closed = true
		q.logger.Debug("close requested")
		q.wake.Broadcast()
	}
	q.mu.Unlock()
	q.wg.Wait()
	if first {
		stats := q.Stats()
		q.logger.Info("queue closed",
			zap.Uint64("processed", stats.Processed),
			zap.Uint64("failed", stats.Failed),
			zap.Uint64("dropped", stats.Dropped),
			zap.Int("pending", stats.Pending))
	}
}

// consume is the worker loop and is responsible for claiming items off the
// buffer and running the processing callback on them until the queue is
// closed.  Waking, claiming and flag checks all happen under the queue
// mutex; the callback runs outside it so the remaining workers can keep
// claiming concurrently.
func (q *ConsumedQueue[T]) consume(worker int) {
	defer q.wg.Done()
	q.mu.Lock()
	for {
		for !q.closed && (q.paused || q.buffer.Len() == 0) {
			q.wake.Wait()
		}
		if q.closed {
			q.mu.Unlock()
			return
		}
		item, _ := q.buffer.PopFront()
		q.inFlight++
		q.mu.Unlock()

		ok := q.invoke(worker, item)

		q.mu.Lock()
		q.inFlight--
		if ok {
			q.processed++
		} else {
			q.failed++
		}
	}
}

// invoke runs the processing callback on a claimed item, trapping panics so
// a failing callback never takes its worker down with it.  A panicking
// callback forfeits the item: it is not retried or re-enqueued.
// Returns false when the callback panicked.
func (q *ConsumedQueue[T]) invoke(worker int, item T) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("process callback panicked, item discarded",
				zap.Int("worker", worker),
				zap.Any("panic", r))
		}
	}()
	q.process(item)
	return true
}
