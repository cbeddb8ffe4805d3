// Package workpool is the bounded-concurrency fan-out helper used by
// core/solve and core/msolve for data parallelism over candidate
// guesses and feedback parts. Callers submit a batch of thunks and
// workpool runs as many concurrently as the pool's width allows,
// stopping early the moment the shared context is cancelled.
package workpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds how many submitted tasks run concurrently.
type Pool struct {
	sem *semaphore.Weighted
}

// New returns a Pool that runs at most width tasks at once. width <= 0
// falls back to GOMAXPROCS; there is no unbounded mode.
func New(width int) *Pool {
	if width <= 0 {
		width = runtime.GOMAXPROCS(0)
	}
	return &Pool{sem: semaphore.NewWeighted(int64(width))}
}

var defaultPool = New(runtime.GOMAXPROCS(0))

// Default returns the single process-wide pool shared by every search.
func Default() *Pool {
	return defaultPool
}

// Go runs each task under bounded concurrency and waits for all of them.
// The first task to return a non-nil error cancels the context passed to
// the rest (errgroup semantics); Go returns that first error, or nil if
// every task succeeded. Tasks should treat ctx cancellation as a request
// to stop early, the way solve's beta/impossible checks do.
//
// When every worker slot is busy, the submitting goroutine runs the task
// itself instead of blocking on a slot. Solve and SolveGiven call Go
// from inside tasks of the same pool; blocking there would deadlock
// once all slots are held by ancestors of the caller. The observed
// concurrency per Go call is therefore at most width+1, counting the
// submitter.
func (p *Pool) Go(ctx context.Context, tasks ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		if gctx.Err() != nil {
			break
		}
		if p.sem.TryAcquire(1) {
			g.Go(func() error {
				defer p.sem.Release(1)
				return task(gctx)
			})
			continue
		}
		if err := task(gctx); err != nil {
			g.Go(func() error { return err })
			break
		}
	}
	return g.Wait()
}

// StopSignal is a cooperative, lock-free cancellation flag: any
// goroutine that discovers the remaining work is futile calls Fire(),
// and every other goroutine checks Fired() before doing heavy work.
// Beta itself is tracked separately by Best, since it also needs a
// value alongside the flag.
type StopSignal struct {
	fired atomic.Bool
}

// Fire sets the flag. Safe to call more than once or concurrently.
func (s *StopSignal) Fire() {
	s.fired.Store(true)
}

// Fired reports whether Fire has been called.
func (s *StopSignal) Fired() bool {
	return s.fired.Load()
}

// Best is a mutex-guarded "running best-so-far" aggregator: a
// monotonically improving numeric bound alongside the value that
// achieved it — the shared (beta, best-tree) pair sibling workers race
// to improve within one Solve call.
type Best[T any] struct {
	mu    sync.Mutex
	bound uint32
	value T
	ok    bool
}

// NewBest returns a Best seeded with the starting bound (solve's
// caller-supplied beta, typically).
func NewBest[T any](initialBound uint32) *Best[T] {
	return &Best[T]{bound: initialBound}
}

// Bound returns the current bound (beta). Readers take this snapshot,
// release the lock, and only then decide whether to do more work; the
// lock is never held while recursing.
func (b *Best[T]) Bound() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bound
}

// Update stores value as the new best if newBound improves on (is
// strictly less than) the current bound. Reports whether it did.
func (b *Best[T]) Update(newBound uint32, value T) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if newBound < b.bound {
		b.bound = newBound
		b.value = value
		b.ok = true
		return true
	}
	return false
}

// Value returns the best value stored so far, and whether any update
// has ever been applied.
func (b *Best[T]) Value() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value, b.ok
}
