package cutpool

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/cutpool/active"
	"github.com/hupe1980/cutpool/pool"
	"github.com/hupe1980/cutpool/resource"
	"github.com/hupe1980/cutpool/staging"
)

// Workspace wraps one shared pool with logging, metrics and resource
// governance at the operation boundary. The driver keeps using the
// machinery packages directly for subproblem-local state (active sets,
// staging buffers, separators); the Workspace is where the shared,
// tree-wide mutations go through.
type Workspace[T pool.Item] struct {
	pool     pool.Pool[T]
	metrics  MetricsCollector
	logger   *Logger
	governor *resource.Governor
}

// New creates a Workspace around p.
func New[T pool.Item](p pool.Pool[T], optFns ...Option) (*Workspace[T], error) {
	if p == nil {
		return nil, errors.New("cutpool: nil pool")
	}

	opts := applyOptions(optFns)
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}

	return &Workspace[T]{
		pool:     p,
		metrics:  opts.metricsCollector,
		logger:   opts.logger,
		governor: opts.governor,
	}, nil
}

// Insert stores obj in the pool.
func (w *Workspace[T]) Insert(obj T) (pool.Handle[T], error) {
	start := time.Now()
	h, err := w.pool.Insert(obj)
	duration := time.Since(start)
	err = translateError(err)
	w.metrics.RecordInsert(duration, err)
	w.logger.LogInsert(context.Background(), w.pool.Count(), err)
	return h, err
}

// Remove advisorily removes the referenced payload. False means the
// payload refused deletion and stays pooled.
func (w *Workspace[T]) Remove(h pool.Handle[T]) bool {
	start := time.Now()
	removed := w.pool.Remove(h)
	w.metrics.RecordRemove(removed, time.Since(start))
	w.logger.LogRemove(context.Background(), removed)
	return removed
}

// Admit moves up to max staged handles from buf into set: the
// per-round step between separation and the next LP. It returns the
// number admitted.
func (w *Workspace[T]) Admit(buf *staging.Buffer[T], set *active.Set[T], max int) int {
	start := time.Now()
	hs := buf.Extract(max)
	set.InsertAll(hs...)
	w.metrics.RecordAdmit(len(hs), time.Since(start))
	w.logger.LogAdmit(context.Background(), len(hs), set.Count())
	return len(hs)
}

// GC runs one advisory sweep over the pool and returns the number of
// payloads destroyed. The configured governor may refuse the pass, in
// which case GC returns (0, nil) and the garbage stays for a later
// call. ctx is only consulted on entry; the sweep itself is a
// synchronous in-memory pass.
func (w *Workspace[T]) GC(ctx context.Context) (int, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		w.logger.LogGC(ctx, 0, err)
		return 0, err
	}
	if !w.governor.AllowGC() {
		w.logger.DebugContext(ctx, "gc skipped", "reason", "rate gate")
		return 0, nil
	}

	removed := w.pool.Sweep()
	w.metrics.RecordGC(removed, time.Since(start))
	w.logger.LogGC(ctx, removed, nil)
	return removed, nil
}

// ObserveSeparation folds the counters of a finished separation round
// into metrics and logs.
func (w *Workspace[T]) ObserveSeparation(generated, duplications int) {
	w.metrics.RecordSeparation(generated, duplications)
	w.logger.LogSeparation(context.Background(), generated, duplications)
}

// Pool returns the wrapped pool.
func (w *Workspace[T]) Pool() pool.Pool[T] {
	return w.pool
}

// WorkspaceStats is a snapshot of the workspace state.
type WorkspaceStats struct {
	Count       int
	Capacity    int
	Free        int
	MemoryUsage int64
}

// Stats returns a snapshot of pool occupancy and, when a governor is
// configured, charged memory.
func (w *Workspace[T]) Stats() WorkspaceStats {
	return WorkspaceStats{
		Count:       w.pool.Count(),
		Capacity:    w.pool.Capacity(),
		Free:        w.pool.Free(),
		MemoryUsage: w.governor.MemoryUsage(),
	}
}
