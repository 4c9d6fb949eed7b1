// Package resource provides budget enforcement for pool storage growth
// and pacing for garbage-collection sweeps.
package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard budget for pool backing storage.
	// If 0, no limit is enforced (only tracking).
	MemoryLimitBytes int64

	// GCRatePerSec caps how many garbage-collection sweeps may start
	// per second. If 0, sweeps are never rate limited.
	GCRatePerSec float64

	// GCBurst is the burst size of the sweep limiter.
	// If 0, defaults to 1.
	GCBurst int
}

// Governor tracks the memory charged to pool backing storage and paces
// garbage-collection sweeps.
//
// All methods are safe on a nil receiver, which behaves as "unlimited".
type Governor struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Sweep pacing
	gcLimiter *rate.Limiter
}

// NewGovernor creates a new Governor.
func NewGovernor(cfg Config) *Governor {
	g := &Governor{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		g.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.GCRatePerSec > 0 {
		burst := cfg.GCBurst
		if burst <= 0 {
			burst = 1
		}
		g.gcLimiter = rate.NewLimiter(rate.Limit(cfg.GCRatePerSec), burst)
	}

	return g
}

// AcquireMemory reserves backing-storage bytes against the budget.
// If a limit is configured and usage would exceed it, this blocks until
// memory is released or ctx is canceled.
func (g *Governor) AcquireMemory(ctx context.Context, bytes int64) error {
	if g == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if g.memSem != nil {
		if err := g.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	g.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory reserves bytes without blocking.
// Returns true if acquired, false if the budget would be exceeded.
// Pools use this variant: a refused grow surfaces as a full pool,
// never as a stall.
func (g *Governor) TryAcquireMemory(bytes int64) bool {
	if g == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}

	if g.memSem != nil {
		if !g.memSem.TryAcquire(bytes) {
			return false
		}
	}

	g.memUsed.Add(bytes)
	return true
}

// ReleaseMemory returns reserved bytes to the budget.
func (g *Governor) ReleaseMemory(bytes int64) {
	if g == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if g.memSem != nil {
		g.memSem.Release(bytes)
	}
	g.memUsed.Add(-bytes)
}

// MemoryUsage returns the bytes currently charged.
func (g *Governor) MemoryUsage() int64 {
	if g == nil {
		return 0
	}
	return g.memUsed.Load()
}

// AllowGC reports whether a sweep may start now.
// It never blocks; a refused sweep is simply retried on a later call.
func (g *Governor) AllowGC() bool {
	if g == nil || g.gcLimiter == nil {
		return true
	}
	return g.gcLimiter.Allow()
}
