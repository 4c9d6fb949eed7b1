package cutpool

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems, or use the
// ready-made Prometheus implementation in the prom subpackage:
//
//	collector := prom.NewCollector(prometheus.DefaultRegisterer)
//	ws, err := cutpool.New[*Cover](p, cutpool.WithMetricsCollector(collector))
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each advisory remove.
	// removed is false when the payload refused deletion.
	RecordRemove(removed bool, duration time.Duration)

	// RecordAdmit is called after each admission step.
	// count is the number of handles moved into the active set.
	RecordAdmit(count int, duration time.Duration)

	// RecordGC is called after each garbage-collection pass.
	// removed is the number of payloads destroyed.
	RecordGC(removed int, duration time.Duration)

	// RecordSeparation is called once per separation round.
	RecordSeparation(generated, duplications int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(bool, time.Duration)  {}
func (NoopMetricsCollector) RecordAdmit(int, time.Duration)    {}
func (NoopMetricsCollector) RecordGC(int, time.Duration)       {}
func (NoopMetricsCollector) RecordSeparation(int, int)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount            atomic.Int64
	InsertErrors           atomic.Int64
	InsertTotalNanos       atomic.Int64
	RemoveCount            atomic.Int64
	RemoveRefusals         atomic.Int64
	AdmitRounds            atomic.Int64
	AdmitItems             atomic.Int64
	GCCount                atomic.Int64
	GCRemoved              atomic.Int64
	SeparationRounds       atomic.Int64
	SeparationGenerated    atomic.Int64
	SeparationDuplications atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(removed bool, duration time.Duration) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveRefusals.Add(1)
	}
}

// RecordAdmit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdmit(count int, duration time.Duration) {
	b.AdmitRounds.Add(1)
	b.AdmitItems.Add(int64(count))
}

// RecordGC implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGC(removed int, duration time.Duration) {
	b.GCCount.Add(1)
	b.GCRemoved.Add(int64(removed))
}

// RecordSeparation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSeparation(generated, duplications int) {
	b.SeparationRounds.Add(1)
	b.SeparationGenerated.Add(int64(generated))
	b.SeparationDuplications.Add(int64(duplications))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:            b.InsertCount.Load(),
		InsertErrors:           b.InsertErrors.Load(),
		InsertAvgNanos:         b.getAvgInsertNanos(),
		RemoveCount:            b.RemoveCount.Load(),
		RemoveRefusals:         b.RemoveRefusals.Load(),
		AdmitRounds:            b.AdmitRounds.Load(),
		AdmitItems:             b.AdmitItems.Load(),
		GCCount:                b.GCCount.Load(),
		GCRemoved:              b.GCRemoved.Load(),
		SeparationRounds:       b.SeparationRounds.Load(),
		SeparationGenerated:    b.SeparationGenerated.Load(),
		SeparationDuplications: b.SeparationDuplications.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount            int64
	InsertErrors           int64
	InsertAvgNanos         int64
	RemoveCount            int64
	RemoveRefusals         int64
	AdmitRounds            int64
	AdmitItems             int64
	GCCount                int64
	GCRemoved              int64
	SeparationRounds       int64
	SeparationGenerated    int64
	SeparationDuplications int64
}
