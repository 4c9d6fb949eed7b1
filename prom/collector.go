// Package prom exports workspace metrics to Prometheus.
package prom

import (
	"time"

	"github.com/hupe1980/cutpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements cutpool.MetricsCollector on top of Prometheus
// primitives. Wire it into a workspace with cutpool.WithMetricsCollector.
type Collector struct {
	opLatency   *prometheus.HistogramVec
	inserts     *prometheus.CounterVec
	removes     *prometheus.CounterVec
	admitted    prometheus.Counter
	gcRemoved   prometheus.Counter
	separations prometheus.Counter
	cuts        *prometheus.CounterVec
}

var _ cutpool.MetricsCollector = (*Collector)(nil)

// NewCollector builds a Collector and registers its metrics with reg.
// Pass prometheus.DefaultRegisterer to use the process-wide registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cutpool_operation_latency_seconds",
			Help:    "Latency of pool operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"op", "status"}),
		inserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cutpool_inserts_total",
			Help: "Total insert operations",
		}, []string{"status"}),
		removes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cutpool_removes_total",
			Help: "Total advisory remove operations",
		}, []string{"status"}),
		admitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cutpool_admitted_total",
			Help: "Total handles admitted into active sets",
		}),
		gcRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cutpool_gc_removed_total",
			Help: "Total payloads reclaimed by garbage collection",
		}),
		separations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cutpool_separation_rounds_total",
			Help: "Total separation rounds observed",
		}),
		cuts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cutpool_cuts_total",
			Help: "Total cut candidates by separation outcome",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.opLatency, c.inserts, c.removes, c.admitted, c.gcRemoved, c.separations, c.cuts)

	return c
}

func (c *Collector) RecordInsert(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.opLatency.WithLabelValues("insert", status).Observe(duration.Seconds())
	c.inserts.WithLabelValues(status).Inc()
}

func (c *Collector) RecordRemove(removed bool, duration time.Duration) {
	status := "removed"
	if !removed {
		status = "refused"
	}

	c.opLatency.WithLabelValues("remove", status).Observe(duration.Seconds())
	c.removes.WithLabelValues(status).Inc()
}

func (c *Collector) RecordGC(removed int, duration time.Duration) {
	c.opLatency.WithLabelValues("gc", "success").Observe(duration.Seconds())
	c.gcRemoved.Add(float64(removed))
}

func (c *Collector) RecordAdmit(count int, duration time.Duration) {
	c.opLatency.WithLabelValues("admit", "success").Observe(duration.Seconds())
	c.admitted.Add(float64(count))
}

func (c *Collector) RecordSeparation(generated, duplications int) {
	c.separations.Inc()
	c.cuts.WithLabelValues("added").Add(float64(generated))
	c.cuts.WithLabelValues("duplication").Add(float64(duplications))
}
