package cutpool

import (
	"log/slog"

	"github.com/hupe1980/cutpool/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	governor         *resource.Governor
}

// Option configures Workspace constructor behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cutpool.BasicMetricsCollector{}
//	ws, _ := cutpool.New(p, cutpool.WithMetricsCollector(metrics))
//	// ... use ws ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cutpool.NewJSONLogger(slog.LevelInfo)
//	ws, _ := cutpool.New(p, cutpool.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithGovernor configures the resource governor gating GC passes and,
// when the same governor is handed to the pool, reporting memory usage
// in Stats.
func WithGovernor(g *resource.Governor) Option {
	return func(o *options) {
		o.governor = g
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
