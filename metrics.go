package domainset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting bulk dispatch metrics.
// Implementations must be safe for concurrent use.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    subsets prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordDispatch(units int, delivered uint64, d time.Duration, err error) {
//	    p.subsets.Add(float64(delivered))
//	}
type MetricsCollector interface {
	// RecordDispatch is called once per dispatch after the last unit finished.
	// units is the number of started work units, delivered the number of
	// subsets the sink accepted, err is nil if successful.
	RecordDispatch(units int, delivered uint64, duration time.Duration, err error)

	// RecordSinkError is called when the sink rejects a subset.
	RecordSinkError()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDispatch(int, uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordSinkError()                                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	DispatchCount  atomic.Int64
	DispatchErrors atomic.Int64
	DispatchNanos  atomic.Int64
	Units          atomic.Int64
	Delivered      atomic.Uint64
	SinkErrors     atomic.Int64
}

// RecordDispatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDispatch(units int, delivered uint64, duration time.Duration, err error) {
	b.DispatchCount.Add(1)
	b.DispatchNanos.Add(duration.Nanoseconds())
	b.Units.Add(int64(units))
	b.Delivered.Add(delivered)
	if err != nil {
		b.DispatchErrors.Add(1)
	}
}

// RecordSinkError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSinkError() {
	b.SinkErrors.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		DispatchCount:  b.DispatchCount.Load(),
		DispatchErrors: b.DispatchErrors.Load(),
		Units:          b.Units.Load(),
		Delivered:      b.Delivered.Load(),
		SinkErrors:     b.SinkErrors.Load(),
	}
	if stats.DispatchCount > 0 {
		stats.DispatchAvgNanos = b.DispatchNanos.Load() / stats.DispatchCount
	}
	return stats
}

// MetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type MetricsStats struct {
	DispatchCount    int64
	DispatchErrors   int64
	DispatchAvgNanos int64
	Units            int64
	Delivered        uint64
	SinkErrors       int64
}
