package domainset

type options struct {
	workers   int
	unitSize  uint64
	rateLimit float64
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures a bulk powerset dispatch.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// WithWorkers sets the number of concurrently running work units.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithUnitSize sets how many consecutive enumeration indices form one work unit.
//
// Larger units amortize scheduling; smaller units balance load across workers.
// If n == 0, the size is derived from the number of subsets and workers.
func WithUnitSize(n uint64) Option {
	return func(o *options) {
		o.unitSize = n
	}
}

// WithRateLimit limits how many work units may start per second.
// If unitsPerSecond <= 0, dispatch is unthrottled.
func WithRateLimit(unitsPerSecond float64) Option {
	return func(o *options) {
		o.rateLimit = unitsPerSecond
	}
}

// WithLogger configures the logger used by the dispatch.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for the dispatch.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &domainset.BasicMetricsCollector{}
//	job, err := ps.Dispatch(ctx, sink, true, domainset.WithMetricsCollector(metrics))
//	fmt.Println(metrics.Delivered.Load())
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
