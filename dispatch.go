package domainset

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hupe1980/domainset/internal/resource"
	"golang.org/x/sync/errgroup"
)

const (
	// unitsPerWorker is the number of work units planned per worker when the
	// unit size is derived.
	unitsPerWorker = 4

	// maxUnitSize caps derived unit sizes.
	maxUnitSize = 4096
)

// Job tracks a bulk powerset dispatch.
type Job struct {
	done      chan struct{}
	err       error
	delivered atomic.Uint64
}

// Done returns a channel that is closed when every work unit has finished.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the dispatch finished and returns its error.
//
// The error is a *SinkError if the sink failed, or the context error if the
// dispatch was canceled.
func (j *Job) Wait() error {
	<-j.done
	return j.err
}

// Delivered returns the number of subsets the sink accepted so far.
func (j *Job) Delivered() uint64 {
	return j.delivered.Load()
}

// PowersetFunc passes every subset of s to sink using a worker pool.
// It is shorthand for s.Powerset() followed by Dispatch.
func (s *Set[T]) PowersetFunc(ctx context.Context, sink func(*Set[T]) error, blocking bool, optFns ...Option) (*Job, error) {
	p, err := s.Powerset()
	if err != nil {
		return nil, err
	}
	return p.Dispatch(ctx, sink, blocking, optFns...)
}

// Dispatch partitions the index range [0, 2^k) into work units and runs them on a
// worker pool owned by this call. Each unit computes its subsets with the same
// index rule as Subset and passes them to sink. sink is called concurrently and
// in no particular order.
//
// The first sink error cancels the dispatch: units that have not started are
// skipped, running units stop before their next subset, and the error is
// reported as a *SinkError.
//
// If blocking is true, Dispatch waits for all units and returns the job error.
// If ctx is canceled while waiting, Dispatch returns ctx.Err() immediately and
// the remaining units wind down in the background. If blocking is false,
// Dispatch returns once the dispatch is started; use the Job to observe it.
func (p *Powerset[T]) Dispatch(ctx context.Context, sink func(*Set[T]) error, blocking bool, optFns ...Option) (*Job, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	opts := applyOptions(optFns)
	ctrl := resource.NewController(resource.Config{
		MaxWorkers:     int64(opts.workers),
		UnitsPerSecond: opts.rateLimit,
	})

	unit := opts.unitSize
	if unit == 0 {
		unit = p.unitSize(ctrl.MaxWorkers())
	}

	log := opts.logger.WithBits(p.Bits()).WithWorkers(ctrl.MaxWorkers())
	log.LogDispatchStarted(ctx, unit, blocking)

	job := &Job{done: make(chan struct{})}
	go p.run(ctx, job, sink, ctrl, unit, log, opts.metrics)

	if !blocking {
		return job, nil
	}

	select {
	case <-job.done:
		return job, job.err
	case <-ctx.Done():
		return job, ctx.Err()
	}
}

func (p *Powerset[T]) unitSize(workers int64) uint64 {
	size := p.last/uint64(workers*unitsPerWorker) + 1
	if size > maxUnitSize {
		size = maxUnitSize
	}
	return size
}

func (p *Powerset[T]) run(ctx context.Context, job *Job, sink func(*Set[T]) error, ctrl *resource.Controller, unit uint64, log *Logger, metrics MetricsCollector) {
	defer close(job.done)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	covered := false

	for lo := uint64(0); ; lo += unit {
		if err := ctrl.Acquire(gctx); err != nil {
			break
		}

		hi := lo + unit - 1
		if hi < lo || hi > p.last {
			hi = p.last
		}

		g.Go(func() error {
			defer ctrl.Release()
			return p.deliver(gctx, lo, hi, sink, job)
		})

		if hi == p.last {
			covered = true
			break
		}
	}

	err := g.Wait()
	if err == nil && !covered {
		err = ctx.Err()
	}

	var se *SinkError
	if errors.As(err, &se) {
		metrics.RecordSinkError()
		log.LogSinkFailure(ctx, se.Index, se.Err)
	}

	job.err = err
	units := int(ctrl.Started())
	metrics.RecordDispatch(units, job.Delivered(), time.Since(start), err)
	log.LogDispatch(ctx, units, job.Delivered(), err)
}

// deliver runs one work unit over the inclusive index range [lo, hi].
func (p *Powerset[T]) deliver(ctx context.Context, lo, hi uint64, sink func(*Set[T]) error, job *Job) error {
	for i := lo; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sink(p.subset(i)); err != nil {
			return &SinkError{Index: i, Err: err}
		}
		job.delivered.Add(1)
		if i == hi {
			return nil
		}
	}
}
