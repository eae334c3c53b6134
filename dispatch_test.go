package domainset

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/domainset/domain"
	"github.com/hupe1980/domainset/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers dispatched subsets by their pattern.
type collector struct {
	mu   sync.Mutex
	seen map[uint64]int
}

func newCollector() *collector {
	return &collector{seen: make(map[uint64]int)}
}

func (c *collector) sink(s *Set[int]) error {
	v, err := s.Uint64()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.seen[v]++
	c.mu.Unlock()
	return nil
}

func sequential(t *testing.T, p *Powerset[int]) map[uint64]int {
	t.Helper()
	out := make(map[uint64]int)
	for _, sub := range p.All() {
		v, err := sub.Uint64()
		require.NoError(t, err)
		out[v]++
	}
	return out
}

func TestDispatchMatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(7)
	d := domain.MustNew(testutil.Ints(12))

	for _, tc := range []struct {
		name string
		opts []Option
	}{
		{"defaults", nil},
		{"one worker", []Option{WithWorkers(1)}},
		{"unit size 1", []Option{WithWorkers(4), WithUnitSize(1)}},
		{"odd unit size", []Option{WithWorkers(3), WithUnitSize(7)}},
		{"unit larger than range", []Option{WithUnitSize(1 << 20)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := FromUint64(d, rng.Mask(12)|0b1)
			require.NoError(t, err)
			p, err := s.Powerset()
			require.NoError(t, err)

			c := newCollector()
			job, err := p.Dispatch(context.Background(), c.sink, true, tc.opts...)
			require.NoError(t, err)
			require.NoError(t, job.Wait())

			assert.Equal(t, sequential(t, p), c.seen)
			assert.Equal(t, p.Len().Uint64(), job.Delivered())
		})
	}
}

func TestDispatchNonBlocking(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(8)), 0, 2, 4, 6)

	c := newCollector()
	job, err := s.PowersetFunc(context.Background(), c.sink, false, WithWorkers(2))
	require.NoError(t, err)
	require.NotNil(t, job)

	require.NoError(t, job.Wait())
	<-job.Done()
	assert.Equal(t, uint64(16), job.Delivered())
	assert.Len(t, c.seen, 16)
}

func TestDispatchEmptySet(t *testing.T) {
	s := Empty(domain.MustNew([]int{1, 2}))

	var calls atomic.Int64
	job, err := s.PowersetFunc(context.Background(), func(sub *Set[int]) error {
		calls.Add(1)
		assert.True(t, sub.IsEmpty())
		return nil
	}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, uint64(1), job.Delivered())
}

func TestDispatchSinkError(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(6)), 0, 1, 2, 3)
	boom := errors.New("boom")
	metrics := &BasicMetricsCollector{}

	var calls atomic.Int64
	sink := func(*Set[int]) error {
		if calls.Add(1) > 2 {
			return boom
		}
		return nil
	}

	job, err := s.PowersetFunc(context.Background(), sink, true,
		WithWorkers(1), WithUnitSize(1), WithMetricsCollector(metrics))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var se *SinkError
	require.ErrorAs(t, err, &se)
	assert.GreaterOrEqual(t, se.Index, uint64(2))
	assert.Equal(t, uint64(2), job.Delivered())
	assert.Less(t, calls.Load(), int64(16), "remaining units are skipped")
	assert.Equal(t, err, job.Wait())

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.DispatchCount)
	assert.Equal(t, int64(1), stats.DispatchErrors)
	assert.Equal(t, int64(1), stats.SinkErrors)
	assert.Equal(t, uint64(2), stats.Delivered)
}

func TestDispatchCanceledContext(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(6)), 0, 1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	job, err := s.PowersetFunc(ctx, func(*Set[int]) error {
		calls.Add(1)
		return nil
	}, true)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, job)
	assert.ErrorIs(t, job.Wait(), context.Canceled)
	assert.Zero(t, calls.Load())
	assert.Zero(t, job.Delivered())
}

func TestDispatchInterrupted(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(6)), 0, 1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	sink := func(*Set[int]) error {
		once.Do(func() { close(started) })
		<-release
		return nil
	}

	go func() {
		<-started
		cancel()
	}()

	job, err := s.PowersetFunc(ctx, sink, true, WithWorkers(1))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, job)

	close(release)
	assert.ErrorIs(t, job.Wait(), context.Canceled)
	assert.Less(t, job.Delivered(), uint64(8))
}

func TestDispatchNilSink(t *testing.T) {
	s := mustOf(t, domain.MustNew([]int{1}), 1)
	_, err := s.PowersetFunc(context.Background(), nil, true)
	assert.ErrorIs(t, err, ErrNilSink)
}

func TestDispatchTooManyElements(t *testing.T) {
	s := Full(domain.MustNew(testutil.Ints(65)))
	_, err := s.PowersetFunc(context.Background(), func(*Set[int]) error { return nil }, true)
	assert.ErrorIs(t, err, ErrTooManyElements)
}

func TestDispatchMetrics(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(4)), 0, 1, 3)
	metrics := &BasicMetricsCollector{}

	_, err := s.PowersetFunc(context.Background(), newCollector().sink, true,
		WithUnitSize(2), WithMetricsCollector(metrics))
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.DispatchCount)
	assert.Zero(t, stats.DispatchErrors)
	assert.Equal(t, int64(4), stats.Units)
	assert.Equal(t, uint64(8), stats.Delivered)
	assert.Zero(t, stats.SinkErrors)
}

func TestDispatchRateLimit(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(5)), 0, 1, 2, 3, 4)

	c := newCollector()
	_, err := s.PowersetFunc(context.Background(), c.sink, true,
		WithWorkers(2), WithUnitSize(8), WithRateLimit(1000))
	require.NoError(t, err)
	assert.Len(t, c.seen, 32)
}

func TestDispatchLogging(t *testing.T) {
	s := mustOf(t, domain.MustNew(testutil.Ints(3)), 0, 2)

	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := s.PowersetFunc(context.Background(), newCollector().sink, true, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "powerset dispatch started")
	assert.Contains(t, out, "powerset dispatch completed")
	assert.Contains(t, out, "bits=2")
	assert.Contains(t, out, "delivered=4")
}

func TestDispatchUnitSize(t *testing.T) {
	p, err := Full(domain.MustNew(testutil.Ints(64))).Powerset()
	require.NoError(t, err)
	assert.Equal(t, uint64(maxUnitSize), p.unitSize(8))

	p, err = Full(domain.MustNew(testutil.Ints(4))).Powerset()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.unitSize(4))
	assert.Equal(t, uint64(4), p.unitSize(1))
}

func TestDispatchGeneralSource(t *testing.T) {
	d := domain.MustNew(testutil.Ints(100))
	s := mustOf(t, d, 3, 5, 70, 99)
	p, err := s.Powerset()
	require.NoError(t, err)

	var mu sync.Mutex
	got := make(map[string]int)
	job, err := p.Dispatch(context.Background(), func(sub *Set[int]) error {
		assert.Same(t, d, sub.Domain())
		key := sub.BinaryString()
		mu.Lock()
		got[key]++
		mu.Unlock()
		return nil
	}, true, WithWorkers(4), WithUnitSize(3))
	require.NoError(t, err)

	want := make(map[string]int)
	for _, sub := range p.All() {
		want[sub.BinaryString()]++
	}
	assert.Len(t, got, 16)
	assert.Equal(t, want, got)
	assert.Equal(t, uint64(16), job.Delivered())
}

func TestDispatchFullWidthUnitOverflow(t *testing.T) {
	s := Full(domain.MustNew(testutil.Ints(64)))
	boom := errors.New("boom")

	var calls atomic.Int64
	job, err := s.PowersetFunc(context.Background(), func(*Set[int]) error {
		if calls.Add(1) > 63 {
			return boom
		}
		return nil
	}, true, WithUnitSize(^uint64(0)))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var se *SinkError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, uint64(63), job.Delivered())
}

func TestDispatchFullWidthCanceledBySink(t *testing.T) {
	s := Full(domain.MustNew(testutil.Ints(64)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int64
	job, err := s.PowersetFunc(ctx, func(*Set[int]) error {
		if calls.Add(1) == 100 {
			cancel()
		}
		return nil
	}, true, WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, job)

	assert.ErrorIs(t, job.Wait(), context.Canceled)
	assert.GreaterOrEqual(t, job.Delivered(), uint64(100))
	assert.Less(t, job.Delivered(), uint64(maxUnitSize))
}
