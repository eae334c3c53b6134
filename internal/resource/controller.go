package resource

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds dispatch limits.
type Config struct {
	// MaxWorkers is the maximum number of concurrently running work units.
	// If <= 0, defaults to runtime.GOMAXPROCS(0).
	MaxWorkers int64

	// UnitsPerSecond limits how fast work units may start.
	// If <= 0, unlimited.
	UnitsPerSecond float64
}

// Controller hands out worker slots.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted
	started atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.UnitsPerSecond > 0 {
		burst := int(cfg.UnitsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.UnitsPerSecond), burst)
	}

	return c
}

// Acquire blocks until a worker slot is free and the rate limit admits another unit.
func (c *Controller) Acquire(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	if err := c.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.workers.Release(1)
			return err
		}
	}
	c.started.Add(1)
	return nil
}

// Release frees a worker slot.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.workers.Release(1)
}

// Started returns the number of slots handed out so far.
func (c *Controller) Started() int64 {
	if c == nil {
		return 0
	}
	return c.started.Load()
}

// MaxWorkers returns the configured worker bound.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxWorkers
}
