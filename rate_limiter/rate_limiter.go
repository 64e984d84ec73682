package rate_limiter

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Limiter throttles requests with a token bucket and bounds the number in flight
// Every successful Wait must be paired with a Release.
type Limiter struct {
	Name string

	limiter *rate.Limiter
	sem     *semaphore.Weighted
}

func NewLimiter(d *Definition) *Limiter {
	res := &Limiter{
		Name: d.Name,
	}
	if d.FillRate > 0 {
		res.limiter = rate.NewLimiter(d.FillRate, d.BucketSize)
	}
	if d.MaxConcurrency > 0 {
		res.sem = semaphore.NewWeighted(d.MaxConcurrency)
	}
	return res
}

// Wait blocks until a concurrency slot and a rate token are both available
func (l *Limiter) Wait(ctx context.Context) error {
	if l.sem != nil {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return err
		}
	}
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			l.Release()
			return err
		}
	}
	return nil
}

// Release frees the concurrency slot taken by Wait
func (l *Limiter) Release() {
	if l.sem == nil {
		return
	}
	l.sem.Release(1)
}
