// Package pacer spaces outgoing requests at a fixed interval.
//
// YouTube endpoints are polled politely rather than as fast as the network
// allows. A Pacer is a burst-1 token bucket, so consecutive Wait calls are
// separated by at least the configured interval while the first call
// proceeds immediately.
package pacer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces a minimum interval between calls to Wait.
// The zero value and a nil Pacer wait for nothing.
type Pacer struct {
	limiter *rate.Limiter
}

// New creates a pacer that allows one call per interval.
// A non-positive interval disables pacing.
func New(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next call is allowed or the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}

// Interval returns the configured spacing between calls, or zero if
// pacing is disabled.
func (p *Pacer) Interval() time.Duration {
	if p == nil || p.limiter == nil {
		return 0
	}
	return time.Duration(float64(time.Second) / float64(p.limiter.Limit()))
}
