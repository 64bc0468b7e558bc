package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces successive calls to an upstream API.
type Pacer interface {
	// Wait blocks until the next call is allowed or ctx is done.
	Wait(ctx context.Context) error
}

// IntervalPacer is a token-bucket Pacer backed by golang.org/x/time/rate.
type IntervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer allows one call per interval with the given burst.
// Example: NewIntervalPacer(2*time.Second, 1) -> feed pages at least two seconds apart.
func NewIntervalPacer(interval time.Duration, burst int) Pacer {
	return &IntervalPacer{
		limiter: rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Wait blocks until a token is available.
func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
