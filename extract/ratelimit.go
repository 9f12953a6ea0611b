package extract

import (
	"context"
	"sync"

	"github.com/fwojciec/pullquote"
	"golang.org/x/time/rate"
)

var _ pullquote.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per domain using token buckets. Each domain
// gets its own limiter, so requests to different hosts never block each
// other while fetches against a single host stay polite.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, with a burst of 1 (no bursting).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
