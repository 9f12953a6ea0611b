package pullquote

import "context"

// DomainLimiter rate-limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}
