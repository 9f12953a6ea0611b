// Package extract coordinates the content extraction strategies. It runs
// them in fixed priority order against a URL and applies a quality gate to
// decide which result to surface.
package extract

import (
	"context"
	"net/url"

	"github.com/fwojciec/pullquote"
)

// QualityGate is the minimum body length, in characters, a strategy result
// must exceed to be accepted without trying further strategies. Boilerplate
// strippers can "succeed" while returning only a nav-menu fragment; this
// floor separates real prose from scraps.
const QualityGate = 200

var _ pullquote.Extractor = (*Cascade)(nil)

// Cascade runs extraction strategies in priority order.
type Cascade struct {
	// Strategies in priority order. Each is invoked at most once per
	// Run and performs its own fetch.
	Strategies []pullquote.Strategy

	// Limiter, when set, paces fetches against the target host. The
	// cascade can hit the same host several times per request.
	Limiter pullquote.DomainLimiter
}

// Run extracts content from the URL using the first strategy whose result
// clears the quality gate. When no result clears the gate, the first
// successful non-empty result is returned instead; partial content beats
// none. Strategy failures are absorbed and the cascade continues.
//
// Returns EINVALID without fetching anything if the URL lacks a scheme or
// host, and EEXTRACTION when every strategy comes back empty-handed.
func (c *Cascade) Run(ctx context.Context, rawURL string) (*pullquote.Extraction, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, pullquote.Errorf(pullquote.EINVALID, "invalid URL %q", rawURL)
	}

	var fallback *pullquote.Extraction
	for _, strategy := range c.Strategies {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx, parsed.Host); err != nil {
				return nil, err
			}
		}

		ext, err := strategy.Attempt(ctx, rawURL)
		if err != nil || ext == nil || ext.Text == "" {
			continue
		}
		if len(ext.Text) > QualityGate {
			return ext, nil
		}
		if fallback == nil {
			fallback = ext
		}
	}

	if fallback != nil {
		return fallback, nil
	}
	return nil, pullquote.Errorf(pullquote.EEXTRACTION, "failed to extract content from %q with all available strategies", rawURL)
}
