package mock

import (
	"context"

	"github.com/fwojciec/pullquote"
)

var _ pullquote.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pullquote.Extractor.
type Extractor struct {
	RunFn func(ctx context.Context, url string) (*pullquote.Extraction, error)
}

func (e *Extractor) Run(ctx context.Context, url string) (*pullquote.Extraction, error) {
	return e.RunFn(ctx, url)
}
