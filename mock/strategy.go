package mock

import (
	"context"

	"github.com/fwojciec/pullquote"
)

var _ pullquote.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of pullquote.Strategy.
type Strategy struct {
	NameFn    func() string
	AttemptFn func(ctx context.Context, url string) (*pullquote.Extraction, error)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Attempt(ctx context.Context, url string) (*pullquote.Extraction, error) {
	return s.AttemptFn(ctx, url)
}
