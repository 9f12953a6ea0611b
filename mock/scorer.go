package mock

import "github.com/fwojciec/pullquote"

var _ pullquote.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of pullquote.Scorer.
type Scorer struct {
	CompoundFn func(text string) float64
}

func (s *Scorer) Compound(text string) float64 {
	return s.CompoundFn(text)
}
