package mock

import "github.com/fwojciec/pullquote"

var _ pullquote.Converter = (*Converter)(nil)

// Converter is a mock implementation of pullquote.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
