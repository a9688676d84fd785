package mock

import "github.com/htmldown/htmldown"

var _ htmldown.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmldown.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
