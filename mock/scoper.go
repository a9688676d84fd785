package mock

import "github.com/htmldown/htmldown"

var _ htmldown.Scoper = (*Scoper)(nil)

// Scoper is a mock implementation of htmldown.Scoper.
type Scoper struct {
	ScopeFn func(html, selector string) (string, error)
}

func (s *Scoper) Scope(html, selector string) (string, error) {
	return s.ScopeFn(html, selector)
}
