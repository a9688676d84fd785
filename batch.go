package htmldown

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ConvertEach converts every document concurrently and returns the results
// in input order. Conversions share no mutable state, so the only
// coordination is the bounded worker group. A conversion error cancels the
// remaining work and is returned.
func ConvertEach(ctx context.Context, c Converter, docs []string, concurrency int) ([]string, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]string, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			md, err := c.Convert(doc)
			if err != nil {
				return err
			}
			results[i] = md
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
