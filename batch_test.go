package htmldown_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmldown/htmldown"
	"github.com/htmldown/htmldown/mock"
)

func TestConvertEach(t *testing.T) {
	t.Parallel()

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return strings.ToUpper(html), nil
			},
		}

		got, err := htmldown.ConvertEach(context.Background(), c, []string{"a", "b", "c"}, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, got)
	})

	t.Run("error cancels the batch", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				if html == "bad" {
					return "", htmldown.Errorf(htmldown.EINVALID, "bad document")
				}
				return html, nil
			},
		}

		got, err := htmldown.ConvertEach(context.Background(), c, []string{"ok", "bad", "ok"}, 1)

		assert.Equal(t, htmldown.EINVALID, htmldown.ErrorCode(err))
		assert.Nil(t, got)
	})

	t.Run("cancelled context stops the work", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				calls.Add(1)
				return html, nil
			},
		}

		docs := make([]string, 100)
		_, err := htmldown.ConvertEach(ctx, c, docs, 1)

		assert.Error(t, err)
		assert.Less(t, calls.Load(), int32(100))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		}

		got, err := htmldown.ConvertEach(context.Background(), c, nil, 4)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-positive concurrency uses the default", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		}

		got, err := htmldown.ConvertEach(context.Background(), c, []string{"x"}, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, got)
	})
}
