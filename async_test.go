package htmldown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/htmldown/htmldown"
	"github.com/htmldown/htmldown/mock"
)

func TestConvertAsync(t *testing.T) {
	t.Parallel()

	t.Run("delivers the conversion result", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# " + html, nil
			},
		}

		result := <-htmldown.ConvertAsync(c, "Title")

		assert.NoError(t, result.Err)
		assert.Equal(t, "# Title", result.Markdown)
	})

	t.Run("delivers the conversion error", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", htmldown.Errorf(htmldown.EINVALID, "bad input")
			},
		}

		result := <-htmldown.ConvertAsync(c, "x")

		assert.Equal(t, htmldown.EINVALID, htmldown.ErrorCode(result.Err))
		assert.Empty(t, result.Markdown)
	})

	t.Run("does not block when the result is never read", func(t *testing.T) {
		t.Parallel()

		c := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "", nil },
		}

		// Buffered channel lets the goroutine finish without a receiver.
		_ = htmldown.ConvertAsync(c, "x")
	})
}
