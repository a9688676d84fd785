package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmldown/htmldown"
	"github.com/htmldown/htmldown/mock"
	hdslog "github.com/htmldown/htmldown/slog"
)

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and duration on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# Out", nil
			},
		}

		c := hdslog.NewLoggingConverter(inner, logger)
		got, err := c.Convert("<h1>Out</h1>")

		require.NoError(t, err)
		assert.Equal(t, "# Out", got)
		output := buf.String()
		assert.Contains(t, output, "converted document")
		assert.Contains(t, output, "input_bytes=12")
		assert.Contains(t, output, "output_bytes=5")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error with code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", htmldown.Errorf(htmldown.EINVALID, "bad markup")
			},
		}

		c := hdslog.NewLoggingConverter(inner, logger)
		_, err := c.Convert("<x>")

		assert.Equal(t, htmldown.EINVALID, htmldown.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "conversion failed")
		assert.Contains(t, output, "code=invalid")
	})
}

func TestLoggingScoper_Scope(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the match", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Scoper{
			ScopeFn: func(html, selector string) (string, error) {
				return "<main>x</main>", nil
			},
		}

		s := hdslog.NewLoggingScoper(inner, logger)
		got, err := s.Scope("<body><main>x</main></body>", "main")

		require.NoError(t, err)
		assert.Equal(t, "<main>x</main>", got)
		assert.Contains(t, buf.String(), "scoped document")
		assert.Contains(t, buf.String(), "selector=main")
	})

	t.Run("logs failed scope", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Scoper{
			ScopeFn: func(html, selector string) (string, error) {
				return "", htmldown.Errorf(htmldown.ENOTFOUND, "no match")
			},
		}

		s := hdslog.NewLoggingScoper(inner, logger)
		_, err := s.Scope("<p>x</p>", "#missing")

		assert.Equal(t, htmldown.ENOTFOUND, htmldown.ErrorCode(err))
		assert.Contains(t, buf.String(), "scope failed")
		assert.Contains(t, buf.String(), "code=not_found")
	})
}
