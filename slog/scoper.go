package slog

import (
	"log/slog"

	"github.com/htmldown/htmldown"
)

// Ensure LoggingScoper implements htmldown.Scoper.
var _ htmldown.Scoper = (*LoggingScoper)(nil)

// LoggingScoper wraps a Scoper with debug logging for selector matches.
type LoggingScoper struct {
	next   htmldown.Scoper
	logger *slog.Logger
}

// NewLoggingScoper creates a new LoggingScoper.
func NewLoggingScoper(next htmldown.Scoper, logger *slog.Logger) *LoggingScoper {
	return &LoggingScoper{next: next, logger: logger}
}

// Scope delegates to the wrapped scoper and logs the outcome.
func (s *LoggingScoper) Scope(html, selector string) (string, error) {
	scoped, err := s.next.Scope(html, selector)
	if err != nil {
		s.logger.Debug("scope failed",
			slog.String("selector", selector),
			slog.String("code", htmldown.ErrorCode(err)),
		)
		return "", err
	}
	s.logger.Debug("scoped document",
		slog.String("selector", selector),
		slog.Int("input_bytes", len(html)),
		slog.Int("scoped_bytes", len(scoped)),
	)
	return scoped, nil
}
