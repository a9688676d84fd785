// Package slog provides logging decorators for htmldown services.
package slog

import (
	"log/slog"
	"time"

	"github.com/htmldown/htmldown"
)

// Ensure LoggingConverter implements htmldown.Converter.
var _ htmldown.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging for conversion
// timing and sizing.
type LoggingConverter struct {
	next   htmldown.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next htmldown.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outcome.
func (c *LoggingConverter) Convert(html string) (string, error) {
	begin := time.Now()
	markdown, err := c.next.Convert(html)
	if err != nil {
		c.logger.Error("conversion failed",
			slog.String("code", htmldown.ErrorCode(err)),
			slog.String("error", htmldown.ErrorMessage(err)),
			slog.Duration("duration", time.Since(begin)),
		)
		return "", err
	}
	c.logger.Debug("converted document",
		slog.Int("input_bytes", len(html)),
		slog.Int("output_bytes", len(markdown)),
		slog.Duration("duration", time.Since(begin)),
	)
	return markdown, nil
}
