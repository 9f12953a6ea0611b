// Package slog provides logging decorators for pullquote interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pullquote"
)

// Ensure LoggingStrategy implements pullquote.Strategy.
var _ pullquote.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a Strategy and logs every attempt with its outcome,
// extracted text length, and duration.
type LoggingStrategy struct {
	next   pullquote.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next pullquote.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Attempt delegates to the wrapped strategy and logs the attempt.
func (s *LoggingStrategy) Attempt(ctx context.Context, url string) (ext *pullquote.Extraction, err error) {
	defer func(begin time.Time) {
		var textLen int
		if ext != nil {
			textLen = len(ext.Text)
		}
		s.logger.Info("extraction attempt",
			"strategy", s.next.Name(),
			"url", url,
			"chars", textLen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Attempt(ctx, url)
}
