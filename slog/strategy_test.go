package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/mock"
	pqslog "github.com/fwojciec/pullquote/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pullquote.Strategy = (*pqslog.LoggingStrategy)(nil)

func TestLoggingStrategy_Attempt(t *testing.T) {
	t.Parallel()

	t.Run("logs successful attempts with strategy name and size", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Strategy{
			NameFn: func() string { return "trafilatura" },
			AttemptFn: func(_ context.Context, _ string) (*pullquote.Extraction, error) {
				return &pullquote.Extraction{Strategy: "trafilatura", Text: "some extracted body text"}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		strategy := pqslog.NewLoggingStrategy(inner, logger)
		got, err := strategy.Attempt(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "some extracted body text", got.Text)
		assert.Contains(t, buf.String(), "strategy=trafilatura")
		assert.Contains(t, buf.String(), "chars=24")
	})

	t.Run("logs failed attempts with the error", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Strategy{
			NameFn: func() string { return "scraper" },
			AttemptFn: func(_ context.Context, _ string) (*pullquote.Extraction, error) {
				return nil, errors.New("fetch failed")
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		strategy := pqslog.NewLoggingStrategy(inner, logger)
		_, err := strategy.Attempt(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
	})

	t.Run("delegates Name", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Strategy{NameFn: func() string { return "readability" }}
		strategy := pqslog.NewLoggingStrategy(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		assert.Equal(t, "readability", strategy.Name())
	})
}
