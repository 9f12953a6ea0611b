package extract_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pullquote.DomainLimiter = (*extract.DomainLimiter)(nil)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(1.0)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("different domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(0.1)

		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "b.example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("returns error when context is canceled while waiting", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(0.001)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "example.com")

		require.Error(t, err)
	})
}
