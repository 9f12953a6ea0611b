package trafilatura_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/mock"
	"github.com/fwojciec/pullquote/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Strategy implements pullquote.Strategy at compile time.
var _ pullquote.Strategy = (*trafilatura.Strategy)(nil)

func fetcherReturning(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (string, error) {
			return html, nil
		},
	}
}

func TestStrategy_Attempt(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and skips boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>A Remarkable Story</h1>
<p>This is the substantive article content that readers came for.</p>
<p>It continues over a second paragraph with more detail.</p>
</article>
<footer>Copyright 2026 Example Corp</footer>
</body>
</html>`

		strategy := trafilatura.NewStrategy(fetcherReturning(html))
		got, err := strategy.Attempt(context.Background(), "https://example.com/story")

		require.NoError(t, err)
		assert.Equal(t, "trafilatura", got.Strategy)
		assert.Contains(t, got.Text, "substantive article content")
		assert.NotContains(t, got.Text, "Copyright 2026 Example Corp")
	})

	t.Run("recovers metadata from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>The Article - Example News</title>
<meta property="og:title" content="The Article">
<meta name="author" content="Jane Doe">
</head>
<body>
<article>
<h1>The Article</h1>
<p>Enough body text here for the extractor to find the main content block.</p>
</article>
</body>
</html>`

		strategy := trafilatura.NewStrategy(fetcherReturning(html))
		got, err := strategy.Attempt(context.Background(), "https://example.com/article")

		require.NoError(t, err)
		assert.NotEmpty(t, got.Title)
		assert.Contains(t, got.Authors, "Jane Doe")
	})

	t.Run("returns fetch errors to the caller", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", fetchErr
			},
		}

		strategy := trafilatura.NewStrategy(fetcher)
		_, err := strategy.Attempt(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, fetchErr, err)
	})

	t.Run("returns error when no content is found", func(t *testing.T) {
		t.Parallel()

		strategy := trafilatura.NewStrategy(fetcherReturning("<html><body></body></html>"))
		_, err := strategy.Attempt(context.Background(), "https://example.com")

		require.Error(t, err)
	})
}
