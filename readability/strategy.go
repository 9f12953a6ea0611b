// Package readability implements the heuristic article extraction strategy
// on top of go-readability, which scores document blocks to locate the main
// content. Broader page-type coverage than the metadata-aware strategy but
// slightly noisier, so it runs second in the cascade.
package readability

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/fwojciec/pullquote"
	"github.com/go-shiori/go-readability"
)

// Ensure Strategy implements pullquote.Strategy at compile time.
var _ pullquote.Strategy = (*Strategy)(nil)

// keywordCount and summarySentences size the enrichment fields.
const (
	keywordCount     = 10
	summarySentences = 3
)

// Strategy downloads a page, locates the main content block with a scoring
// heuristic, and enriches the result with frequency-ranked keywords and an
// extractive summary.
type Strategy struct {
	fetcher pullquote.Fetcher
}

// NewStrategy creates a new Strategy using the given fetcher.
func NewStrategy(fetcher pullquote.Fetcher) *Strategy {
	return &Strategy{fetcher: fetcher}
}

// Name identifies the strategy in results and logs.
func (s *Strategy) Name() string { return "readability" }

// Attempt fetches the URL and extracts its main content.
func (s *Strategy) Attempt(ctx context.Context, rawURL string) (*pullquote.Extraction, error) {
	rawHTML, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	pageURL, _ := url.Parse(rawURL)
	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, errors.New("no main content found")
	}

	ext := &pullquote.Extraction{
		Strategy:    s.Name(),
		Title:       article.Title,
		Text:        text,
		ContentHTML: article.Content,
		Keywords:    pullquote.Keywords(text, keywordCount),
		Summary:     pullquote.Summarize(text, summarySentences),
	}
	if byline := strings.TrimSpace(article.Byline); byline != "" {
		ext.Authors = []string{byline}
	}
	if article.PublishedTime != nil {
		ext.PublishDate = article.PublishedTime
	}

	return ext, nil
}
