// Package goquery implements the generic tag scraper extraction strategy.
// It is the cascade's last resort: highest recall, lowest precision, because
// it keeps every visible paragraph whether or not it belongs to the article.
package goquery

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pullquote"
)

// Ensure Strategy implements pullquote.Strategy at compile time.
var _ pullquote.Strategy = (*Strategy)(nil)

// minParagraphChars is the floor under which the paragraph-tag text is
// considered a miss and the scraper falls back to all visible text;
// pages that don't mark up content with <p> tags land here.
const minParagraphChars = 100

// nonContentSelector matches tags that never hold article prose.
const nonContentSelector = "script, style, header, footer, nav"

var collapseRe = regexp.MustCompile(`\s+`)

// Strategy scrapes visible text from a page after dropping non-content tags.
type Strategy struct {
	fetcher pullquote.Fetcher
}

// NewStrategy creates a new Strategy using the given fetcher.
func NewStrategy(fetcher pullquote.Fetcher) *Strategy {
	return &Strategy{fetcher: fetcher}
}

// Name identifies the strategy in results and logs.
func (s *Strategy) Name() string { return "scraper" }

// Attempt fetches the URL and scrapes its visible text.
func (s *Strategy) Attempt(ctx context.Context, url string) (*pullquote.Extraction, error) {
	rawHTML, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	doc.Find(nonContentSelector).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	text := strings.Join(paragraphs, "\n\n")

	// Pages that don't use paragraph tags for content yield next to
	// nothing above; fall back to all remaining visible text.
	if len(text) < minParagraphChars {
		text = strings.TrimSpace(collapseRe.ReplaceAllString(doc.Text(), " "))
	}

	if text == "" {
		return nil, errors.New("no visible text found")
	}

	return &pullquote.Extraction{
		Strategy: s.Name(),
		Title:    title,
		Text:     text,
	}, nil
}
