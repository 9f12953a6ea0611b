package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/youtube"
	"golang.org/x/sync/errgroup"
)

// Run executes the quotes command.
func (c *QuotesCmd) Run(deps *Dependencies) error {
	polarity := pullquote.Positive
	if c.Negative {
		polarity = pullquote.Negative
	}

	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", c.File, err)
		}
		printQuotes(deps, pullquote.TopQuotes(deps.Scorer, string(data), c.Top, polarity))
		return nil
	}

	if len(c.URLs) == 0 {
		return fmt.Errorf("no URLs specified. Pass URLs as arguments or use --file")
	}

	type result struct {
		text string
		err  error
	}
	results := make([]result, len(c.URLs))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, url := range c.URLs {
		g.Go(func() error {
			text, err := resolveText(ctx, deps, url)
			results[i] = result{text: text, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, url := range c.URLs {
		if res := results[i]; res.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", url, pullquote.ErrorMessage(res.err))
			continue
		}
		if len(c.URLs) > 1 {
			fmt.Fprintf(deps.Stdout, "## %s\n\n", url)
		}
		printQuotes(deps, pullquote.TopQuotes(deps.Scorer, results[i].text, c.Top, polarity))
		if len(c.URLs) > 1 {
			fmt.Fprintln(deps.Stdout)
		}
	}

	if failed == len(c.URLs) {
		return fmt.Errorf("all %d URLs failed", failed)
	}
	return nil
}

func printQuotes(deps *Dependencies, quotes []pullquote.ScoredQuote) {
	if len(quotes) == 0 {
		fmt.Fprintln(deps.Stdout, "No quotes found.")
		return
	}
	for i, q := range quotes {
		fmt.Fprintf(deps.Stdout, "%d. %s (%.4f)\n", i+1, q.Quote, q.Score)
	}
}

// resolveText produces ranking input for a URL: a formatted transcript for
// video URLs, extracted article text for everything else.
func resolveText(ctx context.Context, deps *Dependencies, url string) (string, error) {
	if videoID, ok := youtube.VideoID(url); ok {
		segments, err := deps.Transcripts.Transcript(ctx, videoID, "")
		if err != nil {
			return "", err
		}
		return pullquote.FormatTranscript(segments), nil
	}

	ext, err := deps.Extractor.Run(ctx, url)
	if err != nil {
		return "", err
	}
	return ext.Text, nil
}
