package pullquote

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch downloads the resource at the URL and returns its body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
