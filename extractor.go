package pullquote

import (
	"context"
	"time"
)

// Extraction holds the content one strategy pulled from a web page.
type Extraction struct {
	// Strategy identifies which strategy produced the result.
	Strategy string `json:"strategy"`

	// Title is the page title, when the strategy can recover one.
	Title string `json:"title,omitempty"`

	// Text is the candidate prose with boilerplate removed.
	Text string `json:"text"`

	// ContentHTML is the main content as clean HTML, when the strategy
	// preserves markup. Used for markdown conversion; empty for
	// text-only strategies.
	ContentHTML string `json:"-"`

	// Enrichment fields. Best effort; strategies that cannot recover
	// them leave them empty.
	Authors     []string   `json:"authors,omitempty"`
	PublishDate *time.Time `json:"publishDate,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
}

// Extractor runs the full strategy cascade for a URL and returns the best
// extraction. Implemented by extract.Cascade.
type Extractor interface {
	Run(ctx context.Context, url string) (*Extraction, error)
}

// Strategy extracts article content from a URL. Each strategy owns its own
// fetch and parse pairing. A failed fetch or parse is reported through the
// error return; the extraction cascade absorbs it and moves on to the next
// strategy.
type Strategy interface {
	// Name identifies the strategy in results and logs.
	Name() string

	// Attempt fetches the URL and extracts its main content.
	// The context bounds the network fetch.
	Attempt(ctx context.Context, url string) (*Extraction, error)
}
