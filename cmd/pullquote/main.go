package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/extract"
	"github.com/fwojciec/pullquote/goquery"
	"github.com/fwojciec/pullquote/govader"
	"github.com/fwojciec/pullquote/htmltomarkdown"
	pullhttp "github.com/fwojciec/pullquote/http"
	"github.com/fwojciec/pullquote/readability"
	pullslog "github.com/fwojciec/pullquote/slog"
	"github.com/fwojciec/pullquote/trafilatura"
	"github.com/fwojciec/pullquote/youtube"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// requestsPerSecond paces fetches per domain. The cascade can hit the same
// host up to three times per URL.
const requestsPerSecond = 1.0

// Main represents the program.
type Main struct {
	// Service overrides for end-to-end testing. When nil, Run wires the
	// production implementations.
	Extractor   pullquote.Extractor
	Converter   pullquote.Converter
	Scorer      pullquote.Scorer
	Transcripts pullquote.TranscriptSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pullquote"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pullquote --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Extractor = m.Extractor
	if deps.Extractor == nil {
		fetcher := pullhttp.NewFetcher()
		deps.Extractor = &extract.Cascade{
			Strategies: []pullquote.Strategy{
				pullslog.NewLoggingStrategy(trafilatura.NewStrategy(fetcher), logger),
				pullslog.NewLoggingStrategy(readability.NewStrategy(fetcher), logger),
				pullslog.NewLoggingStrategy(goquery.NewStrategy(fetcher), logger),
			},
			Limiter: extract.NewDomainLimiter(requestsPerSecond),
		}
	}

	deps.Converter = m.Converter
	if deps.Converter == nil {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	deps.Scorer = m.Scorer
	if deps.Scorer == nil {
		deps.Scorer = govader.NewScorer()
	}

	deps.Transcripts = m.Transcripts
	if deps.Transcripts == nil {
		deps.Transcripts = youtube.NewTranscriptSource(pullhttp.NewFetcher())
	}

	return kongCtx.Run(deps)
}
