package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pullquote"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Extractor   pullquote.Extractor
	Converter   pullquote.Converter
	Scorer      pullquote.Scorer
	Transcripts pullquote.TranscriptSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract    ExtractCmd    `cmd:"" help:"Extract article content from a web page"`
	Quotes     QuotesCmd     `cmd:"" help:"Rank quotable sentences from URLs or a text file"`
	Transcript TranscriptCmd `cmd:"" help:"Fetch the caption transcript of a video"`
	Serve      ServeCmd      `cmd:"" help:"Run the HTTP API server"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Markdown bool   `short:"m" help:"Render the extracted content as Markdown"`
	JSON     bool   `help:"Print the full extraction as JSON"`
}

// QuotesCmd is the "quotes" subcommand.
type QuotesCmd struct {
	URLs        []string `arg:"" optional:"" help:"Page or video URLs"`
	File        string   `short:"f" type:"existingfile" help:"Rank quotes from a text file instead of URLs"`
	Top         int      `short:"n" default:"5" help:"Number of quotes to return"`
	Negative    bool     `help:"Rank the most negative quotes instead of the most positive"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent URL limit"`
}

// TranscriptCmd is the "transcript" subcommand.
type TranscriptCmd struct {
	URL      string `arg:"" help:"Video URL or bare 11-character video ID"`
	Language string `short:"l" help:"Preferred caption language code"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
