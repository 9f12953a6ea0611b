package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pullquote"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ext, err := deps.Extractor.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pullquote.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ext)
	}

	if c.Markdown {
		// Fall back to plain text for strategies that do not preserve
		// markup.
		if ext.ContentHTML == "" {
			fmt.Fprintln(deps.Stdout, ext.Text)
			return nil
		}
		md, err := deps.Converter.Convert(ext.ContentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pullquote.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, md)
		return nil
	}

	if ext.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", ext.Title)
	}
	if len(ext.Authors) > 0 {
		fmt.Fprintf(deps.Stdout, "By %s\n", strings.Join(ext.Authors, ", "))
	}
	if ext.PublishDate != nil {
		fmt.Fprintf(deps.Stdout, "Published %s\n", ext.PublishDate.Format("2006-01-02"))
	}
	if len(ext.Authors) > 0 || ext.PublishDate != nil {
		fmt.Fprintln(deps.Stdout)
	}
	fmt.Fprintln(deps.Stdout, ext.Text)

	return nil
}
