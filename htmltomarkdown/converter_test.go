package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pullquote.Converter at compile time.
var _ pullquote.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>The Headline</h1><p>Body text with <strong>emphasis</strong>.</p>`

		conv := htmltomarkdown.NewConverter()
		got, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, got, "# The Headline")
		assert.Contains(t, got, "**emphasis**")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://example.com">the source</a> for details.</p>`

		conv := htmltomarkdown.NewConverter()
		got, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, got, "[the source](https://example.com)")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, pullquote.EINVALID, pullquote.ErrorCode(err))
	})
}
