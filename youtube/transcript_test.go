package youtube_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/mock"
	"github.com/fwojciec/pullquote/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure TranscriptSource implements pullquote.TranscriptSource at compile time.
var _ pullquote.TranscriptSource = (*youtube.TranscriptSource)(nil)

const trackListXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript_list docid="123">
<track id="0" name="" lang_code="en" lang_original="English" lang_translated="English" lang_default="true"/>
<track id="1" name="Español" lang_code="es" lang_original="Español" lang_translated="Spanish"/>
</transcript_list>`

const trackXML = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
<text start="0" dur="4.2">Hello world</text>
<text start="5.28" dur="3.1">This is a test &amp; a demo</text>
<text start="10.9" dur="2.0">Goodbye</text>
</transcript>`

// timedtextFetcher serves the track list for list requests and the caption
// XML for track requests, recording the URLs it saw.
func timedtextFetcher(listXML, captionXML string, urls *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if urls != nil {
				*urls = append(*urls, url)
			}
			if strings.Contains(url, "type=list") {
				return listXML, nil
			}
			return captionXML, nil
		},
	}
}

func TestTranscriptSource_Transcript(t *testing.T) {
	t.Parallel()

	t.Run("returns ordered segments with unescaped text", func(t *testing.T) {
		t.Parallel()

		source := youtube.NewTranscriptSource(timedtextFetcher(trackListXML, trackXML, nil))

		got, err := source.Transcript(context.Background(), "dQw4w9WgXcQ", "")

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, pullquote.TranscriptSegment{Text: "Hello world", Start: 0}, got[0])
		assert.Equal(t, pullquote.TranscriptSegment{Text: "This is a test & a demo", Start: 5.28}, got[1])
		assert.Equal(t, pullquote.TranscriptSegment{Text: "Goodbye", Start: 10.9}, got[2])
	})

	t.Run("requests the preferred language when a track exists", func(t *testing.T) {
		t.Parallel()

		var urls []string
		source := youtube.NewTranscriptSource(timedtextFetcher(trackListXML, trackXML, &urls))

		_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ", "es")

		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Contains(t, urls[1], "lang=es")
	})

	t.Run("falls back to English for unknown languages", func(t *testing.T) {
		t.Parallel()

		var urls []string
		source := youtube.NewTranscriptSource(timedtextFetcher(trackListXML, trackXML, &urls))

		_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ", "fr")

		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Contains(t, urls[1], "lang=en")
	})

	t.Run("returns EUNAVAILABLE when the video has no tracks", func(t *testing.T) {
		t.Parallel()

		empty := `<?xml version="1.0" encoding="utf-8"?><transcript_list docid="123"></transcript_list>`
		source := youtube.NewTranscriptSource(timedtextFetcher(empty, trackXML, nil))

		_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ", "")

		require.Error(t, err)
		assert.Equal(t, pullquote.EUNAVAILABLE, pullquote.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when the track has no text", func(t *testing.T) {
		t.Parallel()

		empty := `<?xml version="1.0" encoding="utf-8"?><transcript></transcript>`
		source := youtube.NewTranscriptSource(timedtextFetcher(trackListXML, empty, nil))

		_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ", "")

		require.Error(t, err)
		assert.Equal(t, pullquote.ENOTFOUND, pullquote.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE when the track list fetch fails", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("HTTP 404")
			},
		}
		source := youtube.NewTranscriptSource(fetcher)

		_, err := source.Transcript(context.Background(), "dQw4w9WgXcQ", "")

		require.Error(t, err)
		assert.Equal(t, pullquote.EUNAVAILABLE, pullquote.ErrorCode(err))
	})
}
