package youtube

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/pullquote"
)

// DefaultBaseURL is the public timedtext endpoint serving caption tracks.
const DefaultBaseURL = "https://video.google.com/timedtext"

// fallbackLanguage is used when the caller expresses no preference or the
// preferred language has no track.
const fallbackLanguage = "en"

// Ensure TranscriptSource implements pullquote.TranscriptSource at compile time.
var _ pullquote.TranscriptSource = (*TranscriptSource)(nil)

// TranscriptSource retrieves caption transcripts from the timedtext
// endpoint. Videos with captions disabled expose no tracks at all, which
// surfaces as EUNAVAILABLE.
type TranscriptSource struct {
	fetcher pullquote.Fetcher
	baseURL string
}

// Option configures a TranscriptSource.
type Option func(*TranscriptSource)

// WithBaseURL overrides the timedtext endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(s *TranscriptSource) {
		s.baseURL = baseURL
	}
}

// NewTranscriptSource creates a TranscriptSource using the given fetcher.
func NewTranscriptSource(fetcher pullquote.Fetcher, opts ...Option) *TranscriptSource {
	s := &TranscriptSource{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcript returns the ordered caption segments of a video. The language
// is an optional preference; when it has no track the English track is used,
// and failing that the first available one.
func (s *TranscriptSource) Transcript(ctx context.Context, videoID, language string) ([]pullquote.TranscriptSegment, error) {
	track, err := s.findTrack(ctx, videoID, language)
	if err != nil {
		return nil, err
	}

	trackURL := fmt.Sprintf("%s?v=%s&lang=%s", s.baseURL, url.QueryEscape(videoID), url.QueryEscape(track.lang))
	if track.name != "" {
		trackURL += "&name=" + url.QueryEscape(track.name)
	}

	body, err := s.fetcher.Fetch(ctx, trackURL)
	if err != nil {
		return nil, pullquote.Errorf(pullquote.EUNAVAILABLE, "caption track for video %q unavailable: %v", videoID, err)
	}

	segments, err := parseTrack(body)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, pullquote.Errorf(pullquote.ENOTFOUND, "no transcript found for video %q", videoID)
	}
	return segments, nil
}

// track identifies one caption track in the track list.
type track struct {
	lang string
	name string
}

// findTrack lists the video's caption tracks and picks the best match for
// the requested language.
func (s *TranscriptSource) findTrack(ctx context.Context, videoID, language string) (*track, error) {
	listURL := fmt.Sprintf("%s?type=list&v=%s", s.baseURL, url.QueryEscape(videoID))
	body, err := s.fetcher.Fetch(ctx, listURL)
	if err != nil {
		return nil, pullquote.Errorf(pullquote.EUNAVAILABLE, "caption track list for video %q unavailable: %v", videoID, err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, pullquote.Errorf(pullquote.EINTERNAL, "malformed caption track list for video %q: %v", videoID, err)
	}

	root := doc.SelectElement("transcript_list")
	if root == nil {
		return nil, pullquote.Errorf(pullquote.EUNAVAILABLE, "transcripts are disabled for video %q", videoID)
	}

	var tracks []*track
	for _, el := range root.SelectElements("track") {
		tracks = append(tracks, &track{
			lang: el.SelectAttrValue("lang_code", ""),
			name: el.SelectAttrValue("name", ""),
		})
	}
	if len(tracks) == 0 {
		return nil, pullquote.Errorf(pullquote.EUNAVAILABLE, "transcripts are disabled for video %q", videoID)
	}

	for _, want := range []string{language, fallbackLanguage} {
		if want == "" {
			continue
		}
		for _, tr := range tracks {
			if tr.lang == want {
				return tr, nil
			}
		}
	}
	return tracks[0], nil
}

// parseTrack decodes the caption XML into ordered transcript segments.
func parseTrack(body string) ([]pullquote.TranscriptSegment, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, pullquote.Errorf(pullquote.EINTERNAL, "malformed caption track: %v", err)
	}

	root := doc.SelectElement("transcript")
	if root == nil {
		return nil, nil
	}

	var segments []pullquote.TranscriptSegment
	for _, el := range root.SelectElements("text") {
		text := html.UnescapeString(el.Text())
		if text == "" {
			continue
		}
		start, err := strconv.ParseFloat(el.SelectAttrValue("start", "0"), 64)
		if err != nil || start < 0 {
			start = 0
		}
		segments = append(segments, pullquote.TranscriptSegment{Text: text, Start: start})
	}
	return segments, nil
}
