package pullquote

import (
	"context"
	"fmt"
	"strings"
)

// TranscriptSegment is a single caption line of a video transcript.
type TranscriptSegment struct {
	// Text is the spoken text of the segment.
	Text string `json:"text"`

	// Start is the segment's offset from the start of the video,
	// in seconds. Never negative.
	Start float64 `json:"start"`
}

// TranscriptSource retrieves caption transcripts for videos.
type TranscriptSource interface {
	// Transcript returns the ordered segments of a video's caption
	// track. The language is an optional BCP 47 preference; when empty,
	// or when no track matches, implementations fall back to English.
	//
	// Returns EUNAVAILABLE if captions are disabled for the video and
	// ENOTFOUND if no transcript exists.
	Transcript(ctx context.Context, videoID, language string) ([]TranscriptSegment, error)
}

// FormatTranscript renders transcript segments as "[MM:SS] text" lines,
// one segment per line. Minutes and seconds are zero-padded to two digits.
// The timestamp format is a contract: Normalize strips exactly this shape.
func FormatTranscript(segments []TranscriptSegment) string {
	var sb strings.Builder
	for _, seg := range segments {
		minutes := int(seg.Start) / 60
		seconds := int(seg.Start) % 60
		fmt.Fprintf(&sb, "[%02d:%02d] %s\n", minutes, seconds, seg.Text)
	}
	return sb.String()
}
