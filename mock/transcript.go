package mock

import (
	"context"

	"github.com/fwojciec/pullquote"
)

var _ pullquote.TranscriptSource = (*TranscriptSource)(nil)

// TranscriptSource is a mock implementation of pullquote.TranscriptSource.
type TranscriptSource struct {
	TranscriptFn func(ctx context.Context, videoID, language string) ([]pullquote.TranscriptSegment, error)
}

func (s *TranscriptSource) Transcript(ctx context.Context, videoID, language string) ([]pullquote.TranscriptSegment, error) {
	return s.TranscriptFn(ctx, videoID, language)
}
