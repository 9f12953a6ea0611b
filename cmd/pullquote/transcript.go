package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/pullquote"
	"github.com/fwojciec/pullquote/youtube"
)

var bareVideoID = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// Run executes the transcript command.
func (c *TranscriptCmd) Run(deps *Dependencies) error {
	videoID, ok := youtube.VideoID(c.URL)
	if !ok {
		if !bareVideoID.MatchString(c.URL) {
			err := pullquote.Errorf(pullquote.EINVALID, "not a video URL or ID: %q", c.URL)
			fmt.Fprintf(deps.Stderr, "error: %s\n", pullquote.ErrorMessage(err))
			return err
		}
		videoID = c.URL
	}

	segments, err := deps.Transcripts.Transcript(deps.Ctx, videoID, c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pullquote.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, pullquote.FormatTranscript(segments))

	return nil
}
