package pullquote

import (
	"regexp"
	"strings"
)

var (
	timestampRe  = regexp.MustCompile(`\[\d+:\d+\]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize prepares raw transcript or article text for segmentation.
// It removes [MM:SS] timestamp markers, collapses every whitespace run to a
// single space, and trims the ends. Idempotent: normalizing normalized text
// is a no-op.
func Normalize(text string) string {
	text = timestampRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
