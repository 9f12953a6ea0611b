package pullquote

import (
	"regexp"
	"strings"
	"unicode"
)

// Segmentation thresholds, tuned on spoken transcripts. Quotes must be
// long enough to stand alone and short enough to display cleanly.
const (
	minQuoteLen    = 20
	maxQuoteLen    = 200
	longSegmentLen = 100
)

var (
	sentenceEndRe = regexp.MustCompile(`[.?!]\s+`)
	clausePauseRe = regexp.MustCompile(`[,;]\s+|\s(?:and|but|or|so)\s`)
)

// Segment splits normalized text into an ordered sequence of candidate
// quotes. It favors short, self-contained spans over grammatically perfect
// sentences: after a coarse split on sentence-ending punctuation, segments
// longer than 100 characters are further split on clause pauses (commas,
// semicolons, coordinating conjunctions). Only spans with trimmed length
// strictly between 20 and 200 characters survive.
//
// Document order is preserved. Empty or degenerate input yields an empty
// sequence, never an error.
func Segment(text string) []string {
	var candidates []string
	for _, sentence := range splitSentences(text) {
		if len(sentence) > longSegmentLen {
			candidates = append(candidates, splitClauses(sentence)...)
			continue
		}
		candidates = append(candidates, sentence)
	}

	quotes := candidates[:0]
	for _, c := range candidates {
		if len(c) > minQuoteLen && len(c) < maxQuoteLen {
			quotes = append(quotes, c)
		}
	}
	return quotes
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace, skipping periods that end abbreviation-like tokens so that
// initials ("J. Smith") and honorifics ("Mr. Jones") don't produce false
// boundaries.
func splitSentences(text string) []string {
	var out []string
	prev := 0
	for _, m := range sentenceEndRe.FindAllStringIndex(text, -1) {
		if text[m[0]] == '.' && endsAbbreviation(text, m[0]) {
			continue
		}
		if seg := strings.TrimSpace(text[prev : m[0]+1]); seg != "" {
			out = append(out, seg)
		}
		prev = m[1]
	}
	if rest := strings.TrimSpace(text[prev:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

// endsAbbreviation reports whether the period at pos terminates an
// abbreviation-like token: a single letter, or a capital followed by a
// lowercase letter.
func endsAbbreviation(text string, pos int) bool {
	start := pos
	for start > 0 && !unicode.IsSpace(rune(text[start-1])) {
		start--
	}
	token := text[start:pos]
	switch len(token) {
	case 1:
		return unicode.IsLetter(rune(token[0]))
	case 2:
		return unicode.IsUpper(rune(token[0])) && unicode.IsLower(rune(token[1]))
	}
	return false
}

// splitClauses splits a long sentence after commas, semicolons, and the
// coordinating conjunctions and/but/or/so.
func splitClauses(sentence string) []string {
	var out []string
	prev := 0
	for _, m := range clausePauseRe.FindAllStringIndex(sentence, -1) {
		if clause := strings.TrimSpace(sentence[prev:m[1]]); clause != "" {
			out = append(out, clause)
		}
		prev = m[1]
	}
	if rest := strings.TrimSpace(sentence[prev:]); rest != "" {
		out = append(out, rest)
	}
	return out
}
