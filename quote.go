package pullquote

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Polarity selects which end of the sentiment scale a ranking surfaces.
type Polarity string

// Polarity values accepted by RankQuotes.
const (
	Positive Polarity = "positive"
	Negative Polarity = "negative"
)

// PolarityThreshold is the minimum compound score magnitude a candidate
// needs to enter a ranking. Deliberately low: conversational source text is
// typically mild, and a tighter band surfaces too few quotes.
const PolarityThreshold = 0.2

// DefaultTopN is the number of quotes returned when the caller doesn't ask
// for a specific count.
const DefaultTopN = 5

// ScoredQuote is a display-ready quote with its sentiment score.
type ScoredQuote struct {
	// Quote is the formatted quote text, wrapped in double quotes and
	// truncated if over-long.
	Quote string `json:"quote"`

	// Score is the compound sentiment polarity in [-1, 1].
	Score float64 `json:"score"`
}

// Scorer assigns sentiment scores to short text spans.
type Scorer interface {
	// Compound returns a normalized net polarity score in [-1, 1] for
	// the text. Each call is independent; no cross-sentence context.
	Compound(text string) float64
}

// RankQuotes scores every candidate and returns the topN most polarized
// ones. For Positive the result is sorted by score descending and every
// score exceeds PolarityThreshold; for Negative it is sorted ascending and
// every score is below -PolarityThreshold. Ties keep the candidates'
// original order. Repeated candidates are scored per occurrence; spoken
// text repeats its strongest lines and each occurrence counts.
//
// Display formatting (truncation, quote wrapping) is applied strictly after
// filtering and sorting and never affects the ranking.
func RankQuotes(scorer Scorer, candidates []string, topN int, polarity Polarity) []ScoredQuote {
	if topN < 0 {
		topN = 0
	}

	type scored struct {
		text  string
		score float64
	}

	var kept []scored
	for _, c := range candidates {
		score := scorer.Compound(c)
		switch polarity {
		case Negative:
			if score < -PolarityThreshold {
				kept = append(kept, scored{c, score})
			}
		default:
			if score > PolarityThreshold {
				kept = append(kept, scored{c, score})
			}
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if polarity == Negative {
			return kept[i].score < kept[j].score
		}
		return kept[i].score > kept[j].score
	})

	if len(kept) > topN {
		kept = kept[:topN]
	}

	quotes := make([]ScoredQuote, 0, len(kept))
	for _, s := range kept {
		quotes = append(quotes, ScoredQuote{Quote: FormatQuote(s.text), Score: s.score})
	}
	return quotes
}

// TopQuotes runs the full ranking pipeline on raw transcript or article
// text: normalize, segment, rank.
func TopQuotes(scorer Scorer, text string, topN int, polarity Polarity) []ScoredQuote {
	return RankQuotes(scorer, Segment(Normalize(text)), topN, polarity)
}

// FormatQuote prepares a quote for display. Text over 200 characters is
// truncated to 197 plus an ellipsis, doubled spaces are collapsed, and the
// result is wrapped in literal double quotes. Truncation lands on a rune
// boundary so a multi-byte rune at the cut is dropped, not mangled.
func FormatQuote(text string) string {
	if len(text) > maxQuoteLen {
		cut := maxQuoteLen - 3
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	text = strings.TrimSpace(strings.ReplaceAll(text, "  ", " "))
	return `"` + text + `"`
}
