// Package govader implements pullquote.Scorer on top of the VADER sentiment
// lexicon. VADER is tuned for short, informal text, which matches the
// conversational register of transcripts and pull quotes.
package govader

import (
	"github.com/fwojciec/pullquote"
	"github.com/jonreiter/govader"
)

// Ensure Scorer implements pullquote.Scorer at compile time.
var _ pullquote.Scorer = (*Scorer)(nil)

// Scorer assigns lexicon-based compound polarity scores. Construct once and
// reuse: building the analyzer loads the lexicon.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer creates a Scorer with a freshly loaded lexicon.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns the normalized net polarity of the text in [-1, 1].
func (s *Scorer) Compound(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}
