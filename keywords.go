package pullquote

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords are high-frequency English words excluded from keyword ranking
// and summary scoring.
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a about above after again all am an and any are as at be because " +
			"been before being below between both but by can did do does doing " +
			"down during each few for from further had has have having he her " +
			"here hers him his how i if in into is it its just me more most my " +
			"no nor not now of off on once only or other our out over own same " +
			"she should so some such than that the their them then there these " +
			"they this those through to too under until up very was we were " +
			"what when where which while who whom why will with you your") {
		stopwords[w] = struct{}{}
	}
}

// Keywords returns up to n keywords from the text, ranked by term frequency.
// Stopwords and tokens shorter than three characters are ignored. Ties are
// broken alphabetically so results are deterministic.
func Keywords(text string, n int) []string {
	freq := termFrequencies(text)
	if len(freq) == 0 || n <= 0 {
		return nil
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// Summarize produces a short extractive summary: the n sentences whose
// terms occur most frequently in the document, emitted in document order.
func Summarize(text string, n int) string {
	sentences := splitSentences(text)
	if len(sentences) == 0 || n <= 0 {
		return ""
	}

	freq := termFrequencies(text)

	type ranked struct {
		position int
		score    float64
	}
	scores := make([]ranked, 0, len(sentences))
	for i, sentence := range sentences {
		tokens := tokenize(sentence)
		if len(tokens) == 0 {
			continue
		}
		var sum int
		for _, tok := range tokens {
			sum += freq[tok]
		}
		scores = append(scores, ranked{position: i, score: float64(sum) / float64(len(tokens))})
	}

	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if len(scores) > n {
		scores = scores[:n]
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].position < scores[j].position })

	parts := make([]string, 0, len(scores))
	for _, r := range scores {
		parts = append(parts, sentences[r.position])
	}
	return strings.Join(parts, " ")
}

// termFrequencies counts content-bearing tokens in the text.
func termFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range tokenize(text) {
		freq[tok]++
	}
	return freq
}

// tokenize lowercases the text and returns its content-bearing tokens,
// dropping stopwords and tokens shorter than three characters.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
