package ats

import (
	"strings"
	"unicode"
)

// MaxKeywords caps the number of terms kept per extraction
const MaxKeywords = 50

// minKeywordLength drops short noise tokens ("a", "of", "js" style fragments)
const minKeywordLength = 3

// stopWords are filtered out of every extraction. Deliberately a small fixed
// list of articles, conjunctions, auxiliaries and prepositions; a placeholder
// for future NLP-based extraction.
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true,
	"on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"must": true, "can": true, "a": true, "an": true,
}

// ExtractKeywords turns free text into an ordered, deduplicated list of
// significant terms. Lowercases, strips punctuation to spaces, splits on
// whitespace, drops stop words and tokens shorter than three characters,
// keeps the first occurrence of each distinct token and caps the result at
// MaxKeywords. Pure function; empty or whitespace-only input yields an empty
// slice.
func ExtractKeywords(text string) []string {
	var normalized strings.Builder
	normalized.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			normalized.WriteRune(r)
		} else {
			normalized.WriteRune(' ')
		}
	}

	seen := make(map[string]bool)
	keywords := make([]string, 0, MaxKeywords)
	for _, token := range strings.Fields(normalized.String()) {
		if len([]rune(token)) < minKeywordLength || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
		if len(keywords) == MaxKeywords {
			break
		}
	}

	return keywords
}
