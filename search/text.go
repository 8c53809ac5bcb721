package search

import (
	"regexp"
	"strings"
)

// Stop words to filter out during tokenization
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// schemeCodePattern matches exact-identifier-shaped tokens such as PMSS-2024
// or NSP-PRE-2025: uppercase-led alphanumeric segments joined by hyphens.
var schemeCodePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:-[A-Za-z0-9]+)+$`)

// tokenizeAndFilter splits text into words, lowercases, trims punctuation, and removes stop words
func tokenizeAndFilter(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		// Lowercase and trim punctuation
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		// Skip stop words and empty strings
		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

// extractSchemeCodes returns the scheme-code-shaped tokens found in text,
// uppercased for identity comparison.
func extractSchemeCodes(text string) []string {
	var codes []string
	for _, word := range strings.Fields(text) {
		trimmed := strings.Trim(word, ".,!?;:'\"()[]{}")
		if schemeCodePattern.MatchString(trimmed) {
			codes = append(codes, strings.ToUpper(trimmed))
		}
	}
	return codes
}
