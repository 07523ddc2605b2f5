package index

import (
	"strings"
	"unicode"
)

// stopWords are dropped during tokenization. The list covers common English
// function words that carry no retrieval signal.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "can": {}, "do": {}, "for": {}, "from": {},
	"had": {}, "has": {}, "have": {}, "how": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "not": {}, "of": {}, "on": {}, "or": {},
	"so": {}, "that": {}, "the": {}, "their": {}, "they": {}, "this": {},
	"to": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "who": {}, "will": {}, "with": {},
}

// Tokenize breaks text into normalized search terms: lower-cased, split on
// non-alphanumeric runs, with stop-words and tokens of two characters or
// fewer removed. The same rule is used for indexing and for queries so the
// two sides always agree.
//
// The rule is deliberately simple: no stemming, no weighting. Search
// scoring depends on the exact token set, so changing this function changes
// ranking semantics.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
