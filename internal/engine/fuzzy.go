package engine

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/ngss-tools/ngss-mcp/internal/cache"
	"github.com/ngss-tools/ngss-mcp/internal/validate"
	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// ConfidenceThreshold is the fixed cutoff below which fuzzy matches are
// discarded. Character-level edit distance penalizes word reordering and
// large length gaps, so reordered or heavily shortened phrasings of an
// alias can fall below it.
const ConfidenceThreshold = 0.7

// Match compares the query against every record alias by Levenshtein edit
// distance and returns matches at or above ConfidenceThreshold, best
// first. Results are cached by normalized query, and concurrent identical
// computations are collapsed into one.
func (e *Engine) Match(query string) ([]types.FuzzyMatch, error) {
	defer e.observe("match", time.Now())

	sanitized, err := validate.Query(query)
	if err != nil {
		return nil, err
	}

	normalized := normalizeText(sanitized)
	key := cache.Key("match", map[string]string{"query": string(normalized)})

	if hit, ok := e.fuzzyCache.Get(key); ok {
		return hit, nil
	}

	v, err, _ := e.flight.Do(key, func() (any, error) {
		matches := e.matchAliases(normalized)
		e.fuzzyCache.Set(key, matches)
		return matches, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.FuzzyMatch), nil
}

// matchAliases runs the full corpus scan for a normalized query. Cost is
// O(aliases x length^2), which is why results are cached.
func (e *Engine) matchAliases(query []rune) []types.FuzzyMatch {
	matches := make([]types.FuzzyMatch, 0)
	for _, entry := range e.aliases {
		dist := levenshtein(query, entry.normalized)
		conf := confidence(dist, len(query), len(entry.normalized))
		if conf < ConfidenceThreshold {
			continue
		}
		matches = append(matches, types.FuzzyMatch{
			Record:       entry.record,
			Confidence:   conf,
			MatchedAlias: entry.alias,
			Distance:     dist,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Record.Code < matches[j].Record.Code
	})
	return matches
}

// confidence converts an edit distance into a [0,1] similarity:
// 1 - distance/max(lenQuery, lenAlias). Two empty strings score 0.
func confidence(dist, lenQuery, lenAlias int) float64 {
	longest := lenQuery
	if lenAlias > longest {
		longest = lenAlias
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(dist)/float64(longest)
}

// normalizeText prepares a query or alias for comparison: lower-case,
// punctuation stripped, whitespace runs collapsed, trimmed. Queries and
// aliases pass through the identical transform so distances are symmetric.
func normalizeText(s string) []rune {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return []rune(strings.Join(strings.Fields(b.String()), " "))
}

// levenshtein computes the edit distance between two rune slices with a
// single-row dynamic program.
func levenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}
	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}
