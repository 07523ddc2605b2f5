package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/ngss-tools/ngss-mcp/internal/cache"
	"github.com/ngss-tools/ngss-mcp/internal/index"
	"github.com/ngss-tools/ngss-mcp/internal/validate"
	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// SearchOptions narrows and paginates a keyword search.
type SearchOptions struct {
	Category string // optional; resolved against the closed set when present
	Offset   int
	Limit    int
}

// Search ranks records by keyword overlap with the query: each record's
// score is the fraction of query tokens found in its indexed text. This is
// deliberately plain term overlap, not TF-IDF or BM25.
//
// A query that tokenizes to nothing returns an empty result, not an error.
// The cache stores the full filtered-and-sorted list keyed by (tokens,
// category); offset and limit slice that one list, which makes pagination
// at different offsets consistent with a single sorted pass.
func (e *Engine) Search(query string, opts SearchOptions) ([]types.SearchHit, error) {
	defer e.observe("search", time.Now())

	var cat types.Category
	if opts.Category != "" {
		var err error
		if cat, err = validate.Category(opts.Category); err != nil {
			return nil, err
		}
	}
	if err := validate.Limit(opts.Limit); err != nil {
		return nil, err
	}
	if err := validate.Offset(opts.Offset); err != nil {
		return nil, err
	}

	// An empty query tokenizes to nothing: no matches, no error.
	if strings.TrimSpace(query) == "" {
		return []types.SearchHit{}, nil
	}
	sanitized, err := validate.Query(query)
	if err != nil {
		return nil, err
	}

	tokens := index.Tokenize(sanitized)
	if len(tokens) == 0 {
		return []types.SearchHit{}, nil
	}

	key := cache.Key("search", map[string]string{
		"tokens":   strings.Join(tokens, " "),
		"category": string(cat),
	})

	ranked, ok := e.searchCache.Get(key)
	if !ok {
		v, _, _ := e.flight.Do(key, func() (any, error) {
			hits := e.rank(tokens, cat)
			e.searchCache.Set(key, hits)
			return hits, nil
		})
		ranked = v.([]types.SearchHit)
	}

	return paginate(ranked, opts.Offset, opts.Limit), nil
}

// rank computes hit counts over the inverted index and sorts the scored
// records. Duplicate query tokens count on both sides of the fraction, so
// scores stay within [0,1].
func (e *Engine) rank(tokens []string, cat types.Category) []types.SearchHit {
	counts := make(map[string]int)
	for _, token := range tokens {
		for code := range e.idx.CodesForTerm(token) {
			counts[code]++
		}
	}

	hits := make([]types.SearchHit, 0, len(counts))
	for code, count := range counts {
		rec := e.idx.Lookup(code)
		if cat != "" && rec.Category != cat {
			continue
		}
		hits = append(hits, types.SearchHit{
			Record: rec,
			Score:  float64(count) / float64(len(tokens)),
		})
	}

	// Equal scores keep corpus-load order so pagination is deterministic.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return e.idx.Position(hits[i].Record.Code) < e.idx.Position(hits[j].Record.Code)
	})
	return hits
}

// paginate applies offset/limit as a positional slice.
func paginate(hits []types.SearchHit, offset, limit int) []types.SearchHit {
	if offset >= len(hits) {
		return []types.SearchHit{}
	}
	end := offset + limit
	if end > len(hits) {
		end = len(hits)
	}
	return hits[offset:end]
}
