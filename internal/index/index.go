package index

import (
	"fmt"
	"strings"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// Index holds the three read-only structures built from the corpus at
// startup. After Build returns, an Index is never mutated, so it is safe to
// share across concurrent callers without synchronization.
type Index struct {
	records  []*types.Record
	primary  map[string]*types.Record
	category map[types.Category][]*types.Record
	inverted map[string]map[string]struct{}
	position map[string]int
}

// Build transforms a loaded corpus into the primary, category, and inverted
// text indexes. It is invoked exactly once at startup. Any malformed record
// or duplicate code aborts the build: the engine never serves partial data.
func Build(corpus []*types.Record) (*Index, error) {
	if len(corpus) == 0 {
		return nil, types.ErrEmptyCorpus
	}

	idx := &Index{
		records:  make([]*types.Record, 0, len(corpus)),
		primary:  make(map[string]*types.Record, len(corpus)),
		category: make(map[types.Category][]*types.Record),
		inverted: make(map[string]map[string]struct{}),
		position: make(map[string]int, len(corpus)),
	}

	for i, rec := range corpus {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("building index: record %d: %w", i, err)
		}
		if _, exists := idx.primary[rec.Code]; exists {
			return nil, fmt.Errorf("building index: %w: %s", types.ErrDuplicateCode, rec.Code)
		}

		idx.records = append(idx.records, rec)
		idx.primary[rec.Code] = rec
		idx.category[rec.Category] = append(idx.category[rec.Category], rec)
		idx.position[rec.Code] = i

		idx.indexText(rec)
	}

	return idx, nil
}

// indexText tokenizes the record's searchable text (topic, description,
// keywords) and registers the record code under each term.
func (idx *Index) indexText(rec *types.Record) {
	text := rec.Topic + " " + rec.Description
	if len(rec.Keywords) > 0 {
		text += " " + strings.Join(rec.Keywords, " ")
	}
	for _, term := range Tokenize(text) {
		codes, ok := idx.inverted[term]
		if !ok {
			codes = make(map[string]struct{})
			idx.inverted[term] = codes
		}
		codes[rec.Code] = struct{}{}
	}
}

// Lookup returns the record for a code, or nil when no record exists.
func (idx *Index) Lookup(code string) *types.Record {
	return idx.primary[code]
}

// ByCategory returns the records in a category, in corpus-load order. The
// returned slice is shared and must not be modified.
func (idx *Index) ByCategory(cat types.Category) []*types.Record {
	return idx.category[cat]
}

// CodesForTerm returns the set of record codes whose indexed text contains
// the normalized term. The returned map is shared and must not be modified.
func (idx *Index) CodesForTerm(term string) map[string]struct{} {
	return idx.inverted[term]
}

// Records returns every record in corpus-load order. The returned slice is
// shared and must not be modified.
func (idx *Index) Records() []*types.Record {
	return idx.records
}

// Position returns the corpus-load position of a code. It is the stable
// tie-break key for equal search scores.
func (idx *Index) Position(code string) int {
	return idx.position[code]
}

// Len returns the number of indexed records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// TermCount returns the number of distinct terms in the inverted index.
func (idx *Index) TermCount() int {
	return len(idx.inverted)
}
