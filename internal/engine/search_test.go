package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

func TestSearchScoresByTokenOverlap(t *testing.T) {
	e := newTestEngine(t)

	hits, err := e.Search("thermal energy", SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	// MS-PS3-4 matches both tokens, the others at most one.
	assert.Equal(t, "MS-PS3-4", hits[0].Record.Code)
	assert.Equal(t, 1.0, hits[0].Score)
	for _, h := range hits[1:] {
		assert.Less(t, h.Score, 1.0)
		assert.Greater(t, h.Score, 0.0)
	}
}

func TestSearchEmptyQueryReturnsEmpty(t *testing.T) {
	e := newTestEngine(t)

	for _, q := range []string{"", "   ", "of the and", "a an it"} {
		hits, err := e.Search(q, SearchOptions{Limit: 10})
		require.NoError(t, err, q)
		assert.Empty(t, hits, q)
	}
}

func TestSearchUnknownTokenReturnsEmpty(t *testing.T) {
	e := newTestEngine(t)

	hits, err := e.Search("xyz-nonexistent-token", SearchOptions{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchCategoryFilter(t *testing.T) {
	e := newTestEngine(t)

	all, err := e.Search("energy", SearchOptions{Limit: 50})
	require.NoError(t, err)

	phys, err := e.Search("energy", SearchOptions{Category: "Physical Science", Limit: 50})
	require.NoError(t, err)
	require.NotEmpty(t, phys)
	assert.Less(t, len(phys), len(all))
	for _, h := range phys {
		assert.Equal(t, types.CategoryPhysicalScience, h.Record.Category)
	}

	// Category aliases resolve the same way as canonical names.
	aliased, err := e.Search("energy", SearchOptions{Category: "physical science", Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, phys, aliased)
}

func TestSearchUnknownCategory(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Search("energy", SearchOptions{Category: "Astrology", Limit: 10})
	assert.ErrorIs(t, err, types.ErrUnknownCategory)
}

func TestSearchRangeValidation(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Search("energy", SearchOptions{Limit: 0})
	assert.ErrorIs(t, err, types.ErrOutOfRange)

	_, err = e.Search("energy", SearchOptions{Limit: 999})
	assert.ErrorIs(t, err, types.ErrOutOfRange)

	_, err = e.Search("energy", SearchOptions{Limit: 10, Offset: -1})
	assert.ErrorIs(t, err, types.ErrOutOfRange)
}

func TestSearchPaginationStable(t *testing.T) {
	e := newTestEngine(t)

	full, err := e.Search("energy", SearchOptions{Offset: 0, Limit: 20})
	require.NoError(t, err)
	require.Greater(t, len(full), 2)

	// A slice of the full result equals the same range queried directly.
	tail, err := e.Search("energy", SearchOptions{Offset: 2, Limit: 18})
	require.NoError(t, err)
	assert.Equal(t, full[2:], tail)

	// Adjacent pages enumerate with no overlap or gap.
	page1, err := e.Search("energy", SearchOptions{Offset: 0, Limit: 2})
	require.NoError(t, err)
	page2, err := e.Search("energy", SearchOptions{Offset: 2, Limit: 2})
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, h := range append(page1, page2...) {
		assert.False(t, seen[h.Record.Code], h.Record.Code)
		seen[h.Record.Code] = true
	}
	assert.Equal(t, full[:min(4, len(full))], append(page1, page2...))
}

func TestSearchOffsetPastEnd(t *testing.T) {
	e := newTestEngine(t)

	hits, err := e.Search("energy", SearchOptions{Offset: 10000, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchTieBreakIsCorpusOrder(t *testing.T) {
	e := newTestEngine(t)

	// "ecosystems" appears in both life science records with equal weight.
	hits, err := e.Search("ecosystems", SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "MS-LS2-1", hits[0].Record.Code)
	assert.Equal(t, "HS-LS2-2", hits[1].Record.Code)
}

func TestSearchCacheKeyIgnoresPagination(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Search("energy", SearchOptions{Offset: 0, Limit: 5})
	require.NoError(t, err)
	_, err = e.Search("energy", SearchOptions{Offset: 5, Limit: 5})
	require.NoError(t, err)

	// Second call re-slices the cached ranked list.
	stats := e.Metrics().SearchCache
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestSearchRejectsBlockedQuery(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Search("{{template}}", SearchOptions{Limit: 10})
	assert.ErrorIs(t, err, types.ErrInvalidQuery)
}
