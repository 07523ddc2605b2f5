package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"energy", "", 6},
		{"", "energy", 6},
		{"energy", "energy", 0},
		{"energy", "enrgy", 1},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein([]rune(tt.a), []rune(tt.b)), "%q vs %q", tt.a, tt.b)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"What do we know about energy?", "what do we know about energy"},
		{"  Thermal   Energy!! ", "thermal energy"},
		{"self-driving cars", "self driving cars"},
		{"", ""},
		{"?!.,", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(normalizeText(tt.in)), tt.in)
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 1.0, confidence(0, 6, 6))
	assert.Equal(t, 0.5, confidence(3, 6, 5))
	// Both strings empty scores zero, by definition.
	assert.Equal(t, 0.0, confidence(0, 0, 0))
}

func TestMatchExactAlias(t *testing.T) {
	e := newTestEngine(t)

	matches, err := e.Match("what do we know about energy?")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	assert.Equal(t, "MS-PS3-4", matches[0].Record.Code)
	assert.Equal(t, 1.0, matches[0].Confidence)
	assert.Equal(t, "What do we know about energy?", matches[0].MatchedAlias)
}

func TestMatchCaseAndWhitespaceInvariant(t *testing.T) {
	e := newTestEngine(t)

	base, err := e.Match("what do we know about energy?")
	require.NoError(t, err)
	shouted, err := e.Match("  WHAT   DO WE KNOW ABOUT ENERGY  ")
	require.NoError(t, err)

	require.NotEmpty(t, base)
	require.Len(t, shouted, len(base))
	for i := range base {
		assert.Equal(t, base[i].Record.Code, shouted[i].Record.Code)
		assert.Equal(t, base[i].Confidence, shouted[i].Confidence)
	}
}

func TestMatchTypos(t *testing.T) {
	e := newTestEngine(t)

	matches, err := e.Match("What do we knw about enrgy?")
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	assert.Equal(t, "MS-PS3-4", matches[0].Record.Code)
	assert.GreaterOrEqual(t, matches[0].Confidence, 0.80)
}

func TestMatchNeverBelowThreshold(t *testing.T) {
	e := newTestEngine(t)

	queries := []string{
		"what do we know about energy?",
		"thermal energy and particls",
		"how are atoms put together",
		"completely unrelated gibberish query",
	}
	for _, q := range queries {
		matches, err := e.Match(q)
		require.NoError(t, err, q)
		for _, m := range matches {
			assert.GreaterOrEqual(t, m.Confidence, ConfidenceThreshold, q)
		}
	}
}

func TestMatchOrderedBestFirst(t *testing.T) {
	e := newTestEngine(t)

	matches, err := e.Match("thermal energy and particles")
	require.NoError(t, err)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Confidence, matches[i].Confidence)
	}
}

func TestMatchNoResultForDistantQuery(t *testing.T) {
	e := newTestEngine(t)

	matches, err := e.Match("zzzzzz qqqqqq xxxxxx wwwwww")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchRejectsInvalidQuery(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Match("")
	assert.ErrorIs(t, err, types.ErrInvalidQuery)

	_, err = e.Match("<script>alert(1)</script>")
	assert.ErrorIs(t, err, types.ErrInvalidQuery)
}

func TestMatchUsesCache(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Match("what do we know about energy?")
	require.NoError(t, err)
	// Same query normalizes identically, so the second call is a hit.
	_, err = e.Match("What Do We Know About Energy?")
	require.NoError(t, err)

	stats := e.Metrics().FuzzyCache
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}
