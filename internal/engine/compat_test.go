package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

func TestRelatedFullCorpus(t *testing.T) {
	e := newTestEngine(t)

	related, err := e.Related("MS-PS1-1", nil)
	require.NoError(t, err)
	require.Len(t, related, 7)

	// The anchor never appears among the candidates.
	for _, r := range related {
		assert.NotEqual(t, "MS-PS1-1", r.Record.Code)
	}

	// Scores are non-increasing.
	for i := 1; i < len(related); i++ {
		assert.GreaterOrEqual(t, related[i-1].Score, related[i].Score)
	}

	// MS-PS1-2 shares every dimension with MS-PS1-1: the maximum score.
	assert.Equal(t, "MS-PS1-2", related[0].Record.Code)
	assert.Equal(t, MaxCompatibilityScore, related[0].Score)
	assert.Equal(t, types.ScoreBreakdown{Category: 3, SEP: 2, DCI: 2, CCC: 1}, related[0].Breakdown)
}

func TestRelatedBreakdownWeights(t *testing.T) {
	e := newTestEngine(t)

	related, err := e.Related("MS-PS1-1", []string{"MS-PS3-4", "MS-ESS2-1", "MS-LS2-1"})
	require.NoError(t, err)
	require.Len(t, related, 3)

	byCode := map[string]types.RelatedStandard{}
	for _, r := range related {
		byCode[r.Record.Code] = r
	}

	// Same category only: +3.
	assert.Equal(t, types.ScoreBreakdown{Category: 3}, byCode["MS-PS3-4"].Breakdown)
	assert.Equal(t, 3, byCode["MS-PS3-4"].Score)

	// Different category, same practice: +2.
	assert.Equal(t, types.ScoreBreakdown{SEP: 2}, byCode["MS-ESS2-1"].Breakdown)

	// Nothing shared: zero, still listed.
	assert.Equal(t, 0, byCode["MS-LS2-1"].Score)
}

func TestRelatedTieBreakByCode(t *testing.T) {
	e := newTestEngine(t)

	// Both ESS records score identically against an ETS anchor (zero), so
	// ordering falls back to ascending code.
	related, err := e.Related("MS-ETS1-1", []string{"MS-ESS2-1", "5-ESS2-1"})
	require.NoError(t, err)
	require.Len(t, related, 2)
	assert.Equal(t, related[0].Score, related[1].Score)
	assert.Equal(t, "5-ESS2-1", related[0].Record.Code)
	assert.Equal(t, "MS-ESS2-1", related[1].Record.Code)
}

func TestRelatedPoolExcludesAnchor(t *testing.T) {
	e := newTestEngine(t)

	related, err := e.Related("MS-PS1-1", []string{"MS-PS1-1", "MS-PS1-2"})
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "MS-PS1-2", related[0].Record.Code)
}

func TestRelatedSkipsUnknownPoolCodes(t *testing.T) {
	e := newTestEngine(t)

	related, err := e.Related("MS-PS1-1", []string{"MS-PS1-2", "HS-PS9-9", "garbage"})
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "MS-PS1-2", related[0].Record.Code)
}

func TestRelatedAnchorErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Related("bogus", nil)
	assert.ErrorIs(t, err, types.ErrBadFormat)

	// A well-formed anchor with no record is a hard failure: no candidate
	// pool is computable without it.
	_, err = e.Related("HS-PS1-1", nil)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
