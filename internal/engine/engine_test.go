package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngss-tools/ngss-mcp/internal/index"
	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

func comp(code, name string) types.Component {
	return types.Component{Code: code, Name: name, Description: name}
}

// testCorpus is a small fixture spanning all four categories, with aliases
// and component codes arranged so every scoring path has a known answer.
func testCorpus() []*types.Record {
	return []*types.Record{
		{
			Code:        "MS-PS1-1",
			Category:    types.CategoryPhysicalScience,
			Topic:       "Matter and Its Interactions",
			Description: "Develop models to describe the atomic composition of simple molecules and extended structures.",
			Components: types.Components{
				SEP: comp("SEP-2", "Developing and Using Models"),
				DCI: comp("PS1.A", "Structure and Properties of Matter"),
				CCC: comp("CCC-1", "Patterns"),
			},
			Aliases:  []string{"how are atoms put together?", "structure of molecules"},
			Keywords: []string{"atoms", "molecules", "models"},
			Scope:    types.Scope{Clarification: "Emphasis is on developing models of molecules."},
		},
		{
			Code:        "MS-PS1-2",
			Category:    types.CategoryPhysicalScience,
			Topic:       "Matter and Its Interactions",
			Description: "Analyze and interpret data on the properties of substances before and after the substances interact.",
			Components: types.Components{
				SEP: comp("SEP-2", "Developing and Using Models"),
				DCI: comp("PS1.A", "Structure and Properties of Matter"),
				CCC: comp("CCC-1", "Patterns"),
			},
			Aliases:  []string{"how do substances change in a reaction?"},
			Keywords: []string{"reactions", "properties", "substances"},
		},
		{
			Code:        "MS-PS3-4",
			Category:    types.CategoryPhysicalScience,
			Topic:       "Energy",
			Description: "Plan an investigation to determine the relationships among the energy transferred and the thermal energy of particles.",
			Components: types.Components{
				SEP: comp("SEP-3", "Planning and Carrying Out Investigations"),
				DCI: comp("PS3.A", "Definitions of Energy"),
				CCC: comp("CCC-5", "Energy and Matter"),
			},
			Aliases:  []string{"What do we know about energy?", "thermal energy and particles"},
			Keywords: []string{"energy", "thermal", "temperature"},
		},
		{
			Code:        "MS-LS2-1",
			Category:    types.CategoryLifeScience,
			Topic:       "Ecosystems: Interactions, Energy, and Dynamics",
			Description: "Analyze and interpret data to provide evidence for the effects of resource availability on organisms in an ecosystem.",
			Components: types.Components{
				SEP: comp("SEP-4", "Analyzing and Interpreting Data"),
				DCI: comp("LS2.A", "Interdependent Relationships in Ecosystems"),
				CCC: comp("CCC-2", "Cause and Effect"),
			},
			Aliases:  []string{"how do resources shape ecosystems?"},
			Keywords: []string{"ecosystems", "resources", "organisms"},
		},
		{
			Code:        "HS-LS2-2",
			Category:    types.CategoryLifeScience,
			Topic:       "Ecosystems: Interactions, Energy, and Dynamics",
			Description: "Use mathematical representations to support explanations of factors that affect biodiversity and populations in ecosystems.",
			Components: types.Components{
				SEP: comp("SEP-5", "Using Mathematics and Computational Thinking"),
				DCI: comp("LS2.A", "Interdependent Relationships in Ecosystems"),
				CCC: comp("CCC-3", "Scale, Proportion, and Quantity"),
			},
			Keywords: []string{"biodiversity", "populations", "ecosystems"},
		},
		{
			Code:        "MS-ESS2-1",
			Category:    types.CategoryEarthSpace,
			Topic:       "Earth's Systems",
			Description: "Develop a model to describe the cycling of Earth's materials and the flow of energy that drives this process.",
			Components: types.Components{
				SEP: comp("SEP-2", "Developing and Using Models"),
				DCI: comp("ESS2.A", "Earth Materials and Systems"),
				CCC: comp("CCC-5", "Energy and Matter"),
			},
			Aliases:  []string{"how do earth's materials cycle?"},
			Keywords: []string{"rock", "cycle", "energy"},
		},
		{
			Code:        "5-ESS2-1",
			Category:    types.CategoryEarthSpace,
			Topic:       "Earth's Systems",
			Description: "Develop a model using an example to describe ways the geosphere, biosphere, hydrosphere, and atmosphere interact.",
			Components: types.Components{
				SEP: comp("SEP-2", "Developing and Using Models"),
				DCI: comp("ESS2.A", "Earth Materials and Systems"),
				CCC: comp("CCC-4", "Systems and System Models"),
			},
			Keywords: []string{"geosphere", "biosphere", "hydrosphere"},
		},
		{
			Code:        "MS-ETS1-1",
			Category:    types.CategoryEngineering,
			Topic:       "Engineering Design",
			Description: "Define the criteria and constraints of a design problem with sufficient precision to ensure a successful solution.",
			Components: types.Components{
				SEP: comp("SEP-1", "Asking Questions and Defining Problems"),
				DCI: comp("ETS1.A", "Defining and Delimiting Engineering Problems"),
				CCC: comp("CCC-6", "Structure and Function"),
			},
			Keywords: []string{"design", "criteria", "constraints"},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	idx, err := index.Build(testCorpus())
	require.NoError(t, err)
	return New(idx, Options{CacheCapacity: 16, CacheTTL: time.Minute})
}

func TestLookup(t *testing.T) {
	e := newTestEngine(t)

	t.Run("every corpus code resolves to itself", func(t *testing.T) {
		for _, rec := range testCorpus() {
			got, err := e.Lookup(rec.Code)
			require.NoError(t, err, rec.Code)
			assert.Equal(t, rec.Code, got.Code)
		}
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := e.Lookup("not-a-code")
		assert.ErrorIs(t, err, types.ErrBadFormat)
	})

	t.Run("well-formed but absent", func(t *testing.T) {
		_, err := e.Lookup("HS-PS1-1")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestCategories(t *testing.T) {
	e := newTestEngine(t)

	counts := e.Categories()
	require.Len(t, counts, 4)
	byCat := map[types.Category]int{}
	for _, c := range counts {
		byCat[c.Category] = c.Records
	}
	assert.Equal(t, 3, byCat[types.CategoryPhysicalScience])
	assert.Equal(t, 2, byCat[types.CategoryLifeScience])
	assert.Equal(t, 2, byCat[types.CategoryEarthSpace])
	assert.Equal(t, 1, byCat[types.CategoryEngineering])
}

func TestMetricsSnapshot(t *testing.T) {
	e := newTestEngine(t)

	_, _ = e.Lookup("MS-PS1-1")
	_, _ = e.Lookup("MS-PS1-2")
	_, _ = e.Search("energy", SearchOptions{Limit: 10})

	snap := e.Metrics()
	assert.Equal(t, 8, snap.Records)
	assert.Equal(t, int64(2), snap.Queries["lookup"].Count)
	assert.Equal(t, int64(1), snap.Queries["search"].Count)
	// First search is always a cache miss.
	assert.Equal(t, uint64(1), snap.SearchCache.Misses)
}

func TestReferentialInterchangeability(t *testing.T) {
	e := newTestEngine(t)

	first, err := e.Search("energy", SearchOptions{Limit: 10})
	require.NoError(t, err)
	second, err := e.Search("energy", SearchOptions{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	e.ClearCaches()
	third, err := e.Search("energy", SearchOptions{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, first, third)
}
