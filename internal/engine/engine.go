package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/ngss-tools/ngss-mcp/internal/cache"
	"github.com/ngss-tools/ngss-mcp/internal/index"
	"github.com/ngss-tools/ngss-mcp/internal/metrics"
	"github.com/ngss-tools/ngss-mcp/internal/validate"
	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	CacheCapacity int
	CacheTTL      time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Registry
}

// aliasEntry is a pre-normalized alias ready for edit-distance comparison.
// Normalizing once at construction keeps the per-query cost to the distance
// computation itself.
type aliasEntry struct {
	record     *types.Record
	alias      string // original spelling, reported in results
	normalized []rune
}

// Engine answers structured and fuzzy queries over the indexed corpus. One
// Engine is constructed at process start and injected into every handler;
// there is no package-level instance.
//
// The indexes are read-only, so Engine methods are safe for concurrent
// use. The caches are the only mutable shared state and guard themselves.
type Engine struct {
	idx     *index.Index
	aliases []aliasEntry
	log     *slog.Logger
	metrics *metrics.Registry

	fuzzyCache  *cache.Cache[[]types.FuzzyMatch]
	searchCache *cache.Cache[[]types.SearchHit]
	flight      singleflight.Group
}

// New creates an Engine over a built index.
func New(idx *index.Index, opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.New(prometheus.NewRegistry())
	}

	e := &Engine{
		idx:         idx,
		log:         log.With("component", "engine"),
		metrics:     reg,
		fuzzyCache:  cache.New[[]types.FuzzyMatch](opts.CacheCapacity, opts.CacheTTL),
		searchCache: cache.New[[]types.SearchHit](opts.CacheCapacity, opts.CacheTTL),
	}

	for _, rec := range idx.Records() {
		for _, alias := range rec.Aliases {
			e.aliases = append(e.aliases, aliasEntry{
				record:     rec,
				alias:      alias,
				normalized: normalizeText(alias),
			})
		}
	}

	reg.RegisterCache("fuzzy", func() (uint64, uint64, uint64, int) {
		s := e.fuzzyCache.Stats()
		return s.Hits, s.Misses, s.Evictions, s.Size
	})
	reg.RegisterCache("search", func() (uint64, uint64, uint64, int) {
		s := e.searchCache.Stats()
		return s.Hits, s.Misses, s.Evictions, s.Size
	})

	log.Info("engine ready",
		"records", idx.Len(),
		"aliases", len(e.aliases),
		"terms", idx.TermCount())
	return e
}

// Lookup resolves a performance expectation code to its record. A
// well-formed code with no record returns ErrNotFound; callers on the
// plain lookup path report that as a no-match result rather than a
// failure.
func (e *Engine) Lookup(code string) (*types.Record, error) {
	defer e.observe("lookup", time.Now())

	if err := validate.Code(code); err != nil {
		return nil, err
	}
	rec := e.idx.Lookup(code)
	if rec == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrNotFound, code)
	}
	return rec, nil
}

// Categories returns the closed category set with per-category record
// counts, in canonical order.
func (e *Engine) Categories() []CategoryCount {
	out := make([]CategoryCount, 0, len(types.Categories))
	for _, cat := range types.Categories {
		out = append(out, CategoryCount{
			Category: cat,
			Segment:  cat.Segment(),
			Records:  len(e.idx.ByCategory(cat)),
		})
	}
	return out
}

// CategoryCount pairs a category with the number of records it holds.
type CategoryCount struct {
	Category types.Category `json:"category"`
	Segment  string         `json:"segment"`
	Records  int            `json:"records"`
}

// Snapshot is the combined view of process-lifetime query and cache
// counters.
type Snapshot struct {
	Records     int                           `json:"records"`
	Queries     map[string]metrics.OpSnapshot `json:"queries"`
	FuzzyCache  cache.Metrics                 `json:"fuzzy_cache"`
	SearchCache cache.Metrics                 `json:"search_cache"`
}

// Metrics returns the current metrics snapshot. The engine never resets
// the underlying counters.
func (e *Engine) Metrics() Snapshot {
	return Snapshot{
		Records:     e.idx.Len(),
		Queries:     e.metrics.Snapshot(),
		FuzzyCache:  e.fuzzyCache.Stats(),
		SearchCache: e.searchCache.Stats(),
	}
}

// ClearCaches drops all cached query results. Counters survive.
func (e *Engine) ClearCaches() {
	e.fuzzyCache.Clear()
	e.searchCache.Clear()
}

func (e *Engine) observe(op string, start time.Time) {
	e.metrics.Observe(op, time.Since(start))
}
