// Package engine implements the in-memory retrieval engine over the
// indexed corpus: primary-key lookup, edit-distance fuzzy matching,
// keyword-overlap search, and multi-dimension compatibility scoring.
//
// # Construction
//
// One Engine is built at process start and injected into every handler:
//
//	idx, err := index.Build(corpus)
//	eng := engine.New(idx, engine.Options{
//	    CacheCapacity: 256,
//	    CacheTTL:      5 * time.Minute,
//	})
//
// # Operations
//
//	rec, err := eng.Lookup("MS-PS1-4")
//	matches, err := eng.Match("what do we know about energy?")
//	hits, err := eng.Search("thermal energy", engine.SearchOptions{Limit: 10})
//	related, err := eng.Related("MS-PS1-4", nil)
//
// Every operation validates its inputs before touching an index and
// records its duration into process-wide metrics.
//
// # Determinism
//
// The corpus never changes after load, so two calls with identical
// operation and parameters are interchangeable whether served from cache
// or recomputed. Fuzzy matching and search wrap their multi-pass
// computation in a TTL cache keyed by normalized parameters; identical
// concurrent computations collapse through singleflight.
//
// # Fixed constants
//
// The 0.7 fuzzy-match confidence threshold and the unweighted term-overlap
// search formula are fixed, documented constants. They have known
// precision/recall gaps with reordered or drastically shortened queries;
// replacing them with a different ranking model would be a new feature,
// not a fix.
package engine
