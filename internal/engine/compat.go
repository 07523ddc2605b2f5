package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/ngss-tools/ngss-mcp/internal/validate"
	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// Dimension weights for compatibility scoring. A candidate sharing every
// dimension with the anchor scores the maximum of 8.
const (
	weightCategory = 3
	weightSEP      = 2
	weightDCI      = 2
	weightCCC      = 1

	// MaxCompatibilityScore is the highest possible compatibility score.
	MaxCompatibilityScore = weightCategory + weightSEP + weightDCI + weightCCC
)

// Related scores candidate records against an anchor across the four
// classification dimensions. The pool never includes the anchor; an empty
// pool means the whole corpus. Candidates are returned sorted by score
// descending with ascending code as the tie-break, so the order is
// deterministic regardless of corpus-load order.
//
// A missing anchor is a hard failure: without it no candidate can be
// scored. Pool codes that resolve to no record are skipped.
func (e *Engine) Related(anchorCode string, pool []string) ([]types.RelatedStandard, error) {
	defer e.observe("related", time.Now())

	if err := validate.Code(anchorCode); err != nil {
		return nil, err
	}
	anchor := e.idx.Lookup(anchorCode)
	if anchor == nil {
		return nil, fmt.Errorf("%w: anchor %s", types.ErrNotFound, anchorCode)
	}

	var candidates []*types.Record
	if len(pool) == 0 {
		candidates = e.idx.Records()
	} else {
		candidates = make([]*types.Record, 0, len(pool))
		for _, code := range pool {
			rec := e.idx.Lookup(code)
			if rec == nil {
				e.log.Debug("related: skipping unknown pool code", "code", code)
				continue
			}
			candidates = append(candidates, rec)
		}
	}

	scored := make([]types.RelatedStandard, 0, len(candidates))
	for _, rec := range candidates {
		if rec.Code == anchor.Code {
			continue
		}
		breakdown := scoreAgainst(anchor, rec)
		scored = append(scored, types.RelatedStandard{
			Record:    rec,
			Score:     breakdown.Total(),
			Breakdown: breakdown,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Record.Code < scored[j].Record.Code
	})
	return scored, nil
}

// scoreAgainst computes the per-dimension binary match between anchor and
// candidate.
func scoreAgainst(anchor, candidate *types.Record) types.ScoreBreakdown {
	var b types.ScoreBreakdown
	if candidate.Category == anchor.Category {
		b.Category = weightCategory
	}
	if candidate.Components.SEP.Code == anchor.Components.SEP.Code {
		b.SEP = weightSEP
	}
	if candidate.Components.DCI.Code == anchor.Components.DCI.Code {
		b.DCI = weightDCI
	}
	if candidate.Components.CCC.Code == anchor.Components.CCC.Code {
		b.CCC = weightCCC
	}
	return b
}
