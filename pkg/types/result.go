package types

// FuzzyMatch is a single fuzzy-match result: the record whose alias came
// closest to the query, with a normalized-edit-distance confidence.
type FuzzyMatch struct {
	Record       *Record
	Confidence   float64 // 1 - distance/max(len(query), len(alias)), in [0,1]
	MatchedAlias string
	Distance     int // raw Levenshtein distance, tie-break key
}

// SearchHit is a single keyword-search result. Score is the fraction of
// query tokens present in the record's indexed text.
type SearchHit struct {
	Record *Record
	Score  float64
}

// ScoreBreakdown itemizes the points contributed by each dimension of a
// compatibility score. A dimension contributes its full weight on an exact
// tag match and zero otherwise.
type ScoreBreakdown struct {
	Category int `json:"category"` // +3 on same discipline
	SEP      int `json:"sep"`      // +2 on same practice
	DCI      int `json:"dci"`      // +2 on same core idea
	CCC      int `json:"ccc"`      // +1 on same crosscutting concept
}

// Total returns the summed compatibility score (0 to 8).
func (b ScoreBreakdown) Total() int {
	return b.Category + b.SEP + b.DCI + b.CCC
}

// RelatedStandard is a compatibility-scored candidate relative to an
// anchor record. The anchor itself never appears as a candidate.
type RelatedStandard struct {
	Record    *Record
	Score     int
	Breakdown ScoreBreakdown
}
