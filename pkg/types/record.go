package types

import "fmt"

// Category is a top-level NGSS discipline. The set is closed: a record
// belongs to exactly one of the four disciplines below.
type Category string

const (
	CategoryPhysicalScience Category = "Physical Science"
	CategoryLifeScience     Category = "Life Science"
	CategoryEarthSpace      Category = "Earth and Space Science"
	CategoryEngineering     Category = "Engineering, Technology, and Applications of Science"
)

// Categories lists every valid category in canonical order.
var Categories = []Category{
	CategoryPhysicalScience,
	CategoryLifeScience,
	CategoryEarthSpace,
	CategoryEngineering,
}

// Segment returns the code segment used inside performance expectation
// codes ("PS" in "MS-PS1-4").
func (c Category) Segment() string {
	switch c {
	case CategoryPhysicalScience:
		return "PS"
	case CategoryLifeScience:
		return "LS"
	case CategoryEarthSpace:
		return "ESS"
	case CategoryEngineering:
		return "ETS"
	}
	return ""
}

// Valid reports whether the category is one of the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryPhysicalScience, CategoryLifeScience, CategoryEarthSpace, CategoryEngineering:
		return true
	}
	return false
}

// Component is one classification tag: a science and engineering practice,
// a disciplinary core idea, or a crosscutting concept.
type Component struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Components holds the three NGSS dimensions of a performance expectation.
// Each dimension carries exactly one component; none is ever a list.
type Components struct {
	SEP Component `json:"sep"` // Science and Engineering Practice
	DCI Component `json:"dci"` // Disciplinary Core Idea
	CCC Component `json:"ccc"` // Crosscutting Concept
}

// Scope carries the NGSS scope statements that bound what a performance
// expectation covers and how it may be assessed.
type Scope struct {
	Clarification      string `json:"clarification,omitempty"`
	AssessmentBoundary string `json:"assessment_boundary,omitempty"`
}

// Record is a single immutable performance expectation. Records are loaded
// once at startup and never mutated afterwards, so they are safe to share
// across concurrent callers without locking.
type Record struct {
	Code        string     `json:"code"` // e.g. "MS-PS1-4", globally unique
	Category    Category   `json:"category"`
	Topic       string     `json:"topic"`
	Description string     `json:"description"`
	Components  Components `json:"components"`
	Aliases     []string   `json:"aliases,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
	Scope       Scope      `json:"scope"`
}

// Validate checks that the record carries every required field. A corpus
// containing an invalid record must be rejected whole at load time.
func (r *Record) Validate() error {
	if r.Code == "" {
		return ErrMissingCode
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: %q (record %s)", ErrUnknownCategory, r.Category, r.Code)
	}
	if r.Topic == "" {
		return fmt.Errorf("%w: topic (record %s)", ErrMissingField, r.Code)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: description (record %s)", ErrMissingField, r.Code)
	}
	for _, c := range []struct {
		dim  string
		comp Component
	}{
		{"sep", r.Components.SEP},
		{"dci", r.Components.DCI},
		{"ccc", r.Components.CCC},
	} {
		if c.comp.Code == "" || c.comp.Name == "" {
			return fmt.Errorf("%w: %s component (record %s)", ErrMissingField, c.dim, r.Code)
		}
	}
	return nil
}
