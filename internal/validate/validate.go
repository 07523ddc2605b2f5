package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

const (
	// MaxQueryLength bounds free-text queries after trimming.
	MaxQueryLength = 500

	// MinLimit and MaxLimit bound page sizes.
	MinLimit = 1
	MaxLimit = 50
)

// codePattern matches performance expectation codes: grade band (K, 1-5,
// MS, HS), discipline segment, core idea number, PE number.
// Examples: "MS-PS1-4", "5-ESS2-1", "HS-ETS1-3", "K-LS1-1".
var codePattern = regexp.MustCompile(`^(K|[1-5]|MS|HS)-(PS|LS|ESS|ETS)([1-9])-([0-9]{1,2})$`)

// blockedPatterns reject query content that could escape into a downstream
// presentation or templating context: markup tags, template-expression
// delimiters, prototype-pollution property names, inline event handlers.
var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<\s*/?\s*[a-zA-Z][^>]*>`),
	regexp.MustCompile(`\{\{|\}\}|\$\{`),
	regexp.MustCompile(`(?i)__proto__|\bconstructor\b|\bprototype\b`),
	regexp.MustCompile(`(?i)\bon[a-z]+\s*=`),
}

// categoryAliases maps normalized category spellings to the closed set.
// Keys are produced by normalizeCategory.
var categoryAliases = map[string]types.Category{
	"physical science":       types.CategoryPhysicalScience,
	"physical sciences":      types.CategoryPhysicalScience,
	"ps":                     types.CategoryPhysicalScience,
	"life science":           types.CategoryLifeScience,
	"life sciences":          types.CategoryLifeScience,
	"ls":                     types.CategoryLifeScience,
	"earth and space science":  types.CategoryEarthSpace,
	"earth and space sciences": types.CategoryEarthSpace,
	"earth space science":      types.CategoryEarthSpace,
	"earth science":            types.CategoryEarthSpace,
	"ess":                      types.CategoryEarthSpace,
	"engineering technology and applications of science": types.CategoryEngineering,
	"engineering technology and application of science":  types.CategoryEngineering,
	"engineering design": types.CategoryEngineering,
	"engineering":        types.CategoryEngineering,
	"ets":                types.CategoryEngineering,
}

var spaceRun = regexp.MustCompile(`\s+`)

// Code checks a performance expectation code against the fixed lexical
// pattern. It does not consult the corpus; a well-formed code may still
// have no record.
func Code(code string) error {
	if !codePattern.MatchString(code) {
		return fmt.Errorf("%w: %q", types.ErrBadFormat, code)
	}
	return nil
}

// Category resolves a category name, exactly or through a case- and
// punctuation-insensitive alias, to the closed enumeration.
func Category(name string) (types.Category, error) {
	if c, ok := categoryAliases[normalizeCategory(name)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", types.ErrUnknownCategory, name)
}

// normalizeCategory folds case and punctuation variants of a category name
// to a canonical lookup key.
func normalizeCategory(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return spaceRun.ReplaceAllString(strings.TrimSpace(b.String()), " ")
}

// Query validates a free-text query and returns the sanitized (trimmed)
// copy to use for all downstream matching.
func Query(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", fmt.Errorf("%w: query is empty", types.ErrInvalidQuery)
	}
	if len(trimmed) > MaxQueryLength {
		return "", fmt.Errorf("%w: query exceeds %d characters", types.ErrInvalidQuery, MaxQueryLength)
	}
	for _, p := range blockedPatterns {
		if p.MatchString(trimmed) {
			return "", fmt.Errorf("%w: query contains blocked pattern", types.ErrInvalidQuery)
		}
	}
	return trimmed, nil
}

// Limit checks a page size against [MinLimit, MaxLimit].
func Limit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between %d and %d, got %d",
			types.ErrOutOfRange, MinLimit, MaxLimit, limit)
	}
	return nil
}

// Offset checks a pagination offset for non-negativity.
func Offset(offset int) error {
	if offset < 0 {
		return fmt.Errorf("%w: offset must be >= 0, got %d", types.ErrOutOfRange, offset)
	}
	return nil
}
