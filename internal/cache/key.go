package cache

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
)

// Key derives a deterministic cache key from an operation name and its
// parameters. Parameters are sorted by name before hashing, so argument
// order never causes a spurious miss, and keys are hashed over a
// delimiter-separated encoding so distinct parameter sets never collide.
func Key(op string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(op)
	for _, name := range names {
		b.WriteByte(0)
		b.WriteString(name)
		b.WriteByte(0)
		b.WriteString(params[name])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%s:%x", op, sum[:16])
}
