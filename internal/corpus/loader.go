package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// Loader supplies the full record list exactly once at startup. The engine
// never re-fetches during its lifetime; a load failure is fatal and the
// server must not start.
type Loader interface {
	Load(ctx context.Context) ([]*types.Record, error)
}

// Open returns a Loader for the given corpus path, selected by file
// extension: .json for the batch parser's JSON output, .db/.sqlite/.sqlite3
// for a SQLite catalog.
func Open(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return &jsonLoader{path: path}, nil
	case ".db", ".sqlite", ".sqlite3":
		return &sqliteLoader{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported corpus format: %s", path)
	}
}

// jsonLoader reads the corpus from a JSON array of records.
type jsonLoader struct {
	path string
}

func (l *jsonLoader) Load(ctx context.Context) ([]*types.Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var records []*types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", l.path, err)
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks the whole corpus for schema validity: every required
// field present, every category in the closed set, no duplicate codes.
// Any violation rejects the corpus whole; the engine never serves
// partial data.
func Validate(records []*types.Record) error {
	if len(records) == 0 {
		return types.ErrEmptyCorpus
	}
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("corpus record %d: %w", i, err)
		}
		if _, dup := seen[rec.Code]; dup {
			return fmt.Errorf("corpus record %d: %w: %s", i, types.ErrDuplicateCode, rec.Code)
		}
		seen[rec.Code] = struct{}{}
	}
	return nil
}
