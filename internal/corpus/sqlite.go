package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/ngss-tools/ngss-mcp/pkg/types"
)

// sqliteLoader reads the corpus from the SQLite catalog produced by the
// external document-parsing batch. The catalog is opened read-only and
// only at startup; the engine keeps no connection afterwards.
type sqliteLoader struct {
	path string
}

func (l *sqliteLoader) Load(ctx context.Context) ([]*types.Record, error) {
	db, err := sql.Open(DriverName, "file:"+l.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening corpus catalog: %w", err)
	}
	defer func() { _ = db.Close() }()

	records, err := l.loadStandards(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := l.loadAliases(ctx, db, records); err != nil {
		return nil, err
	}
	if err := l.loadKeywords(ctx, db, records); err != nil {
		return nil, err
	}

	ordered := make([]*types.Record, 0, len(records))
	for _, rec := range records {
		ordered = append(ordered, rec)
	}
	// Map iteration order is random; restore catalog order.
	if err := l.sortByRowOrder(ctx, db, ordered); err != nil {
		return nil, err
	}

	if err := Validate(ordered); err != nil {
		return nil, err
	}
	return ordered, nil
}

func (l *sqliteLoader) loadStandards(ctx context.Context, db *sql.DB) (map[string]*types.Record, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT code, category, topic, description,
		       sep_code, sep_name, sep_description,
		       dci_code, dci_name, dci_description,
		       ccc_code, ccc_name, ccc_description,
		       clarification, assessment_boundary
		FROM standards`)
	if err != nil {
		return nil, fmt.Errorf("querying standards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make(map[string]*types.Record)
	for rows.Next() {
		var rec types.Record
		var category string
		var clarification, boundary sql.NullString
		if err := rows.Scan(
			&rec.Code, &category, &rec.Topic, &rec.Description,
			&rec.Components.SEP.Code, &rec.Components.SEP.Name, &rec.Components.SEP.Description,
			&rec.Components.DCI.Code, &rec.Components.DCI.Name, &rec.Components.DCI.Description,
			&rec.Components.CCC.Code, &rec.Components.CCC.Name, &rec.Components.CCC.Description,
			&clarification, &boundary,
		); err != nil {
			return nil, fmt.Errorf("scanning standard: %w", err)
		}
		rec.Category = types.Category(category)
		rec.Scope = types.Scope{
			Clarification:      clarification.String,
			AssessmentBoundary: boundary.String,
		}
		records[rec.Code] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating standards: %w", err)
	}
	return records, nil
}

func (l *sqliteLoader) loadAliases(ctx context.Context, db *sql.DB, records map[string]*types.Record) error {
	rows, err := db.QueryContext(ctx, `SELECT code, alias FROM aliases ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying aliases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var code, alias string
		if err := rows.Scan(&code, &alias); err != nil {
			return fmt.Errorf("scanning alias: %w", err)
		}
		if rec, ok := records[code]; ok {
			rec.Aliases = append(rec.Aliases, alias)
		}
	}
	return rows.Err()
}

func (l *sqliteLoader) loadKeywords(ctx context.Context, db *sql.DB, records map[string]*types.Record) error {
	rows, err := db.QueryContext(ctx, `SELECT code, keyword FROM keywords ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying keywords: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var code, keyword string
		if err := rows.Scan(&code, &keyword); err != nil {
			return fmt.Errorf("scanning keyword: %w", err)
		}
		if rec, ok := records[code]; ok {
			rec.Keywords = append(rec.Keywords, keyword)
		}
	}
	return rows.Err()
}

func (l *sqliteLoader) sortByRowOrder(ctx context.Context, db *sql.DB, records []*types.Record) error {
	rows, err := db.QueryContext(ctx, `SELECT code FROM standards ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("querying standard order: %w", err)
	}
	defer func() { _ = rows.Close() }()

	order := make(map[string]int, len(records))
	pos := 0
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return fmt.Errorf("scanning standard order: %w", err)
		}
		order[code] = pos
		pos++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	sort.Slice(records, func(i, j int) bool {
		return order[records[i].Code] < order[records[j].Code]
	})
	return nil
}
