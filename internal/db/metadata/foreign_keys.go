package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/dbtea/dbtea/internal/db/connection"
	"github.com/dbtea/dbtea/internal/models"
)

// ForeignKey describes the referential link of a single column.
type ForeignKey struct {
	Column        string
	ForeignSchema string
	ForeignTable  string
	ForeignColumn string
}

// GetForeignKey returns the foreign key constraint covering a column,
// or nil when the column has none.
func GetForeignKey(ctx context.Context, pool *connection.Pool, schema, table, column string) (*ForeignKey, error) {
	query := `
		SELECT
			att.attname AS column_name,
			nf.nspname AS foreign_schema,
			clf.relname AS foreign_table,
			fatt.attname AS foreign_column
		FROM pg_catalog.pg_constraint con
		JOIN pg_catalog.pg_class cl ON con.conrelid = cl.oid
		JOIN pg_catalog.pg_namespace ns ON cl.relnamespace = ns.oid
		JOIN pg_catalog.pg_class clf ON con.confrelid = clf.oid
		JOIN pg_catalog.pg_namespace nf ON clf.relnamespace = nf.oid
		JOIN unnest(con.conkey) WITH ORDINALITY AS u(attnum, ord)
			ON true
		JOIN pg_catalog.pg_attribute att ON att.attrelid = con.conrelid
			AND att.attnum = u.attnum
		JOIN unnest(con.confkey) WITH ORDINALITY AS fu(attnum, ord)
			ON fu.ord = u.ord
		JOIN pg_catalog.pg_attribute fatt ON fatt.attrelid = con.confrelid
			AND fatt.attnum = fu.attnum
		WHERE con.contype = 'f'
			AND ns.nspname = $1
			AND cl.relname = $2
			AND att.attname = $3
		LIMIT 1
	`

	rows, err := pool.Query(ctx, query, schema, table, column)
	if err != nil {
		return nil, fmt.Errorf("failed to get foreign key: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	return &ForeignKey{
		Column:        toString(row["column_name"]),
		ForeignSchema: toString(row["foreign_schema"]),
		ForeignTable:  toString(row["foreign_table"]),
		ForeignColumn: toString(row["foreign_column"]),
	}, nil
}

// FollowForeignKey resolves a cell's referential link. It returns the
// target location and the query that loads the referenced row; value is
// the cell's displayed contents.
func FollowForeignKey(ctx context.Context, pool *connection.Pool, cell models.CellRef, value string) (models.TargetLocation, string, error) {
	fk, err := GetForeignKey(ctx, pool, cell.Schema, cell.Table, cell.Column)
	if err != nil {
		return models.TargetLocation{}, "", err
	}
	if fk == nil {
		return models.TargetLocation{}, "", fmt.Errorf("no foreign key on %s.%s.%s", cell.Schema, cell.Table, cell.Column)
	}

	target := models.TargetLocation{
		Pane:   models.PaneResults,
		Schema: fk.ForeignSchema,
		Table:  fk.ForeignTable,
		Row:    0,
	}
	escaped := strings.ReplaceAll(value, "'", "''")
	query := fmt.Sprintf(
		"SELECT * FROM %q.%q WHERE %q = '%s'",
		fk.ForeignSchema, fk.ForeignTable, fk.ForeignColumn, escaped,
	)
	return target, query, nil
}
