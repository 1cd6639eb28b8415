package metadata

import (
	"context"
	"fmt"

	"github.com/dbtea/dbtea/internal/db/connection"
	"github.com/dbtea/dbtea/internal/db/query"
	"github.com/dbtea/dbtea/internal/models"
)

// Page is one window of table rows plus the table's total row count.
type Page struct {
	Result    models.QueryResult
	TotalRows int64
	Offset    int
}

// CountRows returns the total number of rows in a table.
func CountRows(ctx context.Context, pool *connection.Pool, schema, table string) (int64, error) {
	row, err := pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) AS count FROM %q.%q", schema, table))
	if err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	count, ok := row["count"].(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected count type %T", row["count"])
	}
	return count, nil
}

// FetchPage fetches one page of table data. An empty orderBy keeps the
// table's natural order; otherwise rows are sorted by that column.
func FetchPage(ctx context.Context, pool *connection.Pool, schema, table, orderBy string, offset, limit int) (Page, error) {
	total, err := CountRows(ctx, pool, schema, table)
	if err != nil {
		return Page{}, err
	}

	sql := fmt.Sprintf("SELECT * FROM %q.%q", schema, table)
	if orderBy != "" {
		sql += fmt.Sprintf(" ORDER BY %q", orderBy)
	}
	sql += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	res := query.Execute(ctx, pool.GetPool(), sql)
	if res.Err != nil {
		return Page{}, fmt.Errorf("failed to query table data: %w", res.Err)
	}

	return Page{Result: res, TotalRows: total, Offset: offset}, nil
}
