package query

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dbtea/dbtea/internal/models"
)

// Execute executes a SQL query and returns the results
func Execute(ctx context.Context, pool *pgxpool.Pool, sql string) models.QueryResult {
	start := time.Now()

	rows, err := pool.Query(ctx, sql)
	if err != nil {
		return models.QueryResult{
			Err:      err,
			Duration: time.Since(start),
		}
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	var result [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return models.QueryResult{
				Err:      err,
				Duration: time.Since(start),
			}
		}

		row := make([]string, len(values))
		for i, v := range values {
			if v == nil {
				row[i] = "NULL"
			} else {
				row[i] = convertValueToString(v)
			}
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return models.QueryResult{
			Err:      err,
			Duration: time.Since(start),
		}
	}

	return models.QueryResult{
		Columns:      columns,
		Rows:         result,
		RowsAffected: int64(len(result)),
		Duration:     time.Since(start),
	}
}

// convertValueToString converts a database value to string, handling JSONB properly
func convertValueToString(val interface{}) string {
	switch v := val.(type) {
	case map[string]interface{}, []interface{}:
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(jsonBytes)
	case []byte:
		// Might be raw JSON bytes
		return string(v)
	default:
		return fmt.Sprintf("%v", val)
	}
}
