package metadata

import (
	"context"
	"fmt"

	"github.com/dbtea/dbtea/internal/db/connection"
	"github.com/dbtea/dbtea/internal/models"
)

// toString safely converts an interface{} to string
func toString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// ListSchemas returns all schemas in the current database
func ListSchemas(ctx context.Context, pool *connection.Pool) ([]string, error) {
	query := `
		SELECT schema_name as name
		FROM information_schema.schemata
		WHERE schema_name NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY schema_name;
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	schemas := make([]string, 0, len(rows))
	for _, row := range rows {
		schemas = append(schemas, toString(row["name"]))
	}

	return schemas, nil
}

// ListTables returns all table names in a schema
func ListTables(ctx context.Context, pool *connection.Pool, schema string) ([]string, error) {
	query := `
		SELECT tablename as name
		FROM pg_catalog.pg_tables
		WHERE schemaname = $1
		ORDER BY tablename;
	`

	rows, err := pool.Query(ctx, query, schema)
	if err != nil {
		return nil, err
	}

	tables := make([]string, 0, len(rows))
	for _, row := range rows {
		tables = append(tables, toString(row["name"]))
	}

	return tables, nil
}

// FetchSchemaTree loads every schema and its tables into a tree rooted
// at the connection name.
func FetchSchemaTree(ctx context.Context, pool *connection.Pool) (*models.TreeNode, error) {
	schemas, err := ListSchemas(ctx, pool)
	if err != nil {
		return nil, fmt.Errorf("listing schemas: %w", err)
	}

	tables := make(map[string][]string, len(schemas))
	for _, schema := range schemas {
		names, err := ListTables(ctx, pool, schema)
		if err != nil {
			return nil, fmt.Errorf("listing tables in %s: %w", schema, err)
		}
		tables[schema] = names
	}

	return models.BuildSchemaTree(pool.Name(), tables), nil
}
