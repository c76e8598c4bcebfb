package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"kpi_platform/internal/models"
)

type SchemaRepository struct {
	pool   *pgxpool.Pool
	schema string
}

func NewSchemaRepository(pool *pgxpool.Pool) *SchemaRepository {
	return &SchemaRepository{pool: pool, schema: "public"}
}

// GetTables returns all base table names in the schema.
func (r *SchemaRepository) GetTables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1
		AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := r.pool.Query(ctx, query, r.schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}

	return tables, rows.Err()
}

// DescribeTable returns columns, primary keys and foreign keys for a table.
func (r *SchemaRepository) DescribeTable(ctx context.Context, table string) (*models.Table, error) {
	columns, err := r.getColumns(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for %s: %w", table, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table %q does not exist", table)
	}

	pks, err := r.getPrimaryKeys(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get primary keys for %s: %w", table, err)
	}

	fks, err := r.getForeignKeys(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to get foreign keys for %s: %w", table, err)
	}

	return &models.Table{
		Name:        table,
		Columns:     columns,
		PrimaryKeys: pks,
		ForeignKeys: fks,
	}, nil
}

func (r *SchemaRepository) getColumns(ctx context.Context, table string) ([]models.Column, error) {
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var col models.Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

func (r *SchemaRepository) getPrimaryKeys(ctx context.Context, table string) ([]string, error) {
	query := `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
		ORDER BY kcu.ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pks []string
	for rows.Next() {
		var pk string
		if err := rows.Scan(&pk); err != nil {
			return nil, err
		}
		pks = append(pks, pk)
	}

	return pks, rows.Err()
}

func (r *SchemaRepository) getForeignKeys(ctx context.Context, table string) ([]models.ForeignKey, error) {
	query := `
		SELECT kcu.column_name, ccu.table_name, ccu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.constraint_column_usage ccu
			ON tc.constraint_name = ccu.constraint_name
			AND tc.table_schema = ccu.table_schema
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
			AND tc.table_name = $2
	`

	rows, err := r.pool.Query(ctx, query, r.schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []models.ForeignKey
	for rows.Next() {
		var fk models.ForeignKey
		if err := rows.Scan(&fk.Column, &fk.ReferencedTable, &fk.ReferencedColumn); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}

	return fks, rows.Err()
}

// RenderTable formats a table description the way the agent prompt consumes
// it: one line per column plus key information.
func RenderTable(t *models.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table %s:\n", t.Name)
	for _, col := range t.Columns {
		nullable := "NOT NULL"
		if col.Nullable {
			nullable = "NULL"
		}
		fmt.Fprintf(&b, "  %s %s %s\n", col.Name, col.DataType, nullable)
	}
	if len(t.PrimaryKeys) > 0 {
		fmt.Fprintf(&b, "  PRIMARY KEY (%s)\n", strings.Join(t.PrimaryKeys, ", "))
	}
	for _, fk := range t.ForeignKeys {
		fmt.Fprintf(&b, "  FOREIGN KEY %s REFERENCES %s(%s)\n", fk.Column, fk.ReferencedTable, fk.ReferencedColumn)
	}
	return b.String()
}
