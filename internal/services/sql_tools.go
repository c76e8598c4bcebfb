package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"

	"kpi_platform/internal/repositories"
	"kpi_platform/internal/sqlcheck"
)

// The agent's toolkit: list tables, inspect schema, run a bounded read-only
// query. Errors are returned as observation text instead of Go errors so the
// agent can read them and correct its next attempt.

type ListTablesTool struct {
	schemaRepo *repositories.SchemaRepository
}

var _ tools.Tool = ListTablesTool{}

func (t ListTablesTool) Name() string {
	return "list_sql_tables"
}

func (t ListTablesTool) Description() string {
	return "Lists all tables in the database. Input is ignored. " +
		"Always call this first to see what can be queried."
}

func (t ListTablesTool) Call(ctx context.Context, _ string) (string, error) {
	tables, err := t.schemaRepo.GetTables(ctx)
	if err != nil {
		return fmt.Sprintf("error listing tables: %v", err), nil
	}
	return strings.Join(tables, ", "), nil
}

type TableSchemaTool struct {
	schemaRepo *repositories.SchemaRepository
}

var _ tools.Tool = TableSchemaTool{}

func (t TableSchemaTool) Name() string {
	return "describe_sql_tables"
}

func (t TableSchemaTool) Description() string {
	return "Describes the columns, primary keys and foreign keys of tables. " +
		"Input: a comma-separated list of table names."
}

func (t TableSchemaTool) Call(ctx context.Context, input string) (string, error) {
	var descriptions []string
	for _, name := range strings.Split(input, ",") {
		name = strings.TrimSpace(strings.Trim(strings.TrimSpace(name), `"'`))
		if name == "" {
			continue
		}
		table, err := t.schemaRepo.DescribeTable(ctx, name)
		if err != nil {
			return fmt.Sprintf("error describing table %q: %v", name, err), nil
		}
		descriptions = append(descriptions, repositories.RenderTable(table))
	}
	if len(descriptions) == 0 {
		return "no table names given; input must be a comma-separated list of table names", nil
	}
	return strings.Join(descriptions, "\n"), nil
}

type QueryTool struct {
	queryRepo *repositories.QueryRepository
	maxRows   int
}

var _ tools.Tool = QueryTool{}

func (t QueryTool) Name() string {
	return "run_sql_query"
}

func (t QueryTool) Description() string {
	return fmt.Sprintf("Executes a read-only SQL query and returns the result rows as JSON. "+
		"Input: a single SELECT statement. Results are capped at %d rows unless the query "+
		"carries its own LIMIT.", t.maxRows)
}

func (t QueryTool) Call(ctx context.Context, input string) (string, error) {
	query := strings.TrimSpace(strings.Trim(strings.TrimSpace(input), "`"))
	query = strings.TrimPrefix(query, "sql\n")

	if err := sqlcheck.Validate(query); err != nil {
		return fmt.Sprintf("query rejected: %v", err), nil
	}

	result, err := t.queryRepo.RunReadOnly(ctx, sqlcheck.EnsureLimit(query, t.maxRows))
	if err != nil {
		return fmt.Sprintf("query failed: %v", err), nil
	}

	payload, err := json.Marshal(result.Rows)
	if err != nil {
		return fmt.Sprintf("failed to encode result rows: %v", err), nil
	}
	return string(payload), nil
}
