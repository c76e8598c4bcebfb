package sqlcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AllowedQueries(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "simple select",
			query: "SELECT * FROM projects",
		},
		{
			name:  "select with trailing semicolon",
			query: "SELECT name, status FROM projects;",
		},
		{
			name:  "lowercase select",
			query: "select count(*) from employees",
		},
		{
			name:  "cte",
			query: "WITH late AS (SELECT project_id FROM projects WHERE actual_end_date > planned_end_date) SELECT count(*) FROM late",
		},
		{
			name:  "explain",
			query: "EXPLAIN SELECT * FROM clients",
		},
		{
			name:  "leading comment before select",
			query: "-- revenue per client\nSELECT company_id, SUM(revenue_amount) FROM company_revenue GROUP BY company_id",
		},
		{
			name:  "column name containing a forbidden substring",
			query: "SELECT created_at, updated_at FROM kpi_catalog",
		},
		{
			name:  "table name containing a forbidden substring",
			query: "SELECT * FROM deleted_records_view",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Validate(tt.query))
		})
	}
}

func TestValidate_RejectedQueries(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "empty",
			query: "",
		},
		{
			name:  "whitespace only",
			query: "   \n\t",
		},
		{
			name:  "comment only",
			query: "-- nothing here",
		},
		{
			name:  "insert",
			query: "INSERT INTO clients (name) VALUES ('x')",
		},
		{
			name:  "update",
			query: "UPDATE projects SET status = 'Completed'",
		},
		{
			name:  "delete",
			query: "DELETE FROM defects",
		},
		{
			name:  "drop",
			query: "DROP TABLE companies",
		},
		{
			name:  "truncate",
			query: "TRUNCATE time_entry",
		},
		{
			name:  "select hiding a second destructive statement",
			query: "SELECT 1; DROP TABLE projects",
		},
		{
			name:  "forbidden keyword behind a comment",
			query: "SELECT 1 /* x */; DELETE FROM issues",
		},
		{
			name:  "cte wrapping an update",
			query: "WITH x AS (UPDATE projects SET status = 'x' RETURNING *) SELECT * FROM x",
		},
		{
			name:  "does not start with select",
			query: "SHOW TABLES",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(tt.query))
		})
	}
}

func TestEnsureLimit(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "appends limit",
			query:    "SELECT * FROM projects",
			expected: "SELECT * FROM projects LIMIT 5",
		},
		{
			name:     "drops trailing semicolon before appending",
			query:    "SELECT * FROM projects;",
			expected: "SELECT * FROM projects LIMIT 5",
		},
		{
			name:     "keeps an existing limit",
			query:    "SELECT * FROM projects LIMIT 100",
			expected: "SELECT * FROM projects LIMIT 100",
		},
		{
			name:     "keeps a lowercase limit",
			query:    "select * from projects limit 3",
			expected: "select * from projects limit 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, EnsureLimit(tt.query, 5))
		})
	}
}
