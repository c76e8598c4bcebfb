package seed

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"kpi_platform/internal/database"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("kpi_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestInsert_RoundTrip(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, database.ResetSchema(ctx, pool))

	ds := Generate(smallConfig())
	require.NoError(t, Insert(ctx, pool, ds))

	counts := map[string]int{
		"companies":       len(ds.Companies),
		"company_revenue": len(ds.Revenues),
		"clients":         len(ds.Clients),
		"projects":        len(ds.Projects),
		"employees":       len(ds.Employees),
		"team_members":    len(ds.TeamMembers),
		"milestones":      len(ds.Milestones),
		"time_entry":      len(ds.TimeEntries),
		"kpi_catalog":     len(ds.KPIs),
	}
	for table, want := range counts {
		var got int
		require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&got))
		assert.Equal(t, want, got, "table %s", table)
	}

	// created_at is filled by the database default.
	var createdAt time.Time
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT created_at FROM kpi_catalog ORDER BY kpi_id LIMIT 1").Scan(&createdAt))
	assert.False(t, createdAt.IsZero())
}

func TestInsert_AfterResetReplacesEverything(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, database.ResetSchema(ctx, pool))
	require.NoError(t, Insert(ctx, pool, Generate(smallConfig())))

	// Full reseed: the previous dataset must be gone, not appended to.
	smaller := smallConfig()
	smaller.Projects = 3
	smaller.Seed = 99
	require.NoError(t, database.ResetSchema(ctx, pool))
	require.NoError(t, Insert(ctx, pool, Generate(smaller)))

	var projects int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM projects").Scan(&projects))
	assert.Equal(t, 3, projects)
}
