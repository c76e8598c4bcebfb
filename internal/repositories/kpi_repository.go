package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kpi_platform/internal/models"
)

type KPIRepository struct {
	pool *pgxpool.Pool
}

func NewKPIRepository(pool *pgxpool.Pool) *KPIRepository {
	return &KPIRepository{pool: pool}
}

// List returns every KPI catalog entry ordered by id.
func (r *KPIRepository) List(ctx context.Context) ([]models.KPIDefinition, error) {
	query := `
		SELECT kpi_id, role, kpi_name, category, description, sql_formula,
		       data_sources, calculation_type, unit, target_value, created_at
		FROM kpi_catalog
		ORDER BY kpi_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kpis []models.KPIDefinition
	for rows.Next() {
		var k models.KPIDefinition
		err := rows.Scan(
			&k.KPIID,
			&k.Role,
			&k.KPIName,
			&k.Category,
			&k.Description,
			&k.SQLFormula,
			&k.DataSources,
			&k.CalculationType,
			&k.Unit,
			&k.TargetValue,
			&k.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		kpis = append(kpis, k)
	}

	return kpis, rows.Err()
}
