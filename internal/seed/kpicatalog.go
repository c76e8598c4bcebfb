package seed

import "kpi_platform/internal/models"

func floatPtr(v float64) *float64 { return &v }

// kpiCatalog returns the static KPI reference rows. Formulas are stored as
// text with named placeholders (:year, :project_id) for a human or an agent to
// fill in later; nothing in this service parses or executes them.
func kpiCatalog() []models.KPIDefinition {
	return []models.KPIDefinition{
		{
			KPIID:           1,
			Role:            "HR Manager",
			KPIName:         "Total Revenue",
			Category:        "Company",
			Description:     "Total revenue for a given year",
			SQLFormula:      "SELECT SUM(revenue_amount) FROM company_revenue WHERE EXTRACT(YEAR FROM revenue_date) = :year",
			DataSources:     "company_revenue",
			CalculationType: "sum",
			Unit:            "USD",
		},
		{
			KPIID:       2,
			Role:        "HR Manager",
			KPIName:     "Revenue Growth Rate",
			Category:    "Company",
			Description: "Year over year revenue growth",
			SQLFormula: `SELECT
  ((this_year.total - last_year.total) / last_year.total) * 100
FROM
  (SELECT SUM(revenue_amount) total FROM company_revenue WHERE EXTRACT(YEAR FROM revenue_date) = :year) this_year,
  (SELECT SUM(revenue_amount) total FROM company_revenue WHERE EXTRACT(YEAR FROM revenue_date) = :year - 1) last_year`,
			DataSources:     "company_revenue",
			CalculationType: "percentage",
			Unit:            "%",
		},
		{
			KPIID:       3,
			Role:        "HR Manager",
			KPIName:     "Revenue per Client",
			Category:    "Company",
			Description: "Revenue divided by total active clients",
			SQLFormula: `SELECT SUM(r.revenue_amount) / COUNT(DISTINCT c.client_id)
FROM company_revenue r
JOIN clients c ON c.company_id = r.company_id`,
			DataSources:     "company_revenue, clients",
			CalculationType: "ratio",
			Unit:            "USD",
		},
		{
			KPIID:       4,
			Role:        "Project Manager",
			KPIName:     "On-time Delivery Rate",
			Category:    "Project",
			Description: "Percentage of projects delivered on time",
			SQLFormula: `SELECT
  (SUM(CASE WHEN actual_end_date <= planned_end_date THEN 1 ELSE 0 END)::numeric
   / COUNT(*)) * 100
FROM projects`,
			DataSources:     "projects",
			CalculationType: "percentage",
			Unit:            "%",
			TargetValue:     floatPtr(95),
		},
		{
			KPIID:       5,
			Role:        "Project Manager",
			KPIName:     "Goal Completion Rate",
			Category:    "Project",
			Description: "Percentage of goals completed",
			SQLFormula: `SELECT
  (SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END)::numeric / COUNT(*)) * 100
FROM project_goals`,
			DataSources:     "project_goals",
			CalculationType: "percentage",
			Unit:            "%",
		},
		{
			KPIID:           6,
			Role:            "Delivery Manager",
			KPIName:         "Average Time per Project (hrs)",
			Category:        "Project",
			Description:     "Average billable hours per project over period",
			SQLFormula:      "SELECT AVG(hours) FROM time_entry WHERE project_id = :project_id AND is_billable = 1",
			DataSources:     "time_entry",
			CalculationType: "average",
			Unit:            "hours",
		},
		{
			KPIID:           7,
			Role:            "Delivery Manager",
			KPIName:         "Defects per Project",
			Category:        "Project",
			Description:     "Average number of defects reported per project",
			SQLFormula:      "SELECT project_id, COUNT(*) AS defect_count FROM defects GROUP BY project_id",
			DataSources:     "defects",
			CalculationType: "count",
			Unit:            "count",
		},
	}
}
