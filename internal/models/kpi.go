package models

import "time"

// KPIDefinition is one row of the static kpi_catalog reference table. The
// SQLFormula is a parameterized query template with named placeholders such as
// :year or :project_id; it is stored as text and never executed by this service.
type KPIDefinition struct {
	KPIID           int       `json:"kpi_id"`
	Role            string    `json:"role"`
	KPIName         string    `json:"kpi_name"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	SQLFormula      string    `json:"sql_formula"`
	DataSources     string    `json:"data_sources"`
	CalculationType string    `json:"calculation_type"`
	Unit            string    `json:"unit"`
	TargetValue     *float64  `json:"target_value,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
