package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TableNames lists every application table in dependency order, parents first.
var TableNames = []string{
	"companies",
	"company_revenue",
	"clients",
	"project_categories",
	"projects",
	"project_details",
	"employees",
	"team_members",
	"project_goals",
	"milestones",
	"defects",
	"issues",
	"time_entry",
	"project_cost",
	"employee_exit",
	"hiring_pipeline",
	"training_attendance",
	"kpi_catalog",
}

// ResetSchema drops and recreates every table of the KPI schema. This is a
// full destructive reset, not a migration: any existing rows are lost.
func ResetSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, dropAllTables); err != nil {
		return fmt.Errorf("failed to drop existing tables: %w", err)
	}

	statements := []string{
		createCompaniesTable,
		createCompanyRevenueTable,
		createClientsTable,
		createProjectCategoriesTable,
		createProjectsTable,
		createProjectDetailsTable,
		createEmployeesTable,
		createTeamMembersTable,
		createProjectGoalsTable,
		createMilestonesTable,
		createDefectsTable,
		createIssuesTable,
		createTimeEntryTable,
		createProjectCostTable,
		createEmployeeExitTable,
		createHiringPipelineTable,
		createTrainingAttendanceTable,
		createKPICatalogTable,
	}

	for i, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create statement %d/%d failed: %w", i+1, len(statements), err)
		}
	}

	log.Printf("Schema reset complete: %d tables created", len(statements))
	return nil
}

const dropAllTables = `
DROP TABLE IF EXISTS
  training_attendance,
  hiring_pipeline,
  employee_exit,
  project_cost,
  time_entry,
  issues,
  defects,
  milestones,
  project_goals,
  team_members,
  project_details,
  projects,
  employees,
  project_categories,
  clients,
  company_revenue,
  companies,
  kpi_catalog
CASCADE;
`

const createCompaniesTable = `
CREATE TABLE companies (
  company_id SERIAL PRIMARY KEY,
  company_name VARCHAR(200) NOT NULL,
  industry VARCHAR(100),
  hq_location VARCHAR(100),
  website VARCHAR(250),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const createCompanyRevenueTable = `
CREATE TABLE company_revenue (
  revenue_id SERIAL PRIMARY KEY,
  company_id INT NOT NULL REFERENCES companies(company_id),
  revenue_amount NUMERIC(14,2) NOT NULL,
  revenue_date DATE NOT NULL
);

CREATE INDEX idx_company_revenue_company_id ON company_revenue(company_id);
CREATE INDEX idx_company_revenue_date ON company_revenue(revenue_date);
`

const createClientsTable = `
CREATE TABLE clients (
  client_id SERIAL PRIMARY KEY,
  company_id INT NOT NULL REFERENCES companies(company_id),
  name VARCHAR(200) NOT NULL,
  industry VARCHAR(100),
  country VARCHAR(100),
  contact_email VARCHAR(200)
);

CREATE INDEX idx_clients_company_id ON clients(company_id);
`

const createProjectCategoriesTable = `
CREATE TABLE project_categories (
  category_id SERIAL PRIMARY KEY,
  name VARCHAR(200) NOT NULL,
  description TEXT
);
`

const createProjectsTable = `
CREATE TABLE projects (
  project_id SERIAL PRIMARY KEY,
  project_code VARCHAR(50) UNIQUE,
  name VARCHAR(200),
  client_id INT REFERENCES clients(client_id),
  company_id INT REFERENCES companies(company_id),
  category_id INT REFERENCES project_categories(category_id),
  start_date DATE,
  planned_end_date DATE,
  actual_end_date DATE,
  status VARCHAR(50),
  budget NUMERIC(14,2)
);

CREATE INDEX idx_projects_client_id ON projects(client_id);
CREATE INDEX idx_projects_company_id ON projects(company_id);
CREATE INDEX idx_projects_status ON projects(status);
`

const createProjectDetailsTable = `
CREATE TABLE project_details (
  detail_id SERIAL PRIMARY KEY,
  project_id INT REFERENCES projects(project_id),
  technology_stack VARCHAR(200),
  methodology VARCHAR(100)
);
`

const createEmployeesTable = `
CREATE TABLE employees (
  employee_id SERIAL PRIMARY KEY,
  company_id INT REFERENCES companies(company_id),
  first_name VARCHAR(150),
  last_name VARCHAR(150),
  role VARCHAR(100),
  department VARCHAR(100)
);

CREATE INDEX idx_employees_company_id ON employees(company_id);
`

const createTeamMembersTable = `
CREATE TABLE team_members (
  id SERIAL PRIMARY KEY,
  project_id INT REFERENCES projects(project_id),
  employee_id INT REFERENCES employees(employee_id),
  role_in_project VARCHAR(100),
  allocation_percentage INT
);

CREATE INDEX idx_team_members_project_id ON team_members(project_id);
CREATE INDEX idx_team_members_employee_id ON team_members(employee_id);
`

const createProjectGoalsTable = `
CREATE TABLE project_goals (
  goal_id SERIAL PRIMARY KEY,
  project_id INT REFERENCES projects(project_id),
  title VARCHAR(250),
  description TEXT,
  status VARCHAR(50)
);

CREATE INDEX idx_project_goals_project_id ON project_goals(project_id);
`

const createMilestonesTable = `
CREATE TABLE milestones (
  milestone_id SERIAL PRIMARY KEY,
  project_id INT NOT NULL REFERENCES projects(project_id),
  name VARCHAR(255) NOT NULL,
  planned_date DATE NOT NULL,
  actual_date DATE,
  status VARCHAR(50)
);

CREATE INDEX idx_milestones_project_id ON milestones(project_id);
`

const createDefectsTable = `
CREATE TABLE defects (
  defect_id SERIAL PRIMARY KEY,
  project_id INT NOT NULL REFERENCES projects(project_id),
  severity VARCHAR(50),
  reported_date DATE,
  reported_by VARCHAR(255),
  environment VARCHAR(50),
  status VARCHAR(50),
  closed_date DATE
);

CREATE INDEX idx_defects_project_id ON defects(project_id);
`

const createIssuesTable = `
CREATE TABLE issues (
  issue_id SERIAL PRIMARY KEY,
  project_id INT NOT NULL REFERENCES projects(project_id),
  issue_type VARCHAR(100),
  priority VARCHAR(50),
  reported_date DATE,
  resolved_date DATE,
  reported_by_client VARCHAR(255),
  status VARCHAR(50)
);

CREATE INDEX idx_issues_project_id ON issues(project_id);
`

const createTimeEntryTable = `
CREATE TABLE time_entry (
  time_entry_id SERIAL PRIMARY KEY,
  project_id INT NOT NULL REFERENCES projects(project_id),
  employee_id INT NOT NULL REFERENCES employees(employee_id),
  date DATE NOT NULL,
  hours DOUBLE PRECISION NOT NULL,
  is_billable INT
);

CREATE INDEX idx_time_entry_project_id ON time_entry(project_id);
CREATE INDEX idx_time_entry_employee_id ON time_entry(employee_id);
`

const createProjectCostTable = `
CREATE TABLE project_cost (
  cost_id SERIAL PRIMARY KEY,
  project_id INT NOT NULL REFERENCES projects(project_id),
  cost_type VARCHAR(255),
  planned_cost DOUBLE PRECISION,
  actual_cost DOUBLE PRECISION,
  recorded_date DATE
);

CREATE INDEX idx_project_cost_project_id ON project_cost(project_id);
`

const createEmployeeExitTable = `
CREATE TABLE employee_exit (
  exit_id SERIAL PRIMARY KEY,
  employee_id INT NOT NULL REFERENCES employees(employee_id),
  exit_date DATE,
  reason VARCHAR(255),
  is_regretted INT
);

CREATE INDEX idx_employee_exit_employee_id ON employee_exit(employee_id);
`

const createHiringPipelineTable = `
CREATE TABLE hiring_pipeline (
  hiring_id SERIAL PRIMARY KEY,
  position VARCHAR(255) NOT NULL,
  department VARCHAR(255),
  opened_date DATE,
  closed_date DATE,
  applicant_name VARCHAR(255),
  offer_made_date DATE,
  offer_accepted_date DATE,
  status VARCHAR(50)
);
`

const createTrainingAttendanceTable = `
CREATE TABLE training_attendance (
  training_id SERIAL PRIMARY KEY,
  employee_id INT REFERENCES employees(employee_id),
  course_name VARCHAR(255),
  assigned_date DATE,
  completed_date DATE
);

CREATE INDEX idx_training_attendance_employee_id ON training_attendance(employee_id);
`

const createKPICatalogTable = `
CREATE TABLE kpi_catalog (
  kpi_id SERIAL PRIMARY KEY,
  role VARCHAR(300) NOT NULL,
  kpi_name VARCHAR(200) NOT NULL,
  category VARCHAR(100) NOT NULL,
  description TEXT,
  sql_formula TEXT NOT NULL,
  data_sources VARCHAR(300),
  calculation_type VARCHAR(50),
  unit VARCHAR(20),
  target_value NUMERIC(14,2),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
