package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func nullableDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func copyInto(ctx context.Context, pool *pgxpool.Pool, table string, columns []string, rows [][]interface{}) error {
	n, err := pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("bulk insert into %s failed: %w", table, err)
	}
	log.Printf("Inserted %d rows into %s", n, table)
	return nil
}

// Insert bulk-loads the dataset, parents before children so every foreign key
// target exists by the time its referencing rows arrive.
func Insert(ctx context.Context, pool *pgxpool.Pool, ds *Dataset) error {
	companies := make([][]interface{}, 0, len(ds.Companies))
	for _, c := range ds.Companies {
		companies = append(companies, []interface{}{c.CompanyID, c.CompanyName, c.Industry, c.HQLocation, c.Website, c.CreatedAt})
	}
	if err := copyInto(ctx, pool, "companies",
		[]string{"company_id", "company_name", "industry", "hq_location", "website", "created_at"}, companies); err != nil {
		return err
	}

	revenues := make([][]interface{}, 0, len(ds.Revenues))
	for _, r := range ds.Revenues {
		revenues = append(revenues, []interface{}{r.RevenueID, r.CompanyID, r.RevenueAmount, r.RevenueDate})
	}
	if err := copyInto(ctx, pool, "company_revenue",
		[]string{"revenue_id", "company_id", "revenue_amount", "revenue_date"}, revenues); err != nil {
		return err
	}

	clients := make([][]interface{}, 0, len(ds.Clients))
	for _, c := range ds.Clients {
		clients = append(clients, []interface{}{c.ClientID, c.CompanyID, c.Name, c.Industry, c.Country, c.ContactEmail})
	}
	if err := copyInto(ctx, pool, "clients",
		[]string{"client_id", "company_id", "name", "industry", "country", "contact_email"}, clients); err != nil {
		return err
	}

	categories := make([][]interface{}, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		categories = append(categories, []interface{}{c.CategoryID, c.Name, c.Description})
	}
	if err := copyInto(ctx, pool, "project_categories",
		[]string{"category_id", "name", "description"}, categories); err != nil {
		return err
	}

	projects := make([][]interface{}, 0, len(ds.Projects))
	for _, p := range ds.Projects {
		projects = append(projects, []interface{}{
			p.ProjectID, p.ProjectCode, p.Name, p.ClientID, p.CompanyID, p.CategoryID,
			p.StartDate, p.PlannedEndDate, nullableDate(p.ActualEndDate), p.Status, p.Budget,
		})
	}
	if err := copyInto(ctx, pool, "projects",
		[]string{"project_id", "project_code", "name", "client_id", "company_id", "category_id",
			"start_date", "planned_end_date", "actual_end_date", "status", "budget"}, projects); err != nil {
		return err
	}

	details := make([][]interface{}, 0, len(ds.Details))
	for _, d := range ds.Details {
		details = append(details, []interface{}{d.DetailID, d.ProjectID, d.TechnologyStack, d.Methodology})
	}
	if err := copyInto(ctx, pool, "project_details",
		[]string{"detail_id", "project_id", "technology_stack", "methodology"}, details); err != nil {
		return err
	}

	employees := make([][]interface{}, 0, len(ds.Employees))
	for _, e := range ds.Employees {
		employees = append(employees, []interface{}{e.EmployeeID, e.CompanyID, e.FirstName, e.LastName, e.Role, e.Department})
	}
	if err := copyInto(ctx, pool, "employees",
		[]string{"employee_id", "company_id", "first_name", "last_name", "role", "department"}, employees); err != nil {
		return err
	}

	team := make([][]interface{}, 0, len(ds.TeamMembers))
	for _, t := range ds.TeamMembers {
		team = append(team, []interface{}{t.ID, t.ProjectID, t.EmployeeID, t.RoleInProject, t.AllocationPercentage})
	}
	if err := copyInto(ctx, pool, "team_members",
		[]string{"id", "project_id", "employee_id", "role_in_project", "allocation_percentage"}, team); err != nil {
		return err
	}

	goals := make([][]interface{}, 0, len(ds.Goals))
	for _, g := range ds.Goals {
		goals = append(goals, []interface{}{g.GoalID, g.ProjectID, g.Title, g.Description, g.Status})
	}
	if err := copyInto(ctx, pool, "project_goals",
		[]string{"goal_id", "project_id", "title", "description", "status"}, goals); err != nil {
		return err
	}

	milestones := make([][]interface{}, 0, len(ds.Milestones))
	for _, m := range ds.Milestones {
		milestones = append(milestones, []interface{}{m.MilestoneID, m.ProjectID, m.Name, m.PlannedDate, nullableDate(m.ActualDate), m.Status})
	}
	if err := copyInto(ctx, pool, "milestones",
		[]string{"milestone_id", "project_id", "name", "planned_date", "actual_date", "status"}, milestones); err != nil {
		return err
	}

	defects := make([][]interface{}, 0, len(ds.Defects))
	for _, d := range ds.Defects {
		defects = append(defects, []interface{}{d.DefectID, d.ProjectID, d.Severity, d.ReportedDate, d.ReportedBy, d.Environment, d.Status, nullableDate(d.ClosedDate)})
	}
	if err := copyInto(ctx, pool, "defects",
		[]string{"defect_id", "project_id", "severity", "reported_date", "reported_by", "environment", "status", "closed_date"}, defects); err != nil {
		return err
	}

	issues := make([][]interface{}, 0, len(ds.Issues))
	for _, i := range ds.Issues {
		issues = append(issues, []interface{}{i.IssueID, i.ProjectID, i.IssueType, i.Priority, i.ReportedDate, nullableDate(i.ResolvedDate), i.ReportedByClient, i.Status})
	}
	if err := copyInto(ctx, pool, "issues",
		[]string{"issue_id", "project_id", "issue_type", "priority", "reported_date", "resolved_date", "reported_by_client", "status"}, issues); err != nil {
		return err
	}

	entries := make([][]interface{}, 0, len(ds.TimeEntries))
	for _, t := range ds.TimeEntries {
		entries = append(entries, []interface{}{t.TimeEntryID, t.ProjectID, t.EmployeeID, t.Date, t.Hours, t.IsBillable})
	}
	if err := copyInto(ctx, pool, "time_entry",
		[]string{"time_entry_id", "project_id", "employee_id", "date", "hours", "is_billable"}, entries); err != nil {
		return err
	}

	costs := make([][]interface{}, 0, len(ds.Costs))
	for _, c := range ds.Costs {
		costs = append(costs, []interface{}{c.CostID, c.ProjectID, c.CostType, c.PlannedCost, c.ActualCost, c.RecordedDate})
	}
	if err := copyInto(ctx, pool, "project_cost",
		[]string{"cost_id", "project_id", "cost_type", "planned_cost", "actual_cost", "recorded_date"}, costs); err != nil {
		return err
	}

	exits := make([][]interface{}, 0, len(ds.Exits))
	for _, e := range ds.Exits {
		exits = append(exits, []interface{}{e.ExitID, e.EmployeeID, e.ExitDate, e.Reason, e.IsRegretted})
	}
	if err := copyInto(ctx, pool, "employee_exit",
		[]string{"exit_id", "employee_id", "exit_date", "reason", "is_regretted"}, exits); err != nil {
		return err
	}

	hiring := make([][]interface{}, 0, len(ds.Hiring))
	for _, h := range ds.Hiring {
		hiring = append(hiring, []interface{}{
			h.HiringID, h.Position, h.Department, h.OpenedDate, nullableDate(h.ClosedDate),
			h.ApplicantName, nullableDate(h.OfferMadeDate), nullableDate(h.OfferAcceptedDate), h.Status,
		})
	}
	if err := copyInto(ctx, pool, "hiring_pipeline",
		[]string{"hiring_id", "position", "department", "opened_date", "closed_date",
			"applicant_name", "offer_made_date", "offer_accepted_date", "status"}, hiring); err != nil {
		return err
	}

	trainings := make([][]interface{}, 0, len(ds.Trainings))
	for _, t := range ds.Trainings {
		trainings = append(trainings, []interface{}{t.TrainingID, t.EmployeeID, t.CourseName, t.AssignedDate, nullableDate(t.CompletedDate)})
	}
	if err := copyInto(ctx, pool, "training_attendance",
		[]string{"training_id", "employee_id", "course_name", "assigned_date", "completed_date"}, trainings); err != nil {
		return err
	}

	kpis := make([][]interface{}, 0, len(ds.KPIs))
	for _, k := range ds.KPIs {
		kpis = append(kpis, []interface{}{k.KPIID, k.Role, k.KPIName, k.Category, k.Description, k.SQLFormula, k.DataSources, k.CalculationType, k.Unit, k.TargetValue})
	}
	if err := copyInto(ctx, pool, "kpi_catalog",
		[]string{"kpi_id", "role", "kpi_name", "category", "description", "sql_formula", "data_sources", "calculation_type", "unit", "target_value"}, kpis); err != nil {
		return err
	}

	return nil
}
