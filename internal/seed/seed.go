package seed

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"kpi_platform/internal/models"
)

// Config holds the target row counts per entity. Zero values fall back to the
// defaults below via Normalize.
type Config struct {
	Companies         int
	ClientsPerCompany int
	Projects          int
	Employees         int
	RevenueMonths     int
	TimeEntries       int
	HiringRows        int
	Seed              uint64
}

func DefaultConfig() Config {
	return Config{
		Companies:         50,
		ClientsPerCompany: 20,
		Projects:          100,
		Employees:         1500,
		RevenueMonths:     36,
		TimeEntries:       1000,
		HiringRows:        12,
	}
}

func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Companies <= 0 {
		c.Companies = def.Companies
	}
	if c.ClientsPerCompany <= 0 {
		c.ClientsPerCompany = def.ClientsPerCompany
	}
	if c.Projects <= 0 {
		c.Projects = def.Projects
	}
	if c.Employees <= 0 {
		c.Employees = def.Employees
	}
	if c.RevenueMonths <= 0 {
		c.RevenueMonths = def.RevenueMonths
	}
	if c.TimeEntries <= 0 {
		c.TimeEntries = def.TimeEntries
	}
	if c.HiringRows <= 0 {
		c.HiringRows = def.HiringRows
	}
}

// Dataset is a fully generated, referentially consistent set of rows ready for
// bulk insert. IDs are assigned client-side, parents before children, so every
// foreign key points at a row that exists within the same dataset.
type Dataset struct {
	Companies   []models.Company
	Revenues    []models.CompanyRevenue
	Clients     []models.Client
	Categories  []models.ProjectCategory
	Projects    []models.Project
	Details     []models.ProjectDetail
	Employees   []models.Employee
	TeamMembers []models.TeamMember
	Goals       []models.ProjectGoal
	Milestones  []models.Milestone
	Defects     []models.Defect
	Issues      []models.Issue
	TimeEntries []models.TimeEntry
	Costs       []models.ProjectCost
	Exits       []models.EmployeeExit
	Hiring      []models.HiringPipeline
	Trainings   []models.TrainingAttendance
	KPIs        []models.KPIDefinition
}

func (d *Dataset) RowCount() int {
	return len(d.Companies) + len(d.Revenues) + len(d.Clients) + len(d.Categories) +
		len(d.Projects) + len(d.Details) + len(d.Employees) + len(d.TeamMembers) +
		len(d.Goals) + len(d.Milestones) + len(d.Defects) + len(d.Issues) +
		len(d.TimeEntries) + len(d.Costs) + len(d.Exits) + len(d.Hiring) +
		len(d.Trainings) + len(d.KPIs)
}

// Generate produces a dataset for the given config. The same config and seed
// always produce the same dataset.
func Generate(cfg Config) *Dataset {
	cfg.Normalize()
	f := gofakeit.New(cfg.Seed)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	ds := &Dataset{}

	// Companies
	for i := 0; i < cfg.Companies; i++ {
		ds.Companies = append(ds.Companies, models.Company{
			CompanyID:   i + 1,
			CompanyName: f.Company(),
			Industry:    f.BS(),
			HQLocation:  f.City(),
			Website:     f.URL(),
			CreatedAt:   today,
		})
	}

	// Company revenue: one row per company per month, walking back from today.
	revenueID := 1
	for _, c := range ds.Companies {
		for m := 0; m < cfg.RevenueMonths; m++ {
			ds.Revenues = append(ds.Revenues, models.CompanyRevenue{
				RevenueID:     revenueID,
				CompanyID:     c.CompanyID,
				RevenueAmount: float64(f.Number(50000, 400000)),
				RevenueDate:   today.AddDate(0, 0, -m*30),
			})
			revenueID++
		}
	}

	// Clients
	clientID := 1
	for _, c := range ds.Companies {
		for i := 0; i < cfg.ClientsPerCompany; i++ {
			ds.Clients = append(ds.Clients, models.Client{
				ClientID:     clientID,
				CompanyID:    c.CompanyID,
				Name:         f.Company(),
				Industry:     f.RandomString(clientIndustries),
				Country:      f.Country(),
				ContactEmail: f.Email(),
			})
			clientID++
		}
	}

	// Project categories
	for i, name := range categoryNames {
		ds.Categories = append(ds.Categories, models.ProjectCategory{
			CategoryID:  i + 1,
			Name:        name,
			Description: fmt.Sprintf("%s projects", name),
		})
	}

	// Projects. The client and the owning company are picked independently,
	// matching the source data this schema was modeled on.
	for i := 0; i < cfg.Projects; i++ {
		start := today.AddDate(0, 0, -f.Number(30, 500))
		plannedEnd := start.AddDate(0, 0, f.Number(50, 150))
		actualEnd := plannedEnd.AddDate(0, 0, f.Number(-10, 40))
		ds.Projects = append(ds.Projects, models.Project{
			ProjectID:      i + 1,
			ProjectCode:    fmt.Sprintf("PRJ%d", i+1000),
			Name:           fmt.Sprintf("Project_%d", i),
			ClientID:       ds.Clients[f.Number(0, len(ds.Clients)-1)].ClientID,
			CompanyID:      ds.Companies[f.Number(0, len(ds.Companies)-1)].CompanyID,
			CategoryID:     ds.Categories[f.Number(0, len(ds.Categories)-1)].CategoryID,
			StartDate:      start,
			PlannedEndDate: plannedEnd,
			ActualEndDate:  &actualEnd,
			Status:         f.RandomString(projectStatuses),
			Budget:         float64(f.Number(50000, 500000)),
		})
	}

	// Project details, 1:1 with projects.
	for _, p := range ds.Projects {
		ds.Details = append(ds.Details, models.ProjectDetail{
			DetailID:        p.ProjectID,
			ProjectID:       p.ProjectID,
			TechnologyStack: f.RandomString(technologyStacks),
			Methodology:     f.RandomString(methodologies),
		})
	}

	// Employees
	for i := 0; i < cfg.Employees; i++ {
		ds.Employees = append(ds.Employees, models.Employee{
			EmployeeID: i + 1,
			CompanyID:  ds.Companies[f.Number(0, len(ds.Companies)-1)].CompanyID,
			FirstName:  f.FirstName(),
			LastName:   f.LastName(),
			Role:       f.RandomString(employeeRoles),
			Department: f.RandomString(departments),
		})
	}

	// Team members: up to 5 distinct employees per project.
	teamID := 1
	for _, p := range ds.Projects {
		for _, empIdx := range sampleIndexes(f, len(ds.Employees), 5) {
			ds.TeamMembers = append(ds.TeamMembers, models.TeamMember{
				ID:                   teamID,
				ProjectID:            p.ProjectID,
				EmployeeID:           ds.Employees[empIdx].EmployeeID,
				RoleInProject:        f.RandomString(teamRoles),
				AllocationPercentage: f.Number(20, 100),
			})
			teamID++
		}
	}

	// Project goals, 2-5 per project.
	goalID := 1
	for _, p := range ds.Projects {
		for i := 0; i < f.Number(2, 5); i++ {
			ds.Goals = append(ds.Goals, models.ProjectGoal{
				GoalID:      goalID,
				ProjectID:   p.ProjectID,
				Title:       f.BS(),
				Description: f.Sentence(8),
				Status:      f.RandomString(goalStatuses),
			})
			goalID++
		}
	}

	// Milestones, two per project, planned dates stepped from project start.
	milestoneID := 1
	for _, p := range ds.Projects {
		for m := 0; m < 2; m++ {
			planned := p.StartDate.AddDate(0, 0, 20*(m+1))
			actual := planned.AddDate(0, 0, f.Number(-5, 10))
			ds.Milestones = append(ds.Milestones, models.Milestone{
				MilestoneID: milestoneID,
				ProjectID:   p.ProjectID,
				Name:        fmt.Sprintf("%s - Milestone %d", p.Name, m+1),
				PlannedDate: planned,
				ActualDate:  &actual,
				Status:      f.RandomString(milestoneStatuses),
			})
			milestoneID++
		}
	}

	// Defects, 0-3 per project.
	defectID := 1
	for _, p := range ds.Projects {
		for i := 0; i < f.Number(0, 3); i++ {
			var closed *time.Time
			if f.Bool() {
				d := today
				closed = &d
			}
			ds.Defects = append(ds.Defects, models.Defect{
				DefectID:     defectID,
				ProjectID:    p.ProjectID,
				Severity:     f.RandomString(defectSeverities),
				ReportedDate: p.StartDate.AddDate(0, 0, f.Number(1, 40)),
				ReportedBy:   f.Name(),
				Environment:  f.RandomString(defectEnvironments),
				Status:       f.RandomString(defectStatuses),
				ClosedDate:   closed,
			})
			defectID++
		}
	}

	// Issues, 0-2 per project, ~60% resolved.
	issueID := 1
	for _, p := range ds.Projects {
		for i := 0; i < f.Number(0, 2); i++ {
			var resolved *time.Time
			if f.Number(0, 9) >= 4 {
				d := p.StartDate.AddDate(0, 0, f.Number(20, 80))
				resolved = &d
			}
			ds.Issues = append(ds.Issues, models.Issue{
				IssueID:          issueID,
				ProjectID:        p.ProjectID,
				IssueType:        f.RandomString(issueTypes),
				Priority:         f.RandomString(issuePriorities),
				ReportedDate:     p.StartDate.AddDate(0, 0, f.Number(1, 40)),
				ResolvedDate:     resolved,
				ReportedByClient: f.Company(),
				Status:           f.RandomString(issueStatuses),
			})
			issueID++
		}
	}

	// Time entries: round-robin over projects and employees, ~80% billable.
	for i := 0; i < cfg.TimeEntries; i++ {
		p := ds.Projects[i%len(ds.Projects)]
		e := ds.Employees[i%len(ds.Employees)]
		billable := 0
		if f.Number(0, 9) >= 2 {
			billable = 1
		}
		ds.TimeEntries = append(ds.TimeEntries, models.TimeEntry{
			TimeEntryID: i + 1,
			ProjectID:   p.ProjectID,
			EmployeeID:  e.EmployeeID,
			Date:        p.StartDate.AddDate(0, 0, f.Number(0, 90)),
			Hours:       math.Round(f.Float64Range(1.0, 8.0)*100) / 100,
			IsBillable:  billable,
		})
	}

	// Project costs, 1-3 per project.
	costID := 1
	for _, p := range ds.Projects {
		for i := 0; i < f.Number(1, 3); i++ {
			ds.Costs = append(ds.Costs, models.ProjectCost{
				CostID:       costID,
				ProjectID:    p.ProjectID,
				CostType:     f.RandomString(costTypes),
				PlannedCost:  math.Round(f.Float64Range(1000, 50000)*100) / 100,
				ActualCost:   math.Round(f.Float64Range(500, 60000)*100) / 100,
				RecordedDate: p.StartDate.AddDate(0, 0, f.Number(0, 120)),
			})
			costID++
		}
	}

	// Employee exits: ~5% of employees, at least one.
	exitCount := len(ds.Employees) / 20
	if exitCount < 1 {
		exitCount = 1
	}
	exitID := 1
	for _, empIdx := range sampleIndexes(f, len(ds.Employees), exitCount) {
		regretted := 0
		if f.Number(0, 9) >= 6 {
			regretted = 1
		}
		ds.Exits = append(ds.Exits, models.EmployeeExit{
			ExitID:      exitID,
			EmployeeID:  ds.Employees[empIdx].EmployeeID,
			ExitDate:    today.AddDate(0, 0, -f.Number(1, 400)),
			Reason:      f.RandomString(exitReasons),
			IsRegretted: regretted,
		})
		exitID++
	}

	// Hiring pipeline, standalone.
	for i := 0; i < cfg.HiringRows; i++ {
		row := models.HiringPipeline{
			HiringID:      i + 1,
			Position:      f.RandomString(hiringPositions),
			Department:    f.RandomString(hiringDepartments),
			OpenedDate:    today.AddDate(0, 0, -f.Number(1, 200)),
			ApplicantName: f.Name(),
			Status:        f.RandomString(hiringStatuses),
		}
		if f.Bool() {
			d := today.AddDate(0, 0, -f.Number(0, 100))
			row.ClosedDate = &d
		}
		if f.Number(0, 9) >= 6 {
			d := today.AddDate(0, 0, -f.Number(0, 60))
			row.OfferMadeDate = &d
		}
		if f.Number(0, 9) >= 7 {
			d := today.AddDate(0, 0, -f.Number(0, 30))
			row.OfferAcceptedDate = &d
		}
		ds.Hiring = append(ds.Hiring, row)
	}

	// Training attendance: roughly every third employee, ~60% completed.
	trainingID := 1
	for i, e := range ds.Employees {
		if i%3 != 0 {
			continue
		}
		var completed *time.Time
		if f.Number(0, 9) >= 4 {
			d := today.AddDate(0, 0, -f.Number(1, 50))
			completed = &d
		}
		ds.Trainings = append(ds.Trainings, models.TrainingAttendance{
			TrainingID:    trainingID,
			EmployeeID:    e.EmployeeID,
			CourseName:    f.RandomString(courseNames),
			AssignedDate:  today.AddDate(0, 0, -f.Number(10, 300)),
			CompletedDate: completed,
		})
		trainingID++
	}

	ds.KPIs = kpiCatalog()
	return ds
}

// sampleIndexes returns up to n distinct indexes in [0, size).
func sampleIndexes(f *gofakeit.Faker, size, n int) []int {
	if n > size {
		n = size
	}
	picked := make(map[int]bool, n)
	out := make([]int, 0, n)
	for len(out) < n {
		idx := f.Number(0, size-1)
		if picked[idx] {
			continue
		}
		picked[idx] = true
		out = append(out, idx)
	}
	return out
}
