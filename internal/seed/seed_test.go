package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	return Config{
		Companies:         5,
		ClientsPerCompany: 4,
		Projects:          10,
		Employees:         30,
		RevenueMonths:     6,
		TimeEntries:       50,
		HiringRows:        4,
		Seed:              42,
	}
}

func TestGenerate_RowCounts(t *testing.T) {
	cfg := smallConfig()
	ds := Generate(cfg)

	assert.Len(t, ds.Companies, cfg.Companies)
	assert.Len(t, ds.Revenues, cfg.Companies*cfg.RevenueMonths)
	assert.Len(t, ds.Clients, cfg.Companies*cfg.ClientsPerCompany)
	assert.Len(t, ds.Categories, len(categoryNames))
	assert.Len(t, ds.Projects, cfg.Projects)
	assert.Len(t, ds.Details, cfg.Projects)
	assert.Len(t, ds.Employees, cfg.Employees)
	assert.Len(t, ds.Milestones, cfg.Projects*2)
	assert.Len(t, ds.TimeEntries, cfg.TimeEntries)
	assert.Len(t, ds.Hiring, cfg.HiringRows)
	assert.Len(t, ds.KPIs, 7)
	assert.Equal(t,
		len(ds.Companies)+len(ds.Revenues)+len(ds.Clients)+len(ds.Categories)+
			len(ds.Projects)+len(ds.Details)+len(ds.Employees)+len(ds.TeamMembers)+
			len(ds.Goals)+len(ds.Milestones)+len(ds.Defects)+len(ds.Issues)+
			len(ds.TimeEntries)+len(ds.Costs)+len(ds.Exits)+len(ds.Hiring)+
			len(ds.Trainings)+len(ds.KPIs),
		ds.RowCount())
}

func TestGenerate_ForeignKeysResolve(t *testing.T) {
	ds := Generate(smallConfig())

	companies := idSet(t, len(ds.Companies), func(i int) int { return ds.Companies[i].CompanyID })
	clients := idSet(t, len(ds.Clients), func(i int) int { return ds.Clients[i].ClientID })
	categories := idSet(t, len(ds.Categories), func(i int) int { return ds.Categories[i].CategoryID })
	projects := idSet(t, len(ds.Projects), func(i int) int { return ds.Projects[i].ProjectID })
	employees := idSet(t, len(ds.Employees), func(i int) int { return ds.Employees[i].EmployeeID })

	for _, r := range ds.Revenues {
		assert.Contains(t, companies, r.CompanyID)
	}
	for _, c := range ds.Clients {
		assert.Contains(t, companies, c.CompanyID)
	}
	for _, p := range ds.Projects {
		assert.Contains(t, clients, p.ClientID)
		assert.Contains(t, companies, p.CompanyID)
		assert.Contains(t, categories, p.CategoryID)
	}
	for _, d := range ds.Details {
		assert.Contains(t, projects, d.ProjectID)
	}
	for _, e := range ds.Employees {
		assert.Contains(t, companies, e.CompanyID)
	}
	for _, tm := range ds.TeamMembers {
		assert.Contains(t, projects, tm.ProjectID)
		assert.Contains(t, employees, tm.EmployeeID)
	}
	for _, g := range ds.Goals {
		assert.Contains(t, projects, g.ProjectID)
	}
	for _, m := range ds.Milestones {
		assert.Contains(t, projects, m.ProjectID)
	}
	for _, d := range ds.Defects {
		assert.Contains(t, projects, d.ProjectID)
	}
	for _, i := range ds.Issues {
		assert.Contains(t, projects, i.ProjectID)
	}
	for _, te := range ds.TimeEntries {
		assert.Contains(t, projects, te.ProjectID)
		assert.Contains(t, employees, te.EmployeeID)
	}
	for _, c := range ds.Costs {
		assert.Contains(t, projects, c.ProjectID)
	}
	for _, e := range ds.Exits {
		assert.Contains(t, employees, e.EmployeeID)
	}
	for _, tr := range ds.Trainings {
		assert.Contains(t, employees, tr.EmployeeID)
	}
}

// idSet collects ids and fails on duplicates, so it doubles as a primary key
// uniqueness check.
func idSet(t *testing.T, n int, id func(i int) int) map[int]bool {
	t.Helper()
	set := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		require.False(t, set[v], "duplicate id %d", v)
		set[v] = true
	}
	return set
}

func TestGenerate_ProjectCodesUnique(t *testing.T) {
	ds := Generate(smallConfig())

	seen := make(map[string]bool, len(ds.Projects))
	for _, p := range ds.Projects {
		require.NotEmpty(t, p.ProjectCode)
		require.False(t, seen[p.ProjectCode], "duplicate project code %s", p.ProjectCode)
		seen[p.ProjectCode] = true
	}
	assert.Equal(t, "PRJ1000", ds.Projects[0].ProjectCode)
}

func TestGenerate_DistinctTeamMembersPerProject(t *testing.T) {
	ds := Generate(smallConfig())

	perProject := make(map[int]map[int]bool)
	for _, tm := range ds.TeamMembers {
		if perProject[tm.ProjectID] == nil {
			perProject[tm.ProjectID] = make(map[int]bool)
		}
		require.False(t, perProject[tm.ProjectID][tm.EmployeeID],
			"employee %d assigned twice to project %d", tm.EmployeeID, tm.ProjectID)
		perProject[tm.ProjectID][tm.EmployeeID] = true
	}
	for projectID, members := range perProject {
		assert.LessOrEqual(t, len(members), 5, "project %d", projectID)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := smallConfig()

	first := Generate(cfg)
	second := Generate(cfg)
	assert.Equal(t, first.Companies, second.Companies)
	assert.Equal(t, first.Projects, second.Projects)
	assert.Equal(t, first.TimeEntries, second.TimeEntries)
	assert.Equal(t, first.RowCount(), second.RowCount())

	cfg.Seed = 43
	other := Generate(cfg)
	assert.NotEqual(t, first.Companies, other.Companies)
}

func TestGenerate_ZeroConfigUsesDefaults(t *testing.T) {
	ds := Generate(Config{})
	def := DefaultConfig()

	assert.Len(t, ds.Companies, def.Companies)
	assert.Len(t, ds.Projects, def.Projects)
	assert.Len(t, ds.Employees, def.Employees)
}

func TestKPICatalog(t *testing.T) {
	kpis := kpiCatalog()
	require.Len(t, kpis, 7)

	names := make(map[string]bool)
	for _, k := range kpis {
		require.NotEmpty(t, k.KPIName)
		require.NotEmpty(t, k.SQLFormula)
		require.False(t, names[k.KPIName], "duplicate KPI %s", k.KPIName)
		names[k.KPIName] = true
	}
	assert.True(t, names["Total Revenue"])
	assert.True(t, names["On-time Delivery Rate"])
}
