package models

import "time"

type ProjectCategory struct {
	CategoryID  int    `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Project struct {
	ProjectID      int        `json:"project_id"`
	ProjectCode    string     `json:"project_code"`
	Name           string     `json:"name"`
	ClientID       int        `json:"client_id"`
	CompanyID      int        `json:"company_id"`
	CategoryID     int        `json:"category_id"`
	StartDate      time.Time  `json:"start_date"`
	PlannedEndDate time.Time  `json:"planned_end_date"`
	ActualEndDate  *time.Time `json:"actual_end_date,omitempty"`
	Status         string     `json:"status"`
	Budget         float64    `json:"budget"`
}

type ProjectDetail struct {
	DetailID        int    `json:"detail_id"`
	ProjectID       int    `json:"project_id"`
	TechnologyStack string `json:"technology_stack"`
	Methodology     string `json:"methodology"`
}

type ProjectGoal struct {
	GoalID      int    `json:"goal_id"`
	ProjectID   int    `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type Milestone struct {
	MilestoneID int        `json:"milestone_id"`
	ProjectID   int        `json:"project_id"`
	Name        string     `json:"name"`
	PlannedDate time.Time  `json:"planned_date"`
	ActualDate  *time.Time `json:"actual_date,omitempty"`
	Status      string     `json:"status"`
}

type ProjectCost struct {
	CostID       int       `json:"cost_id"`
	ProjectID    int       `json:"project_id"`
	CostType     string    `json:"cost_type"` // labor, infra, misc
	PlannedCost  float64   `json:"planned_cost"`
	ActualCost   float64   `json:"actual_cost"`
	RecordedDate time.Time `json:"recorded_date"`
}
