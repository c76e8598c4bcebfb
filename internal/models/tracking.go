package models

import "time"

type Defect struct {
	DefectID     int        `json:"defect_id"`
	ProjectID    int        `json:"project_id"`
	Severity     string     `json:"severity"`
	ReportedDate time.Time  `json:"reported_date"`
	ReportedBy   string     `json:"reported_by"`
	Environment  string     `json:"environment"` // QA, UAT, PROD
	Status       string     `json:"status"`
	ClosedDate   *time.Time `json:"closed_date,omitempty"`
}

type Issue struct {
	IssueID          int        `json:"issue_id"`
	ProjectID        int        `json:"project_id"`
	IssueType        string     `json:"issue_type"`
	Priority         string     `json:"priority"`
	ReportedDate     time.Time  `json:"reported_date"`
	ResolvedDate     *time.Time `json:"resolved_date,omitempty"`
	ReportedByClient string     `json:"reported_by_client"`
	Status           string     `json:"status"`
}

type TimeEntry struct {
	TimeEntryID int       `json:"time_entry_id"`
	ProjectID   int       `json:"project_id"`
	EmployeeID  int       `json:"employee_id"`
	Date        time.Time `json:"date"`
	Hours       float64   `json:"hours"`
	IsBillable  int       `json:"is_billable"` // 1 = billable, 0 = non-billable
}
