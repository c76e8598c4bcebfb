package models

import "time"

type Employee struct {
	EmployeeID int    `json:"employee_id"`
	CompanyID  int    `json:"company_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type TeamMember struct {
	ID                   int    `json:"id"`
	ProjectID            int    `json:"project_id"`
	EmployeeID           int    `json:"employee_id"`
	RoleInProject        string `json:"role_in_project"`
	AllocationPercentage int    `json:"allocation_percentage"`
}

type EmployeeExit struct {
	ExitID      int       `json:"exit_id"`
	EmployeeID  int       `json:"employee_id"`
	ExitDate    time.Time `json:"exit_date"`
	Reason      string    `json:"reason"`
	IsRegretted int       `json:"is_regretted"` // 1 = regretted attrition
}

type HiringPipeline struct {
	HiringID          int        `json:"hiring_id"`
	Position          string     `json:"position"`
	Department        string     `json:"department"`
	OpenedDate        time.Time  `json:"opened_date"`
	ClosedDate        *time.Time `json:"closed_date,omitempty"`
	ApplicantName     string     `json:"applicant_name"`
	OfferMadeDate     *time.Time `json:"offer_made_date,omitempty"`
	OfferAcceptedDate *time.Time `json:"offer_accepted_date,omitempty"`
	Status            string     `json:"status"` // open, closed, hired
}

type TrainingAttendance struct {
	TrainingID    int        `json:"training_id"`
	EmployeeID    int        `json:"employee_id"`
	CourseName    string     `json:"course_name"`
	AssignedDate  time.Time  `json:"assigned_date"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}
