package models

import "time"

type Company struct {
	CompanyID   int       `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	HQLocation  string    `json:"hq_location"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

type CompanyRevenue struct {
	RevenueID     int       `json:"revenue_id"`
	CompanyID     int       `json:"company_id"`
	RevenueAmount float64   `json:"revenue_amount"`
	RevenueDate   time.Time `json:"revenue_date"`
}

type Client struct {
	ClientID     int    `json:"client_id"`
	CompanyID    int    `json:"company_id"`
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Country      string `json:"country"`
	ContactEmail string `json:"contact_email"`
}
