package model

import "time"

// Employee is the management view of a staff member, richer than User
type Employee struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	HireDate   time.Time `json:"hire_date"`
	IsActive   bool      `json:"is_active"`
}

// Department is a lookup value used by the employee management form
type Department struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Position is a lookup value used by the employee management form
type Position struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DashboardStats is the aggregate the backend computes for dashboard views
type DashboardStats struct {
	TotalEmployees  int `json:"total_employees"`
	ActiveSchedules int `json:"active_schedules"`
	PendingLeaves   int `json:"pending_leaves"`
	OpenTrades      int `json:"open_trades"`

	// Employee dashboard fields
	UpcomingShifts  int `json:"upcoming_shifts"`
	HoursThisWeek   int `json:"hours_this_week"`
	PendingRequests int `json:"pending_requests"`
}
