package models

import "time"

// Employee is a member of the firm's staff. capacity_hours is the monthly
// budget used by the workload view (default 160 = 8h x 20 workdays).
type Employee struct {
	ID             int       `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	CapacityHours  int       `json:"capacity_hours"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	CapacityHours  int    `json:"capacity_hours"`
}

// UpdateEmployeeRequest represents the request body for updating an employee
type UpdateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	CapacityHours  int    `json:"capacity_hours"`
}

// EmployeeWorkload is the capacity view for one employee: the active tasks
// they are primary assignee on, the hours booked against them in the
// assignment table, and what is left of their monthly capacity. Available
// capacity goes negative when an employee is overallocated; that signal is
// kept as-is.
type EmployeeWorkload struct {
	Employee           *Employee       `json:"employee"`
	Tasks              []*WorkloadTask `json:"tasks"`
	TotalAssignedHours int             `json:"totalAssignedHours"`
	AvailableCapacity  int             `json:"availableCapacity"`
}
