package models

import "time"

// TaskAssignment links a task to an employee with the hours booked for that
// pairing. Unique per (task, employee); the primary assignee is tracked
// separately on the task itself and the assign operation keeps both in sync.
type TaskAssignment struct {
	ID            int       `json:"id"`
	TaskID        int       `json:"task_id"`
	EmployeeID    int       `json:"employee_id"`
	AssignedHours int       `json:"assigned_hours"`
	AssignedDate  string    `json:"assigned_date"`
	CreatedAt     time.Time `json:"created_at"`

	// Joined employee columns, populated by list queries.
	Name           string `json:"name,omitempty"`
	EmployeeNumber string `json:"employee_number,omitempty"`
}
