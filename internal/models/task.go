package models

import "time"

// Task type and status enumerations. These back the metadata endpoints and
// are constants, never derived from data.
var (
	TaskTypes = []Option{
		{Value: "quarterly_admin", Label: "Quarterly Administration"},
		{Value: "btw_icp", Label: "BTW/ICP Filings"},
		{Value: "salaries", Label: "Salaries Processing"},
		{Value: "annual_accounts", Label: "Annual Accounts"},
		{Value: "advisory", Label: "Advisory Services"},
		{Value: "secretarial", Label: "Secretarial Services"},
		{Value: "audit", Label: "Audit/Review"},
		{Value: "payroll", Label: "Payroll Processing"},
	}

	TaskStatuses = []Option{
		{Value: "planned", Label: "Planned"},
		{Value: "in_progress", Label: "In Progress"},
		{Value: "completed", Label: "Completed"},
		{Value: "cancelled", Label: "Cancelled"},
		{Value: "on_hold", Label: "On Hold"},
	}
)

// Option is a value/label pair for UI selectors.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Task is a unit of recurring compliance work for a client. task_id is the
// business key (TASK001, ...). Dates are YYYY-MM-DD strings; start/end form
// the span tested against month/year filter windows.
type Task struct {
	ID                 int       `json:"id"`
	TaskID             string    `json:"task_id"`
	ClientID           int       `json:"client_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	TaskType           string    `json:"task_type"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	PlannedHours       int       `json:"planned_hours"`
	ActualHours        int       `json:"actual_hours"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	AssignedEmployeeID *int      `json:"assigned_employee_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Joined columns, populated by list and get queries.
	CompanyName          string `json:"company_name,omitempty"`
	ClientCode           string `json:"client_code,omitempty"`
	AssignedEmployeeName string `json:"assigned_employee_name,omitempty"`
	EmployeeNumber       string `json:"employee_number,omitempty"`
}

// TaskDetail is a task with its assignment rows, returned by get-by-id.
type TaskDetail struct {
	Task
	Assignments []*TaskAssignment `json:"assignments"`
}

// WorkloadTask is a task row in the workload view; AssignedHours comes from
// the assignment table and is nil when no assignment row exists.
type WorkloadTask struct {
	Task
	AssignedHours *int `json:"assigned_hours"`
}

// CreateTaskRequest represents the request body for creating a task. TaskID
// is optional: missing or already-taken identifiers are replaced by the next
// free TASK### value.
type CreateTaskRequest struct {
	TaskID             string `json:"task_id"`
	ClientID           int    `json:"client_id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	TaskType           string `json:"task_type"`
	PlannedHours       int    `json:"planned_hours"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	AssignedEmployeeID *int   `json:"assigned_employee_id"`
	Priority           string `json:"priority"`
}

// UpdateTaskRequest represents the request body for updating a task. Updates
// replace the full record; there is no partial-field diffing.
type UpdateTaskRequest struct {
	TaskID             string `json:"task_id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	TaskType           string `json:"task_type"`
	Status             string `json:"status"`
	PlannedHours       int    `json:"planned_hours"`
	ActualHours        int    `json:"actual_hours"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	AssignedEmployeeID *int   `json:"assigned_employee_id"`
	Priority           string `json:"priority"`
}

// AssignEmployeeRequest represents the request body for assigning an
// employee to a task.
type AssignEmployeeRequest struct {
	EmployeeID    int `json:"employee_id"`
	AssignedHours int `json:"assigned_hours"`
}

// TaskFilter carries the optional list criteria. Zero values mean "not
// supplied"; ID fields stay strings so malformed input simply matches
// nothing instead of erroring.
type TaskFilter struct {
	ClientID   string
	EmployeeID string
	Status     string
	TaskType   string
	Month      int
	Year       int
}
