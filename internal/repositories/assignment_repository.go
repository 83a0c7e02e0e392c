package repositories

import (
	"context"
	"database/sql"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

type AssignmentRepository struct {
	DB *sql.DB
}

func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// ListByTask returns the assignment rows for a task with the employee's
// display columns joined in.
func (r *AssignmentRepository) ListByTask(ctx context.Context, taskID int) ([]*models.TaskAssignment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ta.id, ta.task_id, ta.employee_id, ta.assigned_hours,
		       COALESCE(ta.assigned_date, ''), ta.created_at,
		       e.name, e.employee_number
		FROM task_assignments ta
		JOIN employees e ON ta.employee_id = e.id
		WHERE ta.task_id = ?`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.TaskAssignment
	for rows.Next() {
		var a models.TaskAssignment
		err := rows.Scan(&a.ID, &a.TaskID, &a.EmployeeID, &a.AssignedHours,
			&a.AssignedDate, &a.CreatedAt, &a.Name, &a.EmployeeNumber)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

// Upsert replaces any existing assignment for the (task, employee) pair.
func (r *AssignmentRepository) Upsert(ctx context.Context, taskID, employeeID, assignedHours int) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT OR REPLACE INTO task_assignments (task_id, employee_id, assigned_hours, assigned_date)
		 VALUES (?, ?, ?, CURRENT_DATE)`,
		taskID, employeeID, assignedHours)
	return err
}

// DeleteByTask removes all assignment rows for a task; called before the
// task row itself is deleted so no orphans remain.
func (r *AssignmentRepository) DeleteByTask(ctx context.Context, taskID int) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM task_assignments WHERE task_id = ?", taskID)
	return err
}
