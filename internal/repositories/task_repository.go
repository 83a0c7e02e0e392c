package repositories

import (
	"context"
	"database/sql"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

// taskSelect joins the client (required) and the primary assignee (optional)
// so list and get responses carry display names next to the raw ids.
const taskSelect = `
	SELECT
		t.id, t.task_id, t.client_id, t.name, COALESCE(t.description, ''), t.task_type,
		t.status, t.priority, t.planned_hours, t.actual_hours,
		COALESCE(t.start_date, ''), COALESCE(t.end_date, ''), t.assigned_employee_id,
		t.created_at, t.updated_at,
		c.company_name, c.client_id AS client_code,
		COALESCE(e.name, '') AS assigned_employee_name, COALESCE(e.employee_number, '')
	FROM tasks t
	JOIN clients c ON t.client_id = c.id
	LEFT JOIN employees e ON t.assigned_employee_id = e.id`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	var t models.Task
	var assignedEmployeeID sql.NullInt64
	err := row.Scan(&t.ID, &t.TaskID, &t.ClientID, &t.Name, &t.Description, &t.TaskType,
		&t.Status, &t.Priority, &t.PlannedHours, &t.ActualHours,
		&t.StartDate, &t.EndDate, &assignedEmployeeID,
		&t.CreatedAt, &t.UpdatedAt,
		&t.CompanyName, &t.ClientCode, &t.AssignedEmployeeName, &t.EmployeeNumber)
	if err != nil {
		return nil, err
	}
	if assignedEmployeeID.Valid {
		id := int(assignedEmployeeID.Int64)
		t.AssignedEmployeeID = &id
	}
	return &t, nil
}

// List returns tasks matching every supplied filter criterion, ordered by
// start date ascending then creation time descending.
func (r *TaskRepository) List(ctx context.Context, f models.TaskFilter) ([]*models.Task, error) {
	clause, args := taskFilterSQL(f)
	query := taskSelect + clause + " ORDER BY t.start_date ASC, t.created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Get(ctx context.Context, id int) (*models.Task, error) {
	row := r.DB.QueryRowContext(ctx, taskSelect+" WHERE t.id = ?", id)
	return scanTask(row)
}

// TaskIDExists reports whether the business key is already taken.
func (r *TaskRepository) TaskIDExists(ctx context.Context, taskID string) (bool, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, "SELECT id FROM tasks WHERE task_id = ?", taskID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// MaxTaskNumber returns the highest numeric suffix among identifiers of the
// form TASK<digits>, or 0 when none exist.
func (r *TaskRepository) MaxTaskNumber(ctx context.Context) (int, error) {
	var max int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(CAST(SUBSTR(task_id, 5) AS INTEGER)), 0)
		 FROM tasks WHERE task_id GLOB 'TASK[0-9]*'`).Scan(&max)
	return max, err
}

// Create inserts the task. Status and actual_hours are left to their column
// defaults (planned, 0).
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) error {
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO tasks (
			task_id, client_id, name, description, task_type,
			planned_hours, start_date, end_date, assigned_employee_id, priority
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TaskID, t.ClientID, t.Name, t.Description, t.TaskType,
		t.PlannedHours, t.StartDate, t.EndDate, t.AssignedEmployeeID, t.Priority)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = int(id)
	return nil
}

// Update replaces the full record.
func (r *TaskRepository) Update(ctx context.Context, t *models.Task) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE tasks
		 SET task_id = ?, name = ?, description = ?, task_type = ?,
		     status = ?, planned_hours = ?, actual_hours = ?,
		     start_date = ?, end_date = ?, assigned_employee_id = ?,
		     priority = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		t.TaskID, t.Name, t.Description, t.TaskType,
		t.Status, t.PlannedHours, t.ActualHours,
		t.StartDate, t.EndDate, t.AssignedEmployeeID,
		t.Priority, t.ID)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	return err
}

// SetAssignedEmployee updates the primary assignee on the task row.
func (r *TaskRepository) SetAssignedEmployee(ctx context.Context, taskID, employeeID int) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tasks SET assigned_employee_id = ? WHERE id = ?", employeeID, taskID)
	return err
}

// ListForWorkload returns the active tasks (planned or in_progress) an
// employee is primary assignee on, with that employee's assignment-table
// hours when a row exists. Note planned_hours is deliberately not the value
// summed by the workload view.
func (r *TaskRepository) ListForWorkload(ctx context.Context, employeeID int) ([]*models.WorkloadTask, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT
			t.id, t.task_id, t.client_id, t.name, COALESCE(t.description, ''), t.task_type,
			t.status, t.priority, t.planned_hours, t.actual_hours,
			COALESCE(t.start_date, ''), COALESCE(t.end_date, ''), t.assigned_employee_id,
			t.created_at, t.updated_at,
			c.company_name, ta.assigned_hours
		FROM tasks t
		JOIN clients c ON t.client_id = c.id
		LEFT JOIN task_assignments ta ON t.id = ta.task_id AND ta.employee_id = ?
		WHERE t.status IN ('planned', 'in_progress') AND t.assigned_employee_id = ?
		ORDER BY t.end_date`, employeeID, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.WorkloadTask
	for rows.Next() {
		var t models.WorkloadTask
		var assignedEmployeeID, assignedHours sql.NullInt64
		err := rows.Scan(&t.ID, &t.TaskID, &t.ClientID, &t.Name, &t.Description, &t.TaskType,
			&t.Status, &t.Priority, &t.PlannedHours, &t.ActualHours,
			&t.StartDate, &t.EndDate, &assignedEmployeeID,
			&t.CreatedAt, &t.UpdatedAt,
			&t.CompanyName, &assignedHours)
		if err != nil {
			return nil, err
		}
		if assignedEmployeeID.Valid {
			id := int(assignedEmployeeID.Int64)
			t.AssignedEmployeeID = &id
		}
		if assignedHours.Valid {
			hours := int(assignedHours.Int64)
			t.AssignedHours = &hours
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}
