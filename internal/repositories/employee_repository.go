package repositories

import (
	"context"
	"database/sql"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

type EmployeeRepository struct {
	DB *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

const employeeColumns = `id, employee_number, name, COALESCE(email, ''), COALESCE(department, ''),
	capacity_hours, is_active, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.EmployeeNumber, &e.Name, &e.Email, &e.Department,
		&e.CapacityHours, &e.IsActive, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns active employees only, ordered by name.
func (r *EmployeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE is_active = 1 ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Get returns an active employee; deactivated ones are not addressable here.
func (r *EmployeeRepository) Get(ctx context.Context, id int) (*models.Employee, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = ? AND is_active = 1`, id)
	return scanEmployee(row)
}

func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) error {
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO employees (employee_number, name, email, department, capacity_hours)
		 VALUES (?, ?, ?, ?, ?)`,
		e.EmployeeNumber, e.Name, e.Email, e.Department, e.CapacityHours)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = int(id)
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE employees
		 SET employee_number = ?, name = ?, email = ?, department = ?,
		     capacity_hours = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		e.EmployeeNumber, e.Name, e.Email, e.Department, e.CapacityHours, e.ID)
	return err
}

// SoftDelete marks the employee inactive; historical tasks keep their
// assigned_employee_id reference.
func (r *EmployeeRepository) SoftDelete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE employees SET is_active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}
