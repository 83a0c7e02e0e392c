package repositories

import (
	"context"
	"database/sql"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, employee_number, password_hash, name, COALESCE(email, ''),
	role, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.EmployeeNumber, &u.PasswordHash, &u.Name, &u.Email,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO users (employee_number, password_hash, name, email)
		 VALUES (?, ?, ?, ?)`,
		u.EmployeeNumber, u.PasswordHash, u.Name, u.Email)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = int(id)
	return r.DB.QueryRowContext(ctx,
		`SELECT role, is_active, created_at, updated_at FROM users WHERE id = ?`, u.ID).
		Scan(&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByEmployeeNumber(ctx context.Context, employeeNumber string) (*models.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE employee_number = ? AND is_active = 1`, employeeNumber)
	return scanUser(row)
}
