package repositories

import (
	"context"
	"database/sql"

	"github.com/SR3DR3/planncomm-v2/internal/models"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `id, client_id, company_name, COALESCE(contact_person, ''), COALESCE(phone, ''),
	COALESCE(email, ''), COALESCE(address, ''), COALESCE(industry, ''), status, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.ClientID, &c.CompanyName, &c.ContactPerson, &c.Phone,
		&c.Email, &c.Address, &c.Industry, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns active clients only; soft-deleted ones are filtered out.
func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE status = 'active' ORDER BY company_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Get returns a client regardless of status so historical references from
// tasks keep resolving after deactivation.
func (r *ClientRepository) Get(ctx context.Context, id int) (*models.Client, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO clients (client_id, company_name, contact_person, phone, email, address, industry)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ClientID, c.CompanyName, c.ContactPerson, c.Phone, c.Email, c.Address, c.Industry)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = int(id)
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE clients
		 SET client_id = ?, company_name = ?, contact_person = ?, phone = ?,
		     email = ?, address = ?, industry = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		c.ClientID, c.CompanyName, c.ContactPerson, c.Phone, c.Email, c.Address, c.Industry, c.ID)
	return err
}

// SoftDelete marks the client inactive; the row stays as a foreign-key
// target for historical tasks.
func (r *ClientRepository) SoftDelete(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE clients SET status = 'inactive', updated_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}
