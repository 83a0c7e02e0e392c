package models

import "time"

// Client is a customer of the firm. client_id is the human-facing business
// key (CL001, ...); removal is a soft delete that flips status to inactive so
// historical tasks keep resolving.
type Client struct {
	ID            int       `json:"id"`
	ClientID      string    `json:"client_id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Industry      string    `json:"industry"`
	Status        string    `json:"status"` // active or inactive
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateClientRequest represents the request body for creating a client
type CreateClientRequest struct {
	ClientID      string `json:"client_id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Industry      string `json:"industry"`
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	ClientID      string `json:"client_id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Industry      string `json:"industry"`
}
