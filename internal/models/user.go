package models

import "time"

// User is a login account keyed by employee number. Authentication is not
// enforced on any resource route; accounts only back the optional
// signup/login endpoints.
type User struct {
	ID             int       `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	PasswordHash   string    `json:"-"` // Never expose in JSON
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	EmployeeNumber string `json:"employee_number"`
	Password       string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
