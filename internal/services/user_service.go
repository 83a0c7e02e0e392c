package services

import (
	"context"
	"database/sql"

	"github.com/SR3DR3/planncomm-v2/internal/auth"
	"github.com/SR3DR3/planncomm-v2/internal/database"
	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWTManager: jwtManager}
}

// Signup creates a login account and returns a signed token for it.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.EmployeeNumber == "" || req.Name == "" || req.Password == "" {
		return nil, ValidationError("Employee number, name, and password are required")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		EmployeeNumber: req.EmployeeNumber,
		PasswordHash:   hashedPassword,
		Name:           req.Name,
		Email:          req.Email,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if database.IsUniqueConstraint(err) {
			return nil, ValidationError("An account with this employee number already exists")
		}
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by employee number and password.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.EmployeeNumber == "" || req.Password == "" {
		return nil, ValidationError("Employee number and password are required")
	}

	user, err := s.Repo.GetByEmployeeNumber(ctx, req.EmployeeNumber)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
