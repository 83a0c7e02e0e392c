package services

import (
	"context"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/repositories"
)

type ClientService struct {
	Repo *repositories.ClientRepository
}

func NewClientService(repo *repositories.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.Repo.List(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id int) (*models.Client, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if req.ClientID == "" || req.CompanyName == "" {
		return nil, ValidationError("Client ID and company name are required")
	}

	client := &models.Client{
		ClientID:      req.ClientID,
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Industry:      req.Industry,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, client.ID)
}

func (s *ClientService) UpdateClient(ctx context.Context, id int, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.ClientID == "" || req.CompanyName == "" {
		return nil, ValidationError("Client ID and company name are required")
	}

	client, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	client.ClientID = req.ClientID
	client.CompanyName = req.CompanyName
	client.ContactPerson = req.ContactPerson
	client.Phone = req.Phone
	client.Email = req.Email
	client.Address = req.Address
	client.Industry = req.Industry

	if err := s.Repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}

// DeleteClient deactivates the client. The row is kept so existing tasks
// still resolve their client join.
func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	if _, err := s.Repo.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.SoftDelete(ctx, id)
}
