package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/repository"
)

type ClientService struct {
	clients repository.ClientRepository
}

func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

type ClientInput struct {
	Name        string
	Address     string
	ContactInfo string
}

func (s *ClientService) Create(ctx context.Context, input ClientInput) (*model.Client, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	client := &model.Client{
		Name:        input.Name,
		Address:     input.Address,
		ContactInfo: input.ContactInfo,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, input ClientInput) (*model.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	client.Name = input.Name
	client.Address = input.Address
	client.ContactInfo = input.ContactInfo
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.clients.Delete(ctx, id)
}
