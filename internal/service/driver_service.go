package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/repository"
)

type DriverService struct {
	drivers repository.DriverRepository
}

func NewDriverService(drivers repository.DriverRepository) *DriverService {
	return &DriverService{drivers: drivers}
}

type DriverInput struct {
	Name          string
	LicenseNumber string
	Phone         string
}

func (s *DriverService) Create(ctx context.Context, input DriverInput) (*model.Driver, error) {
	if err := validateDriverInput(input); err != nil {
		return nil, err
	}
	driver := &model.Driver{
		Name:          input.Name,
		LicenseNumber: input.LicenseNumber,
		Phone:         input.Phone,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return driver, nil
}

func (s *DriverService) List(ctx context.Context) ([]model.Driver, error) {
	return s.drivers.List(ctx)
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, input DriverInput) (*model.Driver, error) {
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := validateDriverInput(input); err != nil {
		return nil, err
	}
	driver.Name = input.Name
	driver.LicenseNumber = input.LicenseNumber
	driver.Phone = input.Phone
	if err := s.drivers.Update(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.drivers.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.drivers.Delete(ctx, id)
}

func validateDriverInput(input DriverInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: driver name is required", ErrInvalidInput)
	}
	if input.LicenseNumber == "" {
		return fmt.Errorf("%w: license number is required", ErrInvalidInput)
	}
	return nil
}
