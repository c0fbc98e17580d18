package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dztransit/logistics-api/internal/model"
	"github.com/dztransit/logistics-api/internal/repository"
)

// RateService manages the rate-card configuration: destinations,
// service types and pricing rules. It enforces the invariant of at most
// one rule per (destination, service type) pair.
type RateService struct {
	rates repository.RateRepository
}

func NewRateService(rates repository.RateRepository) *RateService {
	return &RateService{rates: rates}
}

func (s *RateService) CreateDestination(ctx context.Context, name string, zone *string) (*model.Destination, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: destination name is required", ErrInvalidInput)
	}
	destination := &model.Destination{Name: name, Zone: zone}
	if err := s.rates.CreateDestination(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *RateService) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	return s.rates.ListDestinations(ctx)
}

func (s *RateService) UpdateDestination(ctx context.Context, id uuid.UUID, name string, zone *string) (*model.Destination, error) {
	destination, err := s.rates.GetDestination(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: destination name is required", ErrInvalidInput)
	}
	destination.Name = name
	destination.Zone = zone
	if err := s.rates.UpdateDestination(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *RateService) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rates.GetDestination(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.rates.DeleteDestination(ctx, id)
}

func (s *RateService) CreateServiceType(ctx context.Context, name string) (*model.ServiceType, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: service type name is required", ErrInvalidInput)
	}
	serviceType := &model.ServiceType{Name: name}
	if err := s.rates.CreateServiceType(ctx, serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (s *RateService) ListServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	return s.rates.ListServiceTypes(ctx)
}

func (s *RateService) UpdateServiceType(ctx context.Context, id uuid.UUID, name string) (*model.ServiceType, error) {
	serviceType, err := s.rates.GetServiceType(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: service type name is required", ErrInvalidInput)
	}
	serviceType.Name = name
	if err := s.rates.UpdateServiceType(ctx, serviceType); err != nil {
		return nil, err
	}
	return serviceType, nil
}

func (s *RateService) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rates.GetServiceType(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.rates.DeleteServiceType(ctx, id)
}

type PricingRuleInput struct {
	DestinationID uuid.UUID
	ServiceTypeID uuid.UUID
	BaseTariff    decimal.Decimal
	WeightRate    decimal.Decimal
	VolumeRate    decimal.Decimal
}

func (s *RateService) CreateRule(ctx context.Context, input PricingRuleInput) (*model.PricingRule, error) {
	if err := s.validateRuleInput(ctx, input); err != nil {
		return nil, err
	}

	existing, err := s.rates.FindRule(ctx, input.DestinationID, input.ServiceTypeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: pricing rule for this destination and service type", ErrDuplicate)
	}

	rule := &model.PricingRule{
		DestinationID: input.DestinationID,
		ServiceTypeID: input.ServiceTypeID,
		BaseTariff:    input.BaseTariff,
		WeightRate:    input.WeightRate,
		VolumeRate:    input.VolumeRate,
	}
	if err := s.rates.CreateRule(ctx, rule); err != nil {
		return nil, err
	}
	return s.rates.GetRule(ctx, rule.ID)
}

func (s *RateService) UpdateRule(ctx context.Context, id uuid.UUID, input PricingRuleInput) (*model.PricingRule, error) {
	rule, err := s.rates.GetRule(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.validateRuleInput(ctx, input); err != nil {
		return nil, err
	}

	taken, err := s.rates.RuleExistsForPair(ctx, input.DestinationID, input.ServiceTypeID, rule.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: pricing rule for this destination and service type", ErrDuplicate)
	}

	rule.DestinationID = input.DestinationID
	rule.ServiceTypeID = input.ServiceTypeID
	rule.BaseTariff = input.BaseTariff
	rule.WeightRate = input.WeightRate
	rule.VolumeRate = input.VolumeRate
	rule.Destination = nil
	rule.ServiceType = nil

	if err := s.rates.UpdateRule(ctx, rule); err != nil {
		return nil, err
	}
	return s.rates.GetRule(ctx, rule.ID)
}

func (s *RateService) GetRule(ctx context.Context, id uuid.UUID) (*model.PricingRule, error) {
	rule, err := s.rates.GetRule(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rule, nil
}

func (s *RateService) ListRules(ctx context.Context) ([]model.PricingRule, error) {
	return s.rates.ListRules(ctx)
}

func (s *RateService) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if _, err := s.rates.GetRule(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.rates.DeleteRule(ctx, id)
}

func (s *RateService) validateRuleInput(ctx context.Context, input PricingRuleInput) error {
	if input.BaseTariff.IsNegative() || input.WeightRate.IsNegative() || input.VolumeRate.IsNegative() {
		return fmt.Errorf("%w: tariff and rates must be non-negative", ErrInvalidInput)
	}
	if _, err := s.rates.GetDestination(ctx, input.DestinationID); err != nil {
		return mapNotFound(err)
	}
	if _, err := s.rates.GetServiceType(ctx, input.ServiceTypeID); err != nil {
		return mapNotFound(err)
	}
	return nil
}
