package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dztransit/logistics-api/internal/model"
)

// RateRepository owns the rate-card configuration: destinations,
// service types and the pricing rules keyed by their pair.
type RateRepository interface {
	CreateDestination(ctx context.Context, destination *model.Destination) error
	GetDestination(ctx context.Context, id uuid.UUID) (*model.Destination, error)
	ListDestinations(ctx context.Context) ([]model.Destination, error)
	UpdateDestination(ctx context.Context, destination *model.Destination) error
	DeleteDestination(ctx context.Context, id uuid.UUID) error

	CreateServiceType(ctx context.Context, serviceType *model.ServiceType) error
	GetServiceType(ctx context.Context, id uuid.UUID) (*model.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]model.ServiceType, error)
	UpdateServiceType(ctx context.Context, serviceType *model.ServiceType) error
	DeleteServiceType(ctx context.Context, id uuid.UUID) error

	CreateRule(ctx context.Context, rule *model.PricingRule) error
	GetRule(ctx context.Context, id uuid.UUID) (*model.PricingRule, error)
	// FindRule returns nil (and no error) when the pair has no rule.
	FindRule(ctx context.Context, destinationID, serviceTypeID uuid.UUID) (*model.PricingRule, error)
	RuleExistsForPair(ctx context.Context, destinationID, serviceTypeID, excludeID uuid.UUID) (bool, error)
	ListRules(ctx context.Context) ([]model.PricingRule, error)
	UpdateRule(ctx context.Context, rule *model.PricingRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) CreateDestination(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *rateRepository) GetDestination(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	var destination model.Destination
	if err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *rateRepository) ListDestinations(ctx context.Context) ([]model.Destination, error) {
	var destinations []model.Destination
	err := r.db.WithContext(ctx).Order("name ASC").Find(&destinations).Error
	return destinations, err
}

func (r *rateRepository) UpdateDestination(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Save(destination).Error
}

func (r *rateRepository) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Destination{}, "id = ?", id).Error
}

func (r *rateRepository) CreateServiceType(ctx context.Context, serviceType *model.ServiceType) error {
	return r.db.WithContext(ctx).Create(serviceType).Error
}

func (r *rateRepository) GetServiceType(ctx context.Context, id uuid.UUID) (*model.ServiceType, error) {
	var serviceType model.ServiceType
	if err := r.db.WithContext(ctx).First(&serviceType, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &serviceType, nil
}

func (r *rateRepository) ListServiceTypes(ctx context.Context) ([]model.ServiceType, error) {
	var serviceTypes []model.ServiceType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&serviceTypes).Error
	return serviceTypes, err
}

func (r *rateRepository) UpdateServiceType(ctx context.Context, serviceType *model.ServiceType) error {
	return r.db.WithContext(ctx).Save(serviceType).Error
}

func (r *rateRepository) DeleteServiceType(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceType{}, "id = ?", id).Error
}

func (r *rateRepository) CreateRule(ctx context.Context, rule *model.PricingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *rateRepository) GetRule(ctx context.Context, id uuid.UUID) (*model.PricingRule, error) {
	var rule model.PricingRule
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("ServiceType").
		First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *rateRepository) FindRule(ctx context.Context, destinationID, serviceTypeID uuid.UUID) (*model.PricingRule, error) {
	var rule model.PricingRule
	err := r.db.WithContext(ctx).
		First(&rule, "destination_id = ? AND service_type_id = ?", destinationID, serviceTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *rateRepository) RuleExistsForPair(ctx context.Context, destinationID, serviceTypeID, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PricingRule{}).
		Where("destination_id = ? AND service_type_id = ? AND id <> ?", destinationID, serviceTypeID, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *rateRepository) ListRules(ctx context.Context) ([]model.PricingRule, error) {
	var rules []model.PricingRule
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Preload("ServiceType").
		Find(&rules).Error
	return rules, err
}

func (r *rateRepository) UpdateRule(ctx context.Context, rule *model.PricingRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *rateRepository) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PricingRule{}, "id = ?", id).Error
}
